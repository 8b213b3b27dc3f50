package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"valetkleen-be/internal/apperror"
	"valetkleen-be/internal/config"
	"valetkleen-be/internal/constant"
	"valetkleen-be/internal/dto"
	"valetkleen-be/pkg/intent"
	"valetkleen-be/pkg/store"
)

func (cs *chatService) handleViewCart(sess *store.Session) *dto.ChatResponse {
	summary := cs.cartService.Summary(sess)
	if summary.LineCount == 0 {
		return reply("Your cart is empty.", constant.ResponseTypeCartView, constant.StartOverSuggestions)
	}
	return reply(cs.cartSummaryText(sess), constant.ResponseTypeCartView, constant.CartUpdateSuggestions)
}

func (cs *chatService) handleClearCart(sess *store.Session) *dto.ChatResponse {
	cs.cartService.Clear(sess)
	return reply("Your cart has been cleared.", constant.ResponseTypeCartUpdate, constant.StartOverSuggestions)
}

func (cs *chatService) handleRemoveItemHint(sess *store.Session) *dto.ChatResponse {
	summary := cs.cartService.Summary(sess)
	if summary.LineCount == 0 {
		return reply("Your cart is empty - there's nothing to remove.", constant.ResponseTypeCartView, constant.StartOverSuggestions)
	}
	message := fmt.Sprintf("%s\n\nTell me which line to remove, or clear the whole cart.", cs.cartSummaryText(sess))
	return reply(message, constant.ResponseTypeCartView, []string{"Clear Cart", "Add More Items", "Proceed to Checkout"})
}

// handleCheckout finalizes the order. A cart without the required customer
// details routes back into info collection instead of failing the turn.
func (cs *chatService) handleCheckout(ctx context.Context, sess *store.Session) (*dto.ChatResponse, error) {
	if len(sess.Cart) == 0 {
		return reply(
			"Your cart is empty! Please add some items first.",
			constant.ResponseTypeError,
			constant.WelcomeSuggestions,
		), nil
	}

	if field := cs.missingCheckoutField(sess); field != "" {
		sess.Step = store.StepCollectingInfo
		message := fmt.Sprintf("Almost there! I just need a few details before checkout.\n\n%s", fieldPrompt(field))
		return reply(message, constant.ResponseTypeInfoCollection, nil), nil
	}

	result, err := cs.orderService.Checkout(ctx, sess, cs.cfg.CheckoutPolicy)
	if err != nil {
		if errors.Is(err, apperror.ErrMissingCustomerInfo) {
			sess.Step = store.StepCollectingInfo
			message := fmt.Sprintf("Almost there! I just need a few details before checkout.\n\n%s", fieldPrompt(nextMissingField(sess.Customer)))
			return reply(message, constant.ResponseTypeInfoCollection, nil), nil
		}
		return nil, err
	}

	message := cs.checkoutSuccessMessage(sess, result)
	sess.ResetOrderState()
	return reply(message, constant.ResponseTypeCheckoutSuccess, constant.CheckoutSuccessSuggestions), nil
}

// missingCheckoutField mirrors the order service's policy guard so the chat
// flow can collect what is missing instead of surfacing an error.
func (cs *chatService) missingCheckoutField(sess *store.Session) string {
	if sess.Customer.Name == "" {
		return fieldName
	}
	if cs.cfg.CheckoutPolicy != config.CheckoutPolicyFull {
		return ""
	}
	return nextMissingField(sess.Customer)
}

func (cs *chatService) checkoutSuccessMessage(sess *store.Session, result *dto.CheckoutResult) string {
	var b strings.Builder
	b.WriteString("CHECKOUT SUCCESSFUL!\n\n")
	b.WriteString(fmt.Sprintf("Order Number: %s\n\nYour Order:\n", result.OrderNumber))
	for _, line := range sess.Cart {
		b.WriteString(fmt.Sprintf("- %dx %s", line.Quantity, line.Name))
		if len(line.Options) > 0 {
			b.WriteString(fmt.Sprintf(" (%s)", strings.Join(line.Options, ", ")))
		}
		b.WriteString(fmt.Sprintf(" - $%s\n", line.Total().StringFixed(2)))
	}
	b.WriteString(fmt.Sprintf("\nTotal: $%s\n\n", result.Total.StringFixed(2)))
	b.WriteString("Next Steps:\n")
	b.WriteString("- Your order has been submitted\n")
	b.WriteString("- We'll pick up at the scheduled time\n")
	b.WriteString("- Professional cleaning in 24-48 hours\n")
	b.WriteString("- Door-to-door delivery service\n\n")
	b.WriteString("Thank you for choosing ValetKleen!")
	return b.String()
}

// handlePayNow checks out and immediately issues a hosted payment link. When
// the gateway is not configured it degrades to the regular checkout flow.
func (cs *chatService) handlePayNow(ctx context.Context, sess *store.Session) (*dto.ChatResponse, error) {
	if cs.paymentService == nil || !cs.paymentService.Enabled() {
		return cs.handleCheckout(ctx, sess)
	}
	if len(sess.Cart) == 0 {
		return reply(
			"Your cart is empty! Please add some items first.",
			constant.ResponseTypeError,
			constant.WelcomeSuggestions,
		), nil
	}
	if field := cs.missingCheckoutField(sess); field != "" {
		sess.Step = store.StepCollectingInfo
		message := fmt.Sprintf("Almost there! I just need a few details before payment.\n\n%s", fieldPrompt(field))
		return reply(message, constant.ResponseTypeInfoCollection, nil), nil
	}

	result, err := cs.orderService.Checkout(ctx, sess, cs.cfg.CheckoutPolicy)
	if err != nil {
		if errors.Is(err, apperror.ErrMissingCustomerInfo) {
			sess.Step = store.StepCollectingInfo
			message := fmt.Sprintf("Almost there! I just need a few details before payment.\n\n%s", fieldPrompt(nextMissingField(sess.Customer)))
			return reply(message, constant.ResponseTypeInfoCollection, nil), nil
		}
		return nil, err
	}

	successMessage := cs.checkoutSuccessMessage(sess, result)
	sess.ResetOrderState()

	link, err := cs.paymentService.CreatePaymentLink(ctx, result.OrderNumber)
	if err != nil {
		// The order is committed; a gateway failure only downgrades the reply.
		cs.log.Warn("chat_service", "payment link unavailable", map[string]interface{}{
			"order_number": result.OrderNumber,
			"error":        err.Error(),
		})
		return reply(successMessage, constant.ResponseTypeCheckoutSuccess, constant.CheckoutSuccessSuggestions), nil
	}

	message := fmt.Sprintf("%s\n\nPay securely here:\n%s", successMessage, link)
	return reply(message, constant.ResponseTypePayment, constant.CheckoutSuccessSuggestions), nil
}

func (cs *chatService) handleInquiry(label string) *dto.ChatResponse {
	var answer string
	switch label {
	case intent.IntentServicesInquiry:
		answer = constant.ServicesInquiryAnswer
	case intent.IntentPricingInquiry:
		answer = constant.PricingInquiryAnswer
	case intent.IntentDeliveryInquiry:
		answer = constant.DeliveryInquiryAnswer
	case intent.IntentAboutCompany:
		answer = constant.AboutCompanyAnswer
	case intent.IntentContactInfo:
		answer = constant.ContactInfoAnswer
	case intent.IntentProcessInquiry:
		answer = constant.ProcessInquiryAnswer
	default:
		answer = constant.UnknownMessage
	}
	return reply(answer, constant.ResponseTypeInformation, constant.WelcomeSuggestions)
}
