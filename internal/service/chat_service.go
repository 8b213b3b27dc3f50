package service

import (
	"context"

	"valetkleen-be/internal/apperror"
	"valetkleen-be/internal/config"
	"valetkleen-be/internal/constant"
	"valetkleen-be/internal/dto"
	"valetkleen-be/internal/pkg/logger"
	"valetkleen-be/internal/repository/contract"
	"valetkleen-be/pkg/catalog"
	"valetkleen-be/pkg/intent"
	"valetkleen-be/pkg/llm"
	"valetkleen-be/pkg/store"
)

type IChatService interface {
	SendChat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
	GetTranscript(sessionId string) (*dto.TranscriptResponse, error)
}

// chatService is the dialogue engine: one state machine parameterized by
// ChatConfig instead of parallel bot variants. All collaborators are
// injected; resolver and paymentService may be absent.
type chatService struct {
	sessionRepo    contract.SessionRepository
	cartService    ICartService
	orderService   IOrderService
	paymentService IPaymentService
	classifier     *intent.Classifier
	resolver       llm.IntentResolver
	cfg            config.ChatConfig
	log            logger.ILogger
}

func NewChatService(
	sessionRepo contract.SessionRepository,
	cartService ICartService,
	orderService IOrderService,
	paymentService IPaymentService,
	classifier *intent.Classifier,
	resolver llm.IntentResolver,
	cfg config.ChatConfig,
	log logger.ILogger,
) IChatService {
	return &chatService{
		sessionRepo:    sessionRepo,
		cartService:    cartService,
		orderService:   orderService,
		paymentService: paymentService,
		classifier:     classifier,
		resolver:       resolver,
		cfg:            cfg,
		log:            log,
	}
}

// SendChat runs one turn. All mutations land on a clone of the stored
// session and are saved once at the end, so a failed turn leaves the stored
// state untouched.
func (cs *chatService) SendChat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	sess, created := cs.sessionRepo.GetOrCreate(req.SessionId)
	if created {
		cs.log.Info("chat_service", "new session created", map[string]interface{}{"session_id": sess.ID})
	}

	work := sess.Clone()
	work.AppendTurn(store.SpeakerUser, req.Message)

	resp, err := cs.route(ctx, work, req.Message)
	if err != nil {
		cs.log.Error("chat_service", "turn failed", map[string]interface{}{
			"session_id": sess.ID,
			"step":       string(sess.Step),
			"error":      err.Error(),
		})
		// Discard the half-applied clone; record only the exchange itself.
		work = sess.Clone()
		work.AppendTurn(store.SpeakerUser, req.Message)
		resp = reply(constant.RecoverableErrorMessage, constant.ResponseTypeError, constant.StartOverSuggestions)
	}

	work.AppendTurn(store.SpeakerBot, resp.Message)
	cs.sessionRepo.Save(work)

	resp.SessionId = work.ID
	return resp, nil
}

// route applies the global keyword overrides first, then the step handler.
// Intent classification only governs routing from the welcome step.
func (cs *chatService) route(ctx context.Context, sess *store.Session, text string) (*dto.ChatResponse, error) {
	if kw, ok := intent.MatchKeyword(text); ok {
		switch kw {
		case intent.IntentCheckout:
			return cs.handleCheckout(ctx, sess)
		case intent.IntentPayNow:
			return cs.handlePayNow(ctx, sess)
		case intent.IntentViewCart:
			return cs.handleViewCart(sess), nil
		case intent.IntentClearCart:
			return cs.handleClearCart(sess), nil
		}
	}

	switch sess.Step {
	case store.StepSelectingServiceType:
		return cs.handleServiceTypeSelection(sess, text), nil
	case store.StepCollectingInfo:
		return cs.handleInfoCollection(sess, text), nil
	case store.StepCollectingLogisticsInfo:
		return cs.handleLogisticsInfoCollection(sess, text), nil
	case store.StepSelectingService:
		return cs.handleServiceSelection(sess, text), nil
	case store.StepSelectingItems:
		return cs.handleItemSelection(ctx, sess, text)
	case store.StepAddingOptions:
		return cs.handleOptionSelection(sess, text)
	default:
		return cs.handleWelcome(ctx, sess, text)
	}
}

func (cs *chatService) handleWelcome(ctx context.Context, sess *store.Session, text string) (*dto.ChatResponse, error) {
	label, confidence := cs.classifier.Classify(text)
	if label == intent.IntentUnknown {
		label = cs.resolveWithLLM(ctx, text, label)
	}
	cs.log.Debug("chat_service", "intent classified", map[string]interface{}{
		"session_id": sess.ID,
		"intent":     label,
		"confidence": confidence,
	})

	switch label {
	case intent.IntentGreeting:
		return reply(constant.WelcomeMessage, constant.ResponseTypeGreeting, constant.WelcomeSuggestions), nil
	case intent.IntentPlaceOrder:
		sess.Step = store.StepSelectingServiceType
		return reply(constant.StartOrderMessage, constant.ResponseTypeServiceTypeSelection, constant.ServiceTypeSuggestions), nil
	case intent.IntentViewCart:
		return cs.handleViewCart(sess), nil
	case intent.IntentCheckout:
		return cs.handleCheckout(ctx, sess)
	case intent.IntentClearCart:
		return cs.handleClearCart(sess), nil
	case intent.IntentPayNow:
		return cs.handlePayNow(ctx, sess)
	case intent.IntentRemoveItem:
		return cs.handleRemoveItemHint(sess), nil
	case intent.IntentServicesInquiry, intent.IntentPricingInquiry, intent.IntentDeliveryInquiry,
		intent.IntentAboutCompany, intent.IntentContactInfo, intent.IntentProcessInquiry:
		return cs.handleInquiry(label), nil
	default:
		return reply(constant.UnknownMessage, constant.ResponseTypeInformation, constant.WelcomeSuggestions), nil
	}
}

// resolveWithLLM consults the optional model with a bounded timeout. Any
// failure degrades silently back to the deterministic result.
func (cs *chatService) resolveWithLLM(ctx context.Context, text, fallback string) string {
	if !cs.cfg.LLMEnabled || cs.resolver == nil {
		return fallback
	}
	llmCtx, cancel := context.WithTimeout(ctx, cs.cfg.LLMTimeout)
	defer cancel()

	hint, err := cs.resolver.ResolveIntent(llmCtx, text, catalog.ItemKeys())
	if err != nil {
		cs.log.Warn("chat_service", "llm intent resolution unavailable", map[string]interface{}{"error": err.Error()})
		return fallback
	}
	if hint.Confidence < 0.5 || hint.Intent == "" || hint.Intent == intent.IntentUnknown {
		return fallback
	}
	return hint.Intent
}

func (cs *chatService) GetTranscript(sessionId string) (*dto.TranscriptResponse, error) {
	sess, ok := cs.sessionRepo.Get(sessionId)
	if !ok {
		return nil, apperror.ErrSessionNotFound
	}
	turns := make([]dto.TranscriptEntry, 0, len(sess.Conversation))
	for _, turn := range sess.Conversation {
		turns = append(turns, dto.TranscriptEntry{
			Speaker: turn.Speaker,
			Text:    turn.Text,
			At:      turn.At,
		})
	}
	return &dto.TranscriptResponse{SessionId: sess.ID, Turns: turns}, nil
}

func reply(message, responseType string, suggestions []string) *dto.ChatResponse {
	return &dto.ChatResponse{
		Message:     message,
		Type:        responseType,
		Suggestions: suggestions,
	}
}
