package service

import (
	"fmt"
	"strings"

	"valetkleen-be/internal/constant"
	"valetkleen-be/internal/dto"
	"valetkleen-be/pkg/catalog"
	"valetkleen-be/pkg/store"
	"valetkleen-be/pkg/validate"
)

const (
	fieldName       = "name"
	fieldEmail      = "email"
	fieldAddress    = "address"
	fieldPhone      = "phone"
	fieldPickupDate = "pickup_date"
	fieldPickupTime = "pickup_time"
)

// infoFieldOrder is the fixed collection order. A field is only prompted once
// every field before it holds a validated value.
var infoFieldOrder = []string{fieldName, fieldEmail, fieldAddress, fieldPhone, fieldPickupDate, fieldPickupTime}

func nextMissingField(info store.CustomerInfo) string {
	for _, field := range infoFieldOrder {
		if infoFieldValue(info, field) == "" {
			return field
		}
	}
	return ""
}

func infoFieldValue(info store.CustomerInfo, field string) string {
	switch field {
	case fieldName:
		return info.Name
	case fieldEmail:
		return info.Email
	case fieldAddress:
		return info.Address
	case fieldPhone:
		return info.Phone
	case fieldPickupDate:
		return info.PickupDate
	case fieldPickupTime:
		return info.PickupTime
	}
	return ""
}

func setInfoField(info *store.CustomerInfo, field, value string) {
	switch field {
	case fieldName:
		info.Name = value
	case fieldEmail:
		info.Email = value
	case fieldAddress:
		info.Address = value
	case fieldPhone:
		info.Phone = value
	case fieldPickupDate:
		info.PickupDate = value
	case fieldPickupTime:
		info.PickupTime = value
	}
}

func fieldPrompt(field string) string {
	switch field {
	case fieldName:
		return "Your Name:"
	case fieldEmail:
		return "Your Email:"
	case fieldAddress:
		return "Your Address (for pickup & delivery):"
	case fieldPhone:
		return "Your Phone Number:"
	case fieldPickupDate:
		return "Pickup Date (e.g., Monday, Dec 15 or 12/15/2024):"
	case fieldPickupTime:
		return "Pickup Time (e.g., 2:00 PM or 14:00):"
	}
	return ""
}

// validateInfoField checks one candidate value. Name, pickup date, and pickup
// time only need to be non-empty; the rest run the dedicated validators.
func validateInfoField(field, value string) (bool, string) {
	if value == "" {
		return false, "please enter a value"
	}
	switch field {
	case fieldEmail:
		return validate.Email(value)
	case fieldPhone:
		return validate.Phone(value)
	case fieldAddress:
		return validate.Address(value)
	}
	return true, ""
}

func (cs *chatService) handleServiceTypeSelection(sess *store.Session, text string) *dto.ChatResponse {
	processed := strings.ToLower(text)

	switch {
	case strings.Contains(processed, "logistics") || strings.Contains(processed, "pickup and delivery"):
		sess.Step = store.StepCollectingLogisticsInfo
		message := "Logistics Service Selected\n\nAlready have a laundry or cleaner you prefer? Let ValetKleen handle just the pickup and delivery.\n\nPlease provide your information:\n\nYour Name:"
		return reply(message, constant.ResponseTypeInfoCollection, nil)
	case strings.Contains(processed, "laundry"):
		sess.SelectedCategory = catalog.CategoryLaundry
		sess.Step = store.StepCollectingInfo
		message := "Laundry Services Selected\n\nFirst, I'll need some information from you:\n\nYour Name:"
		return reply(message, constant.ResponseTypeInfoCollection, nil)
	case strings.Contains(processed, "dry") || strings.Contains(processed, "cleaning"):
		sess.SelectedCategory = catalog.CategoryDryCleaning
		sess.Step = store.StepCollectingInfo
		message := "Dry-Cleaning Services Selected\n\nFirst, I'll need some information from you:\n\nYour Name:"
		return reply(message, constant.ResponseTypeInfoCollection, nil)
	default:
		return reply("Please select one of our service types:", constant.ResponseTypeServiceTypeSelection, constant.ServiceTypeSuggestions)
	}
}

// handleInfoCollection fills customer fields strictly in order. A rejected
// value re-prompts the same field with the validator's reason and the step
// does not advance.
func (cs *chatService) handleInfoCollection(sess *store.Session, text string) *dto.ChatResponse {
	field := nextMissingField(sess.Customer)
	if field == "" {
		return cs.advanceAfterInfo(sess)
	}

	value := strings.TrimSpace(text)
	if ok, reason := validateInfoField(field, value); !ok {
		message := fmt.Sprintf("That doesn't look right: %s\n\n%s", reason, fieldPrompt(field))
		return reply(message, constant.ResponseTypeInfoCollection, nil)
	}
	setInfoField(&sess.Customer, field, value)

	next := nextMissingField(sess.Customer)
	if next == "" {
		return cs.advanceAfterInfo(sess)
	}
	message := fieldPrompt(next)
	if field == fieldName {
		message = fmt.Sprintf("Thank you, %s! %s", sess.Customer.Name, message)
	}
	return reply(message, constant.ResponseTypeInfoCollection, nil)
}

// advanceAfterInfo moves past info collection: straight to the item menu when
// the service type was already chosen, otherwise to service selection.
func (cs *chatService) advanceAfterInfo(sess *store.Session) *dto.ChatResponse {
	if sess.SelectedCategory != "" {
		sess.Step = store.StepSelectingItems
		return cs.showMenu(sess.SelectedCategory)
	}
	sess.Step = store.StepSelectingService
	message := fmt.Sprintf("Perfect! All set, %s!\n\nNow, which service would you like?", sess.Customer.Name)
	return reply(message, constant.ResponseTypeServiceSelection, constant.ServiceSelectionSuggestions)
}

// handleLogisticsInfoCollection gathers the same contact fields, then hands
// the request to the logistics team rather than entering item selection.
func (cs *chatService) handleLogisticsInfoCollection(sess *store.Session, text string) *dto.ChatResponse {
	field := nextMissingField(sess.Customer)
	if field != "" {
		value := strings.TrimSpace(text)
		if ok, reason := validateInfoField(field, value); !ok {
			message := fmt.Sprintf("That doesn't look right: %s\n\n%s", reason, fieldPrompt(field))
			return reply(message, constant.ResponseTypeInfoCollection, nil)
		}
		setInfoField(&sess.Customer, field, value)
		if next := nextMissingField(sess.Customer); next != "" {
			message := fieldPrompt(next)
			if field == fieldName {
				message = fmt.Sprintf("Thank you, %s! %s", sess.Customer.Name, message)
			}
			return reply(message, constant.ResponseTypeInfoCollection, nil)
		}
	}

	name := sess.Customer.Name
	sess.ResetOrderState()
	message := fmt.Sprintf(
		"Thank you, %s! Your pickup & delivery request is in.\n\nOur logistics team will contact you shortly to confirm the schedule and your preferred cleaner.\n\nAnything else I can help with?",
		name)
	return reply(message, constant.ResponseTypeInformation, constant.StartOverSuggestions)
}
