package service

import (
	"context"
	"fmt"
	"strings"

	"valetkleen-be/internal/constant"
	"valetkleen-be/internal/dto"
	"valetkleen-be/pkg/catalog"
	"valetkleen-be/pkg/items"
	"valetkleen-be/pkg/store"
)

var starchLevels = []string{"No Starch", "Light Starch", "Medium Starch", "Heavy Starch"}
var finishChoices = []string{"Hanger", "Fold"}

func (cs *chatService) handleServiceSelection(sess *store.Session, text string) *dto.ChatResponse {
	processed := strings.ToLower(text)

	switch {
	case strings.Contains(processed, "dry cleaning") ||
		(strings.Contains(processed, "dry") && !strings.Contains(processed, "laundry")):
		sess.SelectedCategory = catalog.CategoryDryCleaning
		sess.Step = store.StepSelectingItems
		return cs.showMenu(catalog.CategoryDryCleaning)
	case strings.Contains(processed, "laundry"):
		sess.SelectedCategory = catalog.CategoryLaundry
		sess.Step = store.StepSelectingItems
		return cs.showMenu(catalog.CategoryLaundry)
	default:
		return reply("Please select one of our services:", constant.ResponseTypeServiceSelection, constant.ServiceSelectionSuggestions)
	}
}

func (cs *chatService) showMenu(categoryKey string) *dto.ChatResponse {
	category, err := catalog.GetCategory(categoryKey)
	if err != nil {
		return reply("Please select one of our services:", constant.ResponseTypeServiceSelection, constant.ServiceSelectionSuggestions)
	}

	var menu strings.Builder
	menu.WriteString(fmt.Sprintf("%s (%s):\n\n", strings.ToUpper(category.Name), category.Description))
	for i, key := range category.ItemOrder {
		item := category.Items[key]
		menu.WriteString(fmt.Sprintf("%d. %s - $%s", i+1, item.Name, item.Price.StringFixed(2)))
		if item.HasOptions() {
			menu.WriteString(fmt.Sprintf(" (Options: %s)", strings.Join(item.Options, ", ")))
		}
		menu.WriteString("\n")
	}
	menu.WriteString("\nYou can say things like:\n- 'I need 2 office shirts'\n- 'Add 1 cocktail dress'\n- 'I want pants with crease option'\n\nWhat would you like to add?")

	return reply(menu.String(), constant.ResponseTypeItemSelection, itemSuggestions(category))
}

func itemSuggestions(category catalog.Category) []string {
	limit := 8
	if len(category.ItemOrder) < limit {
		limit = len(category.ItemOrder)
	}
	suggestions := make([]string, 0, limit)
	for _, key := range category.ItemOrder[:limit] {
		item := category.Items[key]
		suggestions = append(suggestions, fmt.Sprintf("%s - $%s", item.Name, item.Price.StringFixed(2)))
	}
	return suggestions
}

// handleItemSelection parses the utterance into candidates, splits them into
// "needs options" and "ready", and either starts the option queue or flushes
// everything straight into the cart. Nothing reaches the cart while the queue
// is non-empty.
func (cs *chatService) handleItemSelection(ctx context.Context, sess *store.Session, text string) (*dto.ChatResponse, error) {
	if sess.SelectedCategory == "" {
		return cs.handleServiceSelection(sess, text), nil
	}
	category, err := catalog.GetCategory(sess.SelectedCategory)
	if err != nil {
		return nil, err
	}

	candidates := items.Parse(text, category)
	if len(candidates) == 0 {
		candidates = cs.candidatesFromLLM(ctx, text, category)
	}
	if len(candidates) == 0 {
		return reply(
			"I couldn't understand that. Please try again or select from the menu:",
			constant.ResponseTypeItemSelection,
			itemSuggestions(category),
		), nil
	}

	var queue, ready []store.PendingItem
	for _, candidate := range candidates {
		item := category.Items[candidate.Key]
		pending := store.PendingItem{
			CategoryKey: category.Key,
			ItemKey:     candidate.Key,
			Name:        candidate.Name,
			Quantity:    candidate.Quantity,
		}
		if !item.HasOptions() {
			ready = append(ready, pending)
			continue
		}
		// Options named inline ("pants with crease") skip the queue.
		opts := items.MatchOptions(text, item)
		if len(opts) > 0 && optionsComplete(candidate.Key, opts) {
			pending.Options = opts
			ready = append(ready, pending)
			continue
		}
		queue = append(queue, pending)
	}

	if len(queue) > 0 {
		sess.Pending = &queue[0]
		sess.OptionQueue = queue[1:]
		sess.ReadyQueue = ready
		sess.Step = store.StepAddingOptions

		item := category.Items[sess.Pending.ItemKey]
		message := fmt.Sprintf("Perfect! I found: %dx %s\n\n%s", sess.Pending.Quantity, sess.Pending.Name, optionPrompt(item))
		return reply(message, constant.ResponseTypeOptionSelection, append(append([]string{}, item.Options...), "None")), nil
	}

	return cs.flushReady(sess, ready)
}

// candidatesFromLLM asks the optional model for item hints when the
// deterministic parser finds nothing. Unknown keys are dropped.
func (cs *chatService) candidatesFromLLM(ctx context.Context, text string, category catalog.Category) []items.Candidate {
	if !cs.cfg.LLMEnabled || cs.resolver == nil {
		return nil
	}
	llmCtx, cancel := context.WithTimeout(ctx, cs.cfg.LLMTimeout)
	defer cancel()

	hint, err := cs.resolver.ResolveIntent(llmCtx, text, category.ItemOrder)
	if err != nil {
		cs.log.Warn("chat_service", "llm item resolution unavailable", map[string]interface{}{"error": err.Error()})
		return nil
	}
	var out []items.Candidate
	for _, itemHint := range hint.Items {
		item, ok := category.Items[itemHint.ItemKey]
		if !ok {
			continue
		}
		quantity := itemHint.Quantity
		if quantity < 1 {
			quantity = 1
		}
		out = append(out, items.Candidate{Key: item.Key, Name: item.Name, Quantity: quantity})
	}
	return out
}

// handleOptionSelection resolves the current pending item's options, then
// either prompts for the next queued item or flushes the whole batch.
func (cs *chatService) handleOptionSelection(sess *store.Session, text string) (*dto.ChatResponse, error) {
	if sess.Pending == nil {
		sess.Step = store.StepWelcome
		return reply(
			"Sorry, there's no pending item for option selection. Please start your order again.",
			constant.ResponseTypeError,
			constant.StartOverSuggestions,
		), nil
	}

	category, err := catalog.GetCategory(sess.Pending.CategoryKey)
	if err != nil {
		return nil, err
	}
	item, err := catalog.GetItem(sess.Pending.CategoryKey, sess.Pending.ItemKey)
	if err != nil {
		return nil, err
	}

	opts := items.MatchOptions(text, item)
	if !optionsComplete(item.Key, opts) && !saidNone(text) {
		message := "Please specify both:\n\n- Starch level: No Starch, Light Starch, Medium Starch, or Heavy Starch\n- Finish: Hanger or Fold\n\nExample: \"Medium Starch and Hanger\""
		suggestions := []string{"No Starch and Hanger", "Light Starch and Fold", "Medium Starch and Hanger", "Heavy Starch and Fold"}
		return reply(message, constant.ResponseTypeOptionSelection, suggestions), nil
	}

	resolved := *sess.Pending
	resolved.Options = opts
	sess.ReadyQueue = append(sess.ReadyQueue, resolved)

	if len(sess.OptionQueue) > 0 {
		next := sess.OptionQueue[0]
		sess.OptionQueue = sess.OptionQueue[1:]
		sess.Pending = &next

		nextItem := category.Items[next.ItemKey]
		message := fmt.Sprintf("Got it: %s\n\nNext item: %dx %s\n\n%s",
			pendingLabel(resolved), next.Quantity, next.Name, optionPrompt(nextItem))
		return reply(message, constant.ResponseTypeOptionSelection, append(append([]string{}, nextItem.Options...), "None")), nil
	}

	sess.Pending = nil
	sess.OptionQueue = nil
	ready := sess.ReadyQueue
	sess.ReadyQueue = nil
	return cs.flushReady(sess, ready)
}

// flushReady commits a fully resolved batch to the cart in one pass and
// returns the cart-update view.
func (cs *chatService) flushReady(sess *store.Session, ready []store.PendingItem) (*dto.ChatResponse, error) {
	sess.Step = store.StepSelectingItems

	added := make([]string, 0, len(ready))
	for _, pending := range ready {
		if _, err := cs.cartService.Add(sess, pending.CategoryKey, pending.ItemKey, pending.Quantity, pending.Options); err != nil {
			return nil, err
		}
		added = append(added, pendingLabel(pending))
	}

	message := fmt.Sprintf("Added to cart: %s\n\n%s\n\nWould you like to add more items or proceed to checkout?",
		strings.Join(added, ", "), cs.cartSummaryText(sess))
	return reply(message, constant.ResponseTypeCartUpdate, constant.CartUpdateSuggestions), nil
}

func pendingLabel(pending store.PendingItem) string {
	label := fmt.Sprintf("%dx %s", pending.Quantity, pending.Name)
	if len(pending.Options) > 0 {
		label += fmt.Sprintf(" (%s)", strings.Join(pending.Options, ", "))
	}
	return label
}

func optionPrompt(item catalog.Item) string {
	switch item.Key {
	case "agbada", "dashiki":
		return "Starch Level Options:\n- No Starch\n- Light Starch\n- Medium Starch\n- Heavy Starch\n\nFinish:\n- Hanger\n- Fold\n\nPlease specify both, e.g. \"Medium Starch and Hanger\" or \"No Starch and Fold\"."
	case catalog.ItemWeddingDress:
		return "Boxing Options:\n- Boxed - $180.00 (professional preservation box)\n- No Box - $150.00 (standard cleaning only)\n\nWhich option would you prefer?"
	default:
		var b strings.Builder
		b.WriteString("This item has these options:\n\n")
		for _, option := range item.Options {
			b.WriteString("- " + option + "\n")
		}
		b.WriteString("\nWhich option would you prefer?")
		return b.String()
	}
}

// optionsComplete is the per-item acceptance rule: two-piece garments need a
// starch level and a finish, everything else accepts any subset.
func optionsComplete(itemKey string, opts []string) bool {
	if itemKey != "agbada" && itemKey != "dashiki" {
		return true
	}
	var hasStarch, hasFinish bool
	for _, opt := range opts {
		for _, starch := range starchLevels {
			if opt == starch {
				hasStarch = true
			}
		}
		for _, finish := range finishChoices {
			if opt == finish {
				hasFinish = true
			}
		}
	}
	return hasStarch && hasFinish
}

func saidNone(text string) bool {
	return strings.Contains(strings.ToLower(text), "none")
}

func (cs *chatService) cartSummaryText(sess *store.Session) string {
	summary := cs.cartService.Summary(sess)
	if summary.LineCount == 0 {
		return "Your cart is empty."
	}

	var b strings.Builder
	b.WriteString("Your Cart:\n")
	for i, line := range summary.Lines {
		b.WriteString(fmt.Sprintf("%d. %dx %s", i+1, line.Quantity, line.Name))
		if len(line.Options) > 0 {
			b.WriteString(fmt.Sprintf(" (%s)", strings.Join(line.Options, ", ")))
		}
		b.WriteString(fmt.Sprintf(" - $%s\n", line.Total.StringFixed(2)))
	}
	b.WriteString(fmt.Sprintf("\nTotal: $%s", summary.Total.StringFixed(2)))
	return b.String()
}
