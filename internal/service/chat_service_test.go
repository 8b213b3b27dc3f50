package service

import (
	"context"
	"testing"
	"time"

	"valetkleen-be/internal/config"
	"valetkleen-be/internal/constant"
	"valetkleen-be/internal/dto"
	"valetkleen-be/internal/model"
	"valetkleen-be/internal/repository/contract"
	"valetkleen-be/internal/repository/memory"
	"valetkleen-be/pkg/catalog"
	"valetkleen-be/pkg/intent"
	"valetkleen-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatHarness struct {
	chat      IChatService
	sessions  contract.SessionRepository
	orderRepo *fakeOrderRepository
}

func newChatHarness(t *testing.T) *chatHarness {
	t.Helper()
	sessions := memory.NewSessionRepository(time.Hour, time.Hour)
	orderRepo := newFakeOrderRepository()
	cart := NewCartService()
	orders := NewOrderService(orderRepo, nil, noopLogger{})

	cfg := config.ChatConfig{
		SessionTTL:      time.Hour,
		CleanupInterval: time.Hour,
		CheckoutPolicy:  config.CheckoutPolicyName,
		LLMTimeout:      time.Second,
	}

	chat := NewChatService(sessions, cart, orders, nil, intent.NewClassifier(), nil, cfg, noopLogger{})
	return &chatHarness{chat: chat, sessions: sessions, orderRepo: orderRepo}
}

func (h *chatHarness) send(t *testing.T, sessionId, message string) *dto.ChatResponse {
	t.Helper()
	resp, err := h.chat.SendChat(context.Background(), &dto.ChatRequest{Message: message, SessionId: sessionId})
	require.NoError(t, err)
	return resp
}

func (h *chatHarness) session(t *testing.T, id string) *store.Session {
	t.Helper()
	sess, ok := h.sessions.Get(id)
	require.True(t, ok, "session %s not found", id)
	return sess
}

// seedItemSelection puts a session directly at the item-selection step with a
// named customer, skipping the scripted info collection.
func (h *chatHarness) seedItemSelection(t *testing.T, id string) {
	t.Helper()
	sess, created := h.sessions.GetOrCreate(id)
	require.True(t, created)
	sess.Step = store.StepSelectingItems
	sess.SelectedCategory = catalog.CategoryDryCleaning
	sess.Customer.Name = "Ada Brown"
	h.sessions.Save(sess)
}

func TestChatGreetingStartsSession(t *testing.T) {
	h := newChatHarness(t)

	resp := h.send(t, "", "hello")
	assert.NotEmpty(t, resp.SessionId)
	assert.Equal(t, constant.ResponseTypeGreeting, resp.Type)
	assert.Equal(t, constant.WelcomeSuggestions, resp.Suggestions)

	sess := h.session(t, resp.SessionId)
	assert.Equal(t, store.StepWelcome, sess.Step)
	assert.Len(t, sess.Conversation, 2)
	assert.Equal(t, store.SpeakerUser, sess.Conversation[0].Speaker)
	assert.Equal(t, store.SpeakerBot, sess.Conversation[1].Speaker)
}

func TestChatEmailIsValidatedBeforeAdvancing(t *testing.T) {
	h := newChatHarness(t)

	resp := h.send(t, "", "I want to place an order")
	id := resp.SessionId
	assert.Equal(t, constant.ResponseTypeServiceTypeSelection, resp.Type)

	h.send(t, id, "Dry-Cleaning Services")
	h.send(t, id, "Ada Brown")

	// While email is unset, any utterance is read as a candidate email.
	resp = h.send(t, id, "not-an-email")
	assert.Equal(t, constant.ResponseTypeInfoCollection, resp.Type)
	assert.Contains(t, resp.Message, "valid email")

	sess := h.session(t, id)
	assert.Equal(t, store.StepCollectingInfo, sess.Step)
	assert.Equal(t, "Ada Brown", sess.Customer.Name)
	assert.Empty(t, sess.Customer.Email)

	resp = h.send(t, id, "ada@example.com")
	assert.Equal(t, constant.ResponseTypeInfoCollection, resp.Type)
	assert.Equal(t, "ada@example.com", h.session(t, id).Customer.Email)
}

func TestChatOptionQueueDrainsBeforeAnyCartChange(t *testing.T) {
	h := newChatHarness(t)
	h.seedItemSelection(t, "q1")

	// A has options, B does not, C has options: A is prompted first, then C,
	// and nothing hits the cart until the whole batch resolves.
	resp := h.send(t, "q1", "1 wedding dress, 2 office shirts and 1 pants")
	assert.Equal(t, constant.ResponseTypeOptionSelection, resp.Type)
	assert.Contains(t, resp.Message, "Wedding Dress")

	sess := h.session(t, "q1")
	assert.Equal(t, store.StepAddingOptions, sess.Step)
	assert.Empty(t, sess.Cart)
	require.NotNil(t, sess.Pending)
	assert.Equal(t, catalog.ItemWeddingDress, sess.Pending.ItemKey)
	require.Len(t, sess.OptionQueue, 1)
	assert.Equal(t, "pants", sess.OptionQueue[0].ItemKey)
	require.Len(t, sess.ReadyQueue, 1)
	assert.Equal(t, "office_shirt", sess.ReadyQueue[0].ItemKey)

	resp = h.send(t, "q1", "Boxed")
	assert.Equal(t, constant.ResponseTypeOptionSelection, resp.Type)
	assert.Contains(t, resp.Message, "Pants")
	assert.Empty(t, h.session(t, "q1").Cart)

	resp = h.send(t, "q1", "crease")
	assert.Equal(t, constant.ResponseTypeCartUpdate, resp.Type)

	sess = h.session(t, "q1")
	assert.Equal(t, store.StepSelectingItems, sess.Step)
	assert.Nil(t, sess.Pending)
	assert.Empty(t, sess.OptionQueue)
	assert.Empty(t, sess.ReadyQueue)
	require.Len(t, sess.Cart, 3)

	total := NewCartService().Summary(sess).Total
	assert.Equal(t, "198.50", total.StringFixed(2))
}

func TestChatCheckoutOverrideFromItemSelection(t *testing.T) {
	h := newChatHarness(t)
	h.seedItemSelection(t, "c1")

	h.send(t, "c1", "2 office shirts")
	require.NotEmpty(t, h.session(t, "c1").Cart)

	resp := h.send(t, "c1", "ok let's proceed to checkout")
	assert.Equal(t, constant.ResponseTypeCheckoutSuccess, resp.Type)
	assert.Contains(t, resp.Message, "VK")

	sess := h.session(t, "c1")
	assert.Empty(t, sess.Cart)
	assert.Equal(t, store.StepWelcome, sess.Step)
	assert.Len(t, h.orderRepo.orders, 1)
}

func TestChatViewCartOverrideMidItemSelection(t *testing.T) {
	h := newChatHarness(t)
	h.seedItemSelection(t, "v1")

	h.send(t, "v1", "1 blouse")
	resp := h.send(t, "v1", "view cart")
	assert.Equal(t, constant.ResponseTypeCartView, resp.Type)
	assert.Contains(t, resp.Message, "Blouse")
	// Viewing the cart must not disturb the flow.
	assert.Equal(t, store.StepSelectingItems, h.session(t, "v1").Step)
}

func TestChatCheckoutWithEmptyCart(t *testing.T) {
	h := newChatHarness(t)

	resp := h.send(t, "", "checkout")
	assert.Equal(t, constant.ResponseTypeError, resp.Type)
	assert.Contains(t, resp.Message, "empty")
}

func TestChatClearCart(t *testing.T) {
	h := newChatHarness(t)
	h.seedItemSelection(t, "cc1")

	h.send(t, "cc1", "2 office shirts")
	resp := h.send(t, "cc1", "clear cart")
	assert.Equal(t, constant.ResponseTypeCartUpdate, resp.Type)
	assert.Empty(t, h.session(t, "cc1").Cart)
}

func TestChatFullOrderScenario(t *testing.T) {
	h := newChatHarness(t)

	resp := h.send(t, "", "hi")
	id := resp.SessionId

	h.send(t, id, "place an order")
	h.send(t, id, "Dry-Cleaning Services")
	h.send(t, id, "Ada Brown")
	h.send(t, id, "ada@example.com")
	h.send(t, id, "123 Main Street, Lanham MD")
	h.send(t, id, "240-555-1234")
	h.send(t, id, "Monday, Dec 15")
	resp = h.send(t, id, "9:00 AM")
	assert.Equal(t, constant.ResponseTypeItemSelection, resp.Type)

	resp = h.send(t, id, "2 office shirts")
	assert.Equal(t, constant.ResponseTypeCartUpdate, resp.Type)
	assert.Contains(t, resp.Message, "$11.00")

	resp = h.send(t, id, "1 wedding dress")
	assert.Equal(t, constant.ResponseTypeOptionSelection, resp.Type)

	resp = h.send(t, id, "Boxed")
	assert.Equal(t, constant.ResponseTypeCartUpdate, resp.Type)
	assert.Contains(t, resp.Message, "$191.00")

	resp = h.send(t, id, "proceed to checkout")
	assert.Equal(t, constant.ResponseTypeCheckoutSuccess, resp.Type)

	require.Len(t, h.orderRepo.orders, 1)
	for _, order := range h.orderRepo.orders {
		assert.Equal(t, model.OrderStatusPending, order.Status)
		assert.Equal(t, "191.00", order.Total.StringFixed(2))
		assert.Equal(t, "Ada Brown", order.CustomerName)
	}

	sess := h.session(t, id)
	assert.Empty(t, sess.Cart)
	assert.Equal(t, store.StepWelcome, sess.Step)
}

func TestChatInquiries(t *testing.T) {
	h := newChatHarness(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "pricing", text: "how much does it cost", want: "Office Shirt - $5.50"},
		{name: "services", text: "what services do you offer", want: "Dry Cleaning"},
		{name: "process", text: "how does it work", want: "pick up"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := h.send(t, "", tt.text)
			assert.Equal(t, constant.ResponseTypeInformation, resp.Type)
			assert.Contains(t, resp.Message, tt.want)
		})
	}
}

func TestChatUnknownUtterance(t *testing.T) {
	h := newChatHarness(t)

	resp := h.send(t, "", "xyzzy frobnicate quux")
	assert.Equal(t, constant.ResponseTypeInformation, resp.Type)
	assert.Equal(t, constant.UnknownMessage, resp.Message)
}

func TestChatTranscript(t *testing.T) {
	h := newChatHarness(t)

	resp := h.send(t, "", "hello")
	transcript, err := h.chat.GetTranscript(resp.SessionId)
	require.NoError(t, err)
	assert.Equal(t, resp.SessionId, transcript.SessionId)
	require.Len(t, transcript.Turns, 2)
	assert.Equal(t, "hello", transcript.Turns[0].Text)

	_, err = h.chat.GetTranscript("missing")
	assert.Error(t, err)
}

func TestChatLogisticsBranchHandsOff(t *testing.T) {
	h := newChatHarness(t)

	resp := h.send(t, "", "place an order")
	id := resp.SessionId

	resp = h.send(t, id, "Logistics Service")
	assert.Equal(t, constant.ResponseTypeInfoCollection, resp.Type)
	assert.Equal(t, store.StepCollectingLogisticsInfo, h.session(t, id).Step)

	h.send(t, id, "Ada Brown")
	h.send(t, id, "ada@example.com")
	h.send(t, id, "123 Main Street, Lanham MD")
	h.send(t, id, "240-555-1234")
	h.send(t, id, "Monday, Dec 15")
	resp = h.send(t, id, "9:00 AM")

	assert.Equal(t, constant.ResponseTypeInformation, resp.Type)
	assert.Contains(t, resp.Message, "logistics team")
	assert.Equal(t, store.StepWelcome, h.session(t, id).Step)
}
