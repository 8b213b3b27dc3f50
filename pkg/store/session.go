package store

import (
	"time"

	"github.com/shopspring/decimal"
)

// Step is the session's current position in the ordering flow. The step alone
// decides which handler interprets the next utterance; intent detection is only
// consulted from StepWelcome.
type Step string

const (
	StepWelcome                 Step = "welcome"
	StepSelectingServiceType    Step = "selecting_service_type"
	StepCollectingInfo          Step = "collecting_info"
	StepCollectingLogisticsInfo Step = "collecting_logistics_info"
	StepSelectingService        Step = "selecting_service"
	StepSelectingItems          Step = "selecting_items"
	StepAddingOptions           Step = "adding_options"
)

const (
	SpeakerUser = "user"
	SpeakerBot  = "bot"
)

// CustomerInfo fields are filled strictly in order:
// name, email, address, phone, pickup date, pickup time.
type CustomerInfo struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	PickupDate string `json:"pickup_date"`
	PickupTime string `json:"pickup_time"`
}

// CartLine is one cart entry. Ids are monotonic within a session and survive
// removals of other lines.
type CartLine struct {
	ID          int             `json:"id"`
	CategoryKey string          `json:"category_key"`
	ItemKey     string          `json:"item_key"`
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Options     []string        `json:"options,omitempty"`
}

func (l CartLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// PendingItem is a parsed item that has not been committed to the cart yet,
// either because its options are unresolved or because it is waiting for the
// option queue to drain.
type PendingItem struct {
	CategoryKey string   `json:"category_key"`
	ItemKey     string   `json:"item_key"`
	Name        string   `json:"name"`
	Quantity    int      `json:"quantity"`
	Options     []string `json:"options,omitempty"`
}

// Turn is one utterance in the conversation transcript. Append-only.
type Turn struct {
	Speaker string    `json:"speaker"`
	Text    string    `json:"text"`
	At      time.Time `json:"at"`
}

// Session is the full per-conversation state. It is owned by the dialogue
// engine; repositories only load and save it.
type Session struct {
	ID               string       `json:"id"`
	Step             Step         `json:"step"`
	Customer         CustomerInfo `json:"customer"`
	SelectedCategory string       `json:"selected_category"`

	Cart       []CartLine `json:"cart"`
	NextLineID int        `json:"next_line_id"`

	// Option resolution: Pending is the item currently being asked about,
	// OptionQueue holds items still waiting for their turn, ReadyQueue holds
	// fully resolved items waiting for the batch flush.
	Pending     *PendingItem  `json:"pending,omitempty"`
	OptionQueue []PendingItem `json:"option_queue,omitempty"`
	ReadyQueue  []PendingItem `json:"ready_queue,omitempty"`

	Conversation []Turn    `json:"conversation"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:         id,
		Step:       StepWelcome,
		NextLineID: 1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Clone returns a deep copy. A turn mutates the copy and saves it once at the
// end, so a failed turn never leaves the stored session half-updated.
func (s *Session) Clone() *Session {
	c := *s
	c.Cart = append([]CartLine(nil), s.Cart...)
	for i := range c.Cart {
		c.Cart[i].Options = append([]string(nil), s.Cart[i].Options...)
	}
	c.OptionQueue = clonePending(s.OptionQueue)
	c.ReadyQueue = clonePending(s.ReadyQueue)
	if s.Pending != nil {
		p := *s.Pending
		p.Options = append([]string(nil), s.Pending.Options...)
		c.Pending = &p
	}
	c.Conversation = append([]Turn(nil), s.Conversation...)
	return &c
}

func clonePending(items []PendingItem) []PendingItem {
	if items == nil {
		return nil
	}
	out := make([]PendingItem, len(items))
	for i, p := range items {
		p.Options = append([]string(nil), p.Options...)
		out[i] = p
	}
	return out
}

// AppendTurn records one transcript entry.
func (s *Session) AppendTurn(speaker, text string) {
	s.Conversation = append(s.Conversation, Turn{Speaker: speaker, Text: text, At: time.Now()})
}

// ResetOrderState clears everything a completed order cycle consumes. The
// transcript is kept.
func (s *Session) ResetOrderState() {
	s.Step = StepWelcome
	s.Customer = CustomerInfo{}
	s.SelectedCategory = ""
	s.Cart = nil
	s.Pending = nil
	s.OptionQueue = nil
	s.ReadyQueue = nil
}
