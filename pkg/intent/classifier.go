// Package intent maps a raw utterance to an intent label and confidence.
// Keyword rules win over the similarity fallback; the similarity fallback wins
// over "unknown". The dialogue engine only consults this from free states.
package intent

import (
	"math"
	"regexp"
	"strings"
)

const (
	IntentGreeting        = "greeting"
	IntentPlaceOrder      = "place_order"
	IntentViewCart        = "view_cart"
	IntentCheckout        = "checkout"
	IntentClearCart       = "clear_cart"
	IntentRemoveItem      = "remove_item"
	IntentPayNow          = "pay_now"
	IntentServicesInquiry = "services_inquiry"
	IntentPricingInquiry  = "pricing_inquiry"
	IntentDeliveryInquiry = "delivery_inquiry"
	IntentAboutCompany    = "about_company"
	IntentContactInfo     = "contact_info"
	IntentProcessInquiry  = "process_inquiry"
	IntentUnknown         = "unknown"
)

// KeywordConfidence is the fixed confidence for a keyword-rule hit.
const KeywordConfidence = 0.95

// similarityFloor is the minimum cosine score before falling back to unknown.
const similarityFloor = 0.25

type rule struct {
	intent string
	phrase string
}

// Rules are checked in order, first match wins. Multi-word phrases match as
// substrings; single words match whole tokens so "hi" cannot fire inside
// "shirt".
var keywordRules = []rule{
	{IntentPayNow, "pay now"},
	{IntentCheckout, "proceed to checkout"},
	{IntentCheckout, "checkout"},
	{IntentCheckout, "check out"},
	{IntentCheckout, "complete order"},
	{IntentCheckout, "finish order"},
	{IntentCheckout, "place order now"},
	{IntentViewCart, "view cart"},
	{IntentViewCart, "view full cart"},
	{IntentViewCart, "show cart"},
	{IntentViewCart, "my cart"},
	{IntentClearCart, "clear cart"},
	{IntentClearCart, "empty cart"},
	{IntentRemoveItem, "remove item"},
	{IntentPlaceOrder, "place an order"},
	{IntentPlaceOrder, "place order"},
	{IntentPlaceOrder, "make an order"},
	{IntentPlaceOrder, "book a pickup"},
	{IntentPlaceOrder, "schedule pickup"},
	{IntentGreeting, "good morning"},
	{IntentGreeting, "good afternoon"},
	{IntentGreeting, "good evening"},
	{IntentGreeting, "hello"},
	{IntentGreeting, "hi"},
	{IntentGreeting, "hey"},
}

// exampleBags hold canonical phrases per intent for the similarity fallback,
// matching the product's original training phrases.
var exampleBags = map[string][]string{
	IntentGreeting: {
		"hello", "hi", "hey", "good morning", "good afternoon", "good evening",
		"how are you", "whats up", "greetings",
	},
	IntentPlaceOrder: {
		"place order", "make order", "order service", "book service", "schedule pickup",
		"i want to order", "need cleaning", "book cleaning", "arrange pickup",
	},
	IntentServicesInquiry: {
		"what services", "services offered", "what do you offer", "available services",
		"dry cleaning", "laundry service", "cleaning options", "types of cleaning",
	},
	IntentPricingInquiry: {
		"how much", "price", "cost", "pricing", "rates", "charges", "fees",
		"what does it cost", "pricing information",
	},
	IntentDeliveryInquiry: {
		"pickup and delivery", "delivery", "pickup", "when do you pickup",
		"delivery time", "pickup schedule", "how does delivery work",
	},
	IntentAboutCompany: {
		"about valetkleen", "about you", "company info", "who are you",
		"tell me about", "your company", "about your service",
	},
	IntentContactInfo: {
		"contact", "phone number", "email", "address", "how to reach",
		"contact information", "get in touch",
	},
	IntentProcessInquiry: {
		"how it works", "process", "how do you work", "steps", "procedure",
		"how does it work", "what happens after",
	},
}

var nonWord = regexp.MustCompile(`[^a-z0-9\s]`)

var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "is": true, "are": true, "do": true,
	"you": true, "i": true, "to": true, "my": true, "me": true, "please": true,
	"can": true, "for": true, "of": true, "and": true,
}

// Classifier scores utterances against the static intent tables. Read-only
// after construction, safe for concurrent use.
type Classifier struct {
	vectors map[string]map[string]float64
}

func NewClassifier() *Classifier {
	vectors := make(map[string]map[string]float64, len(exampleBags))
	for intent, phrases := range exampleBags {
		bag := make(map[string]float64)
		for _, phrase := range phrases {
			for _, tok := range tokenize(phrase) {
				bag[tok]++
			}
		}
		vectors[intent] = bag
	}
	return &Classifier{vectors: vectors}
}

// Classify returns the best intent label and its confidence in [0,1].
func (c *Classifier) Classify(text string) (string, float64) {
	if intent, ok := MatchKeyword(text); ok {
		return intent, KeywordConfidence
	}

	tokens := tokenize(text)
	if len(tokens) == 0 {
		return IntentUnknown, 0.0
	}
	query := make(map[string]float64, len(tokens))
	for _, tok := range tokens {
		query[tok]++
	}

	bestIntent := IntentUnknown
	bestScore := 0.0
	for intent, bag := range c.vectors {
		score := cosine(query, bag)
		if score > bestScore {
			bestIntent, bestScore = intent, score
		}
	}
	if bestScore < similarityFloor {
		return IntentUnknown, 0.0
	}
	return bestIntent, bestScore
}

// MatchKeyword applies only the keyword rules. The dialogue engine uses it for
// the mid-flow checkout/view-cart escape hatches.
func MatchKeyword(text string) (string, bool) {
	normalized := normalize(text)
	tokens := strings.Fields(normalized)
	tokenSet := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		tokenSet[tok] = true
	}
	for _, r := range keywordRules {
		if strings.Contains(r.phrase, " ") {
			if strings.Contains(normalized, r.phrase) {
				return r.intent, true
			}
		} else if tokenSet[r.phrase] {
			return r.intent, true
		}
	}
	return "", false
}

func normalize(text string) string {
	lower := strings.ToLower(text)
	return strings.TrimSpace(nonWord.ReplaceAllString(lower, ""))
}

func tokenize(text string) []string {
	fields := strings.Fields(normalize(text))
	out := fields[:0]
	for _, f := range fields {
		if !stopwords[f] {
			out = append(out, f)
		}
	}
	return out
}

func cosine(a, b map[string]float64) float64 {
	var dot, normA, normB float64
	for term, wa := range a {
		normA += wa * wa
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	for _, wb := range b {
		normB += wb * wb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
