// Package items turns free text into (item, quantity) candidates for a chosen
// service category. Matching is substring and alias based against the catalog;
// the LLM collaborator may supply extra hints, but this parser is the
// deterministic path that must always work.
package items

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"valetkleen-be/pkg/catalog"
)

// Candidate is one parsed item request.
type Candidate struct {
	Key      string
	Name     string
	Quantity int
}

var numberPattern = regexp.MustCompile(`\d+`)

// aliases supplement the display-name match with common phrasings.
var aliases = map[string][]string{
	"shirt":     {"shirt", "shirts"},
	"pants":     {"pants", "trousers", "slacks"},
	"dress":     {"dress", "gown"},
	"coat":      {"coat", "jacket"},
	"bag":       {"bag", "laundry bag"},
	"comforter": {"comforter", "duvet"},
	"blanket":   {"blanket"},
	"suit":      {"suit"},
	"tie":       {"tie", "necktie"},
}

// Parse extracts item candidates from an utterance. Full display-name matches
// are consumed first so "office shirt" does not also read as a polo shirt or a
// ladies shirt through the shared word. Each item takes its quantity from the
// nearest unused number before its mention, defaulting to 1. Candidates come
// back in utterance order so batches are deterministic.
func Parse(text string, category catalog.Category) []Candidate {
	original := strings.ToLower(text)
	leftover := original

	type match struct {
		key string
		pos int
	}
	var found []match
	seen := make(map[string]bool)

	// Pass 1: full display-name matches, longest first, consuming the text so
	// shared words cannot re-match.
	byLength := append([]string(nil), category.ItemOrder...)
	sort.SliceStable(byLength, func(i, j int) bool {
		return len(category.Items[byLength[i]].Name) > len(category.Items[byLength[j]].Name)
	})
	for _, key := range byLength {
		name := strings.ToLower(category.Items[key].Name)
		if idx := strings.Index(leftover, name); idx >= 0 {
			found = append(found, match{key: key, pos: strings.Index(original, name)})
			seen[key] = true
			leftover = leftover[:idx] + leftover[idx+len(name):]
		}
	}

	// Pass 2: distinctive single words and aliases against the leftover text.
	// Positions are resolved against the original text so number binding stays
	// consistent with pass 1.
	for _, key := range category.ItemOrder {
		if seen[key] {
			continue
		}
		if token := partialMatchToken(leftover, category.Items[key]); token != "" {
			found = append(found, match{key: key, pos: strings.Index(original, token)})
			seen[key] = true
			if idx := strings.Index(leftover, token); idx >= 0 {
				leftover = leftover[:idx] + leftover[idx+len(token):]
			}
		}
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].pos < found[j].pos })

	// Numbers bind to the nearest following item mention.
	numberSpans := numberPattern.FindAllStringIndex(original, -1)
	usedNumbers := make([]bool, len(numberSpans))

	out := make([]Candidate, 0, len(found))
	for _, m := range found {
		item := category.Items[m.key]
		quantity := 1
		for i := len(numberSpans) - 1; i >= 0; i-- {
			if usedNumbers[i] || numberSpans[i][0] > m.pos {
				continue
			}
			if n, err := strconv.Atoi(original[numberSpans[i][0]:numberSpans[i][1]]); err == nil && n > 0 {
				quantity = n
				usedNumbers[i] = true
			}
			break
		}
		out = append(out, Candidate{Key: item.Key, Name: item.Name, Quantity: quantity})
	}
	return out
}

// partialMatchToken returns the first display-name word or alias present in
// the input, or "" when nothing matches.
func partialMatchToken(input string, item catalog.Item) string {
	// Short words like "pc" or "2" would over-match.
	for _, word := range strings.Fields(strings.ToLower(item.Name)) {
		if len(word) > 3 && strings.Contains(input, word) {
			return word
		}
	}

	for fragment, words := range aliases {
		if !strings.Contains(item.Key, fragment) {
			continue
		}
		for _, w := range words {
			if strings.Contains(input, w) {
				return w
			}
		}
	}
	return ""
}

// MatchOptions picks every catalog option named in the utterance, preserving
// the item's option order. "none" declines all options. Longer option labels
// are consumed first so "no crease" cannot also count as "Crease".
func MatchOptions(text string, item catalog.Item) []string {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "none") {
		return nil
	}

	byLength := append([]string(nil), item.Options...)
	sort.SliceStable(byLength, func(i, j int) bool {
		return len(byLength[i]) > len(byLength[j])
	})

	matched := make(map[string]bool, len(item.Options))
	remaining := lower
	for _, opt := range byLength {
		label := strings.ToLower(opt)
		if idx := strings.Index(remaining, label); idx >= 0 {
			matched[opt] = true
			remaining = remaining[:idx] + remaining[idx+len(label):]
		}
	}

	var selected []string
	for _, opt := range item.Options {
		if matched[opt] {
			selected = append(selected, opt)
		}
	}
	return selected
}
