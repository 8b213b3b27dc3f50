package items

import (
	"testing"

	"valetkleen-be/pkg/catalog"
)

func dryCleaning(t *testing.T) catalog.Category {
	t.Helper()
	category, err := catalog.GetCategory(catalog.CategoryDryCleaning)
	if err != nil {
		t.Fatalf("catalog missing dry cleaning category: %v", err)
	}
	return category
}

func laundry(t *testing.T) catalog.Category {
	t.Helper()
	category, err := catalog.GetCategory(catalog.CategoryLaundry)
	if err != nil {
		t.Fatalf("catalog missing laundry category: %v", err)
	}
	return category
}

func TestParseSingleItemWithQuantity(t *testing.T) {
	got := Parse("I need 2 office shirts", dryCleaning(t))

	if len(got) != 1 {
		t.Fatalf("Parse returned %d candidates, want 1: %+v", len(got), got)
	}
	if got[0].Key != "office_shirt" || got[0].Quantity != 2 {
		t.Errorf("got %+v, want office_shirt x2", got[0])
	}
}

func TestParseFullNameDoesNotLeakIntoVariants(t *testing.T) {
	// "office shirt" shares the word "shirt" with several catalog items; the
	// full-name match must consume it so only one candidate comes back.
	got := Parse("add 1 office shirt please", dryCleaning(t))

	if len(got) != 1 {
		t.Fatalf("Parse returned %d candidates, want 1: %+v", len(got), got)
	}
	if got[0].Key != "office_shirt" {
		t.Errorf("got %q, want office_shirt", got[0].Key)
	}
}

func TestParseMultipleItemsBindQuantitiesInOrder(t *testing.T) {
	got := Parse("1 wedding dress and 2 office shirts", dryCleaning(t))

	if len(got) != 2 {
		t.Fatalf("Parse returned %d candidates, want 2: %+v", len(got), got)
	}
	if got[0].Key != "wedding_dress" || got[0].Quantity != 1 {
		t.Errorf("first candidate = %+v, want wedding_dress x1", got[0])
	}
	if got[1].Key != "office_shirt" || got[1].Quantity != 2 {
		t.Errorf("second candidate = %+v, want office_shirt x2", got[1])
	}
}

func TestParseAlias(t *testing.T) {
	got := Parse("can you clean my trousers", dryCleaning(t))

	if len(got) != 1 {
		t.Fatalf("Parse returned %d candidates, want 1: %+v", len(got), got)
	}
	if got[0].Key != "pants" || got[0].Quantity != 1 {
		t.Errorf("got %+v, want pants x1", got[0])
	}
}

func TestParseDefaultsQuantityToOne(t *testing.T) {
	got := Parse("wedding dress", dryCleaning(t))

	if len(got) != 1 || got[0].Quantity != 1 {
		t.Fatalf("got %+v, want single candidate with quantity 1", got)
	}
}

func TestParseNoMatch(t *testing.T) {
	if got := Parse("a bicycle and a lawnmower", laundry(t)); len(got) != 0 {
		t.Errorf("Parse matched unexpectedly: %+v", got)
	}
}

func TestMatchOptions(t *testing.T) {
	pants, err := catalog.GetItem(catalog.CategoryDryCleaning, "pants")
	if err != nil {
		t.Fatalf("catalog missing pants: %v", err)
	}
	wedding, err := catalog.GetItem(catalog.CategoryDryCleaning, catalog.ItemWeddingDress)
	if err != nil {
		t.Fatalf("catalog missing wedding dress: %v", err)
	}
	dashiki, err := catalog.GetItem(catalog.CategoryDryCleaning, "dashiki")
	if err != nil {
		t.Fatalf("catalog missing dashiki: %v", err)
	}

	tests := []struct {
		name string
		text string
		item catalog.Item
		want []string
	}{
		{name: "single option", text: "with crease please", item: pants, want: []string{"Crease"}},
		{name: "negated option not double counted", text: "no crease", item: pants, want: []string{"No crease"}},
		{name: "none declines", text: "none", item: pants, want: nil},
		{name: "boxed", text: "Boxed please", item: wedding, want: []string{"Boxed"}},
		{name: "no box", text: "no box", item: wedding, want: []string{"No Box"}},
		{name: "starch and finish", text: "medium starch and hanger", item: dashiki, want: []string{"Medium Starch", "Hanger"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchOptions(tt.text, tt.item)
			if len(got) != len(tt.want) {
				t.Fatalf("MatchOptions(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("MatchOptions(%q)[%d] = %q, want %q", tt.text, i, got[i], tt.want[i])
				}
			}
		})
	}
}
