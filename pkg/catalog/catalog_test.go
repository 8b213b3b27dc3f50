package catalog

import (
	"errors"
	"testing"
)

func TestGetCategory(t *testing.T) {
	for _, key := range CategoryKeys() {
		category, err := GetCategory(key)
		if err != nil {
			t.Fatalf("GetCategory(%q) failed: %v", key, err)
		}
		if len(category.Items) == 0 {
			t.Errorf("category %q has no items", key)
		}
		if len(category.ItemOrder) != len(category.Items) {
			t.Errorf("category %q: order has %d keys, items map has %d", key, len(category.ItemOrder), len(category.Items))
		}
	}

	if _, err := GetCategory("alterations"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetCategory(alterations) err = %v, want ErrNotFound", err)
	}
}

func TestGetItem(t *testing.T) {
	item, err := GetItem(CategoryDryCleaning, "office_shirt")
	if err != nil {
		t.Fatalf("GetItem(office_shirt) failed: %v", err)
	}
	if item.Price.StringFixed(2) != "5.50" {
		t.Errorf("office shirt price = %s, want 5.50", item.Price.StringFixed(2))
	}
	if item.HasOptions() {
		t.Errorf("office shirt should have no options")
	}

	if _, err := GetItem(CategoryLaundry, "office_shirt"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetItem(laundry, office_shirt) err = %v, want ErrNotFound", err)
	}
	if _, err := GetItem("alterations", "hem"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetItem(alterations, hem) err = %v, want ErrNotFound", err)
	}
}

func TestWeddingDressOptionPricing(t *testing.T) {
	dress, err := GetItem(CategoryDryCleaning, ItemWeddingDress)
	if err != nil {
		t.Fatalf("GetItem(wedding_dress) failed: %v", err)
	}

	tests := []struct {
		name    string
		options []string
		want    string
	}{
		{name: "boxed keeps catalog price", options: []string{OptionBoxed}, want: "180.00"},
		{name: "no box is discounted", options: []string{OptionNoBox}, want: "150.00"},
		{name: "unresolved defaults to catalog price", options: nil, want: "180.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnitPrice(dress, tt.options).StringFixed(2)
			if got != tt.want {
				t.Errorf("UnitPrice(%v) = %s, want %s", tt.options, got, tt.want)
			}
		})
	}
}

func TestUnitPriceIgnoresOptionsForOtherItems(t *testing.T) {
	pants, err := GetItem(CategoryDryCleaning, "pants")
	if err != nil {
		t.Fatalf("GetItem(pants) failed: %v", err)
	}
	if got := UnitPrice(pants, []string{"Crease"}).StringFixed(2); got != "7.50" {
		t.Errorf("UnitPrice(pants, Crease) = %s, want 7.50", got)
	}
}
