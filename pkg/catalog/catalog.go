package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Item is a cleanable garment or bag with a base unit price and an optional
// list of service options. Immutable after init.
type Item struct {
	Key     string
	Name    string
	Price   decimal.Decimal
	Options []string
}

// HasOptions reports whether the item requires an option-selection turn.
func (i Item) HasOptions() bool {
	return len(i.Options) > 0
}

// Category groups items under a service type. ItemOrder preserves menu order.
type Category struct {
	Key         string
	Name        string
	Description string
	Items       map[string]Item
	ItemOrder   []string
}

const (
	CategoryDryCleaning = "dry_cleaning"
	CategoryLaundry     = "laundry"

	ItemWeddingDress = "wedding_dress"

	OptionBoxed = "Boxed"
	OptionNoBox = "No Box"
)

var weddingDressNoBoxPrice = price(150.00)

var categories map[string]Category
var categoryOrder = []string{CategoryDryCleaning, CategoryLaundry}

func price(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

func init() {
	starchOptions := []string{"No Starch", "Light Starch", "Medium Starch", "Heavy Starch", "Hanger", "Fold"}

	dryCleaning := []Item{
		{Key: "office_shirt", Name: "Office Shirt", Price: price(5.50)},
		{Key: "pants", Name: "Pants", Price: price(7.50), Options: []string{"Crease", "No crease"}},
		{Key: "dress_kids", Name: "Kids Dress", Price: price(8.00)},
		{Key: "dress_kids_premium", Name: "Kids Premium Dress", Price: price(10.00)},
		{Key: "dress_standard", Name: "Standard Dress", Price: price(12.00)},
		{Key: "dress_standard_long", Name: "Standard Extra Long Dress", Price: price(14.00)},
		{Key: "dress_cocktail", Name: "Cocktail Dress", Price: price(16.00)},
		{Key: "dress_formal", Name: "Formal/Gown Dress", Price: price(25.00)},
		{Key: "dress_evening", Name: "Evening/Prom Long Dress", Price: price(35.00)},
		{Key: "coat_lab", Name: "Lab Coat", Price: price(9.50)},
		{Key: "coat_short", Name: "Short Coat", Price: price(12.00)},
		{Key: "coat_3quarter", Name: "3/4 Length Coat", Price: price(14.00)},
		{Key: "coat_rain", Name: "Raincoat", Price: price(16.00)},
		{Key: "coat_over", Name: "Overcoat", Price: price(20.00)},
		{Key: "coat_down", Name: "Down Filled Coat", Price: price(25.00)},
		{Key: "coat_fur", Name: "Fur Lined Coat", Price: price(30.00)},
		{Key: "jumpsuit_short", Name: "Short Jump Suit", Price: price(10.00)},
		{Key: "jumpsuit_long", Name: "Long Jump Suit", Price: price(12.00)},
		{Key: "jumpsuit_premium", Name: "Long Premium Jump Suit", Price: price(16.00)},
		{Key: "curtains", Name: "Curtains (Per Panel)", Price: price(25.00)},
		{Key: "dashiki", Name: "Men's Dashiki (2 PC)", Price: price(18.00), Options: starchOptions},
		{Key: "agbada", Name: "Men's Agbada (3 PC)", Price: price(20.00), Options: starchOptions},
		{Key: ItemWeddingDress, Name: "Wedding Dress", Price: price(180.00), Options: []string{OptionBoxed, OptionNoBox}},
		{Key: "jacket", Name: "Jacket", Price: price(9.50)},
		{Key: "hood", Name: "Hood", Price: price(7.00)},
		{Key: "tuxedo", Name: "Tuxedo", Price: price(18.00)},
		{Key: "suit_2piece", Name: "2 Piece Suit", Price: price(18.00)},
		{Key: "tie", Name: "Tie", Price: price(4.00)},
		{Key: "sport_coat", Name: "Sport Coat", Price: price(9.50)},
		{Key: "blouse", Name: "Blouse", Price: price(6.50)},
		{Key: "polo_shirt", Name: "Polo Shirt", Price: price(5.50)},
		{Key: "blazer", Name: "Blazer", Price: price(7.00)},
		{Key: "suit_3piece", Name: "3 Piece Suit", Price: price(20.00)},
		{Key: "skirt", Name: "Skirt", Price: price(6.50)},
		{Key: "tuxedo_shirt", Name: "Tuxedo Shirt", Price: price(6.00)},
		{Key: "ladies_shirt", Name: "Ladies Shirt", Price: price(6.00)},
		{Key: "robe", Name: "Robe", Price: price(9.00)},
		{Key: "scarf", Name: "Scarf", Price: price(4.50)},
		{Key: "chef_coat", Name: "Chef Coat", Price: price(6.50)},
		{Key: "sweater", Name: "Sweater", Price: price(6.50)},
		{Key: "apron", Name: "Apron", Price: price(5.00)},
	}

	laundry := []Item{
		{Key: "bag_small", Name: "Small Bag (12 lb capacity)", Price: price(22.00)},
		{Key: "bag_medium", Name: "Medium Bag (18 lb capacity)", Price: price(33.00)},
		{Key: "bag_large", Name: "Large Bag (25 lb capacity)", Price: price(46.00)},
		{Key: "bag_king", Name: "King Size Premium Bag (35 lb capacity)", Price: price(65.00)},
		{Key: "comforter_twin", Name: "Comforter (Twin/Full)", Price: price(25.00)},
		{Key: "comforter_queen", Name: "Comforter (Queen/King)", Price: price(30.00)},
		{Key: "blanket_twin", Name: "Blanket (Full/Twin)", Price: price(20.00)},
		{Key: "blanket_queen", Name: "Blanket (Queen/King)", Price: price(25.00)},
		{Key: "mattress_twin", Name: "Mattress Cover (Twin/Full)", Price: price(15.00)},
		{Key: "mattress_queen", Name: "Mattress Cover (Queen/King)", Price: price(20.00)},
	}

	categories = map[string]Category{
		CategoryDryCleaning: buildCategory(CategoryDryCleaning, "Dry Cleaning Services",
			"Professional dry cleaning for specialty items", dryCleaning),
		CategoryLaundry: buildCategory(CategoryLaundry, "Laundry Services",
			"Full laundry service with wash, fold, and dry cleaning", laundry),
	}
}

func buildCategory(key, name, description string, items []Item) Category {
	m := make(map[string]Item, len(items))
	order := make([]string, 0, len(items))
	for _, it := range items {
		m[it.Key] = it
		order = append(order, it.Key)
	}
	return Category{Key: key, Name: name, Description: description, Items: m, ItemOrder: order}
}

// GetCategory looks up a service category by key.
func GetCategory(key string) (Category, error) {
	c, ok := categories[key]
	if !ok {
		return Category{}, fmt.Errorf("category %q: %w", key, ErrNotFound)
	}
	return c, nil
}

// GetItem looks up an item within a category.
func GetItem(categoryKey, itemKey string) (Item, error) {
	c, err := GetCategory(categoryKey)
	if err != nil {
		return Item{}, err
	}
	it, ok := c.Items[itemKey]
	if !ok {
		return Item{}, fmt.Errorf("item %q in %q: %w", itemKey, categoryKey, ErrNotFound)
	}
	return it, nil
}

// CategoryKeys returns category keys in menu order.
func CategoryKeys() []string {
	return append([]string(nil), categoryOrder...)
}

// ItemKeys returns every item key across all categories, in menu order.
func ItemKeys() []string {
	var keys []string
	for _, categoryKey := range categoryOrder {
		keys = append(keys, categories[categoryKey].ItemOrder...)
	}
	return keys
}

// UnitPrice resolves the effective unit price for an item given selected
// options. The wedding dress is the one item whose price depends on its
// option: Boxed keeps the catalog price, No Box is cheaper.
func UnitPrice(item Item, options []string) decimal.Decimal {
	if item.Key == ItemWeddingDress {
		for _, opt := range options {
			if opt == OptionNoBox {
				return weddingDressNoBoxPrice
			}
		}
	}
	return item.Price
}
