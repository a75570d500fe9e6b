package order

import "strings"

const (
	DefaultMilk  = "None"
	DefaultSugar = "0"
)

// Requester identifies the person ordering.
type Requester struct {
	id          string
	displayName string
}

func NewRequester(id, displayName string) Requester {
	return Requester{id: id, displayName: displayName}
}

func (r Requester) ID() string          { return r.id }
func (r Requester) DisplayName() string { return r.displayName }

// Item is the order content: the required type and size plus optional
// modifiers, with defaults applied when a modifier is absent.
type Item struct {
	coffeeType string
	size       string
	milk       string
	sugar      string
	notes      string
}

func NewItem(coffeeType, size, milk, sugar, notes string) Item {
	milk = strings.TrimSpace(milk)
	if milk == "" {
		milk = DefaultMilk
	}
	sugar = strings.TrimSpace(sugar)
	if sugar == "" {
		sugar = DefaultSugar
	}
	return Item{
		coffeeType: strings.TrimSpace(coffeeType),
		size:       strings.TrimSpace(size),
		milk:       milk,
		sugar:      sugar,
		notes:      strings.TrimSpace(notes),
	}
}

func (i Item) CoffeeType() string { return i.coffeeType }
func (i Item) Size() string       { return i.size }
func (i Item) Milk() string       { return i.milk }
func (i Item) Sugar() string      { return i.sugar }
func (i Item) Notes() string      { return i.notes }

func (i Item) HasMilk() bool  { return i.milk != DefaultMilk }
func (i Item) HasSugar() bool { return i.sugar != DefaultSugar }
