package restaurant

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Rescind failures.
var (
	ErrNoSuchEntry      = errors.New("no such entry")
	ErrNotAnOrder       = errors.New("entry is not an order")
	ErrAlreadyRescinded = errors.New("order already rescinded")
)

// Entry is one line on a table's bill.
type Entry interface {
	// Amount is the signed amount in cents this entry adds to the bill.
	Amount() int
}

// SpecialRequest is a free-text request attached to an order.
type SpecialRequest struct {
	Request string
	Charge  int
}

// Order is a placed food item with its special requests.
type Order struct {
	Time            time.Time
	Item            FoodItem
	SpecialRequests []SpecialRequest
}

// Amount returns the item price plus all special request charges.
func (o *Order) Amount() int {
	total := o.Item.Price
	for _, req := range o.SpecialRequests {
		total += req.Charge
	}
	return total
}

// Rescindment cancels the order at OrderIndex (0-based) by refunding Price.
type Rescindment struct {
	Time       time.Time
	OrderIndex int
	Price      int
}

// Amount returns the refunded price as a negative amount.
func (r *Rescindment) Amount() int {
	return -r.Price
}

// Table is a named group of guests and the entries on their bill.
type Table struct {
	ID      string
	Entries []Entry
}

// NewTable creates an empty table.
func NewTable(id string) *Table {
	return &Table{ID: id}
}

// Amount sums all entries.
func (t *Table) Amount() int {
	total := 0
	for _, e := range t.Entries {
		total += e.Amount()
	}
	return total
}

// PlaceOrder appends an order for item.
func (t *Table) PlaceOrder(at time.Time, item FoodItem, requests []SpecialRequest) *Order {
	order := &Order{Time: at, Item: item, SpecialRequests: append([]SpecialRequest(nil), requests...)}
	t.Entries = append(t.Entries, order)
	return order
}

// Rescind appends a rescindment for entry number no (1-based). Only orders can
// be rescinded, and each at most once.
func (t *Table) Rescind(no int, at time.Time) (*Order, *Rescindment, error) {
	if no < 1 || no > len(t.Entries) {
		return nil, nil, ErrNoSuchEntry
	}
	order, ok := t.Entries[no-1].(*Order)
	if !ok {
		return nil, nil, ErrNotAnOrder
	}
	if t.rescinded(no - 1) {
		return order, nil, ErrAlreadyRescinded
	}
	r := &Rescindment{Time: at, OrderIndex: no - 1, Price: order.Amount()}
	t.Entries = append(t.Entries, r)
	return order, r, nil
}

func (t *Table) rescinded(index int) bool {
	for _, e := range t.Entries {
		if r, ok := e.(*Rescindment); ok && r.OrderIndex == index {
			return true
		}
	}
	return false
}

// Listing renders the numbered entries followed by the total, one per line.
func (t *Table) Listing(currency string) string {
	var sb strings.Builder
	for i, e := range t.Entries {
		switch e := e.(type) {
		case *Order:
			fmt.Fprintf(&sb, " %d. %s +%s\n", i+1, e.Item.Name, FormatMoney(e.Item.Price, currency))
			for _, req := range e.SpecialRequests {
				fmt.Fprintf(&sb, "  + %s (%s)\n", req.Request, FormatMoney(req.Charge, currency))
			}
		case *Rescindment:
			fmt.Fprintf(&sb, " %d. Rescind order no. %d -%s\n", i+1, e.OrderIndex+1, FormatMoney(e.Price, currency))
		}
	}
	fmt.Fprintf(&sb, "Total: %s\n", FormatMoney(t.Amount(), currency))
	return sb.String()
}
