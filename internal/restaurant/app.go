// Package restaurant implements the table-order domain: the menu, tables and
// their orders, invoices, and the commands that drive them from a shell.
package restaurant

import (
	"errors"
	"sort"

	"tableshell/internal/clock"
)

// DefaultSpecialRequestCharge is the optional charge for a special request, in cents.
const DefaultSpecialRequestCharge = 100

// Options tune an App.
type Options struct {
	// Currency is appended to rendered amounts. Defaults to "€".
	Currency string
	// SpecialRequestCharge is in cents. Zero selects DefaultSpecialRequestCharge.
	SpecialRequestCharge int
}

// App holds the in-memory restaurant state behind the shell commands.
type App struct {
	menu     *Menu
	store    InvoiceStore
	clock    clock.Clock
	currency string
	charge   int

	tables  map[string]*Table
	current string
}

// NewApp creates an app with no tables.
func NewApp(menu *Menu, store InvoiceStore, clk clock.Clock, opts Options) (*App, error) {
	if menu == nil || menu.Len() == 0 {
		return nil, ErrEmptyMenu
	}
	if store == nil {
		return nil, errors.New("restaurant: nil invoice store")
	}
	if clk == nil {
		clk = clock.System{}
	}
	if opts.Currency == "" {
		opts.Currency = "€"
	}
	if opts.SpecialRequestCharge <= 0 {
		opts.SpecialRequestCharge = DefaultSpecialRequestCharge
	}
	return &App{
		menu:     menu,
		store:    store,
		clock:    clk,
		currency: opts.Currency,
		charge:   opts.SpecialRequestCharge,
		tables:   make(map[string]*Table),
	}, nil
}

// Table returns the table with id.
func (a *App) Table(id string) (*Table, bool) {
	t, ok := a.tables[id]
	return t, ok
}

// TableIDs returns all table IDs, sorted.
func (a *App) TableIDs() []string {
	ids := make([]string, 0, len(a.tables))
	for id := range a.tables {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CurrentTable returns the selected table, or nil.
func (a *App) CurrentTable() *Table {
	if a.current == "" {
		return nil
	}
	return a.tables[a.current]
}

func (a *App) money(cents int) string {
	return FormatMoney(cents, a.currency)
}
