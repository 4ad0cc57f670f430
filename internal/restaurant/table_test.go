package restaurant

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pizza = FoodItem{Name: "Pizza", Type: "pizza", Price: 850}
	soup  = FoodItem{Name: "Soup", Type: "starter", Price: 420}
	noon  = time.Date(2025, time.March, 4, 12, 0, 0, 0, time.UTC)
)

func TestTable_AmountAndListing(t *testing.T) {
	table := NewTable("5")
	assert.Equal(t, 0, table.Amount())
	assert.Equal(t, "Total: 0.00€\n", table.Listing("€"))

	table.PlaceOrder(noon, pizza, []SpecialRequest{{Request: "extra cheese", Charge: 100}, {Request: "no olives"}})
	table.PlaceOrder(noon, soup, nil)
	assert.Equal(t, 1370, table.Amount())

	_, _, err := table.Rescind(1, noon)
	require.NoError(t, err)
	assert.Equal(t, 420, table.Amount())

	want := " 1. Pizza +8.50€\n" +
		"  + extra cheese (1.00€)\n" +
		"  + no olives (0.00€)\n" +
		" 2. Soup +4.20€\n" +
		" 3. Rescind order no. 1 -9.50€\n" +
		"Total: 4.20€\n"
	assert.Equal(t, want, table.Listing("€"))
}

func TestTable_PlaceOrderCopiesRequests(t *testing.T) {
	table := NewTable("1")
	requests := []SpecialRequest{{Request: "spicy"}}
	order := table.PlaceOrder(noon, pizza, requests)
	requests[0].Request = "mild"
	assert.Equal(t, "spicy", order.SpecialRequests[0].Request)
}

func TestTable_Rescind(t *testing.T) {
	table := NewTable("5")
	table.PlaceOrder(noon, pizza, nil)

	tests := []struct {
		name    string
		no      int
		wantErr error
	}{
		{name: "first rescind", no: 1},
		{name: "rescind twice", no: 1, wantErr: ErrAlreadyRescinded},
		{name: "rescind a rescindment", no: 2, wantErr: ErrNotAnOrder},
		{name: "past the end", no: 3, wantErr: ErrNoSuchEntry},
		{name: "zero", no: 0, wantErr: ErrNoSuchEntry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, r, err := table.Rescind(tt.no, noon)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Pizza", order.Item.Name)
			assert.Equal(t, &Rescindment{Time: noon, OrderIndex: 0, Price: 850}, r)
		})
	}
	assert.Len(t, table.Entries, 2)
	assert.Equal(t, 0, table.Amount())
}

func TestInvoice_String(t *testing.T) {
	table := NewTable("7")
	table.PlaceOrder(noon, soup, nil)

	inv := NewInvoice("abc", table, noon, "€")
	want := "Invoice: abc\n" +
		"Table: 7\n" +
		"Time: 2025-03-04 12:00:00\n" +
		"Orders:\n" +
		" 1. Soup +4.20€\n" +
		"Total: 4.20€\n"
	assert.Equal(t, want, inv.String())
}

func TestFileInvoiceStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoices.txt")
	store := NewFileInvoiceStore(path)
	assert.Equal(t, path, store.Location())

	table := NewTable("7")
	table.PlaceOrder(noon, soup, nil)
	first := NewInvoice("one", table, noon, "€")
	second := NewInvoice("two", table, noon.Add(time.Minute), "€")

	require.NoError(t, store.Save(first))
	require.NoError(t, store.Save(second))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first.String()+"\n"+second.String()+"\n", string(data))
}

func TestFileInvoiceStore_Unwritable(t *testing.T) {
	store := NewFileInvoiceStore(filepath.Join(t.TempDir(), "missing", "invoices.txt"))
	err := store.Save(Invoice{ID: "x"})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
