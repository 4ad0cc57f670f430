package restaurant

import (
	"fmt"
	"os"
	"time"
)

const invoiceTimeLayout = "2006-01-02 15:04:05"

// Invoice is the finalized bill of a table.
type Invoice struct {
	ID      string
	TableID string
	Time    time.Time
	Listing string
}

// NewInvoice renders table's current entries into an invoice.
func NewInvoice(id string, table *Table, at time.Time, currency string) Invoice {
	return Invoice{ID: id, TableID: table.ID, Time: at, Listing: table.Listing(currency)}
}

// String renders the invoice. The result ends with a newline.
func (inv Invoice) String() string {
	return fmt.Sprintf("Invoice: %s\nTable: %s\nTime: %s\nOrders:\n%s",
		inv.ID, inv.TableID, inv.Time.Format(invoiceTimeLayout), inv.Listing)
}

// InvoiceStore persists finalized invoices.
type InvoiceStore interface {
	Save(inv Invoice) error
	// Location describes where invoices end up, for user messages.
	Location() string
}

// FileInvoiceStore appends invoices to a text file, separated by blank lines.
type FileInvoiceStore struct {
	path string
}

// NewFileInvoiceStore creates a store writing to path. The file is created on
// first save.
func NewFileInvoiceStore(path string) *FileInvoiceStore {
	return &FileInvoiceStore{path: path}
}

// Save appends inv followed by a blank line.
func (s *FileInvoiceStore) Save(inv Invoice) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open invoice file: %w", err)
	}
	if _, err := f.WriteString(inv.String() + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("write invoice: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close invoice file: %w", err)
	}
	return nil
}

// Location returns the invoice file path.
func (s *FileInvoiceStore) Location() string {
	return s.path
}
