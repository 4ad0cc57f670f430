package restaurant

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"tableshell/internal/logger"
)

// ErrEmptyMenu is returned for menu files without any food item.
var ErrEmptyMenu = errors.New("menu has no food items")

// LineError reports an invalid price in a CSV menu.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: expected price (4th column) %s", e.Line, strings.TrimPrefix(e.Err.Error(), "expected price "))
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// FoodItem is one orderable menu entry. Price is in cents.
type FoodItem struct {
	Name       string
	Type       string
	Categories []string
	Price      int
}

// Menu is the ordered list of food items. Items are numbered from 1.
type Menu struct {
	items []FoodItem
}

// MenuEntry pairs a food item with its 1-based menu number.
type MenuEntry struct {
	No   int
	Item FoodItem
}

// NewMenu builds a menu from items, keeping their order.
func NewMenu(items []FoodItem) *Menu {
	return &Menu{items: slices.Clone(items)}
}

// Len returns the number of food items.
func (m *Menu) Len() int {
	return len(m.items)
}

// Item returns the food item numbered no.
func (m *Menu) Item(no int) (FoodItem, bool) {
	if no < 1 || no > len(m.items) {
		return FoodItem{}, false
	}
	return m.items[no-1], true
}

// Search returns the items whose name, type or categories contain filter,
// ignoring case. An empty filter matches everything.
func (m *Menu) Search(filter string) []MenuEntry {
	filter = strings.ToLower(filter)
	var entries []MenuEntry
	for i, item := range m.items {
		haystack := strings.ToLower(item.Name + " " + item.Type + " " + strings.Join(item.Categories, " "))
		if filter == "" || strings.Contains(haystack, filter) {
			entries = append(entries, MenuEntry{No: i + 1, Item: item})
		}
	}
	return entries
}

// LoadMenu reads a menu file. Files ending in .yaml or .yml are read as YAML,
// anything else as semicolon-separated values.
func LoadMenu(path string) (*Menu, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open menu: %w", err)
	}
	defer f.Close()

	var menu *Menu
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		menu, err = ParseMenuYAML(f)
	default:
		menu, err = ParseMenuCSV(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("Menu loaded", "file", path, "items", menu.Len())
	return menu, nil
}

// ParseMenuCSV reads "name;type;categories;price" records. The first record is
// a header and blank lines are skipped. Categories are comma-separated.
func ParseMenuCSV(r io.Reader) (*Menu, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var items []FoodItem
	for first := true; ; first = false {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read menu: %w", err)
		}
		if first {
			continue
		}
		line, _ := reader.FieldPos(0)

		if len(record) != 4 {
			return nil, fmt.Errorf("line %d: expected semicolon-separated CSV with 4 columns (name, type, category, price)", line)
		}
		price, err := ParsePrice(record[3])
		if err != nil {
			return nil, &LineError{Line: line, Err: err}
		}
		items = append(items, FoodItem{
			Name:       strings.TrimSpace(record[0]),
			Type:       strings.TrimSpace(record[1]),
			Categories: splitCategories(record[2]),
			Price:      price,
		})
	}

	if len(items) == 0 {
		return nil, ErrEmptyMenu
	}
	return NewMenu(items), nil
}

type yamlMenu struct {
	Items []struct {
		Name       string   `yaml:"name"`
		Type       string   `yaml:"type"`
		Categories []string `yaml:"categories"`
		Price      string   `yaml:"price"`
	} `yaml:"items"`
}

// ParseMenuYAML reads a document of the form
//
//	items:
//	  - name: Margherita
//	    type: pizza
//	    categories: [vegetarian, classic]
//	    price: 8.50
func ParseMenuYAML(r io.Reader) (*Menu, error) {
	var doc yamlMenu
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyMenu
		}
		return nil, fmt.Errorf("decode menu: %w", err)
	}

	items := make([]FoodItem, 0, len(doc.Items))
	for i, it := range doc.Items {
		if strings.TrimSpace(it.Name) == "" {
			return nil, fmt.Errorf("item %d: missing name", i+1)
		}
		price, err := ParsePrice(it.Price)
		if err != nil {
			return nil, fmt.Errorf("item %d (%s): %w", i+1, it.Name, err)
		}
		items = append(items, FoodItem{
			Name:       strings.TrimSpace(it.Name),
			Type:       strings.TrimSpace(it.Type),
			Categories: splitCategories(strings.Join(it.Categories, ",")),
			Price:      price,
		})
	}

	if len(items) == 0 {
		return nil, ErrEmptyMenu
	}
	return NewMenu(items), nil
}

// splitCategories trims, de-duplicates and sorts comma-separated categories.
func splitCategories(s string) []string {
	var cats []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cats = append(cats, c)
		}
	}
	slices.Sort(cats)
	return slices.Compact(cats)
}
