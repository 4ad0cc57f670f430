package restaurant

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMenuCSV = `name;type;categories;price
Margherita;pizza;vegetarian, classic;8,50
Salami;pizza;classic;9.5

Tiramisu;dessert;sweet,vegetarian,sweet;4
`

func testMenu(t *testing.T) *Menu {
	t.Helper()
	menu, err := ParseMenuCSV(strings.NewReader(testMenuCSV))
	require.NoError(t, err)
	return menu
}

func TestParseMenuCSV(t *testing.T) {
	menu := testMenu(t)

	require.Equal(t, 3, menu.Len())
	first, ok := menu.Item(1)
	require.True(t, ok)
	assert.Equal(t, FoodItem{Name: "Margherita", Type: "pizza", Categories: []string{"classic", "vegetarian"}, Price: 850}, first)

	last, ok := menu.Item(3)
	require.True(t, ok)
	assert.Equal(t, []string{"sweet", "vegetarian"}, last.Categories)
	assert.Equal(t, 400, last.Price)

	_, ok = menu.Item(0)
	assert.False(t, ok)
	_, ok = menu.Item(4)
	assert.False(t, ok)
}

func TestParseMenuCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
		wantErr error
	}{
		{
			name:    "wrong column count",
			input:   "header\nPizza;pizza;8.50\n",
			wantMsg: "line 2: expected semicolon-separated CSV with 4 columns (name, type, category, price)",
		},
		{
			name:    "bad price after blank line",
			input:   "header\n\nPizza;pizza;x;abc\n",
			wantMsg: "line 3: expected price (4th column) to be a decimal number",
			wantErr: ErrPriceFormat,
		},
		{
			name:    "sub-cent price",
			input:   "header\nPizza;pizza;x;1.001\n",
			wantMsg: "line 2: expected price (4th column) to be at most accurate to the 0.01 decimal place (cents)",
			wantErr: ErrPricePrecision,
		},
		{
			name:    "header only",
			input:   "name;type;categories;price\n",
			wantErr: ErrEmptyMenu,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMenuCSV(strings.NewReader(tt.input))
			require.Error(t, err)
			if tt.wantMsg != "" {
				assert.EqualError(t, err, tt.wantMsg)
			}
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParseMenuYAML(t *testing.T) {
	doc := `items:
  - name: Margherita
    type: pizza
    categories: [vegetarian, classic]
    price: "8,50"
  - name: Espresso
    type: drink
    price: 2.2
`
	menu, err := ParseMenuYAML(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 2, menu.Len())

	item, _ := menu.Item(1)
	assert.Equal(t, []string{"classic", "vegetarian"}, item.Categories)
	assert.Equal(t, 850, item.Price)

	item, _ = menu.Item(2)
	assert.Empty(t, item.Categories)
	assert.Equal(t, 220, item.Price)
}

func TestParseMenuYAML_Errors(t *testing.T) {
	_, err := ParseMenuYAML(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyMenu)

	_, err = ParseMenuYAML(strings.NewReader("items: []\n"))
	assert.ErrorIs(t, err, ErrEmptyMenu)

	_, err = ParseMenuYAML(strings.NewReader("items:\n  - name: Pizza\n    price: 1.005\n"))
	assert.ErrorIs(t, err, ErrPricePrecision)
	assert.Contains(t, err.Error(), "item 1 (Pizza)")

	_, err = ParseMenuYAML(strings.NewReader("items:\n  - price: 1\n"))
	assert.EqualError(t, err, "item 1: missing name")

	_, err = ParseMenuYAML(strings.NewReader("items: {"))
	assert.Error(t, err)
}

func TestLoadMenu(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "food.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(testMenuCSV), 0o644))
	menu, err := LoadMenu(csvPath)
	require.NoError(t, err)
	assert.Equal(t, 3, menu.Len())

	yamlPath := filepath.Join(dir, "food.YML")
	require.NoError(t, os.WriteFile(yamlPath, []byte("items:\n  - name: Soup\n    price: 3\n"), 0o644))
	menu, err = LoadMenu(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 1, menu.Len())

	badPath := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(badPath, []byte("header\nx;y\n"), 0o644))
	_, err = LoadMenu(badPath)
	assert.ErrorContains(t, err, badPath+": line 2:")

	_, err = LoadMenu(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMenu_Search(t *testing.T) {
	menu := testMenu(t)

	names := func(entries []MenuEntry) []string {
		var out []string
		for _, e := range entries {
			out = append(out, e.Item.Name)
		}
		return out
	}

	assert.Len(t, menu.Search(""), 3)
	assert.Equal(t, []string{"Margherita", "Salami"}, names(menu.Search("PIZZA")))
	assert.Equal(t, []string{"Margherita", "Tiramisu"}, names(menu.Search("vegetarian")))
	assert.Equal(t, []string{"Tiramisu"}, names(menu.Search("tira")))
	assert.Empty(t, menu.Search("sushi"))

	entries := menu.Search("dessert")
	require.Len(t, entries, 1)
	assert.Equal(t, 3, entries[0].No)
}
