package restaurant

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tableshell/internal/logger"
	"tableshell/internal/output"
	"tableshell/internal/shell"
)

// Register adds the restaurant commands to sh.
func (a *App) Register(sh *shell.Shell) error {
	commands := []*shell.Command{
		shell.MustCommand("table", "create and/or switch active table",
			[]shell.Parameter{shell.NewStringParam("table_name")}, a.cmdTable),
		shell.MustCommand("tables", "list tables", nil, a.cmdTables),
		shell.MustCommand("list", "list available food items and their IDs",
			[]shell.Parameter{shell.NewStringParam("filter", shell.AsOptional())}, a.cmdList),
		shell.MustCommand("order", "place an order for the current table",
			[]shell.Parameter{shell.NewIntParam("item_id", shell.WithMin(1), shell.WithMax(a.menu.Len()))}, a.cmdOrder),
		shell.MustCommand("orders", "list current table's orders", nil, a.cmdOrders),
		shell.MustCommand("rescind", "rescind one of the current table's orders",
			[]shell.Parameter{shell.NewIntParam("order_id", shell.WithMin(1))}, a.cmdRescind),
		shell.MustCommand("invoice", "finalize the current table's orders and generate/save invoice", nil, a.cmdInvoice),
	}
	for _, cmd := range commands {
		if err := sh.AddCommand(cmd); err != nil {
			return fmt.Errorf("register %s: %w", cmd.Name(), err)
		}
	}
	return nil
}

func (a *App) cmdTable(sess shell.Session, args []any) {
	p := sess.Printer()
	id := args[0].(string)
	if id == a.current {
		p.Printf("Table %s already selected.\n", id)
		return
	}
	isNew := ""
	if _, ok := a.tables[id]; !ok {
		isNew = "new "
		a.tables[id] = NewTable(id)
		logger.Debug("Table created", "table", id)
	}
	a.current = id
	p.Printf("Switched to %stable \"%s\".\n", isNew, id)
	sess.SetPromptPrefix("table=" + id)
}

func (a *App) cmdTables(sess shell.Session, _ []any) {
	p := sess.Printer()
	if len(a.tables) == 0 {
		p.Println("No tables.")
		return
	}
	rows := make([][]string, 0, len(a.tables))
	for _, id := range a.TableIDs() {
		t := a.tables[id]
		rows = append(rows, []string{" * " + id, countOrders(len(t.Entries)), a.money(t.Amount())})
	}
	p.Header("Tables:")
	p.Println(output.ColumnAlign(rows, "  ", " "))
}

func countOrders(n int) string {
	switch n {
	case 0:
		return "no orders"
	case 1:
		return "1 order"
	}
	return strconv.Itoa(n) + " orders"
}

func (a *App) cmdList(sess shell.Session, args []any) {
	filter, _ := args[0].(string)
	a.PrintMenu(sess.Printer(), filter)
}

// PrintMenu writes the food items matching filter as an aligned table.
func (a *App) PrintMenu(p *output.Printer, filter string) {
	entries := a.menu.Search(filter)
	if len(entries) == 0 {
		p.Printf("No food items matching \"%s\".\n", filter)
		return
	}
	rows := [][]string{{"No.", "Name", "Type", "Tags", "Price"}}
	for _, e := range entries {
		rows = append(rows, []string{
			fmt.Sprintf(" %d.", e.No),
			e.Item.Name,
			e.Item.Type,
			strings.Join(e.Item.Categories, ","),
			a.money(e.Item.Price),
		})
	}
	p.Header("Food items:")
	p.Println(output.ColumnAlign(rows, "  ", " "))
}

func (a *App) requireTable(p *output.Printer) *Table {
	t := a.CurrentTable()
	if t == nil {
		p.Println("No table selected.")
	}
	return t
}

func (a *App) cmdOrder(sess shell.Session, args []any) {
	p := sess.Printer()
	t := a.CurrentTable()
	if t == nil {
		p.Error("Must select a table before placing an order.")
		p.Info(`Use the "table" command to create/select a table.`)
		return
	}
	item, _ := a.menu.Item(args[0].(int))

	var requests []SpecialRequest
	for {
		p.Printf("Ordering %s for table %s.\n", item.Name, t.ID)
		if len(requests) > 0 {
			p.Println("Special requests:")
			for _, req := range requests {
				p.Printf(" * %s (%s)\n", req.Request, a.money(req.Charge))
			}
		}
		p.Println("Options:")
		p.Println("  y: Confirm")
		p.Println("  n: Cancel")
		p.Println("  s: Add special request")

		sel, ok := a.ask(sess, "Selection [Yns]: ")
		if !ok {
			p.Warning("Order cancelled.")
			return
		}
		switch strings.ToLower(strings.TrimSpace(sel)) {
		case "y", "":
			t.PlaceOrder(a.clock.Now(), item, requests)
			logger.Debug("Order placed", "table", t.ID, "item", item.Name, "requests", len(requests))
			p.Success("Order placed.")
			return
		case "n":
			p.Warning("Order cancelled.")
			return
		case "s":
			req, ok := a.ask(sess, "Special request: ")
			if !ok {
				p.Warning("Order cancelled.")
				return
			}
			charged, ok := a.ask(sess, fmt.Sprintf("Charge for %s for special request? [yN]: ", a.money(a.charge)))
			if !ok {
				p.Warning("Order cancelled.")
				return
			}
			charge := 0
			if strings.EqualFold(strings.TrimSpace(charged), "y") {
				charge = a.charge
			}
			requests = append(requests, SpecialRequest{Request: req, Charge: charge})
		default:
			p.Error("Invalid option.")
		}
		p.Blank()
	}
}

// ask reads a follow-up answer. It reports false when the user interrupted,
// closed the input, or reading failed.
func (a *App) ask(sess shell.Session, prompt string) (string, bool) {
	in, err := sess.Ask(prompt)
	if err != nil {
		logger.Warn("Reading answer failed", "error", err)
		sess.Printer().Blank()
		return "", false
	}
	if in.Signal != shell.SignalNone {
		sess.Printer().Blank()
		return "", false
	}
	return in.Line, true
}

func (a *App) cmdOrders(sess shell.Session, _ []any) {
	p := sess.Printer()
	t := a.requireTable(p)
	if t == nil {
		return
	}
	if len(t.Entries) == 0 {
		p.Printf("No orders for table %s.\n", t.ID)
		return
	}
	p.Header(fmt.Sprintf("Orders for table %s:", t.ID))
	p.Print(t.Listing(a.currency))
}

func (a *App) cmdRescind(sess shell.Session, args []any) {
	p := sess.Printer()
	t := a.requireTable(p)
	if t == nil {
		return
	}
	no := args[0].(int)
	order, _, err := t.Rescind(no, a.clock.Now())
	switch {
	case errors.Is(err, ErrNoSuchEntry):
		p.Error(`Invalid order ID. Use "orders" to list orders.`)
	case errors.Is(err, ErrNotAnOrder):
		p.Error("Can only rescind orders.")
	case errors.Is(err, ErrAlreadyRescinded):
		p.Error(fmt.Sprintf("Order %d was already rescinded.", no))
	case err != nil:
		p.Error("Error: " + err.Error() + ".")
	default:
		logger.Debug("Order rescinded", "table", t.ID, "order", no)
		p.Success(fmt.Sprintf("Rescinded order %d (%s) for %s.", no, order.Item.Name, a.money(order.Amount())))
	}
}

func (a *App) cmdInvoice(sess shell.Session, _ []any) {
	p := sess.Printer()
	t := a.requireTable(p)
	if t == nil {
		return
	}
	if len(t.Entries) == 0 {
		p.Printf("No orders for table %s.\n", t.ID)
		return
	}

	inv := NewInvoice(a.clock.NewID(), t, a.clock.Now(), a.currency)
	p.Print(inv.String())
	p.Blank()

	answer, ok := a.ask(sess, fmt.Sprintf("Delete table %s and save invoice to file? [yN]: ", t.ID))
	if !ok || !strings.EqualFold(strings.TrimSpace(answer), "y") {
		p.Println("Invoice not saved.")
		return
	}
	if err := a.store.Save(inv); err != nil {
		logger.Error("Saving invoice failed", "table", t.ID, "error", err)
		p.Error(fmt.Sprintf("Error: %v.", err))
		return
	}

	delete(a.tables, t.ID)
	a.current = ""
	sess.SetPromptPrefix()
	logger.Info("Invoice saved", "invoice", inv.ID, "table", t.ID, "amount", a.money(t.Amount()), "file", a.store.Location())
	p.Success(fmt.Sprintf("Saved table %s's orders to %s and deleted the table from memory.", t.ID, a.store.Location()))
}
