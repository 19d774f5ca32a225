package main

import (
	"fmt"
	"io"

	"pdv/models"
	"pdv/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// tableRenderer redraws the whole cart as a table on every render.
type tableRenderer struct {
	out io.Writer
}

func (r *tableRenderer) Render(view models.CartView) {
	if view.IsEmpty() {
		fmt.Fprintln(r.out, "Carrinho vazio")
		fmt.Fprintf(r.out, "Total: %s\n", view.TotalDisplay)
		return
	}

	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	w.Style().Format.Footer = text.FormatDefault
	w.AppendHeader(table.Row{"ID", "Produto", "Preço", "Qtd", "Subtotal", "Ações"})
	for _, line := range view.Lines {
		w.AppendRow(table.Row{
			line.ProductID,
			line.ProductName,
			fmt.Sprintf("%s x %d", line.UnitPrice, line.Quantity),
			line.Quantity,
			line.LineTotal,
			fmt.Sprintf("%s | %s | %s", controlCommand(line.Decrement), controlCommand(line.Increment), controlCommand(line.RemoveAction)),
		})
	}
	w.AppendFooter(table.Row{"", "", "", "", "Total: " + view.TotalDisplay, ""})
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	fmt.Fprintln(r.out, w.Render())
}

func controlCommand(c models.CartControl) string {
	switch {
	case c.Remove:
		return fmt.Sprintf("pdv remove %d", c.ProductID)
	case c.Delta < 0:
		return fmt.Sprintf("pdv dec %d", c.ProductID)
	default:
		return fmt.Sprintf("pdv inc %d", c.ProductID)
	}
}

type printNotifier struct {
	out io.Writer
}

func (n *printNotifier) Notify(message string) {
	fmt.Fprintf(n.out, ">> %s\n", message)
}

// cpfField behaves like the masked CPF input of the PDV screen: what is typed
// is kept with the mask applied.
type cpfField struct {
	value string
}

func (f *cpfField) Type(raw string) {
	f.value = utils.MaskCPF(raw)
}

func (f *cpfField) Value() string {
	return f.value
}

func (f *cpfField) Clear() {
	f.value = ""
}
