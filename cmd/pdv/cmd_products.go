package main

import (
	"fmt"

	"pdv/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var productsFlags struct {
	page  int
	limit int
}

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		t, err := openTerminal(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer t.Close()

		products, err := t.client.ListProducts(cmd.Context(), productsFlags.page, productsFlags.limit)
		if err != nil {
			return err
		}

		w := table.NewWriter()
		w.SetStyle(table.StyleLight)
		w.AppendHeader(table.Row{"ID", "Produto", "Categoria", "Preço", "Estoque"})
		for _, p := range products {
			stock := fmt.Sprint(p.Stock)
			if p.LowStock() {
				stock += " (baixo)"
			}
			w.AppendRow(table.Row{p.ID, p.Name, p.Category, utils.FormatCurrency(p.Price), stock})
		}
		w.SetColumnConfigs([]table.ColumnConfig{
			{Number: 4, Align: text.AlignRight},
			{Number: 5, Align: text.AlignRight},
		})
		fmt.Fprintln(cmd.OutOrStdout(), w.Render())
		return nil
	},
}

func init() {
	f := productsCmd.Flags()
	f.IntVar(&productsFlags.page, "page", 1, "page number")
	f.IntVar(&productsFlags.limit, "limit", 50, "products per page")
}
