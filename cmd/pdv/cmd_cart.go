package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Draw the current cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		t, err := openTerminal(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer t.Close()

		t.cart.Render(cmd.Context())
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add <id> [nome preco]",
	Short: "Add one unit of a product to the cart",
	Long: "Add one unit of a product. Without name and price they are fetched\n" +
		"from the catalog; either way they are fixed at the moment of adding.",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 && len(args) != 3 {
			return fmt.Errorf("expected <id> or <id> <nome> <preco>, got %d args", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseProductID(args[0])
		if err != nil {
			return err
		}

		t, err := openTerminal(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer t.Close()

		var name string
		var price decimal.Decimal
		if len(args) == 3 {
			name = args[1]
			price, err = parsePrice(args[2])
			if err != nil {
				return err
			}
		} else {
			product, err := t.client.GetProduct(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("look up product %d: %w", id, err)
			}
			name, price = product.Name, product.Price
		}

		return t.cart.Add(cmd.Context(), id, name, price)
	},
}

var incCmd = &cobra.Command{
	Use:   "inc <id>",
	Short: "Increase a line's quantity by one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return changeQuantity(cmd, args[0], 1)
	},
}

var decCmd = &cobra.Command{
	Use:   "dec <id>",
	Short: "Decrease a line's quantity by one; the line goes away at zero",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return changeQuantity(cmd, args[0], -1)
	},
}

var qtyCmd = &cobra.Command{
	Use:   "qty <id> <delta>",
	Short: "Change a line's quantity by delta (put -- before a negative delta)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		delta, err := strconv.Atoi(strings.TrimPrefix(args[1], "+"))
		if err != nil {
			return fmt.Errorf("invalid delta %q", args[1])
		}
		return changeQuantity(cmd, args[0], delta)
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a product from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseProductID(args[0])
		if err != nil {
			return err
		}

		t, err := openTerminal(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer t.Close()

		return t.cart.Remove(cmd.Context(), id)
	},
}

func changeQuantity(cmd *cobra.Command, rawID string, delta int) error {
	id, err := parseProductID(rawID)
	if err != nil {
		return err
	}

	t, err := openTerminal(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer t.Close()

	return t.cart.ChangeQuantity(cmd.Context(), id, delta)
}

func parseProductID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid product id %q", s)
	}
	return id, nil
}

// parsePrice accepts both 4.50 and 4,50.
func parsePrice(s string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q", s)
	}
	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("price must not be negative: %s", s)
	}
	return price, nil
}
