package main

import (
	"github.com/spf13/cobra"
)

var checkoutFlags struct {
	cpf string
}

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Finish the sale and clear the cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		t, err := openTerminal(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer t.Close()

		t.customer.Type(checkoutFlags.cpf)
		return t.cart.Checkout(cmd.Context())
	},
}

func init() {
	checkoutCmd.Flags().StringVar(&checkoutFlags.cpf, "cpf", "", "customer CPF (optional)")
}
