package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopstream/storefront/internal/core/service"
)

func init() {
	rootCmd.AddCommand(checkoutCmd)
	checkoutCmd.Flags().StringP("address", "a", "", "delivery address (required)")
	_ = checkoutCmd.MarkFlagRequired("address")
}

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Place an order from the current cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		address, _ := cmd.Flags().GetString("address")

		checkout := service.NewCheckout(a.session, a.cart, a.backend, a.log)
		order, err := checkout.PlaceOrder(cmd.Context(), address)
		if err != nil {
			return err
		}

		fmt.Printf("Order %s confirmed: %.2f to %s\n", order.ID, order.Price, order.Address)
		return nil
	},
}
