package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cartCmd)
	cartCmd.AddCommand(cartAddCmd, cartSetCmd, cartClearCmd)
	cartAddCmd.Flags().IntP("quantity", "q", 1, "units to add")
}

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show and edit the cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		items := a.cart.Items()
		if len(items) == 0 {
			fmt.Println("Cart is empty.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tQTY\tUNIT\tLINE")
		for _, item := range items {
			fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%.2f\n",
				item.Product.ID, item.Product.Title, item.Quantity,
				item.Product.Price, item.Product.Price*float64(item.Quantity))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("Total: %.2f (%d items)\n", a.cart.TotalPrice(), a.cart.TotalItems())
		return nil
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		quantity, _ := cmd.Flags().GetInt("quantity")

		product, err := a.backend.GetProduct(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if err := a.cart.Add(*product, quantity); err != nil {
			return err
		}

		fmt.Printf("Added %dx %s. Cart total: %.2f\n", quantity, product.Title, a.cart.TotalPrice())
		return nil
	},
}

var cartSetCmd = &cobra.Command{
	Use:   "set <product-id> <quantity>",
	Short: "Set a line's quantity (0 removes it)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		quantity, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("quantity must be a number: %w", err)
		}

		if err := a.cart.UpdateQuantity(args[0], quantity); err != nil {
			return err
		}

		fmt.Printf("Cart total: %.2f (%d items)\n", a.cart.TotalPrice(), a.cart.TotalItems())
		return nil
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		a.cart.Clear()
		fmt.Println("Cart cleared.")
		return nil
	},
}
