package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(productsCmd)
}

var productsCmd = &cobra.Command{
	Use:   "products [id]",
	Short: "List the catalog, or show one product",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		if len(args) == 1 {
			product, err := a.backend.GetProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s — %s\n", product.Title, product.Brand)
			fmt.Printf("  %s\n", product.Description)
			fmt.Printf("  price: %.2f  rating: %.1f  stock: %d (%s)\n",
				product.Price, product.Rating, product.Stock, product.AvailabilityStatus)
			if len(product.Tags) > 0 {
				fmt.Printf("  tags: %s\n", strings.Join(product.Tags, ", "))
			}
			fmt.Printf("  %s / %s\n", product.WarrantyInformation, product.ReturnPolicy)
			return nil
		}

		products, err := a.backend.ListProducts(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tPRICE\tSTOCK")
		for _, p := range products {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\n", p.ID, p.Title, p.Price, p.Stock)
		}
		return w.Flush()
	},
}
