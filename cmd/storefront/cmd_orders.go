package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shopstream/storefront/internal/core/service"
)

func init() {
	rootCmd.AddCommand(ordersCmd)
	ordersCmd.AddCommand(ordersListCmd, ordersDeliverCmd, ordersMoveCmd)
}

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Admin order board",
}

func newBoard(cmd *cobra.Command) (*app, *service.OrderBoard, error) {
	a, err := newApp(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	return a, service.NewOrderBoard(a.session, a.backend, a.log), nil
}

func printOrders(board *service.OrderBoard) error {
	orders := board.Orders()
	if len(orders) == 0 {
		fmt.Println("No orders.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tOWNER\tPRICE\tADDRESS\tDELIVERED")
	for i, o := range orders {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%s\t%t\n", i, o.ID, o.Owner.ID, o.Price, o.Address, o.Delivered)
	}
	return w.Flush()
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all orders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, board, err := newBoard(cmd)
		if err != nil {
			return err
		}
		if err := board.Refresh(cmd.Context()); err != nil {
			return err
		}
		return printOrders(board)
	},
}

var ordersDeliverCmd = &cobra.Command{
	Use:   "deliver <order-id>",
	Short: "Mark an order delivered",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, board, err := newBoard(cmd)
		if err != nil {
			return err
		}
		if err := board.MarkDelivered(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Order %s marked delivered.\n", args[0])
		return nil
	},
}

var ordersMoveCmd = &cobra.Command{
	Use:   "move <from> <to>",
	Short: "Reorder the board display (local only, not persisted)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, board, err := newBoard(cmd)
		if err != nil {
			return err
		}

		from, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("from must be a number: %w", err)
		}
		to, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("to must be a number: %w", err)
		}

		if err := board.Refresh(cmd.Context()); err != nil {
			return err
		}
		board.Move(from, to)
		return printOrders(board)
	},
}
