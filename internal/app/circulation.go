package app

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newLendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lend <title>",
		Short: "Check one copy out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := loadLibrary()
			if err != nil {
				return err
			}
			b, err := mustFind(books, args[0])
			if err != nil {
				return err
			}
			if err := b.Lend(); err != nil {
				return err
			}
			if err := saveLibrary(books); err != nil {
				return err
			}
			ok("Lent %q — %d copies remain", b.Title, b.Quantity)
			return nil
		},
	}
}

func newReturnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "return <title>",
		Short: "Check one copy back in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := loadLibrary()
			if err != nil {
				return err
			}
			b, err := mustFind(books, args[0])
			if err != nil {
				return err
			}
			b.Return()
			if err := saveLibrary(books); err != nil {
				return err
			}
			ok("Returned %q — %d copies on shelf", b.Title, b.Quantity)
			return nil
		},
	}
}

func newQuantityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quantity <title> <count>",
		Short: "Set the copy count after a stocktake",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			books, err := loadLibrary()
			if err != nil {
				return err
			}
			b, err := mustFind(books, args[0])
			if err != nil {
				return err
			}
			if err := b.SetQuantity(n); err != nil {
				return err
			}
			if err := saveLibrary(books); err != nil {
				return err
			}
			ok("Set %q to %d copies", b.Title, b.Quantity)
			return nil
		},
	}
}
