package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <title>",
		Short: "Show a book's audit log",
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
			header("History: %s  (%d events)", b.Title, len(b.History))
			for _, e := range b.History {
				fmt.Printf("  %s  %-10s %s\n",
					e.At.Format("2006-01-02 15:04"),
					color.CyanString(e.Action),
					e.Note)
			}
			return nil
		},
	}
}
