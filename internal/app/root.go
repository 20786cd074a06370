package app

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/biblioctl/internal/config"
	"github.com/blackwell-systems/biblioctl/internal/util"
)

var (
	cfg *config.Config

	flagNoColor       bool
	flagNoInteractive bool
	flagLibrary       string

	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "biblioctl",
	Short: "Manage a local book catalog with lookup, filtering, and ordering",
	Long: `biblioctl keeps a book catalog in a local YAML file and answers
queries over it: sorted views, title lookup, rating/year search, and
genre filtering with circulation classification.

Run 'biblioctl' with no arguments to launch the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if util.IsTTY() && !flagNoInteractive {
			return runHub()
		}
		return cmd.Help()
	},
}

// SetVersion records the release version injected at build time.
func SetVersion(v string) {
	version = v
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	rootCmd.PersistentFlags().StringVar(&flagLibrary, "library", "", "Library file path (default from config)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if flagLibrary != "" {
			cfg.Library.Path = config.ExpandHome(flagLibrary)
		}
		return nil
	}

	rootCmd.AddCommand(
		newAddCmd(),
		newListCmd(),
		newFindCmd(),
		newSearchCmd(),
		newFilterCmd(),
		newLendCmd(),
		newReturnCmd(),
		newQuantityCmd(),
		newRemoveCmd(),
		newHistoryCmd(),
		newBenchCmd(),
		newVersionCmd(),
	)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the biblioctl version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("biblioctl", version)
		},
	}
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}

func printField(label, value string) {
	fmt.Printf("  %-12s %s\n", color.CyanString(label+":"), value)
}
