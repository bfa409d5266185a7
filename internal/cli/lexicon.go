package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/nameparser/internal/lexicon"
)

// lexiconCmd represents the lexicon command
var lexiconCmd = &cobra.Command{
	Use:   "lexicon [table]",
	Short: "List the lookup tables used by the parser",
	Long: `Without an argument, lists each lookup table with its size.
With a table name, prints the table's words one per line.

Example:
  nameparser lexicon
  nameparser lexicon surname_prefixes`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return listTables(cmd.OutOrStdout())
		}
		return printTable(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(lexiconCmd)
}

func listTables(w io.Writer) error {
	for _, t := range lexicon.All() {
		if _, err := fmt.Fprintf(w, "%-20s %d\n", t.Name(), t.Len()); err != nil {
			return err
		}
	}
	return nil
}

func printTable(w io.Writer, name string) error {
	t, ok := lexicon.Lookup(name)
	if !ok {
		names := make([]string, 0, len(lexicon.All()))
		for _, t := range lexicon.All() {
			names = append(names, t.Name())
		}
		return fmt.Errorf("unknown table %q (want one of %s)", name, strings.Join(names, ", "))
	}

	for _, word := range t.Words() {
		if _, err := fmt.Fprintln(w, word); err != nil {
			return err
		}
	}
	return nil
}
