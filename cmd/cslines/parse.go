package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cslines/internal/diagfmt"
	"cslines/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.cs",
	Short: "Print the syntax tree of a C# source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Bool("tokens", false, "list the tokens of every node")
}

func runParse(cmd *cobra.Command, args []string) error {
	withTokens, err := cmd.Flags().GetBool("tokens")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	res, err := driver.Parse(cmd.Context(), args[0], maxDiagnostics)
	if err != nil {
		return err
	}
	if err := printDiagnostics(cmd.ErrOrStderr(), res.Bag, res.FileSet, 1); err != nil {
		return err
	}
	if err := diagfmt.FormatTree(cmd.OutOrStdout(), res.Tree, diagfmt.TreeOpts{Tokens: withTokens}); err != nil {
		return err
	}
	if res.ParseErrors > 0 {
		return fmt.Errorf("parse: %d error(s)", res.ParseErrors)
	}
	return nil
}
