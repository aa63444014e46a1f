package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/letung3105/glyph/internal/glyph"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the tokens of a file, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			reporter := glyph.NewSimpleReporter(cmd.ErrOrStderr())
			lexer := glyph.NewLexer(src, reporter)
			for {
				tok := lexer.NextToken()
				fmt.Fprintln(cmd.OutOrStdout(), tok)
				if tok.Kind == glyph.TokenEOF {
					break
				}
			}
			if reporter.HadError() {
				return ErrHadDiagnostics
			}
			return nil
		},
	}
}
