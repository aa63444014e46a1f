package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/letung3105/glyph/internal/config"
	"github.com/letung3105/glyph/internal/glyph"
)

// ErrHadDiagnostics is returned when the input was read but is malformed.
// The diagnostics have been written to the command's error output.
var ErrHadDiagnostics = errors.New("input has errors")

type options struct {
	cfgFile  string
	maxDepth int
	printAST bool
	verbose  bool
}

// Execute runs the glyph command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the glyph command tree.
func NewRootCmd() *cobra.Command {
	opts := new(options)
	rootCmd := &cobra.Command{
		Use:   "glyph [file]",
		Short: "Parse Glyph source code",
		Long: `glyph parses Glyph source code and reports every lexical and
syntax error it finds as "line:column: error: message".

With a file argument the whole file is parsed ("-" reads standard input).
Without one, an interactive prompt parses one line at a time and prints
its syntax tree.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			parseOpts := []glyph.Option{
				glyph.WithMaxDepth(cfg.MaxDepth),
				glyph.WithLogger(opts.logger(cmd)),
			}
			if len(args) == 0 {
				return runPrompt(cmd, parseOpts)
			}
			return runFile(cmd, args[0], cfg.PrintAST, parseOpts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file, TOML or YAML")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "trace the parser on stderr")
	flags.IntVar(&opts.maxDepth, "max-depth", glyph.DefaultMaxDepth, "maximum nesting depth of expressions and blocks")
	flags.BoolVar(&opts.printAST, "ast", false, "print the syntax tree to stdout")

	rootCmd.AddCommand(newTokensCmd(), newVersionCmd())
	return rootCmd
}

// load merges the config file with the flags set on the command line.
func (opts *options) load(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if opts.cfgFile != "" {
		var err error
		if cfg, err = config.Load(opts.cfgFile); err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("max-depth") {
		cfg.MaxDepth = opts.maxDepth
	}
	if cmd.Flags().Changed("ast") {
		cfg.PrintAST = opts.printAST
	}
	return cfg, errors.Wrap(cfg.Validate(), "invalid flags")
}

func (opts *options) logger(cmd *cobra.Command) *slog.Logger {
	if !opts.verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// Parse the given file
func runFile(cmd *cobra.Command, fpath string, printAST bool, opts []glyph.Option) error {
	src, err := readSource(cmd, fpath)
	if err != nil {
		return err
	}
	if !parse(cmd, src, printAST, opts) {
		return ErrHadDiagnostics
	}
	return nil
}

// Parse the input line by line in REPL mode
func runPrompt(cmd *cobra.Command, opts []glyph.Option) error {
	s := bufio.NewScanner(cmd.InOrStdin())
	s.Split(bufio.ScanLines)
	for {
		fmt.Fprint(cmd.OutOrStdout(), "> ")
		if !s.Scan() {
			break
		}
		parse(cmd, s.Text(), true, opts)
	}
	return errors.Wrap(s.Err(), "failed to read input")
}

// parse reports whether src is free of errors.
func parse(cmd *cobra.Command, src string, printAST bool, opts []glyph.Option) bool {
	prog, diags := glyph.Parse(src, opts...)
	for _, diag := range diags {
		fmt.Fprintln(cmd.ErrOrStderr(), diag)
	}
	if printAST {
		printer := glyph.AstPrinter{}
		fmt.Fprint(cmd.OutOrStdout(), printer.Print(prog))
	}
	return len(diags) == 0
}

func readSource(cmd *cobra.Command, fpath string) (string, error) {
	var (
		bytes []byte
		err   error
	)
	if fpath == "-" {
		bytes, err = io.ReadAll(cmd.InOrStdin())
	} else {
		bytes, err = os.ReadFile(fpath)
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", fpath)
	}
	return string(bytes), nil
}
