// Command computor evaluates arbitrary-precision decimal and complex
// expressions given as arguments or read one per line from a file or stdin.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zephyrtronium/computor"
	"github.com/zephyrtronium/computor/bignum"
)

// options holds the command line flags.
type options struct {
	prec     int
	maxDepth int
	detailed bool
	verbose  bool
	defs     []string
	config   string
	in       string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "computor [expression...]",
		Short: "Evaluate arbitrary-precision decimal and complex expressions",
		Long: `computor evaluates each expression given as an argument, or each line of
the input file or stdin if there are no arguments, and prints one result per
line. Expressions use + - * / % ^, brackets, the imaginary unit i, the
built-in functions ` + strings.Join(computor.Builtins(), ", ") + `, and any
variables and functions defined with --def or in the config file.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &opts, args)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&opts.prec, "precision", "p", bignum.DefaultPrec, "fractional digits kept by division, square roots, and negative powers")
	f.IntVar(&opts.maxDepth, "max-depth", computor.DefaultMaxDepth, "limit on nested user function calls")
	f.BoolVar(&opts.detailed, "detailed", false, "log every evaluation step")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level in a human-readable format")
	f.StringArrayVarP(&opts.defs, "def", "d", nil, `"name=expression" variable or "name(param)=expression" function definition (any number of times)`)
	f.StringVar(&opts.config, "config", "", "YAML config file")
	f.StringVar(&opts.in, "in", "", `input file, or "-" for stdin (default stdin if no expressions are given)`)
	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	log := newLogger(cmd.ErrOrStderr(), opts.verbose)
	defer log.Sync()

	defs := opts.defs
	if opts.config != "" {
		cfg, err := LoadConfig(opts.config)
		if err != nil {
			return err
		}
		cfg.apply(cmd, opts)
		// Config definitions come first so that flags can refer to them.
		defs = append(cfg.Definitions, opts.defs...)
		log.Debug("loaded config", zap.String("path", opts.config), zap.Int("definitions", len(cfg.Definitions)))
	}
	if opts.prec < 0 {
		return fmt.Errorf("precision (%d) must not be negative", opts.prec)
	}

	store := computor.NewStore()
	ctxopts := []computor.ContextOption{
		computor.Prec(opts.prec),
		computor.MaxDepth(opts.maxDepth),
		computor.WithLookup(store),
	}
	if opts.detailed {
		ctxopts = append(ctxopts, computor.WithTracer(zapTracer{log}))
	}
	ctx := computor.NewContext(ctxopts...)
	for _, d := range defs {
		if err := define(store, ctx, d); err != nil {
			return err
		}
		log.Debug("defined", zap.String("definition", d))
	}

	exprs := args
	if opts.in != "" || len(args) == 0 {
		lines, err := readLines(cmd.InOrStdin(), opts.in)
		if err != nil {
			return err
		}
		exprs = append(exprs, lines...)
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, src := range exprs {
		r, err := ctx.EvalString(src)
		if err != nil {
			failed++
			log.Debug("evaluation failed", zap.String("expression", src), zap.Error(err))
			fmt.Fprintln(out, err)
			continue
		}
		fmt.Fprintln(out, r)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(exprs))
	}
	return nil
}

// define adds a variable or function definition to the store.
func define(store *computor.Store, ctx *computor.Context, def string) error {
	lhs, rhs, ok := strings.Cut(def, "=")
	if !ok {
		return fmt.Errorf(`definitions must be "name=expression" or "name(param)=expression", not %q`, def)
	}
	var err error
	if strings.Contains(lhs, "(") {
		_, err = store.SetFunc(lhs, rhs)
	} else {
		_, err = store.SetVar(lhs, rhs, ctx)
	}
	if err != nil {
		return fmt.Errorf("defining %s: %w", strings.TrimSpace(lhs), err)
	}
	return nil
}

// readLines reads the non-blank lines of the named file, or of stdin if name
// is empty or "-".
func readLines(stdin io.Reader, name string) ([]string, error) {
	r := stdin
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			lines = append(lines, s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}
