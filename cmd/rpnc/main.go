// Command rpnc lexes and parses one expression and prints the token listing
// followed by its postfix (RPN) order. It is a debugging aid for the
// expression front end.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"gorpn/pkg/compiler"
)

const defaultExpr = "x = max(10, 1309, x * 2 + y)"

var (
	defaultFuncs    = []string{"max", "sin"}
	defaultBindings = []string{"x", "y"}
)

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	app := &cli.App{
		Name:      "rpnc",
		Usage:     "show the tokens and postfix order of an expression",
		ArgsUsage: "[EXPR]",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "func",
				Aliases: []string{"f"},
				Usage:   "identifier to treat as a function (repeatable)",
				EnvVars: []string{"RPNC_FUNCS"},
			},
			&cli.StringSliceFlag{
				Name:    "bind",
				Aliases: []string{"b"},
				Usage:   "identifier to treat as a variable binding (repeatable)",
				EnvVars: []string{"RPNC_BINDINGS"},
			},
			&cli.BoolFlag{
				Name:  "table",
				Usage: "print listings as tables",
			},
			&cli.BoolFlag{
				Name:  "strict-commas",
				Usage: "reject commas outside parentheses",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "trace the operator stack",
			},
		},
		Action:         action,
		ExitErrHandler: func(*cli.Context, error) {},
	}
	return app.Run(args)
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func action(c *cli.Context) error {
	src := defaultExpr
	if c.NArg() > 0 {
		src = strings.Join(c.Args().Slice(), " ")
	}
	funcs := defaultFuncs
	if c.IsSet("func") {
		funcs = c.StringSlice("func")
	}
	bindings := defaultBindings
	if c.IsSet("bind") {
		bindings = c.StringSlice("bind")
	}
	syms := compiler.NewSymbolTable(funcs, bindings)

	opts := []compiler.Option{compiler.WithLogger(newLogger(c.App.ErrWriter, c.Bool("verbose")))}
	if c.Bool("strict-commas") {
		opts = append(opts, compiler.WithStrictCommas())
	}

	out := c.App.Writer
	dump := func(tokens []compiler.Token) error {
		if c.Bool("table") {
			return compiler.DumpTable(out, tokens)
		}
		return compiler.Dump(out, tokens)
	}

	fmt.Fprintf(out, "Source:\n%s\n\n", src)

	// Lex
	tokens, err := compiler.Lex(src)
	if err != nil {
		return report(c.App.ErrWriter, "lex", src, err)
	}
	fmt.Fprintf(out, "Tokens (%d)\n", len(tokens))
	if err := dump(tokens); err != nil {
		return err
	}
	fmt.Fprintln(out)

	// Parse
	rpn, err := compiler.Parse(tokens, syms, opts...)
	if err != nil {
		return report(c.App.ErrWriter, "parse", src, err)
	}
	fmt.Fprintf(out, "Postfix (%d)\n", len(rpn))
	if err := dump(rpn); err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "RPN: %s\n", compiler.FormatRPN(rpn))

	if c.Bool("verbose") {
		fmt.Fprintln(out)
		fmt.Fprint(out, syms)
	}
	return nil
}

// report prints err against the source it came from and returns it wrapped
// with the failing stage.
func report(w io.Writer, stage, src string, err error) error {
	color.New(color.FgRed).Fprintf(w, "%s error:\n%s\n", stage, compiler.Snippet(err, src))
	return errors.Wrap(err, stage)
}
