// Package repl implements the interactive command loop: one line of input
// at a time, parsed by internal/lang and dispatched onto a reason.KB.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rdmchase/hornkb/internal/lang"
	"github.com/rdmchase/hornkb/pkg/reason"
	"go.uber.org/zap"
)

// exitWords terminate the loop; matched case-insensitively.
var exitWords = map[string]bool{
	"exit":   true,
	"quit":   true,
	"q":      true,
	"cerrar": true,
	"e":      true,
}

// REPL reads commands from In, writes responses to Out, and applies them
// to KB.
type REPL struct {
	KB     *reason.KB
	In     io.Reader
	Out    io.Writer
	Logger *zap.Logger
}

// New returns a REPL over stdin/stdout-shaped readers and writer, backed by
// kb. logger must not be nil; pass zap.NewNop() when log output is
// unwanted (e.g. in tests).
func New(kb *reason.KB, in io.Reader, out io.Writer, logger *zap.Logger) *REPL {
	return &REPL{KB: kb, In: in, Out: out, Logger: logger}
}

// Run reads lines from r.In until EOF, an exit keyword, or ctx is canceled,
// dispatching each parsed command and writing its response to r.Out.
func (r *REPL) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(r.In)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if exitWords[strings.ToLower(line)] {
			return nil
		}

		if err := r.handle(ctx, line); err != nil {
			fmt.Fprintf(r.Out, "%s\n", err)
		}
	}
	return scanner.Err()
}

func (r *REPL) handle(ctx context.Context, line string) error {
	cmd, err := lang.Parse(line)
	if err != nil {
		r.Logger.Warn("parse error", zap.String("line", line), zap.Error(err))
		return err
	}

	switch cmd.Kind {
	case lang.CommandAssert:
		r.KB.AddFact(cmd.Triple)
		fmt.Fprintln(r.Out, "OK")

	case lang.CommandRule:
		r.KB.AddRule(cmd.Rule)
		fmt.Fprintln(r.Out, "OK")

	case lang.CommandQuery:
		r.runQuery(ctx, cmd.Triple)

	case lang.CommandRazona:
		if reason.Proves(ctx, cmd.Triple, r.KB) {
			fmt.Fprintln(r.Out, "Sí.")
		} else {
			fmt.Fprintln(r.Out, "No.")
		}

	case lang.CommandDescubrir:
		r.runDescubrir(ctx)

	default:
		return fmt.Errorf("unhandled command form")
	}
	return nil
}

func (r *REPL) runQuery(ctx context.Context, goal reason.Triple) {
	queryCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	found := false
	for result := range reason.Query(queryCtx, goal, r.KB) {
		found = true
		fmt.Fprintln(r.Out, formatResult(goal, result))
	}
	if !found {
		fmt.Fprintln(r.Out, "No.")
	}
}

func (r *REPL) runDescubrir(ctx context.Context) {
	newFacts := reason.Discover(ctx, r.KB)
	fmt.Fprintf(r.Out, "%d hecho(s) nuevo(s) descubierto(s).\n", len(newFacts))
	for _, f := range newFacts {
		fmt.Fprintln(r.Out, f.String())
	}
}

// formatResult renders one query answer as "s p o" (with a trailing
// "[c]" tag unless confidence is reason.Certain), applying result's
// substitution to goal.
func formatResult(goal reason.Triple, result reason.Result) string {
	resolved := reason.ApplySubstitution(goal, result.Sub)
	resolved.Confidence = result.Confidence
	return resolved.String()
}
