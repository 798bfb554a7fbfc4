// Package store loads a reason.KB from a pair of KB files: a facts file
// and a rules file, one triple or rule per line, blank lines and
// '#'-prefixed comment lines ignored.
package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rdmchase/hornkb/internal/lang"
	"github.com/rdmchase/hornkb/pkg/reason"
	"go.uber.org/zap"
)

// Loader reads facts and rules files into a reason.KB.
type Loader struct {
	logger *zap.Logger
}

// NewLoader returns a Loader that logs progress and warnings through
// logger. logger must not be nil; pass zap.NewNop() in tests that don't
// care about log output.
func NewLoader(logger *zap.Logger) *Loader {
	return &Loader{logger: logger}
}

// LoadFiles opens factsPath and rulesPath (either may be empty, in which
// case it is skipped) and loads them into kb. Facts are loaded before
// rules, matching the original loader's order.
func (l *Loader) LoadFiles(kb *reason.KB, factsPath, rulesPath string) error {
	if factsPath != "" {
		if err := l.loadFile(kb, factsPath, loadFact); err != nil {
			return fmt.Errorf("loading facts from %s: %w", factsPath, err)
		}
	}
	if rulesPath != "" {
		if err := l.loadFile(kb, rulesPath, loadRule); err != nil {
			return fmt.Errorf("loading rules from %s: %w", rulesPath, err)
		}
	}
	return nil
}

type lineLoader func(kb *reason.KB, cmd lang.Command) error

func loadFact(kb *reason.KB, cmd lang.Command) error {
	if cmd.Kind != lang.CommandAssert {
		return fmt.Errorf("expected a fact (\"s p o .\"), got a different command form")
	}
	kb.AddFact(cmd.Triple)
	return nil
}

func loadRule(kb *reason.KB, cmd lang.Command) error {
	if cmd.Kind != lang.CommandRule {
		return fmt.Errorf("expected a rule (\"head <- body\"), got a different command form")
	}
	kb.AddRule(cmd.Rule)
	return nil
}

func (l *Loader) loadFile(kb *reason.KB, path string, apply lineLoader) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		l.logger.Warn("kb file not found, skipping", zap.String("path", path))
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	return l.loadReader(kb, f, apply)
}

func (l *Loader) loadReader(kb *reason.KB, r io.Reader, apply lineLoader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cmd, err := lang.Parse(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := apply(kb, cmd); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		l.logger.Debug("loaded line", zap.Int("line", lineNo), zap.String("text", line))
	}
	return scanner.Err()
}
