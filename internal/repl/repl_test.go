package repl

import (
	"context"
	"strings"
	"testing"

	"github.com/rdmchase/hornkb/pkg/reason"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func runLines(t *testing.T, kb *reason.KB, input string) string {
	t.Helper()
	var out strings.Builder
	r := New(kb, strings.NewReader(input), &out, zap.NewNop())
	err := r.Run(context.Background())
	require.NoError(t, err)
	return out.String()
}

func TestREPLAssertThenQuery(t *testing.T) {
	kb := reason.NewKB()
	out := runLines(t, kb, "tomate color rojo .\ntomate color rojo ?\n")

	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "tomate color rojo")
}

func TestREPLQueryWithNoMatchesPrintsNo(t *testing.T) {
	kb := reason.NewKB()
	out := runLines(t, kb, "tomate color azul ?\n")

	assert.Contains(t, out, "No.")
}

func TestREPLSuppressesConfidenceTagWhenCertain(t *testing.T) {
	kb := reason.NewKB()
	out := runLines(t, kb, "tomate color rojo .\ntomate color rojo ?\n")

	assert.NotContains(t, out, "[1.00]")
}

func TestREPLShowsConfidenceTagWhenUncertain(t *testing.T) {
	kb := reason.NewKB()
	out := runLines(t, kb, "tomate ingrediente marisco [0.8] .\ntomate ingrediente marisco ?\n")

	assert.Contains(t, out, "[0.80]")
}

func TestREPLRazonaSi(t *testing.T) {
	kb := reason.NewKB()
	out := runLines(t, kb, "tomate color rojo .\nrazona si tomate color rojo ?\nrazona si tomate color azul ?\n")

	assert.Contains(t, out, "Sí.")
	assert.Contains(t, out, "No.")
}

func TestREPLDescubrir(t *testing.T) {
	kb := reason.NewKB()
	out := runLines(t, kb,
		"a p b .\nb p c .\nX p Z <- X p Y, Y p Z\ndescubrir!\n")

	assert.Contains(t, out, "1 hecho(s) nuevo(s)")
	assert.Contains(t, out, "a p c")
}

func TestREPLExitWordStopsLoop(t *testing.T) {
	kb := reason.NewKB()
	out := runLines(t, kb, "exit\ntomate color rojo .\n")

	assert.NotContains(t, out, "OK")
}

func TestREPLParseErrorIsReportedAndLoopContinues(t *testing.T) {
	kb := reason.NewKB()
	out := runLines(t, kb, "tomate color\ntomate color rojo .\n")

	assert.Contains(t, out, "OK")
}

func TestREPLRejectsQueryingByPredicateAlone(t *testing.T) {
	kb := reason.NewKB()
	out := runLines(t, kb, "tomate ? rojo ?\n")

	assert.Contains(t, out, "no consultar por predicado")
}
