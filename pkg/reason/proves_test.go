package reason

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProvesFalseOnEmptyKB(t *testing.T) {
	kb := NewKB()
	assert.False(t, Proves(context.Background(), NewTriple("tomate", "color", "rojo", 1.0), kb))
}

// Invariant 7: after kb.add_fact(f), proves(f, kb) is true.
func TestProvesInvariantTrueAfterAddFact(t *testing.T) {
	kb := NewKB()
	fact := NewTriple("tomate", "color", "rojo", 1.0)

	assert.False(t, Proves(context.Background(), fact, kb))
	kb.AddFact(fact)
	assert.True(t, Proves(context.Background(), fact, kb))
}

func TestProvesTrueViaRuleDerivation(t *testing.T) {
	kb := NewKB()
	kb.AddFact(NewTriple("tomate", "ingrediente", "pescado", 1.0))
	kb.AddRule(NewRule(
		NewTriple("Plato", "marida", "vino_blanco", 1.0),
		[]Triple{NewTriple("Plato", "ingrediente", "pescado", 1.0)},
		1.0,
	))

	assert.True(t, Proves(context.Background(), NewTriple("tomate", "marida", "vino_blanco", 1.0), kb))
}

func TestProvesIgnoresConfidenceOfDerivation(t *testing.T) {
	kb := NewKB()
	kb.AddFact(NewTriple("tomate", "ingrediente", "marisco", 0.01))
	kb.AddRule(NewRule(
		NewTriple("Plato", "marida", "vino_blanco", 1.0),
		[]Triple{NewTriple("Plato", "ingrediente", "marisco", 1.0)},
		0.01,
	))

	assert.True(t, Proves(context.Background(), NewTriple("tomate", "marida", "vino_blanco", 1.0), kb))
}
