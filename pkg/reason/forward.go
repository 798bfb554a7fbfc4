package reason

import "context"

// Discover performs one forward-chaining sweep: for every rule in kb, it
// solves the rule's body against the KB's current facts (from an empty
// substitution), and for each successful derivation computes the triple the
// rule's head becomes under that substitution. A derivation that leaves any
// variable in the head unbound is discarded — the rule was not fully
// grounded by its body, so it cannot contribute a fact. Body atoms are
// matched against facts only; no rule is chained backward during a sweep.
//
// Within a single sweep, alternative derivations of the same ground triple
// are combined by Or (confidence max): if the output already contains a
// structurally equal triple, its confidence becomes Or(existing, candidate)
// rather than the new derivation unconditionally replacing the old one.
// A derivation that is already present in kb.Facts() is dropped outright —
// Discover never downgrades an existing fact's confidence and never adds a
// duplicate.
//
// Discover performs exactly one pass; it does not iterate to a fixed point
// internally. Callers that want full saturation invoke Discover repeatedly
// until it returns an empty slice. Newly accepted facts are appended to kb
// (in the order rules were declared) before Discover returns them, so a
// second Discover call sees them as ordinary facts.
func Discover(ctx context.Context, kb *KB) []Triple {
	var newFacts []Triple
	// A KB view holding only kb's facts, so SolveBody's queries run no
	// rules pass.
	factsOnly := &KB{facts: kb.Facts()}

	for _, rule := range kb.Rules() {
		for bodyResult := range SolveBody(ctx, rule.Body, factsOnly, NewSubstitution()) {
			candidate := ApplySubstitution(rule.Head, bodyResult.Sub)
			candidate.Confidence = ClampConfidence(And(rule.Confidence, bodyResult.Confidence))

			if !candidate.Ground() {
				continue
			}
			if kb.HasFact(candidate) {
				continue
			}

			replaced := false
			for i, existing := range newFacts {
				if existing.Equal(candidate) {
					combined := Or(existing.Confidence, candidate.Confidence)
					if combined != existing.Confidence {
						newFacts[i].Confidence = combined
					}
					replaced = true
					break
				}
			}
			if !replaced {
				newFacts = append(newFacts, candidate)
			}
		}
	}

	for _, fact := range newFacts {
		kb.AddFact(fact)
	}

	return newFacts
}
