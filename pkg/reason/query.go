package reason

import "context"

// Result pairs a substitution with the confidence of the derivation that
// produced it. A Result's confidence is always in [0, 1].
type Result struct {
	Sub        *Substitution
	Confidence float64
}

// Query lazily produces one Result for every distinct way goal is entailed
// by kb. Answers are streamed on the returned channel as they are found,
// not materialized up front: a caller may read the first, all, or any
// prefix, and stop reading at any time by canceling ctx — the producing
// goroutine selects on ctx.Done() at every send and exits promptly once
// canceled, so a dropped consumer never leaks it.
//
// Two passes run in order, and each pass preserves KB insertion order
// within itself — both orderings are part of the observable contract:
//
//  1. Facts pass: for every fact f, attempt Unify(goal, f); each success
//     yields (sigma, f.Confidence).
//  2. Rules pass: for every rule r, attempt Unify(goal, r.Head) to get
//     sigma0; on success, SolveBody(r.Body, kb, sigma0) is consulted, and
//     each (sigma, bodyConfidence) it yields becomes
//     (sigma, min(r.Confidence, bodyConfidence)).
//
// Query never returns an error: unification failure and exhausted search
// are both represented by the channel simply producing no more values.
// Query does not detect cycles; a KB containing recursively self-referential
// rules (e.g. "X rel Y <- Y rel X") may cause Query to never close its
// channel. This is a documented limitation of plain SLD resolution without
// tabling (see the package's design notes), not a bug to work around with
// ad hoc cycle detection.
func Query(ctx context.Context, goal Triple, kb *KB) <-chan Result {
	out := make(chan Result)

	send := func(r Result) bool {
		select {
		case out <- r:
			return true
		case <-ctx.Done():
			return false
		}
	}

	go func() {
		defer close(out)

		for _, fact := range kb.Facts() {
			if subs := Unify(goal, fact, nil); len(subs) == 1 {
				if !send(Result{Sub: subs[0], Confidence: fact.Confidence}) {
					return
				}
			}
		}

		for _, rule := range kb.Rules() {
			subs := Unify(goal, rule.Head, nil)
			if len(subs) != 1 {
				continue
			}
			sigma0 := subs[0]

			for bodyResult := range SolveBody(ctx, rule.Body, kb, sigma0) {
				combined := Result{
					Sub:        bodyResult.Sub,
					Confidence: And(rule.Confidence, bodyResult.Confidence),
				}
				if !send(combined) {
					return
				}
			}
		}
	}()

	return out
}

// SolveBody lazily solves an ordered list of body atoms against kb, starting
// from sigmaIn, and yields one Result per successful way of satisfying the
// entire body.
//
// The empty body is the base case and yields (sigmaIn, 1.0) exactly once —
// an empty conjunction is vacuously true with maximal confidence, matching
// the fuzzy algebra's AND identity.
//
// The recursive case takes the first atom, applies sigmaIn to it (so
// already-bound variables are substituted before the atom is queried),
// recursively queries it, and for every (sigmaFirst, cFirst) result merges
// sigmaIn with sigmaFirst — later bindings win on conflict, see
// Substitution.Merge — before recursively solving the remaining atoms under
// the merged substitution. Each final (sigmaRest, cRest) is re-emitted as
// (sigmaRest, min(cFirst, cRest)): confidence is the minimum consumed along
// the whole derivation, per the fuzzy AND rule.
func SolveBody(ctx context.Context, body []Triple, kb *KB, sigmaIn *Substitution) <-chan Result {
	out := make(chan Result)

	send := func(r Result) bool {
		select {
		case out <- r:
			return true
		case <-ctx.Done():
			return false
		}
	}

	go func() {
		defer close(out)

		if len(body) == 0 {
			send(Result{Sub: sigmaIn, Confidence: 1.0})
			return
		}

		first, rest := body[0], body[1:]
		appliedFirst := ApplySubstitution(first, sigmaIn)

		for firstResult := range Query(ctx, appliedFirst, kb) {
			merged := sigmaIn.Merge(firstResult.Sub)

			for restResult := range SolveBody(ctx, rest, kb, merged) {
				combined := Result{
					Sub:        restResult.Sub,
					Confidence: And(firstResult.Confidence, restResult.Confidence),
				}
				if !send(combined) {
					return
				}
			}
		}
	}()

	return out
}
