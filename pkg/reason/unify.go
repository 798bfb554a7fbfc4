package reason

// occurs walks the substitution chain starting from term and reports
// whether variable appears anywhere along that chain, including when term
// resolves directly to variable. It is the cycle guard used by UnifyTerms
// before binding a variable, mirroring the teacher's own occurs helper
// (pkg/minikanren/constraints.go) adapted from compound terms to the
// chain-walk shape needed for a string-only term model.
//
// With atomic terms, UnifyTerms only ever reaches a Bind call once both
// operands have already been resolved to confirmed-unbound variables, so
// the binding graph can only ever grow as a forest and occurs can never
// actually observe a cycle through that call path alone — see
// UnifyTerms's doc comment. occurs is kept, and checked, as a guard
// against a substitution that reached this state by some other route
// (e.g. direct use of Bind outside the resolve-then-bind discipline).
func occurs(variable, term Term, sub *Substitution) bool {
	for {
		if term == variable {
			return true
		}
		if !IsVariable(term) {
			return false
		}
		bound, ok := sub.Lookup(term)
		if !ok {
			return false
		}
		term = bound
	}
}

// UnifyTerms attempts to unify two terms under sub, returning the
// (possibly mutated) substitution on success or nil on failure. sub is
// mutated in place when unification succeeds; callers that need to try
// alternative bindings must clone sub first (Query passes a fresh
// substitution to every Unify call, and SolveBody merges each answer into
// a clone via Substitution.Merge).
//
// The four cases follow the spec's unification table precisely:
//
//   - literal, literal: succeed iff equal.
//   - literal, variable (and the symmetric case): if the variable is
//     already bound, recurse on its resolved value; otherwise bind it to
//     the literal (no occurs-check is needed, since a literal cannot
//     contain the variable).
//   - variable, variable: resolve whichever side is already bound and
//     recurse; if both are unbound and textually identical, succeed with
//     no change; otherwise occurs-check both directions and bind one to
//     the other. Because this branch is only reached once both Lookups
//     above have failed, both operands are confirmed-unbound variables at
//     this point, so the occurs-check is provably a no-op on any
//     substitution built purely through UnifyTerms/Unify — it remains as
//     a direct implementation of the spec's occurs-check requirement and
//     a guard against a substitution populated through some other route.
func UnifyTerms(t1, t2 Term, sub *Substitution) *Substitution {
	v1, v2 := IsVariable(t1), IsVariable(t2)

	switch {
	case !v1 && !v2:
		if t1 == t2 {
			return sub
		}
		return nil

	case !v1 && v2:
		if bound, ok := sub.Lookup(t2); ok {
			return UnifyTerms(t1, bound, sub)
		}
		sub.Bind(t2, t1)
		return sub

	case v1 && !v2:
		if bound, ok := sub.Lookup(t1); ok {
			return UnifyTerms(bound, t2, sub)
		}
		sub.Bind(t1, t2)
		return sub

	default: // v1 && v2
		if bound, ok := sub.Lookup(t1); ok {
			return UnifyTerms(bound, t2, sub)
		}
		if bound, ok := sub.Lookup(t2); ok {
			return UnifyTerms(t1, bound, sub)
		}
		if t1 == t2 {
			return sub
		}
		if occurs(t1, t2, sub) || occurs(t2, t1, sub) {
			return nil
		}
		sub.Bind(t1, t2)
		return sub
	}
}

// Unify attempts to unify two triples' subjects, predicates, and objects in
// order, starting from a fresh substitution if sub is nil. It returns a
// singleton slice holding the final substitution on success, or an empty
// slice on any failure — the list-of-at-most-one shape lets callers
// pattern-match success the way the spec's reference implementation does,
// without resorting to a (result, bool) pair or an error.
//
// On success the returned substitution may be the same object passed in
// (mutated); see UnifyTerms's mutation contract.
func Unify(x, y Triple, sub *Substitution) []*Substitution {
	if sub == nil {
		sub = NewSubstitution()
	}

	result := UnifyTerms(x.Subject, y.Subject, sub)
	if result == nil {
		return nil
	}
	result = UnifyTerms(x.Predicate, y.Predicate, result)
	if result == nil {
		return nil
	}
	result = UnifyTerms(x.Object, y.Object, result)
	if result == nil {
		return nil
	}

	return []*Substitution{result}
}
