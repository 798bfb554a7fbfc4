package reason

import "math"

// And combines two confidences that both had to hold for a single
// derivation to succeed (a rule's own confidence with each of its body
// atoms' confidences, or two atoms solved in sequence). Fuzzy conjunction
// is the minimum of its operands.
func And(a, b float64) float64 {
	return math.Min(a, b)
}

// Or combines the confidences of two independent derivations of the same
// ground fact (Discover calls it when a sweep derives the same fact more
// than one way). Fuzzy disjunction is the maximum of its operands.
func Or(a, b float64) float64 {
	return math.Max(a, b)
}
