package reason

// Substitution is a finite mapping from variable name to term. The map
// represents a chain: looking up a variable may yield another variable
// which is itself bound, and so on; Resolve walks that chain until it
// reaches either a literal or an unbound variable.
//
// Substitutions are built incrementally by Unify and SolveBody. A
// Substitution is always idempotent-after-resolution: applying Resolve
// twice to the same term yields the same result as applying it once.
//
// Unlike the teacher's thread-safe Substitution (pkg/minikanren's
// sync.RWMutex-guarded map), this type carries no lock. The core is
// explicitly single-threaded and non-concurrent (see package doc and
// spec's concurrency Non-goal); external callers that need concurrent
// access must serialize their own mutations, exactly as KB does.
type Substitution struct {
	bindings map[Term]Term
}

// NewSubstitution returns an empty substitution.
func NewSubstitution() *Substitution {
	return &Substitution{bindings: make(map[Term]Term)}
}

// Resolve walks term through the substitution chain: a literal is returned
// unchanged; a bound variable recurses on its bound value; an unbound
// variable is returned unchanged.
func (s *Substitution) Resolve(term Term) Term {
	for IsVariable(term) {
		bound, ok := s.bindings[term]
		if !ok {
			return term
		}
		term = bound
	}
	return term
}

// Bind records variable -> value in the map, mutating the receiver in
// place. No attempt is made to normalize existing entries; resolution
// chains are always walked lazily by Resolve.
func (s *Substitution) Bind(variable, value Term) {
	s.bindings[variable] = value
}

// Lookup returns the term directly bound to variable and whether a binding
// exists at all. It does not walk the chain; use Resolve for that.
func (s *Substitution) Lookup(variable Term) (Term, bool) {
	value, ok := s.bindings[variable]
	return value, ok
}

// Clone returns a new Substitution with a shallow copy of the bindings map,
// so that further mutation of either copy does not affect the other.
func (s *Substitution) Clone() *Substitution {
	clone := make(map[Term]Term, len(s.bindings))
	for k, v := range s.bindings {
		clone[k] = v
	}
	return &Substitution{bindings: clone}
}

// Merge returns a new Substitution containing every binding of s, overlaid
// with every binding of other. Where both substitutions bind the same
// variable, other's binding takes precedence.
//
// This is the "naive overwrite" merge tie-break flagged as an open question
// in the spec's design notes. In SolveBody, other comes from querying an
// atom that s has already been applied to, so a fact match only binds
// variables that s leaves unbound; a contradiction can only arise when a
// rule used for that atom reuses a variable name that s binds, which the spec also
// flags as a pre-existing, unresolved scoping wrinkle rather than something
// to silently paper over here.
func (s *Substitution) Merge(other *Substitution) *Substitution {
	merged := s.Clone()
	for k, v := range other.bindings {
		merged.bindings[k] = v
	}
	return merged
}

// Size returns the number of bindings currently recorded.
func (s *Substitution) Size() int {
	return len(s.bindings)
}
