// Package: voynich/morphology
//
// registry.go — the per-language closed-class form registry.
//
// Contract:
//   - One Registry per language instance, created by the facade and
//     passed explicitly into every closed-class constructor (no shared
//     state captured in closures).
//   - Reserve is reserve-if-absent: it reports whether the form was
//     newly granted. Membership, once granted, is never revoked.

package morphology

// Registry records every minted closed-class form of one language so no
// two closed-class items (particles, pronouns, affixes, slot forms) can
// collide. Not safe for concurrent use; callers serialize, as with the
// random stream.
type Registry struct {
	forms map[string]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{forms: make(map[string]struct{})}
}

// Reserve grants form to the caller if it is absent, reporting success.
// The empty string is never reservable (it is the implicit blank form).
func (r *Registry) Reserve(form string) bool {
	if form == "" {
		return false
	}
	if _, taken := r.forms[form]; taken {
		return false
	}
	r.forms[form] = struct{}{}

	return true
}

// Has reports whether form has been reserved.
func (r *Registry) Has(form string) bool {
	_, ok := r.forms[form]

	return ok
}

// Len reports how many forms have been reserved.
func (r *Registry) Len() int {
	return len(r.forms)
}
