package access

import "github.com/oicpanel/backend/domain"

// Decision is the outcome of evaluating a role gate.
type Decision int

const (
	// Loading means identity resolution is still in flight: render a
	// neutral placeholder and perform no navigation.
	Loading Decision = iota
	// Unauthenticated means loading finished with no identity.
	Unauthenticated
	// Forbidden means the user exists but their role is not allowed.
	Forbidden
	// Authorized means the wrapped content may render unchanged.
	Authorized
)

func (d Decision) String() string {
	switch d {
	case Loading:
		return "loading"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	case Authorized:
		return "authorized"
	}
	return "unknown"
}

// Evaluate is the pure role gate: given the current user, whether identity
// resolution is still pending and the allow-list, it returns exactly one
// decision. An empty allow-list forbids everyone.
func Evaluate(user *domain.User, loading bool, allowed []domain.Role) Decision {
	if loading {
		return Loading
	}
	if user == nil {
		return Unauthenticated
	}
	for _, role := range allowed {
		if user.Role == role {
			return Authorized
		}
	}
	return Forbidden
}

// Outcome augments a Decision with the side effects the caller must apply.
type Outcome struct {
	Decision Decision
	// ShouldRedirect is set only on the transition into Unauthenticated;
	// repeated evaluations with an unchanged nil identity do not
	// re-trigger the login redirect.
	ShouldRedirect bool
	// DeniedRole carries the user's actual role when Forbidden, for the
	// access-denied fallback view.
	DeniedRole domain.Role
}

// Gate wraps Evaluate with transition tracking. It is not a security
// boundary: every data-returning route re-checks identity and role
// server-side regardless of what a gate rendered.
type Gate struct {
	allowed []domain.Role
	last    Decision
}

func NewGate(allowed ...domain.Role) *Gate {
	return &Gate{allowed: allowed}
}

// Evaluate re-runs the full decision for the current identity state.
func (g *Gate) Evaluate(user *domain.User, loading bool) Outcome {
	decision := Evaluate(user, loading, g.allowed)
	out := Outcome{Decision: decision}
	if decision == Unauthenticated && g.last != Unauthenticated {
		out.ShouldRedirect = true
	}
	if decision == Forbidden && user != nil {
		out.DeniedRole = user.Role
	}
	g.last = decision
	return out
}
