// Package scope decides which purchase and transfer rows a caller may
// observe. ADMIN and LOGISTICS_OFFICER see everything; a BASE_COMMANDER
// sees only rows touching their own base. The resolver is a pure function
// of the caller's role and base assignment: it performs no I/O, holds no
// state, and trusts the authenticated claims unconditionally. Credential
// verification happens at the authentication boundary, never here.
package scope

import (
	"errors"

	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/model"
)

// ErrUnauthorizedRole is returned when the caller's role is not one of the
// three known roles. Well-formed tokens can't trigger it (roles are
// validated when the token is parsed), so hitting it means a forged or
// stale claims value reached the resolver.
var ErrUnauthorizedRole = errors.New("unauthorized role")

// Scope is a resolved visibility filter. The zero value restricts to base
// id 0 and matches nothing; always construct through Resolve.
type Scope struct {
	all    bool
	empty  bool
	baseID int64
}

// Resolve maps a caller's role and base assignment to a row visibility
// scope.
//
// A BASE_COMMANDER without a base assignment resolves to an empty scope
// rather than an error: callers are expected to return a successful empty
// result with an explanatory message. That soft degradation is deliberate
// and long-standing behavior, not a bug.
func Resolve(role model.Role, baseID *int64) (Scope, error) {
	switch role {
	case model.RoleAdmin, model.RoleLogisticsOfficer:
		return Scope{all: true}, nil
	case model.RoleBaseCommander:
		if baseID == nil {
			return Scope{empty: true}, nil
		}
		return Scope{baseID: *baseID}, nil
	default:
		return Scope{}, ErrUnauthorizedRole
	}
}

// Unrestricted reports whether the scope passes every row through.
func (s Scope) Unrestricted() bool { return s.all }

// Empty reports whether the caller can see no rows at all (a commander
// with no base assignment).
func (s Scope) Empty() bool { return s.empty }

// BaseID returns the base the scope is restricted to. Only meaningful when
// the scope is neither unrestricted nor empty.
func (s Scope) BaseID() int64 { return s.baseID }

// PurchaseFilter returns a WHERE fragment (and its arguments) restricting
// purchase rows, aliased as p, to the scope. The fragment is empty for an
// unrestricted scope and matches nothing for an empty one.
func (s Scope) PurchaseFilter() (string, []any) {
	if s.all {
		return "", nil
	}
	if s.empty {
		return "1 = 0", nil
	}
	return "p.base_id = ?", []any{s.baseID}
}

// TransferFilter returns a WHERE fragment restricting transfer rows,
// aliased as t, to the scope. A commander sees a transfer when their base
// is on either end of it.
func (s Scope) TransferFilter() (string, []any) {
	if s.all {
		return "", nil
	}
	if s.empty {
		return "1 = 0", nil
	}
	return "(t.from_base = ? OR t.to_base = ?)", []any{s.baseID, s.baseID}
}
