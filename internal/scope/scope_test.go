package scope

import (
	"errors"
	"testing"

	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/model"
)

func int64p(v int64) *int64 { return &v }

func TestResolveUnrestrictedRoles(t *testing.T) {
	// ADMIN and LOGISTICS_OFFICER see everything, with or without a base
	// assignment.
	for _, role := range []model.Role{model.RoleAdmin, model.RoleLogisticsOfficer} {
		for _, baseID := range []*int64{nil, int64p(3)} {
			s, err := Resolve(role, baseID)
			if err != nil {
				t.Fatalf("Resolve(%s): %v", role, err)
			}
			if !s.Unrestricted() || s.Empty() {
				t.Errorf("Resolve(%s) = %+v, want unrestricted", role, s)
			}
			if clause, args := s.PurchaseFilter(); clause != "" || args != nil {
				t.Errorf("%s purchase filter = %q, want identity", role, clause)
			}
			if clause, args := s.TransferFilter(); clause != "" || args != nil {
				t.Errorf("%s transfer filter = %q, want identity", role, clause)
			}
		}
	}
}

func TestResolveCommander(t *testing.T) {
	s, err := Resolve(model.RoleBaseCommander, int64p(2))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if s.Unrestricted() || s.Empty() {
		t.Fatalf("unexpected scope %+v", s)
	}
	if s.BaseID() != 2 {
		t.Errorf("BaseID = %d, want 2", s.BaseID())
	}

	clause, args := s.PurchaseFilter()
	if clause != "p.base_id = ?" {
		t.Errorf("purchase filter = %q", clause)
	}
	if len(args) != 1 || args[0].(int64) != 2 {
		t.Errorf("purchase filter args = %v", args)
	}

	clause, args = s.TransferFilter()
	if clause != "(t.from_base = ? OR t.to_base = ?)" {
		t.Errorf("transfer filter = %q", clause)
	}
	if len(args) != 2 || args[0].(int64) != 2 || args[1].(int64) != 2 {
		t.Errorf("transfer filter args = %v", args)
	}
}

func TestResolveCommanderWithoutBase(t *testing.T) {
	// No base assignment degrades to an empty scope, not an error.
	s, err := Resolve(model.RoleBaseCommander, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !s.Empty() {
		t.Fatal("expected empty scope")
	}

	clause, _ := s.PurchaseFilter()
	if clause != "1 = 0" {
		t.Errorf("purchase filter = %q, want match-nothing", clause)
	}
	clause, _ = s.TransferFilter()
	if clause != "1 = 0" {
		t.Errorf("transfer filter = %q, want match-nothing", clause)
	}
}

func TestResolveUnknownRole(t *testing.T) {
	for _, role := range []model.Role{"", "SUPERUSER", "admin"} {
		_, err := Resolve(role, nil)
		if !errors.Is(err, ErrUnauthorizedRole) {
			t.Errorf("Resolve(%q) error = %v, want ErrUnauthorizedRole", role, err)
		}
	}
}

func TestResolveIsPure(t *testing.T) {
	// Repeated calls with identical inputs give identical scopes.
	a, _ := Resolve(model.RoleBaseCommander, int64p(7))
	b, _ := Resolve(model.RoleBaseCommander, int64p(7))
	if a != b {
		t.Errorf("Resolve not deterministic: %+v vs %+v", a, b)
	}
}
