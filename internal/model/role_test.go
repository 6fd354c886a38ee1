package model

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{"ADMIN", RoleAdmin, false},
		{"admin", RoleAdmin, false},
		{" base_commander ", RoleBaseCommander, false},
		{"LOGISTICS_OFFICER", RoleLogisticsOfficer, false},
		{"COMMANDER", "", true},
		{"", "", true},
		{"root", "", true},
	}

	for _, tt := range tests {
		got, err := ParseRole(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRole(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleBaseCommander, RoleLogisticsOfficer} {
		if !r.Valid() {
			t.Errorf("%q should be valid", r)
		}
	}
	for _, r := range []Role{"", "admin", "SUPERUSER"} {
		if r.Valid() {
			t.Errorf("%q should not be valid", r)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		wantErr  bool
	}{
		{"", true},
		{"short", true},
		{"alllowercase1@", true},
		{"ALLUPPERCASE1@", true},
		{"NoDigits!@", true},
		{"NoSpecial12", true},
		{"Admin@123", false},
		{"Logistics@123", false},
	}

	for _, tt := range tests {
		err := ValidatePassword(tt.password)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePassword(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("admin@gmail.com"); err != nil {
		t.Errorf("expected valid email, got %v", err)
	}
	if err := ValidateEmail("admin@example.org"); err == nil {
		t.Error("expected error for non-gmail address")
	}
}
