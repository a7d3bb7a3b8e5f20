package service

import "testing"

func TestAuthorizeCreate(t *testing.T) {
	if denied := AuthorizeCreate("user-1"); denied != nil {
		t.Errorf("authenticated create denied: %v", denied)
	}
	denied := AuthorizeCreate("")
	if denied == nil {
		t.Fatal("anonymous create allowed")
	}
	if denied.Reason != DenyUnauthenticated {
		t.Errorf("reason = %q, want %q", denied.Reason, DenyUnauthenticated)
	}
}

func TestAuthorizeOwner(t *testing.T) {
	tests := []struct {
		name       string
		identity   string
		owner      string
		wantReason string // "" means allowed
	}{
		{"owner", "user-1", "user-1", ""},
		{"anonymous", "", "user-1", DenyUnauthenticated},
		{"different user", "user-2", "user-1", DenyNotOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			denied := AuthorizeOwner(tt.identity, tt.owner)
			if tt.wantReason == "" {
				if denied != nil {
					t.Errorf("denied: %v", denied)
				}
				return
			}
			if denied == nil {
				t.Fatal("expected denial")
			}
			if denied.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", denied.Reason, tt.wantReason)
			}
		})
	}
}
