package rbac

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChecker_Has(t *testing.T) {
	c := NewChecker(nil)

	cases := []struct {
		role, perm string
		want       bool
	}{
		{"user", "exam:generate", true},
		{"user", "user:change_password", true},
		{"guest", "exam:generate", true},
		{"guest", "user:change_password", false},
		{"admin", "anything:at_all", true},
		{"", "exam:generate", false},
		{"unknown", "exam:generate", false},
	}
	for _, tc := range cases {
		if got := c.Has(tc.role, tc.perm); got != tc.want {
			t.Errorf("Has(%q, %q) = %v, want %v", tc.role, tc.perm, got, tc.want)
		}
	}
}

func TestMatchPerm_Wildcards(t *testing.T) {
	if !matchPerm("*", "shared:submit") {
		t.Error("bare star should match everything")
	}
	if !matchPerm("exam:*", "exam:grade") {
		t.Error("prefix wildcard should match within the namespace")
	}
	if matchPerm("exam:*", "shared:view") {
		t.Error("prefix wildcard must not cross namespaces")
	}
}

func TestRequire_Middleware(t *testing.T) {
	var reached bool
	h := Require("user:change_password")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/users/change-password", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req.WithContext(WithRole(req.Context(), "guest")))
	if rec.Code != http.StatusForbidden || reached {
		t.Fatalf("guest should be forbidden; code=%d reached=%v", rec.Code, reached)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req.WithContext(WithRole(req.Context(), "user")))
	if rec.Code != http.StatusOK || !reached {
		t.Fatalf("user should pass; code=%d reached=%v", rec.Code, reached)
	}

	// No role in context at all.
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users/change-password", nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("missing role should be forbidden; code=%d", rec.Code)
	}
}

func TestRoleContext_RoundTrip(t *testing.T) {
	ctx := WithRole(context.Background(), "user")
	if got := RoleFromContext(ctx); got != "user" {
		t.Fatalf("RoleFromContext = %q, want user", got)
	}
	if got := RoleFromContext(context.Background()); got != "" {
		t.Fatalf("empty context should yield empty role, got %q", got)
	}
}
