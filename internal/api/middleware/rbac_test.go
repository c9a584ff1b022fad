package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func runRBAC(t *testing.T, role string, allowed ...string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/invites", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
	}

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	}
	if err := RBAC(allowed...)(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec, nextCalled
}

func TestRBAC_AllowsMatchingRole(t *testing.T) {
	rec, nextCalled := runRBAC(t, "admin", "admin")
	if !nextCalled {
		t.Fatalf("expected next handler to run")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRBAC_RejectsOtherRole(t *testing.T) {
	rec, nextCalled := runRBAC(t, "member", "admin")
	if nextCalled {
		t.Fatalf("next must not run for a disallowed role")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "forbidden") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRBAC_RejectsMissingRole(t *testing.T) {
	rec, nextCalled := runRBAC(t, "", "admin")
	if nextCalled {
		t.Fatalf("next must not run without a role")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
