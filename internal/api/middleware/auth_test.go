package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "secret"

type stubSessions struct {
	active map[string]bool
	err    error
}

func (s *stubSessions) Exists(_ context.Context, sid string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.active[sid], nil
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func runAuth(t *testing.T, header string, sessions SessionChecker) (echo.Context, error, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true
		return nil
	}
	err := Auth(testSecret, sessions)(next)(c)
	return c, err, nextCalled
}

func TestAuth_ValidTokenActiveSession(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"username": "admin",
		"role":     "admin",
		"sid":      "s1",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	sessions := &stubSessions{active: map[string]bool{"s1": true}}

	c, err, nextCalled := runAuth(t, "Bearer "+token, sessions)
	if err != nil {
		t.Fatalf("expected pass-through, got %v", err)
	}
	if !nextCalled {
		t.Fatalf("expected next handler to run")
	}
	if c.Get("username") != "admin" || c.Get("role") != "admin" || c.Get("sid") != "s1" {
		t.Fatalf("claims not injected: username=%v role=%v sid=%v", c.Get("username"), c.Get("role"), c.Get("sid"))
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err, nextCalled := runAuth(t, "", &stubSessions{})

	assertHTTPError(t, err, http.StatusUnauthorized)
	if nextCalled {
		t.Fatalf("next must not run without a token")
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	_, err, _ := runAuth(t, "Token abc", &stubSessions{})
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuth_BadSignature(t *testing.T) {
	token, signErr := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": "s1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("other-secret"))
	if signErr != nil {
		t.Fatalf("sign token: %v", signErr)
	}

	_, err, _ := runAuth(t, "Bearer "+token, &stubSessions{active: map[string]bool{"s1": true}})
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sid": "s1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	_, err, _ := runAuth(t, "Bearer "+token, &stubSessions{active: map[string]bool{"s1": true}})
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuth_MissingSID(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"username": "admin",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	_, err, _ := runAuth(t, "Bearer "+token, &stubSessions{})
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuth_RevokedSession(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"username": "admin",
		"role":     "admin",
		"sid":      "s1",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	_, err, nextCalled := runAuth(t, "Bearer "+token, &stubSessions{active: map[string]bool{}})
	assertHTTPError(t, err, http.StatusUnauthorized)
	if nextCalled {
		t.Fatalf("next must not run for a revoked session")
	}
}

func TestAuth_SessionLookupFailure(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sid": "s1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err, _ := runAuth(t, "Bearer "+token, &stubSessions{err: errors.New("connection refused")})
	assertHTTPError(t, err, http.StatusInternalServerError)
}

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != code {
		t.Fatalf("expected status %d, got %d", code, he.Code)
	}
}
