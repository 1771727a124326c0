package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/identityservice/identity-service/internal/core/domain"
)

const testSecret = "secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func gateRequest(t *testing.T, target, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGate_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "alice",
		"roles": []string{"USER", "ADMIN"},
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	c, rec := gateRequest(t, "/user", "Bearer "+token)

	called := false
	handler := Gate(testSecret, DefaultPolicy())(func(c echo.Context) error {
		called = true
		if c.Get(CtxUsername) != "alice" {
			t.Fatalf("username not set")
		}
		roles, ok := c.Get(CtxRoles).([]string)
		if !ok || len(roles) != 2 || roles[0] != "USER" {
			t.Fatalf("roles not set: %v", c.Get(CtxRoles))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGate_PublicPathSkipsAuth(t *testing.T) {
	c, _ := gateRequest(t, "/auth/welcome", "")

	called := false
	handler := Gate(testSecret, DefaultPolicy())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("public path must reach the handler without a token")
	}
}

func TestGate_MissingHeader(t *testing.T) {
	c, _ := gateRequest(t, "/user", "")

	handler := Gate(testSecret, DefaultPolicy())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestGate_MalformedHeader(t *testing.T) {
	c, _ := gateRequest(t, "/user", "Token abc")

	handler := Gate(testSecret, DefaultPolicy())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestGate_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "alice",
		"roles": []string{"USER"},
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})
	c, _ := gateRequest(t, "/user", "Bearer "+token)

	handler := Gate(testSecret, DefaultPolicy())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestGate_TamperedSignature(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub":   "alice",
		"roles": []string{"USER"},
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	c, _ := gateRequest(t, "/user", "Bearer "+token)

	handler := Gate(testSecret, DefaultPolicy())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestGate_GarbageToken(t *testing.T) {
	c, _ := gateRequest(t, "/user", "Bearer not-a-token")

	handler := Gate(testSecret, DefaultPolicy())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestGate_TokenWithoutRoles(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "alice",
		"roles": []string{},
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	c, _ := gateRequest(t, "/user", "Bearer "+token)

	handler := Gate(testSecret, DefaultPolicy())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
