package main

import (
	"io/ioutil"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
)

func newTestApplication() *application {
	return &application{
		infoLog:  log.New(ioutil.Discard, "", 0),
		errorLog: log.New(ioutil.Discard, "", 0),
		secret:   []byte("test-secret"),
	}
}

func signedToken(t *testing.T, app *application, role string, exp time.Duration) string {
	t.Helper()

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = "tester"
	claims["role"] = role
	claims["exp"] = time.Now().Add(exp).Unix()

	ts, err := token.SignedString(app.secret)
	if err != nil {
		t.Fatal(err)
	}
	return ts
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestValidateTokenMissingHeader(t *testing.T) {
	app := newTestApplication()

	req := httptest.NewRequest("GET", "/clients", nil)
	rec := httptest.NewRecorder()
	app.validateToken(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestValidateTokenMalformed(t *testing.T) {
	app := newTestApplication()

	req := httptest.NewRequest("GET", "/clients", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	app.validateToken(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	app := newTestApplication()
	other := &application{secret: []byte("another-secret")}

	req := httptest.NewRequest("GET", "/clients", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, other, "operador", time.Hour))
	rec := httptest.NewRecorder()
	app.validateToken(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	app := newTestApplication()

	req := httptest.NewRequest("GET", "/clients", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, app, "operador", -time.Hour))
	rec := httptest.NewRecorder()
	app.validateToken(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestValidateTokenValid(t *testing.T) {
	app := newTestApplication()

	req := httptest.NewRequest("GET", "/clients", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, app, "operador", time.Hour))
	rec := httptest.NewRecorder()
	app.validateToken(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	app := newTestApplication()

	tests := []struct {
		role string
		want int
	}{
		{"admin", http.StatusOK},
		{"operador", http.StatusForbidden},
		{"", http.StatusForbidden},
	}

	for _, tt := range tests {
		req := httptest.NewRequest("POST", "/client/new", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, app, tt.role, time.Hour))
		rec := httptest.NewRecorder()
		app.requireRole("admin", okHandler()).ServeHTTP(rec, req)

		if rec.Code != tt.want {
			t.Errorf("role %q: status = %d, want %d", tt.role, rec.Code, tt.want)
		}
	}
}

func TestSecureHeaders(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	secureHeaders(okHandler()).ServeHTTP(rec, req)

	if got := rec.Header().Get("X-XSS-Protection"); got != "1; mode=block" {
		t.Errorf("X-XSS-Protection = %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "deny" {
		t.Errorf("X-Frame-Options = %q", got)
	}
}
