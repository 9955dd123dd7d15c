package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/user/ripple-go/apperror"
)

func testRouter(svc *AuthService) *chi.Mux {
	handlers := NewHandlers(svc)
	r := chi.NewRouter()
	r.Post("/users", handlers.HandleRegister())
	r.Post("/user/login", handlers.HandleLogin())
	r.Get("/user/logout", handlers.HandleLogout())
	return r
}

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) apperror.Envelope {
	t.Helper()
	var env apperror.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode envelope from %q: %v", rec.Body.String(), err)
	}
	return env
}

func TestHandleRegister(t *testing.T) {
	router := testRouter(testService(newFakeStore()))

	t.Run("fresh payload succeeds", func(t *testing.T) {
		rec := postJSON(t, router, "/users",
			`{"name":"A","username":"a1","email":"a@x.com","password":"p"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
		}
		env := decodeEnvelope(t, rec)
		if !env.Success {
			t.Error("success = false, want true")
		}
		if env.Message != "Account created successfully." {
			t.Errorf("message = %q", env.Message)
		}
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		rec := postJSON(t, router, "/users",
			`{"name":"B","username":"b1","email":"a@x.com","password":"p"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
		env := decodeEnvelope(t, rec)
		if env.Success {
			t.Error("success = true, want false")
		}
		if env.Message != "User already exist." {
			t.Errorf("message = %q, want %q", env.Message, "User already exist.")
		}
	})

	t.Run("missing field is rejected", func(t *testing.T) {
		rec := postJSON(t, router, "/users",
			`{"name":"C","email":"c@x.com","password":"p"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
		if env := decodeEnvelope(t, rec); env.Message != "All fields are required." {
			t.Errorf("message = %q, want %q", env.Message, "All fields are required.")
		}
	})
}

func TestHandleLogin(t *testing.T) {
	svc := testService(newFakeStore())
	router := testRouter(svc)
	register(t, svc, "a@x.com")

	t.Run("correct credentials set the token cookie", func(t *testing.T) {
		rec := postJSON(t, router, "/user/login",
			`{"email":"a@x.com","password":"plaintext-password"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
		}

		var resp LoginResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if !resp.Success {
			t.Error("success = false, want true")
		}
		if !strings.HasPrefix(resp.Message, "Welcome back") {
			t.Errorf("message = %q, want welcome greeting", resp.Message)
		}

		cookie := findCookie(rec.Result().Cookies(), "token")
		if cookie == nil {
			t.Fatal("token cookie not set")
		}
		if !cookie.HttpOnly {
			t.Error("token cookie is not HttpOnly")
		}
		claims, err := svc.ValidateToken(cookie.Value)
		if err != nil {
			t.Fatalf("cookie token does not validate: %v", err)
		}
		if got := resp.User; got == "" || claims.UserID == 0 {
			t.Errorf("user id missing: body %q, claims %d", got, claims.UserID)
		}
	})

	t.Run("wrong password fails", func(t *testing.T) {
		rec := postJSON(t, router, "/user/login",
			`{"email":"a@x.com","password":"wrong"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
		if env := decodeEnvelope(t, rec); env.Message != "Incorrect email or password" {
			t.Errorf("message = %q", env.Message)
		}
	})
}

func TestHandleLogout(t *testing.T) {
	router := testRouter(testService(newFakeStore()))

	req := httptest.NewRequest(http.MethodGet, "/user/logout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	cookie := findCookie(rec.Result().Cookies(), "token")
	if cookie == nil {
		t.Fatal("token cookie not cleared")
	}
	if cookie.Value != "" {
		t.Errorf("cleared cookie value = %q, want empty", cookie.Value)
	}
	if env := decodeEnvelope(t, rec); env.Message != "User logged out successfully." {
		t.Errorf("message = %q", env.Message)
	}
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}
