package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/user/ripple-go/apperror"
)

// tokenCookie is the name of the session cookie set on login.
const tokenCookie = "token"

var validate = validator.New()

// Handlers exposes the auth endpoints over HTTP.
type Handlers struct {
	service *AuthService
}

// NewHandlers creates auth Handlers.
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{service: service}
}

// HandleRegister godoc
// @Summary Register a new account
// @Description Creates a user account. No session is issued; the client logs in separately.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "Registration details"
// @Success 201 {object} apperror.Envelope "Account created successfully."
// @Failure 401 {object} apperror.Envelope "Missing fields or email already registered"
// @Failure 500 {object} apperror.Envelope
// @Router /users [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, apperror.NewValidationError("All fields are required.", err))
			return
		}
		defer r.Body.Close()

		if err := validate.Struct(req); err != nil {
			apperror.WriteError(w, apperror.NewValidationError("All fields are required.", err))
			return
		}

		if _, err := h.service.Register(r.Context(), req); err != nil {
			apperror.WriteError(w, err)
			return
		}

		apperror.WriteJSON(w, http.StatusCreated, apperror.Envelope{
			Message: "Account created successfully.",
			Success: true,
		})
	}
}

// HandleLogin godoc
// @Summary Log in
// @Description Verifies credentials and sets an HttpOnly session cookie named "token".
// @Tags auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "Login credentials"
// @Success 201 {object} auth.LoginResponse
// @Failure 401 {object} apperror.Envelope "Missing fields or incorrect credentials"
// @Failure 500 {object} apperror.Envelope
// @Router /user/login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, apperror.NewValidationError("All fields are required.", err))
			return
		}
		defer r.Body.Close()

		if err := validate.Struct(req); err != nil {
			apperror.WriteError(w, apperror.NewValidationError("All fields are required.", err))
			return
		}

		user, token, err := h.service.Login(r.Context(), req)
		if err != nil {
			apperror.WriteError(w, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     tokenCookie,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(h.service.TokenDuration()),
			HttpOnly: true,
		})

		apperror.WriteJSON(w, http.StatusCreated, LoginResponse{
			Message: fmt.Sprintf("Welcome back %s", user.Name),
			User:    strconv.FormatInt(user.ID, 10),
			Success: true,
		})
	}
}

// HandleLogout godoc
// @Summary Log out
// @Description Clears the session cookie unconditionally.
// @Tags auth
// @Produce json
// @Success 200 {object} apperror.Envelope "User logged out successfully."
// @Router /user/logout [get]
func (h *Handlers) HandleLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     tokenCookie,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			HttpOnly: true,
		})
		apperror.WriteJSON(w, http.StatusOK, apperror.Envelope{
			Message: "User logged out successfully.",
			Success: true,
		})
	}
}
