package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/prasanth-t0205/techblog/internal/application/auth"
	infraauth "github.com/prasanth-t0205/techblog/internal/infrastructure/auth"
	"github.com/prasanth-t0205/techblog/internal/infrastructure/http/middleware"
)

type AuthHandler struct {
	signup        *auth.Signup
	login         *auth.Login
	secureCookies bool
	validate      *validator.Validate
	log           zerolog.Logger
}

func NewAuthHandler(signup *auth.Signup, login *auth.Login, secureCookies bool, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		signup:        signup,
		login:         login,
		secureCookies: secureCookies,
		validate:      validator.New(),
		log:           log,
	}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Fullname string `json:"fullname" validate:"max=128"`
		Username string `json:"username" validate:"max=64"`
		Email    string `json:"email" validate:"max=254"`
		Password string `json:"password" validate:"max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := h.signup.Execute(r.Context(), auth.SignupInput{
		Fullname: body.Fullname,
		Username: SanitizeUsername(body.Username),
		Email:    SanitizeEmail(body.Email),
		Password: body.Password,
	})
	if err != nil {
		AuditLog(h.log, r, "user.signup", "", false, err.Error())
		middleware.RecordAuthAttempt("signup", false)
		if code, known := statusForErr(err); known {
			writeErr(w, code, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("signup failed")
		writeErr(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	AuditLog(h.log, r, "user.signup", result.User.ID.String(), true, "")
	middleware.RecordAuthAttempt("signup", true)
	infraauth.SetSessionCookie(w, result.Token, time.Duration(result.ExpiresIn)*time.Second, h.secureCookies)
	writeJSON(w, http.StatusCreated, newUserResponse(result.User))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username" validate:"max=64"`
		Password string `json:"password" validate:"max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := h.login.Execute(r.Context(), auth.LoginInput{
		Username: SanitizeUsername(body.Username),
		Password: body.Password,
	})
	if err != nil {
		AuditLog(h.log, r, "user.login", "", false, err.Error())
		middleware.RecordAuthAttempt("login", false)
		if code, known := statusForErr(err); known {
			writeErr(w, code, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("login failed")
		writeErr(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	AuditLog(h.log, r, "user.login", result.User.ID.String(), true, "")
	middleware.RecordAuthAttempt("login", true)
	infraauth.SetSessionCookie(w, result.Token, time.Duration(result.ExpiresIn)*time.Second, h.secureCookies)
	writeJSON(w, http.StatusOK, newUserResponse(result.User))
}

// Logout clears the session cookie. No server-side state changes, so
// the operation is idempotent and always succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	infraauth.ClearSessionCookie(w, h.secureCookies)
	writeMessage(w, http.StatusOK, "Logged out successfully")
}

// Me returns the authenticated identity attached by the gate. The
// password hash was excluded at the storage query, not post-filtered.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.AuthUserFromContext(r.Context())
	if user == nil {
		writeErr(w, http.StatusUnauthorized, "Not authorized")
		return
	}
	writeJSON(w, http.StatusOK, newUserResponse(user))
}
