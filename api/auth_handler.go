package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/lekzzicon/portfolio-backend/config"
	"github.com/lekzzicon/portfolio-backend/errs"
)

// The dashboard credential check lives server-side: the single admin identity
// is an email plus a bcrypt hash from the environment, and a successful login
// yields a signed bearer token for the write endpoints.
type authHandler struct {
	responder         Responder
	logger            zerolog.Logger
	adminEmail        string
	adminPasswordHash []byte
	secret            []byte
	tokenTTL          time.Duration
}

func newAuthHandler(cfg map[string]string) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:         NewResponder(logger),
		logger:            logger,
		adminEmail:        config.GetString(cfg, "ADMIN_EMAIL", ""),
		adminPasswordHash: []byte(config.GetString(cfg, "ADMIN_PASSWORD_HASH", "")),
		secret:            []byte(config.GetString(cfg, "JWT_SECRET", "")),
		tokenTTL:          time.Duration(config.GetInt(cfg, "TOKEN_TTL_HOURS", 24)) * time.Hour,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login verifies the admin credentials and issues a bearer token
// @Summary Admin login
// @Description Verifies the admin email and password and returns a signed token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Admin credentials"
// @Success 200 {object} map[string]any "Token and expiry"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing credentials"
// @Failure 401 {object} ErrorResponse "Unauthorized - Wrong credentials"
// @Router /auth/login [post]
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("login", err))
			return
		}

		if req.Email == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		}
		if req.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}

		if h.adminEmail == "" || len(h.adminPasswordHash) == 0 || len(h.secret) == 0 {
			h.responder.WriteError(w, errs.NewConfigurationError("admin credentials (ADMIN_EMAIL, ADMIN_PASSWORD_HASH, JWT_SECRET)"))
			return
		}

		emailMatches := subtle.ConstantTimeCompare([]byte(req.Email), []byte(h.adminEmail)) == 1
		passwordErr := bcrypt.CompareHashAndPassword(h.adminPasswordHash, []byte(req.Password))
		if !emailMatches || passwordErr != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid email or password"))
			return
		}

		expiresAt := time.Now().Add(h.tokenTTL)
		claims := jwt.RegisteredClaims{
			Subject:   h.adminEmail,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		}

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to sign token", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success":   true,
			"token":     token,
			"expiresAt": expiresAt,
		})
	}
}
