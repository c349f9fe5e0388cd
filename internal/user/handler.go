package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/practico-app/practico-lambda/internal/auth"
	"github.com/practico-app/practico-lambda/internal/config"
)

type Handler struct {
	service  UserService
	validate *validator.Validate
}

func NewHandler(s UserService) *Handler {
	return &Handler{
		service:  s,
		validate: validator.New(),
	}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.Register(r.Context(), dto)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		log.WithError(err).Error("Registration failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, result.Token)
	config.JSON(w, http.StatusCreated, AuthResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.Login(r.Context(), dto)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Login failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, result.Token)
	config.JSON(w, http.StatusOK, AuthResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}

func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto GoogleLoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.GoogleLogin(r.Context(), dto.Code)
	if err != nil {
		if errors.Is(err, ErrGoogleNotConfigured) {
			http.Error(w, err.Error(), http.StatusNotImplemented)
			return
		}
		log.WithError(err).Error("Google login failed")
		http.Error(w, "authentication failed", http.StatusUnauthorized)
		return
	}

	h.setSessionCookie(w, result.Token)
	config.JSON(w, http.StatusOK, AuthResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}

// RefreshToken reissues a session token for a still-valid session.
func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	tokenStr := auth.TokenFromRequest(r)
	if tokenStr == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	claims, err := auth.ValidateJWT(tokenStr)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.service.GetByID(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to load user for token refresh")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if u == nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateJWT(u.ID.String(), u.Role, tokenTTL)
	if err != nil {
		log.WithError(err).Error("Failed to generate refreshed token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, token)
	config.JSON(w, http.StatusOK, AuthResponse{
		Token: token,
		User:  toUserResponse(u),
	})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.service.GetByID(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to load user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if u == nil {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, toUserResponse(u))
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    token,
		Path:     "/",
		Domain:   os.Getenv("COOKIE_DOMAIN"),
		Expires:  time.Now().Add(tokenTTL),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
