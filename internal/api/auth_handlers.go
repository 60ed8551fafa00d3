package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/oguzk/mobilebill/internal/auth"
	"github.com/oguzk/mobilebill/internal/service"
)

// AuthHandlers handles authentication HTTP requests.
type AuthHandlers struct {
	auth *service.AuthService
}

// NewAuthHandlers creates a new AuthHandlers.
func NewAuthHandlers(authService *service.AuthService) *AuthHandlers {
	return &AuthHandlers{auth: authService}
}

// RegisterRoutes registers the authentication routes.
func (h *AuthHandlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/login", h.Login).Methods(http.MethodPost)
}

type loginRequest struct {
	SubscriberNo string `json:"subscriber_no"`
	Password     string `json:"password"`
}

// Login authenticates a subscriber and returns an access token.
//
// The login endpoint reports errors under a "msg" key while every other
// endpoint uses "error"; the inconsistency is inherited from the original
// API and kept for wire compatibility.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"msg": "subscriber_no or password not provided"})
		return
	}

	token, err := h.auth.Login(r.Context(), req.SubscriberNo, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingField):
			writeJSON(w, http.StatusBadRequest, map[string]string{"msg": "subscriber_no or password not provided"})
		case errors.Is(err, auth.ErrInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "Invalid subscriber_no or password"})
		default:
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"access_token": token})
}
