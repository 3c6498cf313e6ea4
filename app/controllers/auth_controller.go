package controllers

import (
	"encoding/json"
	"net/http"

	"blogapi/app/services"
)

// AuthController handles token issuance, refresh and verification.
// All token errors answer 400; 401 is reserved for protected resources.
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenRequest struct {
	Token string `json:"token"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Token exchanges username/password credentials for a token
func (ac *AuthController) Token(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	token, err := ac.authService.Login(req.Username, req.Password)
	if err != nil {
		sendError(w, http.StatusBadRequest, "Unable to log in with provided credentials")
		return
	}

	sendJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// Refresh exchanges a valid token for a fresh one
func (ac *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	token, err := ac.authService.Refresh(req.Token)
	if err != nil {
		sendError(w, http.StatusBadRequest, "Token is invalid or expired")
		return
	}

	sendJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// Verify checks a token and echoes it back when valid
func (ac *AuthController) Verify(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	if _, err := ac.authService.Verify(req.Token); err != nil {
		sendError(w, http.StatusBadRequest, "Token is invalid or expired")
		return
	}

	sendJSON(w, http.StatusOK, tokenResponse{Token: req.Token})
}
