package server

import (
	"encoding/json"
	"net/http"

	"github.com/mikhail/talenthub/internal/types"
)

// LoginResponse represents the login response with the admin identity and token.
type LoginResponse struct {
	AdminID string `json:"admin_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Token   string `json:"token"`
}

// handleLogin authenticates an admin and issues a JWT.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	admin, err := s.db.GetAdminByEmail(r.Context(), req.Email)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	// A missing account and a wrong password answer identically so the
	// endpoint does not leak which emails are registered.
	if admin == nil || !s.passwordConfig.VerifyPassword(req.Password, admin.PasswordHash) {
		authErr := &ErrInvalidCredentials{}
		s.errorResponse(w, HTTPStatus(authErr), authErr.Error())
		return
	}

	token, err := s.jwtService.GenerateToken(admin.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	s.jsonResponse(w, http.StatusOK, LoginResponse{
		AdminID: admin.ID.String(),
		Name:    admin.Name,
		Email:   admin.Email,
		Token:   token,
	})
}
