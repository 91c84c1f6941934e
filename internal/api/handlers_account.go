package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/electron-shaders/sc2002-proj/pkg/monitoring"
	"github.com/electron-shaders/sc2002-proj/pkg/types"
)

func (s *Server) setupAccountRoutes(router *mux.Router) {
	router.HandleFunc("/account/password", s.changePasswordHandler).Methods("PUT")
	router.HandleFunc("/account/contact", s.updateContactHandler).Methods("PUT")
	router.HandleFunc("/notifications", s.notificationsHandler).Methods("GET")
}

type loginRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
	ExpiresIn   int            `json:"expires_in"`
	User        types.UserView `json:"user"`
}

// loginHandler checks credentials against whichever store holds the user and
// issues an access token.
func (s *Server) loginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	user, ok := s.findUser(req.UserID)
	if !ok || !user.Login(req.Password) {
		monitoring.RecordAuthAttempt("failure")
		s.logger.Audit(req.UserID, "login", "account", false)
		s.writeError(w, http.StatusUnauthorized, "invalid user ID or password")
		return
	}

	token, err := s.tokens.Issue(user.RecordID(), user.Role())
	if err != nil {
		s.logger.WithError(err).Error("Failed to issue token")
		s.writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	monitoring.RecordAuthAttempt("success")
	s.logger.Audit(req.UserID, "login", "account", true)
	s.writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   s.cfg.JWT.AccessTokenTTL,
		User:        user.Snapshot(),
	})
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// changePasswordHandler rotates the caller's password after re-checking the
// old one.
func (s *Server) changePasswordHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	var req changePasswordRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if req.NewPassword == "" {
		s.writeError(w, http.StatusBadRequest, "new password must not be empty")
		return
	}

	user, ok := s.findUser(claims.UserID)
	if !ok {
		s.writeError(w, http.StatusNotFound, "user not found")
		return
	}
	if !user.Login(req.OldPassword) {
		s.logger.Audit(claims.UserID, "change_password", "account", false)
		s.writeError(w, http.StatusForbidden, "old password does not match")
		return
	}

	user.ChangePassword(req.NewPassword)
	s.logger.Audit(claims.UserID, "change_password", "account", true)
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "password changed"})
}

type updateContactRequest struct {
	Email string `json:"email"`
}

// updateContactHandler updates the caller's contact email.
func (s *Server) updateContactHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	var req updateContactRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	user, ok := s.findUser(claims.UserID)
	if !ok {
		s.writeError(w, http.StatusNotFound, "user not found")
		return
	}

	user.UpdatePersonalInfo(req.Email)
	s.writeJSON(w, http.StatusOK, user.Snapshot())
}

// notificationsHandler returns the recent event feed, newest first.
func (s *Server) notificationsHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.feed.Recent())
}

// findUser looks the user up across the patient, doctor, and staff stores.
func (s *Server) findUser(userID string) (*types.User, bool) {
	if patient, ok := s.patients.Get(userID); ok {
		return patient.User, true
	}
	if doctor, ok := s.doctors.Get(userID); ok {
		return doctor.User, true
	}
	if user, ok := s.staffStore.Get(userID); ok {
		return user, true
	}
	return nil, false
}
