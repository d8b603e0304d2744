package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/prasanth-t0205/techblog/internal/application/ports"
	"github.com/prasanth-t0205/techblog/internal/application/user"
	"github.com/prasanth-t0205/techblog/internal/domain"
	"github.com/prasanth-t0205/techblog/internal/infrastructure/http/middleware"
)

type UsersHandler struct {
	users         ports.UserRepository
	followToggle  *user.FollowToggle
	updateProfile *user.UpdateProfile
	log           zerolog.Logger
}

func NewUsersHandler(users ports.UserRepository, followToggle *user.FollowToggle, updateProfile *user.UpdateProfile, log zerolog.Logger) *UsersHandler {
	return &UsersHandler{
		users:         users,
		followToggle:  followToggle,
		updateProfile: updateProfile,
		log:           log,
	}
}

func (h *UsersHandler) Profile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	u, err := h.users.GetPublicByUsername(r.Context(), username)
	if err != nil {
		h.log.Error().Err(err).Str("username", username).Msg("profile lookup")
		writeErr(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if u == nil {
		writeErr(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"user": newUserResponse(u)})
}

func (h *UsersHandler) Follow(w http.ResponseWriter, r *http.Request) {
	current := middleware.AuthUserFromContext(r.Context())
	targetID, err := domain.ParseUserID(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusNotFound, "User not found")
		return
	}
	result, err := h.followToggle.Execute(r.Context(), current.ID, targetID)
	if err != nil {
		if code, known := statusForErr(err); known {
			writeErr(w, code, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("follow toggle failed")
		writeErr(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if result.Followed {
		writeMessage(w, http.StatusOK, "Followed successfully")
		return
	}
	writeMessage(w, http.StatusOK, "Unfollowed successfully")
}

func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	current := middleware.AuthUserFromContext(r.Context())
	var body struct {
		Fullname           string            `json:"fullname"`
		Username           string            `json:"username"`
		Email              string            `json:"email"`
		CurrentPassword    string            `json:"currentPassword"`
		NewPassword        string            `json:"newPassword"`
		Bio                string            `json:"bio"`
		SocialLinks        map[string]string `json:"socialLinks"`
		ProfileImg         string            `json:"profileImg"`
		DeleteProfileImage bool              `json:"deleteProfileImage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	updated, err := h.updateProfile.Execute(r.Context(), current.ID, user.UpdateProfileInput{
		Fullname:           body.Fullname,
		Username:           SanitizeUsername(body.Username),
		Email:              SanitizeEmail(body.Email),
		CurrentPassword:    body.CurrentPassword,
		NewPassword:        body.NewPassword,
		Bio:                body.Bio,
		SocialLinks:        body.SocialLinks,
		ProfileImg:         body.ProfileImg,
		DeleteProfileImage: body.DeleteProfileImage,
	})
	if err != nil {
		if code, known := statusForErr(err); known {
			writeErr(w, code, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("profile update failed")
		writeErr(w, http.StatusInternalServerError, "An error occurred while updating the profile")
		return
	}
	writeJSON(w, http.StatusOK, newUserResponse(updated))
}
