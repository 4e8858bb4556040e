package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/swasthya-saathi/portal-api/internal/model"
	"github.com/swasthya-saathi/portal-api/internal/repository"
	"github.com/swasthya-saathi/portal-api/internal/utils"
)

// ProfileHandler serves the session snapshot and profile updates.
type ProfileHandler struct {
	Users    *repository.UserRepo
	Profiles *repository.ProfileRepo
}

func NewProfileHandler(u *repository.UserRepo, p *repository.ProfileRepo) *ProfileHandler {
	return &ProfileHandler{Users: u, Profiles: p}
}

// Me returns the session snapshot: the identity plus its profile document.
// A missing profile (possible only for rows predating the registration
// saga) is returned as null rather than an error; it is never served
// without the identity.
func (h *ProfileHandler) Me(c echo.Context) error {
	uid, ok := currentUserID(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "no active session")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, http.StatusUnauthorized, "no active session")
		}
		return errJSON(c, http.StatusInternalServerError, "load user failed")
	}

	session := model.Session{User: u}
	if p, err := h.Profiles.GetByUserID(ctx, uid); err == nil {
		session.Profile = &p
	} else if !errors.Is(err, repository.ErrNotFound) {
		return errJSON(c, http.StatusInternalServerError, "load profile failed")
	}
	return c.JSON(http.StatusOK, session)
}

// UpdateProfile applies a merge patch to the caller's profile document and
// returns the refreshed document (read-after-write). When the display name
// is among the patched fields it is pushed to the identity record as well,
// so the identity and the profile never drift apart.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	uid, ok := currentUserID(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "no active session")
	}

	var patch model.ProfilePatch
	if err := c.Bind(&patch); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}
	if patch.Empty() {
		return errJSON(c, http.StatusBadRequest, "no fields to update")
	}
	if patch.Phone != nil && *patch.Phone != "" && !utils.ValidPhone(*patch.Phone) {
		return errJSON(c, http.StatusBadRequest, "invalid phone number")
	}
	if patch.DisplayName != nil && *patch.DisplayName == "" {
		return errJSON(c, http.StatusBadRequest, "display_name cannot be empty")
	}
	if patch.JoinDate != nil && *patch.JoinDate != "" && !utils.ValidDate(*patch.JoinDate) {
		return errJSON(c, http.StatusBadRequest, "join_date must be YYYY-MM-DD")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.Profiles.Patch(ctx, uid, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "profile not found")
		}
		return errJSON(c, http.StatusInternalServerError, "update profile failed")
	}

	if patch.DisplayName != nil {
		if err := h.Users.UpdateDisplayName(ctx, uid, p.DisplayName); err != nil {
			return errJSON(c, http.StatusInternalServerError, "sync display name failed")
		}
	}
	return c.JSON(http.StatusOK, p)
}
