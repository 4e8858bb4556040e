package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/swasthya-saathi/portal-api/internal/config"
	"github.com/swasthya-saathi/portal-api/internal/middleware"
	"github.com/swasthya-saathi/portal-api/internal/model"
	"github.com/swasthya-saathi/portal-api/internal/queue"
	"github.com/swasthya-saathi/portal-api/internal/repository"
	notifier "github.com/swasthya-saathi/portal-api/internal/service"
	"github.com/swasthya-saathi/portal-api/internal/utils"
)

// AuthHandler bundles dependencies for the auth endpoints. It is the
// server-side rendition of the session adapter: it bridges the identity
// store (users) and the profile document store (profiles) and keeps the
// two from drifting.
type AuthHandler struct {
	Cfg      config.Config
	Users    *repository.UserRepo
	Profiles *repository.ProfileRepo
	Tokens   *repository.TokenRepo
	Resets   *repository.ResetRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo, p *repository.ProfileRepo,
	t *repository.TokenRepo, rs *repository.ResetRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Profiles: p, Tokens: t, Resets: rs}
}

// ----- DTOs -----

type registerReq struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone"`
	SHGID       string `json:"shg_id"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}
type forgotReq struct {
	Email string `json:"email"`
}
type resetReq struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type authResp struct {
	User    model.User `json:"user"`
	Access  tokenPart  `json:"access"`
	Refresh tokenPart  `json:"refresh"`
}

// Register creates the identity, then the profile document, then returns a
// token pair. The two writes form a best-effort saga: when the profile
// write fails the identity is deleted again, so a partial registration
// never leaves an identity without a profile.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.DisplayName = strings.TrimSpace(req.DisplayName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.SHGID = strings.TrimSpace(req.SHGID)

	if !utils.ValidEmail(req.Email) {
		return errJSON(c, http.StatusBadRequest, "valid email required")
	}
	if len(req.Password) < utils.MinPasswordLen {
		return errJSON(c, http.StatusBadRequest, "password too weak")
	}
	if req.DisplayName == "" {
		return errJSON(c, http.StatusBadRequest, "display_name required")
	}
	if req.Phone != "" && !utils.ValidPhone(req.Phone) {
		return errJSON(c, http.StatusBadRequest, "invalid phone number")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Email, req.Password, req.DisplayName, model.RoleMember, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return errJSON(c, http.StatusConflict, "email already exists")
		}
		return errJSON(c, http.StatusInternalServerError, "create user failed")
	}

	profile := &model.Profile{
		UserID:      uid,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Phone:       req.Phone,
		Role:        model.RoleMember,
		SHGID:       req.SHGID,
		JoinDate:    time.Now().UTC().Format("2006-01-02"),
	}
	if err := h.Profiles.Create(ctx, profile); err != nil {
		// Compensating step: roll the identity back.
		_ = h.Users.Delete(ctx, uid)
		return errJSON(c, http.StatusInternalServerError, "create profile failed")
	}

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "load user failed")
	}
	return h.issueTokens(c, http.StatusCreated, u)
}

// Login verifies credentials and returns a fresh token pair. Unknown email
// and wrong password are indistinguishable to the caller.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return errJSON(c, http.StatusBadRequest, "email/password required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, http.StatusUnauthorized, "invalid credentials")
		}
		return errJSON(c, http.StatusInternalServerError, "query failed")
	}
	if !u.IsActive || !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return errJSON(c, http.StatusUnauthorized, "invalid credentials")
	}
	return h.issueTokens(c, http.StatusOK, u)
}

// Refresh validates a refresh token by hash, revokes it and issues a new
// pair (rotation).
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return errJSON(c, http.StatusBadRequest, "refresh_token required")
	}
	hash := utils.HashTokenRaw(strings.TrimSpace(req.RefreshToken))

	ctx, cancel := reqCtx(c)
	defer cancel()

	userID, err := h.Tokens.ValidateRefresh(ctx, hash)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, http.StatusUnauthorized, "invalid refresh")
		}
		return errJSON(c, http.StatusInternalServerError, "query failed")
	}
	_ = h.Tokens.RevokeByHash(ctx, hash)

	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "load user failed")
	}
	return h.issueTokens(c, http.StatusOK, u)
}

// RefreshAccess issues a new access token without rotating the refresh
// token.
func (h *AuthHandler) RefreshAccess(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return errJSON(c, http.StatusBadRequest, "refresh_token required")
	}
	hash := utils.HashTokenRaw(strings.TrimSpace(req.RefreshToken))

	ctx, cancel := reqCtx(c)
	defer cancel()

	userID, err := h.Tokens.ValidateRefresh(ctx, hash)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, http.StatusUnauthorized, "invalid refresh")
		}
		return errJSON(c, http.StatusInternalServerError, "query failed")
	}
	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, http.StatusUnauthorized, "invalid refresh")
		}
		return errJSON(c, http.StatusInternalServerError, "load user failed")
	}
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "issue access failed")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access": tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Logout revokes a specific refresh token when one is supplied in the
// body, or every token of the bearer's user when called with only an
// access token. The route is unauthenticated, so the bearer is verified
// here rather than by route middleware.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshReq
	_ = c.Bind(&req)
	refreshToken := strings.TrimSpace(req.RefreshToken)

	ctx, cancel := reqCtx(c)
	defer cancel()

	if refreshToken != "" {
		hash := utils.HashTokenRaw(refreshToken)
		if _, err := h.Tokens.ValidateRefresh(ctx, hash); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return errJSON(c, http.StatusUnauthorized, "invalid refresh token")
			}
			return errJSON(c, http.StatusInternalServerError, "logout failed")
		}
		if err := h.Tokens.RevokeByHash(ctx, hash); err != nil {
			return errJSON(c, http.StatusInternalServerError, "logout failed")
		}
		return c.NoContent(http.StatusNoContent)
	}

	if uid, ok := middleware.BearerSubject(c, h.Cfg.JWTSecret); ok {
		if err := h.Tokens.RevokeAllForUser(ctx, uid); err != nil {
			return errJSON(c, http.StatusInternalServerError, "logout failed")
		}
		return c.NoContent(http.StatusNoContent)
	}
	return errJSON(c, http.StatusBadRequest, "provide Authorization header or refresh_token")
}

// ForgotPassword always answers 202, whether or not the email exists, so
// the endpoint cannot be used to enumerate accounts. For known accounts a
// hashed reset token is stored and a notification event published.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !utils.ValidEmail(email) {
		return errJSON(c, http.StatusBadRequest, "valid email required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	accepted := func() error {
		return c.JSON(http.StatusAccepted, echo.Map{"status": "accepted"})
	}

	u, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		return accepted()
	}
	reset, err := utils.NewResetToken(h.Cfg.ResetTTLMin)
	if err != nil {
		return accepted()
	}
	if err := h.Resets.Store(ctx, u.ID, utils.HashTokenRaw(reset.Raw), reset.Exp); err != nil {
		return accepted()
	}
	// Delivery is out of band; a publish failure must not distinguish this
	// response from the unknown-email path.
	_ = notifier.PublishResetRequested(ctx, queue.ResetRequestedEvent{
		UserID:      u.ID,
		Email:       u.Email,
		ResetToken:  reset.Raw,
		ExpiresAt:   reset.Exp.Format(time.RFC3339),
		RequestedAt: time.Now().UTC().Format(time.RFC3339),
	})
	return accepted()
}

// ResetPassword consumes a reset token, stores the new password hash and
// revokes all refresh tokens so stolen sessions die with the old password.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Token) == "" {
		return errJSON(c, http.StatusBadRequest, "token required")
	}
	if len(req.NewPassword) < utils.MinPasswordLen {
		return errJSON(c, http.StatusBadRequest, "password too weak")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	userID, err := h.Resets.Consume(ctx, utils.HashTokenRaw(strings.TrimSpace(req.Token)))
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "invalid or expired token")
	}
	hash, err := utils.HashPassword(req.NewPassword, h.Cfg.BcryptCost)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "hash failed")
	}
	if err := h.Users.UpdatePassword(ctx, userID, hash); err != nil {
		return errJSON(c, http.StatusInternalServerError, "update password failed")
	}
	_ = h.Tokens.RevokeAllForUser(ctx, userID)
	return c.NoContent(http.StatusNoContent)
}

// issueTokens creates and stores a token pair for the user and writes the
// auth response.
func (h *AuthHandler) issueTokens(c echo.Context, status int, u model.User) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "issue access failed")
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "issue refresh failed")
	}
	if err := h.Tokens.StoreRefresh(ctx, u.ID, utils.HashTokenRaw(refresh.Raw), refresh.Exp); err != nil {
		return errJSON(c, http.StatusInternalServerError, "save refresh failed")
	}
	return c.JSON(status, authResp{
		User:    u,
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
		Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp}, // raw back to client
	})
}
