package handler

import (
	"net/http"

	"todo-vault/internal/apperr"
	"todo-vault/internal/middleware"
	"todo-vault/internal/service"
	"todo-vault/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes sign-up/sign-in and session management.
type AuthHandler struct {
	Service *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func credentialsBody(creds *service.Credentials) gin.H {
	return gin.H{
		"_id":              creds.UserID,
		"email":            creds.Email,
		"expiresInSeconds": creds.ExpiresInSeconds,
		"accessToken":      creds.AccessToken,
		"refreshToken":     creds.RefreshToken,
	}
}

// SignUp handles POST /api/auth/signup.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondError(c, err)
		return
	}

	creds, err := h.Service.SignUp(req.Email, req.Password)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, credentialsBody(creds))
}

// SignIn handles POST /api/auth/signin.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondError(c, err)
		return
	}

	creds, err := h.Service.SignIn(req.Email, req.Password)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, credentialsBody(creds))
}

// RenewAccessToken handles GET /api/auth/accesstoken/:sessionID.
func (h *AuthHandler) RenewAccessToken(c *gin.Context) {
	grant, err := h.Service.RenewAccessToken(c.Param("sessionID"))
	if err != nil {
		util.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken":      grant.AccessToken,
		"expiresInSeconds": grant.ExpiresInSeconds,
	})
}

// GetSession handles GET /api/auth/refreshtokens/:sessionID.
func (h *AuthHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(c.Param("sessionID"))
	if err != nil {
		util.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// DeleteSession handles DELETE /api/auth/refreshtokens/:sessionID.
func (h *AuthHandler) DeleteSession(c *gin.Context) {
	if err := h.Service.DeleteSession(c.Param("sessionID")); err != nil {
		util.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "refresh token deleted successfully"})
}

type changePasswordReq struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	RefreshToken    string `json:"refreshToken"`
}

// ChangePassword handles POST /api/auth/changepassword. The session
// named in refreshToken survives; every other one is revoked.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		util.RespondError(c, apperr.ErrUnauthorized)
		return
	}

	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondError(c, err)
		return
	}

	if err := h.Service.ChangePassword(id.UserID, req.CurrentPassword, req.NewPassword, req.RefreshToken); err != nil {
		util.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password changed successfully"})
}
