package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"civix/internal/models/request_models"
	"civix/internal/services"
	"civix/pkg/utils"
)

// cookieMaxAge matches the token lifetime (24h).
const cookieMaxAge = 24 * 60 * 60

type AuthController struct {
	accountService services.AccountServiceInterface
}

func NewAuthController(accountService services.AccountServiceInterface) *AuthController {
	return &AuthController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a new user account and send a verification code
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RegisterRequest true "Registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/auth/register [post]
func (a *AuthController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Registration successful! Please check your email for verification."
	if !resp.MailSent {
		message = "Registration successful! However, verification email could not be sent. Please contact support."
	}

	utils.RespondCreated(c, resp, message)
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user, set the session cookie and return a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	resp, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("token", resp.Token, cookieMaxAge, "/", "", false, true)

	utils.RespondSuccess(c, resp, "Login successful")
}

// CheckAuth returns the authenticated caller's account.
func (a *AuthController) CheckAuth(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	user, err := a.accountService.GetProfile(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "Authenticated")
}

// Logout clears the session cookie and revokes the token for its remaining
// lifetime.
func (a *AuthController) Logout(c *gin.Context) {
	if token := c.GetString("token"); token != "" {
		a.accountService.Logout(token)
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("token", "", -1, "/", "", false, true)

	utils.RespondSuccess(c, nil, "Logged out successfully")
}

// VerifyEmail godoc
// @Summary Verify an email address
// @Description Confirm the one-time code sent at registration
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.VerifyEmailRequest true "Verification payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/auth/verify-email [post]
func (a *AuthController) VerifyEmail(c *gin.Context) {
	var req request_models.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Email and verification code are required")
		return
	}

	if err := a.accountService.VerifyEmail(c.Request.Context(), req.Email, req.Otp); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Email verified successfully. You can now login.")
}

// ResendVerification sends a fresh one-time code to an unverified account.
func (a *AuthController) ResendVerification(c *gin.Context) {
	var req request_models.ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Email is required")
		return
	}

	if err := a.accountService.ResendVerification(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Verification code has been sent to your email")
}
