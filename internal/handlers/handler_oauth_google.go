package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
	portssvc "github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/ports/services"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/dto"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/middleware"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// oauthStateCookie is the short-lived cookie carrying the OAuth CSRF state.
const oauthStateCookie = "oauth_state"

// GoogleOAuthHandler handles Google OAuth related requests.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	authHandler        *AuthHandler
	cfg                *config.Config
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	userService portssvc.UserSvcFacade,
	authHandler *AuthHandler,
	cfg *config.Config,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		authHandler:        authHandler,
		cfg:                cfg,
	}
}

// registerGoogleOAuthRoutes sets up the public Google sign-in routes.
func registerGoogleOAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	authHandler := NewAuthHandler(services.User, services.TokenService, cfg)
	h := NewGoogleOAuthHandler(services.GoogleOAuthHandler, services.User, authHandler, cfg)

	google := rg.Group("/api/v1/auth/google")
	{
		google.GET("/login", h.LoginGoogle)
		google.GET("/callback", h.CallbackGoogle)
		google.POST("/token", h.TokenGoogle)
	}
}

// LoginGoogle godoc
// @Summary Start Google sign-in
// @Description Redirects the browser to Google's consent screen with a CSRF state cookie.
// @Tags oauth
// @Success 307 "Redirect to Google"
// @Failure 500 {object} ErrorResponse "Failed to start sign-in"
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) LoginGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := h.googleOAuthService.GenerateStateString(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google sign-in"})
		return
	}

	c.SetCookie(oauthStateCookie, state, 600, "/api/v1/auth/google", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetGoogleLoginURL(c.Request.Context(), state))
}

// CallbackGoogle godoc
// @Summary Google sign-in callback
// @Description Validates the state, exchanges the authorization code, establishes a session and redirects back to the frontend.
// @Tags oauth
// @Success 307 "Redirect to frontend"
// @Failure 400 {object} ErrorResponse "State mismatch or missing code"
// @Failure 401 {object} ErrorResponse "Identity rejected"
// @Failure 500 {object} ErrorResponse "Failed to complete sign-in"
// @Router /auth/google/callback [get]
func (h *GoogleOAuthHandler) CallbackGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expectedState, err := c.Cookie(oauthStateCookie)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		logger.Warn("OAuth state mismatch on Google callback")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/api/v1/auth/google", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Authorization code is required"})
		return
	}

	info, err := h.googleOAuthService.ExchangeCodeForIDToken(c.Request.Context(), code)
	if err != nil {
		logger.Error("Failed to exchange Google authorization code", slog.String("error", err.Error()))
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired authorization code"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to complete Google sign-in"})
		return
	}

	resp, err := h.establishSession(c, info)
	if err != nil {
		return // establishSession already responded
	}

	// Hand the access token to the frontend via the redirect fragment; the
	// refresh token already sits in its HttpOnly cookie.
	redirect := h.cfg.FrontendBaseURL + "/auth/callback#token=" + url.QueryEscape(resp.Token)
	c.Redirect(http.StatusTemporaryRedirect, redirect)
}

// TokenGoogle godoc
// @Summary Sign in with a Google ID token
// @Description Validates an ID token obtained by the client (one-tap or mobile flow) and establishes a session.
// @Tags oauth
// @Accept json
// @Produce json
// @Param token body dto.GoogleTokenRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Identity rejected"
// @Failure 500 {object} ErrorResponse "Failed to complete sign-in"
// @Router /auth/google/token [post]
func (h *GoogleOAuthHandler) TokenGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GoogleTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	info, err := h.googleOAuthService.ValidateIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		logger.Warn("Google ID token rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token"})
		return
	}

	resp, err := h.establishSession(c, info)
	if err != nil {
		return
	}

	c.JSON(http.StatusOK, resp)
}

// establishSession resolves (or creates) the user for a verified identity and
// issues the session tokens. On failure it writes the HTTP response itself.
func (h *GoogleOAuthHandler) establishSession(c *gin.Context, info *domain.GoogleUserInfo) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	user, err := h.userService.FindOrCreateOAuthUser(c.Request.Context(), info)
	if err != nil {
		logger.Error("Failed to resolve user for Google identity", slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to complete Google sign-in")
		return nil, err
	}

	resp, err := h.authHandler.issueSession(c, user)
	if err != nil {
		logger.Error("Failed to issue session for Google sign-in", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to complete Google sign-in"})
		return nil, err
	}
	return resp, nil
}
