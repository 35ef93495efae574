package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_assistant_app/internal/apperrors"
	portssvc "github.com/SscSPs/finance_assistant_app/internal/core/ports/services"
	"github.com/SscSPs/finance_assistant_app/internal/dto"
	"github.com/SscSPs/finance_assistant_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
)

// authHandler handles authentication related requests.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvc
}

// RegisterAuthRoutes sets up the public authentication routes.
// loginLimiter, when not nil, throttles login attempts per client IP.
func RegisterAuthRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, tokenService portssvc.TokenSvc, loginLimiter *limiter.Limiter) {
	h := &authHandler{userService: userService, tokenService: tokenService}

	loginChain := []gin.HandlerFunc{h.login}
	if loginLimiter != nil {
		limitMiddleware := limitergin.NewMiddleware(loginLimiter,
			limitergin.WithLimitReachedHandler(func(c *gin.Context) {
				middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Login rate limit exceeded", slog.String("ip", c.ClientIP()))
				respondError(c, http.StatusTooManyRequests, "Too many login attempts. Please try again later.")
			}),
			limitergin.WithErrorHandler(func(c *gin.Context, err error) {
				middleware.GetLoggerFromCtx(c.Request.Context()).Error("Login rate limit check failed", slog.String("error", err.Error()))
				respondError(c, http.StatusInternalServerError, "Internal server error during rate limit check")
			}),
		)
		loginChain = append([]gin.HandlerFunc{limitMiddleware}, loginChain...)
	}

	auth := rg.Group("/auth")
	{
		auth.POST("/login", loginChain...)
		auth.POST("/register", h.register)
	}
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, apperrors.ErrUnauthorized) {
		logger.Warn("Login failed", slog.String("username", req.Username))
		respondError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if err != nil {
		respondServiceError(c, logger, err, "Invalid username or password", "Failed to log in")
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	respondOK(c, http.StatusOK, "Login successful", dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}

// register godoc
// @Summary Register new user
// @Description Creates a new user account.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.CreateUserRequest true "User Registration Info"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Conflict (e.g., username exists)"
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	newUser, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "User not found", "Failed to register user")
		return
	}

	respondOK(c, http.StatusCreated, "User registered successfully", dto.ToUserResponse(newUser))
}
