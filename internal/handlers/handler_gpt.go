package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_assistant_app/internal/core/ports/services"
	"github.com/SscSPs/finance_assistant_app/internal/dto"
	"github.com/SscSPs/finance_assistant_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// gptHandler handles HTTP requests related to GPT configurations.
type gptHandler struct {
	gptService portssvc.GptSvcFacade
}

// RegisterGptRoutes registers routes related to GPT configurations.
// createLimit, when not nil, guards the create endpoint.
func RegisterGptRoutes(rg *gin.RouterGroup, gptService portssvc.GptSvcFacade, createLimit gin.HandlerFunc) {
	registerValidators()
	h := &gptHandler{gptService: gptService}

	createChain := []gin.HandlerFunc{h.createGpt}
	if createLimit != nil {
		createChain = append([]gin.HandlerFunc{createLimit}, createChain...)
	}

	gpts := rg.Group("/gpts")
	{
		gpts.POST("", createChain...)
		gpts.GET("", h.listGpts)
		gpts.GET("/:id", h.getGpt)
		gpts.PATCH("/:id", h.updateGpt)
		gpts.DELETE("/:id", h.deleteGpt)
	}
}

// createGpt godoc
// @Summary Create a GPT configuration
// @Description Creates an assistant configuration. Names are unique per user.
// @Tags gpts
// @Accept  json
// @Produce  json
// @Param   gpt body dto.CreateGptRequest true "GPT details"
// @Success 201 {object} dto.APIResponse{data=dto.GptResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "A GPT with this name already exists"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Failed to create GPT"
// @Security BearerAuth
// @Router /gpts [post]
func (h *gptHandler) createGpt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.CreateGptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateGpt", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	gpt, err := h.gptService.CreateGpt(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "GPT not found", "Failed to create GPT")
		return
	}

	respondOK(c, http.StatusCreated, "GPT created successfully", dto.ToGptResponse(gpt))
}

// listGpts godoc
// @Summary List GPT configurations
// @Description Lists the user's own GPT configurations together with public ones.
// @Tags gpts
// @Produce  json
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(10)
// @Param   search query string false "Search in name, description and goal"
// @Param   orderBy query string false "Sort field" Enums(name, goal, temperature, created_at)
// @Param   order query string false "Sort direction" Enums(ASC, DESC)
// @Success 200 {object} dto.APIResponse{data=dto.ListGptsResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list GPTs"
// @Security BearerAuth
// @Router /gpts [get]
func (h *gptHandler) listGpts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.ListGptsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}

	resp, err := h.gptService.ListGpts(c.Request.Context(), userID, params)
	if err != nil {
		respondServiceError(c, logger, err, "GPTs not found", "Failed to list GPTs")
		return
	}

	respondOK(c, http.StatusOK, "GPTs retrieved successfully", resp)
}

// getGpt godoc
// @Summary Get a GPT configuration by ID
// @Tags gpts
// @Produce  json
// @Param   id path string true "GPT ID"
// @Success 200 {object} dto.APIResponse{data=dto.GptResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "GPT not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve GPT"
// @Security BearerAuth
// @Router /gpts/{id} [get]
func (h *gptHandler) getGpt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	gptID := c.Param("id")

	gpt, err := h.gptService.GetGptByID(c.Request.Context(), userID, gptID)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("gpt_id", gptID)), err, "GPT not found", "Failed to retrieve GPT")
		return
	}

	respondOK(c, http.StatusOK, "GPT retrieved successfully", dto.ToGptResponse(gpt))
}

// updateGpt godoc
// @Summary Update a GPT configuration
// @Description Changes the provided fields. Only the owner may update.
// @Tags gpts
// @Accept  json
// @Produce  json
// @Param   id path string true "GPT ID"
// @Param   gpt body dto.UpdateGptRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.GptResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "GPT not found"
// @Failure 409 {object} dto.ErrorResponse "A GPT with this name already exists"
// @Failure 500 {object} dto.ErrorResponse "Failed to update GPT"
// @Security BearerAuth
// @Router /gpts/{id} [patch]
func (h *gptHandler) updateGpt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	gptID := c.Param("id")
	logger = logger.With(slog.String("gpt_id", gptID))

	var req dto.UpdateGptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateGpt", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	gpt, err := h.gptService.UpdateGpt(c.Request.Context(), userID, gptID, req)
	if err != nil {
		respondServiceError(c, logger, err, "GPT not found", "Failed to update GPT")
		return
	}

	respondOK(c, http.StatusOK, "GPT updated successfully", dto.ToGptResponse(gpt))
}

// deleteGpt godoc
// @Summary Delete a GPT configuration
// @Tags gpts
// @Produce  json
// @Param   id path string true "GPT ID"
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "GPT not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete GPT"
// @Security BearerAuth
// @Router /gpts/{id} [delete]
func (h *gptHandler) deleteGpt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	gptID := c.Param("id")

	if err := h.gptService.DeleteGpt(c.Request.Context(), userID, gptID); err != nil {
		respondServiceError(c, logger.With(slog.String("gpt_id", gptID)), err, "GPT not found", "Failed to delete GPT")
		return
	}

	respondOK(c, http.StatusOK, "GPT deleted successfully", nil)
}
