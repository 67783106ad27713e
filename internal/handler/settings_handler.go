package handler

import (
	"io"
	"net/http"

	"traveldesk-backend/internal/service"
	"traveldesk-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService service.SettingsService
}

func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) RegisterRoutes(router *gin.RouterGroup) {
	settings := router.Group("/api/settings")
	{
		settings.GET("", h.GetSettings)
		settings.PUT("", h.SaveSettings)
		settings.POST("/logo", h.UploadLogo)
	}
}

// GetSettings returns the agency configuration
// @Summary      Get settings
// @Description  Returns the single agency configuration row, or the built-in defaults if none is stored yet
// @Tags         settings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=model.AppSettings}
// @Failure      500  {object}  response.Response
// @Router       /api/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, settings))
}

// SaveSettings replaces the agency configuration
// @Summary      Save settings
// @Tags         settings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.SaveSettingsRequest  true  "Settings Payload"
// @Success      200      {object}  response.Response{data=model.AppSettings}
// @Failure      400      {object}  response.Response
// @Router       /api/settings [put]
func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	var req service.SaveSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	settings, err := h.settingsService.Save(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, settings))
}

// UploadLogo stores the agency logo as an embedded data URL
// @Summary      Upload logo
// @Description  Accepts a multipart image upload (max 500KB) and stores it as a data URL in the settings
// @Tags         settings
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        logo  formData  file  true  "Logo image file"
// @Success      200   {object}  response.Response{data=model.AppSettings}
// @Failure      400   {object}  response.Response
// @Router       /api/settings/logo [post]
func (h *SettingsHandler) UploadLogo(c *gin.Context) {
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Missing logo file"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Failed to read logo file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Failed to read logo file"))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	settings, err := h.settingsService.UploadLogo(c.Request.Context(), contentType, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, settings))
}
