package handler

import (
	"net/http"

	"traveldesk-backend/internal/assist"
	"traveldesk-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AssistHandler struct {
	assist *assist.Client
}

func NewAssistHandler(assistClient *assist.Client) *AssistHandler {
	return &AssistHandler{assist: assistClient}
}

func (h *AssistHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/assist")
	{
		group.GET("/status", h.GetStatus)
		group.POST("/enhance", h.EnhanceText)
	}
}

// GetStatus reports whether the AI collaborator is usable
// @Summary      Assist status
// @Description  Tells the client whether AI features should be offered
// @Tags         assist
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=object}
// @Router       /api/assist/status [get]
func (h *AssistHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"available": h.assist.IsAvailable()}))
}

type enhanceTextRequest struct {
	Text string `json:"text" binding:"required"`
}

// EnhanceText rewrites free text through the AI collaborator
// @Summary      Enhance text
// @Description  Sends the text through the AI collaborator; when it is unavailable or fails, the input comes back unchanged
// @Tags         assist
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      enhanceTextRequest  true  "Text Payload"
// @Success      200      {object}  response.Response{data=object}
// @Failure      400      {object}  response.Response
// @Router       /api/assist/enhance [post]
func (h *AssistHandler) EnhanceText(c *gin.Context) {
	var req enhanceTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	enhanced := h.assist.EnhanceText(c.Request.Context(), req.Text)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"text": enhanced}))
}
