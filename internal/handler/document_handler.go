package handler

import (
	"net/http"
	"strconv"

	"traveldesk-backend/internal/service"
	"traveldesk-backend/pkg/pagination"
	"traveldesk-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	documentService service.DocumentService
}

func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

func (h *DocumentHandler) RegisterRoutes(router *gin.RouterGroup) {
	documents := router.Group("/api/documents")
	{
		documents.POST("", h.SaveDocument)
		documents.GET("", h.ListDocuments)
		documents.GET("/:id", h.OpenDocument)
		documents.PUT("/:id", h.ReplaceDocument)
		documents.DELETE("/:id", h.DeleteDocument)

		documents.POST("/:id/items", h.AddItem)
		documents.PUT("/:id/items/:index", h.UpdateItem)
		documents.DELETE("/:id/items/:index", h.RemoveItem)
		documents.POST("/:id/items/:index/enhance", h.EnhanceItem)

		documents.PUT("/:id/customer", h.SetCustomer)
		documents.PUT("/:id/status", h.SetStatus)

		documents.GET("/:id/render", h.RenderDocument)
		documents.GET("/:id/print", h.PrintDocument)
		documents.POST("/:id/email-draft", h.DraftEmail)
	}
}

// SaveDocument creates or replaces a document with its line items
// @Summary      Save document
// @Description  Persists the full document; an unseen id inserts, a known id replaces
// @Tags         documents
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.SaveDocumentRequest  true  "Document Payload"
// @Success      200      {object}  response.Response{data=service.DocumentResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/documents [post]
func (h *DocumentHandler) SaveDocument(c *gin.Context) {
	var req service.SaveDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	doc, err := h.documentService.Save(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, doc))
}

// ListDocuments returns a paginated document list with derived totals
// @Summary      List documents
// @Tags         documents
// @Security     BearerAuth
// @Produce      json
// @Param        kind    query     string  false  "Filter by kind (invoice, quote)"
// @Param        status  query     string  false  "Filter by status (DRAFT, SENT, PAID, ACCEPTED, REJECTED)"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Success      200     {object}  response.Response{data=object}
// @Failure      500     {object}  response.Response
// @Router       /api/documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	params := pagination.Parse(c)

	docs, total, err := h.documentService.List(c.Request.Context(), service.DocumentFilter{
		Kind:   c.Query("kind"),
		Status: c.Query("status"),
		Page:   params.Page,
		Limit:  params.Limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"documents": docs,
		"total":     total,
		"page":      params.Page,
		"limit":     params.Limit,
	}))
}

// OpenDocument loads a document for editing
// @Summary      Open document
// @Description  Loads the document; an unknown or malformed id yields a fresh draft instead of an error
// @Tags         documents
// @Security     BearerAuth
// @Produce      json
// @Param        id    path      string  true   "Document ID, or 'new' for a fresh draft"
// @Param        kind  query     string  false  "Draft kind when falling back (invoice, quote)"
// @Success      200   {object}  response.Response{data=service.DocumentResponse}
// @Failure      500   {object}  response.Response
// @Router       /api/documents/{id} [get]
func (h *DocumentHandler) OpenDocument(c *gin.Context) {
	id := c.Param("id")
	if id == "new" {
		id = ""
	}

	doc, err := h.documentService.Open(c.Request.Context(), id, c.Query("kind"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, doc))
}

// ReplaceDocument replaces the document addressed by the path
// @Summary      Replace document
// @Description  Same as saving with an id in the body; the path id wins over any id in the payload
// @Tags         documents
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Document ID"
// @Param        payload  body      service.SaveDocumentRequest  true  "Document Payload"
// @Success      200      {object}  response.Response{data=service.DocumentResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/documents/{id} [put]
func (h *DocumentHandler) ReplaceDocument(c *gin.Context) {
	var req service.SaveDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	req.ID = c.Param("id")

	doc, err := h.documentService.Save(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, doc))
}

// DeleteDocument removes a document and its line items
// @Summary      Delete document
// @Tags         documents
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	if err := h.documentService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Document deleted"}))
}

// AddItem appends a blank line item
// @Summary      Add line item
// @Description  Appends an empty item (quantity 1, price 0) and returns the document with fresh totals
// @Tags         documents
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  response.Response{data=service.DocumentResponse}
// @Failure      400  {object}  response.Response
// @Router       /api/documents/{id}/items [post]
func (h *DocumentHandler) AddItem(c *gin.Context) {
	doc, err := h.documentService.AddItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, doc))
}

// UpdateItem edits one field of a line item
// @Summary      Update line item field
// @Description  Sets description, quantity or price on the item at the given position; malformed numbers become zero
// @Tags         documents
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Document ID"
// @Param        index    path      int                        true  "Item position"
// @Param        payload  body      service.UpdateItemRequest  true  "Field Update Payload"
// @Success      200      {object}  response.Response{data=service.DocumentResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/documents/{id}/items/{index} [put]
func (h *DocumentHandler) UpdateItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid item index"))
		return
	}

	var req service.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	doc, err := h.documentService.UpdateItem(c.Request.Context(), c.Param("id"), index, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, doc))
}

// RemoveItem deletes a line item by position
// @Summary      Remove line item
// @Description  Removes the item at the given position; later items shift down one slot
// @Tags         documents
// @Security     BearerAuth
// @Produce      json
// @Param        id     path      string  true  "Document ID"
// @Param        index  path      int     true  "Item position"
// @Success      200    {object}  response.Response{data=service.DocumentResponse}
// @Failure      400    {object}  response.Response
// @Router       /api/documents/{id}/items/{index} [delete]
func (h *DocumentHandler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid item index"))
		return
	}

	doc, err := h.documentService.RemoveItem(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, doc))
}

// EnhanceItem rewrites one item description via the AI collaborator
// @Summary      Enhance line item description
// @Description  Sends the description at the given position through the AI collaborator; on failure the text is returned unchanged
// @Tags         documents
// @Security     BearerAuth
// @Produce      json
// @Param        id     path      string  true  "Document ID"
// @Param        index  path      int     true  "Item position"
// @Success      200    {object}  response.Response{data=service.DocumentResponse}
// @Failure      400    {object}  response.Response
// @Router       /api/documents/{id}/items/{index}/enhance [post]
func (h *DocumentHandler) EnhanceItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid item index"))
		return
	}

	doc, err := h.documentService.EnhanceItem(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, doc))
}

type setCustomerRequest struct {
	CustomerID string `json:"customer_id"`
}

// SetCustomer selects the customer for a document
// @Summary      Set document customer
// @Description  Stores the customer id plus a snapshot copy of its details; an empty or unresolvable id clears both
// @Tags         documents
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string              true  "Document ID"
// @Param        payload  body      setCustomerRequest  true  "Customer Selection Payload"
// @Success      200      {object}  response.Response{data=service.DocumentResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/documents/{id}/customer [put]
func (h *DocumentHandler) SetCustomer(c *gin.Context) {
	var req setCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	doc, err := h.documentService.SetCustomer(c.Request.Context(), c.Param("id"), req.CustomerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, doc))
}

type setStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetStatus moves a document to a new status
// @Summary      Set document status
// @Tags         documents
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string            true  "Document ID"
// @Param        payload  body      setStatusRequest  true  "Status Payload"
// @Success      200      {object}  response.Response{data=service.DocumentResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/documents/{id}/status [put]
func (h *DocumentHandler) SetStatus(c *gin.Context) {
	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	doc, err := h.documentService.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, doc))
}

// RenderDocument returns the HTML view of a document
// @Summary      Render document
// @Description  Renders the document through the configured layout; mode selects interactive or final output
// @Tags         documents
// @Security     BearerAuth
// @Produce      html
// @Param        id        path      string  true   "Document ID"
// @Param        mode      query     string  false  "Render mode (interactive, final; default interactive)"
// @Param        template  query     string  false  "Layout override (classic, modern, bold)"
// @Success      200       {string}  string  "HTML document"
// @Failure      500       {object}  response.Response
// @Router       /api/documents/{id}/render [get]
func (h *DocumentHandler) RenderDocument(c *gin.Context) {
	html, err := h.documentService.Render(c.Request.Context(), c.Param("id"), c.Query("mode"), c.Query("template"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// PrintDocument returns the print-ready HTML view
// @Summary      Print document
// @Description  Renders the document in final mode regardless of query parameters
// @Tags         documents
// @Security     BearerAuth
// @Produce      html
// @Param        id        path      string  true   "Document ID"
// @Param        template  query     string  false  "Layout override (classic, modern, bold)"
// @Success      200       {string}  string  "HTML document"
// @Failure      500       {object}  response.Response
// @Router       /api/documents/{id}/print [get]
func (h *DocumentHandler) PrintDocument(c *gin.Context) {
	html, err := h.documentService.Render(c.Request.Context(), c.Param("id"), "final", c.Query("template"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// DraftEmail generates an email body covering the document
// @Summary      Draft email
// @Description  Asks the AI collaborator for an email draft; configuration or generation failures return a fixed fallback message
// @Tags         documents
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  response.Response{data=object}
// @Failure      400  {object}  response.Response
// @Router       /api/documents/{id}/email-draft [post]
func (h *DocumentHandler) DraftEmail(c *gin.Context) {
	draft, err := h.documentService.DraftEmail(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"draft": draft}))
}
