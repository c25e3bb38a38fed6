package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/giancarlo349/G-OS3/internal/adapter/http/dto/request"
	response "github.com/giancarlo349/G-OS3/internal/adapter/http/dto/response"
	"github.com/giancarlo349/G-OS3/internal/adapter/http/middleware"
	"github.com/giancarlo349/G-OS3/internal/domain/entities"
	"github.com/giancarlo349/G-OS3/internal/usecase"
	"github.com/giancarlo349/G-OS3/pkg"
)

var errInvalidEditorPayload = pkg.NewDomainErrorSimple("INVALID_EDITOR_INPUT", "Invalid editor payload", http.StatusBadRequest)

// EditorHandler exposes the draft session: open/close, header and item
// edits, the delete gate, reorder, the verification walkthrough, in-list
// navigation and save. Every mutation answers with the full snapshot.

type EditorHandler struct {
	usecase usecase.IEditorUseCase
}

func NewEditorHandler(uc usecase.IEditorUseCase) *EditorHandler {
	return &EditorHandler{usecase: uc}
}

func (h *EditorHandler) Open(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var payload request.OpenEditorRequest
	if err := c.ShouldBindJSON(&payload); err != nil && c.Request.ContentLength > 0 {
		c.JSON(errInvalidEditorPayload.HTTPStatus, errInvalidEditorPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.Open(c.Request.Context(), user, payload.QuoteID)
	if err != nil {
		appErr := mapEditorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEditorSnapshot(s))
}

func (h *EditorHandler) Snapshot(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	s, err := h.usecase.Snapshot(c.Request.Context(), user, c.Param("session_id"))
	h.respond(c, s, err)
}

func (h *EditorHandler) Close(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	if err := h.usecase.Close(c.Request.Context(), user, c.Param("session_id")); err != nil {
		appErr := mapEditorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *EditorHandler) SetHeader(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var payload request.HeaderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEditorPayload.HTTPStatus, errInvalidEditorPayload.ToHTTPError())
		return
	}

	patch := usecase.HeaderPatch{
		ClientName:  payload.ClientName,
		ClientPhone: payload.ClientPhone,
		Author:      payload.Author,
	}
	if payload.Status != nil {
		status := entities.QuoteStatus(*payload.Status)
		patch.Status = &status
	}

	s, err := h.usecase.SetHeader(c.Request.Context(), user, c.Param("session_id"), patch)
	h.respond(c, s, err)
}

func (h *EditorHandler) AddItem(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEditorPayload.HTTPStatus, errInvalidEditorPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.AddItem(c.Request.Context(), user, c.Param("session_id"), payload.Description, payload.Price)
	h.respond(c, s, err)
}

func (h *EditorHandler) AddFromCatalog(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var payload request.AddCatalogItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEditorPayload.HTTPStatus, errInvalidEditorPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.AddFromCatalog(c.Request.Context(), user, c.Param("session_id"), payload.ProductID)
	h.respond(c, s, err)
}

func (h *EditorHandler) UpdateItem(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var payload request.ItemPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEditorPayload.HTTPStatus, errInvalidEditorPayload.ToHTTPError())
		return
	}

	patch := usecase.ItemPatch{
		Description: payload.Description,
		Price:       payload.Price,
		Quantity:    payload.Quantity,
		Comment:     payload.Comment,
		IsVerified:  payload.IsVerified,
	}
	s, err := h.usecase.UpdateItem(c.Request.Context(), user, c.Param("session_id"), c.Param("item_id"), patch)
	h.respond(c, s, err)
}

func (h *EditorHandler) MarkForDeletion(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var payload request.MarkDeleteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEditorPayload.HTTPStatus, errInvalidEditorPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.MarkForDeletion(c.Request.Context(), user, c.Param("session_id"), payload.ItemID)
	h.respond(c, s, err)
}

func (h *EditorHandler) CancelDelete(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	s, err := h.usecase.CancelDelete(c.Request.Context(), user, c.Param("session_id"))
	h.respond(c, s, err)
}

func (h *EditorHandler) ConfirmDelete(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	s, err := h.usecase.ConfirmDelete(c.Request.Context(), user, c.Param("session_id"))
	h.respond(c, s, err)
}

func (h *EditorHandler) MoveItem(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var payload request.MoveItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.From == nil || payload.To == nil {
		c.JSON(errInvalidEditorPayload.HTTPStatus, errInvalidEditorPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.MoveItem(c.Request.Context(), user, c.Param("session_id"), *payload.From, *payload.To)
	h.respond(c, s, err)
}

func (h *EditorHandler) StartAudit(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	s, err := h.usecase.StartAudit(c.Request.Context(), user, c.Param("session_id"))
	h.respond(c, s, err)
}

func (h *EditorHandler) ApproveFocused(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	s, err := h.usecase.ApproveFocused(c.Request.Context(), user, c.Param("session_id"))
	h.respond(c, s, err)
}

func (h *EditorHandler) SkipFocused(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	s, err := h.usecase.SkipFocused(c.Request.Context(), user, c.Param("session_id"))
	h.respond(c, s, err)
}

func (h *EditorHandler) StopAudit(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	s, err := h.usecase.StopAudit(c.Request.Context(), user, c.Param("session_id"))
	h.respond(c, s, err)
}

func (h *EditorHandler) SetFilter(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var payload request.FilterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEditorPayload.HTTPStatus, errInvalidEditorPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.SetFilter(c.Request.Context(), user, c.Param("session_id"), payload.Filter)
	h.respond(c, s, err)
}

func (h *EditorHandler) NextMatch(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	s, err := h.usecase.NextMatch(c.Request.Context(), user, c.Param("session_id"))
	h.respond(c, s, err)
}

func (h *EditorHandler) PreviousMatch(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	s, err := h.usecase.PreviousMatch(c.Request.Context(), user, c.Param("session_id"))
	h.respond(c, s, err)
}

func (h *EditorHandler) Save(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var payload request.SaveRequest
	if err := c.ShouldBindJSON(&payload); err != nil && c.Request.ContentLength > 0 {
		c.JSON(errInvalidEditorPayload.HTTPStatus, errInvalidEditorPayload.ToHTTPError())
		return
	}

	quoteID, err := h.usecase.Save(c.Request.Context(), user, c.Param("session_id"), payload.Silent)
	if err != nil {
		appErr := mapEditorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SaveResponse{QuoteID: quoteID})
}

func (h *EditorHandler) respond(c *gin.Context, s usecase.EditorSnapshot, err error) {
	if err != nil {
		appErr := mapEditorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEditorSnapshot(s))
}

func mapEditorError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Editor session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEditorItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found in draft", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidPosition), errors.Is(err, usecase.ErrNoDeletePending), errors.Is(err, usecase.ErrClientNameRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAuditActive), errors.Is(err, usecase.ErrAuditInactive):
		return pkg.NewDomainErrorSimple("AUDIT_STATE_CONFLICT", "Operation conflicts with the verification walkthrough", http.StatusConflict)
	case errors.Is(err, usecase.ErrSaveInFlight):
		return pkg.NewDomainErrorSimple("SAVE_IN_FLIGHT", "A save is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrRemoteWrite):
		return pkg.NewDomainErrorSimple("STORE_UNAVAILABLE", "Could not persist the quote", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
