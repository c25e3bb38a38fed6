package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	response "github.com/giancarlo349/G-OS3/internal/adapter/http/dto/response"
	"github.com/giancarlo349/G-OS3/internal/adapter/http/middleware"
	"github.com/giancarlo349/G-OS3/internal/usecase"
	"github.com/giancarlo349/G-OS3/pkg"
)

// DocumentHandler renders a saved quote into a downloadable file. The
// optional "suffix" query overrides the client-name file suffix.

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

func (h *DocumentHandler) ExportPDF(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	doc, err := h.usecase.ExportPDF(c.Request.Context(), user, c.Param("id"), c.Query("suffix"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocument(doc))
}

func (h *DocumentHandler) ExportSpreadsheet(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	doc, err := h.usecase.ExportSpreadsheet(c.Request.Context(), user, c.Param("id"), c.Query("suffix"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocument(doc))
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrExportFailed):
		return pkg.NewDomainError("EXPORT_FAILED", "Document generation failed", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
