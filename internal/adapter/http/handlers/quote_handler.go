package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	response "github.com/giancarlo349/G-OS3/internal/adapter/http/dto/response"
	"github.com/giancarlo349/G-OS3/internal/adapter/http/middleware"
	"github.com/giancarlo349/G-OS3/internal/usecase"
	"github.com/giancarlo349/G-OS3/internal/usecase/interfaces"
	"github.com/giancarlo349/G-OS3/pkg"
)

// QuoteHandler serves the dashboard: listing with the rollup, single
// lookup, delete and the change watch stream.

type QuoteHandler struct {
	usecase  usecase.IDashboardUseCase
	notifier interfaces.IChangeNotifier
}

func NewQuoteHandler(uc usecase.IDashboardUseCase, notifier interfaces.IChangeNotifier) *QuoteHandler {
	return &QuoteHandler{usecase: uc, notifier: notifier}
}

func (h *QuoteHandler) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	list, err := h.usecase.List(c.Request.Context(), user, c.Query("filter"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteList(list))
}

func (h *QuoteHandler) Get(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	q, err := h.usecase.Get(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) Delete(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	if err := h.usecase.Delete(c.Request.Context(), user, c.Param("id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// Watch streams server-sent events, one "changed" event per remote write to
// the quotes collection. Clients re-fetch their list on every event; the
// stream itself carries no data.
func (h *QuoteHandler) Watch(c *gin.Context) {
	watchCollection(c, h.notifier, "quotes")
}

func watchCollection(c *gin.Context, notifier interfaces.IChangeNotifier, collection string) {
	ctx := c.Request.Context()
	signals, err := notifier.Subscribe(ctx, collection)
	if err != nil {
		appErr := pkg.NewDomainError("WATCH_UNAVAILABLE", "Change feed unavailable", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case _, ok := <-signals:
			if !ok {
				return false
			}
			c.SSEvent("changed", collection)
			return true
		}
	})
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
