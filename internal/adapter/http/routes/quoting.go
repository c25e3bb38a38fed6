package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/giancarlo349/G-OS3/internal/adapter/http/handlers"
)

const (
	PathAuth     = "/auth"
	PathEditor   = "/editor"
	PathProducts = "/products"
	PathQuotes   = "/quotes"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}
}

// addSessionRoutes carries the authenticated half of the identity module.
func addSessionRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	rg.POST(PathAuth+"/refresh", authHandler.Refresh)
}

func addQuotingRoutes(
	rg *gin.RouterGroup,
	editorHandler *handlers.EditorHandler,
	productHandler *handlers.ProductHandler,
	quoteHandler *handlers.QuoteHandler,
	documentHandler *handlers.DocumentHandler,
) {
	editor := rg.Group(PathEditor)
	{
		editor.POST("", editorHandler.Open)
		editor.GET("/:session_id", editorHandler.Snapshot)
		editor.DELETE("/:session_id", editorHandler.Close)
		editor.PATCH("/:session_id/header", editorHandler.SetHeader)

		editor.POST("/:session_id/items", editorHandler.AddItem)
		editor.POST("/:session_id/items/catalog", editorHandler.AddFromCatalog)
		editor.PATCH("/:session_id/items/:item_id", editorHandler.UpdateItem)
		editor.POST("/:session_id/items/move", editorHandler.MoveItem)

		// Two-step delete: mark, then confirm or cancel.
		editor.POST("/:session_id/delete/mark", editorHandler.MarkForDeletion)
		editor.POST("/:session_id/delete/confirm", editorHandler.ConfirmDelete)
		editor.POST("/:session_id/delete/cancel", editorHandler.CancelDelete)

		editor.POST("/:session_id/audit/start", editorHandler.StartAudit)
		editor.POST("/:session_id/audit/approve", editorHandler.ApproveFocused)
		editor.POST("/:session_id/audit/skip", editorHandler.SkipFocused)
		editor.POST("/:session_id/audit/stop", editorHandler.StopAudit)

		editor.PUT("/:session_id/filter", editorHandler.SetFilter)
		editor.POST("/:session_id/matches/next", editorHandler.NextMatch)
		editor.POST("/:session_id/matches/previous", editorHandler.PreviousMatch)

		editor.POST("/:session_id/save", editorHandler.Save)
	}

	products := rg.Group(PathProducts)
	{
		products.GET("", productHandler.List)
		products.GET("/suggestions", productHandler.Suggest)
		products.GET("/watch", productHandler.Watch)
		products.POST("", productHandler.Create)
		products.PUT("/:id", productHandler.Update)
		products.DELETE("/:id", productHandler.Delete)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", quoteHandler.List)
		quotes.GET("/watch", quoteHandler.Watch)
		quotes.GET("/:id", quoteHandler.Get)
		quotes.DELETE("/:id", quoteHandler.Delete)

		quotes.GET("/:id/export/pdf", documentHandler.ExportPDF)
		quotes.GET("/:id/export/spreadsheet", documentHandler.ExportSpreadsheet)
	}
}
