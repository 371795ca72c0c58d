package http

import (
	"github.com/gin-gonic/gin"

	"focusflow/internal/adapter/http/handlers"
	"focusflow/internal/adapter/http/middleware"
)

type Handlers struct {
	Health    *handlers.HealthHandler
	Zones     *handlers.ZoneHandler
	Tasks     *handlers.TaskHandler
	Tree      *handlers.TreeHandler
	Clipboard *handlers.ClipboardHandler
	Templates *handlers.TemplateHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.GET("/zones", h.Zones.ListZones)
		api.POST("/zones", h.Zones.CreateZone)
		api.PATCH("/zones/:id", h.Zones.UpdateZone)
		api.DELETE("/zones/:id", h.Zones.DeleteZone)
		api.PUT("/zones/order", h.Zones.ReorderZones)
		api.GET("/zones/:id/export", h.Clipboard.ExportZone)

		api.POST("/tasks", h.Tasks.CreateTask)
		api.PATCH("/tasks/:id", h.Tasks.UpdateTask)
		api.DELETE("/tasks/:id", h.Tasks.DeleteTask)
		api.POST("/tasks/:id/toggle", h.Tasks.ToggleTask)
		api.POST("/tasks/:id/move", h.Tasks.MoveTask)
		api.PUT("/tasks/:id/collapse", h.Tasks.SetCollapsed)
		api.PUT("/tasks/:id/expand", h.Tasks.SetExpanded)
		api.POST("/tasks/:id/time", h.Tasks.AccumulateTime)
		api.POST("/tasks/:id/reposition", h.Tree.Reposition)
		api.GET("/tasks/:id/copy", h.Clipboard.CopySubtree)

		api.GET("/tree", h.Tree.GetTree)

		api.POST("/clipboard/paste", h.Clipboard.PasteSubtree)
		api.POST("/workspace/import", h.Clipboard.ImportSnapshot)

		api.GET("/templates", h.Templates.ListTemplates)
		api.POST("/templates", h.Templates.CreateTemplate)
		api.DELETE("/templates/:id", h.Templates.DeleteTemplate)
		api.PUT("/templates/:id/active", h.Templates.SetTemplateActive)
		api.POST("/templates/check", h.Templates.RunRecurringCheck)
	}
}
