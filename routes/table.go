package routes

import (
	tablecontroller "github.com/biharidelicacies/marketplace-api/controllers/table"
	"github.com/biharidelicacies/marketplace-api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupTableRoutes registers the collection endpoints addressed by table id.
func SetupTableRoutes(r *gin.Engine, d Deps) {
	table := r.Group("/table")
	{
		table.POST("/page/:tableId", tablecontroller.PageTable(d.Store, d.Log))
		table.POST("/create/:tableId", tablecontroller.CreateRecord(d.Store, d.Log))
		table.GET("/get/:tableId/:id", tablecontroller.GetRecord(d.Store, d.Log))
		table.GET("/export/:tableId", middleware.ValidateAPIKey(d.Config.AdminAPIKey), tablecontroller.ExportTable(d.Store, d.Log))
	}
}
