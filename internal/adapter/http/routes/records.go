package routes

import (
	"gyeonjeok/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSuppliers     = "/suppliers"
	PathClients       = "/clients"
	PathItemTemplates = "/item-templates"
	PathEstimates     = "/estimates"
)

func addRecordRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, catalogHandler *handlers.CatalogHandler, estimateHandler *handlers.EstimateRecordHandler) {
	suppliers := rg.Group(PathSuppliers, auth)
	{
		suppliers.GET("", catalogHandler.ListSuppliers)
		suppliers.POST("", catalogHandler.SaveSupplier)
		suppliers.DELETE("/:companyName", catalogHandler.DeleteSupplier)
	}

	clients := rg.Group(PathClients, auth)
	{
		clients.GET("", catalogHandler.ListClients)
		clients.POST("", catalogHandler.SaveClient)
		clients.DELETE("/:name", catalogHandler.DeleteClient)
	}

	itemTemplates := rg.Group(PathItemTemplates, auth)
	{
		itemTemplates.GET("", catalogHandler.ListItemTemplates)
		itemTemplates.POST("", catalogHandler.SaveItemTemplate)
		itemTemplates.DELETE("/:name", catalogHandler.DeleteItemTemplate)
	}

	estimates := rg.Group(PathEstimates, auth)
	{
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.PUT("/:id", estimateHandler.UpdateEstimate)
		estimates.DELETE("/:id", estimateHandler.DeleteEstimate)
	}
}
