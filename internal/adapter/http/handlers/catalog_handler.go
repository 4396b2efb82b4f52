package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "gyeonjeok/internal/adapter/http/dto/request"
	response "gyeonjeok/internal/adapter/http/dto/response"
	"gyeonjeok/internal/adapter/http/middleware"
	"gyeonjeok/internal/usecase"
	"gyeonjeok/pkg"
)

var errInvalidRecordPayload = pkg.NewDomainErrorSimple("INVALID_RECORD_INPUT", "Invalid record payload", http.StatusBadRequest)

// CatalogHandler serves the three natural-key collections (suppliers,
// clients, item templates), each scoped to the authenticated user resolved
// by the auth middleware.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListSuppliers(c *gin.Context) {
	list, err := h.usecase.ListSuppliers(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SupplierCollectionResponse{Suppliers: list})
}

func (h *CatalogHandler) SaveSupplier(c *gin.Context) {
	var payload request.SupplierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return
	}

	list, err := h.usecase.SaveSupplier(c.Request.Context(), middleware.UserID(c), payload.ToEntity())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SupplierCollectionResponse{Message: "supplier saved", Suppliers: list})
}

func (h *CatalogHandler) DeleteSupplier(c *gin.Context) {
	list, err := h.usecase.DeleteSupplier(c.Request.Context(), middleware.UserID(c), c.Param("companyName"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SupplierCollectionResponse{Message: "supplier deleted", Suppliers: list})
}

func (h *CatalogHandler) ListClients(c *gin.Context) {
	list, err := h.usecase.ListClients(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ClientCollectionResponse{Clients: list})
}

func (h *CatalogHandler) SaveClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return
	}

	list, err := h.usecase.SaveClient(c.Request.Context(), middleware.UserID(c), payload.ToEntity())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ClientCollectionResponse{Message: "client saved", Clients: list})
}

func (h *CatalogHandler) DeleteClient(c *gin.Context) {
	list, err := h.usecase.DeleteClient(c.Request.Context(), middleware.UserID(c), c.Param("name"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ClientCollectionResponse{Message: "client deleted", Clients: list})
}

func (h *CatalogHandler) ListItemTemplates(c *gin.Context) {
	list, err := h.usecase.ListItemTemplates(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ItemTemplateCollectionResponse{ItemTemplates: list})
}

func (h *CatalogHandler) SaveItemTemplate(c *gin.Context) {
	var payload request.ItemTemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return
	}

	list, err := h.usecase.SaveItemTemplate(c.Request.Context(), middleware.UserID(c), payload.ToEntity())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ItemTemplateCollectionResponse{Message: "item template saved", ItemTemplates: list})
}

func (h *CatalogHandler) DeleteItemTemplate(c *gin.Context) {
	list, err := h.usecase.DeleteItemTemplate(c.Request.Context(), middleware.UserID(c), c.Param("name"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ItemTemplateCollectionResponse{Message: "item template deleted", ItemTemplates: list})
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCompanyName):
		return pkg.NewDomainErrorSimple("MISSING_COMPANY_NAME", "supplier companyName is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingClientName):
		return pkg.NewDomainErrorSimple("MISSING_CLIENT_NAME", "client name is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingTemplateName):
		return pkg.NewDomainErrorSimple("MISSING_TEMPLATE_NAME", "item template name is required", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
