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

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// EstimateRecordHandler serves the per-user estimate collection.

type EstimateRecordHandler struct {
	usecase usecase.IEstimateRecordUseCase
}

func NewEstimateRecordHandler(uc usecase.IEstimateRecordUseCase) *EstimateRecordHandler {
	return &EstimateRecordHandler{usecase: uc}
}

func (h *EstimateRecordHandler) ListEstimates(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapEstimateRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.EstimateCollectionResponse{Estimates: list})
}

func (h *EstimateRecordHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateDocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	rec, err := h.usecase.Create(c.Request.Context(), middleware.UserID(c), payload.ToEntity())
	if err != nil {
		appErr := mapEstimateRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.EstimateResponse{Message: "estimate created", Estimate: rec})
}

func (h *EstimateRecordHandler) UpdateEstimate(c *gin.Context) {
	var payload request.EstimateDocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	rec, err := h.usecase.Update(c.Request.Context(), middleware.UserID(c), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapEstimateRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.EstimateResponse{Message: "estimate updated", Estimate: rec})
}

func (h *EstimateRecordHandler) DeleteEstimate(c *gin.Context) {
	list, err := h.usecase.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		appErr := mapEstimateRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.EstimateCollectionResponse{Message: "estimate deleted", Estimates: list})
}

func mapEstimateRecordError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingEstimateNumber):
		return pkg.NewDomainErrorSimple("MISSING_ESTIMATE_NUMBER", "estimateNumber is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingEstimateClient):
		return pkg.NewDomainErrorSimple("MISSING_CLIENT_NAME", "clientName is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
