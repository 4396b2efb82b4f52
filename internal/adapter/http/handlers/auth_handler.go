package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "gyeonjeok/internal/adapter/http/dto/request"
	response "gyeonjeok/internal/adapter/http/dto/response"
	"gyeonjeok/internal/usecase"
	"gyeonjeok/internal/usecase/interfaces"
	"gyeonjeok/pkg"
)

var errInvalidSignupPayload = pkg.NewDomainErrorSimple("INVALID_SIGNUP_INPUT", "Invalid signup payload", http.StatusBadRequest)

// AuthHandler serves account creation. Sessions themselves live with the
// external identity provider; this service only brokers signup.

type AuthHandler struct {
	usecase usecase.ISignupUseCase
}

func NewAuthHandler(uc usecase.ISignupUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var payload request.SignupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSignupPayload.HTTPStatus, errInvalidSignupPayload.ToHTTPError())
		return
	}

	identity, err := h.usecase.Signup(c.Request.Context(), payload.Email, payload.Password, payload.Name)
	if err != nil {
		appErr := mapSignupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromIdentity("signup successful", identity))
}

func mapSignupError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingSignupField):
		return pkg.NewDomainErrorSimple("MISSING_SIGNUP_FIELD", "email, password and name are required", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrSignupRejected):
		return pkg.NewDomainErrorSimple("SIGNUP_REJECTED", "signup rejected by identity provider", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
