package controller

import (
	"delivery-market-api/internal/service"
	"delivery-market-api/internal/token"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services, tokens *token.Manager) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	api := handler.Group("/api")
	newDiagnosticRoutesHandler(api, services)
	newAuthRoutesHandler(api, services, validate)
	newOfferRoutesHandler(api, services, validate, tokens)
	newNotificationRoutesHandler(api, services, tokens)
	newMessageRoutesHandler(api, services, validate, tokens)
	newProfileRoutesHandler(api, services, validate, tokens)
}
