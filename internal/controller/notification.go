package controller

import (
	"net/http"

	"delivery-market-api/internal/entity"
	"delivery-market-api/internal/service"
	"delivery-market-api/internal/token"

	"github.com/labstack/echo"
)

type notificationRoutesHandler struct {
	notificationService service.Notification
}

func newNotificationRoutesHandler(outer *echo.Group, services *service.Services, tokens *token.Manager) *notificationRoutesHandler {
	h := &notificationRoutesHandler{notificationService: services.Notification}
	auth := authRequired(tokens)

	outer.GET("/notifications", h.GetNotifications, auth)
	outer.DELETE("/notifications/:notificationId", h.DeleteNotification, auth)

	return h
}

// /notifications
func (h *notificationRoutesHandler) GetNotifications(c echo.Context) error {
	pg := entity.NewPaginationInput(defaultLimit, defaultOffset)
	notifications, err := h.notificationService.GetUserNotifications(c.Request().Context(), identity(c), pg)
	if err == nil {
		if e := c.JSON(http.StatusOK, notifications); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"There is no user with given username"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /notifications/:notificationId
func (h *notificationRoutesHandler) DeleteNotification(c echo.Context) error {
	err := h.notificationService.DeleteNotificationById(c.Request().Context(), c.Param("notificationId"), identity(c))
	if err == nil {
		return c.NoContent(http.StatusNoContent)
	}

	switch err {
	case service.ErrNotificationNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no notification with given id"}); e != nil {
			return e
		}
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"There is no user with given username"}); e != nil {
			return e
		}
	case service.ErrUserIsNotNotificationOwner:
		if e := c.JSON(http.StatusForbidden, errorResponse{"You can't delete somebody else's notification"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
