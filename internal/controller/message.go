package controller

import (
	"net/http"

	"delivery-market-api/internal/entity"
	"delivery-market-api/internal/service"
	"delivery-market-api/internal/token"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type messageRoutesHandler struct {
	messageService service.Message
	validate       *validator.Validate
}

func newMessageRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate, tokens *token.Manager) *messageRoutesHandler {
	h := &messageRoutesHandler{messageService: services.Message, validate: v}
	auth := authRequired(tokens)

	outer.GET("/offers/:offerId/messages", h.GetMessages, auth)
	outer.POST("/offers/:offerId/messages", h.PostMessage, auth)

	return h
}

type getMessagesInput struct {
	Limit  int32 `query:"limit" validate:"gte=0,lte=50"`
	Offset int32 `query:"offset" validate:"gte=0"`
}

func newGetMessagesInput() getMessagesInput {
	return getMessagesInput{Limit: defaultLimit, Offset: defaultOffset}
}

// /offers/:offerId/messages
func (h *messageRoutesHandler) GetMessages(c echo.Context) error {
	var input = newGetMessagesInput()
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	messages, err := h.messageService.GetOfferMessages(c.Request().Context(), c.Param("offerId"), identity(c), pg)
	if err == nil {
		if e := c.JSON(http.StatusOK, messages); e != nil {
			return e
		}

		return nil
	}

	return h.respondMessageError(c, err)
}

type postMessageInput struct {
	Content string `json:"content" form:"content" validate:"required,max=2000"`
}

// /offers/:offerId/messages
func (h *messageRoutesHandler) PostMessage(c echo.Context) error {
	var input postMessageInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	message, err := h.messageService.SendMessage(c.Request().Context(), c.Param("offerId"), identity(c), input.Content)
	if err == nil {
		if e := c.JSON(http.StatusCreated, message); e != nil {
			return e
		}

		return nil
	}

	return h.respondMessageError(c, err)
}

func (h *messageRoutesHandler) respondMessageError(c echo.Context, err error) error {
	switch err {
	case service.ErrOfferNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no delivery offer with given id"}); e != nil {
			return e
		}
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"There is no user with given username"}); e != nil {
			return e
		}
	case service.ErrUserIsNotParticipant:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Only the owner and the contractor can use the offer conversation"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
