package controller

import (
	"net/http"

	"delivery-market-api/internal/service"
	"delivery-market-api/internal/token"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type profileRoutesHandler struct {
	profileService service.Profile
	validate       *validator.Validate
}

func newProfileRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate, tokens *token.Manager) *profileRoutesHandler {
	h := &profileRoutesHandler{profileService: services.Profile, validate: v}
	auth := authRequired(tokens)

	outer.GET("/profile", h.GetProfile, auth)
	outer.PATCH("/profile", h.UpdateProfile, auth)

	return h
}

// /profile
func (h *profileRoutesHandler) GetProfile(c echo.Context) error {
	profile, err := h.profileService.GetProfileByUsername(c.Request().Context(), identity(c))
	if err == nil {
		if e := c.JSON(http.StatusOK, profile); e != nil {
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

type updateProfileInput struct {
	Avatar string `json:"avatar" form:"avatar" validate:"required,max=256"`
}

// /profile
func (h *profileRoutesHandler) UpdateProfile(c echo.Context) error {
	var input updateProfileInput
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

	profile, err := h.profileService.UpdateAvatarByUsername(c.Request().Context(), identity(c), input.Avatar)
	if err == nil {
		if e := c.JSON(http.StatusOK, profile); e != nil {
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
