package controller

import (
	"errors"
	"net/http"
	"time"

	"delivery-market-api/internal/entity"
	"delivery-market-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type authRoutesHandler struct {
	authService service.Auth
	validate    *validator.Validate
}

func newAuthRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *authRoutesHandler {
	h := &authRoutesHandler{authService: services.Auth, validate: v}

	outer.POST("/auth/register", h.Register)
	outer.POST("/auth/login", h.Login)
	outer.POST("/auth/logout", h.Logout)

	return h
}

type registerInput struct {
	Username  string `json:"username" form:"username" validate:"required,max=100"`
	Email     string `json:"email" form:"email" validate:"required,email,max=100"`
	Password  string `json:"password" form:"password1" validate:"required,max=100"`
	Password2 string `json:"password2" form:"password2" validate:"required,max=100"`
}

// /auth/register
func (h *authRoutesHandler) Register(c echo.Context) error {
	var input registerInput
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

	model := &entity.RegisterInput{
		Username: input.Username, Email: input.Email,
		Password: input.Password, Password2: input.Password2,
	}

	user, accessToken, err := h.authService.Register(c.Request().Context(), model)
	if err == nil {
		setSessionCookie(c, accessToken)
		if e := c.JSON(http.StatusCreated, user); e != nil {
			return e
		}

		return nil
	}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		if e := c.JSON(http.StatusBadRequest, validationResponse{"Registration form is invalid", validationErr.Messages}); e != nil {
			return e
		}

		return nil
	}

	if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
		return e
	}

	return err
}

type loginInput struct {
	Username string `json:"username" form:"username" validate:"required,max=100"`
	Password string `json:"password" form:"password" validate:"required,max=100"`
}

// /auth/login
func (h *authRoutesHandler) Login(c echo.Context) error {
	var input loginInput
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

	accessToken, err := h.authService.Login(c.Request().Context(), input.Username, input.Password)
	if err == nil {
		setSessionCookie(c, accessToken)
		if e := c.JSON(http.StatusOK, map[string]string{"accessToken": accessToken}); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrInvalidCredentials:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"Wrong username or password"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /auth/logout
func (h *authRoutesHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return c.NoContent(http.StatusNoContent)
}

func setSessionCookie(c echo.Context, accessToken string) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    accessToken,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
	})
}
