package controller

import (
	"errors"
	"net/http"

	"delivery-market-api/internal/entity"
	"delivery-market-api/internal/service"
	"delivery-market-api/internal/token"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type offerRoutesHandler struct {
	offerService service.Offer
	bidService   service.Bid
	validate     *validator.Validate
}

func newOfferRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate, tokens *token.Manager) *offerRoutesHandler {
	h := &offerRoutesHandler{offerService: services.Offer, bidService: services.Bid, validate: v}
	auth := authRequired(tokens)

	outer.GET("/dashboard", h.GetDashboard)
	outer.POST("/dashboard/search", h.PostSearch)
	outer.POST("/offers/new", h.PostOffer, auth)
	outer.GET("/offers/my", h.GetUserOffers, auth)
	outer.GET("/offers/:offerId", h.GetOffer)
	outer.POST("/offers/:offerId", h.PostOfferDecision, auth)
	outer.PATCH("/offers/:offerId/edit", h.EditOffer, auth)
	outer.DELETE("/offers/:offerId", h.DeleteOffer, auth)

	return h
}

type getDashboardInput struct {
	Query  string `query:"q"`
	Limit  int32  `query:"limit" validate:"gte=0,lte=50"`
	Offset int32  `query:"offset" validate:"gte=0"`
}

func newGetDashboardInput() getDashboardInput {
	return getDashboardInput{Limit: defaultLimit, Offset: defaultOffset}
}

// /dashboard
func (h *offerRoutesHandler) GetDashboard(c echo.Context) error {
	var input = newGetDashboardInput()
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

	// a search lands here through a redirect, the query rides in a
	// single-use cookie rather than the url
	if input.Query == "" {
		if cookie, err := c.Cookie(searchCookie); err == nil {
			input.Query = cookie.Value
		}
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	offers, err := h.offerService.SearchOffers(c.Request().Context(), input.Query, pg)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, offers); e != nil {
		return e
	}

	return nil
}

type postSearchInput struct {
	Query string `json:"search" form:"search"`
}

// /dashboard/search
func (h *offerRoutesHandler) PostSearch(c echo.Context) error {
	var input postSearchInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	c.SetCookie(&http.Cookie{
		Name:   searchCookie,
		Value:  input.Query,
		Path:   "/",
		MaxAge: 1,
	})

	return c.Redirect(http.StatusSeeOther, "/api/dashboard")
}

type postOfferInput struct {
	Name             string `json:"name" form:"name"`
	Description      string `json:"description" form:"description"`
	Wage             string `json:"wage" form:"wage"`
	Distance         string `json:"distance" form:"distance"`
	CityFrom         string `json:"cityFrom" form:"city_from"`
	StreetFrom       string `json:"streetFrom" form:"street_from"`
	StreetFromNumber string `json:"streetFromNumber" form:"street_from_number"`
	CityTo           string `json:"cityTo" form:"city_to"`
	StreetTo         string `json:"streetTo" form:"street_to"`
	StreetToNumber   string `json:"streetToNumber" form:"street_to_number"`
	Extras           string `json:"extras" form:"extras"`
}

// /offers/new
func (h *offerRoutesHandler) PostOffer(c echo.Context) error {
	var input postOfferInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	model := &entity.CreateOfferInput{
		Name: input.Name, Description: input.Description,
		Wage: input.Wage, Distance: input.Distance,
		CityFrom: input.CityFrom, StreetFrom: input.StreetFrom, StreetFromNumber: input.StreetFromNumber,
		CityTo: input.CityTo, StreetTo: input.StreetTo, StreetToNumber: input.StreetToNumber,
		Extras:        input.Extras,
		OwnerUsername: identity(c),
	}

	offer, err := h.offerService.CreateOffer(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusCreated, offer); e != nil {
			return e
		}

		return nil
	}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		if e := c.JSON(http.StatusBadRequest, validationResponse{"Offer form is invalid", validationErr.Messages}); e != nil {
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

type getOfferInput struct {
	OfferId string `path:"offerId" validate:"required,max=100"`
	Limit   int32  `query:"limit" validate:"gte=0,lte=50"`
	Offset  int32  `query:"offset" validate:"gte=0"`
}

func newGetOfferInput() getOfferInput {
	return getOfferInput{Limit: defaultLimit, Offset: defaultOffset}
}

// /offers/:offerId
func (h *offerRoutesHandler) GetOffer(c echo.Context) error {
	var input = newGetOfferInput()
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}
	input.OfferId = c.Param("offerId")

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	detail, err := h.offerService.GetOfferById(c.Request().Context(), input.OfferId, pg)
	if err == nil {
		if e := c.JSON(http.StatusOK, detail); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrOfferNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no delivery offer with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type postOfferDecisionInput struct {
	Value    string `json:"value" form:"value"`
	FinalBid string `json:"finalBid" form:"final_bid"`
}

// /offers/:offerId
//
// The offer page takes two kinds of posts: a visitor placing a bid and the
// owner picking the final one. The finalBid selector tells them apart.
func (h *offerRoutesHandler) PostOfferDecision(c echo.Context) error {
	var input postOfferDecisionInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if input.FinalBid != "" {
		return h.acceptBid(c, c.Param("offerId"), input.FinalBid)
	}

	return h.placeBid(c, c.Param("offerId"), input.Value)
}

func (h *offerRoutesHandler) placeBid(c echo.Context, offerId, value string) error {
	bid, err := h.bidService.PlaceBid(c.Request().Context(), offerId, identity(c), value)
	if err == nil {
		if e := c.JSON(http.StatusCreated, bid); e != nil {
			return e
		}

		return nil
	}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		if e := c.JSON(http.StatusBadRequest, validationResponse{"Bid form is invalid", validationErr.Messages}); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrOfferNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no delivery offer with given id"}); e != nil {
			return e
		}
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"There is no user with given username"}); e != nil {
			return e
		}
	case service.ErrOfferClosed:
		if e := c.JSON(http.StatusForbidden, errorResponse{"The delivery offer is already closed"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

func (h *offerRoutesHandler) acceptBid(c echo.Context, offerId, bidId string) error {
	offer, err := h.bidService.AcceptBid(c.Request().Context(), offerId, bidId, identity(c))
	if err == nil {
		if e := c.JSON(http.StatusOK, offer); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrOfferNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no delivery offer with given id"}); e != nil {
			return e
		}
	case service.ErrBidNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no bid with given id"}); e != nil {
			return e
		}
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"There is no user with given username"}); e != nil {
			return e
		}
	case service.ErrUserIsNotOfferOwner:
		if e := c.JSON(http.StatusForbidden, errorResponse{"You can't accept a bid on somebody else's delivery offer"}); e != nil {
			return e
		}
	case service.ErrBidNotForOffer:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"The bid belongs to another delivery offer"}); e != nil {
			return e
		}
	case service.ErrOfferClosed:
		if e := c.JSON(http.StatusForbidden, errorResponse{"The delivery offer is already closed"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type getUserOffersInput struct {
	Limit  int32 `query:"limit" validate:"gte=0,lte=50"`
	Offset int32 `query:"offset" validate:"gte=0"`
}

func newGetUserOffersInput() getUserOffersInput {
	return getUserOffersInput{Limit: defaultLimit, Offset: defaultOffset}
}

// /offers/my
func (h *offerRoutesHandler) GetUserOffers(c echo.Context) error {
	var input = newGetUserOffersInput()
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
	offers, err := h.offerService.GetUserOffers(c.Request().Context(), identity(c), pg)
	if err == nil {
		if e := c.JSON(http.StatusOK, offers); e != nil {
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

// /offers/:offerId/edit
func (h *offerRoutesHandler) EditOffer(c echo.Context) error {
	var patch entity.OfferPatch
	if err := c.Bind(&patch); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	offer, err := h.offerService.EditOfferById(c.Request().Context(), c.Param("offerId"), identity(c), &patch)
	if err == nil {
		if e := c.JSON(http.StatusOK, offer); e != nil {
			return e
		}

		return nil
	}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		if e := c.JSON(http.StatusBadRequest, validationResponse{"Offer form is invalid", validationErr.Messages}); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrOfferNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no delivery offer with given id"}); e != nil {
			return e
		}
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"There is no user with given username"}); e != nil {
			return e
		}
	case service.ErrUserIsNotOfferOwner:
		if e := c.JSON(http.StatusForbidden, errorResponse{"You can't edit somebody else's delivery offer"}); e != nil {
			return e
		}
	case service.ErrOfferClosed:
		if e := c.JSON(http.StatusForbidden, errorResponse{"The delivery offer is already closed"}); e != nil {
			return e
		}
	case service.ErrNoNewChanges:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"No new values passed"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /offers/:offerId
func (h *offerRoutesHandler) DeleteOffer(c echo.Context) error {
	err := h.offerService.DeleteOfferById(c.Request().Context(), c.Param("offerId"), identity(c))
	if err == nil {
		return c.NoContent(http.StatusNoContent)
	}

	switch err {
	case service.ErrOfferNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no delivery offer with given id"}); e != nil {
			return e
		}
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"There is no user with given username"}); e != nil {
			return e
		}
	case service.ErrUserIsNotOfferOwner:
		if e := c.JSON(http.StatusForbidden, errorResponse{"You can't delete somebody else's delivery offer"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
