package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/nourishnet/ordering-service/internal/dto"
	"github.com/nourishnet/ordering-service/internal/service"
	"github.com/nourishnet/ordering-service/pkg/response"
	"github.com/rs/zerolog/log"
)

type CartController struct {
	service service.CartService
}

func CreateCartController(authed *echo.Group, service service.CartService) {
	cc := CartController{
		service: service,
	}

	authed.GET("/cart", cc.GetCart)
	authed.POST("/cart", cc.AddCartItem)
	authed.PUT("/cart/:id", cc.UpdateCartItem)
	authed.DELETE("/cart/:id", cc.DeleteCartItem)
}

func (c *CartController) GetCart(e echo.Context) error {
	userID := e.Get("userID").(int64)

	resp, err := c.service.GetCart(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CartController) AddCartItem(e echo.Context) error {
	userID := e.Get("userID").(int64)

	payload := dto.CartItemRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddCartItem").Msg("")
	}

	id, err := c.service.AddCartItem(e.Request().Context(), userID, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "item added to cart", map[string]int64{"id": id})
}

func (c *CartController) UpdateCartItem(e echo.Context) error {
	userID := e.Get("userID").(int64)

	id, err := pathID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	payload := dto.CartItemRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateCartItem").Msg("")
	}

	if err := c.service.UpdateCartItem(e.Request().Context(), userID, id, payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "cart item updated", nil)
}

func (c *CartController) DeleteCartItem(e echo.Context) error {
	userID := e.Get("userID").(int64)

	id, err := pathID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	if err := c.service.DeleteCartItem(e.Request().Context(), userID, id); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "cart item removed", nil)
}
