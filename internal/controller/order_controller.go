package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/nourishnet/ordering-service/internal/dto"
	"github.com/nourishnet/ordering-service/internal/service"
	pkgdto "github.com/nourishnet/ordering-service/pkg/dto"
	"github.com/nourishnet/ordering-service/pkg/response"
	"github.com/rs/zerolog/log"
)

type OrderController struct {
	service service.OrderService
}

func CreateOrderController(authed *echo.Group, service service.OrderService) {
	oc := OrderController{
		service: service,
	}

	authed.POST("/orders", oc.AddOrder)
	authed.GET("/orders", oc.GetOrders)
	authed.GET("/orders/:id", oc.GetOrder)
	authed.PUT("/orders/:id", oc.UpdateOrder)
	authed.PUT("/orders/:id/status", oc.UpdateOrderStatus)
	authed.DELETE("/orders/:id", oc.DeleteOrder)
}

func (c *OrderController) AddOrder(e echo.Context) error {
	userID := e.Get("userID").(int64)

	payload := dto.OrderRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Msg("")
	}
	payload.UserID = userID

	resp, err := c.service.AddOrder(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "order created", resp)
}

func (c *OrderController) GetOrders(e echo.Context) error {
	userID := e.Get("userID").(int64)

	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetOrders").Msg("")
	}

	resp, err := c.service.GetOrders(e.Request().Context(), userID, filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *OrderController) GetOrder(e echo.Context) error {
	userID := e.Get("userID").(int64)

	id, err := pathID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := c.service.GetOrder(e.Request().Context(), userID, id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *OrderController) UpdateOrder(e echo.Context) error {
	userID := e.Get("userID").(int64)

	id, err := pathID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	payload := dto.OrderRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateOrder").Msg("")
	}
	payload.OrderID = id
	payload.UserID = userID

	resp, err := c.service.UpdateOrder(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "order updated", resp)
}

func (c *OrderController) UpdateOrderStatus(e echo.Context) error {
	userID := e.Get("userID").(int64)

	id, err := pathID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	payload := dto.OrderStatusRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateOrderStatus").Msg("")
	}

	resp, err := c.service.UpdateOrderStatus(e.Request().Context(), userID, id, payload.Status)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "order status updated", resp)
}

func (c *OrderController) DeleteOrder(e echo.Context) error {
	userID := e.Get("userID").(int64)

	id, err := pathID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	// Ownership gate before the destructive call.
	if _, err := c.service.GetOrder(e.Request().Context(), userID, id); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	if err := c.service.DeleteOrder(e.Request().Context(), id); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "order deleted", nil)
}
