package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nourishnet/ordering-service/internal/dto"
	"github.com/nourishnet/ordering-service/internal/service"
	"github.com/nourishnet/ordering-service/pkg/errs"
	"github.com/nourishnet/ordering-service/pkg/response"
	"github.com/rs/zerolog/log"
)

type PaymentController struct {
	service service.PaymentService
}

func CreatePaymentController(public *echo.Group, authed *echo.Group, service service.PaymentService) {
	pc := PaymentController{
		service: service,
	}

	authed.POST("/make-payment", pc.MakePayment)
	authed.POST("/query-payment-status", pc.QueryPaymentStatus)

	// The gateway must be able to reach these without a session.
	public.GET("/mpesa-callback", pc.MpesaCallbackProbe)
	public.POST("/mpesa-callback", pc.MpesaCallback)
}

func (c *PaymentController) MakePayment(e echo.Context) error {
	payload := dto.MakePaymentRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "MakePayment").Msg("")
	}

	resp, gatewayResp, err := c.service.MakePayment(e.Request().Context(), payload)
	if err != nil {
		if errors.Is(err, errs.ErrUpstreamGateway) {
			return response.WriteErrorResponse(e, err, gatewayResp)
		}
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "payment initiated", resp)
}

func (c *PaymentController) QueryPaymentStatus(e echo.Context) error {
	payload := dto.QueryPaymentStatusRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "QueryPaymentStatus").Msg("")
	}

	resp, err := c.service.QueryPaymentStatus(e.Request().Context(), payload.CheckoutRequestID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

// MpesaCallbackProbe answers the gateway's reachability check.
func (c *PaymentController) MpesaCallbackProbe(e echo.Context) error {
	return response.WriteSuccessResponse(e, "callback endpoint active", nil)
}

// MpesaCallback receives the gateway's payment outcome. Unknown correlation
// ids and replays are acknowledged with success so the gateway stops
// retrying; only internal failures surface as errors.
func (c *PaymentController) MpesaCallback(e echo.Context) error {
	payload := dto.MpesaCallbackRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "MpesaCallback").Msg("")
	}

	err = c.service.HandleMpesaCallback(e.Request().Context(), payload)
	if err != nil {
		// Unknown ids and malformed bodies still get a 200 so the gateway
		// stops re-delivering; the condition is reported in the body.
		if errors.Is(err, errs.ErrTransactionNotFound) || errors.Is(err, errs.ErrClient) {
			log.Error().Err(err).Str("component", "MpesaCallback").Msg("")
			return e.JSON(http.StatusOK, response.ErrorResponse{Message: err.Error()})
		}
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "callback processed", nil)
}
