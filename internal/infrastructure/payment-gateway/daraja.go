package paymentgateway

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nourishnet/ordering-service/config"
	"github.com/nourishnet/ordering-service/internal/dto"
	"github.com/nourishnet/ordering-service/pkg/errs"
	"github.com/nourishnet/ordering-service/pkg/httpclient"
	"github.com/nourishnet/ordering-service/pkg/utils"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

const (
	accessTokenPath = "/oauth/v1/generate?grant_type=client_credentials"
	stkPushPath     = "/mpesa/stkpush/v1/processrequest"
	stkQueryPath    = "/mpesa/stkpushquery/v1/query"

	tokenTimeout   = 30 * time.Second
	requestTimeout = 30 * time.Second
)

// Client talks to the Safaricom Daraja API: token issuance, STK push
// initiation and STK status queries. All calls run through the circuit
// breaker and are timeout-bounded; no database state is touched here.
type Client struct {
	config *config.Config
	cb     *gobreaker.CircuitBreaker[[]byte]
}

func CreateDarajaClient(config *config.Config, cb *gobreaker.CircuitBreaker[[]byte]) *Client {
	return &Client{
		config: config,
		cb:     cb,
	}
}

func (c *Client) send(req httpclient.HttpRequest) ([]byte, error) {
	return c.cb.Execute(func() ([]byte, error) {
		statusCode, body, err := httpclient.SendRequest(req)
		if err != nil {
			return nil, err
		}

		if statusCode < 200 || statusCode >= 300 {
			return body, fmt.Errorf("gateway returned status %d: %s", statusCode, string(body))
		}

		return body, nil
	})
}

// GetAccessToken exchanges the configured consumer credentials for a bearer
// token. A failure here is not retried within the same request cycle.
func (c *Client) GetAccessToken() (string, error) {
	credentials := base64.StdEncoding.EncodeToString(
		[]byte(c.config.MpesaConfig.ConsumerKey + ":" + c.config.MpesaConfig.ConsumerSecret),
	)

	body, err := c.send(httpclient.HttpRequest{
		URL:    c.config.MpesaConfig.BaseURL + accessTokenPath,
		Method: "GET",
		Headers: map[string]string{
			"Content-Type":  "application/json",
			"Authorization": "Basic " + credentials,
		},
		Timeout: tokenTimeout,
	})
	if err != nil {
		log.Error().Err(err).Str("component", "GetAccessToken").Msg("")
		return "", errs.ErrAccessToken
	}

	var tokenResponse dto.AccessTokenResponse
	if err := json.Unmarshal(body, &tokenResponse); err != nil {
		log.Error().Err(err).Str("component", "GetAccessToken").Msg("")
		return "", errs.ErrAccessToken
	}

	if tokenResponse.AccessToken == "" {
		log.Error().Str("component", "GetAccessToken").Str("error_message", tokenResponse.ErrorMessage).Msg("token missing from response")
		return "", errs.ErrAccessToken
	}

	return tokenResponse.AccessToken, nil
}

// InitiatePushPayment normalizes the phone number, signs the request and
// submits an STK push for the given amount. The returned CheckoutRequestID is
// the correlation key the caller must persist before the callback can arrive.
func (c *Client) InitiatePushPayment(accessToken string, phone string, amount int64, orderID int64) (dto.StkPushResponse, error) {
	var pushResponse dto.StkPushResponse

	phone = FormatPhoneNumber(phone)
	if !ValidPhoneNumber(phone) {
		return pushResponse, errs.ErrInvalidPhoneNumber
	}

	password, timestamp := c.stkPassword(time.Now())

	payload := dto.StkPushRequest{
		BusinessShortCode: c.config.MpesaConfig.ShortCode,
		Password:          password,
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            amount,
		PartyA:            phone,
		PartyB:            c.config.MpesaConfig.ShortCode,
		PhoneNumber:       phone,
		CallBackURL:       c.config.MpesaConfig.CallbackURL,
		AccountReference:  fmt.Sprintf("Order%d", orderID),
		TransactionDesc:   "Food Order Payment",
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return pushResponse, err
	}

	body, err := c.send(httpclient.HttpRequest{
		URL:    c.config.MpesaConfig.BaseURL + stkPushPath,
		Method: "POST",
		Body:   jsonBody,
		Headers: map[string]string{
			"Content-Type":  "application/json",
			"Authorization": "Bearer " + accessToken,
		},
		Timeout: requestTimeout,
	})
	if body != nil {
		// Keep whatever the provider said so the caller can attach it to the
		// error response.
		json.Unmarshal(body, &pushResponse)
	}
	if err != nil {
		log.Error().Err(err).Str("component", "InitiatePushPayment").Msg("")
		return pushResponse, errs.ErrUpstreamGateway
	}

	if pushResponse.ResponseCode != "0" {
		log.Error().Str("component", "InitiatePushPayment").Str("response_code", pushResponse.ResponseCode).Msg("stk push rejected")
		return pushResponse, errs.ErrUpstreamGateway
	}

	return pushResponse, nil
}

// QueryPaymentStatus asks the gateway for its current view of a push request.
// This is the synchronous alternative to the asynchronous callback.
func (c *Client) QueryPaymentStatus(accessToken string, checkoutRequestID string) (dto.StkQueryResponse, error) {
	var queryResponse dto.StkQueryResponse

	password, timestamp := c.stkPassword(time.Now())

	payload := dto.StkQueryRequest{
		BusinessShortCode: c.config.MpesaConfig.ShortCode,
		Password:          password,
		Timestamp:         timestamp,
		CheckoutRequestID: checkoutRequestID,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return queryResponse, err
	}

	body, err := c.send(httpclient.HttpRequest{
		URL:    c.config.MpesaConfig.BaseURL + stkQueryPath,
		Method: "POST",
		Body:   jsonBody,
		Headers: map[string]string{
			"Content-Type":  "application/json",
			"Authorization": "Bearer " + accessToken,
		},
		Timeout: requestTimeout,
	})
	if body != nil {
		json.Unmarshal(body, &queryResponse)
	}
	if err != nil {
		log.Error().Err(err).Str("component", "QueryPaymentStatus").Msg("")
		return queryResponse, errs.ErrUpstreamGateway
	}

	return queryResponse, nil
}

// stkPassword derives the shortcode+passkey+timestamp credential Daraja
// expects on push and query requests.
func (c *Client) stkPassword(t time.Time) (password string, timestamp string) {
	timestamp = utils.FormatMpesaTimestamp(t)
	password = base64.StdEncoding.EncodeToString(
		[]byte(c.config.MpesaConfig.ShortCode + c.config.MpesaConfig.PassKey + timestamp),
	)

	return password, timestamp
}
