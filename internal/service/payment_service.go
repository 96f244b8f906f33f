package service

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/nourishnet/ordering-service/config"
	"github.com/nourishnet/ordering-service/internal/domain"
	"github.com/nourishnet/ordering-service/internal/dto"
	paymentgateway "github.com/nourishnet/ordering-service/internal/infrastructure/payment-gateway"
	"github.com/nourishnet/ordering-service/internal/repository"
	"github.com/nourishnet/ordering-service/pkg/errs"
	"github.com/nourishnet/ordering-service/pkg/utils"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// stalePushAge is how long a push request may sit pending before the status
// sweep polls the gateway for its outcome.
const stalePushAge = 3 * time.Minute

type PaymentServiceImpl struct {
	repo          repository.PaymentRepository
	userRepo      repository.UserRepository
	gateway       PaymentGateway
	mailer        ReceiptMailer
	kafkaProducer *kafka.Conn
	config        *config.Config
}

func CreatePaymentService(repo repository.PaymentRepository, userRepo repository.UserRepository, gateway PaymentGateway, mailer ReceiptMailer, kafkaProducer *kafka.Conn, config *config.Config) PaymentService {
	return &PaymentServiceImpl{
		repo:          repo,
		userRepo:      userRepo,
		gateway:       gateway,
		mailer:        mailer,
		kafkaProducer: kafkaProducer,
		config:        config,
	}
}

func (s *PaymentServiceImpl) MakePayment(ctx context.Context, req dto.MakePaymentRequest) (resp dto.MakePaymentResponse, gatewayResp dto.StkPushResponse, err error) {
	if req.Phone == "" || req.Amount <= 0 || req.OrderID == 0 {
		return resp, gatewayResp, errs.ErrMissingFields
	}

	order, err := s.repo.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		return
	}
	if order.ID == 0 {
		return resp, gatewayResp, errs.ErrOrderNotFound
	}

	phone := paymentgateway.FormatPhoneNumber(req.Phone)
	if !paymentgateway.ValidPhoneNumber(phone) {
		return resp, gatewayResp, errs.ErrInvalidPhoneNumber
	}

	accessToken, err := s.gateway.GetAccessToken()
	if err != nil {
		return
	}

	gatewayResp, err = s.gateway.InitiatePushPayment(accessToken, phone, int64(math.Round(req.Amount)), req.OrderID)
	if err != nil {
		return
	}

	// The gateway accepted the push; persist the payment and its correlation
	// id together so the callback can always find its way back.
	err = s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.PaymentRepository) error {
		paymentID, err := repo.AddPayment(ctx, domain.Payment{
			OrderID:       req.OrderID,
			Amount:        req.Amount,
			PaymentMethod: "mpesa",
			PhoneNumber:   phone,
			Status:        domain.PaymentStatusPending,
		})
		if err != nil {
			return err
		}

		pushReq := domain.PushRequest{
			PaymentID:         paymentID,
			CheckoutRequestID: gatewayResp.CheckoutRequestID,
		}
		if gatewayResp.MerchantRequestID != "" {
			pushReq.MerchantRequestID = &gatewayResp.MerchantRequestID
		}

		_, err = repo.AddPushRequest(ctx, pushReq)
		return err
	})
	if err != nil {
		return
	}

	resp.CheckoutRequestID = gatewayResp.CheckoutRequestID

	return
}

func (s *PaymentServiceImpl) HandleMpesaCallback(ctx context.Context, req dto.MpesaCallbackRequest) (err error) {
	cb := req.Body.StkCallback
	if cb.CheckoutRequestID == "" {
		return errs.ErrClient
	}

	return s.Reconcile(ctx, dto.ReconciliationEvent{
		CheckoutRequestID: cb.CheckoutRequestID,
		ResultCode:        cb.ResultCode,
		ResultDesc:        cb.ResultDesc,
		ReceiptNumber:     cb.MetadataValue("MpesaReceiptNumber"),
		TransactionDate:   cb.MetadataValue("TransactionDate"),
	})
}

// Reconcile applies a gateway outcome to the payment and its order in a
// single transaction. Replays of an already terminal payment are no-ops.
func (s *PaymentServiceImpl) Reconcile(ctx context.Context, event dto.ReconciliationEvent) (err error) {
	var (
		payment         domain.Payment
		order           domain.Order
		alreadyTerminal bool
	)

	err = s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.PaymentRepository) error {
		pushReq, err := repo.GetPushRequestByCheckoutRequestID(ctx, event.CheckoutRequestID)
		if err != nil {
			return err
		}
		if pushReq.ID == 0 {
			return errs.ErrTransactionNotFound
		}

		payment, err = repo.GetPaymentByID(ctx, pushReq.PaymentID)
		if err != nil {
			return err
		}
		if payment.ID == 0 {
			return errs.ErrIntegrity
		}

		order, err = repo.GetOrderByID(ctx, payment.OrderID)
		if err != nil {
			return err
		}
		if order.ID == 0 {
			return errs.ErrIntegrity
		}

		if payment.Terminal() {
			alreadyTerminal = true
			return nil
		}

		oldStatus := order.Status
		oldPaymentStatus := order.PaymentStatus

		if event.ResultCode == 0 {
			payment.Status = domain.PaymentStatusCompleted
			if event.ReceiptNumber != "" {
				payment.MpesaReceiptNumber = &event.ReceiptNumber
				payment.TransactionID = &event.ReceiptNumber
			}
			if event.TransactionDate != "" {
				paidAt, err := utils.ParseMpesaTimestamp(event.TransactionDate)
				if err != nil {
					log.Error().Err(err).Str("component", "Reconcile").Msg("")
				} else {
					payment.PaidAt = &paidAt
				}
			}

			order.Status = domain.OrderStatusConfirmed
			order.PaymentStatus = domain.PaymentStatusCompleted
			order.MpesaTransactionID = payment.MpesaReceiptNumber
		} else {
			payment.Status = domain.PaymentStatusFailed
			desc := event.ResultDesc
			payment.ErrorMessage = &desc

			order.Status = domain.OrderStatusCancelled
			order.PaymentStatus = domain.PaymentStatusFailed
		}

		if err := repo.UpdatePayment(ctx, payment); err != nil {
			return err
		}

		if err := repo.AddOrderStatusHistory(ctx, domain.OrderStatusHistory{
			OrderID:   order.ID,
			OldStatus: &oldStatus,
			NewStatus: order.Status,
		}); err != nil {
			return err
		}
		if err := repo.AddOrderStatusHistory(ctx, domain.OrderStatusHistory{
			OrderID:   order.ID,
			OldStatus: &oldPaymentStatus,
			NewStatus: order.PaymentStatus,
		}); err != nil {
			return err
		}

		return repo.UpdateOrderPaymentOutcome(ctx, order)
	})
	if err != nil || alreadyTerminal {
		return
	}

	eventType := "payment_failed"
	if event.ResultCode == 0 {
		eventType = "payment_completed"
	}
	s.publishEvent(eventType, dto.PaymentEvent{
		PaymentID:         payment.ID,
		OrderID:           order.ID,
		Amount:            payment.Amount,
		Status:            payment.Status,
		CheckoutRequestID: event.CheckoutRequestID,
		ReceiptNumber:     event.ReceiptNumber,
	}, event.CheckoutRequestID)

	if event.ResultCode == 0 {
		s.sendReceipt(ctx, order, payment, event.ReceiptNumber)
	}

	return nil
}

func (s *PaymentServiceImpl) sendReceipt(ctx context.Context, order domain.Order, payment domain.Payment, receiptNumber string) {
	if s.mailer == nil {
		return
	}

	user, err := s.userRepo.GetUserByID(ctx, order.UserID)
	if err != nil || user.ID == 0 {
		log.Error().Err(err).Str("component", "sendReceipt").Msg("")
		return
	}

	if err := s.mailer.SendPaymentReceipt(user.Email, order.ID, payment.Amount, receiptNumber); err != nil {
		log.Error().Err(err).Str("component", "sendReceipt").Msg("")
	}
}

func (s *PaymentServiceImpl) QueryPaymentStatus(ctx context.Context, checkoutRequestID string) (resp dto.StkQueryResponse, err error) {
	if checkoutRequestID == "" {
		return resp, errs.ErrMissingFields
	}

	accessToken, err := s.gateway.GetAccessToken()
	if err != nil {
		return
	}

	resp, err = s.gateway.QueryPaymentStatus(accessToken, checkoutRequestID)
	if err != nil {
		return
	}

	// A conclusive poll result is reconciled opportunistically; the caller
	// still gets the gateway response verbatim.
	if resp.ResultCode != "" {
		resultCode, convErr := strconv.Atoi(resp.ResultCode)
		if convErr == nil {
			reconcileErr := s.Reconcile(ctx, dto.ReconciliationEvent{
				CheckoutRequestID: checkoutRequestID,
				ResultCode:        resultCode,
				ResultDesc:        resp.ResultDesc,
			})
			if reconcileErr != nil && reconcileErr != errs.ErrTransactionNotFound {
				log.Error().Err(reconcileErr).Str("component", "QueryPaymentStatus").Msg("")
			}
		}
	}

	return resp, nil
}

// ReconcileStalePushRequests polls the gateway for push requests whose
// callback never arrived. Runs on a schedule.
func (s *PaymentServiceImpl) ReconcileStalePushRequests() {
	log.Info().Str("component", "ReconcileStalePushRequests").Msg("starting stale push request sweep")

	ctx := context.Background()
	cutoff := time.Now().Add(-stalePushAge).Unix()

	pushRequests, err := s.repo.GetStalePendingPushRequests(ctx, cutoff)
	if err != nil {
		log.Error().Err(err).Str("component", "ReconcileStalePushRequests").Msg("")
		return
	}
	if len(pushRequests) == 0 {
		log.Info().Str("component", "ReconcileStalePushRequests").Msg("no stale push requests")
		return
	}

	accessToken, err := s.gateway.GetAccessToken()
	if err != nil {
		log.Error().Err(err).Str("component", "ReconcileStalePushRequests").Msg("")
		return
	}

	for _, pushReq := range pushRequests {
		resp, err := s.gateway.QueryPaymentStatus(accessToken, pushReq.CheckoutRequestID)
		if err != nil {
			log.Error().Err(err).Str("component", "ReconcileStalePushRequests").Msg("")
			continue
		}
		if resp.ResultCode == "" {
			// Still in flight on the gateway side.
			continue
		}

		resultCode, err := strconv.Atoi(resp.ResultCode)
		if err != nil {
			log.Error().Err(err).Str("component", "ReconcileStalePushRequests").Msg("")
			continue
		}

		err = s.Reconcile(ctx, dto.ReconciliationEvent{
			CheckoutRequestID: pushReq.CheckoutRequestID,
			ResultCode:        resultCode,
			ResultDesc:        resp.ResultDesc,
		})
		if err != nil {
			log.Error().Err(err).Str("component", "ReconcileStalePushRequests").Msg("")
		}
	}

	log.Info().Str("component", "ReconcileStalePushRequests").Msg("stale push request sweep finished")
}

func (s *PaymentServiceImpl) publishEvent(eventType string, data interface{}, key string) {
	if s.kafkaProducer == nil {
		return
	}

	jsonMsg, err := json.Marshal(dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	})
	if err != nil {
		log.Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		_, err = s.kafkaProducer.WriteMessages(kafka.Message{
			Key:   []byte(key),
			Value: jsonMsg,
		})
		if err == nil {
			return
		}
		log.Error().Err(err).Str("component", "publishEvent").Msg("")
		time.Sleep(time.Second * time.Duration(i+1))
	}
}
