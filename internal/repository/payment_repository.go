package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/nourishnet/ordering-service/internal/domain"
	"github.com/nourishnet/ordering-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

type PaymentRepositoryImpl struct {
	db *sqlx.DB
	tx *sqlx.Tx
}

func CreatePaymentRepository(db *sqlx.DB) PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

func (r *PaymentRepositoryImpl) conn() dbtx {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *PaymentRepositoryImpl) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo PaymentRepository) error) (err error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	txRepo := &PaymentRepositoryImpl{tx: tx}

	err = fn(ctx, txRepo)

	return err
}

func (r *PaymentRepositoryImpl) AddPayment(ctx context.Context, data domain.Payment) (id int64, err error) {
	timestamp := time.Now().Unix()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	nstmt, err := r.conn().PrepareNamedContext(ctx, "INSERT INTO payments(order_id, amount, payment_method, transaction_id, phone_number, status, mpesa_receipt_number, error_message, paid_at, created_at, updated_at) VALUES (:order_id, :amount, :payment_method, :transaction_id, :phone_number, :status, :mpesa_receipt_number, :error_message, :paid_at, :created_at, :updated_at) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddPayment").Msg("")
		return
	}

	err = nstmt.GetContext(ctx, &data.ID, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddPayment").Msg("")
		return
	}

	return data.ID, nil
}

func (r *PaymentRepositoryImpl) AddPushRequest(ctx context.Context, data domain.PushRequest) (id int64, err error) {
	timestamp := time.Now().Unix()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	nstmt, err := r.conn().PrepareNamedContext(ctx, "INSERT INTO push_requests(payment_id, checkout_request_id, merchant_request_id, created_at, updated_at) VALUES (:payment_id, :checkout_request_id, :merchant_request_id, :created_at, :updated_at) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddPushRequest").Msg("")
		return
	}

	err = nstmt.GetContext(ctx, &data.ID, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddPushRequest").Msg("")
		return
	}

	return data.ID, nil
}

func (r *PaymentRepositoryImpl) GetPushRequestByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (data domain.PushRequest, err error) {
	row := r.conn().QueryRowxContext(ctx, "SELECT * FROM push_requests WHERE checkout_request_id = $1", checkoutRequestID)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetPushRequestByCheckoutRequestID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *PaymentRepositoryImpl) GetStalePendingPushRequests(ctx context.Context, createdBefore int64) (data []domain.PushRequest, err error) {
	err = r.conn().SelectContext(ctx, &data, "SELECT pr.* FROM push_requests pr JOIN payments p ON p.id = pr.payment_id WHERE p.status = $1 AND pr.created_at < $2", domain.PaymentStatusPending, createdBefore)
	if err != nil {
		log.Error().Err(err).Str("component", "GetStalePendingPushRequests").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

func (r *PaymentRepositoryImpl) GetPaymentByID(ctx context.Context, id int64) (data domain.Payment, err error) {
	row := r.conn().QueryRowxContext(ctx, "SELECT * FROM payments WHERE id = $1", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetPaymentByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *PaymentRepositoryImpl) UpdatePayment(ctx context.Context, data domain.Payment) (err error) {
	data.UpdatedAt = time.Now().Unix()

	_, err = r.conn().NamedExecContext(ctx, "UPDATE payments SET status=:status, transaction_id=:transaction_id, mpesa_receipt_number=:mpesa_receipt_number, error_message=:error_message, paid_at=:paid_at, updated_at=:updated_at WHERE id=:id", data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdatePayment").Msg("")
		return
	}

	return nil
}

func (r *PaymentRepositoryImpl) GetOrderByID(ctx context.Context, id int64) (data domain.Order, err error) {
	row := r.conn().QueryRowxContext(ctx, "SELECT * FROM orders WHERE id = $1", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetOrderByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *PaymentRepositoryImpl) UpdateOrderPaymentOutcome(ctx context.Context, data domain.Order) (err error) {
	data.UpdatedAt = time.Now().Unix()

	_, err = r.conn().NamedExecContext(ctx, "UPDATE orders SET status=:status, payment_status=:payment_status, mpesa_transaction_id=:mpesa_transaction_id, updated_at=:updated_at WHERE id=:id", data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateOrderPaymentOutcome").Msg("")
		return
	}

	return nil
}

func (r *PaymentRepositoryImpl) AddOrderStatusHistory(ctx context.Context, data domain.OrderStatusHistory) (err error) {
	data.CreatedAt = time.Now().Unix()

	_, err = r.conn().NamedExecContext(ctx, "INSERT INTO order_status_history(order_id, old_status, new_status, created_at) VALUES (:order_id, :old_status, :new_status, :created_at)", data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrderStatusHistory").Msg("")
		return
	}

	return nil
}
