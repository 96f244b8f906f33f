package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/nourishnet/ordering-service/internal/domain"
	pkgdto "github.com/nourishnet/ordering-service/pkg/dto"
	"github.com/nourishnet/ordering-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

// dbtx is the subset of sqlx shared by *sqlx.DB and *sqlx.Tx, so repository
// methods run the same inside and outside HandleTrx.
type dbtx interface {
	sqlx.ExtContext
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type OrderRepositoryImpl struct {
	db *sqlx.DB
	tx *sqlx.Tx
}

func CreateOrderRepository(db *sqlx.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

func (r *OrderRepositoryImpl) conn() dbtx {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *OrderRepositoryImpl) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo OrderRepository) error) (err error) {
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

	txRepo := &OrderRepositoryImpl{tx: tx}

	err = fn(ctx, txRepo)

	return err
}

func (r *OrderRepositoryImpl) AddOrder(ctx context.Context, data domain.Order) (id int64, err error) {
	timestamp := time.Now().Unix()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	nstmt, err := r.conn().PrepareNamedContext(ctx, "INSERT INTO orders(user_id, total_amount, status, payment_status, payment_method, mpesa_transaction_id, customer_phone, delivery_address, created_at, updated_at) VALUES (:user_id, :total_amount, :status, :payment_status, :payment_method, :mpesa_transaction_id, :customer_phone, :delivery_address, :created_at, :updated_at) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Msg("")
		return
	}

	err = nstmt.GetContext(ctx, &data.ID, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Msg("")
		return
	}

	return data.ID, nil
}

func (r *OrderRepositoryImpl) AddOrderItems(ctx context.Context, data []domain.OrderItem) (err error) {
	if len(data) == 0 {
		return nil
	}

	_, err = r.conn().NamedExecContext(ctx, "INSERT INTO order_items(order_id, menu_item_id, quantity, unit_price, subtotal) VALUES (:order_id, :menu_item_id, :quantity, :unit_price, :subtotal)", data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrderItems").Msg("")
		return
	}

	return nil
}

func (r *OrderRepositoryImpl) AddOrderStatusHistory(ctx context.Context, data domain.OrderStatusHistory) (err error) {
	data.CreatedAt = time.Now().Unix()

	_, err = r.conn().NamedExecContext(ctx, "INSERT INTO order_status_history(order_id, old_status, new_status, created_at) VALUES (:order_id, :old_status, :new_status, :created_at)", data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrderStatusHistory").Msg("")
		return
	}

	return nil
}

func (r *OrderRepositoryImpl) GetOrderByID(ctx context.Context, id int64) (data domain.Order, err error) {
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

func (r *OrderRepositoryImpl) GetOrdersByUserID(ctx context.Context, userID int64, filter pkgdto.Filter) (data []domain.Order, err error) {
	query := "SELECT * FROM orders WHERE user_id = $1 ORDER BY created_at DESC"
	args := []interface{}{userID}

	if filter.Limit > 0 {
		query += " LIMIT $2 OFFSET $3"
		offset := 0
		if filter.Page > 1 {
			offset = (filter.Page - 1) * filter.Limit
		}
		args = append(args, filter.Limit, offset)
	}

	err = r.conn().SelectContext(ctx, &data, query, args...)
	if err != nil {
		log.Error().Err(err).Str("component", "GetOrdersByUserID").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

func (r *OrderRepositoryImpl) CountOrdersByUserID(ctx context.Context, userID int64) (count int64, err error) {
	err = r.conn().GetContext(ctx, &count, "SELECT COUNT(*) FROM orders WHERE user_id = $1", userID)
	if err != nil {
		log.Error().Err(err).Str("component", "CountOrdersByUserID").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}

func (r *OrderRepositoryImpl) GetOrderItemsByOrderID(ctx context.Context, orderID int64) (data []domain.OrderItem, err error) {
	err = r.conn().SelectContext(ctx, &data, "SELECT * FROM order_items WHERE order_id = $1 ORDER BY id", orderID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetOrderItemsByOrderID").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

func (r *OrderRepositoryImpl) GetOrderStatusHistoryByOrderID(ctx context.Context, orderID int64) (data []domain.OrderStatusHistory, err error) {
	err = r.conn().SelectContext(ctx, &data, "SELECT * FROM order_status_history WHERE order_id = $1 ORDER BY id", orderID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetOrderStatusHistoryByOrderID").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

func (r *OrderRepositoryImpl) UpdateOrder(ctx context.Context, data domain.Order) (err error) {
	data.UpdatedAt = time.Now().Unix()

	_, err = r.conn().NamedExecContext(ctx, "UPDATE orders SET total_amount=:total_amount, status=:status, payment_status=:payment_status, mpesa_transaction_id=:mpesa_transaction_id, customer_phone=:customer_phone, delivery_address=:delivery_address, updated_at=:updated_at WHERE id=:id", data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateOrder").Msg("")
		return
	}

	return nil
}

func (r *OrderRepositoryImpl) DeleteOrderItemsByOrderID(ctx context.Context, orderID int64) (err error) {
	_, err = r.conn().ExecContext(ctx, "DELETE FROM order_items WHERE order_id = $1", orderID)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteOrderItemsByOrderID").Msg("")
		return
	}

	return nil
}

func (r *OrderRepositoryImpl) DeleteOrderStatusHistoryByOrderID(ctx context.Context, orderID int64) (err error) {
	_, err = r.conn().ExecContext(ctx, "DELETE FROM order_status_history WHERE order_id = $1", orderID)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteOrderStatusHistoryByOrderID").Msg("")
		return
	}

	return nil
}

func (r *OrderRepositoryImpl) DeleteOrder(ctx context.Context, id int64) (err error) {
	_, err = r.conn().ExecContext(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteOrder").Msg("")
		return
	}

	return nil
}
