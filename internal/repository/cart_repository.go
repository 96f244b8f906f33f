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

type CartRepositoryImpl struct {
	db *sqlx.DB
}

func CreateCartRepository(db *sqlx.DB) CartRepository {
	return &CartRepositoryImpl{db: db}
}

func (r *CartRepositoryImpl) GetCartItemsByUserID(ctx context.Context, userID int64) (data []domain.CartItem, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM cart_items WHERE user_id = $1", userID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetCartItemsByUserID").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

func (r *CartRepositoryImpl) GetCartItemByID(ctx context.Context, id int64) (data domain.CartItem, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM cart_items WHERE id = $1", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetCartItemByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *CartRepositoryImpl) AddCartItem(ctx context.Context, data domain.CartItem) (id int64, err error) {
	data.CreatedAt = time.Now().Unix()

	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO cart_items(user_id, menu_item_id, quantity, created_at) VALUES (:user_id, :menu_item_id, :quantity, :created_at) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddCartItem").Msg("")
		return
	}

	err = nstmt.GetContext(ctx, &data.ID, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddCartItem").Msg("")
		return
	}

	return data.ID, nil
}

func (r *CartRepositoryImpl) UpdateCartItem(ctx context.Context, data domain.CartItem) (err error) {
	_, err = r.db.NamedExecContext(ctx, "UPDATE cart_items SET quantity=:quantity WHERE id=:id AND user_id=:user_id", data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateCartItem").Msg("")
		return
	}

	return nil
}

func (r *CartRepositoryImpl) DeleteCartItem(ctx context.Context, id int64) (err error) {
	_, err = r.db.ExecContext(ctx, "DELETE FROM cart_items WHERE id = $1", id)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteCartItem").Msg("")
		return
	}

	return nil
}

func (r *CartRepositoryImpl) ClearCart(ctx context.Context, userID int64) (err error) {
	_, err = r.db.ExecContext(ctx, "DELETE FROM cart_items WHERE user_id = $1", userID)
	if err != nil {
		log.Error().Err(err).Str("component", "ClearCart").Msg("")
		return
	}

	return nil
}
