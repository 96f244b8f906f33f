package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestOrderHandleTrxCommitFailure(t *testing.T) {
	db, mock := mockDB(t)
	repo := CreateOrderRepository(db)

	commitErr := errors.New("commit failed")
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(commitErr)

	err := repo.HandleTrx(context.Background(), func(ctx context.Context, repo OrderRepository) error {
		return nil
	})
	assert.ErrorIs(t, err, commitErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderHandleTrxRollbackOnError(t *testing.T) {
	db, mock := mockDB(t)
	repo := CreateOrderRepository(db)

	fnErr := errors.New("business rule violated")
	mock.ExpectBegin()
	mock.ExpectRollback()

	err := repo.HandleTrx(context.Background(), func(ctx context.Context, repo OrderRepository) error {
		return fnErr
	})
	assert.ErrorIs(t, err, fnErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentHandleTrxCommitFailure(t *testing.T) {
	db, mock := mockDB(t)
	repo := CreatePaymentRepository(db)

	commitErr := errors.New("commit failed")
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(commitErr)

	err := repo.HandleTrx(context.Background(), func(ctx context.Context, repo PaymentRepository) error {
		return nil
	})
	assert.ErrorIs(t, err, commitErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentHandleTrxRollbackOnError(t *testing.T) {
	db, mock := mockDB(t)
	repo := CreatePaymentRepository(db)

	fnErr := errors.New("business rule violated")
	mock.ExpectBegin()
	mock.ExpectRollback()

	err := repo.HandleTrx(context.Background(), func(ctx context.Context, repo PaymentRepository) error {
		return fnErr
	})
	assert.ErrorIs(t, err, fnErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
