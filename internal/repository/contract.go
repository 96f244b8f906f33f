package repository

import (
	"context"

	"github.com/nourishnet/ordering-service/internal/domain"
	pkgdto "github.com/nourishnet/ordering-service/pkg/dto"
)

type UserRepository interface {
	AddUser(ctx context.Context, data domain.User) (id int64, err error)
	GetUserByID(ctx context.Context, id int64) (data domain.User, err error)
	GetUserByEmail(ctx context.Context, email string) (data domain.User, err error)
	GetUserByContact(ctx context.Context, contact string) (data domain.User, err error)
	UpdateLastLogin(ctx context.Context, id int64, lastLogin int64) (err error)
}

type CatalogRepository interface {
	GetCategories(ctx context.Context, activeOnly bool) (data []domain.Category, err error)
	GetCategoryByID(ctx context.Context, id int64) (data domain.Category, err error)
	AddCategory(ctx context.Context, data domain.Category) (id int64, err error)
	UpdateCategory(ctx context.Context, data domain.Category) (err error)
	DeleteCategory(ctx context.Context, id int64) (err error)

	GetMenuItems(ctx context.Context, availableOnly bool) (data []domain.MenuItem, err error)
	GetMenuItemsByCategoryID(ctx context.Context, categoryID int64) (data []domain.MenuItem, err error)
	GetMenuItemByID(ctx context.Context, id int64) (data domain.MenuItem, err error)
	GetMenuItemsByIDs(ctx context.Context, ids []int64) (data []domain.MenuItem, err error)
	AddMenuItem(ctx context.Context, data domain.MenuItem) (id int64, err error)
	UpdateMenuItem(ctx context.Context, data domain.MenuItem) (err error)
	DeleteMenuItem(ctx context.Context, id int64) (err error)
}

type CartRepository interface {
	GetCartItemsByUserID(ctx context.Context, userID int64) (data []domain.CartItem, err error)
	GetCartItemByID(ctx context.Context, id int64) (data domain.CartItem, err error)
	AddCartItem(ctx context.Context, data domain.CartItem) (id int64, err error)
	UpdateCartItem(ctx context.Context, data domain.CartItem) (err error)
	DeleteCartItem(ctx context.Context, id int64) (err error)
	ClearCart(ctx context.Context, userID int64) (err error)
}

type OrderRepository interface {
	HandleTrx(ctx context.Context, fn func(ctx context.Context, repo OrderRepository) error) error

	AddOrder(ctx context.Context, data domain.Order) (id int64, err error)
	AddOrderItems(ctx context.Context, data []domain.OrderItem) (err error)
	AddOrderStatusHistory(ctx context.Context, data domain.OrderStatusHistory) (err error)
	GetOrderByID(ctx context.Context, id int64) (data domain.Order, err error)
	GetOrdersByUserID(ctx context.Context, userID int64, filter pkgdto.Filter) (data []domain.Order, err error)
	CountOrdersByUserID(ctx context.Context, userID int64) (count int64, err error)
	GetOrderItemsByOrderID(ctx context.Context, orderID int64) (data []domain.OrderItem, err error)
	GetOrderStatusHistoryByOrderID(ctx context.Context, orderID int64) (data []domain.OrderStatusHistory, err error)
	UpdateOrder(ctx context.Context, data domain.Order) (err error)
	DeleteOrderItemsByOrderID(ctx context.Context, orderID int64) (err error)
	DeleteOrderStatusHistoryByOrderID(ctx context.Context, orderID int64) (err error)
	DeleteOrder(ctx context.Context, id int64) (err error)
}

// PaymentRepository spans the payment aggregate plus the order columns the
// reconciliation engine transitions; both must commit in one transaction.
type PaymentRepository interface {
	HandleTrx(ctx context.Context, fn func(ctx context.Context, repo PaymentRepository) error) error

	AddPayment(ctx context.Context, data domain.Payment) (id int64, err error)
	AddPushRequest(ctx context.Context, data domain.PushRequest) (id int64, err error)
	GetPushRequestByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (data domain.PushRequest, err error)
	GetStalePendingPushRequests(ctx context.Context, createdBefore int64) (data []domain.PushRequest, err error)
	GetPaymentByID(ctx context.Context, id int64) (data domain.Payment, err error)
	UpdatePayment(ctx context.Context, data domain.Payment) (err error)

	GetOrderByID(ctx context.Context, id int64) (data domain.Order, err error)
	UpdateOrderPaymentOutcome(ctx context.Context, data domain.Order) (err error)
	AddOrderStatusHistory(ctx context.Context, data domain.OrderStatusHistory) (err error)
}
