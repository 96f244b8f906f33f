package service

import (
	"context"

	"github.com/nourishnet/ordering-service/internal/dto"
	pkgdto "github.com/nourishnet/ordering-service/pkg/dto"
)

type UserService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (resp dto.UserResponse, err error)
	Login(ctx context.Context, req dto.LoginRequest) (resp dto.LoginResponse, err error)
	GetUser(ctx context.Context, userID int64) (resp dto.UserResponse, err error)
}

type CatalogService interface {
	GetCategories(ctx context.Context) (resp []dto.CategoryResponse, err error)
	AddCategory(ctx context.Context, req dto.CategoryRequest) (id int64, err error)
	UpdateCategory(ctx context.Context, id int64, req dto.CategoryRequest) (err error)
	DeleteCategory(ctx context.Context, id int64) (err error)

	GetMenu(ctx context.Context) (resp []dto.MenuItemResponse, err error)
	GetMenuByCategory(ctx context.Context, categoryID int64) (resp []dto.MenuItemResponse, err error)
	GetMenuItem(ctx context.Context, id int64) (resp dto.MenuItemResponse, err error)
	AddMenuItem(ctx context.Context, req dto.MenuItemRequest) (id int64, err error)
	UpdateMenuItem(ctx context.Context, id int64, req dto.MenuItemRequest) (err error)
	DeleteMenuItem(ctx context.Context, id int64) (err error)
}

type CartService interface {
	GetCart(ctx context.Context, userID int64) (resp []dto.CartItemResponse, err error)
	AddCartItem(ctx context.Context, userID int64, req dto.CartItemRequest) (id int64, err error)
	UpdateCartItem(ctx context.Context, userID int64, id int64, req dto.CartItemRequest) (err error)
	DeleteCartItem(ctx context.Context, userID int64, id int64) (err error)
}

type OrderService interface {
	AddOrder(ctx context.Context, req dto.OrderRequest) (resp dto.CreateOrderResponse, err error)
	GetOrders(ctx context.Context, userID int64, filter pkgdto.Filter) (resp pkgdto.Pagination, err error)
	GetOrder(ctx context.Context, userID int64, orderID int64) (resp dto.OrderResponse, err error)
	UpdateOrder(ctx context.Context, req dto.OrderRequest) (resp dto.CreateOrderResponse, err error)
	UpdateOrderStatus(ctx context.Context, userID int64, orderID int64, status string) (resp dto.OrderResponse, err error)
	DeleteOrder(ctx context.Context, orderID int64) (err error)
}

type PaymentService interface {
	MakePayment(ctx context.Context, req dto.MakePaymentRequest) (resp dto.MakePaymentResponse, gatewayResp dto.StkPushResponse, err error)
	HandleMpesaCallback(ctx context.Context, req dto.MpesaCallbackRequest) (err error)
	QueryPaymentStatus(ctx context.Context, checkoutRequestID string) (resp dto.StkQueryResponse, err error)
	Reconcile(ctx context.Context, event dto.ReconciliationEvent) (err error)
	ReconcileStalePushRequests()
}

// PaymentGateway is the slice of the Daraja client the payment service needs.
type PaymentGateway interface {
	GetAccessToken() (token string, err error)
	InitiatePushPayment(accessToken string, phone string, amount int64, orderID int64) (resp dto.StkPushResponse, err error)
	QueryPaymentStatus(accessToken string, checkoutRequestID string) (resp dto.StkQueryResponse, err error)
}

// ReceiptMailer sends the post-payment receipt email.
type ReceiptMailer interface {
	SendPaymentReceipt(recipient string, orderID int64, amount float64, receiptNumber string) error
}
