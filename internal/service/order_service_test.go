package service

import (
	"context"
	"testing"

	"github.com/nourishnet/ordering-service/internal/domain"
	"github.com/nourishnet/ordering-service/internal/dto"
	"github.com/nourishnet/ordering-service/internal/repository"
	pkgdto "github.com/nourishnet/ordering-service/pkg/dto"
	"github.com/nourishnet/ordering-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct {
	orders  map[int64]domain.Order
	items   map[int64][]domain.OrderItem
	history map[int64][]domain.OrderStatusHistory
	nextID  int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:  map[int64]domain.Order{},
		items:   map[int64][]domain.OrderItem{},
		history: map[int64][]domain.OrderStatusHistory{},
	}
}

func (r *fakeOrderRepo) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo repository.OrderRepository) error) error {
	return fn(ctx, r)
}

func (r *fakeOrderRepo) AddOrder(ctx context.Context, data domain.Order) (int64, error) {
	r.nextID++
	data.ID = r.nextID
	r.orders[data.ID] = data
	return data.ID, nil
}

func (r *fakeOrderRepo) AddOrderItems(ctx context.Context, data []domain.OrderItem) error {
	for _, item := range data {
		r.nextID++
		item.ID = r.nextID
		r.items[item.OrderID] = append(r.items[item.OrderID], item)
	}
	return nil
}

func (r *fakeOrderRepo) AddOrderStatusHistory(ctx context.Context, data domain.OrderStatusHistory) error {
	r.history[data.OrderID] = append(r.history[data.OrderID], data)
	return nil
}

func (r *fakeOrderRepo) GetOrderByID(ctx context.Context, id int64) (domain.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) GetOrdersByUserID(ctx context.Context, userID int64, filter pkgdto.Filter) ([]domain.Order, error) {
	var orders []domain.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) CountOrdersByUserID(ctx context.Context, userID int64) (int64, error) {
	var count int64
	for _, order := range r.orders {
		if order.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeOrderRepo) GetOrderItemsByOrderID(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	return r.items[orderID], nil
}

func (r *fakeOrderRepo) GetOrderStatusHistoryByOrderID(ctx context.Context, orderID int64) ([]domain.OrderStatusHistory, error) {
	return r.history[orderID], nil
}

func (r *fakeOrderRepo) UpdateOrder(ctx context.Context, data domain.Order) error {
	r.orders[data.ID] = data
	return nil
}

func (r *fakeOrderRepo) DeleteOrderItemsByOrderID(ctx context.Context, orderID int64) error {
	delete(r.items, orderID)
	return nil
}

func (r *fakeOrderRepo) DeleteOrderStatusHistoryByOrderID(ctx context.Context, orderID int64) error {
	delete(r.history, orderID)
	return nil
}

func (r *fakeOrderRepo) DeleteOrder(ctx context.Context, id int64) error {
	delete(r.orders, id)
	return nil
}

type fakeCatalogRepo struct {
	menuItems map[int64]domain.MenuItem
}

func (r *fakeCatalogRepo) GetCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	return nil, nil
}

func (r *fakeCatalogRepo) GetCategoryByID(ctx context.Context, id int64) (domain.Category, error) {
	return domain.Category{}, nil
}

func (r *fakeCatalogRepo) AddCategory(ctx context.Context, data domain.Category) (int64, error) {
	return 0, nil
}

func (r *fakeCatalogRepo) UpdateCategory(ctx context.Context, data domain.Category) error {
	return nil
}

func (r *fakeCatalogRepo) DeleteCategory(ctx context.Context, id int64) error {
	return nil
}

func (r *fakeCatalogRepo) GetMenuItems(ctx context.Context, availableOnly bool) ([]domain.MenuItem, error) {
	return nil, nil
}

func (r *fakeCatalogRepo) GetMenuItemsByCategoryID(ctx context.Context, categoryID int64) ([]domain.MenuItem, error) {
	return nil, nil
}

func (r *fakeCatalogRepo) GetMenuItemByID(ctx context.Context, id int64) (domain.MenuItem, error) {
	return r.menuItems[id], nil
}

func (r *fakeCatalogRepo) GetMenuItemsByIDs(ctx context.Context, ids []int64) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	for _, id := range ids {
		if item, ok := r.menuItems[id]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakeCatalogRepo) AddMenuItem(ctx context.Context, data domain.MenuItem) (int64, error) {
	return 0, nil
}

func (r *fakeCatalogRepo) UpdateMenuItem(ctx context.Context, data domain.MenuItem) error {
	return nil
}

func (r *fakeCatalogRepo) DeleteMenuItem(ctx context.Context, id int64) error {
	return nil
}

type fakeCartRepo struct {
	items      map[int64]domain.CartItem
	clearCalls []int64
}

func (r *fakeCartRepo) GetCartItemsByUserID(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	var items []domain.CartItem
	for _, item := range r.items {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakeCartRepo) GetCartItemByID(ctx context.Context, id int64) (domain.CartItem, error) {
	return r.items[id], nil
}

func (r *fakeCartRepo) AddCartItem(ctx context.Context, data domain.CartItem) (int64, error) {
	return 0, nil
}

func (r *fakeCartRepo) UpdateCartItem(ctx context.Context, data domain.CartItem) error {
	return nil
}

func (r *fakeCartRepo) DeleteCartItem(ctx context.Context, id int64) error {
	return nil
}

func (r *fakeCartRepo) ClearCart(ctx context.Context, userID int64) error {
	r.clearCalls = append(r.clearCalls, userID)
	for id, item := range r.items {
		if item.UserID == userID {
			delete(r.items, id)
		}
	}
	return nil
}

func orderServiceFixture() (*fakeOrderRepo, OrderService) {
	repo := newFakeOrderRepo()
	catalogRepo := &fakeCatalogRepo{menuItems: map[int64]domain.MenuItem{
		5: {ID: 5, Name: "Chicken Biryani", Price: 350},
		6: {ID: 6, Name: "Mango Juice", Price: 150},
	}}
	cartRepo := &fakeCartRepo{items: map[int64]domain.CartItem{}}

	return repo, CreateOrderService(repo, catalogRepo, cartRepo, nil)
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestAddOrder(t *testing.T) {
	repo, svc := orderServiceFixture()

	resp, err := svc.AddOrder(context.Background(), dto.OrderRequest{
		UserID:        10,
		TotalAmount:   floatPtr(850),
		CustomerPhone: "254712345678",
		Items: []dto.OrderItemRequest{
			{MenuItemID: 5, Quantity: 2, UnitPrice: 350, Subtotal: 700},
			{MenuItemID: 6, Quantity: 1, UnitPrice: 150, Subtotal: 150},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, resp.OrderID)

	order := repo.orders[resp.OrderID]
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, domain.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, float64(850), order.TotalAmount)
	assert.Len(t, repo.items[resp.OrderID], 2)
}

func TestAddOrderClearsCart(t *testing.T) {
	repo := newFakeOrderRepo()
	catalogRepo := &fakeCatalogRepo{menuItems: map[int64]domain.MenuItem{
		5: {ID: 5, Name: "Chicken Biryani", Price: 350},
	}}
	cartRepo := &fakeCartRepo{items: map[int64]domain.CartItem{
		1: {ID: 1, UserID: 10, MenuItemID: 5, Quantity: 2},
	}}
	svc := CreateOrderService(repo, catalogRepo, cartRepo, nil)

	_, err := svc.AddOrder(context.Background(), dto.OrderRequest{
		UserID:        10,
		TotalAmount:   floatPtr(700),
		CustomerPhone: "254712345678",
		Items: []dto.OrderItemRequest{
			{MenuItemID: 5, Quantity: 2, UnitPrice: 350, Subtotal: 700},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{10}, cartRepo.clearCalls)
	assert.Empty(t, cartRepo.items)
}

func TestAddOrderTotalMismatch(t *testing.T) {
	_, svc := orderServiceFixture()

	_, err := svc.AddOrder(context.Background(), dto.OrderRequest{
		UserID:        10,
		TotalAmount:   floatPtr(900),
		CustomerPhone: "254712345678",
		Items: []dto.OrderItemRequest{
			{MenuItemID: 5, Quantity: 2, UnitPrice: 350, Subtotal: 700},
		},
	})
	assert.ErrorIs(t, err, errs.ErrOrderTotalMismatch)
}

func TestAddOrderSubtotalMismatch(t *testing.T) {
	_, svc := orderServiceFixture()

	_, err := svc.AddOrder(context.Background(), dto.OrderRequest{
		UserID:        10,
		TotalAmount:   floatPtr(700),
		CustomerPhone: "254712345678",
		Items: []dto.OrderItemRequest{
			{MenuItemID: 5, Quantity: 2, UnitPrice: 350, Subtotal: 600},
		},
	})
	assert.ErrorIs(t, err, errs.ErrOrderTotalMismatch)
}

func TestAddOrderMissingFields(t *testing.T) {
	_, svc := orderServiceFixture()

	_, err := svc.AddOrder(context.Background(), dto.OrderRequest{UserID: 10})
	assert.ErrorIs(t, err, errs.ErrMissingFields)
}

func TestUpdateOrderReplacesItems(t *testing.T) {
	repo, svc := orderServiceFixture()

	created, err := svc.AddOrder(context.Background(), dto.OrderRequest{
		UserID:        10,
		TotalAmount:   floatPtr(700),
		CustomerPhone: "254712345678",
		Items: []dto.OrderItemRequest{
			{MenuItemID: 5, Quantity: 2, UnitPrice: 350, Subtotal: 700},
		},
	})
	require.NoError(t, err)

	_, err = svc.UpdateOrder(context.Background(), dto.OrderRequest{
		OrderID:     created.OrderID,
		UserID:      10,
		TotalAmount: floatPtr(150),
		Items: []dto.OrderItemRequest{
			{MenuItemID: 6, Quantity: 1, UnitPrice: 150, Subtotal: 150},
		},
	})
	require.NoError(t, err)

	order := repo.orders[created.OrderID]
	assert.Equal(t, float64(150), order.TotalAmount)
	assert.Equal(t, "254712345678", order.CustomerPhone)

	items := repo.items[created.OrderID]
	require.Len(t, items, 1)
	assert.Equal(t, int64(6), items[0].MenuItemID)
}

func TestUpdateOrderWrongOwner(t *testing.T) {
	_, svc := orderServiceFixture()

	created, err := svc.AddOrder(context.Background(), dto.OrderRequest{
		UserID:        10,
		TotalAmount:   floatPtr(700),
		CustomerPhone: "254712345678",
		Items: []dto.OrderItemRequest{
			{MenuItemID: 5, Quantity: 2, UnitPrice: 350, Subtotal: 700},
		},
	})
	require.NoError(t, err)

	_, err = svc.UpdateOrder(context.Background(), dto.OrderRequest{
		OrderID:     created.OrderID,
		UserID:      11,
		TotalAmount: floatPtr(700),
		Items: []dto.OrderItemRequest{
			{MenuItemID: 5, Quantity: 2, UnitPrice: 350, Subtotal: 700},
		},
	})
	assert.ErrorIs(t, err, errs.ErrOrderNotFound)
}

func TestGetOrdersPagination(t *testing.T) {
	_, svc := orderServiceFixture()

	for i := 0; i < 3; i++ {
		_, err := svc.AddOrder(context.Background(), dto.OrderRequest{
			UserID:        10,
			TotalAmount:   floatPtr(150),
			CustomerPhone: "254712345678",
			Items: []dto.OrderItemRequest{
				{MenuItemID: 6, Quantity: 1, UnitPrice: 150, Subtotal: 150},
			},
		})
		require.NoError(t, err)
	}

	resp, err := svc.GetOrders(context.Background(), 10, pkgdto.Filter{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.TotalRecords)
	assert.Len(t, resp.Records.([]dto.OrderResponse), 3)
}

func TestGetOrderJoinsMenuNames(t *testing.T) {
	_, svc := orderServiceFixture()

	created, err := svc.AddOrder(context.Background(), dto.OrderRequest{
		UserID:        10,
		TotalAmount:   floatPtr(700),
		CustomerPhone: "254712345678",
		Items: []dto.OrderItemRequest{
			{MenuItemID: 5, Quantity: 2, UnitPrice: 350, Subtotal: 700},
		},
	})
	require.NoError(t, err)

	resp, err := svc.GetOrder(context.Background(), 10, created.OrderID)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Chicken Biryani", resp.Items[0].Name)
}

func TestGetOrderDeletedMenuItem(t *testing.T) {
	_, svc := orderServiceFixture()

	created, err := svc.AddOrder(context.Background(), dto.OrderRequest{
		UserID:        10,
		TotalAmount:   floatPtr(200),
		CustomerPhone: "254712345678",
		Items: []dto.OrderItemRequest{
			{MenuItemID: 99, Quantity: 1, UnitPrice: 200, Subtotal: 200},
		},
	})
	require.NoError(t, err)

	resp, err := svc.GetOrder(context.Background(), 10, created.OrderID)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Deleted Item", resp.Items[0].Name)
}

func TestGetOrderIncludesStatusHistory(t *testing.T) {
	_, svc := orderServiceFixture()

	created, err := svc.AddOrder(context.Background(), dto.OrderRequest{
		UserID:        10,
		TotalAmount:   floatPtr(700),
		CustomerPhone: "254712345678",
		Items: []dto.OrderItemRequest{
			{MenuItemID: 5, Quantity: 2, UnitPrice: 350, Subtotal: 700},
		},
	})
	require.NoError(t, err)

	_, err = svc.UpdateOrderStatus(context.Background(), 10, created.OrderID, domain.OrderStatusConfirmed)
	require.NoError(t, err)

	resp, err := svc.GetOrder(context.Background(), 10, created.OrderID)
	require.NoError(t, err)
	require.Len(t, resp.History, 1)
	require.NotNil(t, resp.History[0].OldStatus)
	assert.Equal(t, domain.OrderStatusPending, *resp.History[0].OldStatus)
	assert.Equal(t, domain.OrderStatusConfirmed, resp.History[0].NewStatus)
}

func TestUpdateOrderStatusRecordsHistory(t *testing.T) {
	repo, svc := orderServiceFixture()

	created, err := svc.AddOrder(context.Background(), dto.OrderRequest{
		UserID:        10,
		TotalAmount:   floatPtr(700),
		CustomerPhone: "254712345678",
		Items: []dto.OrderItemRequest{
			{MenuItemID: 5, Quantity: 2, UnitPrice: 350, Subtotal: 700},
		},
	})
	require.NoError(t, err)

	resp, err := svc.UpdateOrderStatus(context.Background(), 10, created.OrderID, domain.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, resp.Status)

	history := repo.history[created.OrderID]
	require.Len(t, history, 1)
	require.NotNil(t, history[0].OldStatus)
	assert.Equal(t, domain.OrderStatusPending, *history[0].OldStatus)
	assert.Equal(t, domain.OrderStatusCompleted, history[0].NewStatus)
}

func TestDeleteOrderCascades(t *testing.T) {
	repo, svc := orderServiceFixture()

	created, err := svc.AddOrder(context.Background(), dto.OrderRequest{
		UserID:        10,
		TotalAmount:   floatPtr(700),
		CustomerPhone: "254712345678",
		Items: []dto.OrderItemRequest{
			{MenuItemID: 5, Quantity: 2, UnitPrice: 350, Subtotal: 700},
		},
	})
	require.NoError(t, err)

	_, err = svc.UpdateOrderStatus(context.Background(), 10, created.OrderID, domain.OrderStatusConfirmed)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(context.Background(), created.OrderID))

	assert.Empty(t, repo.orders)
	assert.Empty(t, repo.items[created.OrderID])
	assert.Empty(t, repo.history[created.OrderID])
}

func TestDeleteOrderNotFound(t *testing.T) {
	_, svc := orderServiceFixture()

	err := svc.DeleteOrder(context.Background(), 42)
	assert.ErrorIs(t, err, errs.ErrOrderNotFound)
}
