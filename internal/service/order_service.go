package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/nourishnet/ordering-service/internal/domain"
	"github.com/nourishnet/ordering-service/internal/dto"
	"github.com/nourishnet/ordering-service/internal/repository"
	pkgdto "github.com/nourishnet/ordering-service/pkg/dto"
	"github.com/nourishnet/ordering-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// amountTolerance absorbs float transport noise when comparing currency
// amounts that arrive as JSON numbers.
const amountTolerance = 0.01

type OrderServiceImpl struct {
	repo          repository.OrderRepository
	catalogRepo   repository.CatalogRepository
	cartRepo      repository.CartRepository
	kafkaProducer *kafka.Conn
}

func CreateOrderService(repo repository.OrderRepository, catalogRepo repository.CatalogRepository, cartRepo repository.CartRepository, kafkaProducer *kafka.Conn) OrderService {
	return &OrderServiceImpl{
		repo:          repo,
		catalogRepo:   catalogRepo,
		cartRepo:      cartRepo,
		kafkaProducer: kafkaProducer,
	}
}

func validateOrderItems(totalAmount float64, items []dto.OrderItemRequest) error {
	if len(items) == 0 {
		return errs.ErrMissingFields
	}

	var sum float64
	for _, item := range items {
		if item.MenuItemID == 0 || item.Quantity <= 0 {
			return errs.ErrMissingFields
		}
		if math.Abs(item.Subtotal-float64(item.Quantity)*item.UnitPrice) > amountTolerance {
			return errs.ErrOrderTotalMismatch
		}
		sum += item.Subtotal
	}

	if math.Abs(sum-totalAmount) > amountTolerance {
		return errs.ErrOrderTotalMismatch
	}

	return nil
}

func (s *OrderServiceImpl) AddOrder(ctx context.Context, req dto.OrderRequest) (resp dto.CreateOrderResponse, err error) {
	if req.OrderID != 0 {
		return s.UpdateOrder(ctx, req)
	}

	if req.TotalAmount == nil || req.CustomerPhone == "" {
		return resp, errs.ErrMissingFields
	}
	if err = validateOrderItems(*req.TotalAmount, req.Items); err != nil {
		return
	}

	status := req.Status
	if status == "" {
		status = domain.OrderStatusPending
	}
	paymentStatus := req.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = domain.PaymentStatusPending
	}

	var orderID int64
	err = s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.OrderRepository) error {
		orderID, err = repo.AddOrder(ctx, domain.Order{
			UserID:          req.UserID,
			TotalAmount:     *req.TotalAmount,
			Status:          status,
			PaymentStatus:   paymentStatus,
			PaymentMethod:   "mpesa",
			CustomerPhone:   req.CustomerPhone,
			DeliveryAddress: req.DeliveryAddress,
		})
		if err != nil {
			return err
		}

		items := make([]domain.OrderItem, len(req.Items))
		for i, item := range req.Items {
			items[i] = domain.OrderItem{
				OrderID:    orderID,
				MenuItemID: item.MenuItemID,
				Quantity:   item.Quantity,
				UnitPrice:  item.UnitPrice,
				Subtotal:   item.Subtotal,
			}
		}

		return repo.AddOrderItems(ctx, items)
	})
	if err != nil {
		return
	}

	// The cart has become an order; emptying it is best effort.
	if err := s.cartRepo.ClearCart(ctx, req.UserID); err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Msg("")
	}

	s.publishEvent("order_created", dto.OrderEvent{
		OrderID:     orderID,
		UserID:      req.UserID,
		TotalAmount: *req.TotalAmount,
		Status:      status,
	}, fmt.Sprintf("order-%d", orderID))

	return dto.CreateOrderResponse{OrderID: orderID}, nil
}

func (s *OrderServiceImpl) UpdateOrder(ctx context.Context, req dto.OrderRequest) (resp dto.CreateOrderResponse, err error) {
	if req.TotalAmount == nil {
		return resp, errs.ErrClient
	}
	if err = validateOrderItems(*req.TotalAmount, req.Items); err != nil {
		return
	}

	err = s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.OrderRepository) error {
		order, err := repo.GetOrderByID(ctx, req.OrderID)
		if err != nil {
			return err
		}
		if order.ID == 0 || order.UserID != req.UserID {
			return errs.ErrOrderNotFound
		}

		order.TotalAmount = *req.TotalAmount
		if req.Status != "" {
			order.Status = req.Status
		}
		if req.PaymentStatus != "" {
			order.PaymentStatus = req.PaymentStatus
		}
		if req.CustomerPhone != "" {
			order.CustomerPhone = req.CustomerPhone
		}
		if req.DeliveryAddress != nil {
			order.DeliveryAddress = req.DeliveryAddress
		}

		if err := repo.UpdateOrder(ctx, order); err != nil {
			return err
		}

		// Replace-all: line items are discarded and re-inserted in the same
		// transaction as the scalar updates.
		if err := repo.DeleteOrderItemsByOrderID(ctx, order.ID); err != nil {
			return err
		}

		items := make([]domain.OrderItem, len(req.Items))
		for i, item := range req.Items {
			items[i] = domain.OrderItem{
				OrderID:    order.ID,
				MenuItemID: item.MenuItemID,
				Quantity:   item.Quantity,
				UnitPrice:  item.UnitPrice,
				Subtotal:   item.Subtotal,
			}
		}

		return repo.AddOrderItems(ctx, items)
	})
	if err != nil {
		return
	}

	return dto.CreateOrderResponse{OrderID: req.OrderID}, nil
}

func (s *OrderServiceImpl) orderResponse(ctx context.Context, order domain.Order) (resp dto.OrderResponse, err error) {
	items, err := s.repo.GetOrderItemsByOrderID(ctx, order.ID)
	if err != nil {
		return
	}

	itemIDs := make([]int64, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.MenuItemID)
	}

	menuItems, err := s.catalogRepo.GetMenuItemsByIDs(ctx, itemIDs)
	if err != nil {
		return
	}

	menuNames := make(map[int64]string, len(menuItems))
	for _, item := range menuItems {
		menuNames[item.ID] = item.Name
	}

	resp = dto.OrderResponse{
		ID:                 order.ID,
		UserID:             order.UserID,
		TotalAmount:        order.TotalAmount,
		Status:             order.Status,
		PaymentStatus:      order.PaymentStatus,
		PaymentMethod:      order.PaymentMethod,
		MpesaTransactionID: order.MpesaTransactionID,
		CustomerPhone:      order.CustomerPhone,
		DeliveryAddress:    order.DeliveryAddress,
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
		Items:              make([]dto.OrderItemResponse, 0, len(items)),
	}

	for _, item := range items {
		name, ok := menuNames[item.MenuItemID]
		if !ok {
			name = "Deleted Item"
		}
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:         item.ID,
			MenuItemID: item.MenuItemID,
			Name:       name,
			Quantity:   item.Quantity,
			Price:      item.UnitPrice,
			Subtotal:   item.Subtotal,
		})
	}

	return
}

func (s *OrderServiceImpl) GetOrders(ctx context.Context, userID int64, filter pkgdto.Filter) (resp pkgdto.Pagination, err error) {
	orders, err := s.repo.GetOrdersByUserID(ctx, userID, filter)
	if err != nil {
		return
	}

	total, err := s.repo.CountOrdersByUserID(ctx, userID)
	if err != nil {
		return
	}

	records := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		orderResp, err := s.orderResponse(ctx, order)
		if err != nil {
			return resp, err
		}
		records = append(records, orderResp)
	}

	return pkgdto.Pagination{
		Records:      records,
		TotalRecords: total,
		Page:         filter.Page,
		Limit:        filter.Limit,
	}, nil
}

func (s *OrderServiceImpl) GetOrder(ctx context.Context, userID int64, orderID int64) (resp dto.OrderResponse, err error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return
	}
	if order.ID == 0 || order.UserID != userID {
		return resp, errs.ErrOrderNotFound
	}

	resp, err = s.orderResponse(ctx, order)
	if err != nil {
		return
	}

	// The detail view carries the status trail; the list view does not.
	history, err := s.repo.GetOrderStatusHistoryByOrderID(ctx, orderID)
	if err != nil {
		return
	}
	for _, entry := range history {
		resp.History = append(resp.History, dto.OrderStatusHistoryResponse{
			OldStatus: entry.OldStatus,
			NewStatus: entry.NewStatus,
			CreatedAt: entry.CreatedAt,
		})
	}

	return resp, nil
}

func (s *OrderServiceImpl) UpdateOrderStatus(ctx context.Context, userID int64, orderID int64, status string) (resp dto.OrderResponse, err error) {
	if status == "" {
		return resp, errs.ErrClient
	}

	var updated domain.Order
	err = s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.OrderRepository) error {
		order, err := repo.GetOrderByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order.ID == 0 || order.UserID != userID {
			return errs.ErrOrderNotFound
		}

		oldStatus := order.Status
		if err := repo.AddOrderStatusHistory(ctx, domain.OrderStatusHistory{
			OrderID:   order.ID,
			OldStatus: &oldStatus,
			NewStatus: status,
		}); err != nil {
			return err
		}

		order.Status = status
		if err := repo.UpdateOrder(ctx, order); err != nil {
			return err
		}

		updated = order
		return nil
	})
	if err != nil {
		return
	}

	return s.orderResponse(ctx, updated)
}

func (s *OrderServiceImpl) DeleteOrder(ctx context.Context, orderID int64) (err error) {
	return s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.OrderRepository) error {
		order, err := repo.GetOrderByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order.ID == 0 {
			return errs.ErrOrderNotFound
		}

		// Items and history go with the order in the same transaction; a
		// partially deleted aggregate must never be observable.
		if err := repo.DeleteOrderItemsByOrderID(ctx, orderID); err != nil {
			return err
		}
		if err := repo.DeleteOrderStatusHistoryByOrderID(ctx, orderID); err != nil {
			return err
		}

		return repo.DeleteOrder(ctx, orderID)
	})
}

func (s *OrderServiceImpl) publishEvent(eventType string, data interface{}, key string) {
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
