package service

import (
	"context"

	"github.com/nourishnet/ordering-service/internal/domain"
	"github.com/nourishnet/ordering-service/internal/dto"
	"github.com/nourishnet/ordering-service/internal/repository"
	"github.com/nourishnet/ordering-service/pkg/errs"
)

type CartServiceImpl struct {
	repo        repository.CartRepository
	catalogRepo repository.CatalogRepository
}

func CreateCartService(repo repository.CartRepository, catalogRepo repository.CatalogRepository) CartService {
	return &CartServiceImpl{repo: repo, catalogRepo: catalogRepo}
}

func (s *CartServiceImpl) GetCart(ctx context.Context, userID int64) (resp []dto.CartItemResponse, err error) {
	datas, err := s.repo.GetCartItemsByUserID(ctx, userID)
	if err != nil {
		return
	}

	itemIDs := make([]int64, 0, len(datas))
	for _, data := range datas {
		itemIDs = append(itemIDs, data.MenuItemID)
	}

	menuItems, err := s.catalogRepo.GetMenuItemsByIDs(ctx, itemIDs)
	if err != nil {
		return
	}

	menuByID := make(map[int64]domain.MenuItem, len(menuItems))
	for _, item := range menuItems {
		menuByID[item.ID] = item
	}

	resp = make([]dto.CartItemResponse, 0, len(datas))
	for _, data := range datas {
		item := dto.CartItemResponse{
			ID:         data.ID,
			MenuItemID: data.MenuItemID,
			Quantity:   data.Quantity,
			CreatedAt:  data.CreatedAt,
		}
		if menuItem, ok := menuByID[data.MenuItemID]; ok {
			item.Name = menuItem.Name
			item.Price = menuItem.Price
		} else {
			item.Name = "Deleted Item"
		}
		resp = append(resp, item)
	}

	return
}

func (s *CartServiceImpl) AddCartItem(ctx context.Context, userID int64, req dto.CartItemRequest) (id int64, err error) {
	if req.MenuItemID == 0 || req.Quantity <= 0 {
		return 0, errs.ErrMissingFields
	}

	menuItem, err := s.catalogRepo.GetMenuItemByID(ctx, req.MenuItemID)
	if err != nil {
		return
	}
	if menuItem.ID == 0 {
		return 0, errs.ErrMenuItemNotFound
	}

	return s.repo.AddCartItem(ctx, domain.CartItem{
		UserID:     userID,
		MenuItemID: req.MenuItemID,
		Quantity:   req.Quantity,
	})
}

func (s *CartServiceImpl) UpdateCartItem(ctx context.Context, userID int64, id int64, req dto.CartItemRequest) (err error) {
	if req.Quantity <= 0 {
		return errs.ErrMissingFields
	}

	cartItem, err := s.repo.GetCartItemByID(ctx, id)
	if err != nil {
		return
	}
	if cartItem.ID == 0 || cartItem.UserID != userID {
		return errs.ErrCartItemNotFound
	}

	cartItem.Quantity = req.Quantity

	return s.repo.UpdateCartItem(ctx, cartItem)
}

func (s *CartServiceImpl) DeleteCartItem(ctx context.Context, userID int64, id int64) (err error) {
	cartItem, err := s.repo.GetCartItemByID(ctx, id)
	if err != nil {
		return
	}
	if cartItem.ID == 0 || cartItem.UserID != userID {
		return errs.ErrCartItemNotFound
	}

	return s.repo.DeleteCartItem(ctx, id)
}
