package service

import (
	"context"

	"github.com/nourishnet/ordering-service/internal/domain"
	"github.com/nourishnet/ordering-service/internal/dto"
	"github.com/nourishnet/ordering-service/internal/repository"
	"github.com/nourishnet/ordering-service/pkg/errs"
)

type CatalogServiceImpl struct {
	repo repository.CatalogRepository
}

func CreateCatalogService(repo repository.CatalogRepository) CatalogService {
	return &CatalogServiceImpl{repo: repo}
}

func categoryResponse(data domain.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
	}
}

func menuItemResponse(data domain.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		CategoryID:  data.CategoryID,
		IsAvailable: data.IsAvailable,
	}
}

func (s *CatalogServiceImpl) GetCategories(ctx context.Context) (resp []dto.CategoryResponse, err error) {
	datas, err := s.repo.GetCategories(ctx, true)
	if err != nil {
		return
	}

	resp = make([]dto.CategoryResponse, 0, len(datas))
	for _, data := range datas {
		resp = append(resp, categoryResponse(data))
	}

	return
}

func (s *CatalogServiceImpl) AddCategory(ctx context.Context, req dto.CategoryRequest) (id int64, err error) {
	if req.Name == "" {
		return 0, errs.ErrMissingFields
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return s.repo.AddCategory(ctx, domain.Category{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    isActive,
	})
}

func (s *CatalogServiceImpl) UpdateCategory(ctx context.Context, id int64, req dto.CategoryRequest) (err error) {
	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return
	}
	if category.ID == 0 {
		return errs.ErrCategoryNotFound
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Description != nil {
		category.Description = req.Description
	}
	if req.ImageURL != nil {
		category.ImageURL = req.ImageURL
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	return s.repo.UpdateCategory(ctx, category)
}

func (s *CatalogServiceImpl) DeleteCategory(ctx context.Context, id int64) (err error) {
	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return
	}
	if category.ID == 0 {
		return errs.ErrCategoryNotFound
	}

	return s.repo.DeleteCategory(ctx, id)
}

func (s *CatalogServiceImpl) GetMenu(ctx context.Context) (resp []dto.MenuItemResponse, err error) {
	datas, err := s.repo.GetMenuItems(ctx, true)
	if err != nil {
		return
	}

	resp = make([]dto.MenuItemResponse, 0, len(datas))
	for _, data := range datas {
		resp = append(resp, menuItemResponse(data))
	}

	return
}

func (s *CatalogServiceImpl) GetMenuByCategory(ctx context.Context, categoryID int64) (resp []dto.MenuItemResponse, err error) {
	category, err := s.repo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return
	}
	if category.ID == 0 {
		return nil, errs.ErrCategoryNotFound
	}

	datas, err := s.repo.GetMenuItemsByCategoryID(ctx, categoryID)
	if err != nil {
		return
	}

	resp = make([]dto.MenuItemResponse, 0, len(datas))
	for _, data := range datas {
		resp = append(resp, menuItemResponse(data))
	}

	return
}

func (s *CatalogServiceImpl) GetMenuItem(ctx context.Context, id int64) (resp dto.MenuItemResponse, err error) {
	data, err := s.repo.GetMenuItemByID(ctx, id)
	if err != nil {
		return
	}
	if data.ID == 0 {
		return resp, errs.ErrMenuItemNotFound
	}

	return menuItemResponse(data), nil
}

func (s *CatalogServiceImpl) AddMenuItem(ctx context.Context, req dto.MenuItemRequest) (id int64, err error) {
	if req.Name == "" || req.Price <= 0 {
		return 0, errs.ErrMissingFields
	}

	if req.CategoryID != nil {
		category, err := s.repo.GetCategoryByID(ctx, *req.CategoryID)
		if err != nil {
			return 0, err
		}
		if category.ID == 0 {
			return 0, errs.ErrCategoryNotFound
		}
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	return s.repo.AddMenuItem(ctx, domain.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		IsAvailable: isAvailable,
	})
}

func (s *CatalogServiceImpl) UpdateMenuItem(ctx context.Context, id int64, req dto.MenuItemRequest) (err error) {
	item, err := s.repo.GetMenuItemByID(ctx, id)
	if err != nil {
		return
	}
	if item.ID == 0 {
		return errs.ErrMenuItemNotFound
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Price > 0 {
		item.Price = req.Price
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.ImageURL != nil {
		item.ImageURL = req.ImageURL
	}
	if req.CategoryID != nil {
		item.CategoryID = req.CategoryID
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	return s.repo.UpdateMenuItem(ctx, item)
}

func (s *CatalogServiceImpl) DeleteMenuItem(ctx context.Context, id int64) (err error) {
	item, err := s.repo.GetMenuItemByID(ctx, id)
	if err != nil {
		return
	}
	if item.ID == 0 {
		return errs.ErrMenuItemNotFound
	}

	return s.repo.DeleteMenuItem(ctx, id)
}
