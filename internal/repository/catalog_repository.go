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

type CatalogRepositoryImpl struct {
	db *sqlx.DB
}

func CreateCatalogRepository(db *sqlx.DB) CatalogRepository {
	return &CatalogRepositoryImpl{db: db}
}

func (r *CatalogRepositoryImpl) GetCategories(ctx context.Context, activeOnly bool) (data []domain.Category, err error) {
	query := "SELECT * FROM categories"
	if activeOnly {
		query += " WHERE is_active = true"
	}

	err = r.db.SelectContext(ctx, &data, query)
	if err != nil {
		log.Error().Err(err).Str("component", "GetCategories").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

func (r *CatalogRepositoryImpl) GetCategoryByID(ctx context.Context, id int64) (data domain.Category, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM categories WHERE id = $1", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetCategoryByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *CatalogRepositoryImpl) AddCategory(ctx context.Context, data domain.Category) (id int64, err error) {
	data.CreatedAt = time.Now().Unix()

	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO categories(name, description, image_url, is_active, created_at) VALUES (:name, :description, :image_url, :is_active, :created_at) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddCategory").Msg("")
		return
	}

	err = nstmt.GetContext(ctx, &data.ID, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddCategory").Msg("")
		return
	}

	return data.ID, nil
}

func (r *CatalogRepositoryImpl) UpdateCategory(ctx context.Context, data domain.Category) (err error) {
	_, err = r.db.NamedExecContext(ctx, "UPDATE categories SET name=:name, description=:description, image_url=:image_url, is_active=:is_active WHERE id=:id", data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateCategory").Msg("")
		return
	}

	return nil
}

func (r *CatalogRepositoryImpl) DeleteCategory(ctx context.Context, id int64) (err error) {
	_, err = r.db.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteCategory").Msg("")
		return
	}

	return nil
}

func (r *CatalogRepositoryImpl) GetMenuItems(ctx context.Context, availableOnly bool) (data []domain.MenuItem, err error) {
	query := "SELECT * FROM menu_items"
	if availableOnly {
		query += " WHERE is_available = true"
	}

	err = r.db.SelectContext(ctx, &data, query)
	if err != nil {
		log.Error().Err(err).Str("component", "GetMenuItems").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

func (r *CatalogRepositoryImpl) GetMenuItemsByCategoryID(ctx context.Context, categoryID int64) (data []domain.MenuItem, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM menu_items WHERE category_id = $1 AND is_available = true", categoryID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetMenuItemsByCategoryID").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

func (r *CatalogRepositoryImpl) GetMenuItemByID(ctx context.Context, id int64) (data domain.MenuItem, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM menu_items WHERE id = $1", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetMenuItemByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *CatalogRepositoryImpl) GetMenuItemsByIDs(ctx context.Context, ids []int64) (data []domain.MenuItem, err error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In("SELECT * FROM menu_items WHERE id IN (?)", ids)
	if err != nil {
		log.Error().Err(err).Str("component", "GetMenuItemsByIDs").Msg("")
		return nil, errs.ErrInternalServer
	}

	err = r.db.SelectContext(ctx, &data, r.db.Rebind(query), args...)
	if err != nil {
		log.Error().Err(err).Str("component", "GetMenuItemsByIDs").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

func (r *CatalogRepositoryImpl) AddMenuItem(ctx context.Context, data domain.MenuItem) (id int64, err error) {
	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO menu_items(name, description, price, image_url, category_id, is_available) VALUES (:name, :description, :price, :image_url, :category_id, :is_available) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddMenuItem").Msg("")
		return
	}

	err = nstmt.GetContext(ctx, &data.ID, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddMenuItem").Msg("")
		return
	}

	return data.ID, nil
}

func (r *CatalogRepositoryImpl) UpdateMenuItem(ctx context.Context, data domain.MenuItem) (err error) {
	_, err = r.db.NamedExecContext(ctx, "UPDATE menu_items SET name=:name, description=:description, price=:price, image_url=:image_url, category_id=:category_id, is_available=:is_available WHERE id=:id", data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateMenuItem").Msg("")
		return
	}

	return nil
}

func (r *CatalogRepositoryImpl) DeleteMenuItem(ctx context.Context, id int64) (err error) {
	_, err = r.db.ExecContext(ctx, "DELETE FROM menu_items WHERE id = $1", id)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteMenuItem").Msg("")
		return
	}

	return nil
}
