package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/ya-beautystudio/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	serviceColumns = `id, name, description, price, duration, discount, benefits, image_urls`
	productColumns = `id, name, description, price, stock, discount`

	GetService      = `SELECT ` + serviceColumns + ` FROM SERVICES WHERE id=$1 AND is_active;`
	GetServicesByID = `SELECT ` + serviceColumns + ` FROM SERVICES WHERE id = ANY($1) AND is_active ORDER BY id;`
	ListServices    = `SELECT ` + serviceColumns + ` FROM SERVICES WHERE is_active ORDER BY name;`
	GetProduct      = `SELECT ` + productColumns + ` FROM PRODUCTS WHERE id=$1;`
	SearchProducts  = `SELECT ` + productColumns + `, COUNT(*) OVER() AS total
						FROM PRODUCTS
						WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
						ORDER BY name, id
						LIMIT $2 OFFSET $3;`
	CountProducts = `SELECT COUNT(*) FROM PRODUCTS
						WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%';`
)

type CatalogDatabase struct {
	DB *Database
}

// Создание хранилища
func NewCatalogStorage(db *Database) CatalogStorage {
	return &CatalogDatabase{DB: db}
}

func scanService(row pgx.Row) (models.Service, error) {
	var s models.Service
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Description,
		&s.Price,
		&s.Duration,
		&s.Discount,
		&s.Benefits,
		&s.ImageURLs,
	)
	return s, err
}

func (s *CatalogDatabase) GetService(ctx context.Context, id int64) (*models.Service, error) {
	service, err := scanService(s.DB.Pool.QueryRow(ctx, GetService, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("service %d %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return &service, nil
}

func (s *CatalogDatabase) GetServices(ctx context.Context, ids []int64) ([]models.Service, error) {
	if len(ids) == 0 {
		return []models.Service{}, nil
	}
	return s.queryServices(ctx, GetServicesByID, ids)
}

func (s *CatalogDatabase) ListServices(ctx context.Context) ([]models.Service, error) {
	return s.queryServices(ctx, ListServices)
}

func (s *CatalogDatabase) queryServices(ctx context.Context, query string, args ...any) ([]models.Service, error) {
	rows, err := s.DB.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get services: %w", err)
	}
	defer rows.Close()

	services := []models.Service{}
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return services, fmt.Errorf("failed scan service data: %w", err)
		}
		services = append(services, service)
	}
	return services, rows.Err()
}

func (s *CatalogDatabase) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	err := s.DB.Pool.QueryRow(ctx, GetProduct, id).Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Stock,
		&p.Discount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("product %d %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &p, nil
}

// SearchProducts - диапазонная выборка товаров и общее количество совпадений
func (s *CatalogDatabase) SearchProducts(ctx context.Context, term string, limit, offset int) ([]models.Product, int, error) {
	rows, err := s.DB.Pool.Query(ctx, SearchProducts, term, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search products: %w", err)
	}
	defer rows.Close()

	var (
		products = []models.Product{}
		total    int
	)
	for rows.Next() {
		var p models.Product
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Price,
			&p.Stock,
			&p.Discount,
			&total,
		)
		if err != nil {
			return products, 0, fmt.Errorf("failed scan product data: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return products, 0, fmt.Errorf("failed to search products: %w", err)
	}
	// страница за концом выборки: COUNT(*) OVER() не вернулся, считаем отдельно
	if len(products) == 0 && offset > 0 {
		if err := s.DB.Pool.QueryRow(ctx, CountProducts, term).Scan(&total); err != nil {
			return products, 0, fmt.Errorf("failed to count products: %w", err)
		}
	}
	return products, total, nil
}
