package services

import (
	"context"

	"github.com/denmor86/ya-beautystudio/internal/logger"
	"github.com/denmor86/ya-beautystudio/internal/models"
	"github.com/denmor86/ya-beautystudio/internal/search"
	"github.com/denmor86/ya-beautystudio/internal/storage"
	"go.uber.org/zap"
)

type CatalogService interface {
	SearchServices(ctx context.Context, term string, page int) (search.Result[models.Service], error)
	GetService(ctx context.Context, id int64) (*models.Service, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	ProductsFetcher() search.Fetcher[models.Product]
	ListStaff(ctx context.Context) ([]models.Staff, error)
}

type Catalog struct {
	Storage  storage.IStorage
	PageSize int
}

// Создание сервиса
func NewCatalog(storage storage.IStorage, pageSize int) CatalogService {
	return &Catalog{Storage: storage, PageSize: pageSize}
}

func serviceFields(s models.Service) []string {
	return []string{s.Name, s.Description}
}

// SearchServices - каталог услуг с поиском по названию и описанию.
// Выдача накопительная: page порций с начала списка.
func (s *Catalog) SearchServices(ctx context.Context, term string, page int) (search.Result[models.Service], error) {
	services, err := s.Storage.ListServices(ctx)
	if err != nil {
		logger.Errorw("Failed to list services", zap.Error(err))
		return search.Result[models.Service]{}, err
	}
	searcher := search.NewSearcher(services, s.PageSize, serviceFields)
	searcher.SetTerm(term)
	searcher.SetPage(page)

	items := searcher.Visible()
	if items == nil {
		items = []models.Service{}
	}
	return search.Result[models.Service]{
		Term:    term,
		Items:   items,
		Total:   searcher.Total(),
		HasMore: searcher.HasMore(),
	}, nil
}

func (s *Catalog) GetService(ctx context.Context, id int64) (*models.Service, error) {
	return s.Storage.GetService(ctx, id)
}

func (s *Catalog) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	return s.Storage.GetProduct(ctx, id)
}

// ProductsFetcher - диапазонная выборка товаров для загрузчика сессии
func (s *Catalog) ProductsFetcher() search.Fetcher[models.Product] {
	return func(ctx context.Context, term string, limit, offset int) ([]models.Product, int, error) {
		products, total, err := s.Storage.SearchProducts(ctx, term, limit, offset)
		if err != nil {
			logger.Errorw("Failed to search products", zap.Error(err))
			return nil, 0, err
		}
		return products, total, nil
	}
}

func (s *Catalog) ListStaff(ctx context.Context) ([]models.Staff, error) {
	staff, err := s.Storage.ListStaff(ctx)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		staff = []models.Staff{}
	}
	return staff, nil
}
