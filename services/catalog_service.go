package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/apopovic77/gsg-api/models"
	"github.com/apopovic77/gsg-api/repository"
)

// topBrandCount limits the brand breakdown in the stats overview.
const topBrandCount = 10

// ServiceError is a typed error with an HTTP status code and a stable kind
// label. The message never carries store internals; those go to the log.
type ServiceError struct {
	StatusCode int
	Kind       string
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

func databaseError() *ServiceError {
	return &ServiceError{
		StatusCode: http.StatusInternalServerError,
		Kind:       "database_error",
		Message:    "Database query error",
	}
}

// CatalogService defines the read operations of the product catalog.
type CatalogService interface {
	ListProducts(ctx context.Context, filter repository.ProductFilter, limit, offset int) (*models.ProductList, *ServiceError)
	GetProductByNummer(ctx context.Context, nummer string) (*models.ProductDetail, *ServiceError)
	ListBrands(ctx context.Context) ([]models.Brand, *ServiceError)
	ListCategories(ctx context.Context) ([]models.Category, *ServiceError)
	GetStats(ctx context.Context) (*models.Stats, *ServiceError)
}

type catalogServiceImpl struct {
	repo   repository.CatalogRepository
	logger *zap.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repository.CatalogRepository, logger *zap.Logger) CatalogService {
	return &catalogServiceImpl{repo: repo, logger: logger}
}

// ListProducts runs the count and page queries with the same predicate. The
// two reads are not transactional; a write landing between them may skew the
// total by a row, which is acceptable for a paging hint.
func (s *catalogServiceImpl) ListProducts(ctx context.Context, filter repository.ProductFilter, limit, offset int) (*models.ProductList, *ServiceError) {
	total, err := s.repo.CountProducts(ctx, filter)
	if err != nil {
		s.logger.Error("Counting products failed", zap.Error(err))
		return nil, databaseError()
	}

	items, err := s.repo.FindProducts(ctx, filter, limit, offset)
	if err != nil {
		s.logger.Error("Listing products failed", zap.Error(err))
		return nil, databaseError()
	}

	return &models.ProductList{
		Items:   items,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: offset+len(items) < total,
	}, nil
}

// GetProductByNummer looks up one article by its business number and attaches
// the ordered image gallery. A missing article is a regular outcome, not a
// store failure.
func (s *catalogServiceImpl) GetProductByNummer(ctx context.Context, nummer string) (*models.ProductDetail, *ServiceError) {
	product, err := s.repo.FindProductByNummer(ctx, nummer)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &ServiceError{
			StatusCode: http.StatusNotFound,
			Kind:       "not_found",
			Message:    fmt.Sprintf("Product %s not found", nummer),
		}
	}
	if err != nil {
		s.logger.Error("Product lookup failed", zap.String("nummer", nummer), zap.Error(err))
		return nil, databaseError()
	}

	images, err := s.repo.FindProductImages(ctx, product.ID)
	if err != nil {
		s.logger.Error("Image lookup failed", zap.Int("article_id", product.ID), zap.Error(err))
		return nil, databaseError()
	}
	product.Images = images

	return product, nil
}

func (s *catalogServiceImpl) ListBrands(ctx context.Context) ([]models.Brand, *ServiceError) {
	brands, err := s.repo.ListBrands(ctx)
	if err != nil {
		s.logger.Error("Listing brands failed", zap.Error(err))
		return nil, databaseError()
	}
	return brands, nil
}

func (s *catalogServiceImpl) ListCategories(ctx context.Context) ([]models.Category, *ServiceError) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("Listing categories failed", zap.Error(err))
		return nil, databaseError()
	}
	return categories, nil
}

func (s *catalogServiceImpl) GetStats(ctx context.Context) (*models.Stats, *ServiceError) {
	counts, err := s.repo.StatsCounts(ctx)
	if err != nil {
		s.logger.Error("Stats counts failed", zap.Error(err))
		return nil, databaseError()
	}

	brands, err := s.repo.ListBrands(ctx)
	if err != nil {
		s.logger.Error("Stats brand listing failed", zap.Error(err))
		return nil, databaseError()
	}
	if len(brands) > topBrandCount {
		brands = brands[:topBrandCount]
	}

	top := make([]models.BrandCount, 0, len(brands))
	for _, b := range brands {
		top = append(top, models.BrandCount{Name: b.Name, Count: b.ArticleCount})
	}

	return &models.Stats{
		TotalArticles:  counts.TotalArticles,
		ActiveArticles: counts.ActiveArticles,
		TotalBrands:    counts.TotalBrands,
		TotalCustomers: counts.TotalCustomers,
		Brands:         top,
	}, nil
}
