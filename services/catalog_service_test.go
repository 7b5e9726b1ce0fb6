package services_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/apopovic77/gsg-api/models"
	"github.com/apopovic77/gsg-api/repository"
	"github.com/apopovic77/gsg-api/services"
)

// ---- mock repository ----

type mockCatalogRepo struct {
	total         int
	countErr      error
	products      []models.ProductSummary
	productsErr   error
	detail        *models.ProductDetail
	detailErr     error
	images        []models.ProductImage
	imagesErr     error
	brands        []models.Brand
	brandsErr     error
	categories    []models.Category
	categoriesErr error
	counts        models.StatsCounts
	countsErr     error
}

func (m *mockCatalogRepo) CountProducts(_ context.Context, _ repository.ProductFilter) (int, error) {
	return m.total, m.countErr
}
func (m *mockCatalogRepo) FindProducts(_ context.Context, _ repository.ProductFilter, _, _ int) ([]models.ProductSummary, error) {
	return m.products, m.productsErr
}
func (m *mockCatalogRepo) FindProductByNummer(_ context.Context, _ string) (*models.ProductDetail, error) {
	return m.detail, m.detailErr
}
func (m *mockCatalogRepo) FindProductImages(_ context.Context, _ int) ([]models.ProductImage, error) {
	return m.images, m.imagesErr
}
func (m *mockCatalogRepo) ListBrands(_ context.Context) ([]models.Brand, error) {
	return m.brands, m.brandsErr
}
func (m *mockCatalogRepo) ListCategories(_ context.Context) ([]models.Category, error) {
	return m.categories, m.categoriesErr
}
func (m *mockCatalogRepo) StatsCounts(_ context.Context) (models.StatsCounts, error) {
	return m.counts, m.countsErr
}
func (m *mockCatalogRepo) Ping(_ context.Context) error { return nil }

func newTestService(repo *mockCatalogRepo) services.CatalogService {
	logger, _ := zap.NewDevelopment()
	return services.NewCatalogService(repo, logger)
}

func summaries(n int) []models.ProductSummary {
	items := make([]models.ProductSummary, n)
	for i := range items {
		items[i] = models.ProductSummary{
			ID:       i + 1,
			Nummer:   fmt.Sprintf("A-%03d", i+1),
			NettoEUR: decimal.NewFromInt(10),
			Active:   true,
		}
	}
	return items
}

// ---- ListProducts ----

func TestListProducts_HasMore(t *testing.T) {
	svc := newTestService(&mockCatalogRepo{total: 120, products: summaries(50)})

	list, svcErr := svc.ListProducts(context.Background(), repository.ProductFilter{}, 50, 50)

	assert.Nil(t, svcErr)
	assert.Equal(t, 120, list.Total)
	assert.Len(t, list.Items, 50)
	assert.True(t, list.HasMore)
}

func TestListProducts_LastPageExactBoundary(t *testing.T) {
	// offset + len(items) == total must report no further pages.
	svc := newTestService(&mockCatalogRepo{total: 100, products: summaries(50)})

	list, svcErr := svc.ListProducts(context.Background(), repository.ProductFilter{}, 50, 50)

	assert.Nil(t, svcErr)
	assert.False(t, list.HasMore)
}

func TestListProducts_NoMatches(t *testing.T) {
	svc := newTestService(&mockCatalogRepo{total: 0, products: []models.ProductSummary{}})

	list, svcErr := svc.ListProducts(context.Background(), repository.ProductFilter{Search: "xyz"}, 50, 0)

	assert.Nil(t, svcErr)
	assert.Equal(t, 0, list.Total)
	assert.Empty(t, list.Items)
	assert.False(t, list.HasMore)
}

func TestListProducts_OffsetBeyondTotal(t *testing.T) {
	svc := newTestService(&mockCatalogRepo{total: 30, products: []models.ProductSummary{}})

	list, svcErr := svc.ListProducts(context.Background(), repository.ProductFilter{}, 50, 100)

	assert.Nil(t, svcErr)
	assert.Empty(t, list.Items)
	assert.False(t, list.HasMore)
}

func TestListProducts_CountError(t *testing.T) {
	svc := newTestService(&mockCatalogRepo{countErr: errors.New("connection reset")})

	list, svcErr := svc.ListProducts(context.Background(), repository.ProductFilter{}, 50, 0)

	assert.Nil(t, list)
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusInternalServerError, svcErr.StatusCode)
	assert.Equal(t, "database_error", svcErr.Kind)
	// Store internals must not leak into the message.
	assert.NotContains(t, svcErr.Message, "connection reset")
}

func TestListProducts_FetchError(t *testing.T) {
	svc := newTestService(&mockCatalogRepo{total: 10, productsErr: errors.New("bad statement")})

	_, svcErr := svc.ListProducts(context.Background(), repository.ProductFilter{}, 50, 0)

	assert.NotNil(t, svcErr)
	assert.Equal(t, "database_error", svcErr.Kind)
}

// ---- GetProductByNummer ----

func TestGetProductByNummer_NotFound(t *testing.T) {
	svc := newTestService(&mockCatalogRepo{detailErr: sql.ErrNoRows})

	product, svcErr := svc.GetProductByNummer(context.Background(), "0781-012")

	assert.Nil(t, product)
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
	assert.Equal(t, "not_found", svcErr.Kind)
	assert.Equal(t, "Product 0781-012 not found", svcErr.Message)
}

func TestGetProductByNummer_AttachesOrderedImages(t *testing.T) {
	detail := &models.ProductDetail{
		ProductSummary: models.ProductSummary{ID: 42, Nummer: "0781-012", NettoEUR: decimal.NewFromInt(50)},
	}
	images := []models.ProductImage{
		{Path: "a.jpg", Sort: 1},
		{Path: "b.jpg", Sort: 1}, // tie keeps arrival order
		{Path: "c.jpg", Sort: 2},
	}
	svc := newTestService(&mockCatalogRepo{detail: detail, images: images})

	product, svcErr := svc.GetProductByNummer(context.Background(), "0781-012")

	assert.Nil(t, svcErr)
	assert.Equal(t, images, product.Images)
}

func TestGetProductByNummer_ImageLookupError(t *testing.T) {
	detail := &models.ProductDetail{
		ProductSummary: models.ProductSummary{ID: 42, Nummer: "0781-012", NettoEUR: decimal.NewFromInt(50)},
	}
	svc := newTestService(&mockCatalogRepo{detail: detail, imagesErr: errors.New("timeout")})

	_, svcErr := svc.GetProductByNummer(context.Background(), "0781-012")

	assert.NotNil(t, svcErr)
	assert.Equal(t, "database_error", svcErr.Kind)
}

// ---- brands / categories ----

func TestListBrands_PassesThrough(t *testing.T) {
	brands := []models.Brand{
		{ID: 7, Name: "O'NEAL", ArticleCount: 2500},
		{ID: 13, Name: "Lezyne", ArticleCount: 900},
	}
	svc := newTestService(&mockCatalogRepo{brands: brands})

	got, svcErr := svc.ListBrands(context.Background())

	assert.Nil(t, svcErr)
	assert.Equal(t, brands, got)
}

func TestListCategories_Error(t *testing.T) {
	svc := newTestService(&mockCatalogRepo{categoriesErr: errors.New("boom")})

	_, svcErr := svc.ListCategories(context.Background())

	assert.NotNil(t, svcErr)
	assert.Equal(t, "database_error", svcErr.Kind)
}

// ---- stats ----

func TestGetStats_TruncatesToTopTen(t *testing.T) {
	brands := make([]models.Brand, 12)
	for i := range brands {
		brands[i] = models.Brand{ID: i + 1, Name: fmt.Sprintf("Brand %d", i+1), ArticleCount: 100 - i}
	}
	repo := &mockCatalogRepo{
		counts: models.StatsCounts{TotalArticles: 5000, ActiveArticles: 3000, TotalBrands: 12, TotalCustomers: 800},
		brands: brands,
	}
	svc := newTestService(repo)

	stats, svcErr := svc.GetStats(context.Background())

	assert.Nil(t, svcErr)
	assert.Equal(t, 5000, stats.TotalArticles)
	assert.Equal(t, 3000, stats.ActiveArticles)
	assert.Equal(t, 12, stats.TotalBrands)
	assert.Equal(t, 800, stats.TotalCustomers)
	assert.Len(t, stats.Brands, 10)
	assert.Equal(t, models.BrandCount{Name: "Brand 1", Count: 100}, stats.Brands[0])
}

func TestGetStats_CountsError(t *testing.T) {
	svc := newTestService(&mockCatalogRepo{countsErr: errors.New("boom")})

	_, svcErr := svc.GetStats(context.Background())

	assert.NotNil(t, svcErr)
	assert.Equal(t, "database_error", svcErr.Kind)
}
