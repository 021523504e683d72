package product

import (
	"context"

	"github.com/akshayfox/admin-dashboard/internal/store"
)

// Service defines catalog business logic.
type Service interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*store.Product, error)
	GetProduct(ctx context.Context, id int64) (*store.Product, error)
	ListProducts(ctx context.Context) ([]store.Product, error)
	UpdateProduct(ctx context.Context, id int64, req UpdateProductRequest) (*store.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*store.Product, error) {
	return s.repo.CreateProduct(ctx, store.NewProduct{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price.Round(2),
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Stock:       req.Stock,
	})
}

func (s *service) GetProduct(ctx context.Context, id int64) (*store.Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *service) ListProducts(ctx context.Context) ([]store.Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *service) UpdateProduct(ctx context.Context, id int64, req UpdateProductRequest) (*store.Product, error) {
	patch := store.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Stock:       req.Stock,
	}
	if req.Price != nil {
		price := req.Price.Round(2)
		patch.Price = &price
	}
	return s.repo.UpdateProduct(ctx, id, patch)
}

func (s *service) DeleteProduct(ctx context.Context, id int64) error {
	return s.repo.DeleteProduct(ctx, id)
}
