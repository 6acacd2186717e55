package services

import (
	"context"
	"time"

	"github.com/isuruAnjula/E-Commerce-Website/internal/domain"
	"github.com/isuruAnjula/E-Commerce-Website/internal/repos"
)

type CatalogService struct {
	Prods   *repos.ProductRepo
	Timeout time.Duration
}

func NewCatalogService(prods *repos.ProductRepo, timeout time.Duration) *CatalogService {
	return &CatalogService{Prods: prods, Timeout: timeout}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()
	return s.Prods.List(ctx)
}
