package services

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/isuruAnjula/E-Commerce-Website/internal/repos"
)

type ProductAdminService struct {
	Prods   *repos.ProductRepo
	Timeout time.Duration
}

func NewProductAdminService(prods *repos.ProductRepo, timeout time.Duration) *ProductAdminService {
	return &ProductAdminService{Prods: prods, Timeout: timeout}
}

func (s *ProductAdminService) Add(ctx context.Context, name string, price float64, description, imageName string) error {
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()
	return s.Prods.Insert(ctx, name, price, imageName, description)
}

func (s *ProductAdminService) Update(ctx context.Context, id int64, name string, price float64, description string) error {
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()
	return s.Prods.Update(ctx, id, name, price, description)
}

func (s *ProductAdminService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()
	return s.Prods.Delete(ctx, id)
}

// ImageName assigns a stored name to an uploaded image: the upload field
// name plus a random id, keeping the client's extension. Unique per
// upload, concurrent or not.
func ImageName(original string) string {
	return "prodImage_" + uuid.NewString() + strings.ToLower(filepath.Ext(original))
}
