package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/isuruAnjula/E-Commerce-Website/internal/domain"
	"github.com/isuruAnjula/E-Commerce-Website/internal/repos"
)

var (
	ErrCartEntryNotFound = errors.New("product not in cart")
	ErrQuantityFloor     = errors.New("quantity cannot be less than 1")
)

type CartService struct {
	Carts   *repos.CartRepo
	Timeout time.Duration
}

func NewCartService(carts *repos.CartRepo, timeout time.Duration) *CartService {
	return &CartService{Carts: carts, Timeout: timeout}
}

func (s *CartService) View(ctx context.Context) ([]domain.CartLine, error) {
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()
	return s.Carts.View(ctx)
}

// Add upserts the entry: first add creates it at quantity 1, repeat adds
// bump the quantity. Returns true when the entry was created.
func (s *CartService) Add(ctx context.Context, prodID int64) (bool, error) {
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()
	return s.Carts.Upsert(ctx, prodID)
}

func (s *CartService) Increment(ctx context.Context, prodID int64) error {
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()
	n, err := s.Carts.Increment(ctx, prodID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCartEntryNotFound
	}
	return nil
}

// Decrement enforces the quantity floor: an entry at 1 stays at 1. When
// the guarded update matches nothing, one lookup tells "absent" apart
// from "at floor".
func (s *CartService) Decrement(ctx context.Context, prodID int64) error {
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()
	n, err := s.Carts.Decrement(ctx, prodID)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	if _, err := s.Carts.Qty(ctx, prodID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCartEntryNotFound
		}
		return err
	}
	return ErrQuantityFloor
}

func (s *CartService) Remove(ctx context.Context, prodID int64) error {
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()
	return s.Carts.Delete(ctx, prodID)
}
