package service

import (
	"context"
	"errors"

	"github.com/sweetshop/sweetshop-api/internal/model"
	"github.com/sweetshop/sweetshop-api/internal/repository"
)

var (
	ErrNameRequired      = errors.New("name is required")
	ErrCategoryRequired  = errors.New("category is required")
	ErrNegativePrice     = errors.New("price must be non-negative")
	ErrNegativeQuantity  = errors.New("quantity must be non-negative")
	ErrInvalidRestock    = errors.New("restock quantity must be positive")
	ErrQuantityUnderflow = errors.New("adjustment would make quantity negative")
	ErrSweetNotFound     = errors.New("sweet not found")
)

// SweetService handles inventory business logic.
type SweetService struct {
	sweets *repository.SweetRepository
}

// NewSweetService creates a new SweetService.
func NewSweetService(sweets *repository.SweetRepository) *SweetService {
	return &SweetService{sweets: sweets}
}

// Create validates and stores a new sweet.
func (s *SweetService) Create(ctx context.Context, req model.CreateSweetRequest) (model.SweetResponse, error) {
	if req.Name == "" {
		return model.SweetResponse{}, ErrNameRequired
	}
	if req.Category == "" {
		return model.SweetResponse{}, ErrCategoryRequired
	}
	if req.Price < 0 {
		return model.SweetResponse{}, ErrNegativePrice
	}
	if req.Quantity < 0 {
		return model.SweetResponse{}, ErrNegativeQuantity
	}

	sweet := &model.Sweet{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
	}

	if err := s.sweets.Create(ctx, sweet); err != nil {
		return model.SweetResponse{}, err
	}

	return model.SweetToResponse(sweet), nil
}

// List returns all sweets in insertion order.
func (s *SweetService) List(ctx context.Context) ([]model.SweetResponse, error) {
	sweets, err := s.sweets.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.SweetResponse, len(sweets))
	for i := range sweets {
		result[i] = model.SweetToResponse(&sweets[i])
	}
	return result, nil
}

// Restock increases a sweet's quantity by the given positive amount and
// returns the updated sweet.
func (s *SweetService) Restock(ctx context.Context, id, quantity int64) (model.SweetResponse, error) {
	if quantity <= 0 {
		return model.SweetResponse{}, ErrInvalidRestock
	}

	sweet, err := s.sweets.AdjustQuantity(ctx, id, quantity)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSweetNotFound):
			return model.SweetResponse{}, ErrSweetNotFound
		case errors.Is(err, repository.ErrNegativeQuantity):
			return model.SweetResponse{}, ErrQuantityUnderflow
		}
		return model.SweetResponse{}, err
	}

	return model.SweetToResponse(sweet), nil
}
