package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sweetshop/sweetshop-api/internal/model"
)

var (
	ErrSweetNotFound    = errors.New("sweet not found")
	ErrNegativeQuantity = errors.New("quantity cannot go negative")
)

// SweetRepository handles sweet persistence operations.
type SweetRepository struct {
	db *sql.DB
}

// NewSweetRepository creates a new SweetRepository.
func NewSweetRepository(db *sql.DB) *SweetRepository {
	return &SweetRepository{db: db}
}

// Create inserts a new sweet and sets the generated ID on the sweet struct.
func (r *SweetRepository) Create(ctx context.Context, sweet *model.Sweet) error {
	query := `INSERT INTO sweets (name, category, price, quantity) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, sweet.Name, sweet.Category, sweet.Price, sweet.Quantity)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	sweet.ID = id
	return nil
}

// List retrieves all sweets in insertion order.
func (r *SweetRepository) List(ctx context.Context) ([]model.Sweet, error) {
	query := `SELECT id, name, category, price, quantity, created_at, updated_at
		FROM sweets ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sweets []model.Sweet
	for rows.Next() {
		var s model.Sweet
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		sweets = append(sweets, s)
	}

	return sweets, rows.Err()
}

// GetByID retrieves a sweet by its ID.
func (r *SweetRepository) GetByID(ctx context.Context, id int64) (*model.Sweet, error) {
	query := `SELECT id, name, category, price, quantity, created_at, updated_at
		FROM sweets WHERE id = ?`

	sweet := &model.Sweet{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&sweet.ID, &sweet.Name, &sweet.Category, &sweet.Price, &sweet.Quantity,
		&sweet.CreatedAt, &sweet.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSweetNotFound
		}
		return nil, err
	}

	return sweet, nil
}

// AdjustQuantity applies delta to a sweet's quantity as a single guarded
// UPDATE, so concurrent adjustments cannot lose writes and the quantity can
// never go negative. Returns the updated sweet.
func (r *SweetRepository) AdjustQuantity(ctx context.Context, id, delta int64) (*model.Sweet, error) {
	query := `UPDATE sweets
		SET quantity = quantity + ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND quantity + ? >= 0`

	result, err := r.db.ExecContext(ctx, query, delta, id, delta)
	if err != nil {
		return nil, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}

	if affected == 0 {
		// Either the sweet does not exist or the delta would underflow.
		if _, err := r.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrNegativeQuantity
	}

	return r.GetByID(ctx, id)
}
