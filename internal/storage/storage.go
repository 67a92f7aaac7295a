// Package storage defines persistence contracts for tracker state.
package storage

import (
	"context"
	"errors"

	"github.com/mmuslimabdulj/tabletop-utils/internal/domain"
)

var (
	// ErrNotFound indicates a requested character record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a character id is already taken.
	ErrAlreadyExists = errors.New("record already exists")
)

// CharacterStore persists character records. Each call is atomic.
// List returns records in insertion order.
type CharacterStore interface {
	Create(ctx context.Context, character domain.Character) error
	List(ctx context.Context) ([]domain.Character, error)
	Get(ctx context.Context, id string) (domain.Character, error)
	Update(ctx context.Context, character domain.Character) error
	Delete(ctx context.Context, id string) error
}
