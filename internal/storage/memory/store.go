// Package memory provides an in-process character store keyed by id.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/mmuslimabdulj/tabletop-utils/internal/domain"
	"github.com/mmuslimabdulj/tabletop-utils/internal/storage"
)

type entry struct {
	seq       uint64
	character domain.Character
}

// Store keeps characters in a map guarded by a mutex.
type Store struct {
	mu      sync.RWMutex
	records map[string]entry
	nextSeq uint64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		records: make(map[string]entry),
	}
}

func (s *Store) Create(ctx context.Context, character domain.Character) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[character.ID]; exists {
		return storage.ErrAlreadyExists
	}
	s.nextSeq++
	s.records[character.ID] = entry{seq: s.nextSeq, character: character}
	return nil
}

func (s *Store) List(ctx context.Context) ([]domain.Character, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]entry, 0, len(s.records))
	for _, e := range s.records {
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return cmp.Compare(a.seq, b.seq)
	})

	ordered := make([]domain.Character, len(entries))
	for i, e := range entries {
		ordered[i] = e.character
	}
	return ordered, nil
}

func (s *Store) Get(ctx context.Context, id string) (domain.Character, error) {
	if err := ctx.Err(); err != nil {
		return domain.Character{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, exists := s.records[id]
	if !exists {
		return domain.Character{}, storage.ErrNotFound
	}
	return e.character, nil
}

func (s *Store) Update(ctx context.Context, character domain.Character) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.records[character.ID]
	if !exists {
		return storage.ErrNotFound
	}
	e.character = character
	s.records[character.ID] = e
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[id]; !exists {
		return storage.ErrNotFound
	}
	delete(s.records, id)
	return nil
}

var _ storage.CharacterStore = (*Store)(nil)
