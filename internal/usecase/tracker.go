package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mmuslimabdulj/tabletop-utils/internal/domain"
	"github.com/mmuslimabdulj/tabletop-utils/internal/storage"
)

// Tracker owns the initiative order: listing, insertion, turn advance and
// repositioning. "Whose turn" is always derived from stored positions and
// initiatives; nothing else is kept.
type Tracker struct {
	store storage.CharacterStore
	newID func() string
	now   func() time.Time
}

// TrackerOption customizes a Tracker.
type TrackerOption func(*Tracker)

// WithIDGenerator replaces the UUIDv7 id generator.
func WithIDGenerator(fn func() string) TrackerOption {
	return func(t *Tracker) {
		t.newID = fn
	}
}

// WithClock replaces time.Now for created_at stamps.
func WithClock(fn func() time.Time) TrackerOption {
	return func(t *Tracker) {
		t.now = fn
	}
}

// NewTracker creates a Tracker over store.
func NewTracker(store storage.CharacterStore, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		store: store,
		newID: newCharacterID,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// newCharacterID returns a time-ordered id so id order matches insertion order.
func newCharacterID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// AddInput holds the caller-supplied fields of a new character.
// A nil Position means "next available position".
type AddInput struct {
	Name       string
	Initiative int
	Position   *int
}

// ListInOrder returns every character in turn order. An empty tracker yields
// an empty slice, not an error.
func (t *Tracker) ListInOrder(ctx context.Context) ([]domain.Character, error) {
	characters, err := t.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	if characters == nil {
		characters = []domain.Character{}
	}
	domain.SortTurnOrder(characters)
	return characters, nil
}

// CurrentTurn returns the character at the head of the order, or nil when the
// tracker is empty.
func (t *Tracker) CurrentTurn(ctx context.Context) (*domain.Character, error) {
	ordered, err := t.ListInOrder(ctx)
	if err != nil {
		return nil, err
	}
	if len(ordered) == 0 {
		return nil, nil
	}
	head := ordered[0]
	return &head, nil
}

// NextAvailablePosition is one past the highest stored position, or 1 for an
// empty tracker. It fails with a ValidationError once the highest position
// has reached domain.PositionLimit.
func (t *Tracker) NextAvailablePosition(ctx context.Context) (int, error) {
	characters, err := t.store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list characters: %w", err)
	}
	return nextPosition(characters)
}

func nextPosition(characters []domain.Character) (int, error) {
	highest, ok := domain.MaxPosition(characters)
	if !ok {
		return domain.FirstPosition, nil
	}
	return domain.PositionAfter(highest)
}

// Add validates input and inserts a new character. All field problems are
// reported together in one ValidationError.
func (t *Tracker) Add(ctx context.Context, in AddInput) (domain.Character, error) {
	var verr domain.ValidationError

	name, err := domain.NormalizeName(in.Name)
	if err = verr.Merge(err); err != nil {
		return domain.Character{}, err
	}
	if err := verr.Merge(domain.ValidateInitiative(in.Initiative)); err != nil {
		return domain.Character{}, err
	}
	if in.Position != nil {
		_ = verr.Merge(domain.ValidatePosition(*in.Position))
	}
	if !verr.Empty() {
		return domain.Character{}, &verr
	}

	var position int
	if in.Position != nil {
		position = *in.Position
	} else {
		position, err = t.NextAvailablePosition(ctx)
		if err != nil {
			return domain.Character{}, err
		}
	}

	character := domain.Character{
		ID:         t.newID(),
		Name:       name,
		Initiative: in.Initiative,
		Position:   position,
		CreatedAt:  t.now().UTC(),
	}
	if err := t.store.Create(ctx, character); err != nil {
		return domain.Character{}, fmt.Errorf("create character: %w", err)
	}
	return character, nil
}

// Delete removes a character. Deleting an id twice reports NotFoundError the
// second time.
func (t *Tracker) Delete(ctx context.Context, id string) error {
	if err := t.store.Delete(ctx, id); err != nil {
		return translateStoreError(err, id, "delete character")
	}
	return nil
}

// AdvanceTurn ends currentID's turn by moving it behind everyone else and
// returns who acts next.
//
// The next character is taken from the order as it was before the move: the
// first character of that snapshot other than currentID. With one character or
// none there is nothing to advance to and nil is returned without touching
// storage. When the order already reaches domain.PositionLimit the turn cannot
// move behind it and a ValidationError is returned.
func (t *Tracker) AdvanceTurn(ctx context.Context, currentID string) (*domain.Character, error) {
	snapshot, err := t.ListInOrder(ctx)
	if err != nil {
		return nil, err
	}
	if len(snapshot) <= 1 {
		return nil, nil
	}

	var (
		current *domain.Character
		next    *domain.Character
	)
	for i := range snapshot {
		c := snapshot[i]
		if c.ID == currentID {
			current = &c
			continue
		}
		if next == nil {
			next = &c
		}
	}
	if current == nil {
		return nil, &domain.NotFoundError{ID: currentID}
	}

	highest, _ := domain.MaxPosition(snapshot)
	if current.Position, err = domain.PositionAfter(highest); err != nil {
		return nil, err
	}
	if err := t.store.Update(ctx, *current); err != nil {
		return nil, translateStoreError(err, currentID, "advance turn")
	}
	return next, nil
}

// Reorder sets an absolute position, clamped to [0, domain.PositionLimit].
func (t *Tracker) Reorder(ctx context.Context, id string, newPosition int) (domain.Character, error) {
	return t.updatePosition(ctx, id, "reorder", func(int) int {
		return domain.ClampPosition(newPosition)
	})
}

// ReorderInput parses raw as an integer position and applies Reorder.
func (t *Tracker) ReorderInput(ctx context.Context, id, raw string) (domain.Character, error) {
	position, err := domain.ParsePosition(raw)
	if err != nil {
		return domain.Character{}, err
	}
	return t.Reorder(ctx, id, position)
}

// Nudge moves a character one step later (increase) or earlier (decrease).
// Decreasing at zero leaves the position at zero.
func (t *Tracker) Nudge(ctx context.Context, id string, direction domain.Direction) (domain.Character, error) {
	if direction != domain.DirectionIncrease && direction != domain.DirectionDecrease {
		return domain.Character{}, domain.NewValidationError(domain.FieldDirection, "direction must be increase or decrease")
	}
	return t.updatePosition(ctx, id, "nudge", direction.Apply)
}

func (t *Tracker) updatePosition(ctx context.Context, id, op string, next func(int) int) (domain.Character, error) {
	character, err := t.store.Get(ctx, id)
	if err != nil {
		return domain.Character{}, translateStoreError(err, id, op)
	}
	character.Position = next(character.Position)
	if err := t.store.Update(ctx, character); err != nil {
		return domain.Character{}, translateStoreError(err, id, op)
	}
	return character, nil
}

func translateStoreError(err error, id, op string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return &domain.NotFoundError{ID: id}
	}
	return fmt.Errorf("%s: %w", op, err)
}
