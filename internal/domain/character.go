package domain

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Character is one combatant in the initiative order.
type Character struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Initiative int       `json:"initiative"`
	Position   int       `json:"position"` // lower acts first
	CreatedAt  time.Time `json:"created_at"`
}

// Compare orders characters by position ascending, initiative descending,
// then id ascending. Ids are time-ordered, so exact ties keep insertion order.
func Compare(a, b Character) int {
	if c := cmp.Compare(a.Position, b.Position); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Initiative, a.Initiative); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

// SortTurnOrder sorts characters in place into canonical turn order.
func SortTurnOrder(characters []Character) {
	slices.SortStableFunc(characters, Compare)
}

// MaxPosition returns the highest position in characters and false when the
// slice is empty.
func MaxPosition(characters []Character) (int, bool) {
	if len(characters) == 0 {
		return 0, false
	}
	highest := characters[0].Position
	for _, c := range characters[1:] {
		highest = max(highest, c.Position)
	}
	return highest, true
}

// NormalizeName trims the name and validates it.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", NewValidationError(FieldName, "empty name")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", NewValidationError(FieldName, "name too long")
	}
	return name, nil
}

// ValidateInitiative rejects negative initiative values.
func ValidateInitiative(initiative int) error {
	if initiative < 0 {
		return NewValidationError(FieldInitiative, "negative initiative")
	}
	return nil
}

// ClampPosition keeps positions within [0, PositionLimit].
func ClampPosition(position int) int {
	return min(max(0, position), PositionLimit)
}

// ValidatePosition rejects explicit positions outside [0, PositionLimit].
func ValidatePosition(position int) error {
	if position < 0 {
		return NewValidationError(FieldPosition, "negative position")
	}
	if position > PositionLimit {
		return NewValidationError(FieldPosition, "position too large")
	}
	return nil
}

// ParsePosition interprets raw user input as a position.
// Negative values parse successfully; callers clamp them. Values above
// PositionLimit are rejected.
func ParsePosition(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, NewValidationError(FieldPosition, "position must be an integer")
	}
	if value > PositionLimit {
		return 0, NewValidationError(FieldPosition, "position too large")
	}
	return value, nil
}

// PositionAfter returns the position one past highest, or a ValidationError
// when that would pass PositionLimit.
func PositionAfter(highest int) (int, error) {
	if highest >= PositionLimit {
		return 0, NewValidationError(FieldPosition, "position limit reached")
	}
	return highest + 1, nil
}

// Direction is a relative position step.
type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
)

// ParseDirection accepts "increase" or "decrease", case-insensitively.
func ParseDirection(raw string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(raw))) {
	case DirectionIncrease:
		return DirectionIncrease, nil
	case DirectionDecrease:
		return DirectionDecrease, nil
	}
	return "", NewValidationError(FieldDirection, "direction must be increase or decrease")
}

// Apply returns the position after one step in direction d. Both directions
// saturate at the ends of [0, PositionLimit].
func (d Direction) Apply(position int) int {
	position = ClampPosition(position)
	if d == DirectionIncrease {
		return min(position+1, PositionLimit)
	}
	return max(position-1, 0)
}
