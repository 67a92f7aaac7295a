package domain

import "time"

// ==== Character Constants ====

// MaxNameLength is the longest accepted character name, in runes.
const MaxNameLength = 100

// FirstPosition is assigned to the first character added to an empty tracker.
const FirstPosition = 1

// PositionLimit is the highest position a character can hold.
const PositionLimit = 1_000_000_000

// ==== Session Constants ====

// SessionTTL is the default idle lifetime of a preferences session
const SessionTTL = 24 * time.Hour

// MaxFlashes caps queued flash messages per session
const MaxFlashes = 10

// ==== Rate Limit Constants ====

const (
	// DefaultRateLimitMutations is the default rate for tracker mutations (requests/sec)
	DefaultRateLimitMutations = 10

	// DefaultRateLimitBurst is the default burst for tracker mutations
	DefaultRateLimitBurst = 20
)
