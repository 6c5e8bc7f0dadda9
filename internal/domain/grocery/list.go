package grocery

import (
	"time"

	"github.com/google/uuid"
)

// List is a persisted grocery list owned by a user. The items slice is
// stored verbatim as produced by GenerateItems.
type List struct {
	id            uuid.UUID
	userID        uuid.UUID
	title         string
	items         []Item
	generatedFrom []uuid.UUID
	createdAt     time.Time
	updatedAt     time.Time
}

// NewList creates a grocery list for the given user from generated items
// and the recipe IDs the generation was requested with.
func NewList(userID uuid.UUID, title string, items []Item, generatedFrom []uuid.UUID) *List {
	now := time.Now()
	return &List{
		id:            uuid.New(),
		userID:        userID,
		title:         title,
		items:         items,
		generatedFrom: generatedFrom,
		createdAt:     now,
		updatedAt:     now,
	}
}

// ID returns the list's unique identifier
func (l *List) ID() uuid.UUID {
	return l.id
}

// UserID returns the owning user's ID
func (l *List) UserID() uuid.UUID {
	return l.userID
}

// Title returns the list title
func (l *List) Title() string {
	return l.title
}

// Items returns the aggregated grocery items
func (l *List) Items() []Item {
	return l.items
}

// GeneratedFrom returns the recipe IDs the list was generated from
func (l *List) GeneratedFrom() []uuid.UUID {
	return l.generatedFrom
}

// CreatedAt returns when the list was created
func (l *List) CreatedAt() time.Time {
	return l.createdAt
}

// UpdatedAt returns when the list was last updated
func (l *List) UpdatedAt() time.Time {
	return l.updatedAt
}

// RehydrateList reconstructs a grocery list from persisted state.
// Repositories are the only intended callers.
func RehydrateList(
	id, userID uuid.UUID,
	title string,
	items []Item,
	generatedFrom []uuid.UUID,
	createdAt, updatedAt time.Time,
) *List {
	return &List{
		id:            id,
		userID:        userID,
		title:         title,
		items:         items,
		generatedFrom: generatedFrom,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}
