package domain

import (
	"time"

	"github.com/google/uuid"
)

// CategoryNameMaxLength bounds Category.Name.
const CategoryNameMaxLength = 100

// Category is a waste type ("Plástico", "Vidro", ...) that collection points
// and events can be tagged with. Names are globally unique.
type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// CategoryUsage counts how many entities of each kind reference a category.
type CategoryUsage struct {
	CollectionPoints int
	Events           int
}

// Total returns the number of associations across all kinds.
func (u CategoryUsage) Total() int {
	return u.CollectionPoints + u.Events
}

// CategoryWithUsage is a category together with its association counts.
type CategoryWithUsage struct {
	Category
	Usage CategoryUsage
}

// CategoryAssociation links a taggable entity to a category.
type CategoryAssociation struct {
	ID         uuid.UUID
	EntityID   uuid.UUID
	CategoryID uuid.UUID
	CreatedAt  time.Time
}
