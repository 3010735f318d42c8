package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContextKey string

// ContextURL is the gin context key the base URL for resource links
// is stored under.
const ContextURL ContextKey = "qrkot-backend-url"

// DefaultModel is the base model for all resources.
//
// CreatedAt doubles as the creation date the allocation engine
// uses for FIFO ordering.
type DefaultModel struct {
	ID        uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the resource
	CreatedAt time.Time `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"`   // Time the resource was created
	UpdatedAt time.Time `json:"updatedAt" example:"2022-04-17T20:14:01.048145Z"`   // Last time the resource was updated
}

// AfterFind normalizes the timestamps to UTC.
//
// They are stored in UTC, but reading them from the database
// returns them as +0000, which is not the same location.
func (m *DefaultModel) AfterFind(_ *gorm.DB) error {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	return nil
}

// BeforeCreate generates the UUID for the resource.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) error {
	m.ID = uuid.New()
	return nil
}
