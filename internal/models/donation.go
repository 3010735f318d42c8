package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Donation represents a contribution by a donor. Its funds are
// distributed to open charity projects by the allocation engine.
type Donation struct {
	DefaultModel
	Investment
	UserID  uuid.UUID `json:"userId" example:"d4b82b3c-c2a9-43d5-b649-4c0c30b4713c"` // The donor that contributed the funds
	Comment string    `json:"comment,omitempty" example:"For the kittens!" default:""`
}

func (d *Donation) BeforeSave(_ *gorm.DB) error {
	d.Comment = strings.TrimSpace(d.Comment)

	return nil
}

func (d *Donation) AfterSave(_ *gorm.DB) error {
	return d.checkInvariants()
}

// BeforeDelete blocks deletion of donations that were already
// distributed to projects, even partially.
func (d *Donation) BeforeDelete(_ *gorm.DB) error {
	if d.InvestedAmount.IsPositive() {
		return ErrFundedEntity
	}

	return nil
}
