package models

import (
	"strings"
	"time"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// CharityProject represents a project that collects donations until
// its funding target is reached.
type CharityProject struct {
	DefaultModel
	Investment
	Name        string `json:"name" gorm:"uniqueIndex" example:"New shelter roof"`
	Description string `json:"description" example:"The roof of the cat shelter needs to be replaced"`
}

// BeforeSave trims whitespace and ensures the required fields are set.
func (p *CharityProject) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)

	if p.Name == "" {
		return ErrNameRequired
	}

	if p.Description == "" {
		return ErrDescriptionRequired
	}

	return nil
}

func (p *CharityProject) AfterSave(_ *gorm.DB) error {
	return p.checkInvariants()
}

// BeforeDelete blocks deletion of projects that already received funds.
func (p *CharityProject) BeforeDelete(_ *gorm.DB) error {
	if p.InvestedAmount.IsPositive() {
		return ErrFundedEntity
	}

	return nil
}

// Update applies the fields set in the patch to the project.
//
// Closed projects cannot be edited at all and the full amount may
// never drop below what is already invested. When the patched full
// amount equals the invested amount, the project is closed.
func (p *CharityProject) Update(db *gorm.DB, patch CharityProject, fields []string) error {
	if p.FullyInvested {
		return ErrClosedProject
	}

	if slices.Contains(fields, "FullAmount") {
		if patch.FullAmount.LessThan(p.InvestedAmount) {
			return ErrInvalidAmount
		}

		// Lowering the target to what is already invested closes the project
		if patch.FullAmount.Equal(p.InvestedAmount) {
			now := time.Now().In(time.UTC)
			patch.FullyInvested = true
			patch.CloseDate = &now
			fields = append(fields, "FullyInvested", "CloseDate")
		}
	}

	return db.Model(p).Select(fields).Updates(patch).Error
}
