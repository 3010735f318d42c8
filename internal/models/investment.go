package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Investment holds the funding state shared by charity projects
// and donations.
//
// For a project, FullAmount is the funding target and InvestedAmount
// the money allocated to it so far. For a donation, FullAmount is the
// contribution and InvestedAmount the part already distributed to
// projects.
type Investment struct {
	FullAmount     decimal.Decimal `json:"fullAmount" gorm:"type:DECIMAL(20,8)"`               // The target or contributed amount
	InvestedAmount decimal.Decimal `json:"investedAmount" gorm:"type:DECIMAL(20,8)"`           // The amount allocated so far
	FullyInvested  bool            `json:"fullyInvested" example:"true" default:"false"`       // True once the invested amount reaches the full amount
	CloseDate      *time.Time      `json:"closeDate" example:"2022-04-22T21:01:05.058161Z"`    // Set once, when the resource becomes fully invested
}

// remaining returns the capacity that is still open for allocation.
func (i Investment) remaining() decimal.Decimal {
	return i.FullAmount.Sub(i.InvestedAmount)
}

// invest books an allocated amount and closes the investment when the
// full amount is reached. The close date is only ever set once.
func (i *Investment) invest(amount decimal.Decimal, now time.Time) {
	i.InvestedAmount = i.InvestedAmount.Add(amount)

	if i.InvestedAmount.Equal(i.FullAmount) {
		i.FullyInvested = true
		if i.CloseDate == nil {
			closeDate := now
			i.CloseDate = &closeDate
		}
	}
}

// checkInvariants verifies the funding state after every write.
//
// Every write path runs through this, so a violation can only come
// from a bug in the allocation engine, never from user input alone.
func (i Investment) checkInvariants() error {
	if !i.FullAmount.IsPositive() {
		return ErrInvalidAmount
	}

	if i.InvestedAmount.IsNegative() || i.InvestedAmount.GreaterThan(i.FullAmount) {
		return fmt.Errorf("%w: invested amount %s outside of [0, %s]", ErrGeneral, i.InvestedAmount, i.FullAmount)
	}

	if i.FullyInvested != i.InvestedAmount.Equal(i.FullAmount) {
		return fmt.Errorf("%w: fully invested flag does not match the invested amount", ErrGeneral)
	}

	if (i.CloseDate != nil) != i.FullyInvested {
		return fmt.Errorf("%w: close date must be set exactly when the resource is fully invested", ErrGeneral)
	}

	return nil
}
