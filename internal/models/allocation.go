package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// maxAllocationRetries bounds how often an allocation pass is retried
// after a serialization conflict before the error reaches the caller.
const maxAllocationRetries = 3

// investable is implemented by the resources the allocation engine
// can distribute funds between.
type investable interface {
	investment() *Investment
}

func (p *CharityProject) investment() *Investment { return &p.Investment }
func (d *Donation) investment() *Investment       { return &d.Investment }

var allocatedAmount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "qrkot_allocated_amount_total",
		Help: "Total amount of funds distributed to charity projects, partitioned by the kind of resource that triggered the allocation.",
	},
	[]string{"kind"},
)

func init() {
	prometheus.MustRegister(allocatedAmount)
}

// CreateWithAllocation persists a new resource and immediately runs the
// allocation pass for it, all in one transaction.
//
// Conflicting concurrent allocations are retried with a fresh
// transaction, everything else is surfaced to the caller unchanged.
func CreateWithAllocation(db *gorm.DB, entity investable) error {
	var err error

	// A rolled back attempt has already moved funds in the in-memory
	// entity. Every attempt starts from the state the caller passed in.
	initial := *entity.investment()

	for attempt := 0; attempt < maxAllocationRetries; attempt++ {
		*entity.investment() = initial

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(entity).Error; err != nil {
				return err
			}

			return Allocate(tx, entity)
		})

		if !errors.Is(err, ErrAllocationConflict) {
			return err
		}
	}

	return err
}

// Allocate distributes funds between a newly created resource and the
// open resources of the opposite kind, oldest first.
//
// It must run inside the transaction that persisted the new resource.
// Every counterpart is either fully exhausted or the new resource runs
// out of unallocated funds, so a single greedy pass is sufficient and
// committed allocations are never revisited.
func Allocate(tx *gorm.DB, entity investable) error {
	counterparts, err := openCounterparts(tx, entity)
	if err != nil {
		return err
	}

	now := time.Now().In(time.UTC)
	inv := entity.investment()

	for _, counterpart := range counterparts {
		remaining := inv.remaining()
		if !remaining.IsPositive() {
			break
		}

		other := counterpart.investment()
		transfer := decimal.Min(remaining, other.remaining())

		other.invest(transfer, now)
		inv.invest(transfer, now)

		if err := tx.Save(counterpart).Error; err != nil {
			return err
		}

		allocatedAmount.WithLabelValues(kind(entity)).Add(transfer.InexactFloat64())
	}

	return tx.Save(entity).Error
}

// openCounterparts returns the not yet fully invested resources of the
// opposite kind, ordered by creation time. Ties in the creation time
// are broken by ID to keep the order stable.
//
// On postgres the rows are locked for the rest of the transaction so
// that no concurrent pass can allocate the same capacity. sqlite
// serializes transactions through its single connection instead.
func openCounterparts(tx *gorm.DB, entity investable) ([]investable, error) {
	q := tx.Where("fully_invested = ?", false).Order("created_at ASC, id ASC")
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	switch entity.(type) {
	case *CharityProject:
		var donations []Donation
		if err := q.Find(&donations).Error; err != nil {
			return nil, err
		}

		counterparts := make([]investable, 0, len(donations))
		for i := range donations {
			counterparts = append(counterparts, &donations[i])
		}
		return counterparts, nil

	case *Donation:
		var projects []CharityProject
		if err := q.Find(&projects).Error; err != nil {
			return nil, err
		}

		counterparts := make([]investable, 0, len(projects))
		for i := range projects {
			counterparts = append(counterparts, &projects[i])
		}
		return counterparts, nil
	}

	return nil, fmt.Errorf("%w: cannot allocate for %T", ErrGeneral, entity)
}

func kind(entity investable) string {
	if _, ok := entity.(*Donation); ok {
		return "donation"
	}

	return "charity_project"
}
