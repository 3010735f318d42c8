package models

import (
	"time"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// ProjectClosure describes how long a closed project took to collect
// its full amount. Consumed by external report exporters.
type ProjectClosure struct {
	Name        string        `json:"name"`
	Duration    time.Duration `json:"duration"`
	Description string        `json:"description"`
}

// ClosedProjectsByDuration returns all fully invested projects,
// fastest funded first.
//
// This is a pure read, it is safe to run concurrently with
// allocations: closure is monotonic and final, so a stale read can
// only miss a project, never report a wrong duration.
func ClosedProjectsByDuration(db *gorm.DB) ([]ProjectClosure, error) {
	var projects []CharityProject

	err := db.Where("fully_invested = ?", true).Find(&projects).Error
	if err != nil {
		return nil, err
	}

	closures := make([]ProjectClosure, 0, len(projects))
	for _, project := range projects {
		closures = append(closures, ProjectClosure{
			Name:        project.Name,
			Duration:    project.CloseDate.Sub(project.CreatedAt),
			Description: project.Description,
		})
	}

	slices.SortStableFunc(closures, func(a, b ProjectClosure) int {
		switch {
		case a.Duration < b.Duration:
			return -1
		case a.Duration > b.Duration:
			return 1
		}
		return 0
	})

	return closures, nil
}
