package usecases

import (
	da "github.com/lintang-b-s/rankmatch/pkg/datastructure"
	"github.com/lintang-b-s/rankmatch/pkg/matching"
)

type Scheduler interface {
	Run() (*matching.Matching, error)
}

// SchedulerFactory builds the scheduler that solves one validated instance.
type SchedulerFactory func(table *da.PreferenceTable) Scheduler
