package usecases

import (
	"context"
	"sort"

	"github.com/lintang-b-s/rankmatch/pkg/concurrent"
	da "github.com/lintang-b-s/rankmatch/pkg/datastructure"
	"github.com/lintang-b-s/rankmatch/pkg/matching"
	"github.com/lintang-b-s/rankmatch/pkg/util"
	"go.uber.org/zap"
)

type PreferenceList struct {
	Name        string
	Preferences []string
}

type MatchingInstance struct {
	PartitionA []PreferenceList
	PartitionB []PreferenceList
}

type BatchResult struct {
	Index    int
	Matching *matching.Matching
	Err      error
}

type batchJob struct {
	index    int
	instance MatchingInstance
}

type MatchingService struct {
	log              *zap.Logger
	schedulerFactory SchedulerFactory
	batchWorkers     int
}

func NewMatchingService(log *zap.Logger, validate bool, batchWorkers int) *MatchingService {
	return NewMatchingServiceWithFactory(log, func(table *da.PreferenceTable) Scheduler {
		return matching.NewRankScheduler(table, log, validate)
	}, batchWorkers)
}

func NewMatchingServiceWithFactory(log *zap.Logger, schedulerFactory SchedulerFactory, batchWorkers int) *MatchingService {
	if batchWorkers < 1 {
		batchWorkers = 1
	}
	return &MatchingService{
		log:              log,
		schedulerFactory: schedulerFactory,
		batchWorkers:     batchWorkers,
	}
}

// FindMatching validates one instance and runs the rank scheduler on it.
func (ms *MatchingService) FindMatching(ctx context.Context, instance MatchingInstance) (*matching.Matching, error) {
	if util.StopConcurrentOperation(ctx) {
		return nil, util.WrapErrorf(ctx.Err(), util.ErrInternalServerError, "request canceled")
	}

	table, err := instance.toPreferenceTable()
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "invalid preference instance")
	}

	m, err := ms.schedulerFactory(table).Run()
	if err != nil {
		ms.log.Error("rank scheduler failed", zap.Int("n", table.Size()), zap.Error(err))
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "matching failed")
	}

	ms.log.Debug("matching found", zap.Int("n", table.Size()), zap.Int("k", m.K))
	return m, nil
}

// FindMatchingBatch solves every instance independently on a worker pool. A failing instance only
// fails its own BatchResult. results are ordered like instances.
func (ms *MatchingService) FindMatchingBatch(ctx context.Context, instances []MatchingInstance) []BatchResult {
	if len(instances) == 0 {
		return []BatchResult{}
	}

	jobs := make([]batchJob, len(instances))
	for i, instance := range instances {
		jobs[i] = batchJob{index: i, instance: instance}
	}

	workers := util.MinInt(ms.batchWorkers, len(instances))
	results := concurrent.RunAll(workers, jobs, func(job batchJob) BatchResult {
		m, err := ms.FindMatching(ctx, job.instance)
		return BatchResult{Index: job.index, Matching: m, Err: err}
	})
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	ms.log.Info("batch matching finished", zap.Int("instances", len(instances)), zap.Int("failed", failed))
	return results
}

// toPreferenceTable. duplicate names are rejected by NewPreferenceTable before rankings is read.
func (mi MatchingInstance) toPreferenceTable() (*da.PreferenceTable, error) {
	namesA := make([]string, 0, len(mi.PartitionA))
	namesB := make([]string, 0, len(mi.PartitionB))
	rankings := make(map[string][]string, len(mi.PartitionA)+len(mi.PartitionB))

	for _, list := range mi.PartitionA {
		namesA = append(namesA, list.Name)
		rankings[list.Name] = list.Preferences
	}
	for _, list := range mi.PartitionB {
		namesB = append(namesB, list.Name)
		rankings[list.Name] = list.Preferences
	}

	return da.NewPreferenceTable(namesA, namesB, rankings)
}
