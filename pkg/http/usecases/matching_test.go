package usecases

import (
	"context"
	"errors"
	"testing"

	da "github.com/lintang-b-s/rankmatch/pkg/datastructure"
	"github.com/lintang-b-s/rankmatch/pkg/matching"
	"github.com/lintang-b-s/rankmatch/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func twoByTwo() MatchingInstance {
	return MatchingInstance{
		PartitionA: []PreferenceList{
			{Name: "a1", Preferences: []string{"b1", "b2"}},
			{Name: "a2", Preferences: []string{"b1", "b2"}},
		},
		PartitionB: []PreferenceList{
			{Name: "b1", Preferences: []string{"a2", "a1"}},
			{Name: "b2", Preferences: []string{"a1", "a2"}},
		},
	}
}

type failingScheduler struct{}

func (failingScheduler) Run() (*matching.Matching, error) {
	return nil, errors.New("boom")
}

func TestFindMatching(t *testing.T) {
	ms := NewMatchingService(zap.NewNop(), true, 2)

	m, err := ms.FindMatching(context.Background(), twoByTwo())
	require.NoError(t, err)
	assert.Equal(t, 2, m.K)

	partner, ok := m.PartnerOf("a1")
	require.True(t, ok)
	assert.Equal(t, "b2", partner)
}

func TestFindMatchingErrors(t *testing.T) {
	bad := twoByTwo()
	bad.PartitionB = bad.PartitionB[:1]

	testCases := []struct {
		name     string
		service  *MatchingService
		ctx      func() context.Context
		instance MatchingInstance
		wantCode error
		wantErr  error
	}{
		{
			name:     "invalid instance",
			service:  NewMatchingService(zap.NewNop(), false, 1),
			ctx:      context.Background,
			instance: bad,
			wantCode: util.ErrBadParamInput,
			wantErr:  da.ErrRankCountMismatch,
		},
		{
			name: "scheduler failure",
			service: NewMatchingServiceWithFactory(zap.NewNop(), func(*da.PreferenceTable) Scheduler {
				return failingScheduler{}
			}, 1),
			ctx:      context.Background,
			instance: twoByTwo(),
			wantCode: util.ErrInternalServerError,
		},
		{
			name:    "canceled context",
			service: NewMatchingService(zap.NewNop(), false, 1),
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			instance: twoByTwo(),
			wantCode: util.ErrInternalServerError,
			wantErr:  context.Canceled,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.service.FindMatching(tt.ctx(), tt.instance)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, util.ErrorCode(err))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestFindMatchingBatch(t *testing.T) {
	ms := NewMatchingService(zap.NewNop(), true, 3)

	bad := twoByTwo()
	bad.PartitionA[0].Preferences = []string{"b1"}

	instances := []MatchingInstance{twoByTwo(), bad, twoByTwo(), twoByTwo()}
	results := ms.FindMatchingBatch(context.Background(), instances)

	require.Len(t, results, len(instances))
	for i, res := range results {
		assert.Equal(t, i, res.Index)
		if i == 1 {
			assert.ErrorIs(t, res.Err, da.ErrRankCountMismatch)
			assert.Nil(t, res.Matching)
			continue
		}
		require.NoError(t, res.Err)
		assert.Equal(t, 2, res.Matching.K)
	}

	assert.Empty(t, ms.FindMatchingBatch(context.Background(), nil))
}
