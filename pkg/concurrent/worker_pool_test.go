package concurrent

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunAll(t *testing.T) {
	testCases := []struct {
		name       string
		numWorkers int
		jobs       []int
	}{
		{name: "single worker", numWorkers: 1, jobs: []int{1, 2, 3}},
		{name: "more workers than jobs", numWorkers: 8, jobs: []int{4, 5}},
		{name: "no jobs", numWorkers: 2, jobs: []int{}},
		{name: "invalid worker count", numWorkers: 0, jobs: []int{7}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := RunAll(tt.numWorkers, tt.jobs, func(job int) int { return job * job })
			sort.Ints(got)

			want := make([]int, 0, len(tt.jobs))
			for _, j := range tt.jobs {
				want = append(want, j*j)
			}
			sort.Ints(want)
			assert.Equal(t, want, got)
		})
	}
}
