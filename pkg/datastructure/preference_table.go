package datastructure

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/rankmatch/pkg"
)

var (
	ErrRankCountMismatch = errors.New("rank count mismatch")
	ErrInvalidRanking    = errors.New("invalid ranking")
	ErrRankOutOfRange    = errors.New("rank out of range")
)

// PreferenceTable stores, for every vertex of both partitions, its strict ranking of the opposite partition.
// rankings[v][r-1] is the r-th choice of v; ranks is the inverse: ranks[v][w-offset] = rank of w in v's list.
type PreferenceTable struct {
	arena    *VertexArena
	n        int
	rankings [][]Index
	ranks    [][]int
}

// NewPreferenceTable builds and validates a table. rankings maps every vertex name to its ordered choices.
func NewPreferenceTable(partitionA, partitionB []string, rankings map[string][]string) (*PreferenceTable, error) {
	n := len(partitionA)
	if n == 0 {
		return nil, fmt.Errorf("%w: partition 1 is empty", ErrRankCountMismatch)
	}
	if len(partitionB) != n {
		return nil, fmt.Errorf("%w: there are %d items in partition 1 but %d items in partition 2",
			ErrRankCountMismatch, n, len(partitionB))
	}

	seen := make(map[string]struct{}, 2*n)
	for _, names := range [][]string{partitionA, partitionB} {
		for _, name := range names {
			if _, exists := seen[name]; exists {
				return nil, fmt.Errorf("%w: item '%s' is listed more than once", ErrInvalidRanking, name)
			}
			seen[name] = struct{}{}
		}
	}

	arena := NewVertexArena(partitionA, partitionB)
	pt := &PreferenceTable{
		arena:    arena,
		n:        n,
		rankings: make([][]Index, arena.NumberOfVertices()),
		ranks:    make([][]int, arena.NumberOfVertices()),
	}

	for _, u := range append(arena.PartitionA(), arena.PartitionB()...) {
		name := arena.GetName(u)
		choices, ok := rankings[name]
		if !ok {
			return nil, fmt.Errorf("%w: item '%s' provided no rankings", ErrRankCountMismatch, name)
		}
		if len(choices) != n {
			return nil, fmt.Errorf("%w: item '%s' should specify %d rankings but specified %d",
				ErrRankCountMismatch, name, n, len(choices))
		}

		opposite := pkg.PARTITION_B
		if arena.GetPartition(u) == pkg.PARTITION_B {
			opposite = pkg.PARTITION_A
		}
		offset := arena.firstOf(opposite)

		pt.rankings[u] = make([]Index, n)
		pt.ranks[u] = make([]int, n)
		for r, choice := range choices {
			w, ok := arena.Lookup(choice)
			if !ok || arena.GetPartition(w) != opposite {
				return nil, fmt.Errorf("%w: item '%s' ranked '%s' which is not in the opposite partition",
					ErrInvalidRanking, name, choice)
			}
			if pt.ranks[u][w-offset] != 0 {
				return nil, fmt.Errorf("%w: item '%s' ranked '%s' more than once", ErrInvalidRanking, name, choice)
			}
			pt.rankings[u][r] = w
			pt.ranks[u][w-offset] = r + 1
		}
	}

	return pt, nil
}

func (pt *PreferenceTable) GetArena() *VertexArena {
	return pt.arena
}

// Size. number of vertices per partition (N).
func (pt *PreferenceTable) Size() int {
	return pt.n
}

// ChoiceAt returns the rank-th (1-based) choice of v.
func (pt *PreferenceTable) ChoiceAt(v Index, rank int) (Index, error) {
	if rank < 1 || rank > pt.n {
		return INVALID_INDEX, fmt.Errorf("%w: rank %d of item '%s', must be in [1, %d]",
			ErrRankOutOfRange, rank, pt.arena.GetName(v), pt.n)
	}
	return pt.rankings[v][rank-1], nil
}

// RankOf returns the 1-based position of w in v's ranking, false if w is not ranked by v.
func (pt *PreferenceTable) RankOf(v, w Index) (int, bool) {
	if int(v) >= len(pt.ranks) || pt.ranks[v] == nil || int(w) >= pt.arena.NumberOfVertices() {
		return 0, false
	}
	pv, pw := pt.arena.GetPartition(v), pt.arena.GetPartition(w)
	if pv == pw || pw == pkg.SOURCE || pw == pkg.SINK {
		return 0, false
	}
	return pt.ranks[v][w-pt.arena.firstOf(pw)], true
}

// GetRankings returns v's ranked choices, best first. The slice must not be modified.
func (pt *PreferenceTable) GetRankings(v Index) []Index {
	return pt.rankings[v]
}

func (pt *PreferenceTable) GetName(v Index) string {
	return pt.arena.GetName(v)
}

func (pt *PreferenceTable) Lookup(name string) (Index, bool) {
	return pt.arena.Lookup(name)
}

func (pt *PreferenceTable) PartitionA() []Index {
	return pt.arena.PartitionA()
}

func (pt *PreferenceTable) PartitionB() []Index {
	return pt.arena.PartitionB()
}
