package main

import (
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/rankmatch/pkg/matching"
	"github.com/lintang-b-s/rankmatch/pkg/prefparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

func TestRandomTable(t *testing.T) {
	testCases := []struct {
		name string
		n    int
		seed uint64
	}{
		{name: "single pair", n: 1, seed: 1},
		{name: "small", n: 5, seed: 7},
		{name: "medium", n: 40, seed: 42},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			table, err := randomTable(tc.n, rand.New(rand.NewSource(tc.seed)))
			require.NoError(t, err)
			assert.Equal(t, tc.n, table.Size())

			m, err := matching.FindMatching(table, zap.NewNop(), true)
			require.NoError(t, err)
			assert.LessOrEqual(t, m.K, tc.n)
			assert.Len(t, m.Pairs, 2*tc.n)
		})
	}
}

func TestRandomTableIsSeeded(t *testing.T) {
	first, err := randomTable(6, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	second, err := randomTable(6, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	for _, v := range first.PartitionA() {
		assert.Equal(t, first.GetRankings(v), second.GetRankings(v))
	}
}

func TestRandomTableWriteFile(t *testing.T) {
	table, err := randomTable(8, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "prefs.txt.bz2")
	require.NoError(t, prefparser.WriteFile(file, table))

	result, err := prefparser.NewParser(zap.NewNop()).ParseFile(file)
	require.NoError(t, err)
	assert.Equal(t, 8, result.Table.Size())
}
