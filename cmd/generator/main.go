package main

import (
	"flag"
	"fmt"

	da "github.com/lintang-b-s/rankmatch/pkg/datastructure"
	"github.com/lintang-b-s/rankmatch/pkg/logger"
	"github.com/lintang-b-s/rankmatch/pkg/prefparser"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	n    = flag.Int("n", 50, "number of items in each partition")
	seed = flag.Uint64("seed", 1, "random seed")
	out  = flag.String("out", "./data/prefs.txt", "output file, bzip2 compressed when it ends in .bz2")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	table, err := randomTable(*n, rand.New(rand.NewSource(*seed)))
	if err != nil {
		panic(err)
	}

	if err := prefparser.WriteFile(*out, table); err != nil {
		panic(err)
	}
	logger.Info("preference instance written", zap.String("file", *out), zap.Int("n", *n), zap.Uint64("seed", *seed))
}

// randomTable builds a complete instance where every item ranks the whole opposite partition.
func randomTable(n int, rng *rand.Rand) (*da.PreferenceTable, error) {
	partitionA := names("a", n)
	partitionB := names("b", n)

	rankings := make(map[string][]string, 2*n)
	shuffled := func(pool []string) []string {
		perm := rng.Perm(len(pool))
		list := make([]string, len(pool))
		for i, j := range perm {
			list[i] = pool[j]
		}
		return list
	}
	for _, a := range partitionA {
		rankings[a] = shuffled(partitionB)
	}
	for _, b := range partitionB {
		rankings[b] = shuffled(partitionA)
	}

	return da.NewPreferenceTable(partitionA, partitionB, rankings)
}

func names(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}
	return out
}
