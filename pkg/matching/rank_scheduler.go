package matching

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/rankmatch/pkg"
	da "github.com/lintang-b-s/rankmatch/pkg/datastructure"
	"go.uber.org/zap"
)

var (
	ErrNoPerfectMatching = errors.New("no perfect matching")
	ErrInvalidMatching   = errors.New("invalid matching")
)

type RoundStats struct {
	K             int
	AdmittedEdges int
	Augmentations int
	Flow          int
}

// RankScheduler finds the smallest K such that a perfect matching exists in which every pair ranked each
// other within their first K choices.
//
// Round K admits an A->B edge (x,y) into the residual graph when y is x's K-th choice and x is among y's
// first K choices, or symmetrically, so the edge appears in the round max(rank_x(y), rank_y(x)).
// Flow is then pushed along shortest residual paths (edmonds-karp on unit capacities) until the sink is
// unreachable or the flow reaches N.
type RankScheduler struct {
	table    *da.PreferenceTable
	arena    *da.VertexArena
	log      *zap.Logger
	validate bool

	k             int
	flow          int
	flowGraph     *da.FlowGraph // Gf
	residualGraph *da.FlowGraph // Gr
	frontier      [][]bool      // frontier[v][w] = true if w's rank in v's list has been examined
	rounds        []RoundStats
}

func NewRankScheduler(table *da.PreferenceTable, log *zap.Logger, validate bool) *RankScheduler {
	return &RankScheduler{
		table:    table,
		arena:    table.GetArena(),
		log:      log,
		validate: validate || pkg.DEBUG,
	}
}

func (rs *RankScheduler) reset() {
	rs.k = 0
	rs.flow = 0
	rs.rounds = make([]RoundStats, 0)
	rs.arena.ResetMatches()

	rs.flowGraph = da.NewFlowGraph(rs.arena)
	for _, a := range rs.arena.PartitionA() {
		rs.flowGraph.AddEdge(rs.arena.Source(), a)
	}
	for _, b := range rs.arena.PartitionB() {
		rs.flowGraph.AddEdge(b, rs.arena.Sink())
	}
	rs.residualGraph = rs.flowGraph.Clone()

	rs.frontier = make([][]bool, rs.arena.NumberOfVertices())
	for _, v := range rs.vertices() {
		rs.frontier[v] = make([]bool, rs.arena.NumberOfVertices())
	}
}

func (rs *RankScheduler) vertices() []da.Index {
	return append(rs.arena.PartitionA(), rs.arena.PartitionB()...)
}

/*
Run. time complexity: O(N * (V + E)). there are at most N rounds and at most N successful augmentations over
the whole run, every one of them (plus the failing search closing each round) is a single bfs over Gr.
*/
func (rs *RankScheduler) Run() (*Matching, error) {
	rs.reset()
	n := rs.table.Size()

	for rs.flow != n {
		if rs.k >= n {
			// unreachable for a validated table: at K = N the bipartite graph is complete.
			return nil, fmt.Errorf("%w: flow %d of %d after %d rounds", ErrNoPerfectMatching, rs.flow, n, rs.k)
		}
		rs.k++

		admitted, err := rs.admitEdges()
		if err != nil {
			return nil, err
		}
		augmentations := rs.augment()

		stats := RoundStats{K: rs.k, AdmittedEdges: admitted, Augmentations: augmentations, Flow: rs.flow}
		rs.rounds = append(rs.rounds, stats)
		rs.log.Debug("rank round finished",
			zap.Int("k", stats.K),
			zap.Int("admitted_edges", stats.AdmittedEdges),
			zap.Int("augmentations", stats.Augmentations),
			zap.Int("flow", stats.Flow),
			zap.Int("n", n),
		)
	}

	matching := rs.buildMatching()
	if rs.validate {
		if err := rs.validateFlow(); err != nil {
			return nil, err
		}
		if err := matching.Validate(rs.table); err != nil {
			return nil, err
		}
	}
	return matching, nil
}

// admitEdges extends every vertex's frontier with its K-th choice and adds the newly mutual A->B edges to Gr.
func (rs *RankScheduler) admitEdges() (int, error) {
	vertices := rs.vertices()
	choices := make([]da.Index, len(vertices))
	for i, v := range vertices {
		c, err := rs.table.ChoiceAt(v, rs.k)
		if err != nil {
			return 0, err
		}
		choices[i] = c
		rs.frontier[v][c] = true
	}

	admitted := 0
	for i, v := range vertices {
		c := choices[i]
		if !rs.frontier[c][v] {
			continue
		}
		x, y := v, c
		if rs.arena.GetPartition(v) == pkg.PARTITION_B {
			x, y = c, v
		}
		if rs.residualGraph.AddEdge(x, y) {
			admitted++
		}
	}
	return admitted, nil
}

// augment transfers shortest source->sink paths of Gr into Gf until no path is left or the flow reaches N.
func (rs *RankScheduler) augment() int {
	n := rs.table.Size()
	augmentations := 0
	for rs.flow < n {
		path := rs.residualGraph.ShortestPath(rs.arena.Source())
		if len(path) == 0 {
			break
		}

		for i := 0; i+1 < len(path); i++ {
			p, q := path[i], path[i+1]
			if rs.flowGraph.HasEdge(q, p) {
				// p was matched to q's side through (q,p); the path reroutes it.
				rs.flowGraph.RemoveEdge(q, p)
			} else {
				rs.flowGraph.AddEdge(p, q)
				pv, qv := rs.arena.GetVertex(p), rs.arena.GetVertex(q)
				if !pv.IsTerminal() && !qv.IsTerminal() {
					pv.SetMatched(q)
					qv.SetMatched(p)
				}
			}

			rs.residualGraph.RemoveEdge(p, q)
			rs.residualGraph.AddEdge(q, p)
		}

		rs.flow++
		augmentations++
	}
	return augmentations
}

func (rs *RankScheduler) buildMatching() *Matching {
	pairs := make([]MatchedPair, 0, 2*rs.table.Size())
	for _, v := range rs.vertices() {
		partner := rs.arena.GetVertex(v).GetMatched()
		pair := MatchedPair{
			VertexID:  v,
			PartnerID: partner,
			Vertex:    rs.arena.GetName(v),
		}
		if partner != da.INVALID_INDEX {
			pair.Partner = rs.arena.GetName(partner)
			pair.Rank, _ = rs.table.RankOf(v, partner)
		}
		pairs = append(pairs, pair)
	}

	rounds := make([]RoundStats, len(rs.rounds))
	copy(rounds, rs.rounds)
	return &Matching{
		K:      rs.k,
		Pairs:  pairs,
		Rounds: rounds,
	}
}

// validateFlow checks that Gf carries exactly one unit out of every A vertex and into every B vertex,
// that the A->B flow edges agree with the match pointers and that Gr is the residual of Gf.
func (rs *RankScheduler) validateFlow() error {
	out := make([]int, rs.arena.NumberOfVertices())
	in := make([]int, rs.arena.NumberOfVertices())
	var err error
	rs.flowGraph.ForEachEdge(func(u, v da.Index) {
		if rs.arena.GetPartition(u) != pkg.PARTITION_A || rs.arena.GetPartition(v) != pkg.PARTITION_B {
			return
		}
		out[u]++
		in[v]++
		if rs.arena.GetVertex(u).GetMatched() != v && err == nil {
			err = fmt.Errorf("%w: flow edge %s->%s disagrees with match pointer", ErrInvalidMatching,
				rs.arena.GetName(u), rs.arena.GetName(v))
		}
		if rs.residualGraph.HasEdge(u, v) && err == nil {
			err = fmt.Errorf("%w: saturated edge %s->%s still in residual graph", ErrInvalidMatching,
				rs.arena.GetName(u), rs.arena.GetName(v))
		}
	})
	if err != nil {
		return err
	}

	for _, a := range rs.arena.PartitionA() {
		if out[a] != 1 {
			return fmt.Errorf("%w: %s carries %d units of flow", ErrInvalidMatching, rs.arena.GetName(a), out[a])
		}
	}
	for _, b := range rs.arena.PartitionB() {
		if in[b] != 1 {
			return fmt.Errorf("%w: %s receives %d units of flow", ErrInvalidMatching, rs.arena.GetName(b), in[b])
		}
	}
	return nil
}

func (rs *RankScheduler) GetK() int {
	return rs.k
}

func (rs *RankScheduler) GetFlow() int {
	return rs.flow
}

// FindMatching runs a fresh scheduler over table.
func FindMatching(table *da.PreferenceTable, log *zap.Logger, validate bool) (*Matching, error) {
	return NewRankScheduler(table, log, validate).Run()
}
