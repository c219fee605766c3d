package datastructure

import (
	"container/list"
	"slices"

	"github.com/lintang-b-s/rankmatch/pkg/util"
)

// FlowGraph is a directed unit-capacity graph over the vertices of a VertexArena.
// An edge (u,v) present means one unit of capacity (residual graph) or flow (flow graph) from u to v.
// Adjacency lists are kept sorted by vertex id so that bfs always scans neighbours in the same order.
type FlowGraph struct {
	arena         *VertexArena
	adjacencyList [][]Index
	numberOfEdges int
}

func NewFlowGraph(arena *VertexArena) *FlowGraph {
	adjacencyList := make([][]Index, arena.NumberOfVertices())
	for i := range adjacencyList {
		adjacencyList[i] = make([]Index, 0)
	}
	return &FlowGraph{
		arena:         arena,
		adjacencyList: adjacencyList,
	}
}

func (g *FlowGraph) GetArena() *VertexArena {
	return g.arena
}

func (g *FlowGraph) NumberOfVertices() int {
	return len(g.adjacencyList)
}

func (g *FlowGraph) NumberOfEdges() int {
	return g.numberOfEdges
}

// AddEdge inserts (u,v). returns false if the edge was already present.
func (g *FlowGraph) AddEdge(u, v Index) bool {
	pos, found := slices.BinarySearch(g.adjacencyList[u], v)
	if found {
		return false
	}
	g.adjacencyList[u] = slices.Insert(g.adjacencyList[u], pos, v)
	g.numberOfEdges++
	return true
}

// RemoveEdge deletes (u,v). returns false if the edge was not present.
func (g *FlowGraph) RemoveEdge(u, v Index) bool {
	pos, found := slices.BinarySearch(g.adjacencyList[u], v)
	if !found {
		return false
	}
	g.adjacencyList[u] = slices.Delete(g.adjacencyList[u], pos, pos+1)
	g.numberOfEdges--
	return true
}

func (g *FlowGraph) HasEdge(u, v Index) bool {
	_, found := slices.BinarySearch(g.adjacencyList[u], v)
	return found
}

// Adjacents returns a copy of u's out-neighbours in ascending id order.
func (g *FlowGraph) Adjacents(u Index) []Index {
	return slices.Clone(g.adjacencyList[u])
}

func (g *FlowGraph) GetOutDegree(u Index) int {
	return len(g.adjacencyList[u])
}

func (g *FlowGraph) ForEachVertexEdges(u Index, handle func(v Index)) {
	for _, v := range g.adjacencyList[u] {
		handle(v)
	}
}

func (g *FlowGraph) ForEachEdge(handle func(u, v Index)) {
	for u, adj := range g.adjacencyList {
		for _, v := range adj {
			handle(Index(u), v)
		}
	}
}

func (g *FlowGraph) Clone() *FlowGraph {
	adjacencyList := make([][]Index, len(g.adjacencyList))
	for u := range g.adjacencyList {
		adjacencyList[u] = slices.Clone(g.adjacencyList[u])
	}
	return &FlowGraph{
		arena:         g.arena,
		adjacencyList: adjacencyList,
		numberOfEdges: g.numberOfEdges,
	}
}

// ShortestPath runs bfs from source, recording hop distance and predecessor on every reachable vertex.
// returns the source->sink path (both inclusive) or nil if the sink is unreachable.
// a vertex keeps the predecessor of its first discovery; neighbours are scanned in ascending id order.
func (g *FlowGraph) ShortestPath(source Index) []Index {
	g.arena.ResetSearch()

	queue := list.New()
	s := g.arena.GetVertex(source)
	s.SetDistance(0)
	s.SetVisited(true)
	queue.PushBack(source)

	for queue.Len() > 0 {
		u := queue.Remove(queue.Front()).(Index)
		uDist := g.arena.GetVertex(u).GetDistance()

		g.ForEachVertexEdges(u, func(v Index) {
			w := g.arena.GetVertex(v)
			if w.IsVisited() {
				return
			}
			w.SetVisited(true)
			w.SetDistance(uDist + 1)
			w.SetPrev(u)
			queue.PushBack(v)
		})
	}

	return g.PathTo(source, g.arena.Sink())
}

// PathTo rebuilds the path source->target from the predecessors left by the last ShortestPath call.
func (g *FlowGraph) PathTo(source, target Index) []Index {
	if !g.arena.GetVertex(target).IsVisited() {
		return nil
	}

	path := make([]Index, 0, g.arena.GetVertex(target).GetDistance()+1)
	for v := target; v != INVALID_INDEX; v = g.arena.GetVertex(v).GetPrev() {
		path = append(path, v)
		if v == source {
			break
		}
	}
	return util.ReverseG(path)
}
