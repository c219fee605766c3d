package datastructure

import (
	"math"

	"github.com/lintang-b-s/rankmatch/pkg"
)

type Index uint32

const INVALID_INDEX = Index(math.MaxUint32)

// MatchVertex. distance, visited and prev are bfs-local and reset by every FlowGraph.ShortestPath call.
// matched survives between searches and is only written when an augmenting path crosses the vertex.
type MatchVertex struct {
	id        Index
	name      string
	partition pkg.PartitionTag
	distance  int
	visited   bool
	prev      Index
	matched   Index
}

func NewMatchVertex(id Index, name string, partition pkg.PartitionTag) MatchVertex {
	return MatchVertex{
		id:        id,
		name:      name,
		partition: partition,
		distance:  pkg.INFINITY_DISTANCE,
		prev:      INVALID_INDEX,
		matched:   INVALID_INDEX,
	}
}

func (v *MatchVertex) GetID() Index {
	return v.id
}

func (v *MatchVertex) GetName() string {
	return v.name
}

func (v *MatchVertex) GetPartition() pkg.PartitionTag {
	return v.partition
}

func (v *MatchVertex) IsTerminal() bool {
	return v.partition == pkg.SOURCE || v.partition == pkg.SINK
}

func (v *MatchVertex) GetDistance() int {
	return v.distance
}

func (v *MatchVertex) SetDistance(distance int) {
	v.distance = distance
}

func (v *MatchVertex) IsVisited() bool {
	return v.visited
}

func (v *MatchVertex) SetVisited(visited bool) {
	v.visited = visited
}

func (v *MatchVertex) GetPrev() Index {
	return v.prev
}

func (v *MatchVertex) SetPrev(prev Index) {
	v.prev = prev
}

func (v *MatchVertex) GetMatched() Index {
	return v.matched
}

func (v *MatchVertex) SetMatched(matched Index) {
	v.matched = matched
}

func (v *MatchVertex) resetSearch() {
	v.distance = pkg.INFINITY_DISTANCE
	v.visited = false
	v.prev = INVALID_INDEX
}

// VertexArena owns every vertex of one matching instance. Layout:
// [source, sink, partition A (input order), partition B (input order)].
type VertexArena struct {
	vertices []MatchVertex
	byName   map[string]Index
	n        int
}

func NewVertexArena(partitionA, partitionB []string) *VertexArena {
	n := len(partitionA)
	arena := &VertexArena{
		vertices: make([]MatchVertex, 0, len(partitionA)+len(partitionB)+2),
		byName:   make(map[string]Index, len(partitionA)+len(partitionB)),
		n:        n,
	}

	arena.vertices = append(arena.vertices, NewMatchVertex(pkg.SOURCE_ID, pkg.SOURCE_NAME, pkg.SOURCE))
	arena.vertices = append(arena.vertices, NewMatchVertex(pkg.SINK_ID, pkg.SINK_NAME, pkg.SINK))

	for _, name := range partitionA {
		arena.addVertex(name, pkg.PARTITION_A)
	}
	for _, name := range partitionB {
		arena.addVertex(name, pkg.PARTITION_B)
	}
	return arena
}

func (a *VertexArena) addVertex(name string, partition pkg.PartitionTag) {
	id := Index(len(a.vertices))
	a.vertices = append(a.vertices, NewMatchVertex(id, name, partition))
	if _, exists := a.byName[name]; !exists {
		a.byName[name] = id
	}
}

func (a *VertexArena) NumberOfVertices() int {
	return len(a.vertices)
}

// PartitionSize. number of vertices in partition A (equal to partition B for a valid instance).
func (a *VertexArena) PartitionSize() int {
	return a.n
}

func (a *VertexArena) GetVertex(u Index) *MatchVertex {
	return &a.vertices[u]
}

func (a *VertexArena) GetName(u Index) string {
	return a.vertices[u].name
}

func (a *VertexArena) GetPartition(u Index) pkg.PartitionTag {
	return a.vertices[u].partition
}

func (a *VertexArena) Lookup(name string) (Index, bool) {
	id, ok := a.byName[name]
	return id, ok
}

func (a *VertexArena) Source() Index {
	return pkg.SOURCE_ID
}

func (a *VertexArena) Sink() Index {
	return pkg.SINK_ID
}

func (a *VertexArena) firstOf(partition pkg.PartitionTag) Index {
	if partition == pkg.PARTITION_A {
		return 2
	}
	return Index(2 + a.n)
}

// PartitionA returns the ids of partition A in input order.
func (a *VertexArena) PartitionA() []Index {
	return a.idRange(pkg.PARTITION_A)
}

// PartitionB returns the ids of partition B in input order.
func (a *VertexArena) PartitionB() []Index {
	return a.idRange(pkg.PARTITION_B)
}

func (a *VertexArena) idRange(partition pkg.PartitionTag) []Index {
	first := a.firstOf(partition)
	last := Index(len(a.vertices))
	if partition == pkg.PARTITION_A {
		last = first + Index(a.n)
	}
	ids := make([]Index, 0, last-first)
	for u := first; u < last; u++ {
		ids = append(ids, u)
	}
	return ids
}

func (a *VertexArena) ForEachVertices(handle func(v *MatchVertex)) {
	for i := range a.vertices {
		handle(&a.vertices[i])
	}
}

func (a *VertexArena) ResetSearch() {
	for i := range a.vertices {
		a.vertices[i].resetSearch()
	}
}

func (a *VertexArena) ResetMatches() {
	for i := range a.vertices {
		a.vertices[i].matched = INVALID_INDEX
	}
}
