package matching

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lintang-b-s/rankmatch/pkg"
	da "github.com/lintang-b-s/rankmatch/pkg/datastructure"
)

type MatchedPair struct {
	VertexID  da.Index
	PartnerID da.Index
	Vertex    string
	Partner   string
	Rank      int // rank the vertex gave its partner
}

// Matching. pairs hold partition A in input order followed by partition B in input order.
type Matching struct {
	K      int
	Pairs  []MatchedPair
	Rounds []RoundStats
}

func (m *Matching) PartnerOf(name string) (string, bool) {
	for _, p := range m.Pairs {
		if p.Vertex == name && p.PartnerID != da.INVALID_INDEX {
			return p.Partner, true
		}
	}
	return "", false
}

// Validate checks that the pairs form a bijection between the partitions of table, that the two sides of every
// pair point at each other and that both ranked the other within their first K choices.
func (m *Matching) Validate(table *da.PreferenceTable) error {
	n := table.Size()
	if len(m.Pairs) != 2*n {
		return fmt.Errorf("%w: %d pairs for %d items", ErrInvalidMatching, len(m.Pairs), 2*n)
	}
	if m.K < 1 || m.K > n {
		return fmt.Errorf("%w: k=%d outside [1, %d]", ErrInvalidMatching, m.K, n)
	}

	arena := table.GetArena()
	partnerOf := make(map[da.Index]da.Index, 2*n)
	usedPartner := make(map[da.Index]struct{}, 2*n)
	for _, p := range m.Pairs {
		if p.PartnerID == da.INVALID_INDEX {
			return fmt.Errorf("%w: %s is unmatched", ErrInvalidMatching, p.Vertex)
		}
		vp, pp := arena.GetPartition(p.VertexID), arena.GetPartition(p.PartnerID)
		if (vp != pkg.PARTITION_A && vp != pkg.PARTITION_B) || (pp != pkg.PARTITION_A && pp != pkg.PARTITION_B) || vp == pp {
			return fmt.Errorf("%w: %s matched inside its own partition to %s", ErrInvalidMatching, p.Vertex, p.Partner)
		}
		if _, dup := partnerOf[p.VertexID]; dup {
			return fmt.Errorf("%w: %s listed twice", ErrInvalidMatching, p.Vertex)
		}
		if _, dup := usedPartner[p.PartnerID]; dup {
			return fmt.Errorf("%w: %s matched more than once", ErrInvalidMatching, p.Partner)
		}
		partnerOf[p.VertexID] = p.PartnerID
		usedPartner[p.PartnerID] = struct{}{}

		rank, ok := table.RankOf(p.VertexID, p.PartnerID)
		if !ok || rank != p.Rank {
			return fmt.Errorf("%w: %s reports rank %d for %s", ErrInvalidMatching, p.Vertex, p.Rank, p.Partner)
		}
		if rank > m.K {
			return fmt.Errorf("%w: %s ranked %s %d-th, worse than k=%d", ErrInvalidMatching, p.Vertex, p.Partner, rank, m.K)
		}
	}

	for v, w := range partnerOf {
		if partnerOf[w] != v {
			return fmt.Errorf("%w: %s and %s do not point at each other", ErrInvalidMatching,
				arena.GetName(v), arena.GetName(w))
		}
	}
	return nil
}

// Report writes the matching in the plain text format used by the rankmatch tool.
func (m *Matching) Report(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Everybody was matched with their top %d preferences.\n", m.K)
	for _, p := range m.Pairs {
		fmt.Fprintf(bw, "%s: matched to %s (rank %d)\n", p.Vertex, p.Partner, p.Rank)
	}

	return bw.Flush()
}
