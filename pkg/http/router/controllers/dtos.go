package controllers

import (
	"github.com/lintang-b-s/rankmatch/pkg/http/usecases"
	"github.com/lintang-b-s/rankmatch/pkg/matching"
)

type preferenceListRequest struct {
	Name        string   `json:"name" validate:"required"`
	Preferences []string `json:"preferences" validate:"required,min=1,dive,required"`
}

type matchingRequest struct {
	PartitionA []preferenceListRequest `json:"partition_a" validate:"required,min=1,dive"`
	PartitionB []preferenceListRequest `json:"partition_b" validate:"required,min=1,dive"`
}

func (r matchingRequest) toInstance() usecases.MatchingInstance {
	convert := func(lists []preferenceListRequest) []usecases.PreferenceList {
		out := make([]usecases.PreferenceList, 0, len(lists))
		for _, l := range lists {
			out = append(out, usecases.PreferenceList{Name: l.Name, Preferences: l.Preferences})
		}
		return out
	}
	return usecases.MatchingInstance{
		PartitionA: convert(r.PartitionA),
		PartitionB: convert(r.PartitionB),
	}
}

type batchMatchingRequest struct {
	Instances []matchingRequest `json:"instances" validate:"required,min=1,max=64,dive"`
}

type matchResponse struct {
	Vertex  string `json:"vertex"`
	Partner string `json:"partner"`
	Rank    int    `json:"rank"`
}

type roundResponse struct {
	K             int `json:"k"`
	AdmittedEdges int `json:"admitted_edges"`
	Augmentations int `json:"augmentations"`
	Flow          int `json:"flow"`
}

type matchingResponse struct {
	K       int             `json:"k"`
	Matches []matchResponse `json:"matches"`
	Rounds  []roundResponse `json:"rounds"`
}

func NewMatchingResponse(m *matching.Matching) matchingResponse {
	matches := make([]matchResponse, 0, len(m.Pairs))
	for _, p := range m.Pairs {
		matches = append(matches, matchResponse{Vertex: p.Vertex, Partner: p.Partner, Rank: p.Rank})
	}
	rounds := make([]roundResponse, 0, len(m.Rounds))
	for _, r := range m.Rounds {
		rounds = append(rounds, roundResponse{K: r.K, AdmittedEdges: r.AdmittedEdges, Augmentations: r.Augmentations, Flow: r.Flow})
	}
	return matchingResponse{K: m.K, Matches: matches, Rounds: rounds}
}

type batchItemResponse struct {
	Index int               `json:"index"`
	Data  *matchingResponse `json:"data,omitempty"`
	Error string            `json:"error,omitempty"`
}

func NewBatchResponse(results []usecases.BatchResult) []batchItemResponse {
	items := make([]batchItemResponse, 0, len(results))
	for _, res := range results {
		item := batchItemResponse{Index: res.Index}
		if res.Err != nil {
			item.Error = res.Err.Error()
		} else {
			data := NewMatchingResponse(res.Matching)
			item.Data = &data
		}
		items = append(items, item)
	}
	return items
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
