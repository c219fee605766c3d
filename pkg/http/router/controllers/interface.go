package controllers

import (
	"context"

	"github.com/lintang-b-s/rankmatch/pkg/http/usecases"
	"github.com/lintang-b-s/rankmatch/pkg/matching"
)

type MatchingService interface {
	FindMatching(ctx context.Context, instance usecases.MatchingInstance) (*matching.Matching, error)
	FindMatchingBatch(ctx context.Context, instances []usecases.MatchingInstance) []usecases.BatchResult
}
