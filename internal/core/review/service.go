// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"context"
	"log/slog"
	"slices"

	"github.com/taibuivan/steamreviews/internal/core/language"
	"github.com/taibuivan/steamreviews/internal/platform/constants"
	"github.com/taibuivan/steamreviews/internal/platform/validate"
	"github.com/taibuivan/steamreviews/pkg/pagination"
	"github.com/taibuivan/steamreviews/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates ingestion and retrieval of archived reviews.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Ingestion

/*
Ingest validates a Steam-format batch and upserts it for appID.

Description: The whole batch is rejected if any record is invalid or repeats
an earlier record's recommendation ID. Every
failing field is reported with its position, e.g. "reviews[3].language",
so a client can locate the bad record. Valid batches are stored under a
fresh UUIDv7 batch ID.

Returns:
  - *IngestResult: The batch ID and the number of rows written
  - error: VALIDATION_ERROR or storage failures
*/
func (service *Service) Ingest(context context.Context, appID uint32, request IngestRequest) (*IngestResult, error) {
	validator := &validate.Validator{}
	validator.Range(FieldReviews, len(request.Reviews), 1, constants.MaxReviewsPerBatch)
	if validator.HasErrors() {
		return nil, validator.Err()
	}

	reviews := make([]*Review, len(request.Reviews))
	seen := make(map[string]bool, len(request.Reviews))
	for i, wire := range request.Reviews {
		reviews[i] = wire.toReview(appID, i, validator)

		validator.Custom(validate.Path(FieldReviews, i, FieldRecommendationID),
			seen[wire.RecommendationID], "Duplicate recommendation ID in batch")
		seen[wire.RecommendationID] = true
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	batch := uuidv7.NewString()
	stored, err := service.repo.Upsert(context, batch, reviews)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "reviews_ingested",
		slog.Uint64("app_id", uint64(appID)),
		slog.String("batch", batch),
		slog.Int("received", len(reviews)),
		slog.Int("stored", stored),
	)

	return &IngestResult{Batch: batch, Stored: stored}, nil
}

// # Lookups

// ParseFilter builds a [Filter] from "language" query tokens. Any projection
// of a language is accepted. The token "all" clears the filter, matching
// Steam's own language=all.
func ParseFilter(tokens []string) (Filter, error) {
	filter := Filter{}
	validator := &validate.Validator{}

	for _, token := range tokens {
		var lang language.Language
		validator.Language(FieldLanguage, token, &lang)
		if validator.HasErrors() {
			return Filter{}, validator.Err()
		}
		if lang == language.All {
			return Filter{}, nil
		}
		if !slices.Contains(filter.Languages, lang) {
			filter.Languages = append(filter.Languages, lang)
		}
	}
	return filter, nil
}

// List returns one page of an app's reviews, newest first, with the total
// number matching filter.
func (service *Service) List(context context.Context, appID uint32, filter Filter, params pagination.Params) ([]*Review, int, error) {
	return service.repo.List(context, appID, filter, params.Limit, params.Offset())
}

// Summary aggregates an app's archive per language, in catalog order.
// An app with no reviews yields an empty summary, not an error.
func (service *Service) Summary(context context.Context, appID uint32) (*Summary, error) {
	counts, err := service.repo.Summarize(context, appID)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(counts, func(a, b LanguageSummary) int {
		return int(a.Language) - int(b.Language)
	})

	summary := &Summary{AppID: appID, Languages: counts}
	for _, c := range counts {
		summary.Total += c.Total
		summary.Positive += c.Positive
	}
	if summary.Languages == nil {
		summary.Languages = []LanguageSummary{}
	}
	return summary, nil
}
