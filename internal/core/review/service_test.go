package review

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/steamreviews/internal/core/language"
	"github.com/taibuivan/steamreviews/internal/core/scalar"
	"github.com/taibuivan/steamreviews/internal/platform/apperr"
	"github.com/taibuivan/steamreviews/internal/platform/validate"
	"github.com/taibuivan/steamreviews/pkg/pagination"
)

const testAppID = 440

func newTestService() (*Service, *memoryRepository) {
	repo := newMemoryRepository()
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func wireReview(id int, lang string, created int64, votedUp bool) WireReview {
	return WireReview{
		RecommendationID: fmt.Sprintf("%d", 100000+id),
		Author: Author{
			SteamID:         "76561197960287930",
			PlaytimeForever: scalar.Minutes(120),
			LastPlayed:      scalar.UnixTimestamp(created),
		},
		Language:         lang,
		Text:             "review text",
		TimestampCreated: scalar.UnixTimestamp(created),
		TimestampUpdated: scalar.UnixTimestamp(created),
		VotedUp:          votedUp,
	}
}

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	fields := make([]string, len(appErr.Details))
	for i, detail := range appErr.Details {
		fields[i] = detail.Field
	}
	return fields
}

func TestIngest_StoresBatch(t *testing.T) {
	service, repo := newTestService()

	result, err := service.Ingest(context.Background(), testAppID, IngestRequest{Reviews: []WireReview{
		wireReview(1, "english", 1700000000, true),
		wireReview(2, "schinese", 1700000100, false),
	}})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Stored)
	assert.NotEmpty(t, result.Batch)

	stored := repo.reviews["100002"]
	require.NotNil(t, stored)
	assert.Equal(t, language.SimplifiedChinese, stored.Language)
	assert.Equal(t, uint32(testAppID), stored.AppID)
	assert.Equal(t, result.Batch, repo.batches["100001"])
}

func TestIngest_AcceptsAnyProjection(t *testing.T) {
	service, repo := newTestService()

	_, err := service.Ingest(context.Background(), testAppID, IngestRequest{Reviews: []WireReview{
		wireReview(1, "ja", 1, true),
		wireReview(2, "Deutsch", 2, true),
	}})
	require.NoError(t, err)
	assert.Equal(t, language.Japanese, repo.reviews["100001"].Language)
	assert.Equal(t, language.German, repo.reviews["100002"].Language)
}

func TestIngest_RejectsEmptyAndOversizedBatches(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Ingest(context.Background(), testAppID, IngestRequest{})
	assert.Equal(t, []string{FieldReviews}, fieldsOf(t, err))

	oversized := make([]WireReview, 101)
	for i := range oversized {
		oversized[i] = wireReview(i, "english", 1, true)
	}
	_, err = service.Ingest(context.Background(), testAppID, IngestRequest{Reviews: oversized})
	assert.Equal(t, []string{FieldReviews}, fieldsOf(t, err))
}

func TestIngest_ReportsRecordPosition(t *testing.T) {
	service, repo := newTestService()

	bad := wireReview(2, "klingon", 1, true)
	bad.Author.SteamID = "not-a-number"

	_, err := service.Ingest(context.Background(), testAppID, IngestRequest{Reviews: []WireReview{
		wireReview(1, "english", 1, true),
		bad,
	}})
	assert.Equal(t, []string{"reviews[1].author.steamid", "reviews[1].language"}, fieldsOf(t, err))
	assert.Empty(t, repo.reviews, "an invalid batch stores nothing")
}

func TestIngest_LanguageErrorDoesNotEchoValue(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Ingest(context.Background(), testAppID, IngestRequest{Reviews: []WireReview{
		wireReview(1, "ENGLISH", 1, true),
	}})
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "reviews[0].language", appErr.Details[0].Field)
	assert.NotContains(t, appErr.Details[0].Message, "ENGLISH")
}

func TestIngest_RequiresRecommendationID(t *testing.T) {
	service, _ := newTestService()

	missing := wireReview(1, "english", 1, true)
	missing.RecommendationID = ""

	_, err := service.Ingest(context.Background(), testAppID, IngestRequest{Reviews: []WireReview{missing}})
	assert.Equal(t, []string{"reviews[0].recommendationid"}, fieldsOf(t, err))
}

func TestIngest_RejectsDuplicateRecommendationID(t *testing.T) {
	service, repo := newTestService()

	_, err := service.Ingest(context.Background(), testAppID, IngestRequest{Reviews: []WireReview{
		wireReview(1, "english", 1, true),
		wireReview(2, "english", 2, true),
		wireReview(1, "french", 3, false),
	}})
	assert.Equal(t, []string{"reviews[2].recommendationid"}, fieldsOf(t, err))
	assert.Empty(t, repo.reviews)
}

func TestIngest_BatchSizeBounds(t *testing.T) {
	service, _ := newTestService()

	full := make([]WireReview, 100)
	for i := range full {
		full[i] = wireReview(i, "english", int64(i), true)
	}
	result, err := service.Ingest(context.Background(), testAppID, IngestRequest{Reviews: full})
	require.NoError(t, err)
	assert.Equal(t, 100, result.Stored)
}

func TestIngest_StoreFailure(t *testing.T) {
	service, repo := newTestService()
	repo.err = errStoreDown

	_, err := service.Ingest(context.Background(), testAppID, IngestRequest{Reviews: []WireReview{
		wireReview(1, "english", 1, true),
	}})
	assert.ErrorIs(t, err, errStoreDown)
}

func TestParseFilter(t *testing.T) {
	filter, err := ParseFilter([]string{"english", "zh-CN", "english"})
	require.NoError(t, err)
	assert.Equal(t, []language.Language{language.English, language.SimplifiedChinese}, filter.Languages)
	assert.Equal(t, []string{"english", "schinese"}, filter.WireForms())

	filter, err = ParseFilter([]string{"english", "all"})
	require.NoError(t, err)
	assert.Empty(t, filter.Languages, "all clears the filter")

	filter, err = ParseFilter(nil)
	require.NoError(t, err)
	assert.Empty(t, filter.Languages)

	_, err = ParseFilter([]string{"english", "elvish"})
	assert.Equal(t, []string{FieldLanguage}, fieldsOf(t, err))
}

func TestList_NewestFirstAndFiltered(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	_, err := service.Ingest(ctx, testAppID, IngestRequest{Reviews: []WireReview{
		wireReview(1, "english", 100, true),
		wireReview(2, "french", 300, true),
		wireReview(3, "english", 200, false),
	}})
	require.NoError(t, err)

	reviews, total, err := service.List(ctx, testAppID, Filter{}, pagination.Params{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, reviews, 2)
	assert.Equal(t, "100002", reviews[0].RecommendationID)
	assert.Equal(t, "100003", reviews[1].RecommendationID)

	reviews, total, err = service.List(ctx, testAppID,
		Filter{Languages: []language.Language{language.English}},
		pagination.Params{Page: 2, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, reviews, 1)
	assert.Equal(t, "100001", reviews[0].RecommendationID)
}

func TestSummary(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	_, err := service.Ingest(ctx, testAppID, IngestRequest{Reviews: []WireReview{
		wireReview(1, "english", 1, true),
		wireReview(2, "english", 2, false),
		wireReview(3, "brazilian", 3, true),
		wireReview(4, "arabic", 4, true),
	}})
	require.NoError(t, err)

	summary, err := service.Summary(ctx, testAppID)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 3, summary.Positive)
	assert.Equal(t, []LanguageSummary{
		{Language: language.Arabic, Total: 1, Positive: 1},
		{Language: language.English, Total: 2, Positive: 1},
		{Language: language.PortugueseBrazilian, Total: 1, Positive: 1},
	}, summary.Languages)
}

func TestSummary_EmptyApp(t *testing.T) {
	service, _ := newTestService()

	summary, err := service.Summary(context.Background(), 570)
	require.NoError(t, err)
	assert.Zero(t, summary.Total)
	assert.NotNil(t, summary.Languages)
	assert.Empty(t, summary.Languages)
}

func TestToWire_InvertsIngest(t *testing.T) {
	wire := wireReview(7, "koreana", 42, true)
	wire.VotesFunny = 3

	validator := &validate.Validator{}
	r := wire.toReview(testAppID, 0, validator)
	require.False(t, validator.HasErrors())
	assert.Equal(t, wire, r.ToWire())
}
