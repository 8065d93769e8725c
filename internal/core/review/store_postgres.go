// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/steamreviews/internal/platform/database/schema"
	"github.com/taibuivan/steamreviews/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// upsertQuery inserts one review, overwriting every column but the key on
// conflict.
var upsertQuery = func() string {
	t := schema.SteamReview
	columns := t.Columns()

	placeholders := make([]string, len(columns))
	updates := make([]string, 0, len(columns))
	for i, column := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		if column != t.RecommendationID {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", column, column))
		}
	}
	updates = append(updates, t.IngestedAt+" = now()")

	return fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s`,
		t.Table, strings.Join(columns, ", "), strings.Join(placeholders, ", "),
		t.RecommendationID, strings.Join(updates, ", "))
}()

// upsertArgs lists the values of r in [schema.SteamReviewTable.Columns] order.
func upsertArgs(batch string, r *Review) []any {
	return []any{
		r.RecommendationID, int64(r.AppID), r.Language.WireForm(), r.Text,
		r.VotedUp, int64(r.VotesUp), int64(r.VotesFunny), int64(r.CommentCount),
		r.SteamPurchase, r.ReceivedForFree, r.WrittenDuringEarlyAccess,
		r.TimestampCreated.Int64(), r.TimestampUpdated.Int64(),
		r.Author.SteamID, int64(r.Author.NumGamesOwned), int64(r.Author.NumReviews),
		int64(r.Author.PlaytimeForever), int64(r.Author.PlaytimeLastTwoWeeks),
		int64(r.Author.PlaytimeAtReview), r.Author.LastPlayed.Int64(),
		batch,
	}
}

/*
Upsert writes the whole batch in one round trip with a [pgx.Batch].

Description: Statements run in queue order inside the implicit transaction
pgx opens for a batch, so a failing row rolls back the rest.
*/
func (repository *PostgresRepository) Upsert(context context.Context, batch string, reviews []*Review) (int, error) {
	pgBatch := &pgx.Batch{}
	for _, r := range reviews {
		pgBatch.Queue(upsertQuery, upsertArgs(batch, r)...)
	}

	results := repository.db.SendBatch(context, pgBatch)
	defer results.Close()

	stored := 0
	for range reviews {
		tag, err := results.Exec()
		if err != nil {
			return 0, dberr.Wrap(err, "upsert_review")
		}
		stored += int(tag.RowsAffected())
	}

	if err := results.Close(); err != nil {
		return 0, dberr.Wrap(err, "upsert_review_batch")
	}
	return stored, nil
}

// selectColumns is the column list scanned by [scanReview].
var selectColumns = strings.Join([]string{
	schema.SteamReview.RecommendationID, schema.SteamReview.AppID,
	schema.SteamReview.Language, schema.SteamReview.Text,
	schema.SteamReview.VotedUp, schema.SteamReview.VotesUp,
	schema.SteamReview.VotesFunny, schema.SteamReview.CommentCount,
	schema.SteamReview.SteamPurchase, schema.SteamReview.ReceivedForFree,
	schema.SteamReview.EarlyAccess,
	schema.SteamReview.CreatedAt, schema.SteamReview.UpdatedAt,
	schema.SteamReview.AuthorSteamID, schema.SteamReview.AuthorGamesOwned,
	schema.SteamReview.AuthorReviews,
	schema.SteamReview.PlaytimeForever, schema.SteamReview.PlaytimeTwoWeeks,
	schema.SteamReview.PlaytimeAtReview, schema.SteamReview.LastPlayed,
}, ", ")

func scanReview(row pgx.Row, r *Review, extra ...any) error {
	var appID int64

	dest := []any{
		&r.RecommendationID, &appID, &r.Language, &r.Text,
		&r.VotedUp, &r.VotesUp, &r.VotesFunny, &r.CommentCount,
		&r.SteamPurchase, &r.ReceivedForFree, &r.WrittenDuringEarlyAccess,
		&r.TimestampCreated, &r.TimestampUpdated,
		&r.Author.SteamID, &r.Author.NumGamesOwned, &r.Author.NumReviews,
		&r.Author.PlaytimeForever, &r.Author.PlaytimeLastTwoWeeks,
		&r.Author.PlaytimeAtReview, &r.Author.LastPlayed,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return err
	}

	// The appid column is bigint with a CHECK holding it in uint32 range.
	r.AppID = uint32(appID)
	return nil
}

/*
List returns a page of reviews and the total count.

Description: Uses COUNT(*) OVER() to get the total in the same query. The
language filter is passed as a text array and matched with ANY.
*/
func (repository *PostgresRepository) List(context context.Context, appID uint32, filter Filter, limit, offset int) ([]*Review, int, error) {
	t := schema.SteamReview

	var queryBuilder strings.Builder
	args := []any{int64(appID)}
	argID := 2

	queryBuilder.WriteString(fmt.Sprintf(`SELECT %s, COUNT(*) OVER() AS total_count FROM %s WHERE %s = $1`,
		selectColumns, t.Table, t.AppID))

	if len(filter.Languages) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = ANY($%d)", t.Language, argID))
		args = append(args, filter.WireForms())
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s DESC, %s DESC LIMIT $%d OFFSET $%d",
		t.CreatedAt, t.RecommendationID, argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_reviews")
	}
	defer rows.Close()

	reviews := make([]*Review, 0, limit)
	total := 0
	for rows.Next() {
		r := &Review{}
		if err := scanReview(rows, r, &total); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_review")
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_reviews_rows")
	}

	return reviews, total, nil
}

// Summarize groups an app's reviews by language.
func (repository *PostgresRepository) Summarize(context context.Context, appID uint32) ([]LanguageSummary, error) {
	t := schema.SteamReview
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*), COUNT(*) FILTER (WHERE %s)
		FROM %s
		WHERE %s = $1
		GROUP BY %s
	`, t.Language, t.VotedUp, t.Table, t.AppID, t.Language)

	rows, err := repository.db.Query(context, query, int64(appID))
	if err != nil {
		return nil, dberr.Wrap(err, "summarize_reviews")
	}
	defer rows.Close()

	counts := make([]LanguageSummary, 0)
	for rows.Next() {
		var c LanguageSummary
		if err := rows.Scan(&c.Language, &c.Total, &c.Positive); err != nil {
			return nil, dberr.Wrap(err, "scan_review_summary")
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "summarize_reviews_rows")
	}

	return counts, nil
}
