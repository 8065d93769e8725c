// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"github.com/taibuivan/steamreviews/internal/core/language"
	"github.com/taibuivan/steamreviews/internal/core/scalar"
	"github.com/taibuivan/steamreviews/internal/platform/validate"
)

// IngestRequest is the body of an ingest call: the "reviews" array of a
// Steam appreviews response, encoded as JSON or msgpack.
type IngestRequest struct {
	Reviews []WireReview `json:"reviews" msgpack:"reviews"`
}

// WireReview is a review exactly as Steam sends it. Language stays a string
// until [WireReview.toReview] so a bad value can be reported with its
// position in the batch.
type WireReview struct {
	RecommendationID         string               `json:"recommendationid" msgpack:"recommendationid"`
	Author                   Author               `json:"author" msgpack:"author"`
	Language                 string               `json:"language" msgpack:"language"`
	Text                     string               `json:"review" msgpack:"review"`
	TimestampCreated         scalar.UnixTimestamp `json:"timestamp_created" msgpack:"timestamp_created"`
	TimestampUpdated         scalar.UnixTimestamp `json:"timestamp_updated" msgpack:"timestamp_updated"`
	VotedUp                  bool                 `json:"voted_up" msgpack:"voted_up"`
	VotesUp                  scalar.Count         `json:"votes_up" msgpack:"votes_up"`
	VotesFunny               scalar.Count         `json:"votes_funny" msgpack:"votes_funny"`
	CommentCount             scalar.Count         `json:"comment_count" msgpack:"comment_count"`
	SteamPurchase            bool                 `json:"steam_purchase" msgpack:"steam_purchase"`
	ReceivedForFree          bool                 `json:"received_for_free" msgpack:"received_for_free"`
	WrittenDuringEarlyAccess bool                 `json:"written_during_early_access" msgpack:"written_during_early_access"`
}

// toReview validates record number index of the batch into validator and
// returns the converted review. The result is only meaningful when the
// validator holds no errors.
func (w WireReview) toReview(appID uint32, index int, validator *validate.Validator) *Review {
	path := func(field string) string { return validate.Path(FieldReviews, index, field) }

	var lang language.Language
	validator.
		Digits(path(FieldRecommendationID), w.RecommendationID).
		Digits(path(FieldSteamID), w.Author.SteamID).
		Language(path(FieldLanguage), w.Language, &lang).
		MaxLen(path(FieldReviewText), w.Text, MaxTextLength)

	return &Review{
		RecommendationID:         w.RecommendationID,
		AppID:                    appID,
		Author:                   w.Author,
		Language:                 lang,
		Text:                     w.Text,
		TimestampCreated:         w.TimestampCreated,
		TimestampUpdated:         w.TimestampUpdated,
		VotedUp:                  w.VotedUp,
		VotesUp:                  w.VotesUp,
		VotesFunny:               w.VotesFunny,
		CommentCount:             w.CommentCount,
		SteamPurchase:            w.SteamPurchase,
		ReceivedForFree:          w.ReceivedForFree,
		WrittenDuringEarlyAccess: w.WrittenDuringEarlyAccess,
	}
}

// ToWire converts r back into Steam's shape. It is the inverse of the
// conversion done on ingest.
func (r *Review) ToWire() WireReview {
	return WireReview{
		RecommendationID:         r.RecommendationID,
		Author:                   r.Author,
		Language:                 r.Language.WireForm(),
		Text:                     r.Text,
		TimestampCreated:         r.TimestampCreated,
		TimestampUpdated:         r.TimestampUpdated,
		VotedUp:                  r.VotedUp,
		VotesUp:                  r.VotesUp,
		VotesFunny:               r.VotesFunny,
		CommentCount:             r.CommentCount,
		SteamPurchase:            r.SteamPurchase,
		ReceivedForFree:          r.ReceivedForFree,
		WrittenDuringEarlyAccess: r.WrittenDuringEarlyAccess,
	}
}
