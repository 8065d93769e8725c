// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package review archives Steam user reviews per app.

Reviews arrive in the shape of Steam's appreviews response, are validated and
converted into typed records, and are stored in Postgres keyed by their
recommendation ID. Re-ingesting a review replaces the stored copy.
*/
package review

import (
	"github.com/taibuivan/steamreviews/internal/core/language"
	"github.com/taibuivan/steamreviews/internal/core/scalar"
)

// # Domain Entities

// Author is the reviewer as Steam reports them at the time of the query.
type Author struct {
	SteamID              string               `json:"steamid" msgpack:"steamid"`
	NumGamesOwned        scalar.Count         `json:"num_games_owned" msgpack:"num_games_owned"`
	NumReviews           scalar.Count         `json:"num_reviews" msgpack:"num_reviews"`
	PlaytimeForever      scalar.Minutes       `json:"playtime_forever" msgpack:"playtime_forever"`
	PlaytimeLastTwoWeeks scalar.Minutes       `json:"playtime_last_two_weeks" msgpack:"playtime_last_two_weeks"`
	PlaytimeAtReview     scalar.Minutes       `json:"playtime_at_review" msgpack:"playtime_at_review"`
	LastPlayed           scalar.UnixTimestamp `json:"last_played" msgpack:"last_played"`
}

// Review is one archived recommendation.
type Review struct {
	RecommendationID         string               `json:"recommendationid" msgpack:"recommendationid"`
	AppID                    uint32               `json:"appid" msgpack:"appid"`
	Author                   Author               `json:"author" msgpack:"author"`
	Language                 language.Language    `json:"language" msgpack:"language"`
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

// LanguageSummary counts the reviews written in one language.
type LanguageSummary struct {
	Language language.Language `json:"language" msgpack:"language"`
	Total    int               `json:"total" msgpack:"total"`
	Positive int               `json:"positive" msgpack:"positive"`
}

// Summary aggregates the archive of one app.
type Summary struct {
	AppID     uint32            `json:"appid" msgpack:"appid"`
	Total     int               `json:"total" msgpack:"total"`
	Positive  int               `json:"positive" msgpack:"positive"`
	Languages []LanguageSummary `json:"languages" msgpack:"languages"`
}

// IngestResult reports what one ingest call stored.
type IngestResult struct {
	Batch  string `json:"batch" msgpack:"batch"`
	Stored int    `json:"stored" msgpack:"stored"`
}

// # Filters

// Filter narrows a review listing. An empty Languages slice matches every
// language.
type Filter struct {
	Languages []language.Language
}

// WireForms returns the filter's languages as stored in the database.
func (f Filter) WireForms() []string {
	forms := make([]string, len(f.Languages))
	for i, l := range f.Languages {
		forms[i] = l.WireForm()
	}
	return forms
}

// # Field Names

const (
	FieldReviews          = "reviews"
	FieldLanguage         = "language"
	FieldRecommendationID = "recommendationid"
	FieldSteamID          = "author.steamid"
	FieldReviewText       = "review"
)

// MaxTextLength bounds the review body. Steam caps reviews well below it.
const MaxTextLength = 16000
