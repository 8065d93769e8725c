package schema

// SteamReviewTable represents the 'steam.review' table.
//
// CreatedAt, UpdatedAt and LastPlayed hold Unix seconds exactly as Steam
// reports them; playtime columns hold minutes.
type SteamReviewTable struct {
	Table            string
	RecommendationID string
	AppID            string
	Language         string
	Text             string
	VotedUp          string
	VotesUp          string
	VotesFunny       string
	CommentCount     string
	SteamPurchase    string
	ReceivedForFree  string
	EarlyAccess      string
	CreatedAt        string
	UpdatedAt        string
	AuthorSteamID    string
	AuthorGamesOwned string
	AuthorReviews    string
	PlaytimeForever  string
	PlaytimeTwoWeeks string
	PlaytimeAtReview string
	LastPlayed       string
	IngestBatch      string
	IngestedAt       string
}

// SteamReview is the schema definition for steam.review
var SteamReview = SteamReviewTable{
	Table:            "steam.review",
	RecommendationID: "recommendationid",
	AppID:            "appid",
	Language:         "language",
	Text:             "reviewtext",
	VotedUp:          "votedup",
	VotesUp:          "votesup",
	VotesFunny:       "votesfunny",
	CommentCount:     "commentcount",
	SteamPurchase:    "steampurchase",
	ReceivedForFree:  "receivedforfree",
	EarlyAccess:      "earlyaccess",
	CreatedAt:        "createdat",
	UpdatedAt:        "updatedat",
	AuthorSteamID:    "authorsteamid",
	AuthorGamesOwned: "authorgamesowned",
	AuthorReviews:    "authorreviews",
	PlaytimeForever:  "playtimeforever",
	PlaytimeTwoWeeks: "playtimetwoweeks",
	PlaytimeAtReview: "playtimeatreview",
	LastPlayed:       "lastplayed",
	IngestBatch:      "ingestbatch",
	IngestedAt:       "ingestedat",
}

// Columns lists the columns written on ingest, in insert order.
func (t SteamReviewTable) Columns() []string {
	return []string{
		t.RecommendationID, t.AppID, t.Language, t.Text,
		t.VotedUp, t.VotesUp, t.VotesFunny, t.CommentCount,
		t.SteamPurchase, t.ReceivedForFree, t.EarlyAccess,
		t.CreatedAt, t.UpdatedAt,
		t.AuthorSteamID, t.AuthorGamesOwned, t.AuthorReviews,
		t.PlaytimeForever, t.PlaytimeTwoWeeks, t.PlaytimeAtReview, t.LastPlayed,
		t.IngestBatch,
	}
}
