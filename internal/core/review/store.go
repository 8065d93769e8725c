// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import "context"

// # Review Data Access

// Repository defines the data access contract for the review archive.
type Repository interface {

	/*
		Upsert stores reviews under batch, replacing any stored review with the
		same recommendation ID.

		Returns:
		  - int: Rows written
		  - error: Storage or constraint failures
	*/
	Upsert(context context.Context, batch string, reviews []*Review) (int, error)

	/*
		List returns a page of an app's reviews, newest first, and the total
		count matching filter.
	*/
	List(context context.Context, appID uint32, filter Filter, limit, offset int) ([]*Review, int, error)

	// Summarize counts an app's reviews per language.
	Summarize(context context.Context, appID uint32) ([]LanguageSummary, error)
}
