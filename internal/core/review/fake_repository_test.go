package review

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"
)

// memoryRepository is an in-memory [Repository] for tests.
type memoryRepository struct {
	mu      sync.Mutex
	reviews map[string]*Review
	batches map[string]string
	err     error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		reviews: make(map[string]*Review),
		batches: make(map[string]string),
	}
}

var errStoreDown = errors.New("store down")

func (m *memoryRepository) Upsert(_ context.Context, batch string, reviews []*Review) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	for _, r := range reviews {
		copied := *r
		m.reviews[r.RecommendationID] = &copied
		m.batches[r.RecommendationID] = batch
	}
	return len(reviews), nil
}

func (m *memoryRepository) List(_ context.Context, appID uint32, filter Filter, limit, offset int) ([]*Review, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, 0, m.err
	}

	var matched []*Review
	for _, r := range m.reviews {
		if r.AppID != appID {
			continue
		}
		if len(filter.Languages) > 0 && !slices.Contains(filter.Languages, r.Language) {
			continue
		}
		matched = append(matched, r)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].TimestampCreated != matched[j].TimestampCreated {
			return matched[i].TimestampCreated > matched[j].TimestampCreated
		}
		return matched[i].RecommendationID > matched[j].RecommendationID
	})

	total := len(matched)
	if offset >= total {
		return []*Review{}, total, nil
	}
	end := min(offset+limit, total)
	return matched[offset:end], total, nil
}

func (m *memoryRepository) Summarize(_ context.Context, appID uint32) ([]LanguageSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	byLanguage := make(map[int]*LanguageSummary)
	for _, r := range m.reviews {
		if r.AppID != appID {
			continue
		}
		c, ok := byLanguage[int(r.Language)]
		if !ok {
			c = &LanguageSummary{Language: r.Language}
			byLanguage[int(r.Language)] = c
		}
		c.Total++
		if r.VotedUp {
			c.Positive++
		}
	}

	// Reverse catalog order, so the service's sort is exercised.
	counts := make([]LanguageSummary, 0, len(byLanguage))
	for _, c := range byLanguage {
		counts = append(counts, *c)
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Language > counts[j].Language })
	return counts, nil
}
