package services

import (
	"slices"

	"noiratelier/internal/domain"
)

// FAQGroup is one help center section.
type FAQGroup struct {
	Category string            `json:"category"`
	Entries  []domain.FAQEntry `json:"entries"`
}

type FAQService struct {
	entries []domain.FAQEntry
}

func NewFAQService(entries []domain.FAQEntry) *FAQService {
	return &FAQService{entries: slices.Clone(entries)}
}

func (s *FAQService) All() []domain.FAQEntry { return slices.Clone(s.entries) }

// Groups buckets the entries by category. Categories keep the order they
// first appear in, and entries keep their order within a category.
func (s *FAQService) Groups() []FAQGroup {
	idx := map[string]int{}
	out := []FAQGroup{}
	for _, e := range s.entries {
		i, ok := idx[e.Category]
		if !ok {
			i = len(out)
			idx[e.Category] = i
			out = append(out, FAQGroup{Category: e.Category})
		}
		out[i].Entries = append(out[i].Entries, e)
	}
	return out
}
