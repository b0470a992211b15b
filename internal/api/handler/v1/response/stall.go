package response

import "github.com/tongmap/tong-api/internal/domain"

// StallListResponse carries a stall collection plus whether it came
// from the built-in sample dataset rather than the store.
type StallListResponse struct {
	Stalls []domain.Stall `json:"stalls"`
	Total  int            `json:"total"`
	Sample bool           `json:"sample"`
}

type TranslationsResponse struct {
	Locale       string            `json:"locale"`
	Translations map[string]string `json:"translations"`
}

type DivisionsResponse struct {
	Divisions []domain.Division `json:"divisions"`
}
