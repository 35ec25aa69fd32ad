package response

import (
	"time"

	"slotbook/internal/usecase/queries"
)

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

type OccurrencePreviewResponse struct {
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
}

func FromOccurrencePreviews(previews []queries.OccurrencePreview) []OccurrencePreviewResponse {
	out := make([]OccurrencePreviewResponse, len(previews))
	for i, p := range previews {
		out[i] = OccurrencePreviewResponse{StartsAt: p.StartsAt, EndsAt: p.EndsAt}
	}
	return out
}
