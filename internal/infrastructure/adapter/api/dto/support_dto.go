package dto

// SupportResponse represents the heart counter plus the caller's own state
type SupportResponse struct {
	Count      int64 `json:"count"`
	HasHearted bool  `json:"hasHearted"`
}
