package domain

// TrackProgress is the derived state of one purchased verification track
type TrackProgress struct {
	Track     string `json:"track"`
	Steps     int    `json:"steps"`   // completed milestones, 0..4
	Percent   int    `json:"percent"` // Steps / 4 * 100
	Completed bool   `json:"completed"`
}

// VerificationProgress aggregates track progress across all purchased
// products. Percent is zero when nothing is purchased.
type VerificationProgress struct {
	Tracks  []TrackProgress `json:"tracks"`
	Percent int             `json:"percent"`
}
