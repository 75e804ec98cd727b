package model

import "time"

// PassResult bundles the three outputs of one processing pass.
// Profiles and Journeys are ordered by first sighting of each identity
// key, which makes repeated passes over the same input identical.
type PassResult struct {
	ID         string            `json:"id"`
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt time.Time         `json:"finished_at"`
	Profiles   []CustomerProfile `json:"profiles"`
	Journeys   []CustomerJourney `json:"journeys"`
	Quality    QualityReport     `json:"quality"`
}

// PassSummary is the stored metadata of a pass, without its result sets.
type PassSummary struct {
	ID           string    `json:"id"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
	ProfileCount int       `json:"profile_count"`
	JourneyCount int       `json:"journey_count"`
}
