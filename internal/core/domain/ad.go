package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status describes the lifecycle state of an advertisement. Transitions to
// StatusActive are performed by the scheduling pass or by an explicit update.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusScheduled Status = "scheduled"
	StatusActive    Status = "active"
	StatusEnded     Status = "ended"
)

// Advertisement is the aggregate root of the ads engine. It exclusively owns
// its per-day metric history: Result holds at most one DailyMetric per UTC
// calendar day, appended when a day receives its first event and mutated in
// place for the current day. Score is the current performance score and is
// only written by event processing.
type Advertisement struct {
	ID            uuid.UUID     `json:"id"`
	UserID        string        `json:"user_id"`
	Title         string        `json:"title"`
	Budget        float64       `json:"budget"`
	Currency      string        `json:"currency"`
	Status        Status        `json:"status"`
	ScheduleStart time.Time     `json:"schedule_start"`
	Score         float64       `json:"score"`
	Result        []DailyMetric `json:"result"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// BucketFor returns the metric bucket for the calendar day containing t,
// creating and appending a zeroed bucket when that day has none yet. Calling
// it twice for the same day yields the same entry. The returned pointer
// aliases the Result slice; the change becomes durable when the owning
// advertisement is saved.
func (a *Advertisement) BucketFor(t time.Time) *DailyMetric {
	day := DayOf(t)
	for i := range a.Result {
		if DayOf(a.Result[i].Date).Equal(day) {
			return &a.Result[i]
		}
	}
	a.Result = append(a.Result, DailyMetric{Date: day})
	return &a.Result[len(a.Result)-1]
}

// Latest returns the most recent bucket by date, or nil when the history is
// empty.
func (a *Advertisement) Latest() *DailyMetric {
	var latest *DailyMetric
	for i := range a.Result {
		if latest == nil || a.Result[i].Date.After(latest.Date) {
			latest = &a.Result[i]
		}
	}
	return latest
}

// Totals aggregates the full metric history: interactions is the sum of
// clicks and conversions over every bucket, cost the sum of every bucket's
// cost.
func (a *Advertisement) Totals() (interactions int64, cost float64) {
	for i := range a.Result {
		interactions += a.Result[i].Clicks + a.Result[i].Conversions
		cost += a.Result[i].Cost
	}
	return interactions, cost
}
