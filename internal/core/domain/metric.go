package domain

import "time"

// DailyMetric aggregates one advertisement's events for one UTC calendar day.
// Impressions, Clicks and Conversions are raw counters (a click always counts
// as an impression too, so impressions >= clicks). The remaining fields are
// derived from the counters and the advertisement budget and are recomputed
// on every event; they are never set independently. Cost holds the
// discounted spend for the day.
type DailyMetric struct {
	Date        time.Time `json:"date"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Conversions int64     `json:"conversions"`
	CTR         float64   `json:"ctr"`
	CPC         float64   `json:"cpc"`
	CPV         float64   `json:"cpv"`
	CPM         float64   `json:"cpm"`
	Cost        float64   `json:"cost"`
}

// DayOf truncates t to its UTC calendar day. Buckets are keyed by this value
// so that time-of-day and timezone drift cannot split one day into several
// buckets.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
