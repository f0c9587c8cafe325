package model

import "time"

// Analytics event types recorded by the API.
const (
	EventTypeVisit    = "visit"
	EventTypeDownload = "download"
	EventTypeContact  = "contact"
)

// AnalyticsEvent is an append-only usage event. Timestamp is stamped by
// the repository on insert; events are never updated or deleted.
type AnalyticsEvent struct {
	EventType string    `json:"event_type" bson:"event_type"`
	Page      string    `json:"page,omitempty" bson:"page,omitempty"`
	IPAddress string    `json:"ip_address,omitempty" bson:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty" bson:"user_agent,omitempty"`
	Referrer  string    `json:"referrer,omitempty" bson:"referrer,omitempty"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// AnalyticsCreate is the client-supplied part of a visit event; request
// metadata (IP, user agent, referrer) is filled in by the handler.
type AnalyticsCreate struct {
	EventType string `json:"event_type" validate:"required"`
	Page      string `json:"page"`
}

// RecentVisit is a visit event reduced to the fields shown in the stats
// aggregate. Missing page defaults to "/", missing IP to "unknown".
type RecentVisit struct {
	Page      string    `json:"page" bson:"page"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	IPAddress string    `json:"ip_address" bson:"ip_address"`
}

// PageCount is one entry of the top-pages ranking.
type PageCount struct {
	Page   string `json:"page" bson:"page"`
	Visits int64  `json:"visits" bson:"visits"`
}

// AnalyticsStats is the aggregate returned by the stats operation. On any
// store fault the zero value is returned instead of an error.
type AnalyticsStats struct {
	TotalVisits    int64         `json:"total_visits"`
	TotalDownloads int64         `json:"total_downloads"`
	TotalContacts  int64         `json:"total_contacts"`
	RecentVisits   []RecentVisit `json:"recent_visits"`
	TopPages       []PageCount   `json:"top_pages"`
}
