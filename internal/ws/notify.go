package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

type AssessmentScoredEvent struct {
	Type        string `json:"type"`
	PersonID    string `json:"person_id"`
	ProfileCode string `json:"profile_code"`
	Timestamp   string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

type AnalyticsRefreshedEvent struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
}

// NotifyAnalyticsRefreshed tells dashboards their cached analytics
// views are stale.
func NotifyAnalyticsRefreshed() {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := AnalyticsRefreshedEvent{
		Type:      "analytics_refreshed",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}

func NotifyAssessmentScored(personID, profileCode string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}
	if personID == "" {
		return
	}

	evt := AssessmentScoredEvent{
		Type:        "assessment_scored",
		PersonID:    personID,
		ProfileCode: profileCode,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
