package interview

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"talent-pulse/internal/config"
)

func TestNewClient_DisabledWithoutURL(t *testing.T) {
	if c := NewClient(config.InterviewConfig{}, nil); c != nil {
		t.Fatalf("expected nil client without base URL, got %v", c)
	}
}

func TestAnalyzeTranscript_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analyze" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"summary": "Collaborative, detail-oriented.",
			"soft_skills": ["listening"],
			"primary_values": ["trust"],
			"risk_factors": [],
			"seniority_assessment": "mid"
		}`))
	}))
	defer srv.Close()

	c := NewClient(config.InterviewConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, nil)
	got, err := c.AnalyzeTranscript(context.Background(), "transcript text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Summary != "Collaborative, detail-oriented." || got.SeniorityAssessment != "mid" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if len(got.PrimaryValues) != 1 || got.PrimaryValues[0] != "trust" {
		t.Fatalf("values lost: %+v", got)
	}
}

func TestAnalyzeTranscript_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(config.InterviewConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, nil)
	if _, err := c.AnalyzeTranscript(context.Background(), "t"); err == nil {
		t.Fatal("expected error on 500")
	}
}

func TestAnalyzeTranscript_EmptyTranscript(t *testing.T) {
	c := NewClient(config.InterviewConfig{BaseURL: "http://localhost:1"}, nil)
	if _, err := c.AnalyzeTranscript(context.Background(), "   "); err == nil {
		t.Fatal("expected error on empty transcript")
	}
}

func TestFallback_Shape(t *testing.T) {
	fb := Fallback()
	if fb.Summary == "" {
		t.Fatal("fallback must carry a generic summary")
	}
	if len(fb.RiskFactors) != 1 || fb.RiskFactors[0] != "Insufficient data" {
		t.Fatalf("fallback risk factor wrong: %+v", fb.RiskFactors)
	}
}
