package interview

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"talent-pulse/internal/config"
	"talent-pulse/internal/domain/person"
)

// Client calls the external transcript-analysis service. The engine
// never sees an error from here: callers substitute Fallback() and
// carry on.
type Client interface {
	AnalyzeTranscript(ctx context.Context, transcript string) (person.KarmaData, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

type analyzeRequest struct {
	Transcript string `json:"transcript"`
}

// analyzeResponse mirrors the service's fixed result shape.
type analyzeResponse struct {
	Summary             string   `json:"summary"`
	SoftSkills          []string `json:"soft_skills"`
	PrimaryValues       []string `json:"primary_values"`
	RiskFactors         []string `json:"risk_factors"`
	SeniorityAssessment string   `json:"seniority_assessment"`
}

// NewClient returns nil when no base URL is configured; callers treat
// a nil client as permanently unavailable.
func NewClient(cfg config.InterviewConfig, logger *log.Logger) Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *httpClient) AnalyzeTranscript(ctx context.Context, transcript string) (person.KarmaData, error) {
	if c == nil || c.client == nil {
		return person.KarmaData{}, errors.New("nil interview client")
	}
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return person.KarmaData{}, errors.New("empty transcript")
	}

	endpoint := c.baseURL + "/analyze"
	b, err := json.Marshal(analyzeRequest{Transcript: transcript})
	if err != nil {
		return person.KarmaData{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return person.KarmaData{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return person.KarmaData{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		err := fmt.Errorf("interview analysis failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(rb)))
		if c.logger != nil {
			c.logger.Printf("[Interview] AnalyzeTranscript error endpoint=%s status=%d", endpoint, resp.StatusCode)
		}
		return person.KarmaData{}, err
	}

	var out analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return person.KarmaData{}, fmt.Errorf("decode interview analysis: %w", err)
	}

	return person.KarmaData{
		Summary:             out.Summary,
		SeniorityAssessment: out.SeniorityAssessment,
		SoftSkills:          out.SoftSkills,
		PrimaryValues:       out.PrimaryValues,
		RiskFactors:         out.RiskFactors,
	}, nil
}

// Fallback is the documented substitute when the analysis call fails:
// a generic summary with an insufficient-data risk factor, safe for
// every downstream consumer.
func Fallback() person.KarmaData {
	return person.KarmaData{
		Summary:     "Interview recorded; automated analysis was unavailable.",
		RiskFactors: []string{"Insufficient data"},
	}
}
