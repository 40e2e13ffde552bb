package insight

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/floodhub/wardwatch/internal/ward"
	"github.com/floodhub/wardwatch/internal/weather"
)

func modelServer(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if status >= 400 {
			http.Error(w, `{"error":"nope"}`, status)
			return
		}
		reply := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		}
		json.NewEncoder(w).Encode(reply)
	}))
}

func TestWardInsights(t *testing.T) {
	content := `{"insights":[{"title":"Clear storm drains","subtitle":"Before monsoon peak","severity":"HIGH"}]}`
	srv := modelServer(t, content, http.StatusOK)
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "key", "test-model")
	set, err := c.WardInsights(context.Background(), ward.DistrictRecord{ID: "1", Name: "Narela"}, nil)
	if err != nil {
		t.Fatalf("expected insights, got %v", err)
	}
	if len(set.Insights) != 1 || set.Insights[0].Severity != "HIGH" {
		t.Errorf("unexpected insight set: %+v", set)
	}
}

func TestWardInsightsUnparseableReply(t *testing.T) {
	srv := modelServer(t, "Sure! Here are some insights:\n1. ...", http.StatusOK)
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "key", "test-model")
	_, err := c.WardInsights(context.Background(), ward.DistrictRecord{ID: "1"}, nil)
	if !errors.Is(err, ErrNoInsight) {
		t.Errorf("expected ErrNoInsight on prose reply, got %v", err)
	}
}

func TestWardInsightsModelError(t *testing.T) {
	srv := modelServer(t, "", http.StatusTooManyRequests)
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "key", "test-model")
	_, err := c.WardInsights(context.Background(), ward.DistrictRecord{ID: "1"}, nil)
	if !errors.Is(err, ErrNoInsight) {
		t.Errorf("expected ErrNoInsight on provider error, got %v", err)
	}
}

func TestWardInsightsEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "key", "test-model")
	_, err := c.WardInsights(context.Background(), ward.DistrictRecord{ID: "1"}, nil)
	if !errors.Is(err, ErrNoInsight) {
		t.Errorf("expected ErrNoInsight on empty choices, got %v", err)
	}
}

func TestRainRisk(t *testing.T) {
	content := `{"risk":"CRUCIAL","summary":"Heavy rain expected","actions":["Avoid underpasses"],"advice":"Delay travel"}`
	srv := modelServer(t, content, http.StatusOK)
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "key", "test-model")
	snap := &weather.Snapshot{Current: &weather.Current{Humidity: 80}}
	rr, err := c.RainRisk(context.Background(), snap)
	if err != nil {
		t.Fatalf("expected classification, got %v", err)
	}
	if rr.Risk != "CRUCIAL" || len(rr.Actions) != 1 {
		t.Errorf("unexpected classification: %+v", rr)
	}
}

func TestRainRiskUnparseableReply(t *testing.T) {
	srv := modelServer(t, "it depends", http.StatusOK)
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "key", "test-model")
	_, err := c.RainRisk(context.Background(), &weather.Snapshot{})
	if !errors.Is(err, ErrNoInsight) {
		t.Errorf("expected ErrNoInsight, got %v", err)
	}
}

func TestCompleteRequestShape(t *testing.T) {
	var got chatRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"choices":[{"message":{"content":"{}"}}]}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "secret", "test-model")
	if _, err := c.RainRisk(context.Background(), &weather.Snapshot{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if auth != "Bearer secret" {
		t.Errorf("unexpected auth header %q", auth)
	}
	if got.Model != "test-model" {
		t.Errorf("unexpected model %q", got.Model)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[1].Role != "user" {
		t.Errorf("unexpected message roles: %+v", got.Messages)
	}
	if got.Temperature != 0.4 {
		t.Errorf("unexpected temperature %v", got.Temperature)
	}
}
