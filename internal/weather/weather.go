// Package weather talks to a WeatherAPI-compatible forecast provider.
// Snapshots are value types replaced wholesale on each fetch; nothing here
// merges or retries.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/floodhub/wardwatch/internal/scoring"
)

// ErrUnavailable wraps every provider failure; the UI layer surfaces it as a
// "weather unavailable" display state.
var ErrUnavailable = errors.New("weather unavailable")

type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

type Location struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type Current struct {
	TempC      float64   `json:"temp_c"`
	Humidity   float64   `json:"humidity"`
	WindKPH    float64   `json:"wind_kph"`
	PrecipMM   float64   `json:"precip_mm"`
	FeelsLikeC float64   `json:"feelslike_c"`
	Condition  Condition `json:"condition"`
}

type Day struct {
	MinTempC          float64   `json:"mintemp_c"`
	MaxTempC          float64   `json:"maxtemp_c"`
	DailyChanceOfRain float64   `json:"daily_chance_of_rain"`
	TotalPrecipMM     float64   `json:"totalprecip_mm"`
	Condition         Condition `json:"condition"`
}

type ForecastDay struct {
	Date string `json:"date"`
	Day  Day    `json:"day"`
}

type Forecast struct {
	ForecastDay []ForecastDay `json:"forecastday"`
}

// Snapshot is one point-in-time weather response.
type Snapshot struct {
	Location Location `json:"location"`
	Current  *Current `json:"current"`
	Forecast Forecast `json:"forecast"`
}

// HasData reports whether the snapshot carries both current conditions and at
// least one forecast day. The waterlog heuristic must only be invoked on
// snapshots that pass this guard.
func (s *Snapshot) HasData() bool {
	return s != nil && s.Current != nil && len(s.Forecast.ForecastDay) > 0
}

// WaterlogInputs extracts the four heuristic factors from current conditions
// and the first forecast day. Callers guard with HasData first.
func (s *Snapshot) WaterlogInputs() scoring.WaterlogInputs {
	day := s.Forecast.ForecastDay[0].Day
	return scoring.WaterlogInputs{
		RainChancePercent: day.DailyChanceOfRain,
		PrecipMM:          day.TotalPrecipMM,
		HumidityPercent:   s.Current.Humidity,
		WindKPH:           s.Current.WindKPH,
	}
}

type Client interface {
	// Forecast fetches a snapshot for a free-text location or "lat,lon" query.
	Forecast(ctx context.Context, query string) (*Snapshot, error)
}

type HTTPClient struct {
	baseURL    string
	key        string
	days       int
	httpClient *http.Client
}

func NewHTTPClient(baseURL, key string, days int) *HTTPClient {
	if days <= 0 {
		days = 3
	}
	return &HTTPClient{
		baseURL:    baseURL,
		key:        key,
		days:       days,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPClient) Forecast(ctx context.Context, query string) (*Snapshot, error) {
	q := url.Values{}
	q.Set("key", c.key)
	q.Set("q", query)
	q.Set("days", strconv.Itoa(c.days))
	q.Set("aqi", "yes")
	q.Set("alerts", "yes")

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/v1/forecast.json?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: provider status %d", ErrUnavailable, resp.StatusCode)
	}

	var snap Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if snap.Current == nil {
		return nil, fmt.Errorf("%w: response missing current conditions", ErrUnavailable)
	}
	return &snap, nil
}
