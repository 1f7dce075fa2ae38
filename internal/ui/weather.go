package ui

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var weatherURL = "https://wttr.in?format=%l:+%c+%t+%w+%h"

// ErrNoWeather reports that the weather service returned nothing
// useful for the caller's location.
var ErrNoWeather = fmt.Errorf("no weather data")

// FetchWeather retrieves a one-line weather report from wttr.in.
// Meant to run concurrently with task execution and be rendered at the
// end of the run; failures are not worth surfacing beyond a dim note.
func FetchWeather(ctx context.Context, client *http.Client) (string, error) {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, weatherURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "curl/8.0")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("weather service returned %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return "", err
	}

	report := strings.TrimSpace(string(body))
	if report == "" || strings.Contains(report, "Unknown") {
		return "", ErrNoWeather
	}
	return report, nil
}

// Weather prints a fetched weather report.
func (p *Printer) Weather(report string) {
	if report == "" {
		return
	}
	p.line()
	p.line(p.paint(StyleHeader, "🌤️  Weather"))
	p.line(p.rule())
	p.linef("  %s", p.paint(StyleEmphasis, report))
}
