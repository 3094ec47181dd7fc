package sanitize

import (
	"strings"
	"testing"
)

func TestURL_PathEmbeddedKey(t *testing.T) {
	url := "https://v6.exchangerate-api.com/v6/4b9d09c342e6f730c7d2376e/pair/USD/EUR"
	got := URL(url)

	if strings.Contains(got, "4b9d09c342e6f730c7d2376e") {
		t.Fatalf("key leaked: %s", got)
	}
	if got != "https://v6.exchangerate-api.com/v6/[REDACTED]/pair/USD/EUR" {
		t.Fatalf("unexpected sanitized url: %s", got)
	}
}

func TestURL_QueryParameterKey(t *testing.T) {
	url := "https://serpapi.com/search?api_key=secret123&q=test"
	got := URL(url)

	if strings.Contains(got, "secret123") {
		t.Fatalf("key leaked: %s", got)
	}
	if !strings.Contains(got, "api_key=[REDACTED]") {
		t.Fatalf("marker missing: %s", got)
	}
	if !strings.Contains(got, "q=test") {
		t.Fatalf("other params must be preserved: %s", got)
	}
}

func TestURL_AmpersandParameter(t *testing.T) {
	url := "https://api.example.com/lookup?q=paris&key=secret456&hl=en"
	got := URL(url)

	if strings.Contains(got, "secret456") {
		t.Fatalf("key leaked: %s", got)
	}
	if !strings.Contains(got, "key=[REDACTED]") {
		t.Fatalf("marker missing: %s", got)
	}
	if !strings.Contains(got, "q=paris") || !strings.Contains(got, "hl=en") {
		t.Fatalf("other params must be preserved: %s", got)
	}
}

func TestURL_TokenParameter(t *testing.T) {
	url := "https://api.travelpayouts.com/aviasales/v3/prices_for_dates?origin=MOW&token=tp-secret&limit=30"
	got := URL(url)

	if strings.Contains(got, "tp-secret") {
		t.Fatalf("token leaked: %s", got)
	}
	if !strings.Contains(got, "origin=MOW") || !strings.Contains(got, "limit=30") {
		t.Fatalf("other params must be preserved: %s", got)
	}
}

func TestURL_Idempotent(t *testing.T) {
	urls := []string{
		"https://v6.exchangerate-api.com/v6/4b9d09c342e6f730c7d2376e/pair/USD/EUR",
		"https://serpapi.com/search?api_key=secret123&q=test",
		"https://api.example.com/v1/users/123",
	}
	for _, url := range urls {
		once := URL(url)
		twice := URL(once)
		if once != twice {
			t.Fatalf("sanitize not idempotent for %s: %q != %q", url, once, twice)
		}
	}
}

func TestURL_NoRecognizedPattern(t *testing.T) {
	urls := []string{
		"https://api.weather.gov/points/40,-77",
		"https://api.example.com/v1/users/123",
		"https://nominatim.openstreetmap.org/search?format=jsonv2&q=Paris",
		"",
	}
	for _, url := range urls {
		if got := URL(url); got != url {
			t.Fatalf("expected no-op for %s, got %s", url, got)
		}
	}
}
