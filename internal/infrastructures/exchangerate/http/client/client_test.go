package exchangerate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	derr "github.com/tripdeck/concierge/internal/domain/errors"
	"github.com/tripdeck/concierge/internal/domain/models"
	"github.com/tripdeck/concierge/internal/secrets"
)

const testKey = "rate_key_0123456789abcdef"

func testResolver() secrets.Resolver {
	return secrets.StaticResolver{KeyVariable: testKey}
}

func convertParams() models.CurrencyParams {
	return models.CurrencyParams{FromCurrency: "usd", ToCurrency: "eur", Amount: 250}
}

func TestConvert_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v6/"+testKey+"/pair/USD/EUR" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"result":"success","base_code":"USD","target_code":"EUR","conversion_rate":0.9234}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testResolver(), time.Second)

	conv, err := c.Convert(context.Background(), convertParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conv.ExchangeRate != 0.9234 {
		t.Fatalf("unexpected rate %v", conv.ExchangeRate)
	}
	if conv.ConvertedAmount != 230.85 {
		t.Fatalf("expected cent rounding, got %v", conv.ConvertedAmount)
	}
	if conv.FromCurrency != "USD" || conv.ToCurrency != "EUR" {
		t.Fatalf("expected uppercased codes, got %q/%q", conv.FromCurrency, conv.ToCurrency)
	}
}

// Every failure path must return the same generic text: the key is a URL path
// segment, so any forwarded upstream detail could carry it.
func TestConvert_FailuresNeverLeakKeyOrURL(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"status 403", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"result":"error","error-type":"invalid-key"}`))
		}},
		{"status 500", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"result":`))
		}},
		{"provider error result", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"result":"error","error-type":"unsupported-code"}`))
		}},
		{"zero rate", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"result":"success","conversion_rate":0}`))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			c := NewClient(srv.URL, testResolver(), time.Second)
			_, err := c.Convert(context.Background(), convertParams())
			if err == nil {
				t.Fatal("expected error")
			}
			text := err.Error()
			if strings.Contains(text, testKey) {
				t.Fatalf("error text leaks the key: %q", text)
			}
			if strings.Contains(text, srv.URL) || strings.Contains(text, "/v6/") {
				t.Fatalf("error text leaks the request URL: %q", text)
			}
			if !strings.Contains(text, genericFailure) {
				t.Fatalf("expected generic failure text, got %q", text)
			}
		})
	}
}

func TestConvert_DNSFailureNeverLeaksKey(t *testing.T) {
	c := NewClient("http://unresolvable.invalid", testResolver(), time.Second)

	_, err := c.Convert(context.Background(), convertParams())
	if !errors.Is(err, derr.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	text := err.Error()
	if strings.Contains(text, testKey) || strings.Contains(text, "unresolvable.invalid") {
		t.Fatalf("error text leaks the key or host: %q", text)
	}
	if !strings.Contains(text, genericFailure) {
		t.Fatalf("expected generic failure text, got %q", text)
	}
}

func TestConvert_TimeoutNeverLeaksKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testResolver(), 50*time.Millisecond)

	_, err := c.Convert(context.Background(), convertParams())
	if !errors.Is(err, derr.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	if strings.Contains(err.Error(), testKey) || strings.Contains(err.Error(), srv.URL) {
		t.Fatalf("error text leaks the key or URL: %q", err.Error())
	}
}

func TestConvert_ValidationBeforeResolve(t *testing.T) {
	c := NewClient("http://127.0.0.1:0", secrets.StaticResolver{}, time.Second)

	params := convertParams()
	params.Amount = -5
	_, err := c.Convert(context.Background(), params)
	if !errors.Is(err, derr.ErrInvalidParams) {
		t.Fatalf("expected ErrInvalidParams, got %v", err)
	}
}

func TestConvert_MissingCredential(t *testing.T) {
	c := NewClient("http://127.0.0.1:0", secrets.StaticResolver{}, time.Second)

	_, err := c.Convert(context.Background(), convertParams())
	if !errors.Is(err, derr.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
	if !strings.Contains(err.Error(), KeyVariable) {
		t.Fatalf("expected error to name the variable, got %q", err.Error())
	}
}

func TestConvert_InverseRateRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/pair/USD/EUR"):
			w.Write([]byte(`{"result":"success","conversion_rate":0.8}`))
		case strings.HasSuffix(r.URL.Path, "/pair/EUR/USD"):
			w.Write([]byte(`{"result":"success","conversion_rate":1.25}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testResolver(), time.Second)

	forward, err := c.Convert(context.Background(), models.CurrencyParams{FromCurrency: "USD", ToCurrency: "EUR", Amount: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err := c.Convert(context.Background(), models.CurrencyParams{FromCurrency: "EUR", ToCurrency: "USD", Amount: forward.ConvertedAmount})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.ConvertedAmount != 100 {
		t.Fatalf("expected round trip to 100, got %v", back.ConvertedAmount)
	}
}
