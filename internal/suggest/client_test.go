package suggest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/handl-app/handl/internal/logger"
)

func TestFallback(t *testing.T) {
	want := []string{"trypixel", "getpixel", "pixelapp", "pixelhq", "pixelco"}
	if got := Fallback("pixel"); !reflect.DeepEqual(got, want) {
		t.Errorf("Fallback() = %v, want %v", got, want)
	}
}

func TestSuggestEmptySeed(t *testing.T) {
	c := NewClient("", "", 0, logger.NewNop())
	if got := c.Suggest(context.Background(), "   "); got != nil {
		t.Errorf("Suggest(blank) = %v, want nil", got)
	}
}

func TestSuggestNoURLUsesFallback(t *testing.T) {
	c := NewClient("", "", 0, logger.NewNop())
	got := c.Suggest(context.Background(), "pixel")
	if !reflect.DeepEqual(got, Fallback("pixel")) {
		t.Errorf("Suggest() = %v, want fallback", got)
	}
}

func TestSuggestRemoteSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer secret" {
			t.Errorf("authorization = %q", auth)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["pixelify","getpixel","pixelverse"]`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "secret", time.Second, logger.NewNop())
	got := c.Suggest(context.Background(), "pixel")
	want := []string{"pixelify", "getpixel", "pixelverse"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggest() = %v, want %v", got, want)
	}
}

func TestSuggestRemoteFailureFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"not":"an array"}`))
		}},
		{"empty array", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			c := NewClient(ts.URL, "", time.Second, logger.NewNop())
			got := c.Suggest(context.Background(), "pixel")
			if !reflect.DeepEqual(got, Fallback("pixel")) {
				t.Errorf("Suggest() = %v, want fallback", got)
			}
		})
	}
}

func TestSuggestUnreachableServiceFallsBack(t *testing.T) {
	c := NewClient("http://127.0.0.1:1/suggest", "", 200*time.Millisecond, logger.NewNop())
	got := c.Suggest(context.Background(), "pixel")
	if !reflect.DeepEqual(got, Fallback("pixel")) {
		t.Errorf("Suggest() = %v, want fallback", got)
	}
}
