package quoteimport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUpsertQuotes_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/api/v1/pipeline/quotes" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("X-API-Key") != "test-key" {
			t.Errorf("missing or wrong API key header")
		}

		var body struct {
			Quotes []QuoteEntry `json:"quotes"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if len(body.Quotes) != 2 || body.Quotes[1].Selling != "2475,50" {
			t.Errorf("unexpected quotes: %+v", body.Quotes)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]int{"quotes_upserted": 2})
	}))
	defer server.Close()

	c := NewPipelineClient(server.URL+"/", "test-key", server.Client())
	n, err := c.UpsertQuotes(context.Background(), []QuoteEntry{
		{Code: "USD", Buying: "32.10", Selling: "32.25"},
		{Code: "GRA", Kind: "gold", Buying: "2450", Selling: "2475,50"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 upserted, got %d", n)
	}
}

func TestUpsertQuotes_ErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"code": "INVALID_QUOTE", "message": "the base currency cannot be quoted"},
		})
	}))
	defer server.Close()

	c := NewPipelineClient(server.URL, "test-key", server.Client())
	_, err := c.UpsertQuotes(context.Background(), []QuoteEntry{{Code: "TRY", Buying: "1", Selling: "1"}})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "INVALID_QUOTE") || !strings.Contains(err.Error(), "400") {
		t.Errorf("error %q should carry status and code", err.Error())
	}
}

func TestUpsertQuotes_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	c := NewPipelineClient(server.URL, "bad-key", server.Client())
	_, err := c.UpsertQuotes(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if want := "unexpected status 401"; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q should contain %q", err.Error(), want)
	}
}

func TestComputeSnapshots_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/pipeline/snapshots" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["recorded_at"] == "" {
			t.Error("expected recorded_at in body")
		}
		_ = json.NewEncoder(w).Encode(map[string]int{"snapshots_recorded": 5})
	}))
	defer server.Close()

	c := NewPipelineClient(server.URL, "test-key", server.Client())
	n, err := c.ComputeSnapshots(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 5 {
		t.Errorf("expected 5, got %d", n)
	}
}

func TestComputeSnapshots_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	c := NewPipelineClient(server.URL, "test-key", server.Client())
	if _, err := c.ComputeSnapshots(context.Background()); err == nil {
		t.Fatal("expected decode error, got nil")
	}
}
