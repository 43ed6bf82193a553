package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

func testClient(url string) *Client {
	return &Client{
		url:        url,
		apiKey:     "test-key",
		httpClient: &http.Client{Timeout: 2 * time.Second},
		log:        zerolog.Nop(),
	}
}

func TestGenerate_Success(t *testing.T) {
	var captured generationRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Unexpected Authorization header: %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		json.NewEncoder(w).Encode([]generationResult{{GeneratedText: "  Hello from the model  "}})
	}))
	defer server.Close()

	got := testClient(server.URL).Generate(context.Background(), "Write something", 150)
	if got != "Hello from the model" {
		t.Errorf("Expected trimmed model output, got %q", got)
	}

	if captured.Inputs != "Write something" {
		t.Errorf("Unexpected inputs: %q", captured.Inputs)
	}
	if captured.Parameters.MaxNewTokens != 150 {
		t.Errorf("Unexpected max_new_tokens: %d", captured.Parameters.MaxNewTokens)
	}
	if captured.Parameters.Temperature != 0.7 || captured.Parameters.TopP != 0.9 {
		t.Errorf("Unexpected sampling parameters: %+v", captured.Parameters)
	}
	if captured.Parameters.ReturnFullText {
		t.Error("return_full_text must be false")
	}
}

func TestGenerate_HTTPErrorReturnsFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	if got := testClient(server.URL).Generate(context.Background(), "p", 10); got != Fallback {
		t.Errorf("Expected fallback, got %q", got)
	}
}

func TestGenerate_MalformedBodyReturnsFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "unexpected shape"}`))
	}))
	defer server.Close()

	if got := testClient(server.URL).Generate(context.Background(), "p", 10); got != Fallback {
		t.Errorf("Expected fallback, got %q", got)
	}
}

func TestGenerate_EmptyResultsReturnsFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	if got := testClient(server.URL).Generate(context.Background(), "p", 10); got != Fallback {
		t.Errorf("Expected fallback, got %q", got)
	}
}

func TestGenerate_UnreachableEndpointReturnsFallback(t *testing.T) {
	// Closed server: connection refused
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	if got := testClient(server.URL).Generate(context.Background(), "p", 10); got != Fallback {
		t.Errorf("Expected fallback, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 4); got != "abcd" {
		t.Errorf("Expected abcd, got %q", got)
	}
	if got := truncate("abc", 4); got != "abc" {
		t.Errorf("Short input must pass through, got %q", got)
	}
}

func TestTruncate_NeverSplitsRunes(t *testing.T) {
	// é is two bytes; cutting at byte 2 would land mid-rune
	if got := truncate("héllo", 2); got != "h" {
		t.Errorf("Expected backed-off cut, got %q", got)
	}

	s := strings.Repeat("日", 100) // three bytes each
	for _, n := range []int{1, 2, 50, 200, 299, 300} {
		if cut := truncate(s, n); !utf8.ValidString(cut) {
			t.Errorf("truncate(%d) produced invalid UTF-8: %q", n, cut)
		}
	}
	if got := truncate(s, 7); got != "日日" {
		t.Errorf("Expected two runes at a 7-byte cap, got %q", got)
	}
}

func TestContactAckPrompt_DefaultSubject(t *testing.T) {
	prompt := ContactAckPrompt("Jordan", "", "Hello")
	if want := "Subject: General Inquiry"; !strings.Contains(prompt, want) {
		t.Errorf("Expected %q in prompt:\n%s", want, prompt)
	}
}
