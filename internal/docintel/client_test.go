package docintel

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const succeededOp = `{
  "status": "succeeded",
  "analyzeResult": {
    "content": "1\nID001\nPTE JOHN TAN",
    "pages": [{
      "pageNumber": 1,
      "lines": [
        {"content": "1", "polygon": [10,10, 20,10, 20,20, 10,20]},
        {"content": "ID001", "polygon": [10,30, 60,30, 60,40, 10,40]},
        {"content": "PTE JOHN TAN", "polygon": [10,50, 120,50, 120,60, 10,60]}
      ],
      "words": [
        {"content": "PTE", "confidence": 0.9},
        {"content": "JOHN", "confidence": 0.7}
      ]
    }]
  }
}`

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(Config{
		Endpoint:     srv.URL,
		APIKey:       "test-key",
		PollInterval: 5 * time.Millisecond,
		PollTimeout:  time.Second,
	}, slog.New(slog.DiscardHandler))
	return c, srv
}

func TestAnalyzeMapsLinesAndTokens(t *testing.T) {
	var polls atomic.Int32
	mux := http.NewServeMux()
	var srvURL string
	mux.HandleFunc("POST /documentintelligence/documentModels/prebuilt-read:analyze", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "test-key", r.Header.Get("Ocp-Apim-Subscription-Key"))
		require.Equal(t, "image/jpeg", r.Header.Get("Content-Type"))
		w.Header().Set("Operation-Location", srvURL+"/op/123")
		w.WriteHeader(http.StatusAccepted)
	})
	mux.HandleFunc("GET /op/123", func(w http.ResponseWriter, r *http.Request) {
		if polls.Add(1) == 1 {
			_, _ = w.Write([]byte(`{"status":"running"}`))
			return
		}
		_, _ = w.Write([]byte(succeededOp))
	})
	c, srv := newTestClient(t, mux)
	srvURL = srv.URL

	res, err := c.Analyze(context.Background(), []byte("fake-jpeg"), "image/jpeg")
	require.NoError(t, err)
	require.Equal(t, []string{"1", "ID001", "PTE JOHN TAN"}, res.Lines)
	require.Len(t, res.Tokens, 3)
	require.Len(t, res.Tokens[0].BBox, 4)
	require.InDelta(t, 0.8, res.Confidence, 1e-6)
	require.Equal(t, 1, res.Pages)
	require.NotEmpty(t, res.Raw)
	require.GreaterOrEqual(t, polls.Load(), int32(2))
}

func TestAnalyzeFailedOperation(t *testing.T) {
	mux := http.NewServeMux()
	var srvURL string
	mux.HandleFunc("POST /documentintelligence/documentModels/prebuilt-read:analyze", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Operation-Location", srvURL+"/op/9")
		w.WriteHeader(http.StatusAccepted)
	})
	mux.HandleFunc("GET /op/9", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"failed","error":{"code":"InvalidImage","message":"corrupt"}}`))
	})
	c, srv := newTestClient(t, mux)
	srvURL = srv.URL

	_, err := c.Analyze(context.Background(), []byte("junk"), "image/jpeg")
	require.ErrorContains(t, err, "InvalidImage")
}

func TestAnalyzeSubmitRejected(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":"401"}}`, http.StatusUnauthorized)
	}))
	_, err := c.Analyze(context.Background(), []byte("junk"), "image/jpeg")
	require.ErrorContains(t, err, "401")
}

func TestContentTypeForPath(t *testing.T) {
	require.Equal(t, "image/png", contentTypeForPath("scan.PNG"))
	require.Equal(t, "application/pdf", contentTypeForPath("batch.pdf"))
	require.Equal(t, "image/jpeg", contentTypeForPath("sheet.jpg"))
}
