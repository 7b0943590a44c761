package server

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tifyai/website/internal/catalog"
	"github.com/tifyai/website/internal/database"
	"github.com/tifyai/website/internal/models"
	"github.com/tifyai/website/internal/relay"
	"github.com/tifyai/website/internal/repository"
)

type stubRelay struct{ reply string }

func (s stubRelay) Forward(context.Context, models.ChatMessage) relay.Result {
	if s.reply == "" {
		return relay.Result{Outcome: relay.OutcomeSkipped}
	}
	return relay.Result{Outcome: relay.OutcomeReplied, Reply: s.reply}
}

type testServer struct {
	handler http.Handler
	logs    *observer.ObservedLogs
}

func newTestServer(t *testing.T, opts Options) *testServer {
	t.Helper()
	db, err := database.New(database.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Seed(context.Background(), db, database.DefaultSeed()))
	repo := repository.New(db)

	core, logs := observer.New(zapcore.DebugLevel)
	if opts.Catalog == nil {
		opts.Catalog = catalog.New(repo)
	}
	if opts.Relay == nil {
		opts.Relay = stubRelay{}
	}
	if opts.Health == nil {
		opts.Health = repo.Ping
	}
	opts.Logger = zap.New(core)
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	return &testServer{handler: NewHandler(opts), logs: logs}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) get(path string) *httptest.ResponseRecorder {
	return s.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (s *testServer) postChat(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/chat/send", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return s.do(req)
}

func TestHandler_Routes(t *testing.T) {
	s := newTestServer(t, Options{})

	tests := []struct {
		path    string
		wantLen int
	}{
		{"/api/blog", 6},
		{"/api/blog?category=Parenting", 2},
		{"/api/courses", 5},
		{"/api/courses?category=Crypto&format=Recorded", 1},
		{"/api/products", 2},
		{"/api/testimonials", 3},
		{"/api/team", 4},
		{"/api/products/finance/tiers", 3},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := s.get(tt.path)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

			var items []json.RawMessage
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
			assert.Len(t, items, tt.wantLen)
		})
	}
}

func TestHandler_Detail(t *testing.T) {
	s := newTestServer(t, Options{})

	rec := s.get("/api/courses/macroeconomics-for-investors")
	require.Equal(t, http.StatusOK, rec.Code)
	var course models.Course
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &course))
	assert.Equal(t, "Macro Economics", course.Category)

	rec = s.get("/api/products/unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, rec.Body.String())
}

func TestHandler_NotFound(t *testing.T) {
	s := newTestServer(t, Options{})

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/unknown", nil),
		httptest.NewRequest(http.MethodDelete, "/api/blog", nil),
	} {
		rec := s.do(req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
	}
}

func TestHandler_Chat(t *testing.T) {
	s := newTestServer(t, Options{Relay: stubRelay{reply: "We'll be in touch"}})

	rec := s.postChat(`{"message":"Hi","pageSource":"/","timestamp":"2025-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"We'll be in touch"}`, rec.Body.String())

	rec = s.postChat(`{"message":"","pageSource":"/","timestamp":"2025-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid message format","details":[{"field":"message","message":"Message must not be empty"}]}`, rec.Body.String())
}

func TestHandler_ChatUnconfigured(t *testing.T) {
	s := newTestServer(t, Options{Relay: relay.NewClient(relay.Config{}, nil, nil, nil)})

	rec := s.postChat(`{"message":"Hi","pageSource":"/about","timestamp":"2025-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"`+relay.FallbackMessage+`"}`, rec.Body.String())
}

func TestHandler_ChatUpstreamFailure(t *testing.T) {
	tests := []struct {
		name     string
		upstream http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "workflow crashed", http.StatusInternalServerError)
		}},
		{"unauthorized", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}},
		{"not json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("Workflow was started"))
		}},
		{"too slow", func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(2 * time.Second):
			case <-r.Context().Done():
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := httptest.NewServer(tt.upstream)
			defer upstream.Close()

			client := relay.NewClient(relay.Config{
				URL:        upstream.URL,
				AuthHeader: "Bearer secret",
				Timeout:    100 * time.Millisecond,
			}, nil, nil, nil)
			s := newTestServer(t, Options{Relay: client})

			rec := s.postChat(`{"message":"Hi","pageSource":"/","timestamp":"2025-01-01T00:00:00Z"}`)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"message":"`+relay.FallbackMessage+`"}`, rec.Body.String())
		})
	}
}

func TestHandler_Health(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := s.get("/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	s = newTestServer(t, Options{Health: func(context.Context) error { return errors.New("closed") }})
	rec = s.get("/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, rec.Body.String())
}

func TestHandler_Metrics(t *testing.T) {
	s := newTestServer(t, Options{})

	require.Equal(t, http.StatusOK, s.get("/api/blog").Code)
	require.Equal(t, http.StatusNotFound, s.get("/nowhere").Code)

	rec := s.get("/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `tify_http_requests_total{handler="GET /api/blog",method="GET",status="2XX",user_agent="unknown"} 1`)
	assert.Contains(t, body, `tify_http_requests_total{handler="unmatched",method="GET",status="4XX",user_agent="unknown"} 1`)
	assert.Contains(t, body, "tify_http_request_duration_seconds_bucket")
}

func TestHandler_AccessLog(t *testing.T) {
	s := newTestServer(t, Options{})

	req := httptest.NewRequest(http.MethodGet, "/api/team", nil)
	req.Header.Set("X-Request-Id", "req-123")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	rec := s.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-Id"))

	entries := s.logs.FilterMessage("Request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "req-123", fields["request_id"])
	assert.Equal(t, "/api/team", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
	assert.Equal(t, "Chrome", fields["user_agent"])

	s.get("/healthz")
	entries = s.logs.FilterMessage("Request").All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
}

func TestHandler_RequestIDGenerated(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := s.get("/api/team")
	assert.Len(t, rec.Header().Get("X-Request-Id"), 36)
}

func TestHandler_Gzip(t *testing.T) {
	s := newTestServer(t, Options{})

	req := httptest.NewRequest(http.MethodGet, "/api/blog", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := s.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)

	var posts []models.BlogPost
	require.NoError(t, json.Unmarshal(body, &posts))
	assert.Len(t, posts, 6)
}

func TestHandler_CORS(t *testing.T) {
	s := newTestServer(t, Options{CORSOrigins: []string{"https://tify.ai"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/chat/send", nil)
	req.Header.Set("Origin", "https://tify.ai")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := s.do(req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://tify.ai", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)

	req = httptest.NewRequest(http.MethodGet, "/api/team", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = s.do(req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Disabled(t *testing.T) {
	s := newTestServer(t, Options{})

	req := httptest.NewRequest(http.MethodGet, "/api/team", nil)
	req.Header.Set("Origin", "https://tify.ai")
	rec := s.do(req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecover(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), RequestLogger(zap.New(core)), Recover)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/blog", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	entries := logs.FilterMessage("Panic while serving request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "boom", entries[0].ContextMap()["panic"])
}

func TestHandler_MetricsUserAgentsBounded(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := newTestServer(t, Options{Registry: reg})

	for i := 0; i < 200; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/team", nil)
		req.Header.Set("User-Agent", fmt.Sprintf("bot%d/1.0", i))
		require.Equal(t, http.StatusOK, s.do(req).Code)
	}

	n, err := testutil.GatherAndCount(reg, "tify_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	rec := s.get("/metrics")
	assert.Contains(t, rec.Body.String(), `tify_http_requests_total{handler="GET /api/team",method="GET",status="2XX",user_agent="other"} 200`)
}

func TestUserAgent(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", "unknown"},
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0", "Firefox"},
		{"bot42/1.0", "other"},
		{"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", "other"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			req.Header.Set("User-Agent", tt.header)
		}
		assert.Equal(t, tt.want, UserAgent(req))
	}
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, ln, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}), Timeouts{Shutdown: time.Second}, zap.NewNop())
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
