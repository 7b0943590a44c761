package server

import (
	"encoding/json"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	ua "github.com/mileusna/useragent"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/tifyai/website/internal/logger"
)

// Middleware constructor.
type Middleware func(http.Handler) http.Handler

// chain applies mws so that the first one is the outermost.
func chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// statusResponseWriter records the status code and body size of a response.
type statusResponseWriter struct {
	http.ResponseWriter
	code  int
	bytes int
}

func newStatusResponseWriter(w http.ResponseWriter) *statusResponseWriter {
	return &statusResponseWriter{ResponseWriter: w}
}

func (w *statusResponseWriter) WriteHeader(code int) {
	if w.code == 0 {
		w.code = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusResponseWriter) Write(b []byte) (int, error) {
	if w.code == 0 {
		w.code = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *statusResponseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *statusResponseWriter) Code() int {
	if w.code == 0 {
		return http.StatusOK
	}
	return w.code
}

// RequestLogger attaches a request-scoped logger, tagged with a request id,
// to the request context.
func RequestLogger(log *zap.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-Id")
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set("X-Request-Id", id)

			reqLog := log.With(
				zap.String("request_id", id),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
			)
			next.ServeHTTP(w, r.WithContext(logger.NewContext(r.Context(), reqLog)))
		}
		return http.HandlerFunc(fn)
	}
}

// Recover turns a handler panic into a logged 500.
func Recover(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				if v == http.ErrAbortHandler {
					panic(v)
				}
				logger.FromContext(r.Context()).Error("Panic while serving request",
					zap.Any("panic", v), zap.Stack("stack"))
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
			}
		}()
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(fn)
}

// Metrics records request counts and latencies, labelled by route pattern,
// and writes one access log line per request.
func Metrics(reqMetric *prometheus.CounterVec, durMetric *prometheus.HistogramVec) Middleware {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			statusW := newStatusResponseWriter(w)

			defer func(start time.Time) {
				elapsed := time.Since(start)
				code := statusW.Code()
				agent := UserAgent(r)

				// r.Pattern is filled in by the ServeMux further down the chain.
				pattern := r.Pattern
				if pattern == "" {
					pattern = "unmatched"
				}

				label := prometheus.Labels{
					"handler":    pattern,
					"method":     r.Method,
					"status":     statusClass(code),
					"user_agent": agent,
				}
				reqMetric.With(label).Inc()
				durMetric.With(label).Observe(elapsed.Seconds())

				log := logger.FromContext(r.Context())
				fields := []zap.Field{
					zap.Int("status", code),
					zap.Duration("duration", elapsed),
					zap.Int("bytes", statusW.bytes),
					zap.String("user_agent", agent),
				}
				if pattern == "GET /healthz" || pattern == "GET /metrics" {
					log.Debug("Request", fields...)
				} else {
					log.Info("Request", fields...)
				}
			}(time.Now())

			next.ServeHTTP(statusW, r)
		}
		return http.HandlerFunc(fn)
	}
}

func statusClass(code int) string {
	return strconv.Itoa(code/100) + "XX"
}

// knownAgents are the client families reported as is. Every other parsed
// name becomes "other" so that metric label values stay bounded.
var knownAgents = map[string]struct{}{
	"Chrome":            {},
	"Firefox":           {},
	"Safari":            {},
	"Edge":              {},
	"Opera":             {},
	"Internet Explorer": {},
}

// UserAgent returns the browser or client family of the request, one of
// knownAgents, "other" or "unknown".
func UserAgent(r *http.Request) string {
	header := r.Header.Get("User-Agent")
	if header == "" {
		return "unknown"
	}
	name := ua.Parse(header).Name
	if _, ok := knownAgents[name]; ok {
		return name
	}
	return "other"
}

// CORS allows cross-origin browser requests from origins. An empty list
// leaves responses untouched; "*" allows any origin.
func CORS(origins []string) Middleware {
	allowAny := slices.Contains(origins, "*")
	allowed := func(origin string) bool {
		return allowAny || slices.Contains(origins, origin)
	}

	return func(next http.Handler) http.Handler {
		if len(origins) == 0 {
			return next
		}
		fn := func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" || !allowed(origin) {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				// preflight: answer here and stop
				w.Header().Set("Access-Control-Allow-Methods", strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodOptions}, ", "))
				w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-Request-Id")
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
