package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tifyai/website/internal/catalog"
	"github.com/tifyai/website/internal/handlers"
)

type Options struct {
	Catalog *catalog.Catalog
	Relay   handlers.Relayer
	// Health reports whether the entity store is usable.
	Health func(ctx context.Context) error

	Logger      *zap.Logger
	Registry    *prometheus.Registry
	CORSOrigins []string
}

// NewHandler builds the HTTP API with its middleware stack.
func NewHandler(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	blogHandler := handlers.NewBlogHandler(opts.Catalog)
	courseHandler := handlers.NewCourseHandler(opts.Catalog)
	productHandler := handlers.NewProductHandler(opts.Catalog)
	aboutHandler := handlers.NewAboutHandler(opts.Catalog)
	chatHandler := handlers.NewChatHandler(opts.Relay)

	mux := http.NewServeMux()

	// Blog
	mux.HandleFunc("GET /api/blog", blogHandler.List)
	mux.HandleFunc("GET /api/blog/{slug}", blogHandler.Get)

	// Courses
	mux.HandleFunc("GET /api/courses", courseHandler.List)
	mux.HandleFunc("GET /api/courses/{slug}", courseHandler.Get)

	// Products
	mux.HandleFunc("GET /api/products", productHandler.List)
	mux.HandleFunc("GET /api/products/{slug}", productHandler.Get)
	mux.HandleFunc("GET /api/products/{slug}/tiers", productHandler.Tiers)

	// About
	mux.HandleFunc("GET /api/testimonials", aboutHandler.Testimonials)
	mux.HandleFunc("GET /api/team", aboutHandler.Team)

	// Chat
	mux.HandleFunc("POST /api/chat/send", chatHandler.Send)

	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
	})

	// Operations
	mux.HandleFunc("GET /healthz", healthHandler(opts.Health))
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	reqMetric := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tify",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Number of HTTP requests received.",
	}, []string{"handler", "method", "status", "user_agent"})
	durMetric := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tify",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Time taken to respond to HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"handler", "method", "status", "user_agent"})
	reg.MustRegister(reqMetric, durMetric)

	return chain(mux,
		RequestLogger(log),
		Metrics(reqMetric, durMetric),
		Recover,
		CORS(opts.CORSOrigins),
		gziphandler.GzipHandler,
	)
}

func healthHandler(check func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// DefaultWriteTimeout applies when Timeouts.Write is not set.
const DefaultWriteTimeout = 30 * time.Second

// Timeouts bound the lifetime of responses and of a graceful shutdown.
type Timeouts struct {
	Write    time.Duration
	Shutdown time.Duration
}

// Run serves h on addr until ctx is cancelled, then shuts down gracefully
// within t.Shutdown.
func Run(ctx context.Context, addr string, h http.Handler, t Timeouts, log *zap.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return Serve(ctx, ln, h, t, log)
}

// Serve is Run on an existing listener.
func Serve(ctx context.Context, ln net.Listener, h http.Handler, t Timeouts, log *zap.Logger) error {
	if t.Write <= 0 {
		t.Write = DefaultWriteTimeout
	}
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      t.Write,
		IdleTimeout:       2 * time.Minute,
		ErrorLog:          zap.NewStdLog(log),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), t.Shutdown)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
