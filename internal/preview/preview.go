// Package preview serves a live view of an adapter session over HTTP.
//
// The server renders the session's current markup, pushes updates to
// connected browsers over WebSocket whenever the session commits a
// mutation, and lets the browser drive synthetic events against the
// rendered tree. It exists for interactively inspecting component
// scenarios; nothing in the adapter depends on it.
package preview

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mq2thez/vantage/pkg/adapter"
)

// Default tracer name for preview servers.
const defaultTracerName = "vantage"

// Config configures the preview server.
type Config struct {
	// Logger receives request and push logs (default: slog.Default()).
	Logger *slog.Logger

	// TracerName names the OpenTelemetry tracer (default: "vantage").
	TracerName string

	// Registry is the Prometheus registry to use
	// (default: prometheus.DefaultRegisterer).
	Registry prometheus.Registerer

	// Namespace is the metrics namespace (default: "vantage").
	Namespace string
}

// Option configures the preview server.
type Option func(*Config)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithTracerName sets the tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

func defaultConfig() Config {
	return Config{
		Logger:     slog.Default(),
		TracerName: defaultTracerName,
		Registry:   prometheus.DefaultRegisterer,
		Namespace:  "vantage",
	}
}

// Server exposes one adapter session over HTTP.
type Server struct {
	session *adapter.Session
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *metrics
	hub     *hub
	mux     chi.Router
}

// New wires a preview server around the session. The session must be
// driven only through this server afterwards; the adapter's single-
// goroutine contract still applies.
func New(session *adapter.Session, opts ...Option) *Server {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	s := &Server{
		session: session,
		logger:  config.Logger,
		tracer:  otel.Tracer(config.TracerName),
		metrics: initMetrics(config),
		hub:     newHub(config.Logger),
	}
	s.hub.onWatchers = s.metrics.watchers.Set

	session.OnCommit(func() {
		s.metrics.commitsTotal.Inc()
		s.push()
	})

	r := chi.NewRouter()
	r.Get("/", s.handleIndex)
	r.Get("/html", s.handleHTML)
	r.Get("/text", s.handleText)
	r.Post("/simulate/{event}", s.handleSimulate)
	r.Get("/ws", s.hub.handleWebSocket)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	s.mux = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe serves the preview on addr until the server errors.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("preview server listening", "addr", addr)
	return http.ListenAndServe(addr, s)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html, err := s.session.HTML()
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, indexPage, html)
}

func (s *Server) handleHTML(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	html, err := s.session.HTML()
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	s.metrics.renderDuration.Observe(time.Since(start).Seconds())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, html)
}

func (s *Server) handleText(w http.ResponseWriter, r *http.Request) {
	text, err := s.session.Text()
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, text)
}

// handleSimulate dispatches a synthetic event against the rendered
// tree. With ?tag=button the event targets the first matching host
// element, otherwise the root.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	event := chi.URLParam(r, "event")

	_, span := s.tracer.Start(r.Context(), "preview.simulate",
		trace.WithAttributes(attribute.String("vantage.event", event)))
	defer span.End()

	target, err := s.simulateTarget(r.URL.Query().Get("tag"))
	if err != nil {
		s.recordSimulate(span, event, err)
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if target == nil {
		s.recordSimulate(span, event, nil)
		http.Error(w, "no matching element", http.StatusNotFound)
		return
	}

	if err := s.session.Simulate(target, event); err != nil {
		s.recordSimulate(span, event, err)
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	s.recordSimulate(span, event, nil)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) simulateTarget(tag string) (*adapter.Element, error) {
	root, err := s.session.Root()
	if err != nil {
		return nil, err
	}
	if tag == "" {
		return root, nil
	}
	return root.Find(adapter.ByTag(tag)), nil
}

func (s *Server) recordSimulate(span trace.Span, event string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.metrics.simulationsTotal.WithLabelValues(event, status).Inc()
}

// push re-renders and broadcasts the new markup to every watcher.
func (s *Server) push() {
	html, err := s.session.HTML()
	if err != nil {
		s.logger.Warn("preview push failed", "error", err)
		return
	}
	s.hub.broadcast(updateMessage{Type: messageUpdate, HTML: html})
}

const indexPage = `<!DOCTYPE html>
<html>
<head><title>vantage preview</title></head>
<body>
<div id="vantage-root">%s</div>
<script>
(function() {
  var proto = location.protocol === "https:" ? "wss:" : "ws:";
  var ws = new WebSocket(proto + "//" + location.host + "/ws");
  ws.onmessage = function(ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type === "update") {
      document.getElementById("vantage-root").innerHTML = msg.html;
    }
  };
})();
</script>
</body>
</html>
`
