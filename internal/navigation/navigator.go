package navigation

import (
	"context"
	"log/slog"
	"sync"
)

// Routes the session layer navigates to
const (
	RouteRoot      = "/"
	RouteLogin     = "/login"
	RouteDashboard = "/dashboard"
)

// Navigator moves the user to another view
type Navigator interface {
	Navigate(ctx context.Context, route string)
}

// Func adapts a function to the Navigator interface
type Func func(ctx context.Context, route string)

// Navigate calls f
func (f Func) Navigate(ctx context.Context, route string) {
	f(ctx, route)
}

// Logger records navigations in the log; used where there is no view to switch to
type Logger struct {
	logger *slog.Logger
}

// NewLogger creates a Logger navigator
func NewLogger(logger *slog.Logger) *Logger {
	return &Logger{logger: logger.With(slog.String("component", "navigation"))}
}

// Navigate logs the route change
func (l *Logger) Navigate(ctx context.Context, route string) {
	l.logger.InfoContext(ctx, "navigate", slog.String("route", route))
}

// Recorder remembers every navigation, in order
type Recorder struct {
	mu     sync.Mutex
	routes []string
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Navigate records route
func (r *Recorder) Navigate(_ context.Context, route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route)
}

// Routes returns a copy of the recorded routes
func (r *Recorder) Routes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.routes))
	copy(out, r.routes)
	return out
}

// Last returns the most recent route, or "" if none
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.routes) == 0 {
		return ""
	}
	return r.routes[len(r.routes)-1]
}

// Count returns how many times route was navigated to
func (r *Recorder) Count(route string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, rt := range r.routes {
		if rt == route {
			n++
		}
	}
	return n
}

// Reset forgets all recorded routes
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = nil
}
