// Package router tracks which screen the application shows. It is the
// Navigator handed to the registration coordinator.
package router

import "sync"

const (
	// PathHome is the sign-in landing screen.
	PathHome = "/"
	// PathRegister is the registration form.
	PathRegister = "/register"
)

// Router holds the current route.
type Router struct {
	mu      sync.Mutex
	current string
}

// New creates a router starting at path.
func New(path string) *Router {
	return &Router{current: path}
}

// NavigateTo switches to path.
func (r *Router) NavigateTo(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = path
}

// Current returns the active route.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}
