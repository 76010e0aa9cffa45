package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestRequestMiddlewareDryRun(t *testing.T) {
	var got bool
	handler := wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = dryRun(r)
	}), requestMiddleware)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/digest/run?dry_run=true", nil))
	assert.True(t, got)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/digest/run", nil))
	assert.False(t, got)
}

func TestDryRunWithoutMiddleware(t *testing.T) {
	// A request that never passed through the middleware carries no flag.
	assert.False(t, dryRun(httptest.NewRequest("GET", "/digest/run?dry_run=true", nil)))
}

// verbose must stay request-scoped: flipping the global log level would leak
// debug output into concurrent requests.
func TestRequestMiddlewareVerboseLeavesLogLevel(t *testing.T) {
	before := log.GetLevel()
	handler := wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, before, log.GetLevel())
	}), requestMiddleware)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health?verbose=true", nil))
	assert.Equal(t, before, log.GetLevel())
}

func TestWrapOrder(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), tag("outer"), tag("inner"))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}
