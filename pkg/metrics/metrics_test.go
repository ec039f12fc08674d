package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_CountsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/blog/post/:postID", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/blog/post/:postID", "404"))

	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/blog/post/"+id, nil)
		r.ServeHTTP(w, req)
	}

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/blog/post/:postID", "404"))
	assert.Equal(t, before+2, after)
}

func TestMiddleware_UnmatchedRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/nope", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	httpRequests.WithLabelValues("GET", "/health", "200").Inc()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/metrics", nil)
	Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "blog_http_requests_total")
}
