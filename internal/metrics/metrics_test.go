package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_RecordsRoutePatternAndStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/items/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/items/{id}", "418")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"1", "2"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/"+id, nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestMiddleware_DefaultStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/ok", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/ok", "200")
	before := testutil.ToFloat64(counter)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestArtifactsGeneratedTotal(t *testing.T) {
	counter := artifactsGeneratedTotal.WithLabelValues("success", "xlsx")
	before := testutil.ToFloat64(counter)

	ArtifactsGeneratedTotal("success", "xlsx", 5)

	assert.Equal(t, before+5, testutil.ToFloat64(counter))
}

func TestGenerationDuration(t *testing.T) {
	before := testutil.CollectAndCount(generationDuration)

	GenerationDuration("error", "metrics-test", 10*time.Millisecond)

	assert.Equal(t, before+1, testutil.CollectAndCount(generationDuration))
}
