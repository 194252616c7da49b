package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware_ObservesRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := newMetricsWithRegisterer(reg)

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/rooms", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []string{})
	})

	req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Equal(t, float64(1), testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/rooms", "200")))
	// One histogram series exists for the observed label set.
	require.Equal(t, 1, testutil.CollectAndCount(m.requestDuration, "http_request_duration_seconds"))
}

// The route label uses the registered pattern, so /reservations/7 and
// /reservations/8 land in the same series.
func TestMetricsMiddleware_RouteLabelIsPattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := newMetricsWithRegisterer(reg)

	e := echo.New()
	e.Use(m.Middleware())
	e.DELETE("/reservations/:id", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"message": "ok"})
	})

	for _, id := range []string{"7", "8"} {
		req := httptest.NewRequest(http.MethodDelete, "/reservations/"+id, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	require.Equal(t, float64(2), testutil.ToFloat64(m.requestsTotal.WithLabelValues("DELETE", "/reservations/:id", "200")))
}

func TestMetricsMiddleware_CountsErrorStatuses(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := newMetricsWithRegisterer(reg)

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "missing")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	require.Equal(t, float64(1), testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/boom", "404")))
}
