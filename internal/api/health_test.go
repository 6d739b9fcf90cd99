package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type assertErr struct{}

func (assertErr) Error() string { return "err" }

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		ping func(context.Context) error
		path string
		want int
	}{
		{name: "healthz ok", path: "/healthz", want: http.StatusOK},
		{name: "readyz without ping", path: "/readyz", want: http.StatusOK},
		{name: "readyz ok", ping: func(context.Context) error { return nil }, path: "/readyz", want: http.StatusOK},
		{name: "readyz degraded", ping: func(context.Context) error { return assertErr{} }, path: "/readyz", want: http.StatusServiceUnavailable},
		{name: "healthz ignores db", ping: func(context.Context) error { return assertErr{} }, path: "/healthz", want: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			NewHealthHandler(tc.ping).Register(r)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if w.Code != tc.want {
				t.Fatalf("want %d got %d", tc.want, w.Code)
			}
		})
	}
}
