package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	md "github.com/Astemirdum/shareit/pkg/middleware"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSharerUserID(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedBody string
	}{
		{name: "ok", header: "42", expectedCode: http.StatusOK, expectedBody: "42"},
		{name: "err. no header", header: "", expectedCode: http.StatusBadRequest, expectedBody: `{"message":"X-Sharer-User-Id header is required"}`},
		{name: "err. not a number", header: "abc", expectedCode: http.StatusBadRequest, expectedBody: `{"message":"X-Sharer-User-Id is invalid"}`},
		{name: "err. negative", header: "-1", expectedCode: http.StatusBadRequest, expectedBody: `{"message":"X-Sharer-User-Id is invalid"}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			e.GET("/", func(c echo.Context) error {
				id, err := md.UserID(c)
				if err != nil {
					return err
				}
				return c.String(http.StatusOK, strconv.FormatInt(id, 10))
			}, md.SharerUserID)

			r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tt.header != "" {
				r.Header.Set(md.XSharerUserID, tt.header)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
