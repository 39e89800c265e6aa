package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/cairn"
	"github.com/xy-planning-network/cairn/http/cookie"
	"github.com/xy-planning-network/cairn/http/media"
	"github.com/xy-planning-network/cairn/http/resp"
	"github.com/xy-planning-network/cairn/logger"
)

func newTestRouter(t *testing.T, env cairn.Environment) http.Handler {
	t.Helper()
	t.Setenv("SENTRY_DSN", "")
	t.Setenv("BASE_URL", "")

	codec, err := cookie.NewCodecFromHex(hashKey, encryptKey)
	require.Nil(t, err)

	h := &handler{
		l:     logger.New(logger.WithLogger(log.New(io.Discard, "", 0))),
		opts:  resp.NewOptions(),
		codec: codec,
	}

	return newRouter(h, env)
}

func TestHome(t *testing.T) {
	// Arrange
	router := newTestRouter(t, cairn.Development)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, media.JSONUTF8, w.Header().Get("Content-Type"))
	require.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	require.NotZero(t, w.Header().Get("X-Request-Id"))

	var body struct {
		Routes []string `json:"routes"`
	}
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Contains(t, body.Routes, "GET /reports")
}

func TestListReports(t *testing.T) {
	router := newTestRouter(t, cairn.Development)

	tcs := []struct {
		name     string
		target   string
		expected int
		hasPrev  bool
	}{
		{"Default-Page", "/reports", 1, false},
		{"Later-Page", "/reports?page=3", 3, true},
		{"Bad-Page", "/reports?page=nope", 1, false},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()

			// Act
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.target, nil))

			// Assert
			require.Equal(t, http.StatusOK, w.Code)
			require.Equal(t, `"reports-`+strconv.Itoa(tc.expected)+`"`, w.Header().Get("ETag"))
			require.Equal(t, "private,max-age=60", w.Header().Get("Cache-Control"))

			link := w.Header().Get("Link")
			require.Contains(t, link, "rel=next")
			if tc.hasPrev {
				require.Contains(t, link, "rel=prev")
			} else {
				require.NotContains(t, link, "rel=prev")
			}

			var body struct {
				Page    int      `json:"page"`
				Reports []string `json:"reports"`
			}
			require.Nil(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Equal(t, tc.expected, body.Page)
			require.Len(t, body.Reports, 3)
		})
	}
}

func TestExportReports(t *testing.T) {
	// Arrange
	router := newTestRouter(t, cairn.Development)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/export", nil))

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	require.Equal(t, `attachment; filename="trail reports.csv"`, w.Header().Get("Content-Disposition"))
	require.Contains(t, w.Body.String(), "name,status\n")
}

func TestLogin(t *testing.T) {
	// Arrange
	router := newTestRouter(t, cairn.Development)
	codec, err := cookie.NewCodecFromHex(hashKey, encryptKey)
	require.Nil(t, err)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))

	// Assert
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/reports", w.Header().Get("Location"))

	header := w.Header().Get("Set-Cookie")
	require.Contains(t, header, "Path=/")
	require.Contains(t, header, "Max-Age=86400")
	require.Contains(t, header, "HttpOnly")
	require.Contains(t, header, "Secure")

	cs := w.Result().Cookies()
	require.Len(t, cs, 1)
	require.Equal(t, "session", cs[0].Name)

	val, err := codec.Decode("session", cs[0].Value)
	require.Nil(t, err)
	require.Equal(t, "hiker-1", val)
}

func TestLogout(t *testing.T) {
	// Arrange
	router := newTestRouter(t, cairn.Development)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

	// Assert
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))
	require.Equal(t, "session=; Expires=Thu, 01 Jan 1970 00:00:00 GMT", w.Header().Get("Set-Cookie"))
}

func TestStaticFile(t *testing.T) {
	router := newTestRouter(t, cairn.Development)

	t.Run("Stylesheet", func(t *testing.T) {
		// Arrange
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/styles.css", nil))

		// Assert
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "text/css; charset=utf-8", w.Header().Get("Content-Type"))
		require.Equal(t, "public,max-age=86400", w.Header().Get("Cache-Control"))
		require.Equal(t, strconv.Itoa(w.Body.Len()), w.Header().Get("Content-Length"))
		require.Contains(t, w.Body.String(), "margin")
	})

	t.Run("Missing-Asset", func(t *testing.T) {
		// Arrange
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/nope.css", nil))

		// Assert
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Contains(t, w.Body.String(), "nothing at")
	})
}

func TestForceHTTPSInChain(t *testing.T) {
	// Arrange
	router := newTestRouter(t, cairn.Testing)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports", nil))

	// Assert
	require.Equal(t, http.StatusPermanentRedirect, w.Code)
	require.Equal(t, "https://example.com/reports", w.Header().Get("Location"))

	// Arrange
	w = httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/reports", nil)
	r.Header.Set("X-Forwarded-Proto", "https")

	// Act
	router.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
}
