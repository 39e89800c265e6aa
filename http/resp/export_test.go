package resp_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/cairn"
	"github.com/xy-planning-network/cairn/http/cookie"
	"github.com/xy-planning-network/cairn/http/headers"
	"github.com/xy-planning-network/cairn/http/media"
	"github.com/xy-planning-network/cairn/http/resp"
)

func TestResponseTransportHeaders(t *testing.T) {
	t.Run("Zero-Value", func(t *testing.T) {
		r := resp.NewResponse(resp.NewOptions())
		require.Empty(t, r.TransportHeaders(""))
	})

	t.Run("Defaults-Content-Type", func(t *testing.T) {
		r := resp.NewResponse(resp.NewOptions())
		r.Headers().SetETag("v1")

		actual := r.TransportHeaders(media.JSONUTF8)
		require.Equal(t, []headers.Pair{
			{Name: "etag", Value: `"v1"`},
			{Name: "content-type", Value: media.JSONUTF8},
		}, actual)
	})

	t.Run("Keeps-Content-Type", func(t *testing.T) {
		r := resp.NewResponse(resp.NewOptions())
		r.Headers().SetContentType("text/csv")

		actual := r.TransportHeaders(media.JSONUTF8)
		require.Equal(t, []headers.Pair{{Name: "content-type", Value: "text/csv"}}, actual)
	})

	t.Run("Appends-Cookies", func(t *testing.T) {
		r := resp.NewResponse(resp.NewOptions())
		r.Headers().Add("X-First", "1")
		require.Nil(t, r.SetCookie("sid", "abc123", cookie.WithHTTPOnly(false), cookie.WithSecure(false)))
		require.Nil(t, r.SetCookie("theme", "dark", cookie.WithHTTPOnly(false), cookie.WithSecure(false)))

		actual := r.TransportHeaders("")
		require.Equal(t, []headers.Pair{
			{Name: "x-first", Value: "1"},
			{Name: "set-cookie", Value: "sid=abc123"},
			{Name: "set-cookie", Value: "theme=dark"},
		}, actual)
	})

	t.Run("Idempotent", func(t *testing.T) {
		r := resp.NewResponse(resp.NewOptions())
		r.Headers().SetVary("Accept")
		require.Nil(t, r.SetCookie("sid", "abc123"))
		r.AddLink("/things?page=2", "next")

		first := r.TransportHeaders(media.JSONUTF8)
		second := r.TransportHeaders(media.JSONUTF8)
		require.Equal(t, first, second)
	})
}

func TestResponseExport(t *testing.T) {
	t.Run("Media-Body", func(t *testing.T) {
		r := resp.NewResponse(resp.NewOptions())
		r.SetMedia(map[string]int{"pages": 3})

		pairs, err := r.Export()
		require.Nil(t, err)
		require.Equal(t, []headers.Pair{{Name: "content-type", Value: media.JSONUTF8}}, pairs)

		body, err := r.BodyBytes()
		require.Nil(t, err)
		require.JSONEq(t, `{"pages": 3}`, string(body))
	})

	t.Run("Serialize-Fails", func(t *testing.T) {
		r := resp.NewResponse(resp.NewOptions())
		r.SetMedia(make(chan int))

		_, err := r.Export()
		require.NotNil(t, err)
	})
}

func TestResponseApply(t *testing.T) {
	t.Run("Full", func(t *testing.T) {
		// Arrange
		r := resp.NewResponse(resp.NewOptions())
		r.Status = resp.StatusLine(http.StatusCreated)
		r.Headers().SetLocation("/things/42")
		r.SetMedia(map[string]int{"id": 42})
		require.Nil(t, r.SetCookie("sid", "abc123"))

		w := httptest.NewRecorder()

		// Act
		err := r.Apply(w)

		// Assert
		require.Nil(t, err)
		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, "/things/42", w.Header().Get("Location"))
		require.Equal(t, media.JSONUTF8, w.Header().Get("Content-Type"))
		require.Equal(t, "sid=abc123; HttpOnly; Secure", w.Header().Get("Set-Cookie"))
		require.JSONEq(t, `{"id": 42}`, w.Body.String())
	})

	t.Run("Multiple-Cookies", func(t *testing.T) {
		r := resp.NewResponse(resp.NewOptions())
		require.Nil(t, r.SetCookie("sid", "abc123"))
		require.Nil(t, r.SetCookie("theme", "dark", cookie.WithMaxAge(24*time.Hour)))

		w := httptest.NewRecorder()
		require.Nil(t, r.Apply(w))

		require.Equal(t, []string{
			"sid=abc123; HttpOnly; Secure",
			"theme=dark; Max-Age=86400; HttpOnly; Secure",
		}, w.Header().Values("Set-Cookie"))
	})

	t.Run("Streams", func(t *testing.T) {
		r := resp.NewResponse(resp.NewOptions())
		r.Headers().SetContentType(media.Text)
		r.SetStream(strings.NewReader("stream me"), 9)

		w := httptest.NewRecorder()
		require.Nil(t, r.Apply(w))

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "9", w.Header().Get("Content-Length"))
		require.Equal(t, "stream me", w.Body.String())
	})

	t.Run("Bad-Status", func(t *testing.T) {
		r := resp.NewResponse(resp.NewOptions())
		r.Status = "fast and loose"

		w := httptest.NewRecorder()
		err := r.Apply(w)

		require.ErrorIs(t, err, cairn.ErrNotValid)
		require.Zero(t, w.Body.Len())
		require.Empty(t, w.Header())
	})

	t.Run("Body-Fails-Before-Write", func(t *testing.T) {
		r := resp.NewResponse(resp.NewOptions())
		r.Headers().SetContentType("application/msgpack")
		r.SetMedia("body")

		w := httptest.NewRecorder()
		err := r.Apply(w)

		require.ErrorIs(t, err, media.ErrNoHandler)
		require.Zero(t, w.Body.Len())
		require.Empty(t, w.Header())
	})
}
