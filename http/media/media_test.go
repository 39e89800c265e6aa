package media_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/cairn/http/media"
)

type csvHandler struct{}

func (csvHandler) Serialize(v any, contentType string) ([]byte, error) {
	return []byte(strings.Join(v.([]string), ",")), nil
}

func TestHandlersFindByMediaType(t *testing.T) {
	h := media.NewHandlers()
	h.Register("text/csv", csvHandler{})

	for _, tc := range []struct {
		name      string
		mediaType string
		output    media.Handler
	}{
		{"Exact", media.JSON, media.JSONHandler{}},
		{"With-Params", media.JSONUTF8, media.JSONHandler{}},
		{"Padded-Params", "application/json ; charset=UTF-8", media.JSONHandler{}},
		{"Empty-Falls-Back", "", media.JSONHandler{}},
		{"Wildcard-Falls-Back", "*/*", media.JSONHandler{}},
		{"Registered", "text/csv", csvHandler{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := h.FindByMediaType(tc.mediaType, media.JSONUTF8)
			require.Nil(t, err)
			require.Equal(t, tc.output, actual)
		})
	}

	t.Run("Unregistered", func(t *testing.T) {
		_, err := h.FindByMediaType("application/msgpack", media.JSONUTF8)
		require.ErrorIs(t, err, media.ErrNoHandler)
	})

	t.Run("Unregistered-Default", func(t *testing.T) {
		_, err := h.FindByMediaType("", "application/msgpack")
		require.ErrorIs(t, err, media.ErrNoHandler)
	})
}

func TestHandlersRegister(t *testing.T) {
	t.Run("Replaces", func(t *testing.T) {
		h := media.NewHandlers()
		h.Register(media.JSONUTF8, csvHandler{})

		actual, err := h.FindByMediaType(media.JSON, media.JSON)
		require.Nil(t, err)
		require.Equal(t, csvHandler{}, actual)
	})
}

func TestHandlersRemove(t *testing.T) {
	t.Run("Removes", func(t *testing.T) {
		h := media.NewHandlers()
		h.Remove(media.JSONUTF8)

		_, err := h.FindByMediaType(media.JSON, media.JSON)
		require.ErrorIs(t, err, media.ErrNoHandler)
	})

	t.Run("Absent", func(t *testing.T) {
		h := media.NewHandlers()
		require.NotPanics(t, func() { h.Remove("text/csv") })
	})
}

func TestJSONHandlerSerialize(t *testing.T) {
	t.Run("Encodes", func(t *testing.T) {
		actual, err := media.JSONHandler{}.Serialize(map[string]int{"pages": 3}, media.JSON)
		require.Nil(t, err)
		require.JSONEq(t, `{"pages": 3}`, string(actual))
	})

	t.Run("Unencodable", func(t *testing.T) {
		_, err := media.JSONHandler{}.Serialize(make(chan int), media.JSON)
		require.NotNil(t, err)
	})
}
