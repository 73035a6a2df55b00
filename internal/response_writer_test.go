package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w, false)

	rw.WriteHeader(http.StatusNotFound)

	assert.Equal(t, http.StatusNotFound, rw.Status())
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, rw.Written())
}

func TestResponseWriter_WriteHeader_HTMX(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		inputCode int
	}{
		{"200 stays 200", http.StatusOK},
		{"400 becomes 200", http.StatusBadRequest},
		{"404 becomes 200", http.StatusNotFound},
		{"500 becomes 200", http.StatusInternalServerError},
		{"303 becomes 200", http.StatusSeeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			rw := NewResponseWriter(w, true)

			rw.WriteHeader(tt.inputCode)

			assert.Equal(t, tt.inputCode, rw.Status(), "Status keeps the original code")
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestResponseWriter_WriteHeader_OnlyOnce(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w, false)

	rw.WriteHeader(http.StatusOK)
	rw.WriteHeader(http.StatusNotFound)

	assert.Equal(t, http.StatusOK, rw.Status())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResponseWriter_Write(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w, false)
	require.False(t, rw.Written())

	n, err := rw.Write([]byte("hello world"))
	require.NoError(t, err)
	assert.Equal(t, 11, n)

	_, err = rw.Write([]byte("!"))
	require.NoError(t, err)

	assert.True(t, rw.Written())
	assert.Equal(t, int64(12), rw.Size())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello world!", w.Body.String())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w, false)
	assert.Same(t, w, rw.Unwrap())

	rw.Flush()
	assert.True(t, w.Flushed)
}

func TestResponseWriter_Hijack_NotSupported(t *testing.T) {
	t.Parallel()

	rw := NewResponseWriter(httptest.NewRecorder(), false)
	_, _, err := rw.Hijack()
	require.ErrorIs(t, err, http.ErrNotSupported)
}
