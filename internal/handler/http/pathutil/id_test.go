package pathutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "1", want: 1},
		{in: "9223372036854775807", want: 9223372036854775807},
		{in: "0", wantErr: true},
		{in: "-3", wantErr: true},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "12abc", wantErr: true},
		{in: "9223372036854775808", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseID(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidID, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestPathID(t *testing.T) {
	var got int64
	var gotErr error
	mux := http.NewServeMux()
	mux.HandleFunc("GET /authors/{id}", func(w http.ResponseWriter, r *http.Request) {
		got, gotErr = PathID(r)
	})

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/authors/42", nil))
	assert.NoError(t, gotErr)
	assert.Equal(t, int64(42), got)

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/authors/x", nil))
	assert.ErrorIs(t, gotErr, ErrInvalidID)
}

func TestPathID_NoWildcard(t *testing.T) {
	_, err := PathID(httptest.NewRequest(http.MethodGet, "/authors/42", nil))
	assert.ErrorIs(t, err, ErrInvalidID)
}
