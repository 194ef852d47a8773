package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("BLOG_TEST_STRING", "value")
	assert.Equal(t, "value", GetEnvString("BLOG_TEST_STRING", "default"))
	assert.Equal(t, "default", GetEnvString("BLOG_TEST_STRING_UNSET", "default"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "unset", value: "", want: 7},
		{name: "valid", value: "42", want: 42},
		{name: "padded", value: " 12 ", want: 12},
		{name: "negative", value: "-1", want: -1},
		{name: "invalid", value: "abc", want: 7},
		{name: "trailing garbage", value: "10x", want: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BLOG_TEST_INT", tt.value)
			assert.Equal(t, tt.want, GetEnvInt("BLOG_TEST_INT", 7))
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "", want: true},
		{value: "false", want: false},
		{value: "0", want: false},
		{value: "TRUE", want: true},
		{value: "yes", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("BLOG_TEST_BOOL", tt.value)
			assert.Equal(t, tt.want, GetEnvBool("BLOG_TEST_BOOL", true))
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("BLOG_TEST_DURATION", "1m30s")
	assert.Equal(t, 90*time.Second, GetEnvDuration("BLOG_TEST_DURATION", time.Second))

	t.Setenv("BLOG_TEST_DURATION", "soon")
	assert.Equal(t, time.Second, GetEnvDuration("BLOG_TEST_DURATION", time.Second))
}

func TestGetEnvStringList(t *testing.T) {
	def := []string{"Fiction"}

	t.Setenv("BLOG_TEST_LIST", "Fiction, Non-Fiction ,, Poetry")
	assert.Equal(t, []string{"Fiction", "Non-Fiction", "Poetry"}, GetEnvStringList("BLOG_TEST_LIST", def))

	t.Setenv("BLOG_TEST_LIST", " , ")
	assert.Equal(t, def, GetEnvStringList("BLOG_TEST_LIST", def))

	t.Setenv("BLOG_TEST_LIST", "")
	assert.Equal(t, def, GetEnvStringList("BLOG_TEST_LIST", def))
}
