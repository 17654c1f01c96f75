package utils

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"empty means unset", "", 0, false},
		{"plain bytes", "512", 512, false},
		{"kilobytes", "10KB", 10 * 1024, false},
		{"megabytes", "1MB", 1024 * 1024, false},
		{"fractional megabytes", "1.5MB", 1536 * 1024, false},
		{"gigabytes", "2GB", 2 * 1024 * 1024 * 1024, false},
		{"lowercase suffix", "10kb", 10 * 1024, false},
		{"surrounding whitespace", "  5KB ", 5 * 1024, false},
		{"garbage", "abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0, "0.0 B"},
		{500, "500.0 B"},
		{1023, "1023.0 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSize(tt.input))
	}
}

func TestParseHeaderArgs(t *testing.T) {
	headers := ParseHeaderArgs([]string{
		"Cookie: foo=bar",
		"Authorization:Basic dXNlcjpwYXNz",
		"malformed-no-separator",
		"Cookie: baz=qux",
	})
	assert.Equal(t, map[string]string{
		"Cookie":        "baz=qux", // last write wins
		"Authorization": "Basic dXNlcjpwYXNz",
	}, headers)
}

func TestParseTypes(t *testing.T) {
	types := ParseTypes("js, CSS ,png")
	assert.Equal(t, map[string]bool{"js": true, "css": true, "png": true}, types)

	wildcard := &DownloadPolicy{AllowedTypes: ParseTypes("*")}
	assert.True(t, wildcard.AllowsAll())
	narrow := &DownloadPolicy{AllowedTypes: types}
	assert.False(t, narrow.AllowsAll())
}

func TestCopyHeaders(t *testing.T) {
	original := map[string]string{"User-Agent": "x"}
	copied := CopyHeaders(original)
	copied["User-Agent"] = "y"
	assert.Equal(t, "x", original["User-Agent"])
}

func TestRandomUserAgent(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		assert.Contains(t, DesktopUserAgents, RandomUserAgent(UAModeDesktop, r))
		assert.Contains(t, MobileUserAgents, RandomUserAgent(UAModeMobile, r))
	}
	assert.Equal(t, "", RandomUserAgent(UAModeNone, r))
}

func TestReadURLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.txt")
	content := "https://a.example/x.js\n\n  https://b.example/y.css  \n\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	urls, err := ReadURLFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example/x.js", "https://b.example/y.css"}, urls)

	_, err = ReadURLFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
