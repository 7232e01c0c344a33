package domain_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/bucketbridge/domain"
)

func TestIsBinary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{name: "should treat png as binary", path: "images/logo.png", expected: true},
		{name: "should treat zip as binary", path: "archive.zip", expected: true},
		{name: "should treat pdf as binary", path: "docs/report.pdf", expected: true},
		{name: "should treat mp3 as binary", path: "audio/track.mp3", expected: true},
		{name: "should treat exe as binary", path: "bin/tool.exe", expected: true},
		{name: "should treat sqlite as binary", path: "data/state.sqlite", expected: true},
		{name: "should ignore extension case", path: "images/LOGO.PNG", expected: true},
		{name: "should treat txt as text", path: "a/b.txt", expected: false},
		{name: "should treat go source as text", path: "main.go", expected: false},
		{name: "should treat yaml as text", path: "config.yaml", expected: false},
		{name: "should treat unknown extension as text", path: "notes.xyz", expected: false},
		{name: "should treat extensionless file as text", path: "Makefile", expected: false},
		{name: "should treat dotfile as text", path: ".gitignore", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			result := domain.IsBinary(tt.path)

			// then
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEncodingFor(t *testing.T) {
	t.Parallel()

	t.Run("should pick base64 for binary files", func(t *testing.T) {
		t.Parallel()

		// when
		encoding := domain.EncodingFor("backup.tar.gz")

		// then
		assert.Equal(t, domain.EncodingBase64, encoding)
	})

	t.Run("should pick text for everything else", func(t *testing.T) {
		t.Parallel()

		// when
		encoding := domain.EncodingFor("README.md")

		// then
		assert.Equal(t, domain.EncodingText, encoding)
	})
}

func TestEncodeContent(t *testing.T) {
	t.Parallel()

	t.Run("should pass text content through unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		raw := []byte("hello, wörld\n")

		// when
		payload, encoding := domain.EncodeContent("a/b.txt", raw)

		// then
		assert.Equal(t, domain.EncodingText, encoding)
		assert.Equal(t, string(raw), payload)
	})

	t.Run("should round-trip binary content through base64", func(t *testing.T) {
		t.Parallel()

		// given
		raw := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0xff}

		// when
		payload, encoding := domain.EncodeContent("logo.png", raw)

		// then
		assert.Equal(t, domain.EncodingBase64, encoding)
		decoded, err := base64.StdEncoding.DecodeString(payload)
		require.NoError(t, err)
		assert.Equal(t, raw, decoded)
	})
}
