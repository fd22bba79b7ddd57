package services

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHTML = "<!DOCTYPE html><html><body><h1>John Doe</h1></body></html>"

func TestBuildZipContainsPortfolioAndReadme(t *testing.T) {
	packager := NewPackagerService()

	data, err := packager.BuildZip(testHTML, "portfolio")
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, reader.File, 2)

	files := map[string]string{}
	for _, f := range reader.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		files[f.Name] = string(content)
	}

	assert.Equal(t, testHTML, files["portfolio.html"])
	assert.Contains(t, files["README.txt"], "Portfolio Website")
	assert.Contains(t, files["README.txt"], "Netlify")
}

func TestBuildZipDefaultsBaseName(t *testing.T) {
	packager := NewPackagerService()

	data, err := packager.BuildZip(testHTML, "")
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var names []string
	for _, f := range reader.File {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "portfolio.html")
}

func TestEncodeDataURI(t *testing.T) {
	packager := NewPackagerService()

	uri := packager.EncodeDataURI(testHTML)

	require.True(t, strings.HasPrefix(uri, "data:text/html;base64,"))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:text/html;base64,"))
	require.NoError(t, err)
	assert.Equal(t, testHTML, string(decoded))
}
