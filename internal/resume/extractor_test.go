package resume

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextRejectsGarbage(t *testing.T) {
	_, err := ExtractText([]byte("%PDF-definitely-not"))

	require.Error(t, err)

	var extractErr *ExtractionError
	assert.True(t, errors.As(err, &extractErr))
}

func TestExtractTextRejectsEmptyInput(t *testing.T) {
	_, err := ExtractText(nil)
	require.Error(t, err)
}
