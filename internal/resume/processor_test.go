package resume

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleSampleResume(t *testing.T) {
	record := assemble(sampleResume)

	assert.Equal(t, sampleResume, record.FullText)
	assert.Equal(t, "john@x.com", record.Email)
	assert.Equal(t, "555-123-4567", record.Phone)
	assert.Equal(t, "John Doe", record.Name)
	require.Equal(t, []string{SectionPersonal, "EDUCATION", "EXPERIENCE"}, record.Sections.Names())
}

func TestAssembleIsIdempotent(t *testing.T) {
	first := assemble(sampleResume)
	second := assemble(sampleResume)
	require.Equal(t, first, second)
}

func TestAssembleMissingFieldsStayEmpty(t *testing.T) {
	record := assemble("EDUCATION\nBS CS")

	assert.Empty(t, record.Email)
	assert.Empty(t, record.Phone)
	assert.Equal(t, "EDUCATION", record.Name)
}

func TestProcessRejectsEmptyInput(t *testing.T) {
	record, err := Process(nil)

	require.Error(t, err)
	assert.Nil(t, record)

	var procErr *ProcessingError
	assert.True(t, errors.As(err, &procErr))
}

func TestProcessRejectsUndecodableBytes(t *testing.T) {
	record, err := Process([]byte("this is not a pdf document"))

	require.Error(t, err)
	assert.Nil(t, record)

	var procErr *ProcessingError
	require.True(t, errors.As(err, &procErr))

	// The extraction failure stays reachable through the wrap chain.
	var extractErr *ExtractionError
	assert.True(t, errors.As(err, &extractErr))
}
