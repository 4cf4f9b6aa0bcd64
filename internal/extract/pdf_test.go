package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_EmptyInput(t *testing.T) {
	_, err := Text(nil)

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Nil(t, extractionErr.Cause)
}

func TestText_NotAPDF(t *testing.T) {
	_, err := Text([]byte("this is plain text, not a pdf file"))

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
}
