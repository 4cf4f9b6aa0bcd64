// Package extract converts uploaded PDF resumes into plain text for the parser.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dslipak/pdf"
)

// ExtractionError indicates that no usable text could be pulled from a PDF
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pdf extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("pdf extraction failed: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// Text extracts plain text from raw PDF bytes. It fails when the document
// cannot be read or yields no text (image-based or corrupted PDFs).
func Text(data []byte) (string, error) {
	if len(data) == 0 {
		return "", &ExtractionError{Message: "empty file"}
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Message: "cannot open document", Cause: err}
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", &ExtractionError{Message: "cannot read document text", Cause: err}
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", &ExtractionError{Message: "cannot buffer document text", Cause: err}
	}

	text := buf.String()
	if strings.TrimSpace(text) == "" {
		return "", &ExtractionError{Message: "document contains no extractable text"}
	}

	return text, nil
}
