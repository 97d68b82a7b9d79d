package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nao1215/rentsum/internal/model"
)

// JSONWriter outputs reports as indented JSON.
// This format carries every field of the report, including metadata the
// human-readable formats omit, and is meant for machine consumption.
type JSONWriter struct {
	baseWriter
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report as indented JSON followed by a newline.
func (w *JSONWriter) Write(report *model.MarketReport) (int, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to serialize report: %w", err)
	}
	data = append(data, '\n')
	return w.output.Write(data)
}
