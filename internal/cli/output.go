package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormatter writes a command result as indented JSON or plain text.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Print writes data as JSON, or the text lines otherwise.
func (f *OutputFormatter) Print(data any, text ...string) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
	for _, line := range text {
		if _, err := fmt.Fprintln(f.Writer, line); err != nil {
			return err
		}
	}
	return nil
}
