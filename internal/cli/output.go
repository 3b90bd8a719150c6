package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats for the --output flag.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

func addOutputFlag(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVarP(output, "output", "o", outputTable, "Output format: table, json, or yaml")
}

// renderRaw writes the retained wire document in the requested format,
// falling back to the given table renderer. json passes the service's
// document through unmodified (re-indented only).
func renderRaw(w io.Writer, format string, raw json.RawMessage, table func(io.Writer) error) error {
	switch format {
	case outputTable, "":
		return table(w)
	case outputJSON:
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return err
		}
		buf.WriteByte('\n')
		_, err := w.Write(buf.Bytes())
		return err
	case outputYAML:
		var value any
		if err := json.Unmarshal(raw, &value); err != nil {
			return err
		}
		return yaml.NewEncoder(w).Encode(value)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// rawArray joins per-item wire documents into one JSON array document.
func rawArray(docs []json.RawMessage) json.RawMessage {
	combined, err := json.Marshal(docs)
	if err != nil {
		// docs are valid JSON by construction
		return json.RawMessage("[]")
	}
	return combined
}

// formatTime renders a timestamp for table output, "-" when unset.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

// firstLine flattens s to its first line for single-line table cells.
func firstLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
