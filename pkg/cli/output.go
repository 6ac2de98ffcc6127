package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/m-mizutani/goerr/v2"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to write JSON output")
	}
	return nil
}

func writeLine(w io.Writer, v any) error {
	if _, err := fmt.Fprintln(w, v); err != nil {
		return goerr.Wrap(err, "failed to write output")
	}
	return nil
}
