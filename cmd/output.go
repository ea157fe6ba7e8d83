package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// writeJSON encodes v as JSON to w, handling I/O errors at the boundary.
func writeJSON(w io.Writer, v interface{}) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(w, "{\"error\":%q}\n", err.Error())
	}
}

// writeYAML encodes v as YAML to w, handling I/O errors at the boundary.
func writeYAML(w io.Writer, v interface{}) {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(w, "error: %q\n", err.Error())
	}
	_ = enc.Close()
}

// palette holds the colors used for human-readable output.
type palette struct {
	bad  *color.Color
	good *color.Color
	bold *color.Color
}

func newPalette(noColor bool) palette {
	p := palette{
		bad:  color.New(color.FgRed, color.Bold),
		good: color.New(color.FgGreen, color.Bold),
		bold: color.New(color.Bold),
	}
	if noColor {
		p.bad.DisableColor()
		p.good.DisableColor()
		p.bold.DisableColor()
	}
	return p
}
