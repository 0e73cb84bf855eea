package util

import (
	"encoding/json"
	"io"
)

// PrintPrettyJSON writes v to w as indented JSON followed by a newline.
// HTML characters are left unescaped so prompts and URLs print as typed.
func PrintPrettyJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
