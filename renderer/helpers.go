package renderer

import (
	"fmt"
	"io"
	"strings"
)

// section writes a level 2 section. A section without content is left out,
// heading included.
func section(w io.Writer, title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	fmt.Fprintf(w, "## %s\n\n%s\n", title, body)
}
