package export

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
)

// CopyToClipboard writes the content to the terminal clipboard using
// OSC52. The writer defaults to stderr when nil: stdout belongs to the
// renderer while the TUI is running, stderr still reaches the terminal.
func CopyToClipboard(content string, w io.Writer) error {
	if w == nil {
		w = os.Stderr
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(content))
	_, err := fmt.Fprintf(w, "\x1b]52;c;%s\a", encoded)
	return err
}
