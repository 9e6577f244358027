package script

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dsnet/compress/bzip2"
)

// heredocMarker delimits embedded file data in the generated script.
const heredocMarker = "__EOFF__"

// translateCopy embeds the source file's bytes into the script as a
// bzip2-compressed, base64-encoded here-document. The generated fragment
// decodes the data at run time with `base64 -d | bunzip2`, so both tools
// must exist on the target host.
func (t *Translator) translateCopy(value string) (string, error) {
	// Extra fields beyond source and destination are ignored.
	args := strings.Fields(value)
	if len(args) < 2 {
		return "", &TranslateError{Op: "COPY", Message: "expected source and destination"}
	}
	src, dst := args[0], args[1]

	// Resolve the source relative to the Dockerfile's directory when the
	// path hint carries one; otherwise relative to the working directory.
	if strings.Contains(t.Dockerfile, "/") {
		src = filepath.Join(filepath.Dir(t.Dockerfile), src)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return "", &TranslateError{Op: "COPY", Message: fmt.Sprintf("read source %q", src), Err: err}
	}

	encoded, err := compressAndEncode(data)
	if err != nil {
		return "", &TranslateError{Op: "COPY", Message: fmt.Sprintf("compress source %q", src), Err: err}
	}

	return fmt.Sprintf("cat << %s | base64 -d | bunzip2 > %s\n%s\n%s\n",
		heredocMarker, dst, encoded, heredocMarker), nil
}

// compressAndEncode bzip2-compresses data at the highest level and encodes
// the result with standard base64.
func compressAndEncode(data []byte) (string, error) {
	var buf bytes.Buffer

	w, err := bzip2.NewWriter(&buf, &bzip2.WriterConfig{Level: bzip2.BestCompression})
	if err != nil {
		return "", err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
