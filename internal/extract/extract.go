package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoPDF is returned by FindFirstPDF when a directory contains no PDF files.
var ErrNoPDF = errors.New("no PDF files found")

// Error wraps a failure while parsing a PDF or reading its pages.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("extract text from %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Text extracts the plain text of every page of the PDF at path, concatenated
// in page order. Any page failure aborts the whole extraction; there is no
// partial result. A missing file returns an error satisfying
// errors.Is(err, fs.ErrNotExist); anything else wraps the cause in *Error.
func Text(path string) (text string, err error) {
	// The pdf package panics on some malformed inputs instead of returning
	// an error; convert those to *Error so callers see a single failure mode.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &Error{Path: path, Err: fmt.Errorf("malformed pdf: %v", r)}
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return "", &Error{Path: path, Err: err}
	}
	r, err := pdf.NewReader(f, fi.Size())
	if err != nil {
		return "", &Error{Path: path, Err: err}
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", &Error{Path: path, Err: fmt.Errorf("page %d: %w", i, err)}
		}
		b.WriteString(content)
	}

	return b.String(), nil
}

// FindFirstPDF returns the path of the first *.pdf file in dir, in lexical
// order. Subdirectories are not descended into. Returns ErrNoPDF when the
// directory has no PDF files.
func FindFirstPDF(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read directory %s: %w", dir, err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".pdf") {
			return filepath.Join(dir, e.Name()), nil
		}
	}

	return "", ErrNoPDF
}
