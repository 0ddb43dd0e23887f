package intake

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	ErrEmptyUpload     = errors.New("no file provided")
	ErrInvalidFileKind = errors.New("invalid file type")
	ErrUnreadablePDF   = errors.New("unreadable pdf")
)

// ExtractText returns the plain text of every page of a PDF, each page followed
// by a newline, in page order. Pages without extractable text still contribute
// their newline.
func ExtractText(data []byte, filename string) (string, error) {
	if strings.TrimSpace(filename) == "" || len(data) == 0 {
		return "", ErrEmptyUpload
	}
	if !IsPDFName(filename) {
		return "", fmt.Errorf("%w: %s", ErrInvalidFileKind, filename)
	}
	pages, err := extractPages(data)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, p := range pages {
		b.WriteString(p)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func IsPDFName(filename string) bool {
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(filename)), ".pdf")
}

// extractPages recovers from panics inside the pdf reader, which some
// malformed files trigger.
func extractPages(data []byte) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("%w: %v", ErrUnreadablePDF, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadablePDF, err)
	}
	n := r.NumPage()
	pages = make([]string, 0, n)
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrUnreadablePDF, i, err)
		}
		pages = append(pages, sanitizePageText(text))
	}
	return pages, nil
}

// sanitizePageText drops NUL and other control bytes some PDF extractors emit,
// keeping common whitespace.
func sanitizePageText(s string) string {
	if s == "" {
		return s
	}
	r := make([]rune, 0, len(s))
	for _, ch := range s {
		if ch == '\n' || ch == '\r' || ch == '\t' {
			r = append(r, ch)
			continue
		}
		if ch < 0x20 || ch == 0x7f {
			continue
		}
		r = append(r, ch)
	}
	return string(r)
}
