package intake

import (
	"errors"
	"strings"
	"testing"

	"legalcopilot/internal/intake/pdffixture"

	"github.com/stretchr/testify/require"
)

func TestExtractTextRejectsEmptyUpload(t *testing.T) {
	_, err := ExtractText(nil, "contract.pdf")
	require.True(t, errors.Is(err, ErrEmptyUpload))

	_, err = ExtractText([]byte("%PDF-1.4"), "")
	require.True(t, errors.Is(err, ErrEmptyUpload))
}

func TestExtractTextRejectsNonPDF(t *testing.T) {
	_, err := ExtractText([]byte("plain text"), "doc.txt")
	require.ErrorIs(t, err, ErrInvalidFileKind)
}

func TestExtractTextUnreadablePDF(t *testing.T) {
	_, err := ExtractText([]byte("this is not a pdf"), "broken.pdf")
	require.ErrorIs(t, err, ErrUnreadablePDF)
}

func TestExtractTextJoinsPagesInOrder(t *testing.T) {
	data := pdffixture.Build("Lease Agreement", "", "Signed by both parties")

	text, err := ExtractText(data, "Lease.PDF")
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(text, "\n"))

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "Lease Agreement")
	require.Empty(t, strings.TrimSpace(lines[1]))
	require.Contains(t, lines[2], "Signed by both parties")
}

func TestSanitizePageText(t *testing.T) {
	require.Equal(t, "abcd\n\txy", sanitizePageText("ab\x00cd\x01\x02\n\txy"))
}

func TestIsPDFName(t *testing.T) {
	require.True(t, IsPDFName("a.pdf"))
	require.True(t, IsPDFName("A.PDF "))
	require.False(t, IsPDFName("a.pdf.txt"))
}
