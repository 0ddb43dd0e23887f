package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeautifyDocumentSample(t *testing.T) {
	out := Beautify("# Title\n**bold** text\n- item one\n- item two")

	require.Contains(t, out, "<h1>Title</h1>")
	require.Contains(t, out, "<strong>bold</strong>")
	require.Contains(t, out, "<ul><li>item one</li>\n<li>item two</li></ul>")
	require.Equal(t, 1, strings.Count(out, "<ul>"))
}

func TestBeautifyPlainTextUnchanged(t *testing.T) {
	in := "The tenant shall pay rent on the first day of each month."
	require.Equal(t, in, Beautify(in))
}

func TestBeautifyHeaderLevels(t *testing.T) {
	out := Beautify("## Parties\n### Landlord")
	assert.Equal(t, "<h2>Parties</h2>\n<h3>Landlord</h3>", out)
}

func TestBeautifyHeaderNeedsLineStart(t *testing.T) {
	out := Beautify("see clause # 4")
	assert.Equal(t, "see clause # 4", out)
}

func TestBeautifyBoldIsGlobalAndNonGreedy(t *testing.T) {
	out := Beautify("pay **$500** by **June 1**")
	assert.Equal(t, "pay <strong>$500</strong> by <strong>June 1</strong>", out)
}

func TestBeautifyBoldDoesNotCrossLines(t *testing.T) {
	out := Beautify("**open\nclose**")
	assert.NotContains(t, out, "<strong>")
}

func TestBeautifyStarBulletsAndIndent(t *testing.T) {
	out := Beautify("  * first\n\t- second")
	assert.Equal(t, "<ul><li>first</li>\n<li>second</li></ul>", out)
}

func TestBeautifyNonAdjacentItemsWrappedSeparately(t *testing.T) {
	out := Beautify("- a\nbetween\n- b")
	assert.Equal(t, 2, strings.Count(out, "<ul>"))
	assert.Contains(t, out, "<ul><li>a</li></ul>")
	assert.Contains(t, out, "<ul><li>b</li></ul>")
}

func TestBeautifyLineBreaksInProse(t *testing.T) {
	out := Beautify("line one\nline two\n\nline three")
	assert.Equal(t, "line one<br>line two<br><br>line three", out)
}

func TestBeautifyKeepsNewlinesBetweenTags(t *testing.T) {
	out := Beautify("# Heading\ntext after")
	assert.Equal(t, "<h1>Heading</h1>\ntext after", out)

	out = Beautify("text before\n## Heading")
	assert.Equal(t, "text before\n<h2>Heading</h2>", out)
}

func TestStepsOrder(t *testing.T) {
	names := make([]string, 0, len(Steps))
	for _, s := range Steps {
		names = append(names, s.Name)
	}
	require.Equal(t, []string{"headers", "bold", "list_items", "list_runs", "line_breaks"}, names)
}
