// Package markup renders the small markdown subset the model is asked to use
// (headers, bold, bullet lists, line breaks) into HTML fragments.
package markup

import (
	"regexp"
	"strings"
)

// Step is one pure string-to-string pass of the renderer.
type Step struct {
	Name  string
	Apply func(string) string
}

var (
	h1Line     = regexp.MustCompile(`(?m)^# (.*)$`)
	h2Line     = regexp.MustCompile(`(?m)^## (.*)$`)
	h3Line     = regexp.MustCompile(`(?m)^### (.*)$`)
	boldSpan   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	bulletLine = regexp.MustCompile(`(?m)^[ \t]*[-*][ \t]*(.*)$`)
	listRun    = regexp.MustCompile(`<li>.*?</li>(?:\n<li>.*?</li>)*`)
)

// Steps is the ordered pipeline used by Beautify. Order matters: bullets must
// become <li> before runs are merged, and line breaks are decided last so they
// can see the tags produced by every earlier pass.
var Steps = []Step{
	{Name: "headers", Apply: headers},
	{Name: "bold", Apply: bold},
	{Name: "list_items", Apply: listItems},
	{Name: "list_runs", Apply: listRuns},
	{Name: "line_breaks", Apply: lineBreaks},
}

// Beautify converts markdown tokens in text to HTML. It never fails; input
// that matches no rule is returned unchanged.
func Beautify(text string) string {
	for _, s := range Steps {
		text = s.Apply(text)
	}
	return text
}

func headers(s string) string {
	s = h1Line.ReplaceAllString(s, "<h1>$1</h1>")
	s = h2Line.ReplaceAllString(s, "<h2>$1</h2>")
	return h3Line.ReplaceAllString(s, "<h3>$1</h3>")
}

func bold(s string) string {
	return boldSpan.ReplaceAllString(s, "<strong>$1</strong>")
}

func listItems(s string) string {
	return bulletLine.ReplaceAllString(s, "<li>$1</li>")
}

// listRuns wraps each run of <li> lines in one <ul>. Items separated by
// anything other than a single newline start a new run.
func listRuns(s string) string {
	return listRun.ReplaceAllString(s, "<ul>$0</ul>")
}

// lineBreaks turns a newline into <br> unless it sits between a closing '>'
// and an opening '<'. Either neighbour being a tag boundary keeps the newline.
func lineBreaks(s string) string {
	if !strings.Contains(s, "\n") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 16)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\n' {
			b.WriteByte(c)
			continue
		}
		afterTag := i > 0 && s[i-1] == '>'
		beforeTag := i+1 < len(s) && s[i+1] == '<'
		if afterTag || beforeTag {
			b.WriteByte(c)
			continue
		}
		b.WriteString("<br>")
	}
	return b.String()
}
