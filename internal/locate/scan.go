package locate

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/xonecas/pydocstring/internal/treesitter"
)

// Declaration header patterns. A header sits on its own line, may be indented,
// and ends with a colon. Parameter lists are matched lazily, so a default
// value holding nested brackets can cut the match short.
const (
	classPattern = `(class)\s+([^\s\(\):]+)\s*(\(([\s\S]*?)\))?`
	funcPattern  = `(?:async\s*)?(def)\s+([^\s\(\):]+)\s*\(([\s\S]*?)\)\s*(->.*?)?`

	// An unterminated string swallows the rest of the document. The cursor is
	// usually above it, so only declarations before the cursor matter.
	stringPattern  = `("""[\s\S]*?""")|("[\s\S]*?")|('''[\s\S]*?''')|('[\s\S]*?')`
	commentPattern = `#.*`
)

var (
	declRe    = regexp2.MustCompile(`^[^\S\n]*(`+classPattern+`|`+funcPattern+`)\s*:`, regexp2.Multiline)
	stringRe  = regexp2.MustCompile(stringPattern, regexp2.None)
	commentRe = regexp2.MustCompile(commentPattern, regexp2.None)
)

// Document scans raw source text for declarations without a syntax tree.
type Document struct {
	text    string
	offsets []int // rune index -> byte offset, with a final entry for len(text)

	excluded []Span
}

// NewDocument prepares text for scanning.
func NewDocument(text string) *Document {
	offsets := make([]int, 0, len(text)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))
	d := &Document{text: text, offsets: offsets}
	d.excluded = append(d.FindAll(commentRe), d.FindAll(stringRe)...)
	return d
}

// FindAll returns the byte spans of all non-overlapping matches of re.
func (d *Document) FindAll(re *regexp2.Regexp) []Span {
	var spans []Span
	m, err := re.FindStringMatch(d.text)
	for err == nil && m != nil {
		spans = append(spans, Span{
			Start: d.offsets[m.Index],
			End:   d.offsets[m.Index+m.Length],
		})
		m, err = re.FindNextMatch(m)
	}
	return spans
}

// Declarations returns the header spans of every class and function
// declaration, in document order, skipping headers that overlap a comment or
// string unless that comment or string lies strictly inside the header (a
// string default value, for instance).
func (d *Document) Declarations() []Span {
	var decls []Span
	for _, rng := range d.FindAll(declRe) {
		if !d.overlapsExcluded(rng) {
			decls = append(decls, rng)
		}
	}
	return decls
}

func (d *Document) overlapsExcluded(rng Span) bool {
	for _, exc := range d.excluded {
		if min(rng.End, exc.End)-max(rng.Start, exc.Start) <= 0 {
			continue
		}
		if rng.End > exc.End && rng.Start < exc.Start {
			continue
		}
		return true
	}
	return false
}

func (d *Document) inExcluded(off int) bool {
	for _, exc := range d.excluded {
		if exc.Start < off && off < exc.End {
			return true
		}
	}
	return false
}

// Indent returns the width in bytes of the header's leading whitespace.
func (d *Document) Indent(header Span) int {
	text := d.text[header.Start:header.End]
	return len(text) - len(strings.TrimLeft(text, " \t"))
}

// Block returns the span from header to the next declaration indented no
// deeper than header, or to the end of the document.
func (d *Document) Block(header Span, decls []Span) Span {
	indent := d.Indent(header)
	for _, next := range decls {
		if next.Start <= header.Start {
			continue
		}
		if d.Indent(next) <= indent {
			return Span{Start: header.Start, End: next.Start}
		}
	}
	return Span{Start: header.Start, End: len(d.text)}
}

// Body returns the span from header to the end of the last line indented
// deeper than the header, within the header's block. Blank lines, comment
// lines and lines continuing a string do not end the body. A comment line
// indented deeper than the header extends it.
func (d *Document) Body(header Span, decls []Span) Span {
	block := d.Block(header, decls)
	indent := d.Indent(header)
	end := lineEnd(d.text, header.End)

	for lineStart := end + 1; lineStart < block.End; {
		next := lineEnd(d.text, lineStart)
		line := d.text[lineStart:next]
		trimmed := strings.TrimLeft(line, " \t")
		deeper := len(line)-len(trimmed) > indent
		switch {
		case strings.TrimSpace(trimmed) == "":
		case strings.HasPrefix(trimmed, "#"):
			if deeper {
				end = lineStart + len(strings.TrimRight(line, " \t\r"))
			}
		case !deeper && !d.inExcluded(lineStart):
			return Span{Start: header.Start, End: end}
		default:
			end = lineStart + len(strings.TrimRight(line, " \t\r"))
		}
		lineStart = next + 1
	}
	return Span{Start: header.Start, End: min(end, block.End)}
}

func lineEnd(text string, from int) int {
	if from >= len(text) {
		return len(text)
	}
	if i := strings.IndexByte(text[from:], '\n'); i >= 0 {
		return from + i
	}
	return len(text)
}

// ScanLocator finds declaration headers with regular expressions and picks the
// innermost one whose body contains the cursor. The syntax node handed to the
// extractor is the tree node starting at the matched header.
type ScanLocator struct{}

// Locate implements Locator.
func (ScanLocator) Locate(src *treesitter.Source, pos Position) (Declaration, error) {
	off, err := Offset(src.Text, pos)
	if err != nil {
		return Declaration{}, err
	}
	doc := NewDocument(string(src.Text))
	decls := doc.Declarations()

	for i := len(decls) - 1; i >= 0; i-- {
		header := decls[i]
		if header.Start > off {
			continue
		}
		body := doc.Body(header, decls)
		if !body.Contains(off) {
			continue
		}
		return doc.declaration(src, header, body)
	}
	return declarationFor(src, src.Root())
}

func (d *Document) declaration(src *treesitter.Source, header, body Span) (Declaration, error) {
	keyword := header.Start + d.Indent(header)
	want := treesitter.NodeFunction
	kind := KindFunction
	if strings.HasPrefix(d.text[keyword:header.End], "class") {
		want = treesitter.NodeClass
		kind = KindClass
	}
	for n := src.LeafAt(keyword); n != nil; n = n.Parent() {
		if n.Type() == want && int(n.StartByte()) == keyword {
			return Declaration{Kind: kind, Span: body, Node: n}, nil
		}
	}
	return Declaration{}, fmt.Errorf("%w: no %s node at byte %d", ErrNoScope, kind, keyword)
}
