// Package content loads the static comparison copy shown on the home page.
package content

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

//go:embed comparison.md
var comparisonSource []byte

// Section describes one approach.
type Section struct {
	Name    string
	Summary string
	BestFor []string
	Pros    []string
	Cons    []string
}

// Comparison is the parsed comparison page.
type Comparison struct {
	Title    string
	Intro    string
	Sections []Section
}

// Section returns the section called name, matched case-insensitively.
func (c Comparison) Section(name string) (Section, bool) {
	for _, section := range c.Sections {
		if strings.EqualFold(section.Name, name) {
			return section, true
		}
	}
	return Section{}, false
}

// Default parses the embedded comparison page.
func Default() (Comparison, error) {
	return Parse(comparisonSource)
}

// Parse reads a comparison page. A level-one heading is the title, each
// level-two heading starts a section, and level-three headings named
// "Best for", "Pros" or "Cons" introduce the list that follows them.
// Paragraphs before the first section form the intro; paragraphs inside a
// section form its summary.
func Parse(source []byte) (Comparison, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var (
		out     Comparison
		current *Section
		target  *[]string
	)

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			title := nodeText(node, source)
			switch node.Level {
			case 1:
				out.Title = title
			case 2:
				out.Sections = append(out.Sections, Section{Name: title})
				current = &out.Sections[len(out.Sections)-1]
				target = nil
			default:
				if current == nil {
					return ast.WalkStop, fmt.Errorf("heading %q appears before any section", title)
				}
				switch strings.ToLower(title) {
				case "best for":
					target = &current.BestFor
				case "pros":
					target = &current.Pros
				case "cons":
					target = &current.Cons
				default:
					return ast.WalkStop, fmt.Errorf("unknown list heading %q in section %q", title, current.Name)
				}
			}
			return ast.WalkSkipChildren, nil
		case *ast.ListItem:
			if target == nil {
				return ast.WalkStop, fmt.Errorf("list item %q has no heading", nodeText(node, source))
			}
			*target = append(*target, nodeText(node, source))
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			para := nodeText(node, source)
			if current == nil {
				out.Intro = joinParagraph(out.Intro, para)
			} else {
				current.Summary = joinParagraph(current.Summary, para)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return Comparison{}, fmt.Errorf("parse comparison: %w", err)
	}
	if out.Title == "" {
		return Comparison{}, fmt.Errorf("parse comparison: missing title")
	}
	return out, nil
}

func joinParagraph(existing, next string) string {
	if existing == "" {
		return next
	}
	return existing + "\n\n" + next
}

// nodeText concatenates the inline text below n, turning soft line breaks
// into spaces.
func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	var collect func(ast.Node)
	collect = func(node ast.Node) {
		switch t := node.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
			return
		case *ast.String:
			b.Write(t.Value)
			return
		}
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			collect(child)
		}
	}
	collect(n)
	return strings.TrimSpace(b.String())
}
