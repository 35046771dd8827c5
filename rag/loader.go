package rag

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/russross/blackfriday/v2"

	"github.com/poiesic/lingcomp/core"
)

// LoadDirectory reads every .txt and .md file directly inside dir, sorted by
// name. Markdown is reduced to its text. Files with no text are skipped.
func LoadDirectory(dir string) ([]*core.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var docs []*core.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".txt" && ext != ".md" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		text := string(data)
		if ext == ".md" {
			text = MarkdownToText(data)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		docs = append(docs, &core.Document{Path: path, Text: text})
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDocuments, dir)
	}
	slices.SortFunc(docs, func(a, b *core.Document) int {
		return strings.Compare(a.Path, b.Path)
	})
	return docs, nil
}

// MarkdownToText renders the text content of a markdown document.
// Block elements end with a blank line; link targets and HTML are dropped.
func MarkdownToText(source []byte) string {
	md := blackfriday.New(blackfriday.WithExtensions(blackfriday.CommonExtensions))
	root := md.Parse(source)

	var sb strings.Builder
	root.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		switch node.Type {
		case blackfriday.Text, blackfriday.Code:
			if entering {
				sb.Write(node.Literal)
			}
		case blackfriday.CodeBlock:
			if entering {
				sb.Write(node.Literal)
				sb.WriteString("\n")
			}
		case blackfriday.Softbreak, blackfriday.Hardbreak:
			if entering {
				sb.WriteString("\n")
			}
		case blackfriday.Paragraph, blackfriday.Heading, blackfriday.Item, blackfriday.TableRow:
			if !entering {
				sb.WriteString("\n\n")
			}
		case blackfriday.TableCell:
			if !entering {
				sb.WriteString("\t")
			}
		}
		return blackfriday.GoToNext
	})

	return strings.TrimSpace(collapseBlankLines(sb.String()))
}

func collapseBlankLines(s string) string {
	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n\n")
	}
	return s
}
