package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dgallion1/folio/internal/doctree"
)

// Parser converts raw document bytes into a DocTree.
type Parser interface {
	Parse(r io.Reader, filename string) (*doctree.DocTree, error)
}

// SupportedExtensions lists file extensions usable as case-study bodies, in
// lookup order.
var SupportedExtensions = []string{".md", ".markdown", ".html", ".htm", ".txt"}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range SupportedExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// idSet hands out unique anchor ids within one document.
type idSet map[string]int

// claim returns id, or id-1, id-2... when id was already handed out.
func (s idSet) claim(id string) string {
	n, taken := s[id]
	s[id] = n + 1
	if !taken {
		return id
	}
	next := id + "-" + strconv.Itoa(n)
	for {
		if _, dup := s[next]; !dup {
			break
		}
		n++
		next = id + "-" + strconv.Itoa(n)
	}
	s[next] = 1
	return next
}
