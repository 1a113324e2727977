// Package document applies presentation side effects to an HTML file: the
// root element's class and the theme-color meta tags.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/bnema/lookout/internal/application/port"
)

// MetaColorNames are the meta tags whose content follows the theme color.
var MetaColorNames = []string{"theme-color", "msapplication-navbutton-color"}

// ErrNoRoot is returned when the document has no <html> element.
var ErrNoRoot = errors.New("document has no html element")

// Sink implements port.PresentationSink for an HTML file on disk.
// Every call rewrites the file atomically.
type Sink struct {
	mu   sync.Mutex
	path string
}

// NewSink creates a sink for the document at path.
func NewSink(path string) *Sink {
	return &Sink{path: path}
}

// Path returns the document path.
func (s *Sink) Path() string {
	return s.path
}

// ApplyThemeClass implements port.PresentationSink.
func (s *Sink) ApplyThemeClass(name string) error {
	return s.edit(func(doc *html.Node) error {
		root := findElement(doc, atom.Html)
		if root == nil {
			return ErrNoRoot
		}
		setAttr(root, "class", name)
		return nil
	})
}

// SetMetaColor implements port.PresentationSink. Missing meta tags are
// created at the end of <head>.
func (s *Sink) SetMetaColor(value string) error {
	return s.edit(func(doc *html.Node) error {
		head := findElement(doc, atom.Head)
		if head == nil {
			return fmt.Errorf("%w: no head", ErrNoRoot)
		}
		for _, name := range MetaColorNames {
			meta := findMeta(head, name)
			if meta == nil {
				meta = &html.Node{
					Type:     html.ElementNode,
					DataAtom: atom.Meta,
					Data:     "meta",
					Attr:     []html.Attribute{{Key: "name", Val: name}},
				}
				head.AppendChild(meta)
			}
			setAttr(meta, "content", value)
		}
		return nil
	})
}

func (s *Sink) edit(fn func(doc *html.Node) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	if err := fn(doc); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	if bytes.Equal(buf.Bytes(), data) {
		return nil
	}
	return writeAtomic(s.path, buf.Bytes())
}

// writeAtomic writes to a temp file in the same directory and renames it
// over path, keeping path's permissions.
func writeAtomic(path string, data []byte) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func findMeta(head *html.Node, name string) *html.Node {
	for c := head.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Meta && strings.EqualFold(getAttr(c, "name"), name) {
			return c
		}
	}
	return nil
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// Inspect returns the root class and the theme-color content of the document at path.
func Inspect(path string) (class, color string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read document: %w", err)
	}
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return "", "", fmt.Errorf("parse document: %w", err)
	}
	if root := findElement(doc, atom.Html); root != nil {
		class = getAttr(root, "class")
	}
	if head := findElement(doc, atom.Head); head != nil {
		if meta := findMeta(head, MetaColorNames[0]); meta != nil {
			color = getAttr(meta, "content")
		}
	}
	return class, color, nil
}

var _ port.PresentationSink = (*Sink)(nil)
