// Package drawio reads draw.io (diagrams.net) files and extracts the text
// labels authored on their vertex shapes.
package drawio

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Node is one element of a parsed XML document. Attributes are exposed as a
// map keyed by local attribute name; Text is the concatenated character data
// directly inside the element.
type Node struct {
	Name     string
	Attrs    map[string]string
	Children []*Node
	Text     string
}

// Attr returns the value of the named attribute, or "" if it is absent.
func (n *Node) Attr(name string) string {
	return n.Attrs[name]
}

// Child returns the first child element with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns all child elements with the given name in document order.
func (n *Node) ChildrenNamed(name string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Parse reads a well-formed XML document into a Node tree. Documents that
// declare a non-UTF-8 encoding or start with a UTF-16 byte order mark are
// transcoded first.
func Parse(r io.Reader) (*Node, error) {
	dec := newDecoder(r)

	var (
		root  *Node
		stack []*Node
		text  []*strings.Builder
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{
				Name:  t.Name.Local,
				Attrs: make(map[string]string, len(t.Attr)),
			}
			for _, a := range t.Attr {
				n.Attrs[a.Name.Local] = a.Value
			}

			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("second root element <%s>", n.Name)
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
			text = append(text, &strings.Builder{})

		case xml.EndElement:
			last := len(stack) - 1
			stack[last].Text = text[last].String()
			stack = stack[:last]
			text = text[:last]

		case xml.CharData:
			if len(stack) == 0 {
				if strings.TrimSpace(string(t)) != "" {
					return nil, errors.New("character data outside the root element")
				}
				continue
			}
			text[len(text)-1].Write(t)
		}
	}

	if root == nil {
		return nil, errors.New("document has no root element")
	}
	return root, nil
}
