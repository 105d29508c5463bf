package drawio

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/bpe-analyzer/internal/domain"
)

// Extract parses a draw.io document and returns the unique multi-word labels
// of its vertex shapes in document order. Any parse failure, including an
// unrecognized root element, is returned as a *domain.ParseError.
func Extract(r io.Reader) ([]string, error) {
	doc, err := Parse(r)
	if err != nil {
		return nil, domain.NewParseError(err)
	}
	return Labels(doc)
}

// ExtractString is Extract over an in-memory document.
func ExtractString(content string) ([]string, error) {
	return Extract(strings.NewReader(content))
}

// Labels walks an already parsed document. The root must be <mxfile> or a
// bare <mxGraphModel>.
func Labels(doc *Node) ([]string, error) {
	models, err := graphModels(doc)
	if err != nil {
		return nil, domain.NewParseError(err)
	}

	var c labelCollector
	for _, m := range models {
		for _, v := range vertexValues(m) {
			c.add(PlainText(v))
		}
	}
	return c.labels, nil
}

func graphModels(doc *Node) ([]*Node, error) {
	switch doc.Name {
	case "mxGraphModel":
		return []*Node{doc}, nil
	case "mxfile":
		var models []*Node
		for i, d := range doc.ChildrenNamed("diagram") {
			m, err := diagramModel(d)
			if err != nil {
				return nil, fmt.Errorf("diagram %d (%q): %w", i+1, d.Attr("name"), err)
			}
			if m != nil {
				models = append(models, m)
			}
		}
		return models, nil
	}
	return nil, fmt.Errorf("unexpected root element <%s>", doc.Name)
}

// diagramModel returns the graph model of a <diagram>, inflating it when it
// is stored compressed. A diagram with neither yields nil.
func diagramModel(d *Node) (*Node, error) {
	if m := d.Child("mxGraphModel"); m != nil {
		return m, nil
	}

	payload := strings.TrimSpace(d.Text)
	if payload == "" {
		return nil, nil
	}

	data, err := inflateDiagram(payload)
	if err != nil {
		return nil, err
	}

	m, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("compressed model: %w", err)
	}
	if m.Name != "mxGraphModel" {
		return nil, fmt.Errorf("compressed model has root <%s>, want <mxGraphModel>", m.Name)
	}
	return m, nil
}

// vertexValues returns the raw values of the label-bearing vertices under
// the model's <root>, in document order. Shapes with custom properties are
// wrapped in <UserObject>/<object> and carry their text in "label".
func vertexValues(model *Node) []string {
	root := model.Child("root")
	if root == nil {
		return nil
	}

	var values []string
	for _, n := range root.Children {
		switch n.Name {
		case "mxCell":
			if isVertex(n) && n.Attr("value") != "" {
				values = append(values, n.Attr("value"))
			}
		case "UserObject", "object":
			if cell := n.Child("mxCell"); cell != nil && isVertex(cell) && n.Attr("label") != "" {
				values = append(values, n.Attr("label"))
			}
		}
	}
	return values
}

func isVertex(cell *Node) bool {
	v := cell.Attr("vertex")
	return v == "1" || strings.EqualFold(v, "true")
}

// labelCollector keeps the first occurrence of each multi-word label.
type labelCollector struct {
	labels []string
	seen   map[string]struct{}
}

func (c *labelCollector) add(text string) {
	if text == "" || !domain.IsPhrase(text) {
		return
	}
	if c.seen == nil {
		c.seen = make(map[string]struct{})
	}
	if _, exists := c.seen[text]; exists {
		return
	}
	c.seen[text] = struct{}{}
	c.labels = append(c.labels, text)
}
