// Package render turns a classified genealogy into a graph drawing.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dominikbraun/graph"

	"genealogy/internal/genealogy"
)

// Styles for monikers that have no record of their own.
var (
	placeholderStyle = map[string]string{
		"color":      "green",
		"shape":      "polygon",
		"distortion": "0.1",
	}
	genomeStyle = map[string]string{
		"color":     "yellow",
		"fillcolor": "yellow",
		"style":     "filled",
		"shape":     "invhouse",
	}
)

// Visible reports whether a creature is drawn under the given options.
// Eggs and unnamed creatures are hidden unless ShowEggs is set.
func Visible(c *genealogy.Creature, opts genealogy.Options) bool {
	if opts.ShowEggs {
		return true
	}
	return !c.IsEgg() && c.Name != genealogy.UnknownName
}

// BuildGraph creates one vertex per distinct moniker and one edge per
// parent/child pair. Vertex attributes carry the node style; edges are
// coloured by the parent's sex.
func BuildGraph(gen *genealogy.Genealogy) (graph.Graph[string, string], error) {
	g := graph.New(graph.StringHash, graph.Directed())

	var visible []*genealogy.Creature
	gen.Graph.Each(func(c *genealogy.Creature) {
		if Visible(c, gen.Options) {
			visible = append(visible, c)
		}
	})

	// Creatures first so a creature's own style wins over the placeholder
	// it would get as somebody's parent.
	for _, c := range visible {
		attrs := gen.Style(c).Attributes()
		attrs["label"] = c.Name
		if c.Species != nil {
			attrs["group"] = fmt.Sprintf("species%d", *c.Species)
		}
		if err := addVertex(g, c.Moniker, attrs); err != nil {
			return nil, err
		}
	}

	for _, c := range visible {
		for _, p := range c.Parents {
			if err := addVertex(g, p.Moniker, parentAttributes(p)); err != nil {
				return nil, err
			}
			err := g.AddEdge(p.Moniker, c.Moniker, graph.EdgeAttribute("color", genealogy.EdgeColor(p.Sex)))
			if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
				return nil, fmt.Errorf("failed to add edge %s -> %s: %w", p.Moniker, c.Moniker, err)
			}
		}
	}
	return g, nil
}

func parentAttributes(p genealogy.ParentRef) map[string]string {
	src := placeholderStyle
	label := p.Name
	if genealogy.IsGenomeFile(p.Moniker) {
		src = genomeStyle
		label = p.Moniker
	}
	attrs := make(map[string]string, len(src)+1)
	for k, v := range src {
		attrs[k] = v
	}
	attrs["label"] = label
	return attrs
}

// addVertex adds moniker unless it is already present.
func addVertex(g graph.Graph[string, string], moniker string, attrs map[string]string) error {
	for k, v := range attrs {
		attrs[k] = escape(v)
	}
	err := g.AddVertex(moniker, graph.VertexAttributes(attrs))
	if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return fmt.Errorf("failed to add vertex %s: %w", moniker, err)
	}
	return nil
}

// escape makes a value safe inside a quoted DOT attribute.
func escape(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `"`, `\"`)
}

// OutputName derives the output file base name from the input path.
func OutputName(input string, opts genealogy.Options) string {
	name := strings.TrimSuffix(input, ".genealogy")
	if opts.ShowLivingOnly {
		name += "_living-only"
	}
	if opts.ShowEggs {
		name += "_eggs"
	}
	return name
}
