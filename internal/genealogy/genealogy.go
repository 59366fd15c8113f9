// Package genealogy parses Creatures genealogy exports into a parentage graph
// and classifies every creature as living, a living ancestor, or neither.
package genealogy

import "genealogy/internal/log"

// Options are fixed for the duration of one Build.
type Options struct {
	ShowEggs       bool
	ShowLivingOnly bool
	Duplicates     DuplicatePolicy
}

// Genealogy is the classified result handed to renderers.
type Genealogy struct {
	// Graph is what should be drawn: Full, or its pruned copy when
	// ShowLivingOnly is set.
	Graph          *Graph
	Full           *Graph
	Classification Classification
	Options        Options
	Stats          Stats
}

// Build runs the parse, ancestor walk and optional prune over an export.
func Build(text string, opts Options) (*Genealogy, error) {
	res, err := Parse(text, opts.Duplicates)
	if err != nil {
		return nil, err
	}

	ancestors := LivingAncestors(res.Graph, res.Living)
	log.Debug("walked living ancestors", "living", res.Living.Len(), "ancestors", ancestors.Len())

	gen := &Genealogy{
		Graph: res.Graph,
		Full:  res.Graph,
		Classification: Classification{
			Living:    res.Living,
			Ancestors: ancestors,
		},
		Options: opts,
		Stats:   res.Stats,
	}
	if opts.ShowLivingOnly {
		gen.Graph = Prune(res.Graph, res.Living, ancestors)
		log.Info("pruned to living lineages", "kept", gen.Graph.Len(), "of", res.Graph.Len())
	}
	return gen, nil
}

// Style returns the node style for c under this genealogy's classification.
func (g *Genealogy) Style(c *Creature) NodeStyle {
	return DecideStyle(c, g.Classification)
}
