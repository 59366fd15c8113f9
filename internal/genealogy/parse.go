package genealogy

import (
	"errors"

	"genealogy/internal/log"
)

// Stats counts what happened to each block of an export.
type Stats struct {
	Blocks     int // blocks long enough to be parsed
	Short      int // blocks dropped before parsing
	Parsed     int // records stored in the graph
	Malformed  int // blocks that failed schema validation
	Discarded  int // records with a discarded status
	Duplicates int // records whose moniker was already present
}

// Result is the outcome of the parse phase.
type Result struct {
	Graph  *Graph
	Living MonikerSet
	Stats  Stats
}

// Parse builds the genealogy graph and the living set from an export.
// Malformed and discarded records are skipped and counted; the only error
// returned is ErrDuplicateMoniker under DuplicateReject.
func Parse(text string, policy DuplicatePolicy) (*Result, error) {
	blocks, short := splitBlocks(text)
	res := &Result{
		Graph:  NewGraph(policy),
		Living: NewMonikerSet(),
		Stats:  Stats{Blocks: len(blocks), Short: short},
	}

	for i, block := range blocks {
		c, err := ParseRecord(block)
		switch {
		case errors.Is(err, ErrDiscarded):
			res.Stats.Discarded++
			log.Debug("discarded record", "block", i, "error", err)
			continue
		case err != nil:
			res.Stats.Malformed++
			log.Debug("skipping malformed record", "block", i, "error", err)
			continue
		}

		duplicate := res.Graph.Has(c.Moniker)
		if duplicate {
			res.Stats.Duplicates++
			log.Warn("duplicate moniker", "moniker", c.Moniker, "block", i, "policy", policy.String())
		}
		stored, err := res.Graph.Add(c)
		if err != nil {
			return nil, err
		}
		if !stored {
			continue
		}
		if !duplicate {
			res.Stats.Parsed++
		}
		if c.IsAlive() {
			res.Living.Add(c.Moniker)
		}
	}

	log.Info("parsed genealogy",
		"blocks", res.Stats.Blocks,
		"creatures", res.Graph.Len(),
		"living", res.Living.Len(),
		"malformed", res.Stats.Malformed,
		"discarded", res.Stats.Discarded,
		"duplicates", res.Stats.Duplicates)
	return res, nil
}
