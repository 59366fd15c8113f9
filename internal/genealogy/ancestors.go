package genealogy

// LivingAncestors returns every moniker reachable from a living moniker by
// following parent links, the living monikers included. A parent is only
// followed when it has a display name. Monikers without a record of their
// own are included but have nothing to expand. Each moniker is expanded at
// most once, so parentage cycles terminate.
func LivingAncestors(g *Graph, living MonikerSet) MonikerSet {
	visited := NewMonikerSet()
	var stack []string

	for _, seed := range living.Slice() {
		if !visited.Add(seed) {
			continue
		}
		stack = append(stack, seed)

		for len(stack) > 0 {
			moniker := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			c, ok := g.Get(moniker)
			if !ok {
				continue
			}
			for _, p := range c.Parents {
				if p.Name == "" || p.Moniker == "" {
					continue
				}
				if visited.Add(p.Moniker) {
					stack = append(stack, p.Moniker)
				}
			}
		}
	}
	return visited
}

// Prune returns a new graph holding only the creatures that are living or
// living ancestors. Parent references to dropped creatures are left in place.
func Prune(g *Graph, living, ancestors MonikerSet) *Graph {
	out := NewGraph(g.policy)
	g.Each(func(c *Creature) {
		if living.Has(c.Moniker) || ancestors.Has(c.Moniker) {
			out.creatures[c.Moniker] = c
			out.order = append(out.order, c.Moniker)
		}
	})
	return out
}
