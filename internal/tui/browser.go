// Package tui provides an interactive pedigree browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"genealogy/internal/genealogy"
	"genealogy/internal/log"
)

// Colors used by the browser
var (
	colorMale      = tcell.ColorBlue
	colorFemale    = tcell.ColorDeepPink
	colorNonBinary = tcell.ColorPink
	colorOther     = tcell.ColorLightGray
	colorUnrecord  = tcell.ColorGreen
	colorGenome    = tcell.ColorYellow
)

// Browser shows living creatures as tree roots; expanding a node lists its
// parents. Children are loaded on first expansion, so parentage cycles only
// grow the tree as far as the user walks.
type Browser struct {
	gen     *genealogy.Genealogy
	app     *tview.Application
	tree    *tview.TreeView
	details *tview.TextView
	root    *tview.TreeNode
}

// NewBrowser builds the widgets for gen without starting the application.
func NewBrowser(gen *genealogy.Genealogy) *Browser {
	b := &Browser{
		gen:     gen,
		app:     tview.NewApplication(),
		details: tview.NewTextView().SetDynamicColors(false).SetWrap(true),
	}

	b.root = tview.NewTreeNode(fmt.Sprintf("Living (%d)", gen.Classification.Living.Len())).
		SetColor(tcell.ColorWhite).
		SetSelectable(false)
	for _, moniker := range gen.Classification.Living.Slice() {
		b.root.AddChild(b.node(moniker, nil))
	}

	b.tree = tview.NewTreeView().SetRoot(b.root).SetTopLevel(1)
	if children := b.root.GetChildren(); len(children) > 0 {
		b.tree.SetCurrentNode(children[0])
		b.showDetails(children[0])
	}
	b.tree.SetSelectedFunc(b.toggle)
	b.tree.SetChangedFunc(b.showDetails)
	b.tree.SetBorder(true).SetTitle("Pedigree")
	b.details.SetBorder(true).SetTitle("Creature")

	layout := tview.NewFlex().
		AddItem(b.tree, 0, 2, true).
		AddItem(b.details, 0, 1, false)
	b.app.SetRoot(layout, true).SetInputCapture(b.handleKey)
	return b
}

// Run starts the event loop and blocks until the user quits.
func (b *Browser) Run() error {
	log.Debug("starting pedigree browser", "roots", len(b.root.GetChildren()))
	return b.app.Run()
}

func (b *Browser) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch {
	case event.Key() == tcell.KeyEscape,
		event.Key() == tcell.KeyRune && event.Rune() == 'q':
		b.app.Stop()
		return nil
	}
	return event
}

// nodeRef is stored on each tree node.
type nodeRef struct {
	moniker string
	parent  *genealogy.ParentRef
	loaded  bool
}

func (b *Browser) node(moniker string, parent *genealogy.ParentRef) *tview.TreeNode {
	n := tview.NewTreeNode(b.label(moniker, parent)).
		SetReference(&nodeRef{moniker: moniker, parent: parent}).
		SetColor(b.color(moniker, parent)).
		SetExpanded(false)
	return n
}

// toggle expands or collapses a node, loading its parents the first time.
func (b *Browser) toggle(n *tview.TreeNode) {
	ref, ok := n.GetReference().(*nodeRef)
	if !ok {
		return
	}
	if !ref.loaded {
		ref.loaded = true
		if c, ok := b.gen.Full.Get(ref.moniker); ok {
			for i := range c.Parents {
				p := c.Parents[i]
				n.AddChild(b.node(p.Moniker, &p))
			}
		}
	}
	n.SetExpanded(!n.IsExpanded())
}

func (b *Browser) label(moniker string, parent *genealogy.ParentRef) string {
	name := genealogy.UnknownName
	if c, ok := b.gen.Full.Get(moniker); ok {
		name = c.Name
	} else if parent != nil && parent.Name != "" {
		name = parent.Name
	}

	var tags []string
	switch {
	case b.gen.Classification.IsLiving(moniker):
		tags = append(tags, "living")
	case b.gen.Classification.IsAncestor(moniker):
		tags = append(tags, "ancestor")
	}
	if !b.gen.Full.Has(moniker) {
		tags = append(tags, "no record")
	}
	label := fmt.Sprintf("%s %s", name, moniker)
	if len(tags) > 0 {
		label += " (" + strings.Join(tags, ", ") + ")"
	}
	return label
}

func (b *Browser) color(moniker string, parent *genealogy.ParentRef) tcell.Color {
	if genealogy.IsGenomeFile(moniker) {
		return colorGenome
	}
	sex := genealogy.Sex("")
	if c, ok := b.gen.Full.Get(moniker); ok {
		sex = c.Sex
	} else if parent != nil {
		sex = parent.Sex
	} else {
		return colorUnrecord
	}
	switch sex {
	case genealogy.SexMale:
		return colorMale
	case genealogy.SexFemale:
		return colorFemale
	case genealogy.SexNonBinary:
		return colorNonBinary
	default:
		return colorOther
	}
}

func (b *Browser) showDetails(n *tview.TreeNode) {
	ref, ok := n.GetReference().(*nodeRef)
	if !ok {
		b.details.SetText("")
		return
	}
	b.details.SetText(Describe(b.gen, ref.moniker))
}

// Describe renders the fields of one moniker as plain text.
func Describe(gen *genealogy.Genealogy, moniker string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Moniker:  %s\n", moniker)

	c, ok := gen.Full.Get(moniker)
	if !ok {
		sb.WriteString("No record in this export.\n")
		if genealogy.IsGenomeFile(moniker) {
			sb.WriteString("Genome file.\n")
		}
		return sb.String()
	}

	fmt.Fprintf(&sb, "Name:     %s\n", c.Name)
	if c.Status != nil {
		fmt.Fprintf(&sb, "Status:   %d (%s)\n", *c.Status, c.Status.Kind())
	}
	if c.Sex != "" {
		fmt.Fprintf(&sb, "Sex:      %s\n", c.Sex)
	}
	if c.Species != nil {
		fmt.Fprintf(&sb, "Species:  %d\n", *c.Species)
	}
	if c.Variant != nil {
		fmt.Fprintf(&sb, "Variant:  %d\n", *c.Variant)
	}
	fmt.Fprintf(&sb, "Warped:   %t\n", c.IsWarped())
	fmt.Fprintf(&sb, "Living:   %t\n", gen.Classification.IsLiving(moniker))
	fmt.Fprintf(&sb, "Ancestor: %t\n", gen.Classification.IsAncestor(moniker))
	for _, p := range c.Parents {
		sex := string(p.Sex)
		if sex == "" {
			sex = "?"
		}
		fmt.Fprintf(&sb, "Parent:   %s %s [%s]\n", p.Name, p.Moniker, sex)
	}
	return sb.String()
}
