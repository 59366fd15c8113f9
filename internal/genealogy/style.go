package genealogy

import "fmt"

// Classification answers the living and living-ancestor membership tests.
type Classification struct {
	Living    MonikerSet
	Ancestors MonikerSet
}

func (c Classification) IsLiving(moniker string) bool   { return c.Living.Has(moniker) }
func (c Classification) IsAncestor(moniker string) bool { return c.Ancestors.Has(moniker) }

// NodeStyle is the renderer-neutral description of how a creature is drawn.
// Values use graphviz attribute vocabulary.
type NodeStyle struct {
	Shape         string
	Color         string
	FontColor     string
	FillColor     string
	Style         string
	GradientAngle int
}

// Attributes returns the style as graphviz attributes, omitting empty ones.
func (s NodeStyle) Attributes() map[string]string {
	attrs := make(map[string]string, 6)
	set := func(k, v string) {
		if v != "" {
			attrs[k] = v
		}
	}
	set("shape", s.Shape)
	set("color", s.Color)
	set("fontcolor", s.FontColor)
	set("fillcolor", s.FillColor)
	set("style", s.Style)
	if s.GradientAngle != 0 {
		attrs["gradientangle"] = fmt.Sprint(s.GradientAngle)
	}
	return attrs
}

// DecideStyle picks the node style for a creature. Rules apply in order and
// each only modifies what earlier rules assigned: egg status returns at once,
// then living/ancestor sets the base, exported changes the shape, warped adds
// a two-tone fill, and sex sets the outline colour.
func DecideStyle(c *Creature, cls Classification) NodeStyle {
	if c.IsEgg() {
		return NodeStyle{
			Shape:     "egg",
			Color:     "lightgreen",
			FontColor: "white",
			FillColor: "lightseagreen",
			Style:     "filled",
		}
	}

	style := NodeStyle{
		Shape:     "rect",
		Color:     "lightgrey",
		FontColor: "grey",
		FillColor: "white",
	}

	switch {
	case cls.IsLiving(c.Moniker):
		style.Shape = "doublecircle"
		style.Style = "filled"
		style.FillColor = "lightblue"
		style.FontColor = "black"
	case cls.IsAncestor(c.Moniker):
		style.Shape = "circle"
		style.Style = "filled"
		style.FillColor = "lightgrey"
		style.FontColor = "black"
	}

	if c.IsExported() {
		style.Shape = "house"
	}

	if c.IsWarped() {
		style.FillColor += ":blue"
		style.Style = "filled"
		style.GradientAngle = 90
	}

	switch c.Sex {
	case SexMale:
		style.Color = "blue"
	case SexFemale:
		style.Color = "deeppink"
	case SexNonBinary:
		style.Color = "pink"
	}
	return style
}

// EdgeColor is the colour of a parent-to-child edge.
func EdgeColor(parentSex Sex) string {
	switch parentSex {
	case SexMale:
		return "blue"
	case SexFemale:
		return "deeppink"
	default:
		return "grey"
	}
}
