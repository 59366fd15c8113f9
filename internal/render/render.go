package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
	"github.com/goccy/go-graphviz"

	"genealogy/internal/log"
)

// Format is an output format.
type Format string

const (
	FormatDOT Format = "dot"
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatDOT, FormatSVG, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q", s)
	}
}

// WriteDOT writes the graph in DOT syntax.
func WriteDOT(g graph.Graph[string, string], w io.Writer) error {
	return draw.DOT(g, w, draw.GraphAttribute("label", "Genealogy Graph"))
}

// Render lays out the graph with graphviz and writes it in the given format.
func Render(ctx context.Context, g graph.Graph[string, string], format Format, w io.Writer) error {
	var dot bytes.Buffer
	if err := WriteDOT(g, &dot); err != nil {
		return fmt.Errorf("failed to write DOT: %w", err)
	}
	if format == FormatDOT {
		_, err := w.Write(dot.Bytes())
		return err
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("failed to create graphviz instance: %w", err)
	}
	defer gv.Close()

	gvGraph, err := graphviz.ParseBytes(dot.Bytes())
	if err != nil {
		return fmt.Errorf("failed to parse DOT: %w", err)
	}
	defer gvGraph.Close()

	var gvFormat graphviz.Format
	switch format {
	case FormatSVG:
		gvFormat = graphviz.SVG
	case FormatPNG:
		gvFormat = graphviz.PNG
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, gvGraph, gvFormat, &buf); err != nil {
		return fmt.Errorf("graphviz render failed: %w", err)
	}
	if buf.Len() == 0 {
		return fmt.Errorf("graphviz render produced no %s output", format)
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// RenderFile renders to base + "." + format and returns the path written.
func RenderFile(ctx context.Context, g graph.Graph[string, string], format Format, base string) (string, error) {
	path := base + "." + string(format)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Render(ctx, g, format, f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	log.Info("rendered genealogy graph", "path", path, "format", string(format))
	return path, nil
}
