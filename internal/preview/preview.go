// Package preview draws a rendered graph inline in terminals that support
// an image protocol.
package preview

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/BourgeoisBear/rasterm"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-sixel"
	xdraw "golang.org/x/image/draw"

	"genealogy/internal/log"
)

// Protocol selects the terminal image protocol.
type Protocol string

const (
	ProtocolNone        Protocol = ""
	ProtocolAuto        Protocol = "auto"
	ProtocolKitty       Protocol = "kitty"
	ProtocolITerm       Protocol = "iterm"
	ProtocolSixel       Protocol = "sixel"
	ProtocolSixelDither Protocol = "sixel-dither"
)

var ErrNotTerminal = errors.New("output is not a terminal")

// ParseProtocol validates a protocol name. "none" and "" disable previews.
func ParseProtocol(s string) (Protocol, error) {
	switch p := Protocol(s); p {
	case ProtocolNone, ProtocolAuto, ProtocolKitty, ProtocolITerm, ProtocolSixel, ProtocolSixelDither:
		return p, nil
	case "none":
		return ProtocolNone, nil
	default:
		return "", fmt.Errorf("unknown preview protocol %q", s)
	}
}

// Options control how the preview is produced.
type Options struct {
	Protocol Protocol
	// MaxWidth caps the preview width in pixels. Zero keeps the natural size.
	MaxWidth int
}

// Detect picks the best protocol the current terminal advertises.
func Detect() Protocol {
	switch {
	case rasterm.IsKittyCapable():
		return ProtocolKitty
	case rasterm.IsItermCapable():
		return ProtocolITerm
	default:
		return ProtocolSixel
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ShowTerminal writes the preview to f, refusing when f is not a terminal.
func ShowTerminal(f *os.File, pngData []byte, opts Options) error {
	if !IsTerminal(f) {
		return ErrNotTerminal
	}
	return Show(f, pngData, opts)
}

// Show decodes a PNG, scales it and writes it with the chosen protocol.
func Show(w io.Writer, pngData []byte, opts Options) error {
	if opts.Protocol == ProtocolNone {
		return nil
	}

	img, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return fmt.Errorf("failed to decode PNG: %w", err)
	}
	img = Scale(img, opts.MaxWidth)

	protocol := opts.Protocol
	if protocol == ProtocolAuto {
		protocol = Detect()
	}
	log.Debug("showing preview", "protocol", string(protocol),
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	switch protocol {
	case ProtocolKitty:
		err = rasterm.KittyWriteImage(w, img, rasterm.KittyImgOpts{})
	case ProtocolITerm:
		err = rasterm.ItermWriteImage(w, img)
	case ProtocolSixel:
		bounds := img.Bounds()
		paletted := image.NewPaletted(bounds, palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, bounds, img, bounds.Min)
		err = rasterm.SixelWriteImage(w, paletted)
	case ProtocolSixelDither:
		encoder := sixel.NewEncoder(w)
		encoder.Dither = true
		err = encoder.Encode(img)
	default:
		return fmt.Errorf("unknown preview protocol %q", protocol)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s preview: %w", protocol, err)
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// Scale shrinks img to at most maxWidth pixels wide, keeping the aspect
// ratio. Images already narrow enough are returned unchanged.
func Scale(img image.Image, maxWidth int) image.Image {
	bounds := img.Bounds()
	if maxWidth <= 0 || bounds.Dx() <= maxWidth {
		return img
	}

	height := bounds.Dy() * maxWidth / bounds.Dx()
	if height < 1 {
		height = 1
	}
	scaled := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	xdraw.BiLinear.Scale(scaled, scaled.Bounds(), img, bounds, xdraw.Over, nil)
	return scaled
}
