// Package source finds and reads genealogy exports.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"genealogy/internal/log"
)

// Extension is the conventional suffix of a genealogy export.
const Extension = ".genealogy"

var ErrNoInput = errors.New("no genealogy file found")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Locate returns the first *.genealogy file in dir, by name.
func Locate(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoInput, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), Extension) {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return "", fmt.Errorf("%w in %s", ErrNoInput, dir)
	}
	sort.Strings(names)
	return filepath.Join(dir, names[0]), nil
}

// Resolve picks the input file: an explicit path wins, otherwise the first
// export found in dir.
func Resolve(path, dir string) (string, error) {
	if path == "" {
		return Locate(dir)
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNoInput, path)
		}
		return "", err
	}
	if info.IsDir() {
		return Locate(path)
	}
	return path, nil
}

// Read loads an export as text. Files that are not valid UTF-8 are decoded
// as Windows-1252, the code page the game writes exports with.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNoInput, path)
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Decode(data)
}

// Decode converts raw export bytes to text.
func Decode(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}

	log.Debug("export is not UTF-8, decoding as Windows-1252", "bytes", len(data))
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode export: %w", err)
	}
	return string(decoded), nil
}
