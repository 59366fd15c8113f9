package genealogy

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrTooFewLines  = errors.New("record has too few lines")
	ErrMissingField = errors.New("record is missing a field")
	ErrDiscarded    = errors.New("record status is discarded")
)

type fieldKind int

const (
	fieldName fieldKind = iota
	fieldParent
	fieldInt
	fieldSignedInt
)

// fieldSpec describes one positional line of a record.
type fieldSpec struct {
	labels []string
	kind   fieldKind
}

var parentLabels = []string{"Mother", "Father", "Unknown"}

// recordSchema is the fixed positional layout of a record. Lines past the
// end of the schema are ignored.
var recordSchema = [MinRecordLines]fieldSpec{
	{labels: []string{"Name"}, kind: fieldName},
	{labels: parentLabels, kind: fieldParent},
	{labels: parentLabels, kind: fieldParent},
	{labels: []string{"Status"}, kind: fieldInt},
	{labels: []string{"Species"}, kind: fieldInt},
	{labels: []string{"Sex"}, kind: fieldSignedInt},
	{labels: []string{"Variant"}, kind: fieldSignedInt},
	{labels: []string{"Has Warped"}, kind: fieldInt},
}

const (
	lineName = iota
	lineParentA
	lineParentB
	lineStatus
	lineSpecies
	lineSex
	lineVariant
	lineWarped
)

// field is one validated "Label: value" line.
type field struct {
	label string
	value string
}

// intValue returns the parsed integer, or nil when the value is not an
// integer of the kind the schema allows.
func (f field) intValue(signed bool) *int {
	n, err := strconv.Atoi(f.value)
	if err != nil {
		return nil
	}
	if !signed && (n < 0 || strings.HasPrefix(f.value, "+")) {
		return nil
	}
	return &n
}

// statusValue parses the Status field. A run of digits too large for an int
// is still a status, and always past DiscardStatus.
func (f field) statusValue() (code *int, overflow bool) {
	if n := f.intValue(false); n != nil {
		return n, false
	}
	_, err := strconv.ParseUint(f.value, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return nil, true
	}
	return nil, false
}

// readFields validates line count and labels against the schema.
func readFields(lines []string) ([MinRecordLines]field, error) {
	var fields [MinRecordLines]field
	if len(lines) < MinRecordLines {
		return fields, fmt.Errorf("%w: got %d, need %d", ErrTooFewLines, len(lines), MinRecordLines)
	}
	for i, spec := range recordSchema {
		label, value, ok := strings.Cut(lines[i], ":")
		label = strings.TrimSpace(label)
		if !ok || !hasLabel(spec.labels, label) {
			return fields, fmt.Errorf("%w: line %d expected %s, got %q",
				ErrMissingField, i, strings.Join(spec.labels, "|"), lines[i])
		}
		fields[i] = field{label: label, value: strings.TrimSpace(value)}
	}
	return fields, nil
}

func hasLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

// SplitNameMoniker separates a "name moniker" string. With two or more tokens
// the last one is the moniker. A lone token is the moniker of an unnamed
// creature or genome file, named UnknownName. An empty string yields empty
// name and moniker.
func SplitNameMoniker(s string) (name, moniker string) {
	parts := strings.Fields(s)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return UnknownName, parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
	}
}

func parentFromField(f field) ParentRef {
	name, moniker := SplitNameMoniker(f.value)
	return ParentRef{Moniker: moniker, Name: name, Sex: sexFromRole(f.label)}
}

// resolveParents applies the unknown-sex heuristic and de-duplicates the two
// parent slots. When both slots name a parent and exactly one of them has an
// unknown sex, that one is taken to be female.
func resolveParents(a, b ParentRef) []ParentRef {
	if a.Moniker != "" && b.Moniker != "" {
		if (a.Sex == SexUnknown) != (b.Sex == SexUnknown) {
			if a.Sex == SexUnknown {
				a.Sex = SexFemale
			}
			if b.Sex == SexUnknown {
				b.Sex = SexFemale
			}
		}
	}

	parents := make([]ParentRef, 0, 2)
	if a.Moniker != "" {
		parents = append(parents, a)
	}
	if b.Moniker != "" && b.Moniker != a.Moniker {
		parents = append(parents, b)
	}
	return parents
}

// ParseRecord turns one record block into a Creature. Malformed blocks return
// ErrTooFewLines or ErrMissingField; status codes at or above DiscardStatus
// return ErrDiscarded.
func ParseRecord(lines []string) (*Creature, error) {
	fields, err := readFields(lines)
	if err != nil {
		return nil, err
	}

	name, moniker := SplitNameMoniker(fields[lineName].value)
	if moniker == "" {
		return nil, fmt.Errorf("%w: empty moniker", ErrMissingField)
	}

	c := &Creature{Moniker: moniker, Name: name}
	code, overflow := fields[lineStatus].statusValue()
	if overflow {
		return nil, fmt.Errorf("%w: %s has status %s", ErrDiscarded, moniker, fields[lineStatus].value)
	}
	if code != nil {
		status := Status(*code)
		if status >= DiscardStatus {
			return nil, fmt.Errorf("%w: %s has status %d", ErrDiscarded, moniker, status)
		}
		c.Status = &status
	}

	c.Parents = resolveParents(parentFromField(fields[lineParentA]), parentFromField(fields[lineParentB]))
	c.Species = fields[lineSpecies].intValue(false)
	if code := fields[lineSex].intValue(true); code != nil {
		c.Sex = sexFromCode(*code)
	}
	c.Variant = fields[lineVariant].intValue(true)
	c.Warped = fields[lineWarped].intValue(false)
	return c, nil
}
