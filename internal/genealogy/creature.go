package genealogy

import "strings"

// UnknownName is the display name used when a record carries no name.
const UnknownName = "Unknown"

// GenomeMarker identifies monikers that refer to a genome file rather than a
// creature (engineered or default genomes).
const GenomeMarker = ".gen"

// IsGenomeFile reports whether the moniker names a genome file.
func IsGenomeFile(moniker string) bool {
	return strings.Contains(moniker, GenomeMarker)
}

// Status is the numeric life-stage code exported by the game.
type Status int

const (
	StatusUnknown    Status = 0
	StatusEgg        Status = 1
	StatusDead       Status = 2
	StatusAlive      Status = 3
	StatusExported   Status = 4
	StatusDeadNoBody Status = 5
	StatusUnrefd     Status = 6

	// DiscardStatus and above are never entered into the graph.
	DiscardStatus Status = 7
)

// StatusKind is the coarse classification of a Status.
type StatusKind string

const (
	KindEgg      StatusKind = "egg"
	KindAlive    StatusKind = "alive"
	KindDead     StatusKind = "dead"
	KindExported StatusKind = "exported"
	KindOther    StatusKind = "other"
)

// Kind maps the status code onto its coarse classification.
func (s Status) Kind() StatusKind {
	switch s {
	case StatusEgg:
		return KindEgg
	case StatusAlive:
		return KindAlive
	case StatusDead, StatusDeadNoBody, StatusUnrefd:
		return KindDead
	case StatusExported:
		return KindExported
	default:
		return KindOther
	}
}

// Sex of a creature or parent. The zero value means the field was not set.
type Sex string

const (
	SexMale         Sex = "male"
	SexFemale       Sex = "female"
	SexUndetermined Sex = "undetermined"
	SexNonBinary    Sex = "non-binary"
	SexUnknown      Sex = "unknown"
)

// sexFromCode maps the record's Sex field. Unlisted codes leave the sex unset.
func sexFromCode(code int) Sex {
	switch code {
	case 1:
		return SexMale
	case 2:
		return SexFemale
	case -1:
		return SexUndetermined
	case 0:
		return SexNonBinary
	default:
		return ""
	}
}

// sexFromRole maps a parent line label onto the parent's nominal sex. The
// record schema only admits Mother, Father and Unknown.
func sexFromRole(role string) Sex {
	switch role {
	case "Mother":
		return SexFemale
	case "Father":
		return SexMale
	default:
		return SexUnknown
	}
}

// ParentRef is a parent as named inside a child's record. It only becomes a
// graph node if its moniker also appears as a record of its own.
type ParentRef struct {
	Moniker string
	Name    string
	Sex     Sex
}

// Creature is one parsed genealogy record.
type Creature struct {
	Moniker string
	Name    string
	Parents []ParentRef

	// Optional fields stay nil when the record did not carry them.
	Status  *Status
	Species *int
	Variant *int
	Warped  *int
	Sex     Sex
}

// HasStatus reports whether the creature's status is known and equal to s.
func (c *Creature) HasStatus(s Status) bool {
	return c.Status != nil && *c.Status == s
}

func (c *Creature) IsEgg() bool      { return c.HasStatus(StatusEgg) }
func (c *Creature) IsAlive() bool    { return c.HasStatus(StatusAlive) }
func (c *Creature) IsExported() bool { return c.HasStatus(StatusExported) }

// IsWarped reports whether the Has Warped flag was set to 1.
func (c *Creature) IsWarped() bool {
	return c.Warped != nil && *c.Warped == 1
}

// Parent returns the parent reference with the given moniker.
func (c *Creature) Parent(moniker string) (ParentRef, bool) {
	for _, p := range c.Parents {
		if p.Moniker == moniker {
			return p, true
		}
	}
	return ParentRef{}, false
}
