package genealogy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = `Name: Alice 001-alice
Mother: Eve 002-eve
Father: Adam 003-adam
Status: 3
Species: 1
Sex: 2
Variant: 0
Has Warped: 0

Name: Eve 002-eve
Mother: norn.bengal.gen
Father:
Status: 0
Species: 1
Sex: 2
Variant: 0
Has Warped: 1

Name: Adam 003-adam
Mother:
Father:
Status: 4
Species: 1
Sex: 1
Variant: 0
Has Warped: 0

Name: Ghost 004-ghost
Mother:
Father:
Status: 9
Species: 1
Sex: 1
Variant: 0
Has Warped: 0

Name: Bob 005-bob
Mother: Carol 006-carol
Father:
Status: 2
Species: 1
Sex: 1
Variant: 0
Has Warped: 0

Name: Short 007-short
Mother:
`

func TestBuild_EndToEnd(t *testing.T) {
	gen, err := Build(sampleExport, Options{ShowEggs: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"001-alice", "002-eve", "003-adam", "005-bob"}, gen.Graph.Monikers())
	assert.Equal(t, []string{"001-alice"}, gen.Classification.Living.Slice())

	ancestors := gen.Classification.Ancestors
	assert.True(t, ancestors.Has("001-alice"))
	assert.True(t, ancestors.Has("002-eve"), "mother of a living creature is a living ancestor")
	assert.True(t, ancestors.Has("003-adam"))
	assert.True(t, ancestors.Has("norn.bengal.gen"), "undefined genome parent is still reached")
	assert.False(t, ancestors.Has("005-bob"))
	assert.False(t, ancestors.Has("004-ghost"))

	assert.Equal(t, Stats{Blocks: 5, Short: 1, Parsed: 4, Discarded: 1}, gen.Stats)

	eve, ok := gen.Graph.Get("002-eve")
	require.True(t, ok)
	assert.True(t, eve.IsWarped())
	require.Len(t, eve.Parents, 1)
	assert.Equal(t, ParentRef{Moniker: "norn.bengal.gen", Name: UnknownName, Sex: SexFemale}, eve.Parents[0])
}

func TestBuild_LivingOnly(t *testing.T) {
	gen, err := Build(sampleExport, Options{ShowLivingOnly: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"001-alice", "002-eve", "003-adam"}, gen.Graph.Monikers())
	assert.Equal(t, 4, gen.Full.Len())
}

func TestBuild_DiscardedNeverLiving(t *testing.T) {
	text := strings.Replace(sampleExport, "Status: 9", "Status: 3", 1)
	text = strings.Replace(text, "Name: Ghost 004-ghost", "Name: Ghost 001-alice", 1)
	text = strings.Replace(text, "Status: 3\nSpecies: 1\nSex: 2", "Status: 8\nSpecies: 1\nSex: 2", 1)

	gen, err := Build(text, Options{})
	require.NoError(t, err)

	// The first Alice record is discarded; the later one under the same
	// moniker is alive and is the only one stored.
	alice, ok := gen.Graph.Get("001-alice")
	require.True(t, ok)
	assert.Equal(t, "Ghost", alice.Name)
	assert.True(t, gen.Classification.IsLiving("001-alice"))
	assert.Equal(t, 1, gen.Stats.Discarded)
}

func TestBuild_DuplicateReject(t *testing.T) {
	text := sampleExport + "\n\n" + strings.Join(record("Again 001-alice", "Mother: ", "Father: ", "2", "1", "1", "0", "0"), "\n")

	_, err := Build(text, Options{Duplicates: DuplicateReject})
	assert.ErrorIs(t, err, ErrDuplicateMoniker)

	gen, err := Build(text, Options{Duplicates: DuplicateReplace})
	require.NoError(t, err)
	assert.Equal(t, 1, gen.Stats.Duplicates)
	alice, _ := gen.Graph.Get("001-alice")
	assert.Equal(t, "Again", alice.Name)
}

func TestBuild_MalformedRecordsSkipped(t *testing.T) {
	bad := strings.Join([]string{
		"Name: Broken 010-broken",
		"Mother: ",
		"Father: ",
		"Condition: 3",
		"Species: 1",
		"Sex: 1",
		"Variant: 0",
		"Has Warped: 0",
	}, "\n")

	gen, err := Build(bad+"\n\n"+sampleExport, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, gen.Stats.Malformed)
	assert.False(t, gen.Graph.Has("010-broken"))
	assert.Equal(t, 4, gen.Graph.Len())
}

func TestStatusKind(t *testing.T) {
	tests := map[Status]StatusKind{
		StatusUnknown:    KindOther,
		StatusEgg:        KindEgg,
		StatusDead:       KindDead,
		StatusAlive:      KindAlive,
		StatusExported:   KindExported,
		StatusDeadNoBody: KindDead,
		StatusUnrefd:     KindDead,
	}
	for s, want := range tests {
		if got := s.Kind(); got != want {
			t.Errorf("Status(%d).Kind() = %q, want %q", s, got, want)
		}
	}
}
