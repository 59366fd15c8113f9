package genealogy

import (
	"errors"
	"strings"
	"testing"
)

func record(name, parentA, parentB string, status, species, sex, variant, warped string) []string {
	return []string{
		"Name: " + name,
		parentA,
		parentB,
		"Status: " + status,
		"Species: " + species,
		"Sex: " + sex,
		"Variant: " + variant,
		"Has Warped: " + warped,
	}
}

func TestSplitNameMoniker(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantName    string
		wantMoniker string
	}{
		{"name and moniker", "Norn M2-1234-abcdefg", "Norn", "M2-1234-abcdefg"},
		{"multi word name", "Big  Red Norn 001-abcd", "Big Red Norn", "001-abcd"},
		{"genome file only", "norn.bengal.gen", UnknownName, "norn.bengal.gen"},
		{"bare moniker", "002-wxyz", UnknownName, "002-wxyz"},
		{"empty", "", "", ""},
		{"whitespace", "   ", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, moniker := SplitNameMoniker(tt.input)
			if name != tt.wantName || moniker != tt.wantMoniker {
				t.Errorf("SplitNameMoniker(%q) = (%q, %q), want (%q, %q)",
					tt.input, name, moniker, tt.wantName, tt.wantMoniker)
			}
		})
	}
}

func TestParseRecord_Fields(t *testing.T) {
	c, err := ParseRecord(record("Alice 001-alice", "Mother: Eve 002-eve", "Father: Adam 003-adam", "3", "1", "2", "-1", "1"))
	if err != nil {
		t.Fatalf("ParseRecord() error = %v", err)
	}

	if c.Moniker != "001-alice" || c.Name != "Alice" {
		t.Errorf("identity = (%q, %q), want (001-alice, Alice)", c.Moniker, c.Name)
	}
	if c.Status == nil || *c.Status != StatusAlive {
		t.Errorf("Status = %v, want %d", c.Status, StatusAlive)
	}
	if c.Species == nil || *c.Species != 1 {
		t.Errorf("Species = %v, want 1", c.Species)
	}
	if c.Sex != SexFemale {
		t.Errorf("Sex = %q, want %q", c.Sex, SexFemale)
	}
	if c.Variant == nil || *c.Variant != -1 {
		t.Errorf("Variant = %v, want -1", c.Variant)
	}
	if !c.IsWarped() {
		t.Errorf("IsWarped() = false, want true")
	}
	if len(c.Parents) != 2 {
		t.Fatalf("len(Parents) = %d, want 2", len(c.Parents))
	}
	if c.Parents[0].Sex != SexFemale || c.Parents[1].Sex != SexMale {
		t.Errorf("parent sexes = %q, %q, want female, male", c.Parents[0].Sex, c.Parents[1].Sex)
	}
}

func TestParseRecord_BareMonikerIsUnnamed(t *testing.T) {
	c, err := ParseRecord(record("005-bare", "Mother: 002-eve", "Father: ", "2", "1", "1", "0", "0"))
	if err != nil {
		t.Fatalf("ParseRecord() error = %v", err)
	}
	if c.Name != UnknownName || c.Moniker != "005-bare" {
		t.Errorf("identity = (%q, %q), want (%q, 005-bare)", c.Name, c.Moniker, UnknownName)
	}
	if len(c.Parents) != 1 || c.Parents[0].Name != UnknownName {
		t.Errorf("Parents = %+v, want one parent named %q", c.Parents, UnknownName)
	}
}

func TestParseRecord_SexCodes(t *testing.T) {
	tests := []struct {
		code string
		want Sex
	}{
		{"1", SexMale},
		{"2", SexFemale},
		{"-1", SexUndetermined},
		{"0", SexNonBinary},
		{"5", ""},
		{"x", ""},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c, err := ParseRecord(record("A 001-a", "Mother: ", "Father: ", "2", "1", tt.code, "0", "0"))
			if err != nil {
				t.Fatalf("ParseRecord() error = %v", err)
			}
			if c.Sex != tt.want {
				t.Errorf("Sex = %q, want %q", c.Sex, tt.want)
			}
		})
	}
}

func TestParseRecord_Errors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  error
	}{
		{
			name:  "too few lines",
			lines: []string{"Name: A 001-a", "Mother: ", "Father: "},
			want:  ErrTooFewLines,
		},
		{
			name:  "wrong label",
			lines: record("A 001-a", "Aunt: B 002-b", "Father: ", "3", "1", "1", "0", "0"),
			want:  ErrMissingField,
		},
		{
			name:  "missing colon",
			lines: append([]string{"Name A 001-a"}, record("A 001-a", "Mother: ", "Father: ", "3", "1", "1", "0", "0")[1:]...),
			want:  ErrMissingField,
		},
		{
			name:  "empty moniker",
			lines: record("", "Mother: ", "Father: ", "3", "1", "1", "0", "0"),
			want:  ErrMissingField,
		},
		{
			name:  "status seven",
			lines: record("A 001-a", "Mother: ", "Father: ", "7", "1", "1", "0", "0"),
			want:  ErrDiscarded,
		},
		{
			name:  "status above seven",
			lines: record("A 001-a", "Mother: ", "Father: ", "12", "1", "1", "0", "0"),
			want:  ErrDiscarded,
		},
		{
			name:  "status overflows int",
			lines: record("A 001-a", "Mother: ", "Father: ", "99999999999999999999", "1", "1", "0", "0"),
			want:  ErrDiscarded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseRecord(tt.lines)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseRecord() error = %v, want %v", err, tt.want)
			}
			if c != nil {
				t.Errorf("ParseRecord() returned creature %q alongside error", c.Moniker)
			}
		})
	}
}

func TestParseRecord_AbsentNumbersStayNil(t *testing.T) {
	c, err := ParseRecord(record("A 001-a", "Mother: ", "Father: ", "?", "", "-", "abc", "-1"))
	if err != nil {
		t.Fatalf("ParseRecord() error = %v", err)
	}
	if c.Status != nil || c.Species != nil || c.Variant != nil || c.Warped != nil {
		t.Errorf("expected all numeric fields nil, got status=%v species=%v variant=%v warped=%v",
			c.Status, c.Species, c.Variant, c.Warped)
	}
	if c.Sex != "" {
		t.Errorf("Sex = %q, want unset", c.Sex)
	}
}

func TestParseRecord_ExtraLinesIgnored(t *testing.T) {
	lines := append(record("A 001-a", "Mother: ", "Father: ", "2", "1", "1", "0", "0"), "Birth: 12345", "Notes: whatever")
	if _, err := ParseRecord(lines); err != nil {
		t.Errorf("ParseRecord() error = %v, want nil", err)
	}
}

func TestParseRecord_Parents(t *testing.T) {
	tests := []struct {
		name     string
		parentA  string
		parentB  string
		wantMons []string
		wantSex  []Sex
	}{
		{
			name:     "no parents",
			parentA:  "Mother: ",
			parentB:  "Father: ",
			wantMons: nil,
		},
		{
			name:     "only father",
			parentA:  "Mother: ",
			parentB:  "Father: Adam 003-adam",
			wantMons: []string{"003-adam"},
			wantSex:  []Sex{SexMale},
		},
		{
			name:     "same parent twice",
			parentA:  "Mother: Eve 002-eve",
			parentB:  "Father: Eve 002-eve",
			wantMons: []string{"002-eve"},
			wantSex:  []Sex{SexFemale},
		},
		{
			name:     "unknown mother with father becomes female",
			parentA:  "Unknown: Eve 002-eve",
			parentB:  "Father: Adam 003-adam",
			wantMons: []string{"002-eve", "003-adam"},
			wantSex:  []Sex{SexFemale, SexMale},
		},
		{
			name:     "unknown second slot with mother also becomes female",
			parentA:  "Mother: Eve 002-eve",
			parentB:  "Unknown: Adam 003-adam",
			wantMons: []string{"002-eve", "003-adam"},
			wantSex:  []Sex{SexFemale, SexFemale},
		},
		{
			name:     "both unknown stay unknown",
			parentA:  "Unknown: norn.gen",
			parentB:  "Unknown: norn2.gen",
			wantMons: []string{"norn.gen", "norn2.gen"},
			wantSex:  []Sex{SexUnknown, SexUnknown},
		},
		{
			name:     "single unknown parent is not inferred",
			parentA:  "Unknown: Eve 002-eve",
			parentB:  "Father: ",
			wantMons: []string{"002-eve"},
			wantSex:  []Sex{SexUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseRecord(record("Kid 001-kid", tt.parentA, tt.parentB, "3", "1", "1", "0", "0"))
			if err != nil {
				t.Fatalf("ParseRecord() error = %v", err)
			}
			if len(c.Parents) != len(tt.wantMons) {
				t.Fatalf("len(Parents) = %d, want %d", len(c.Parents), len(tt.wantMons))
			}
			for i, p := range c.Parents {
				if p.Moniker != tt.wantMons[i] {
					t.Errorf("Parents[%d].Moniker = %q, want %q", i, p.Moniker, tt.wantMons[i])
				}
				if p.Sex != tt.wantSex[i] {
					t.Errorf("Parents[%d].Sex = %q, want %q", i, p.Sex, tt.wantSex[i])
				}
			}
		})
	}
}

func TestSplitRecords(t *testing.T) {
	full := strings.Join(record("A 001-a", "Mother: ", "Father: ", "3", "1", "1", "0", "0"), "\r\n")
	short := "Name: B 002-b\r\nMother: \r\nFather: "
	text := full + "\r\n\r\n" + short + "\r\n\r\n\r\n" + full + "\r\n"

	blocks := SplitRecords(text)
	if len(blocks) != 2 {
		t.Fatalf("len(SplitRecords()) = %d, want 2", len(blocks))
	}
	for i, b := range blocks {
		if len(b) != MinRecordLines {
			t.Errorf("block %d has %d lines, want %d", i, len(b), MinRecordLines)
		}
		if strings.ContainsAny(b[0], "\r\n") {
			t.Errorf("block %d first line %q still holds line endings", i, b[0])
		}
	}
}
