package genealogy

import "testing"

func intPtr(n int) *int { return &n }

func TestDecideStyle(t *testing.T) {
	cls := Classification{
		Living:    NewMonikerSet("live"),
		Ancestors: NewMonikerSet("live", "anc"),
	}

	tests := []struct {
		name     string
		creature *Creature
		want     NodeStyle
	}{
		{
			name:     "egg overrides everything",
			creature: &Creature{Moniker: "live", Status: status(StatusEgg), Sex: SexMale, Warped: intPtr(1)},
			want:     NodeStyle{Shape: "egg", Color: "lightgreen", FontColor: "white", FillColor: "lightseagreen", Style: "filled"},
		},
		{
			name:     "living descendant",
			creature: &Creature{Moniker: "live", Status: status(StatusAlive)},
			want:     NodeStyle{Shape: "doublecircle", Color: "lightgrey", FontColor: "black", FillColor: "lightblue", Style: "filled"},
		},
		{
			name:     "living ancestor female",
			creature: &Creature{Moniker: "anc", Status: status(StatusDead), Sex: SexFemale},
			want:     NodeStyle{Shape: "circle", Color: "deeppink", FontColor: "black", FillColor: "lightgrey", Style: "filled"},
		},
		{
			name:     "unrelated",
			creature: &Creature{Moniker: "other", Status: status(StatusDead)},
			want:     NodeStyle{Shape: "rect", Color: "lightgrey", FontColor: "grey", FillColor: "white"},
		},
		{
			name:     "exported ancestor",
			creature: &Creature{Moniker: "anc", Status: status(StatusExported), Sex: SexNonBinary},
			want:     NodeStyle{Shape: "house", Color: "pink", FontColor: "black", FillColor: "lightgrey", Style: "filled"},
		},
		{
			name:     "warped male keeps two-tone fill under sex colour",
			creature: &Creature{Moniker: "other", Status: status(StatusDead), Warped: intPtr(1), Sex: SexMale},
			want:     NodeStyle{Shape: "rect", Color: "blue", FontColor: "grey", FillColor: "white:blue", Style: "filled", GradientAngle: 90},
		},
		{
			name:     "missing status is not an egg",
			creature: &Creature{Moniker: "other", Sex: SexUndetermined},
			want:     NodeStyle{Shape: "rect", Color: "lightgrey", FontColor: "grey", FillColor: "white"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecideStyle(tt.creature, cls)
			if got != tt.want {
				t.Errorf("DecideStyle() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNodeStyleAttributes(t *testing.T) {
	attrs := NodeStyle{Shape: "rect", FillColor: "white:blue", GradientAngle: 90}.Attributes()
	if attrs["shape"] != "rect" || attrs["fillcolor"] != "white:blue" || attrs["gradientangle"] != "90" {
		t.Errorf("Attributes() = %v", attrs)
	}
	if _, ok := attrs["style"]; ok {
		t.Errorf("Attributes() included empty style: %v", attrs)
	}
}

func TestEdgeColor(t *testing.T) {
	tests := map[Sex]string{
		SexMale:    "blue",
		SexFemale:  "deeppink",
		SexUnknown: "grey",
		"":         "grey",
	}
	for sex, want := range tests {
		if got := EdgeColor(sex); got != want {
			t.Errorf("EdgeColor(%q) = %q, want %q", sex, got, want)
		}
	}
}
