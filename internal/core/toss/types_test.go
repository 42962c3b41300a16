package toss

import "testing"

func TestActorFlags(t *testing.T) {
	tests := []struct {
		name      string
		outcomes  []Outcome
		onlyHeads bool
		onlyTails bool
		pattern   Pattern
	}{
		{name: "no trials", pattern: PatternNoTrials},
		{name: "one heads", outcomes: []Outcome{Heads}, onlyHeads: true, pattern: PatternOnlyHeads},
		{name: "one tails", outcomes: []Outcome{Tails}, onlyTails: true, pattern: PatternOnlyTails},
		{name: "heads streak", outcomes: []Outcome{Heads, Heads, Heads}, onlyHeads: true, pattern: PatternOnlyHeads},
		{name: "tails streak", outcomes: []Outcome{Tails, Tails}, onlyTails: true, pattern: PatternOnlyTails},
		{name: "streak broken by tails", outcomes: []Outcome{Heads, Heads, Tails}, pattern: PatternMixed},
		{name: "streak broken by heads", outcomes: []Outcome{Tails, Heads}, pattern: PatternMixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Actor
			for _, o := range tt.outcomes {
				a.Record(o)
			}
			if a.Trials() != len(tt.outcomes) {
				t.Errorf("Trials() = %d, want %d", a.Trials(), len(tt.outcomes))
			}
			if a.OnlyHeads() != tt.onlyHeads {
				t.Errorf("OnlyHeads() = %v, want %v", a.OnlyHeads(), tt.onlyHeads)
			}
			if a.OnlyTails() != tt.onlyTails {
				t.Errorf("OnlyTails() = %v, want %v", a.OnlyTails(), tt.onlyTails)
			}
			if a.Pattern() != tt.pattern {
				t.Errorf("Pattern() = %v, want %v", a.Pattern(), tt.pattern)
			}
		})
	}
}

func TestActorName(t *testing.T) {
	a := Actor{ID: 0}
	if a.Name() != "Player1" {
		t.Fatalf("Name() = %q, want %q", a.Name(), "Player1")
	}
	a = Actor{ID: 41}
	if a.Name() != "Player42" {
		t.Fatalf("Name() = %q, want %q", a.Name(), "Player42")
	}
}

func TestOutcomeAndPatternStrings(t *testing.T) {
	if Heads.String() != "Heads" || Tails.String() != "Tails" {
		t.Fatalf("unexpected outcome strings %q %q", Heads, Tails)
	}
	if Outcome(9).String() != "Unknown" {
		t.Fatalf("unexpected string for unknown outcome: %q", Outcome(9))
	}
	if PatternMixed.String() != "Mixed" || Pattern(99).String() != "Unknown" {
		t.Fatal("unexpected pattern strings")
	}
}
