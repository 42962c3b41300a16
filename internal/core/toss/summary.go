package toss

// Summary aggregates a population after all trials complete.
type Summary struct {
	Actors    int
	Trials    int
	Heads     int
	Tails     int
	OnlyHeads int
	OnlyTails int
}

// Summarize folds actors into a Summary.
func Summarize(actors []Actor) Summary {
	var s Summary
	for i := range actors {
		a := &actors[i]
		s.Actors++
		s.Heads += int(a.Heads)
		s.Tails += int(a.Tails)
		if a.OnlyHeads() {
			s.OnlyHeads++
		}
		if a.OnlyTails() {
			s.OnlyTails++
		}
	}
	s.Trials = s.Heads + s.Tails
	return s
}

// Merge adds two partial summaries. It is commutative and associative, so
// shard results can be combined in any order.
func (s Summary) Merge(other Summary) Summary {
	return Summary{
		Actors:    s.Actors + other.Actors,
		Trials:    s.Trials + other.Trials,
		Heads:     s.Heads + other.Heads,
		Tails:     s.Tails + other.Tails,
		OnlyHeads: s.OnlyHeads + other.OnlyHeads,
		OnlyTails: s.OnlyTails + other.OnlyTails,
	}
}

// HeadsPercent is the share of all trials that came up heads.
func (s Summary) HeadsPercent() float64 {
	return percent(s.Heads, s.Trials)
}

// TailsPercent is the share of all trials that came up tails.
func (s Summary) TailsPercent() float64 {
	return percent(s.Tails, s.Trials)
}

// OnlyHeadsPercent is the share of actors that only tossed heads.
func (s Summary) OnlyHeadsPercent() float64 {
	return percent(s.OnlyHeads, s.Actors)
}

// OnlyTailsPercent is the share of actors that only tossed tails.
func (s Summary) OnlyTailsPercent() float64 {
	return percent(s.OnlyTails, s.Actors)
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
