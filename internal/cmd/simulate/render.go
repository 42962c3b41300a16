package simulate

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/louisbranch/cointoss/internal/core/toss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const dividerWidth = 60

// renderer writes report lines and remembers the first write error.
type renderer struct {
	w   io.Writer
	p   *message.Printer
	err error
}

func newRenderer(w io.Writer) *renderer {
	return &renderer{w: w, p: message.NewPrinter(language.English)}
}

func (r *renderer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = r.p.Fprintf(r.w, format, args...)
}

func (r *renderer) divider(headline string) {
	line := strings.Repeat("─", dividerWidth)
	r.printf("\n%s\n\t%s\n%s\n", line, headline, line)
}

func (r *renderer) summary(res toss.Result) {
	s := res.Summary
	r.printf("Number of players:            %d\n", s.Actors)
	r.printf("Total number of coin tosses:  %d\n", s.Trials)
	r.printf("Total heads tosses:           %d (%.5f%%)\n", s.Heads, s.HeadsPercent())
	r.printf("Total tails tosses:           %d (%.5f%%)\n", s.Tails, s.TailsPercent())
	r.printf("Players only tossed heads:    %d (Probability: %.6f%%)\n", s.OnlyHeads, s.OnlyHeadsPercent())
	r.printf("Players only tossed tails:    %d (Probability: %.6f%%)\n", s.OnlyTails, s.OnlyTailsPercent())
	// Seeds are identifiers, not quantities; no digit grouping.
	r.printf("Seed:                         %s\n", fmt.Sprint(res.Seed))
	r.printf("Program runtime:              %s\n", FormatRuntime(res.Elapsed))
}

func (r *renderer) actors(actors []toss.Actor, limit int) {
	if limit > len(actors) {
		limit = len(actors)
	}
	for _, a := range actors[:limit] {
		total := a.Trials()
		var headsPct, tailsPct float64
		if total > 0 {
			headsPct = float64(a.Heads) / float64(total) * 100
			tailsPct = float64(a.Tails) / float64(total) * 100
		}
		r.printf("%s:\n", a.Name())
		r.printf("\tHeads tosses: %d (%.2f%%)\n", a.Heads, headsPct)
		r.printf("\tTails tosses: %d (%.2f%%)\n", a.Tails, tailsPct)
		r.printf("\tOnly tossed heads: %t\n", a.OnlyHeads())
		r.printf("\tOnly tossed tails: %t\n\n", a.OnlyTails())
	}
}

// FormatRuntime renders an elapsed duration at a resolution matching its
// magnitude: fractional seconds under ten seconds, whole seconds under a
// minute, m:ss under an hour and h:mm:ss beyond.
func FormatRuntime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := d.Seconds()
	whole := int64(secs)
	switch {
	case secs < 10:
		return fmt.Sprintf("%.2f seconds", secs)
	case secs < 60:
		return fmt.Sprintf("%d seconds", whole)
	case secs < 3600:
		return fmt.Sprintf("%d:%02d min", whole/60, whole%60)
	default:
		return fmt.Sprintf("%d:%02d:%02d h", whole/3600, whole%3600/60, whole%60)
	}
}
