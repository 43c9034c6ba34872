// internal/report/report.go
package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

// Summary is the end-of-run view of a simulation.
type Summary struct {
	Labels []string // sorted
	Hits   map[string]int

	Raised   int
	Services int
	Storms   int
	Unrouted int

	// dispatch cost per line service
	Mean   time.Duration
	StdDev time.Duration
}

// Build orders hit counters by label and reduces service durations.
func Build(hits map[string]int, raised, services, storms, unrouted int, durations []time.Duration) Summary {
	labels := maps.Keys(hits)
	slices.Sort(labels)

	s := Summary{
		Labels:   labels,
		Hits:     maps.Clone(hits),
		Raised:   raised,
		Services: services,
		Storms:   storms,
		Unrouted: unrouted,
	}

	if len(durations) > 0 {
		xs := make([]float64, len(durations))
		for i, d := range durations {
			xs[i] = float64(d)
		}
		mean, std := stat.MeanStdDev(xs, nil)
		s.Mean = time.Duration(mean)
		if len(xs) > 1 {
			s.StdDev = time.Duration(std)
		}
	}

	return s
}

// Write prints the summary as an aligned table.
func (s Summary) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "HANDLER\tHITS")
	for _, l := range s.Labels {
		fmt.Fprintf(tw, "%s\t%d\n", l, s.Hits[l])
	}
	fmt.Fprintln(tw, "\t")
	fmt.Fprintf(tw, "raised\t%d\n", s.Raised)
	fmt.Fprintf(tw, "services\t%d\n", s.Services)
	fmt.Fprintf(tw, "storms\t%d\n", s.Storms)
	fmt.Fprintf(tw, "unrouted\t%d\n", s.Unrouted)
	fmt.Fprintf(tw, "dispatch mean\t%v\n", s.Mean)
	fmt.Fprintf(tw, "dispatch stddev\t%v\n", s.StdDev)

	return tw.Flush()
}
