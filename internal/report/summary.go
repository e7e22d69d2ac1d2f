package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/litescript/ls-starmap/internal/sky"
)

// SummaryRow is one star row of the summary table.
type SummaryRow struct {
	HR     int
	Name   string
	Vmag   float64
	RAdeg  float64
	DecDeg float64
	DistPc float64
}

// GenerateSummaryRows returns the n brightest stars, brightest first. Ties
// are ordered by catalog key.
func GenerateSummaryRows(sk *sky.Sky, n int) []SummaryRow {
	stars := make([]*sky.Star, len(sk.Stars))
	copy(stars, sk.Stars)
	sort.Slice(stars, func(i, j int) bool {
		if stars[i].Vmag != stars[j].Vmag {
			return stars[i].Vmag < stars[j].Vmag
		}
		return stars[i].HR < stars[j].HR
	})
	if n >= 0 && len(stars) > n {
		stars = stars[:n]
	}

	rows := make([]SummaryRow, 0, len(stars))
	for _, s := range stars {
		rows = append(rows, SummaryRow{
			HR:     s.HR,
			Name:   s.Label(),
			Vmag:   s.Vmag,
			RAdeg:  s.RAdeg,
			DecDeg: s.DecDeg,
			DistPc: s.DistPc,
		})
	}
	return rows
}

// WriteSummaryTable writes catalog statistics, the brightest stars and the
// constellation binding status as a text table.
func WriteSummaryTable(w io.Writer, sk *sky.Sky, brightest int, timestamp time.Time) {
	st := sk.Stats()

	fmt.Fprintf(w, "Star Map @ %s\n", timestamp.Format(time.RFC3339))
	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintf(w, "Projection:     %s\n", sk.Projector)
	fmt.Fprintf(w, "Stars:          %d (%d duplicate keys ignored)\n", st.Stars, st.Duplicates)
	if st.Stars > 0 {
		fmt.Fprintf(w, "Magnitudes:     %.2f .. %.2f\n", st.MinVmag, st.MaxVmag)
	}
	fmt.Fprintf(w, "Constellations: %d (%d drawable)\n", st.Constellations, st.Bound)
	if f := sk.Filter(); f != nil {
		fmt.Fprintf(w, "Cutoff:         %.1f° from RA %.2f° Dec %+.2f°\n", f.MaxSepDeg, f.RA0, f.Dec0)
	}

	rows := GenerateSummaryRows(sk, brightest)
	if len(rows) == 0 {
		fmt.Fprintln(w, "\nNo stars loaded")
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-6s %-14s %6s %8s %8s %8s\n", "HR", "Name", "Vmag", "RA", "Dec", "Dist pc")
	fmt.Fprintln(w, strings.Repeat("─", 60))
	for _, r := range rows {
		dist := "-"
		if r.DistPc > 0 {
			dist = fmt.Sprintf("%.1f", r.DistPc)
		}
		fmt.Fprintf(w, "%-6d %-14s %6.2f %8.3f %+8.3f %8s\n",
			r.HR,
			truncateStr(r.Name, 14),
			r.Vmag,
			r.RAdeg,
			r.DecDeg,
			dist,
		)
	}

	if len(sk.Constellations) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-10s %5s  %s\n", "Const", "Keys", "Status")
	fmt.Fprintln(w, strings.Repeat("─", 60))
	for _, c := range sk.Constellations {
		status := "drawable"
		if !c.Complete() {
			status = "not drawable"
		}
		fmt.Fprintf(w, "%-10s %5d  %s\n", truncateStr(c.Name, 10), len(c.Keys), status)
	}
}

func truncateStr(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-2]) + ".."
}
