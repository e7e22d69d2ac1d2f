// Package report produces the headless outputs: a catalog summary table,
// an ASCII mini sky and a JSON frame snapshot.
package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/litescript/ls-starmap/internal/sky"
	"github.com/litescript/ls-starmap/internal/transform"
	"github.com/litescript/ls-starmap/internal/view"
)

// FrameExport is the JSON-serializable representation of one frame.
type FrameExport struct {
	GeneratedAt time.Time     `json:"generated_at"`
	Mode        string        `json:"mode"`
	Projection  string        `json:"projection"`
	Operations  []string      `json:"operations"`
	Width       float64       `json:"width"`
	Height      float64       `json:"height"`
	Stats       StatsExport   `json:"stats"`
	Stars       []StarExport  `json:"stars"`
	Lines       []LineExport  `json:"lines"`
	Labels      []LabelExport `json:"labels,omitempty"`
	Culled      int           `json:"culled"`
}

// StatsExport summarises the loaded catalog.
type StatsExport struct {
	Stars          int     `json:"stars"`
	Constellations int     `json:"constellations"`
	Bound          int     `json:"bound"`
	Duplicates     int     `json:"duplicates"`
	MinVmag        float64 `json:"min_vmag"`
	MaxVmag        float64 `json:"max_vmag"`
}

// StarExport is a JSON-friendly visible star.
type StarExport struct {
	HR    int     `json:"hr"`
	Name  string  `json:"name,omitempty"`
	Vmag  float64 `json:"vmag"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
	Alpha float64 `json:"alpha"`
}

// LineExport is a JSON-friendly constellation segment.
type LineExport struct {
	Constellation string     `json:"constellation"`
	From          [2]float64 `json:"from"`
	To            [2]float64 `json:"to"`
}

// LabelExport is a JSON-friendly label.
type LabelExport struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// ExportFrame converts a rendered frame to an exportable form.
func ExportFrame(f view.Frame, sk *sky.Sky, generatedAt time.Time) *FrameExport {
	st := sk.Stats()
	export := &FrameExport{
		GeneratedAt: generatedAt,
		Mode:        f.Mode.String(),
		Projection:  sk.Projector.String(),
		Operations:  make([]string, 0, len(f.Ops)),
		Width:       f.Viewport.Width,
		Height:      f.Viewport.Height,
		Stats: StatsExport{
			Stars:          st.Stars,
			Constellations: st.Constellations,
			Bound:          st.Bound,
			Duplicates:     st.Duplicates,
			MinVmag:        st.MinVmag,
			MaxVmag:        st.MaxVmag,
		},
		Stars:  make([]StarExport, 0, len(f.Stars)),
		Lines:  make([]LineExport, 0, len(f.Lines)),
		Culled: f.Culled,
	}

	for _, op := range f.Ops {
		export.Operations = append(export.Operations, transform.String(op))
	}
	for _, s := range f.Stars {
		export.Stars = append(export.Stars, StarExport{
			HR:    s.HR,
			Name:  s.Name,
			Vmag:  s.Vmag,
			X:     s.X,
			Y:     s.Y,
			Size:  s.Size,
			Alpha: s.Alpha,
		})
	}
	for _, l := range f.Lines {
		export.Lines = append(export.Lines, LineExport{
			Constellation: l.Constellation,
			From:          [2]float64{l.X1, l.Y1},
			To:            [2]float64{l.X2, l.Y2},
		})
	}
	for _, l := range f.Labels {
		export.Labels = append(export.Labels, LabelExport{Text: l.Text, X: l.X, Y: l.Y})
	}

	return export
}

// WriteJSON writes the export as indented JSON.
func (e *FrameExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
