package binary

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/cheggaaa/pb/v3"
)

const progresscells = 30

// progresstemplate renders as `  [███████░░░]  50% 15.0 KB / 30.0 KB`.
const progresstemplate = `  [{{cells . }}] {{pct . }}% {{transferred . }}`

func init() {
	pb.RegisterElement("cells", pb.ElementFunc(func(state *pb.State, _ ...string) string {
		return cells(state.Value(), state.Total())
	}), false)
	pb.RegisterElement("pct", pb.ElementFunc(func(state *pb.State, _ ...string) string {
		return percent(state.Value(), state.Total())
	}), false)
	pb.RegisterElement("transferred", pb.ElementFunc(func(state *pb.State, _ ...string) string {
		return FormatBytes(state.Value()) + " / " + FormatBytes(state.Total())
	}), false)
}

// FormatBytes renders a byte count the way the progress line shows it:
// whole bytes below 1 KB, one decimal kilobytes below 1 MB, one decimal megabytes otherwise.
func FormatBytes(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}

func fraction(downloaded, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Min(math.Max(float64(downloaded)/float64(total), 0), 1)
}

// cells draws the fixed width bar, filled proportionally to the downloaded fraction.
func cells(downloaded, total int64) string {
	filled := int(math.Round(progresscells * fraction(downloaded, total)))
	return strings.Repeat("█", filled) + strings.Repeat("░", progresscells-filled)
}

// percent is the rounded percentage, right justified to three characters.
func percent(downloaded, total int64) string {
	return fmt.Sprintf("%3.0f", fraction(downloaded, total)*100)
}

// progress renders a single line progress bar, refreshed in place every time
// more data has been stored.
// A nil *progress is valid and renders nothing.
type progress struct {
	bar *pb.ProgressBar
	out io.Writer
}

// newProgress returns nil when there's nowhere to render or the size is unknown.
func newProgress(out io.Writer, total int64, terminal bool) *progress {
	if out == nil || total <= 0 {
		return nil
	}

	bar := pb.New64(total).
		SetTemplateString(progresstemplate).
		SetWriter(out).
		Set(pb.Static, true).
		Set(pb.Terminal, terminal).
		Set(pb.ReturnSymbol, "\r").
		Start()

	p := progress{bar: bar, out: out}
	p.Update(0)

	return &p
}

// Update moves the bar to the amount of bytes stored so far and redraws it.
func (p *progress) Update(current int64) {
	if p == nil {
		return
	}
	p.bar.SetCurrent(current).Write()
}

// Finish terminates the progress line.
func (p *progress) Finish() {
	if p == nil {
		return
	}
	p.bar.Finish()
	fmt.Fprintln(p.out)
}
