// Package plot draws a terminal chart of an outlier detection result.
package plot

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Harshitk-cp/stratcheck/internal/outlier"
)

const (
	DefaultWidth = 60
	minWidth     = 10
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	noneStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	likelyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	distinctStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	duplicateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	axisStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func classStyle(c outlier.Class) lipgloss.Style {
	switch c {
	case outlier.Distinct:
		return distinctStyle
	case outlier.Likely:
		return likelyStyle
	default:
		return noneStyle
	}
}

// Render draws one row per ranked sample, top of the transect first. Each
// row shows the sample name, its stratigraphic position and a bar spanning
// mean ± uncertainty on an age axis shared by all rows. width is the bar
// area in columns.
func Render(res *outlier.Result, width int) string {
	if width < minWidth {
		width = minWidth
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title(res)))
	b.WriteByte('\n')

	if !res.Applicable() {
		b.WriteString(res.Report())
		return b.String()
	}
	if len(res.Entries) == 0 {
		b.WriteString("(no samples)\n")
		return b.String()
	}

	lo, hi := ageRange(res.Entries)
	nameWidth := 4
	for _, e := range res.Entries {
		nameWidth = max(nameWidth, len(e.Name))
	}

	for _, e := range res.Entries {
		marker := " "
		if e.Duplicate {
			marker = duplicateStyle.Render("*")
		}
		fmt.Fprintf(&b, "%-*s %10.2f %s ", nameWidth, e.Name, e.Position, marker)
		b.WriteString(classStyle(e.Class).Render(bar(e.Age, lo, hi, width)))
		fmt.Fprintf(&b, " %s\n", e.Class)
	}

	pad := strings.Repeat(" ", nameWidth+14)
	b.WriteString(pad)
	b.WriteString(axisStyle.Render(axis(lo, hi, width)))
	b.WriteByte('\n')

	b.WriteString(legend(res))
	return b.String()
}

func title(res *outlier.Result) string {
	name := res.Transect
	if name == "" {
		name = "transect"
	}
	if res.Nuclide == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, res.Nuclide)
}

// ageRange returns the shared axis bounds covering every interval.
func ageRange(entries []outlier.Entry) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, e := range entries {
		lo = math.Min(lo, e.Age.Min())
		hi = math.Max(hi, e.Age.Max())
	}
	if hi <= lo {
		lo, hi = lo-1, hi+1
	}
	return lo, hi
}

func column(v, lo, hi float64, width int) int {
	c := int(math.Round((v - lo) / (hi - lo) * float64(width-1)))
	return min(max(c, 0), width-1)
}

// bar draws the interval as dashes with a bullet at the mean.
func bar(a outlier.Age, lo, hi float64, width int) string {
	row := []rune(strings.Repeat(" ", width))
	from, to := column(a.Min(), lo, hi, width), column(a.Max(), lo, hi, width)
	for i := from; i <= to; i++ {
		row[i] = '-'
	}
	row[from], row[to] = '[', ']'
	row[column(a.Mean, lo, hi, width)] = 'o'
	return string(row)
}

func axis(lo, hi float64, width int) string {
	left := fmt.Sprintf("%.2f", lo)
	right := fmt.Sprintf("%.2f", hi)
	gap := width - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func legend(res *outlier.Result) string {
	parts := []string{
		noneStyle.Render("none"),
		likelyStyle.Render("likely"),
		distinctStyle.Render("distinct"),
	}
	s := "legend: " + strings.Join(parts, " ")
	if len(res.Duplicates) > 0 {
		s += " " + duplicateStyle.Render("*") + " shared position"
	}
	return s + "\n"
}
