package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/rshade/carbontrack/internal/footprint"
	"github.com/rshade/carbontrack/internal/stats"
)

// Rendering constants.
const (
	defaultBoxWidth    = 44
	progressBarWidth   = 30
	progressFilledChar = "█"
	progressEmptyChar  = "░"
)

// boxBorderColor returns the lipgloss.Color used for result box borders.
func boxBorderColor() lipgloss.Color { return lipgloss.Color("240") }

// boxTitleColor returns the lipgloss.Color used for result box titles.
func boxTitleColor() lipgloss.Color { return lipgloss.Color("35") }

// colorGood returns the color for achieved goals and improving trends.
func colorGood() lipgloss.Color { return lipgloss.Color("42") }

// colorWarn returns the color for worsening trends and missed targets.
func colorWarn() lipgloss.Color { return lipgloss.Color("214") }

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// isWriterTerminal reports whether the writer refers to a terminal. Buffers
// used in tests are never terminals, so tests exercise the plain paths.
func isWriterTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isTerminal(f)
	}
	return false
}

// renderBreakdown writes a calculation result, styled in a bordered box on
// a TTY and as plain text otherwise.
func renderBreakdown(w io.Writer, b footprint.Breakdown) error {
	lines := []string{
		fmt.Sprintf("Transportation  %s", footprint.FormatTonnes(b.Transportation)),
		fmt.Sprintf("Electricity     %s", footprint.FormatTonnes(b.Electricity)),
		fmt.Sprintf("Diet            %s", footprint.FormatTonnes(b.Diet)),
		fmt.Sprintf("Waste           %s", footprint.FormatTonnes(b.Waste)),
		"",
		fmt.Sprintf("Total           %s", footprint.FormatTonnes(b.Total)),
		fmt.Sprintf("                (%s per year)", footprint.FormatKg(b.Total*footprint.KgPerTonne)),
	}

	if !isWriterTerminal(w) {
		_, err := fmt.Fprintf(w, "Your Carbon Footprint\n%s\n", strings.Join(lines, "\n"))
		return err
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(boxTitleColor())
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(boxBorderColor()).
		Padding(0, 1).
		Width(defaultBoxWidth)

	content := titleStyle.Render("Your Carbon Footprint") + "\n" + strings.Join(lines, "\n")
	_, err := fmt.Fprintln(w, boxStyle.Render(content))
	return err
}

// renderProgressBar renders a fixed-width progress bar for percent (0-100).
func renderProgressBar(percent float64, styled bool) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100 * progressBarWidth)
	bar := strings.Repeat(progressFilledChar, filled) +
		strings.Repeat(progressEmptyChar, progressBarWidth-filled)

	if styled {
		color := colorWarn()
		if percent >= 100 {
			color = colorGood()
		}
		bar = lipgloss.NewStyle().Foreground(color).Render(bar)
	}

	return fmt.Sprintf("%s %.0f%%", bar, percent)
}

// renderGoalProgress writes the active goal status against the latest
// calculation.
func renderGoalProgress(w io.Writer, target float64, p stats.GoalProgress) {
	styled := isWriterTerminal(w)

	if p.Achieved {
		msg := fmt.Sprintf("Goal achieved! Latest footprint is at or below %.2f tonnes.", target)
		if styled {
			msg = lipgloss.NewStyle().Foreground(colorGood()).Render(msg)
		}
		fmt.Fprintln(w, msg)
		return
	}

	fmt.Fprintf(w, "Goal progress: %s\n", renderProgressBar(p.Percent, styled))
	fmt.Fprintf(w, "%.2f tonnes to go to reach your goal of %.2f tonnes\n",
		p.RemainingTonnes, target)
}

// renderTable writes a simple aligned text table.
func renderTable(w io.Writer, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	writeRow(header)
	for _, row := range rows {
		writeRow(row)
	}
}
