package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ratel-online/whist/bridge/card"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Hand lists cards one per line next to the label that selects them.
func Hand(labels []string, cards []card.Card) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-8s%s\n", "Label", "Card"))
	for i, c := range cards {
		buf.WriteString(fmt.Sprintf("%-8s%s\n", labels[i], c.Display()))
	}
	return strings.TrimRight(buf.String(), "\n")
}

// Table draws a boxed table. The first column is left aligned, the rest right aligned.
func Table(title string, header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, cell := range header {
		widths[i] = lipgloss.Width(cell)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	buf := bytes.Buffer{}
	buf.WriteString(titleStyle.Render(title))
	buf.WriteString("\n")
	buf.WriteString(line(header, widths))
	for _, row := range rows {
		buf.WriteString("\n")
		buf.WriteString(line(row, widths))
	}
	return boxStyle.Render(buf.String())
}

func line(cells []string, widths []int) string {
	padded := make([]string, 0, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		gap := strings.Repeat(" ", width-lipgloss.Width(cell))
		if i == 0 {
			padded = append(padded, cell+gap)
		} else {
			padded = append(padded, gap+cell)
		}
	}
	return strings.Join(padded, "  ")
}

func Row(name string, values ...int) []string {
	row := make([]string, 0, len(values)+1)
	row = append(row, name)
	for _, value := range values {
		row = append(row, strconv.Itoa(value))
	}
	return row
}

// Points renders one row per name in the given order.
func Points(title string, names []string, points map[string]int) string {
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, Row(name, points[name]))
	}
	return Table(title, []string{"Player", "Points"}, rows)
}
