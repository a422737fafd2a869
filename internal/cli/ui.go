package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/grindlemire/go-sortable"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleValue  = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleMoved  = lipgloss.NewStyle().Foreground(colorGreen)
)

// slotTable renders the slot of every item in order. Items whose index
// differs from their position in initial are highlighted.
func slotTable(c *sortable.Container, initial []string) string {
	before := make(map[string]int, len(initial))
	for i, k := range initial {
		before[k] = i
	}

	positions := c.Positions()
	order := c.Order()
	rows := make([][]string, 0, len(order))
	for i, key := range order {
		pos := positions[key]
		d, _ := c.ItemDimensions(key)
		rows = append(rows, []string{
			fmt.Sprint(i),
			key,
			formatFloat(pos.X),
			formatFloat(pos.Y),
			formatFloat(d.Width),
			formatFloat(d.Height),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Key", "X", "Y", "Width", "Height").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if row < len(order) {
				if was, ok := before[order[row]]; ok && was != row {
					return styleMoved
				}
			}
			return styleValue
		}).
		Render()
}

func formatFloat(v float64) string {
	if v < 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", v)
}

func printSize(w io.Writer, c *sortable.Container) {
	size := c.ContainerSize()
	fmt.Fprintln(w, styleDim.Render(fmt.Sprintf("container %s x %s", formatFloat(size.Width), formatFloat(size.Height))))
}
