package cli

import (
	"fmt"
	"strings"

	"integration-audit/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	topLeft     = "╭"
	topRight    = "╮"
	bottomLeft  = "╰"
	bottomRight = "╯"
	horizontal  = "─"
	vertical    = "│"
	leftT       = "├"
	rightT      = "┤"
	topT        = "┬"
	bottomT     = "┴"
	cross       = "┼"
)

var unclassifiedColumns = []struct {
	title string
	width int
}{
	{title: "#", width: 4},
	{title: "Change", width: 12},
	{title: "Date", width: 12},
	{title: "Entry", width: 72},
}

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// RenderUnclassified draws the log entries that carry neither service_id nor app_id.
func RenderUnclassified(records []models.LogRecord) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("%d log entries without service_id or app_id were not grouped", len(records))))
	sb.WriteString("\n")

	writeBorder(&sb, topLeft, topT, topRight)

	header := make([]string, 0, len(unclassifiedColumns))
	for _, col := range unclassifiedColumns {
		header = append(header, col.title)
	}
	writeRow(&sb, header, headerStyle)

	writeBorder(&sb, leftT, cross, rightT)

	for i, record := range records {
		writeRow(&sb, []string{
			fmt.Sprintf("%d", i+1),
			record.ChangeType,
			record.Date,
			string(record.Raw),
		}, mutedStyle)
	}

	writeBorder(&sb, bottomLeft, bottomT, bottomRight)
	return sb.String()
}

func writeBorder(sb *strings.Builder, left, middle, right string) {
	sb.WriteString(borderStyle.Render(left))
	for i, col := range unclassifiedColumns {
		sb.WriteString(borderStyle.Render(strings.Repeat(horizontal, col.width+2)))
		if i < len(unclassifiedColumns)-1 {
			sb.WriteString(borderStyle.Render(middle))
		}
	}
	sb.WriteString(borderStyle.Render(right))
	sb.WriteString("\n")
}

func writeRow(sb *strings.Builder, cells []string, style lipgloss.Style) {
	sb.WriteString(borderStyle.Render(vertical))
	for i, col := range unclassifiedColumns {
		sb.WriteString(style.Render(" " + padRight(cells[i], col.width) + " "))
		sb.WriteString(borderStyle.Render(vertical))
	}
	sb.WriteString("\n")
}

// padRight pads s to width display cells, truncating with an ellipsis when it does not fit.
func padRight(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	sw := runewidth.StringWidth(s)
	if sw > width {
		s = runewidth.Truncate(s, width, "...")
		sw = runewidth.StringWidth(s)
	}
	return s + strings.Repeat(" ", width-sw)
}
