package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mrhaji1999/vandapay-sub001/internal/model"
)

var (
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	styleLabel  = lipgloss.NewStyle().Faint(true)
	styleOK     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleWarn   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleFail   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// renderStatus colorizes well-known transaction states.
func renderStatus(status string) string {
	switch strings.ToLower(status) {
	case "completed", "success", "paid", "confirmed", "active":
		return styleOK.Render(status)
	case "pending", "processing", "awaiting":
		return styleWarn.Render(status)
	case "failed", "rejected", "cancelled", "expired":
		return styleFail.Render(status)
	}
	return status
}

func renderField(w io.Writer, name, value string) {
	fmt.Fprintf(w, "%s %s\n", styleLabel.Render(name+":"), value)
}

// renderTable prints [rows] under [header] with per-column
// width alignment.
func renderTable(w io.Writer, header []string, rows [][]string) {

	width := make([]int, len(header))
	for c, name := range header {
		width[c] = lipgloss.Width(name)
	}
	for _, row := range rows {
		for c, cell := range row {
			if c < len(width) && lipgloss.Width(cell) > width[c] {
				width[c] = lipgloss.Width(cell)
			}
		}
	}

	line := make([]string, len(header))
	for c, name := range header {
		line[c] = styleHeader.Render(pad(name, width[c]))
	}
	fmt.Fprintln(w, strings.Join(line, "  "))

	for _, row := range rows {
		for c, cell := range row {
			if c < len(width) {
				line[c] = pad(cell, width[c])
			}
		}
		fmt.Fprintln(w, strings.Join(line[:len(row)], "  "))
	}
}

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func renderProfile(w io.Writer, user *model.UserProfile) {
	renderField(w, "id", fmt.Sprintf("%d", user.Id))
	renderField(w, "username", user.Username)
	renderField(w, "name", user.Name)
	renderField(w, "email", user.Email)
	roles := user.RoleUnion()
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, string(role))
	}
	renderField(w, "roles", strings.Join(names, ", "))
	if len(user.Capabilities) > 0 {
		renderField(w, "capabilities", strings.Join(user.Capabilities, ", "))
	}
}
