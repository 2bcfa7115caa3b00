package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	doctorColorGreen = lipgloss.Color("#22c55e")
	doctorColorRed   = lipgloss.Color("#ef4444")
	doctorColorBlue  = lipgloss.Color("#3b82f6")
	doctorColorDim   = lipgloss.Color("#6b7280")
	doctorColorWhite = lipgloss.Color("#f9fafb")
)

var (
	doctorTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(doctorColorWhite)

	doctorSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(doctorColorBlue)

	doctorDimStyle = lipgloss.NewStyle().
			Foreground(doctorColorDim)

	doctorGreenStyle = lipgloss.NewStyle().
				Foreground(doctorColorGreen)

	doctorRedStyle = lipgloss.NewStyle().
			Foreground(doctorColorRed)
)

// renderDoctorStyled produces a lipgloss-styled diagnostic summary string.
func renderDoctorStyled(status *DoctorStatus) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(doctorTitleStyle.Render("  gtfsdeploy doctor"))
	b.WriteString("\n")
	b.WriteString(doctorDimStyle.Render("  " + strings.Repeat("═", 30)))
	b.WriteString("\n\n")

	b.WriteString(doctorSectionStyle.Render("  Local"))
	b.WriteString("\n")
	b.WriteString(doctorDimStyle.Render("  " + strings.Repeat("─", 35)))
	b.WriteString("\n")
	renderCheckLine(&b, "Config", status.Config)
	for _, tool := range status.Tools {
		extra := tool.Version
		if !tool.Required && !tool.Found {
			extra = "optional"
		}
		renderStateLine(&b, tool.Name, tool.Found || !tool.Required, extra)
	}
	renderCheckLine(&b, "Manifest", status.Manifest)
	b.WriteString("\n")

	b.WriteString(doctorSectionStyle.Render("  Provider"))
	b.WriteString("\n")
	b.WriteString(doctorDimStyle.Render("  " + strings.Repeat("─", 35)))
	b.WriteString("\n")
	renderCheckLine(&b, "Token", status.Token)
	renderCheckLine(&b, "Account", status.Account)
	renderCheckLine(&b, "Registry", status.Registry)
	renderCheckLine(&b, "Cluster", status.Cluster)

	failed := requiredFailures(status)
	b.WriteString("\n")
	if len(failed) == 0 {
		b.WriteString(doctorGreenStyle.Render("  All checks passed. Ready to publish and deploy."))
	} else {
		b.WriteString(doctorRedStyle.Render(fmt.Sprintf("  %d check(s) failed: %s", len(failed), strings.Join(failed, ", "))))
	}
	b.WriteString("\n")

	return b.String()
}

func renderCheckLine(b *strings.Builder, name string, state CheckState) {
	if state.Skipped {
		b.WriteString(doctorDimStyle.Render(fmt.Sprintf("    ○ %-20s skipped", name)))
		b.WriteString("\n")
		return
	}
	extra := state.Detail
	if !state.OK && state.Message != "" {
		extra = state.Message
	}
	renderStateLine(b, name, state.OK, extra)
}

func renderStateLine(b *strings.Builder, name string, ok bool, extra string) {
	mark := doctorGreenStyle.Render("✓")
	if !ok {
		mark = doctorRedStyle.Render("✗")
	}
	if extra != "" {
		b.WriteString(fmt.Sprintf("    %s %-20s %s\n", mark, name, doctorDimStyle.Render(extra)))
	} else {
		b.WriteString(fmt.Sprintf("    %s %s\n", mark, name))
	}
}
