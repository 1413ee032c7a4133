package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	addressStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 1)
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	bodyStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (a *App) View() string {
	var b strings.Builder

	address := a.hist.Current()
	if a.mode == modeAddress {
		b.WriteString(addressStyle.Render("go:") + " " + a.input.View())
	} else {
		bar := addressStyle.Render(address)
		if pending := a.pipeline.PendingAddress(); pending != "" {
			bar += " " + pendingStyle.Render("... "+pending)
		}
		b.WriteString(bar)
	}
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render(a.renderRoute()))
	b.WriteString("\n")

	if a.statusErr {
		b.WriteString(statusErrStyle.Render(a.status))
	} else {
		b.WriteString(statusStyle.Render(a.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("1-5 views · / address · b/f history · u lock · x dirty · m maintenance · q quit"))
	return b.String()
}

func (a *App) renderRoute() string {
	switch a.route {
	case "home":
		return titleStyle.Render("Home") + "\n\nEverything starts here."
	case "users":
		return titleStyle.Render("User "+a.args["id"]) + "\n\nProfile for user " + a.args["id"] + "."
	case "protected":
		return titleStyle.Render("Protected") + "\n\nYou only see this with an unlocked session."
	case "editForm":
		state := "clean"
		if a.sess.dirty {
			state = "dirty — leaving is blocked until saved (x)"
		}
		return titleStyle.Render("Edit Form") + "\n\nForm state: " + state + "."
	case "login":
		from := a.args["from"]
		if from == "" {
			return titleStyle.Render("Login") + "\n\nPress u to unlock the session."
		}
		return titleStyle.Render("Login") + fmt.Sprintf("\n\nAccess to %s needs an unlocked session. Press u.", from)
	case "reports":
		return titleStyle.Render("Reports") + "\n\nNumbers, fetched slowly on purpose."
	case "":
		msg := "Nothing matches " + a.hist.Current() + "."
		if a.cfg.UI.Suggestions {
			if s := a.table.Suggest(a.hist.Current()); s != "" {
				msg += " Did you mean " + s + "?"
			}
		}
		return titleStyle.Render("Not Found") + "\n\n" + msg
	default:
		return titleStyle.Render(a.route)
	}
}
