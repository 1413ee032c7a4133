// Package tui is the demo shell around the navigation pipeline: an address
// bar, a view pane per route, and a status line. It owns the update loop the
// pipeline runs on and implements the pipeline's Activator.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"hashnav/core"
	"hashnav/history"
	"hashnav/internal/config"
	"hashnav/internal/journal"
	"hashnav/route"
)

// session is the mutable demo state guards consult. Guards only read it; key
// handlers on the update loop mutate it.
type session struct {
	unlocked    bool
	dirty       bool
	maintenance bool
}

type inputMode string

const (
	modeBrowse  inputMode = "browse"
	modeAddress inputMode = "address"
)

type statusMsg struct {
	text  string
	isErr bool
}

// App ties the pipeline to its collaborators and renders the result.
type App struct {
	cfg      config.Config
	pipeline *core.Pipeline
	table    *route.Table
	hist     *history.History
	journal  *journal.Journal // nil when disabled

	sess  *session
	input textinput.Model
	mode  inputMode

	route string
	args  map[string]string

	lastRequested string
	activatedGen  uint64

	status    string
	statusErr bool
	width     int
	height    int
}

func New(ctx context.Context, cfg config.Config, tbl *route.Table, j *journal.Journal) *App {
	input := textinput.New()
	input.Placeholder = "#/where/to"
	input.CharLimit = 120

	a := &App{
		cfg:     cfg,
		table:   tbl,
		hist:    history.New(),
		journal: j,
		sess:    &session{},
		input:   input,
		mode:    modeBrowse,
		status:  "Ready",
	}
	a.pipeline = core.NewPipeline(ctx, core.NewGuardRegistry(), tbl, a.hist, a)
	a.registerGuards()
	return a
}

// Pipeline exposes the pipeline for guard registration beyond the demo set.
func (a *App) Pipeline() *core.Pipeline {
	return a.pipeline
}

// registerGuards wires the demo policy: a maintenance kill switch, a
// redirect-to-login gate on protected, a combined gate on editForm whose
// leave half holds navigation while the form is dirty, and a deliberately
// slow permission check on reports to exercise deferred settlement.
func (a *App) registerGuards() {
	reg := a.pipeline.Registry()
	sess := a.sess

	reg.AddGlobal(func(nc *core.NavigationContext) core.Outcome {
		if sess.maintenance {
			return core.Block()
		}
		return core.Allow()
	})

	reg.AddEnter("protected", func(nc *core.NavigationContext) core.Outcome {
		if sess.unlocked {
			return core.Allow()
		}
		return core.RedirectTo("login", map[string]string{"from": nc.TargetAddress})
	})

	reg.AddRoute("editForm",
		func(nc *core.NavigationContext) core.Outcome {
			sess.dirty = false
			return core.Allow()
		},
		func(nc *core.NavigationContext) core.Outcome {
			return core.Value(!sess.dirty)
		},
	)

	reg.AddEnter("reports", slowPermission(sess))
}

// slowPermission simulates an access check that has to ask someone else. The
// attempt token short-circuits the wait when a newer navigation supersedes
// this one; the settled value would be discarded anyway.
func slowPermission(sess *session) core.Guard {
	return func(nc *core.NavigationContext) core.Outcome {
		ch := make(chan any, 1)
		unlocked := sess.unlocked
		go func() {
			select {
			case <-nc.Ctx.Done():
				ch <- false
			case <-time.After(600 * time.Millisecond):
				ch <- unlocked
			}
		}()
		return core.Await(ch)
	}
}

// Activate implements core.Activator: record the committed view and journal
// the visit.
func (a *App) Activate(routeName string, args map[string]string) tea.Cmd {
	a.route = routeName
	a.args = args
	a.activatedGen = a.pipeline.Generation()
	if a.journal == nil {
		return nil
	}
	decision := "allow"
	if a.pipeline.Address() != a.lastRequested {
		decision = "redirect"
	}
	address := a.pipeline.Address()
	return func() tea.Msg {
		if err := a.journal.Record(context.Background(), routeName, address, decision); err != nil {
			return statusMsg{text: "journal: " + err.Error(), isErr: true}
		}
		return nil
	}
}

func (a *App) Init() tea.Cmd {
	start := a.cfg.Start
	if start == "" {
		start = "#/home"
	}
	a.hist.Push(start)
	return tea.Batch(textinput.Blink, core.AddressChangedCmd(start))
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case statusMsg:
		a.status = m.text
		a.statusErr = m.isErr
		return a, nil
	case core.AddressChangedMsg:
		a.lastRequested = m.Address
		cmd := a.pipeline.Navigate(m.Address)
		a.syncStatus()
		return a, cmd
	case core.GuardSettledMsg:
		cmd := a.pipeline.Resume(m)
		a.syncStatus()
		return a, cmd
	case tea.KeyMsg:
		if m.String() == "ctrl+c" {
			a.pipeline.Close()
			return a, tea.Quit
		}
		if a.mode == modeAddress {
			return a.handleAddressKey(m)
		}
		return a.handleBrowseKey(m)
	}
	return a, nil
}

func (a *App) handleAddressKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc":
		a.mode = modeBrowse
		a.input.Blur()
		return a, nil
	case "enter":
		address := a.input.Value()
		a.mode = modeBrowse
		a.input.Blur()
		a.input.SetValue("")
		if address == "" {
			return a, nil
		}
		return a, a.goTo(address)
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(m)
	return a, cmd
}

func (a *App) handleBrowseKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q":
		a.pipeline.Close()
		return a, tea.Quit
	case "/", "ctrl+l":
		a.mode = modeAddress
		a.input.Focus()
		return a, nil
	case "b":
		if address, ok := a.hist.Back(); ok {
			return a, core.AddressChangedCmd(address)
		}
		a.status, a.statusErr = "nothing earlier in history", true
		return a, nil
	case "f":
		if address, ok := a.hist.Forward(); ok {
			return a, core.AddressChangedCmd(address)
		}
		a.status, a.statusErr = "nothing later in history", true
		return a, nil
	case "u":
		a.sess.unlocked = !a.sess.unlocked
		if a.sess.unlocked {
			a.status, a.statusErr = "session unlocked", false
		} else {
			a.status, a.statusErr = "session locked", false
		}
		return a, nil
	case "x":
		if a.route == "editForm" {
			a.sess.dirty = !a.sess.dirty
			if a.sess.dirty {
				a.status, a.statusErr = "form has unsaved changes", false
			} else {
				a.status, a.statusErr = "form saved", false
			}
		}
		return a, nil
	case "m":
		a.sess.maintenance = !a.sess.maintenance
		if a.sess.maintenance {
			a.status, a.statusErr = "maintenance mode: all navigation blocked", false
		} else {
			a.status, a.statusErr = "maintenance mode off", false
		}
		return a, nil
	case "1":
		return a, a.goTo("#/home")
	case "2":
		return a, a.goTo("#/users/7")
	case "3":
		return a, a.goTo("#/protected")
	case "4":
		return a, a.goTo("#/editForm")
	case "5":
		return a, a.goTo("#/reports")
	}
	return a, nil
}

// goTo is a user-initiated navigation: a fresh history entry, then the
// address-change notification the pipeline listens for.
func (a *App) goTo(address string) tea.Cmd {
	a.hist.Push(address)
	return core.AddressChangedCmd(address)
}

// syncStatus derives the status line from how the last attempt settled.
func (a *App) syncStatus() {
	gen := a.pipeline.Generation()
	switch {
	case a.pipeline.PendingAddress() != "":
		a.status, a.statusErr = "checking access to "+a.pipeline.PendingAddress()+"...", false
	case a.activatedGen == gen && a.pipeline.Address() == a.lastRequested:
		a.status, a.statusErr = "at "+a.pipeline.Address(), false
	case a.activatedGen == gen:
		a.status, a.statusErr = "redirected to "+a.pipeline.Address(), false
	default:
		a.status, a.statusErr = "blocked: address reverted to "+a.hist.Current(), true
	}
}
