package core

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Resolver turns a raw address into a route match and back. Implemented by
// route.Table; the pipeline never inspects address syntax itself.
type Resolver interface {
	Resolve(address string) (route string, args map[string]string, ok bool)
	Format(route string, args map[string]string) string
}

// History is the address-write primitive. Push adds a history entry; Replace
// overwrites the current one. The pipeline only ever replaces: reverting a
// blocked attempt or swapping in a redirect target must not grow history.
type History interface {
	Current() string
	Push(address string)
	Replace(address string)
}

// Activator loads and renders the target of a committed navigation. Invoked
// only after a decision is Allow or Redirect, with an empty route name when
// the committed address matched nothing.
type Activator interface {
	Activate(route string, args map[string]string) tea.Cmd
}

type phaseKind string

const (
	phaseLeave  phaseKind = "leave"
	phaseGlobal phaseKind = "global"
	phaseEnter  phaseKind = "enter"
)

type phase struct {
	kind   phaseKind
	guards []Guard
}

// phasesFor computes the ordered guard phases for one attempt: leave guards
// of the departed route, then global guards, then enter guards of the target.
// A phase with no guards is omitted. Leave guards are skipped when source and
// target are the same route (re-entering with different arguments does not
// count as departing).
func phasesFor(reg *GuardRegistry, source, target string) []phase {
	var phases []phase
	if source != "" && source != target {
		if gs := reg.leaveGuards(source); len(gs) > 0 {
			phases = append(phases, phase{kind: phaseLeave, guards: gs})
		}
	}
	if gs := reg.globalGuards(); len(gs) > 0 {
		phases = append(phases, phase{kind: phaseGlobal, guards: gs})
	}
	if target != "" {
		if gs := reg.enterGuards(target); len(gs) > 0 {
			phases = append(phases, phase{kind: phaseEnter, guards: gs})
		}
	}
	return phases
}

// attempt is the suspended-resumable state of one navigation. phaseIdx and
// guardIdx point at the next guard to run; gen is the generation captured at
// the start and checked before any resumed result may apply.
type attempt struct {
	gen      uint64
	nc       *NavigationContext
	phases   []phase
	phaseIdx int
	guardIdx int
}

// Pipeline runs the guard phases for each navigation attempt and commits the
// resulting decision. All methods must be called from the update loop; the
// pipeline holds no locks and relies on that single thread of control.
type Pipeline struct {
	reg       *GuardRegistry
	resolver  Resolver
	history   History
	activator Activator

	base    context.Context
	gen     uint64
	route   string
	address string
	pending *attempt
	cancel  context.CancelFunc
}

func NewPipeline(ctx context.Context, reg *GuardRegistry, resolver Resolver, history History, activator Activator) *Pipeline {
	if ctx == nil {
		ctx = context.Background()
	}
	if reg == nil {
		reg = NewGuardRegistry()
	}
	return &Pipeline{
		reg:       reg,
		resolver:  resolver,
		history:   history,
		activator: activator,
		base:      ctx,
	}
}

// Registry exposes the pipeline's guard registry for registration calls.
func (p *Pipeline) Registry() *GuardRegistry {
	return p.reg
}

// Route returns the committed route name, empty before the first commit or
// when the committed address matched nothing.
func (p *Pipeline) Route() string {
	return p.route
}

// Address returns the committed address.
func (p *Pipeline) Address() string {
	return p.address
}

// PendingAddress returns the address of an attempt suspended on a deferred
// guard, or empty when no attempt is in flight. This is the only signal that
// a navigation has not settled yet.
func (p *Pipeline) PendingAddress() string {
	if p.pending == nil {
		return ""
	}
	return p.pending.nc.TargetAddress
}

// Generation returns the current attempt counter.
func (p *Pipeline) Generation() uint64 {
	return p.gen
}

// Navigate starts a navigation attempt for a raw address. It advances the
// generation, cancels the previous attempt's token, and runs guard phases in
// order. When every applicable guard settles immediately the decision is
// committed before Navigate returns; the returned command is then the
// activation command (or nil for a block). When a guard defers, Navigate
// returns a command that waits for it and re-enters the loop as
// GuardSettledMsg.
func (p *Pipeline) Navigate(address string) tea.Cmd {
	p.gen++
	if p.cancel != nil {
		p.cancel()
	}
	ctx, cancel := context.WithCancel(p.base)
	p.cancel = cancel
	p.pending = nil

	route, args, ok := p.resolver.Resolve(address)
	if !ok {
		route, args = "", nil
	}
	att := &attempt{
		gen:    p.gen,
		nc:     newContext(route, address, args, p.route, p.address, ctx),
		phases: phasesFor(p.reg, p.route, route),
	}
	return p.run(att)
}

// Resume continues an attempt suspended on a deferred guard. A settled value
// whose generation no longer matches is discarded outright: no commit, no
// block, no error. The attempt it belonged to has been superseded.
func (p *Pipeline) Resume(msg GuardSettledMsg) tea.Cmd {
	att := p.pending
	if att == nil || msg.Gen != p.gen || att.gen != msg.Gen {
		return nil
	}
	p.pending = nil
	d := decide(att.phases[att.phaseIdx].kind, msg.Value)
	if !d.Allowed() {
		return p.commit(att, d)
	}
	return p.run(att)
}

// Close tears the pipeline down: the in-flight token is cancelled, the
// pending attempt is dropped, and the registry is cleared.
func (p *Pipeline) Close() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.pending = nil
	p.reg.Clear()
}

// run iterates phases and guards from the attempt's current position. Guards
// settle in registration order regardless of how many suspensions happen
// along the way; the first non-Allow decision stops everything.
func (p *Pipeline) run(att *attempt) tea.Cmd {
	for att.phaseIdx < len(att.phases) {
		ph := att.phases[att.phaseIdx]
		for att.guardIdx < len(ph.guards) {
			g := ph.guards[att.guardIdx]
			att.guardIdx++
			out := invoke(g, att.nc)
			if out.deferred {
				p.pending = att
				return waitCmd(att.gen, out.ch)
			}
			d := decide(ph.kind, out.value)
			if !d.Allowed() {
				return p.commit(att, d)
			}
		}
		att.phaseIdx++
		att.guardIdx = 0
	}
	return p.commit(att, Decision{kind: decideAllow})
}

// decide interprets a settled guard value for the phase it came from. Leave
// guards get the boolean-only mapping; redirecting away from a departure
// check is not a thing.
func decide(kind phaseKind, v any) Decision {
	if kind == phaseLeave {
		return interpretLeave(v)
	}
	return interpret(v)
}
