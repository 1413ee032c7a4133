package core

import tea "github.com/charmbracelet/bubbletea"

// commit applies a decision and settles the attempt. Exactly one commit
// happens per generation; stale resumes never reach here.
//
// Allow records the target as the committed route/address and hands off to
// activation. The address bar already shows the target (the address change is
// what triggered the attempt), so no history write is needed.
//
// Block restores the previously committed address with a history-replacing
// write and activates nothing; the displayed content stays whatever was
// committed before.
//
// Redirect replaces the not-yet-committed address with the redirect target's
// formatted address and activates that target directly. The target's own
// guards are not consulted; re-entering the pipeline here would need
// cross-attempt cycle detection.
func (p *Pipeline) commit(att *attempt, d Decision) tea.Cmd {
	p.pending = nil

	if route, args, ok := d.Redirected(); ok {
		address := p.resolver.Format(route, args)
		p.history.Replace(address)
		p.route = route
		p.address = address
		return p.activator.Activate(route, args)
	}

	if d.Blocked() {
		p.history.Replace(att.nc.SourceAddress)
		return nil
	}

	p.route = att.nc.TargetRoute
	p.address = att.nc.TargetAddress
	return p.activator.Activate(att.nc.TargetRoute, att.nc.TargetArgs)
}
