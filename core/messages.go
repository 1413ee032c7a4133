package core

import tea "github.com/charmbracelet/bubbletea"

// AddressChangedMsg announces that the navigable address changed. It is the
// sole trigger for a navigation attempt; the app's update loop routes it into
// Pipeline.Navigate.
type AddressChangedMsg struct {
	Address string
}

// GuardSettledMsg carries the value of a deferred guard back onto the update
// loop. Gen is the generation captured when the guard suspended; Resume
// discards the message when it no longer matches the current generation.
type GuardSettledMsg struct {
	Gen   uint64
	Value any
}

func AddressChangedCmd(address string) tea.Cmd {
	return func() tea.Msg { return AddressChangedMsg{Address: address} }
}

// waitCmd blocks off-loop until a deferred guard's channel delivers a value,
// then re-enters the loop. A closed channel delivers nil, which interprets as
// a block.
func waitCmd(gen uint64, c <-chan any) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-c
		if !ok {
			v = nil
		}
		return GuardSettledMsg{Gen: gen, Value: v}
	}
}
