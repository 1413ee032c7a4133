package core

// Guard is a function consulted before a navigation attempt may take visible
// effect. It receives the attempt's context and produces an Outcome that is
// either already settled or will settle later.
//
// Settled values follow the decision contract: the literal bool true allows
// the navigation, a route name string redirects to that route, a Redirect
// value redirects with arguments, and anything else blocks. Guards consulted
// when leaving a route are boolean-only: true allows, everything else blocks.
type Guard func(nc *NavigationContext) Outcome

// Redirect is a settled guard value that sends the navigation to another
// route instead of the requested one.
type Redirect struct {
	Route string
	Args  map[string]string
}

// Outcome is what a guard invocation produces: a value that is already
// settled, or a channel that will carry the value once external work
// finishes. The executor inspects the shape exactly once, at the invocation
// boundary; everything past that point sees only interpreted decisions.
type Outcome struct {
	value    any
	ch       <-chan any
	deferred bool
}

// Value wraps an already-settled guard value.
func Value(v any) Outcome {
	return Outcome{value: v}
}

// Await wraps a channel that will deliver the guard value later. The channel
// is read once; closing it without sending counts as a block.
func Await(c <-chan any) Outcome {
	return Outcome{ch: c, deferred: true}
}

// Allow is shorthand for Value(true).
func Allow() Outcome {
	return Value(true)
}

// Block is shorthand for a settled value that blocks the navigation.
func Block() Outcome {
	return Value(false)
}

// RedirectTo is shorthand for a settled Redirect value.
func RedirectTo(route string, args map[string]string) Outcome {
	return Value(Redirect{Route: route, Args: args})
}

// invoke runs a guard, converting a panic into a settled block. A guard that
// fails to evaluate must not let anything through, and the triggering address
// change has no caller to report to.
func invoke(g Guard, nc *NavigationContext) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = Block()
		}
	}()
	return g(nc)
}
