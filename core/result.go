package core

type decisionKind string

const (
	decideAllow    decisionKind = "allow"
	decideBlock    decisionKind = "block"
	decideRedirect decisionKind = "redirect"
)

// Decision is the interpreted form of a settled guard value. Exactly one of
// Allowed, Blocked, or Redirected holds for any decision.
type Decision struct {
	kind  decisionKind
	route string
	args  map[string]string
}

func (d Decision) Allowed() bool {
	return d.kind == decideAllow
}

func (d Decision) Blocked() bool {
	return d.kind == decideBlock
}

// Redirected reports the redirect target when the decision is a redirect.
func (d Decision) Redirected() (route string, args map[string]string, ok bool) {
	if d.kind != decideRedirect {
		return "", nil, false
	}
	return d.route, d.args, true
}

func (d Decision) String() string {
	if d.kind == decideRedirect {
		return string(d.kind) + ":" + d.route
	}
	return string(d.kind)
}

// interpret maps a settled guard value onto a Decision. Only the literal bool
// true allows; a non-empty string or a Redirect value redirects; anything
// else, including nil and truthy-but-not-true values, blocks.
func interpret(v any) Decision {
	switch t := v.(type) {
	case bool:
		if t {
			return Decision{kind: decideAllow}
		}
	case string:
		if t != "" {
			return Decision{kind: decideRedirect, route: t}
		}
	case Redirect:
		if t.Route != "" {
			return Decision{kind: decideRedirect, route: t.Route, args: cloneArgs(t.Args)}
		}
	case *Redirect:
		if t != nil && t.Route != "" {
			return Decision{kind: decideRedirect, route: t.Route, args: cloneArgs(t.Args)}
		}
	}
	return Decision{kind: decideBlock}
}

// interpretLeave is the boolean-only mapping for leave guards. A departing
// route may hold or release the navigation but never steer it somewhere else.
func interpretLeave(v any) Decision {
	if b, ok := v.(bool); ok && b {
		return Decision{kind: decideAllow}
	}
	return Decision{kind: decideBlock}
}
