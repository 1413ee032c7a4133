package core

import "context"

// NavigationContext is the immutable per-attempt snapshot handed to every
// guard. TargetRoute is empty when the address matched no route; SourceRoute
// is empty on the first attempt of a pipeline's life.
//
// Ctx is the attempt's cancellation token. It is cancelled when a newer
// attempt begins, so guards doing external work can abandon it early. A
// cancelled token does not stop the pipeline by itself; a stale result is
// discarded by the generation check regardless of the token's state.
type NavigationContext struct {
	TargetRoute   string
	TargetAddress string
	TargetArgs    map[string]string
	SourceRoute   string
	SourceAddress string
	Ctx           context.Context
}

func newContext(targetRoute, targetAddress string, args map[string]string, sourceRoute, sourceAddress string, ctx context.Context) *NavigationContext {
	return &NavigationContext{
		TargetRoute:   targetRoute,
		TargetAddress: targetAddress,
		TargetArgs:    cloneArgs(args),
		SourceRoute:   sourceRoute,
		SourceAddress: sourceAddress,
		Ctx:           ctx,
	}
}

func cloneArgs(args map[string]string) map[string]string {
	if len(args) == 0 {
		return nil
	}
	out := make(map[string]string, len(args))
	for k, v := range args {
		out[k] = v
	}
	return out
}
