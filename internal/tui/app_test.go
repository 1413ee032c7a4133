package tui

import (
	"context"
	"testing"

	"hashnav/core"
	"hashnav/internal/config"
	"hashnav/route"
)

func demoApp(t *testing.T) *App {
	t.Helper()
	tbl := route.NewTable()
	adds := []struct{ name, pattern string }{
		{"home", "home"},
		{"users", "users/:id"},
		{"protected", "protected"},
		{"editForm", "editForm"},
		{"login", "login"},
		{"reports", "reports"},
	}
	for _, a := range adds {
		if err := tbl.Add(a.name, a.pattern); err != nil {
			t.Fatalf("add %s: %v", a.name, err)
		}
	}
	return New(context.Background(), config.Config{Start: "#/home"}, tbl, nil)
}

func navigate(a *App, address string) {
	a.hist.Push(address)
	a.Update(core.AddressChangedMsg{Address: address})
}

func TestShellCommitsAllowedNavigation(t *testing.T) {
	a := demoApp(t)
	navigate(a, "#/users/7")
	if a.route != "users" || a.args["id"] != "7" {
		t.Fatalf("expected users view with id=7, got route=%q args=%+v", a.route, a.args)
	}
	if a.statusErr {
		t.Fatalf("expected clean status, got %q", a.status)
	}
}

func TestShellRedirectsLockedProtected(t *testing.T) {
	a := demoApp(t)
	navigate(a, "#/protected")
	if a.route != "login" {
		t.Fatalf("expected redirect to login while locked, got %q", a.route)
	}
	if a.args["from"] != "#/protected" {
		t.Fatalf("expected original address carried in args, got %+v", a.args)
	}
	a.sess.unlocked = true
	navigate(a, "#/protected")
	if a.route != "protected" {
		t.Fatalf("expected direct entry once unlocked, got %q", a.route)
	}
}

func TestShellDirtyFormBlocksLeaving(t *testing.T) {
	a := demoApp(t)
	navigate(a, "#/editForm")
	a.sess.dirty = true
	navigate(a, "#/home")
	if a.route != "editForm" {
		t.Fatalf("expected to stay on editForm while dirty, got %q", a.route)
	}
	if !a.statusErr {
		t.Fatalf("expected blocked status, got %q", a.status)
	}
	if a.hist.Current() != "#/editForm" {
		t.Fatalf("expected address reverted, got %q", a.hist.Current())
	}
	a.sess.dirty = false
	navigate(a, "#/home")
	if a.route != "home" {
		t.Fatalf("expected navigation once clean, got %q", a.route)
	}
}

func TestShellDeferredReportsGuard(t *testing.T) {
	a := demoApp(t)
	a.sess.unlocked = true
	navigate(a, "#/home")
	navigate(a, "#/reports")
	if a.pipeline.PendingAddress() != "#/reports" {
		t.Fatalf("expected attempt suspended on the slow check, pending=%q", a.pipeline.PendingAddress())
	}
	if a.route != "home" {
		t.Fatalf("view must not change before the guard settles, got %q", a.route)
	}
	a.Update(core.GuardSettledMsg{Gen: a.pipeline.Generation(), Value: true})
	if a.route != "reports" {
		t.Fatalf("expected reports after settle, got %q", a.route)
	}
}

func TestShellMaintenanceBlocksEverything(t *testing.T) {
	a := demoApp(t)
	navigate(a, "#/home")
	a.sess.maintenance = true
	navigate(a, "#/users/7")
	if a.route != "home" {
		t.Fatalf("expected maintenance mode to pin the view, got %q", a.route)
	}
}
