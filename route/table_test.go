package route

import "testing"

func demoTable(t *testing.T) *Table {
	t.Helper()
	tbl := NewTable()
	adds := []struct{ name, pattern string }{
		{"home", "home"},
		{"users", "users/:id"},
		{"userEdit", "users/:id/edit"},
		{"files", "files/*path"},
	}
	for _, a := range adds {
		if err := tbl.Add(a.name, a.pattern); err != nil {
			t.Fatalf("add %s: %v", a.name, err)
		}
	}
	return tbl
}

func TestResolveFirstMatchWins(t *testing.T) {
	tbl := NewTable()
	if err := tbl.Add("catchAll", "*rest"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := tbl.Add("home", "home"); err != nil {
		t.Fatalf("add: %v", err)
	}
	name, _, ok := tbl.Resolve("#/home")
	if !ok || name != "catchAll" {
		t.Fatalf("expected first registered pattern to win, got %q", name)
	}
}

func TestResolveParamsAndQuery(t *testing.T) {
	tbl := demoTable(t)
	name, args, ok := tbl.Resolve("#/users/7/edit?tab=perms&id=999")
	if !ok || name != "userEdit" {
		t.Fatalf("expected userEdit, got %q ok=%v", name, ok)
	}
	if args["id"] != "7" {
		t.Fatalf("path param must win over query pair, got id=%q", args["id"])
	}
	if args["tab"] != "perms" {
		t.Fatalf("expected query pair parsed, got %+v", args)
	}
}

func TestResolveUnmatched(t *testing.T) {
	tbl := demoTable(t)
	if name, args, ok := tbl.Resolve("#/nothing/here/really"); ok || name != "" || args != nil {
		t.Fatalf("expected no match, got %q %+v", name, args)
	}
}

func TestFormatByName(t *testing.T) {
	tbl := demoTable(t)
	if got := tbl.Format("users", map[string]string{"id": "7"}); got != "/users/7" {
		t.Fatalf("unexpected format: %q", got)
	}
	if got := tbl.Format("unknown", nil); got != "/unknown" {
		t.Fatalf("unknown route should format as a bare path, got %q", got)
	}
}

func TestSuggestNearestRoute(t *testing.T) {
	tbl := demoTable(t)
	if got := tbl.Suggest("#/hom"); got != "home" {
		t.Fatalf("expected home suggestion, got %q", got)
	}
	if got := tbl.Suggest("#/zzzzzzzzzz"); got != "" {
		t.Fatalf("expected no suggestion for garbage, got %q", got)
	}
	if got := tbl.Suggest("#/"); got != "" {
		t.Fatalf("expected no suggestion for an empty path, got %q", got)
	}
}
