package core

import (
	"context"
	"testing"
)

func TestContextSnapshotsFields(t *testing.T) {
	ctx := context.Background()
	nc := newContext("users", "#/users/7", map[string]string{"id": "7"}, "home", "#/home", ctx)
	if nc.TargetRoute != "users" || nc.TargetAddress != "#/users/7" {
		t.Fatalf("unexpected target: %+v", nc)
	}
	if nc.SourceRoute != "home" || nc.SourceAddress != "#/home" {
		t.Fatalf("unexpected source: %+v", nc)
	}
	if nc.Ctx != ctx {
		t.Fatalf("expected the attempt token to be carried through")
	}
}

func TestContextCopiesArgs(t *testing.T) {
	args := map[string]string{"id": "7"}
	nc := newContext("users", "#/users/7", args, "", "", context.Background())
	args["id"] = "9"
	if nc.TargetArgs["id"] != "7" {
		t.Fatalf("expected args copied at build time, got %q", nc.TargetArgs["id"])
	}
}

func TestContextEmptyArgsStayNil(t *testing.T) {
	nc := newContext("home", "#/home", nil, "", "", context.Background())
	if nc.TargetArgs != nil {
		t.Fatalf("expected nil args for an argless match, got %+v", nc.TargetArgs)
	}
}
