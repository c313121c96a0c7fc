package world_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/ravndal/modalk/world"
)

func TestNewSuccessorNumbering(t *testing.T) {
	s := world.NewStore()
	w1 := s.NewSuccessor(world.Root)
	w2 := s.NewSuccessor(world.Root)
	if w1 != "1.1" || w2 != "1.2" {
		t.Fatalf("got successors %s, %s; want 1.1, 1.2", w1, w2)
	}
	if !s.HasSuccessor(world.Root, w1) || !s.HasSuccessor(world.Root, w2) {
		t.Fatalf("store should record both edges")
	}
	succs := s.Successors(world.Root)
	if len(succs) != 2 || succs[0] != w1 || succs[1] != w2 {
		t.Fatalf("Successors() = %v, want [%s %s]", succs, w1, w2)
	}
}

func TestNestedSuccessor(t *testing.T) {
	s := world.NewStore()
	w1 := s.NewSuccessor(world.Root)
	w11 := s.NewSuccessor(w1)
	if w11 != "1.1.1" {
		t.Fatalf("got %s, want 1.1.1", w11)
	}
}

func TestForkIsIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modalk.world")
	defer teardown()
	s := world.NewStore()
	s.NewSuccessor(world.Root)
	clone := s.Fork()
	cloneOnly := clone.NewSuccessor(world.Root)
	if s.HasSuccessor(world.Root, cloneOnly) {
		t.Fatalf("fork should be independent: original observed sibling's new world")
	}
	if !clone.HasSuccessor(world.Root, cloneOnly) {
		t.Fatalf("clone should observe its own new world")
	}
}
