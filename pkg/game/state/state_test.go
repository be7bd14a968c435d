package state

import (
	"fmt"
	"math/rand"
	"testing"

	"labyrinth/pkg/game/generator"
)

// recordingGenerator remembers the seeds it was asked for
type recordingGenerator struct {
	seeds []int64
}

func (r *recordingGenerator) Generate(seed int64) generator.Result {
	r.seeds = append(r.seeds, seed)
	return generator.Result{Seed: seed, RoomLimit: 1, RoomCount: 1}
}

func (r *recordingGenerator) Name() string { return "recording" }

func newSession(t *testing.T, seed int64) *Session {
	t.Helper()
	g, err := generator.NewGraph(20)
	if err != nil {
		t.Fatal(err)
	}
	s := NewSession(g, seed, rand.New(rand.NewSource(1)))
	s.Generate()
	return s
}

func TestSession_NextAndPrev(t *testing.T) {
	s := newSession(t, 10)
	if s.Result.Seed != 10 {
		t.Fatalf("initial seed = %d, want 10", s.Result.Seed)
	}

	s.NextSeed()
	s.NextSeed()
	if s.Seed != 12 || s.Result.RoomCount != 20 {
		t.Fatalf("after two NextSeed: seed %d size %d, want 12 20", s.Seed, s.Result.RoomCount)
	}

	for _, want := range []int64{11, 10} {
		res, ok := s.PrevSeed()
		if !ok || res.Seed != want || s.Seed != want {
			t.Fatalf("PrevSeed() = %d, %v, want %d, true", res.Seed, ok, want)
		}
	}
	if _, ok := s.PrevSeed(); ok {
		t.Fatal("PrevSeed with empty history returned true")
	}
	if s.Seed != 10 {
		t.Fatalf("seed moved to %d without history", s.Seed)
	}
}

func TestSession_RandomSeedIsRepeatableFromSource(t *testing.T) {
	a, b := newSession(t, 0), newSession(t, 0)
	for i := 0; i < 3; i++ {
		if ra, rb := a.RandomSeed(), b.RandomSeed(); ra.Seed != rb.Seed {
			t.Fatalf("random seed %d differs: %d vs %d", i, ra.Seed, rb.Seed)
		}
	}
	if a.HistoryLen() != 3 {
		t.Fatalf("HistoryLen() = %d, want 3", a.HistoryLen())
	}
	if _, ok := a.PrevSeed(); !ok || a.HistoryLen() != 2 {
		t.Fatalf("PrevSeed() = %v with %d seeds left, want true with 2", ok, a.HistoryLen())
	}
}

func TestSession_AnyGenerator(t *testing.T) {
	gen := &recordingGenerator{}
	s := NewSession(gen, 4, rand.New(rand.NewSource(1)))
	s.Generate()
	s.NextSeed()
	s.PrevSeed()

	want := []int64{4, 5, 4}
	if fmt.Sprint(gen.seeds) != fmt.Sprint(want) {
		t.Fatalf("generated seeds %v, want %v", gen.seeds, want)
	}
}

func TestSession_Messages(t *testing.T) {
	s := newSession(t, 1)
	for i := 0; i < 8; i++ {
		s.AddMessage(fmt.Sprintf("m%d", i))
	}
	if len(s.Messages) != maxMessages || s.Messages[0] != "m3" || s.Messages[4] != "m7" {
		t.Fatalf("Messages = %v, want m3..m7", s.Messages)
	}
	s.ClearMessages()
	if len(s.Messages) != 0 {
		t.Fatalf("Messages after clear = %v", s.Messages)
	}
}
