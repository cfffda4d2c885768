package model

import (
	"math/rand"
	"testing"
)

func livingSet(b *Board) map[[2]int]bool {
	set := map[[2]int]bool{}
	for r := range b.Rows() {
		for c := range b.Cols() {
			if b.Get(r, c) {
				set[[2]int{r, c}] = true
			}
		}
	}
	return set
}

func TestStepAllDead(t *testing.T) {
	for _, toroidal := range []bool{true, false} {
		b := mustBoard(t, 7, 9)
		if changed := Step(b, toroidal); changed != 0 {
			t.Errorf("toroidal=%v: changed = %d, want 0", toroidal, changed)
		}
		if n := b.CountLiving(); n != 0 {
			t.Errorf("toroidal=%v: %d cells came to life", toroidal, n)
		}
	}
}

func TestStepLoneCellDies(t *testing.T) {
	b := mustBoard(t, 3, 3)
	b.Toggle(1, 1)

	if changed := Step(b, false); changed != 1 {
		t.Fatalf("changed = %d, want 1", changed)
	}
	if n := b.CountLiving(); n != 0 {
		t.Fatalf("%d cells alive, want 0", n)
	}
}

func TestStepBlinker(t *testing.T) {
	b := mustBoard(t, 5, 5, [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2})

	changed := Step(b, false)
	want := map[[2]int]bool{{0, 1}: true, {1, 1}: true, {2, 1}: true}
	got := livingSet(b)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for rc := range want {
		if !got[rc] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	// (1,0),(1,2) die and (0,1),(2,1) are born
	if changed != 4 {
		t.Fatalf("changed = %d, want 4", changed)
	}
}

func TestStepRules(t *testing.T) {
	// neighbours placed around the centre of a 5x5 walled board
	ring := [][2]int{{1, 1}, {1, 2}, {1, 3}, {2, 1}, {2, 3}, {3, 1}, {3, 2}, {3, 3}}

	for n := 0; n <= 8; n++ {
		for _, alive := range []bool{true, false} {
			b := mustBoard(t, 5, 5, ring[:n]...)
			b.Set(2, 2, alive)

			Step(b, false)

			want := n == 3 || (alive && n == 2)
			if got := b.Get(2, 2); got != want {
				t.Errorf("alive=%v with %d neighbors: got %v, want %v", alive, n, got, want)
			}
		}
	}
}

func TestStepTopologyDiverges(t *testing.T) {
	// an L in the corners is only a neighbourhood when the board wraps
	corners := [][2]int{{0, 0}, {0, 5}, {5, 0}}

	walled := mustBoard(t, 6, 6, corners...)
	Step(walled, false)
	if n := walled.CountLiving(); n != 0 {
		t.Fatalf("walled: %d cells alive, want 0", n)
	}

	toroidal := mustBoard(t, 6, 6, corners...)
	Step(toroidal, true)
	if !toroidal.Get(5, 5) {
		t.Fatal("toroidal: opposite corner was not born")
	}
	if n := toroidal.CountLiving(); n != 4 {
		t.Fatalf("toroidal: %d cells alive, want 4", n)
	}
}

func TestStepSteadyStateIdempotent(t *testing.T) {
	b := mustBoard(t, 6, 6)
	b.AddBlock(2, 2)

	for range 3 {
		if changed := Step(b, true); changed != 0 {
			t.Fatalf("block changed %d cells", changed)
		}
	}
	if n := b.CountLiving(); n != 4 {
		t.Fatalf("block has %d cells, want 4", n)
	}
}

func TestEngineParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, toroidal := range []bool{true, false} {
		seq := mustBoard(t, 37, 53)
		seq.Randomize(0.35, rng)

		par := mustBoard(t, 37, 53)
		copy(par.cells, seq.cells)

		engine := NewEngine(4, NewPaddedPool())
		for gen := range 20 {
			want := Step(seq, toroidal)
			got := engine.Step(par, toroidal)
			if got != want {
				t.Fatalf("toroidal=%v gen %d: parallel changed %d, sequential %d", toroidal, gen, got, want)
			}
			for i := range seq.cells {
				if seq.cells[i] != par.cells[i] {
					t.Fatalf("toroidal=%v gen %d: boards diverge at cell %d", toroidal, gen, i)
				}
			}
		}
	}
}

func TestEngineMoreWorkersThanRows(t *testing.T) {
	b := mustBoard(t, 2, 8, [2]int{0, 3}, [2]int{0, 4}, [2]int{1, 3}, [2]int{1, 4})
	if changed := NewEngine(16, nil).Step(b, false); changed != 0 {
		t.Fatalf("block changed %d cells", changed)
	}
}
