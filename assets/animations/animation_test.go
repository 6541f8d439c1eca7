package animations

import "testing"

func TestAnimation_CyclesAndLoops(t *testing.T) {
	a := NewAnimation(3, 2)
	want := []int{0, 1, 1, 2, 2, 0}
	for i, w := range want {
		a.Update()
		if a.Frame() != w {
			t.Fatalf("after %d updates frame=%d, want %d", i+1, a.Frame(), w)
		}
	}
	if !a.Looped {
		t.Fatal("expected Looped after wrapping")
	}

	a.Restart()
	if a.Frame() != 0 || a.Looped {
		t.Fatalf("restart left frame=%d looped=%v", a.Frame(), a.Looped)
	}
}

func TestAnimation_SingleFrameNeverMoves(t *testing.T) {
	a := NewAnimation(1, 1)
	for i := 0; i < 10; i++ {
		a.Update()
	}
	if a.Frame() != 0 {
		t.Fatalf("single-frame animation at frame %d", a.Frame())
	}
}

func TestNewAnimation_ClampsTicks(t *testing.T) {
	a := NewAnimation(2, 0)
	a.Update()
	if a.Frame() != 1 {
		t.Fatalf("ticksPerFrame 0 should behave as 1, frame=%d", a.Frame())
	}
}
