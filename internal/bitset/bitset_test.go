package bitset

import "testing"

// Min over an empty set must be -1; after Set/Clear it must track the
// smallest marked index exactly.
func TestSet_Min(t *testing.T) {
	t.Parallel()

	s := New(130) // spans three words

	if got := s.Min(); got != -1 {
		t.Fatalf("empty Min = %d, want -1", got)
	}

	s.Set(129)
	if got := s.Min(); got != 129 {
		t.Fatalf("Min = %d, want 129", got)
	}

	s.Set(64)
	if got := s.Min(); got != 64 {
		t.Fatalf("Min = %d, want 64", got)
	}

	s.Set(3)
	if got := s.Min(); got != 3 {
		t.Fatalf("Min = %d, want 3", got)
	}

	s.Clear(3)
	if got := s.Min(); got != 64 {
		t.Fatalf("Min after Clear(3) = %d, want 64", got)
	}
}

func TestSet_TestAndReset(t *testing.T) {
	t.Parallel()

	s := New(9)
	for _, i := range []int{0, 5, 8} {
		s.Set(i)
	}
	for i := 0; i < 9; i++ {
		want := i == 0 || i == 5 || i == 8
		if got := s.Test(i); got != want {
			t.Fatalf("Test(%d) = %v, want %v", i, got, want)
		}
	}

	s.Reset()
	if got := s.Min(); got != -1 {
		t.Fatalf("Min after Reset = %d, want -1", got)
	}
}

// Setting the same index twice then clearing once must leave it unmarked.
func TestSet_Idempotent(t *testing.T) {
	t.Parallel()

	s := New(16)
	s.Set(7)
	s.Set(7)
	s.Clear(7)
	if s.Test(7) {
		t.Fatal("index 7 must be unmarked after Clear")
	}
}
