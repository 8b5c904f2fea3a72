package robco

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

// The fixture closenesses to "laser" are: later 4, lever 3, waste 2,
// jazzy 1. To "jazzy": laser 1, later 1, waste 1, lever 0.

func TestFilterSingleWitness(t *testing.T) {
	passwords := []Password{
		Witness("laser", 2),
		Candidate("waste"),
		Candidate("later"),
		Candidate("lever"),
		Candidate("jazzy"),
	}

	got := filterSorted(t, passwords)
	if want := []string{"waste"}; !slices.Equal(got, want) {
		t.Errorf("Filter = %v, want %v", got, want)
	}
}

func TestFilterMultiWitness(t *testing.T) {
	passwords := []Password{
		Witness("laser", 2),
		Witness("jazzy", 1),
		Candidate("waste"),
		Candidate("later"),
		Candidate("lever"),
	}

	got := filterSorted(t, passwords)
	if want := []string{"waste"}; !slices.Equal(got, want) {
		t.Errorf("Filter = %v, want %v", got, want)
	}
}

func TestFilterDisjointWitnesses(t *testing.T) {
	// S("laser", 2) = {waste}, S("later", 3) = {lever}.
	passwords := []Password{
		Witness("laser", 2),
		Witness("later", 3),
		Candidate("waste"),
		Candidate("lever"),
		Candidate("jazzy"),
	}

	got := filterSorted(t, passwords)
	if len(got) != 0 {
		t.Errorf("Filter = %v, want no survivors", got)
	}
}

func TestFilterUnsatisfiableWitness(t *testing.T) {
	// No word overlaps "laser" in 9 positions, so the witness's
	// consistency set is empty and nothing can survive.
	passwords := []Password{
		Witness("laser", 9),
		Candidate("waste"),
		Candidate("later"),
	}

	got := filterSorted(t, passwords)
	if len(got) != 0 {
		t.Errorf("Filter = %v, want no survivors", got)
	}
}

func TestFilterNoWitness(t *testing.T) {
	passwords := []Password{
		Candidate("waste"),
		Candidate("later"),
	}

	_, err := Filter(passwords)
	if !errors.Is(err, ErrNoWitness) {
		t.Fatalf("Filter error = %v, want %v", err, ErrNoWitness)
	}
}

func TestFilterDeduplicates(t *testing.T) {
	passwords := []Password{
		Witness("laser", 2),
		Candidate("waste"),
		Candidate("waste"),
	}

	got := filterSorted(t, passwords)
	if want := []string{"waste"}; !slices.Equal(got, want) {
		t.Errorf("Filter = %v, want %v", got, want)
	}
}

func TestFilterIdempotent(t *testing.T) {
	passwords := []Password{
		Witness("laser", 2),
		Witness("jazzy", 1),
		Candidate("waste"),
		Candidate("later"),
		Candidate("lever"),
	}

	first := filterSorted(t, passwords)
	second := filterSorted(t, passwords)
	if !slices.Equal(first, second) {
		t.Errorf("Filter not idempotent: %v then %v", first, second)
	}
}

func TestNarrow(t *testing.T) {
	pool := []string{"later", "lever", "waste", "jazzy"}

	tests := []struct {
		guess    string
		distance int
		want     []string
	}{
		{"laser", 2, []string{"waste"}},
		{"laser", 3, []string{"lever"}},
		{"laser", 0, nil},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %d", tt.guess, tt.distance), func(t *testing.T) {
			got := Narrow(pool, tt.guess, tt.distance)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Narrow = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUniformLength(t *testing.T) {
	ok := []Password{
		Witness("laser", 2),
		Candidate("waste"),
	}
	if err := UniformLength(ok); err != nil {
		t.Errorf("UniformLength = %v, want nil", err)
	}

	mixed := []Password{
		Candidate("laser"),
		Candidate("go"),
	}
	if err := UniformLength(mixed); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("UniformLength = %v, want %v", err, ErrLengthMismatch)
	}

	if err := UniformLength(nil); err != nil {
		t.Errorf("UniformLength(nil) = %v, want nil", err)
	}
}

// filterSorted runs Filter and sorts the survivors: output order is
// unspecified, so tests compare sets.
func filterSorted(t *testing.T, passwords []Password) []string {
	t.Helper()

	got, err := Filter(passwords)
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}

	slices.Sort(got)
	return got
}

func BenchmarkFilter(b *testing.B) {
	passwords := make([]Password, 0, 1024)
	for c1 := byte('a'); c1 <= 'j'; c1++ {
		for c2 := byte('a'); c2 <= 'j'; c2++ {
			for c3 := byte('a'); c3 <= 'j'; c3++ {
				passwords = append(passwords, Candidate(string([]byte{c1, c2, c3})))
			}
		}
	}
	passwords = append(passwords, Witness("abc", 1), Witness("dbe", 1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Filter(passwords); err != nil {
			b.Fatalf("filter failed: %v", err)
		}
	}
}
