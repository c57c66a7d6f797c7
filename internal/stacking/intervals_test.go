package stacking

import (
	"testing"

	"github.com/aquabase/wellreg-backend/internal/domain"
)

func fp(v float64) *float64 { return &v }

func casing(start, end *float64) domain.Casing {
	return domain.Casing{Start: start, End: end}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b domain.Casing
		want bool
	}{
		{"disjoint", casing(fp(0), fp(10)), casing(fp(20), fp(30)), false},
		{"intersecting", casing(fp(0), fp(10)), casing(fp(5), fp(15)), true},
		{"contained", casing(fp(0), fp(30)), casing(fp(10), fp(20)), true},
		{"identical", casing(fp(0), fp(10)), casing(fp(0), fp(10)), true},
		{"shared start only", casing(fp(0), fp(5)), casing(fp(0), fp(20)), true},
		{"shared end only", casing(fp(0), fp(20)), casing(fp(15), fp(20)), true},
		{"adjacent", casing(fp(0), fp(10)), casing(fp(10), fp(20)), false},
		{"nil start", casing(nil, fp(10)), casing(fp(0), fp(20)), false},
		{"nil end", casing(fp(0), nil), casing(fp(0), fp(20)), false},
		{"both nil", casing(nil, nil), casing(nil, nil), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.want {
				t.Fatalf("Overlaps(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			if got := Overlaps(tc.b, tc.a); got != tc.want {
				t.Fatalf("Overlaps is not symmetric for %v, %v", tc.a, tc.b)
			}
		})
	}
}

func TestMergeIntervalsReplacesOverlapped(t *testing.T) {
	existing := []domain.Casing{casing(fp(0), fp(10))}
	incoming := []domain.Casing{casing(fp(5), fp(15))}

	merged := MergeIntervals(existing, incoming)
	if len(merged) != 1 {
		t.Fatalf("expected 1 casing after merge, got %d", len(merged))
	}
	if *merged[0].Start != 5 || *merged[0].End != 15 {
		t.Fatalf("expected incoming [5,15] to win, got [%v,%v]", *merged[0].Start, *merged[0].End)
	}
}

func TestMergeIntervalsKeepsDisjoint(t *testing.T) {
	existing := []domain.Casing{
		casing(fp(0), fp(10)),
		casing(fp(20), fp(30)),
	}
	incoming := []domain.Casing{casing(fp(12), fp(18))}

	merged := MergeIntervals(existing, incoming)
	if len(merged) != 3 {
		t.Fatalf("expected 3 casings, got %d", len(merged))
	}
	for i, want := range [][2]float64{{0, 10}, {12, 18}, {20, 30}} {
		if *merged[i].Start != want[0] || *merged[i].End != want[1] {
			t.Fatalf("position %d: got [%v,%v], want %v", i, *merged[i].Start, *merged[i].End, want)
		}
	}
}

func TestMergeIntervalsDiscardsWholeRecords(t *testing.T) {
	// One wide incoming record knocks out every existing record it
	// touches, never splitting them.
	existing := []domain.Casing{
		casing(fp(0), fp(10)),
		casing(fp(10), fp(20)),
		casing(fp(50), fp(60)),
	}
	incoming := []domain.Casing{casing(fp(5), fp(25))}

	merged := MergeIntervals(existing, incoming)
	if len(merged) != 2 {
		t.Fatalf("expected 2 casings, got %d", len(merged))
	}
	if *merged[0].Start != 5 || *merged[0].End != 25 {
		t.Fatalf("expected [5,25] first, got [%v,%v]", *merged[0].Start, *merged[0].End)
	}
	if *merged[1].Start != 50 || *merged[1].End != 60 {
		t.Fatalf("expected [50,60] kept, got [%v,%v]", *merged[1].Start, *merged[1].End)
	}
}

func TestMergeIntervalsNilBoundsAlwaysSurvive(t *testing.T) {
	existing := []domain.Casing{
		casing(nil, nil),
		casing(fp(0), fp(10)),
	}
	incoming := []domain.Casing{casing(fp(0), fp(10))}

	merged := MergeIntervals(existing, incoming)
	if len(merged) != 2 {
		t.Fatalf("expected 2 casings, got %d", len(merged))
	}
	if merged[0].Start != nil {
		t.Fatalf("expected unbounded record to sort first, got start %v", merged[0].Start)
	}
}

func TestMergeIntervalsEmptyIncoming(t *testing.T) {
	existing := []domain.Casing{casing(fp(0), fp(10))}
	merged := MergeIntervals(existing, nil)
	if len(merged) != 1 {
		t.Fatalf("expected existing set untouched, got %d records", len(merged))
	}
}
