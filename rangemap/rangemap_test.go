package rangemap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func segmentsOf(m *Map[int, string]) []string {
	var out []string
	for r, v := range m.All() {
		out = append(out, r.String()+"="+v)
	}
	return out
}

func TestMap_DisjointRangesResolveToOwnValue(t *testing.T) {
	m := New[int, string]()
	require.True(t, m.Set(NewRange(0, 4), "a"))
	require.True(t, m.Set(NewRange(10, 14), "b"))

	for p := 0; p < 4; p++ {
		v, ok := m.Value(p)
		require.True(t, ok, "pos %d", p)
		require.Equal(t, "a", v, "pos %d", p)
	}
	for p := 10; p < 14; p++ {
		v, ok := m.Value(p)
		require.True(t, ok, "pos %d", p)
		require.Equal(t, "b", v, "pos %d", p)
	}
	for _, p := range []int{-1, 4, 5, 9, 14, 100} {
		_, ok := m.Value(p)
		require.False(t, ok, "pos %d should be unowned", p)
	}
}

func TestMap_ClearDropsEverything(t *testing.T) {
	m := New[int, string]()
	m.Set(NewRange(0, 3), "a")
	m.Set(NewRange(5, 8), "b")

	_, ok := m.Value(1)
	require.True(t, ok)

	m.Clear()
	require.Zero(t, m.Len())
	for p := -1; p < 10; p++ {
		_, ok := m.Value(p)
		require.False(t, ok, "pos %d after clear", p)
	}

	m.Set(NewRange(2, 3), "c")
	v, ok := m.Value(2)
	require.True(t, ok)
	require.Equal(t, "c", v)
}

func TestMap_OverlapLastInsertedWins(t *testing.T) {
	cases := []struct {
		name string
		sets [][3]any
		want []string
	}{
		{
			name: "inner shadow splits outer",
			sets: [][3]any{{0, 10, "a"}, {3, 6, "b"}},
			want: []string{"[0, 3)=a", "[3, 6)=b", "[6, 10)=a"},
		},
		{
			name: "covering shadow replaces",
			sets: [][3]any{{3, 6, "a"}, {0, 10, "b"}},
			want: []string{"[0, 10)=b"},
		},
		{
			name: "left overlap",
			sets: [][3]any{{5, 10, "a"}, {2, 7, "b"}},
			want: []string{"[2, 7)=b", "[7, 10)=a"},
		},
		{
			name: "right overlap",
			sets: [][3]any{{0, 5, "a"}, {3, 8, "b"}},
			want: []string{"[0, 3)=a", "[3, 8)=b"},
		},
		{
			name: "bridges several",
			sets: [][3]any{{0, 2, "a"}, {3, 5, "b"}, {6, 9, "c"}, {1, 7, "d"}},
			want: []string{"[0, 1)=a", "[1, 7)=d", "[7, 9)=c"},
		},
		{
			name: "same range re-registered",
			sets: [][3]any{{0, 4, "a"}, {0, 4, "b"}},
			want: []string{"[0, 4)=b"},
		},
		{
			name: "adjacent ranges stay separate",
			sets: [][3]any{{0, 4, "a"}, {4, 8, "b"}},
			want: []string{"[0, 4)=a", "[4, 8)=b"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := New[int, string]()
			for _, s := range tc.sets {
				require.True(t, m.Set(NewRange(s[0].(int), s[1].(int)), s[2].(string)))
			}
			require.Equal(t, tc.want, segmentsOf(m))
		})
	}
}

func TestMap_OverlapPositionsResolveToNewest(t *testing.T) {
	m := New[int, string]()
	m.Set(NewRange(0, 10), "old")
	m.Set(NewRange(4, 12), "new")

	for p := 0; p < 4; p++ {
		v, _ := m.Value(p)
		require.Equal(t, "old", v, "pos %d", p)
	}
	for p := 4; p < 12; p++ {
		v, _ := m.Value(p)
		require.Equal(t, "new", v, "pos %d", p)
	}
}

func TestMap_InvalidRangesIgnored(t *testing.T) {
	m := New[int, string]()
	m.Set(NewRange(0, 10), "a")

	require.False(t, m.Set(NewRange(5, 5), "empty"))
	require.False(t, m.Set(NewRange(8, 2), "inverted"))
	require.Equal(t, []string{"[0, 10)=a"}, segmentsOf(m))
}

func TestMap_LookupReturnsOwnedSegment(t *testing.T) {
	m := New[int, string]()
	m.Set(NewRange(0, 10), "a")
	m.Set(NewRange(3, 5), "b")

	r, v, ok := m.Lookup(7)
	require.True(t, ok)
	require.Equal(t, "a", v)
	require.Equal(t, NewRange(5, 10), r)

	_, _, ok = m.Lookup(10)
	require.False(t, ok)
}

func TestMap_OverlappingClipsToQuery(t *testing.T) {
	m := New[int, string]()
	m.Set(NewRange(0, 4), "a")
	m.Set(NewRange(6, 9), "b")
	m.Set(NewRange(12, 20), "c")

	var got []string
	for r, v := range m.Overlapping(NewRange(2, 14)) {
		got = append(got, r.String()+"="+v)
	}
	require.Equal(t, []string{"[2, 4)=a", "[6, 9)=b", "[12, 14)=c"}, got)
}

func TestMap_ZeroValueUsable(t *testing.T) {
	var m Map[float64, int]
	_, ok := m.Value(1.5)
	require.False(t, ok)

	m.Set(NewRange(1.0, 2.0), 7)
	v, ok := m.Value(1.5)
	require.True(t, ok)
	require.Equal(t, 7, v)
}

func TestRange_Predicates(t *testing.T) {
	r := NewRange(2, 5)
	if !r.Valid() || r.IsEmpty() {
		t.Fatalf("range %v should be valid", r)
	}
	if r.Contains(5) || !r.Contains(2) {
		t.Fatalf("half-open containment broken for %v", r)
	}
	if NewRange(3, 3).Valid() {
		t.Fatalf("empty range reported valid")
	}
	if r.Overlaps(NewRange(5, 7)) {
		t.Fatalf("adjacent ranges must not overlap")
	}
	if got, ok := r.Intersect(NewRange(4, 9)); !ok || got != NewRange(4, 5) {
		t.Fatalf("intersect: got %v,%v want %v,true", got, ok, NewRange(4, 5))
	}
}
