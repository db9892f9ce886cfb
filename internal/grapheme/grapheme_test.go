package grapheme

import "testing"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	family := "\U0001F468\u200d\U0001F469\u200d\U0001F467"
	text := "a" + "e\u0301" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "e\u0301" {
		t.Fatalf("split[1]=%q, want %q", got[1], "e\u0301")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
}

func TestSplit_CRLFIsOneCluster(t *testing.T) {
	got := Split("a\r\nb")
	if len(got) != 3 || !IsLineBreak(got[1]) {
		t.Fatalf("split=%q, want [a \\r\\n b]", got)
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		cluster string
		want    int
	}{
		{cluster: "a", want: 1},
		{cluster: "世", want: 2},
		{cluster: "e\u0301", want: 1},
		{cluster: "\t", want: 0},
		{cluster: "\n", want: 0},
		{cluster: "", want: 0},
	}
	for _, tc := range cases {
		if got := Width(tc.cluster); got != tc.want {
			t.Fatalf("Width(%q): got %d, want %d", tc.cluster, got, tc.want)
		}
	}
}

func TestIndex_GraphemeOffsets(t *testing.T) {
	text := "e\u0301 see docs, see more"
	if got := Index(text, "see", 0); got != 2 {
		t.Fatalf("first see: got %d, want %d", got, 2)
	}
	if got := Index(text, "see", 1); got != 12 {
		t.Fatalf("second see: got %d, want %d", got, 12)
	}
	if got := Index(text, "see", 2); got != -1 {
		t.Fatalf("third see: got %d, want -1", got)
	}
	// "e" alone is inside the first cluster and must not match there.
	if got := Index(text, "e", 0); got != 3 {
		t.Fatalf("bare e: got %d, want %d", got, 3)
	}
	if got := Index(text, "", 0); got != -1 {
		t.Fatalf("empty needle: got %d, want -1", got)
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") {
		t.Fatalf("letter should not be space")
	}
	if !IsPunct("!") {
		t.Fatalf("exclamation should be punct")
	}
	if IsPunct("a") {
		t.Fatalf("letter should not be punct")
	}
}
