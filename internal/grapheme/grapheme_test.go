package grapheme

import "testing"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + "世" + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if Split("") != nil || Count("") != 0 {
		t.Fatalf("empty text should have no clusters")
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{text: "", want: 0},
		{text: "gmail.com", want: 9},
		{text: "é", want: 1},
		{text: "世界", want: 4},
	}
	for _, tc := range cases {
		if got := Width(tc.text); got != tc.want {
			t.Fatalf("Width(%q)=%d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		text  string
		width int
		want  string
	}{
		{text: "a@gmail.com", width: 0, want: ""},
		{text: "a@gmail.com", width: 5, want: "a@gma"},
		{text: "a@gmail.com", width: 40, want: "a@gmail.com"},
		{text: "a世b", width: 2, want: "a "},
		{text: "aéb", width: 2, want: "aé"},
	}
	for _, tc := range cases {
		if got := Truncate(tc.text, tc.width); got != tc.want {
			t.Fatalf("Truncate(%q, %d)=%q, want %q", tc.text, tc.width, got, tc.want)
		}
	}
}
