package prefilter

import "testing"

func TestScanReconstructsOriginalString(t *testing.T) {
	s := "small, 2 unsweetened iced teas please!"
	var buf string
	for _, sp := range Scan(s) {
		if s[sp.Start:sp.End] != sp.Text {
			t.Fatalf("span %+v does not match s[%d:%d]=%q", sp, sp.Start, sp.End, s[sp.Start:sp.End])
		}
		buf += sp.Text
	}
	if buf != s {
		t.Fatalf("concatenated spans = %q, want %q", buf, s)
	}
}

func TestScanClassifiesWordsNumbersAndPunctuation(t *testing.T) {
	spans := Scan("2 iced teas, please")
	var kinds []SpanKind
	for _, sp := range spans {
		kinds = append(kinds, sp.Kind)
	}
	want := []SpanKind{NumberSpan, SpaceSpan, WordSpan, SpaceSpan, WordSpan, PunctuationSpan, SpaceSpan, WordSpan}
	if len(kinds) != len(want) {
		t.Fatalf("got %d spans, want %d: %+v", len(kinds), len(want), spans)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("span %d kind = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestScanJoinsHyphenatedWord(t *testing.T) {
	words := Words("twenty-one burgers")
	if len(words) != 2 || words[0] != "twenty-one" {
		t.Fatalf("Words = %+v, want [\"twenty-one\" \"burgers\"]", words)
	}
}

func TestScanJoinsApostropheWord(t *testing.T) {
	words := Words("don't stop")
	if len(words) != 2 || words[0] != "don't" {
		t.Fatalf("Words = %+v, want [\"don't\" \"stop\"]", words)
	}
}

func TestScanEmpty(t *testing.T) {
	if got := Scan(""); got != nil {
		t.Errorf("Scan(\"\") = %+v, want nil", got)
	}
}

func TestWordsExcludesNonWordSpans(t *testing.T) {
	got := Words("2 iced teas, please!")
	want := []string{"iced", "teas", "please"}
	if len(got) != len(want) {
		t.Fatalf("Words = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Words[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
