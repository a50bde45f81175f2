package prefilter

import "testing"

func TestNFCComposesDecomposedDiacritic(t *testing.T) {
	decomposed := "ön" // o + combining diaeresis + n
	want := "ön"        // precomposed ö + n
	if got := NFC(decomposed); got != want {
		t.Errorf("NFC(%q) = %q, want %q", decomposed, got, want)
	}
}

func TestApplyConfusablesKnownHomophone(t *testing.T) {
	cases := map[string]string{
		"for": "four",
		"For": "four",
		"to":  "two",
		"too": "two",
		"ate": "eight",
		"won": "one",
	}
	for in, want := range cases {
		if got := ApplyConfusables(in); got != want {
			t.Errorf("ApplyConfusables(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestApplyConfusablesUnknownWordUnchanged(t *testing.T) {
	if got := ApplyConfusables("convertible"); got != "convertible" {
		t.Errorf("ApplyConfusables(\"convertible\") = %q, want unchanged", got)
	}
}

func TestIsFillerCaseInsensitive(t *testing.T) {
	for _, w := range []string{"a", "An", "THE", "um", "Please"} {
		if !IsFiller(w) {
			t.Errorf("IsFiller(%q) = false, want true", w)
		}
	}
	if IsFiller("burger") {
		t.Error("IsFiller(\"burger\") = true, want false")
	}
}

func TestDropFillers(t *testing.T) {
	got := DropFillers([]string{"um", "i", "want", "a", "burger", "please"})
	want := []string{"i", "want", "burger"}
	if len(got) != len(want) {
		t.Fatalf("DropFillers = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DropFillers[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNormalizeFullPipeline(t *testing.T) {
	terms, spans := Normalize("um, for burgers please")
	want := []string{"four", "burgers"}
	if len(terms) != len(want) {
		t.Fatalf("terms = %+v, want %+v", terms, want)
	}
	for i := range want {
		if terms[i] != want[i] {
			t.Errorf("terms[%d] = %q, want %q", i, terms[i], want[i])
		}
	}
	if len(spans) == 0 {
		t.Error("Normalize returned no spans")
	}
}

func TestNormalizeKeepsNumbersAsIs(t *testing.T) {
	terms, _ := Normalize("three 4 burgers")
	want := []string{"three", "4", "burgers"}
	if len(terms) != len(want) {
		t.Fatalf("terms = %+v, want %+v", terms, want)
	}
	for i := range want {
		if terms[i] != want[i] {
			t.Errorf("terms[%d] = %q, want %q", i, terms[i], want[i])
		}
	}
}
