package numparse

import (
	"reflect"
	"testing"

	"github.com/az-ai-labs/speechlex/termmodel"
)

func hashesOf(m *termmodel.Model, words ...string) []termmodel.Hash {
	out := make([]termmodel.Hash, len(words))
	for i, w := range words {
		out[i] = m.StemAndHash(w)
	}
	return out
}

func TestParseSingleWord(t *testing.T) {
	m := termmodel.New()
	p := New(m)
	got := p.Parse(hashesOf(m, "three", "burgers"))
	want := []Match{{Value: 3, Length: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse = %+v, want %+v", got, want)
	}
}

func TestParseCompoundWithAllPrefixes(t *testing.T) {
	m := termmodel.New()
	p := New(m)
	got := p.Parse(hashesOf(m, "two", "hundred", "fifty"))
	want := []Match{
		{Value: 2, Length: 1},
		{Value: 200, Length: 2},
		{Value: 250, Length: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse = %+v, want %+v", got, want)
	}
}

func TestParseTwentyOne(t *testing.T) {
	m := termmodel.New()
	p := New(m)
	got := p.Parse(hashesOf(m, "twenty", "one"))
	want := []Match{
		{Value: 20, Length: 1},
		{Value: 21, Length: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse = %+v, want %+v", got, want)
	}
}

func TestParseMagnitudeWithoutPrecedingGroup(t *testing.T) {
	m := termmodel.New()
	p := New(m)
	got := p.Parse(hashesOf(m, "thousand", "dollars"))
	want := []Match{{Value: 1000, Length: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse = %+v, want %+v", got, want)
	}
}

func TestParseNegative(t *testing.T) {
	m := termmodel.New()
	p := New(m)
	got := p.Parse(hashesOf(m, "negative", "five"))
	want := []Match{{Value: -5, Length: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse = %+v, want %+v", got, want)
	}
}

func TestParseZero(t *testing.T) {
	m := termmodel.New()
	p := New(m)
	got := p.Parse(hashesOf(m, "zero", "items"))
	want := []Match{{Value: 0, Length: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse = %+v, want %+v", got, want)
	}
}

func TestParseNoMatch(t *testing.T) {
	m := termmodel.New()
	p := New(m)
	if got := p.Parse(hashesOf(m, "burgers", "three")); got != nil {
		t.Errorf("Parse = %+v, want nil", got)
	}
}

func TestParseEmpty(t *testing.T) {
	p := New(termmodel.New())
	if got := p.Parse(nil); got != nil {
		t.Errorf("Parse(nil) = %+v, want nil", got)
	}
}

func TestOwnHashedTermsCoversParsedVocabulary(t *testing.T) {
	m := termmodel.New()
	p := New(m)
	own := p.OwnHashedTerms()
	h := m.StemAndHash("seven")
	if _, ok := own[h]; !ok {
		t.Error("OwnHashedTerms does not contain the fingerprint of \"seven\"")
	}
}

func TestAddTermsToSet(t *testing.T) {
	m := termmodel.New()
	p := New(m)
	set := make(map[string]struct{})
	p.AddTermsToSet(set)
	for _, want := range []string{"one", "hundred", "thousand", "negative"} {
		if _, ok := set[want]; !ok {
			t.Errorf("AddTermsToSet missing %q", want)
		}
	}
}
