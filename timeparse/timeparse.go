// Package timeparse recognizes relative-day and clock-time phrases in a
// stream of term-model fingerprints, for injection into a tokenizer's
// lattice alongside alias and cardinal-number matches.
//
// It mirrors numparse.Parser's contract field for field, reusing an
// existing *numparse.Parser to recognize the hour/minute number words a
// clock-time phrase is built from, rather than duplicating that table.
package timeparse

import (
	"github.com/az-ai-labs/speechlex/numparse"
	"github.com/az-ai-labs/speechlex/termmodel"
)

// Kind classifies the shape of a recognized time-of-day phrase.
type Kind int

const (
	RelativeDayKind Kind = iota // "tomorrow", "tonight", "today"
	NamedMomentKind             // "noon", "midnight"
	WeekdayKind                 // "monday" .. "sunday"
	ClockTimeKind                // an hour, optionally with minute and/or am/pm
)

// TimeOfDay is the value a recognized time phrase carries.
type TimeOfDay struct {
	Kind     Kind
	Label    string // canonical word, for RelativeDayKind/NamedMomentKind/WeekdayKind
	Hour     int    // 0-23, for ClockTimeKind and NamedMomentKind
	Minute   int    // 0-59, for ClockTimeKind and NamedMomentKind
	Meridiem string // "am", "pm", or "" when not stated
}

// Match is a recognized time-of-day prefix: the value it spells out, and
// how many fingerprints it consumed.
type Match struct {
	Value  TimeOfDay
	Length int
}

var relativeWords = map[string]string{
	"tomorrow": "tomorrow",
	"tonight":  "tonight",
	"today":    "today",
}

var weekdays = map[string]struct{}{
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
	"friday": {}, "saturday": {}, "sunday": {},
}

var namedMoments = map[string]TimeOfDay{
	"noon":     {Kind: NamedMomentKind, Label: "noon", Hour: 12, Minute: 0},
	"midnight": {Kind: NamedMomentKind, Label: "midnight", Hour: 0, Minute: 0},
}

const (
	quarterWord = "quarter"
	halfWord    = "half"
	pastWord    = "past"
	oclockWord  = "oclock"
)

var meridiemWords = map[string]string{"am": "am", "pm": "pm"}

// Parser recognizes relative-day and clock-time phrases over a
// fingerprint stream. A Parser is read-only after construction and safe
// for concurrent use.
type Parser struct {
	relative map[termmodel.Hash]string
	weekday  map[termmodel.Hash]string
	moment   map[termmodel.Hash]TimeOfDay
	meridiem map[termmodel.Hash]string
	quarter  termmodel.Hash
	half     termmodel.Hash
	past     termmodel.Hash
	oclock   termmodel.Hash

	nums  *numparse.Parser
	terms map[string]struct{}
}

// New builds a Parser whose recognized vocabulary is hashed through m,
// layering clock-time grammar ("three thirty", "quarter past three", "ten
// pm") on top of the hour/minute words nums already recognizes.
func New(m *termmodel.Model, nums *numparse.Parser) *Parser {
	p := &Parser{
		relative: make(map[termmodel.Hash]string, len(relativeWords)),
		weekday:  make(map[termmodel.Hash]string, len(weekdays)),
		moment:   make(map[termmodel.Hash]TimeOfDay, len(namedMoments)),
		meridiem: make(map[termmodel.Hash]string, len(meridiemWords)),
		nums:     nums,
		terms:    make(map[string]struct{}),
	}
	for word := range relativeWords {
		p.relative[m.StemAndHash(word)] = word
		p.terms[word] = struct{}{}
	}
	for word := range weekdays {
		p.weekday[m.StemAndHash(word)] = word
		p.terms[word] = struct{}{}
	}
	for word, tod := range namedMoments {
		p.moment[m.StemAndHash(word)] = tod
		p.terms[word] = struct{}{}
	}
	for word, tag := range meridiemWords {
		p.meridiem[m.StemAndHash(word)] = tag
		p.terms[word] = struct{}{}
	}
	p.quarter = m.StemAndHash(quarterWord)
	p.half = m.StemAndHash(halfWord)
	p.past = m.StemAndHash(pastWord)
	p.oclock = m.StemAndHash(oclockWord)
	for _, w := range []string{quarterWord, halfWord, pastWord, oclockWord} {
		p.terms[w] = struct{}{}
	}
	return p
}

// Parse consumes a prefix of tail matching a time-of-day phrase and
// returns the phrases it recognizes there, shortest first. A clock time
// followed by "am" or "pm" is reported only in its longer form with the
// meridiem (for "three thirty pm", only the length-3 match). A tail with
// no recognizable leading phrase returns nil.
func (p *Parser) Parse(tail []termmodel.Hash) []Match {
	if len(tail) == 0 {
		return nil
	}

	if word, ok := p.relative[tail[0]]; ok {
		return []Match{{Value: TimeOfDay{Kind: RelativeDayKind, Label: word}, Length: 1}}
	}
	if word, ok := p.weekday[tail[0]]; ok {
		return []Match{{Value: TimeOfDay{Kind: WeekdayKind, Label: word}, Length: 1}}
	}
	if tod, ok := p.moment[tail[0]]; ok {
		return []Match{{Value: tod, Length: 1}}
	}

	return p.parseClockTime(tail)
}

// parseClockTime recognizes "<hour> oclock", "<hour> <am|pm>",
// "<hour> <minute>" optionally followed by "<am|pm>", and "quarter|half
// past <hour>". A bare "<hour>" with none of these after it is not
// recognized.
func (p *Parser) parseClockTime(tail []termmodel.Hash) []Match {
	if tail[0] == p.quarter || tail[0] == p.half {
		minute := 15
		if tail[0] == p.half {
			minute = 30
		}
		if len(tail) < 2 || tail[1] != p.past {
			return nil
		}
		rest := tail[2:]
		hourMatches := p.nums.Parse(rest)
		if len(hourMatches) == 0 {
			return nil
		}
		hm := hourMatches[len(hourMatches)-1]
		if hm.Value < 1 || hm.Value > 12 {
			return nil
		}
		length := 2 + hm.Length
		return []Match{{
			Value:  TimeOfDay{Kind: ClockTimeKind, Hour: int(hm.Value), Minute: minute},
			Length: length,
		}}
	}

	hourMatches := p.nums.Parse(tail)
	if len(hourMatches) == 0 {
		return nil
	}
	var matches []Match
	for _, hm := range hourMatches {
		if hm.Value < 0 || hm.Value > 23 {
			continue
		}
		hour := int(hm.Value)
		rest := tail[hm.Length:]

		if len(rest) > 0 && rest[0] == p.oclock {
			matches = append(matches, Match{
				Value:  TimeOfDay{Kind: ClockTimeKind, Hour: hour},
				Length: hm.Length + 1,
			})
			continue
		}
		if len(rest) > 0 {
			if tag, ok := p.meridiem[rest[0]]; ok {
				matches = append(matches, Match{
					Value:  TimeOfDay{Kind: ClockTimeKind, Hour: hour, Meridiem: tag},
					Length: hm.Length + 1,
				})
				continue
			}
		}

		minuteMatches := p.nums.Parse(rest)
		for _, mm := range minuteMatches {
			if mm.Value < 0 || mm.Value > 59 {
				continue
			}
			length := hm.Length + mm.Length
			tod := TimeOfDay{Kind: ClockTimeKind, Hour: hour, Minute: int(mm.Value)}
			after := rest[mm.Length:]
			if len(after) > 0 {
				if tag, ok := p.meridiem[after[0]]; ok {
					tod.Meridiem = tag
					matches = append(matches, Match{Value: tod, Length: length + 1})
					continue
				}
			}
			matches = append(matches, Match{Value: tod, Length: length})
		}
	}
	return matches
}

// OwnHashedTerms returns the fingerprints of every surface term this
// parser might consume, including the hour/minute words it borrows from
// nums.
func (p *Parser) OwnHashedTerms() map[termmodel.Hash]struct{} {
	out := make(map[termmodel.Hash]struct{})
	for h := range p.relative {
		out[h] = struct{}{}
	}
	for h := range p.weekday {
		out[h] = struct{}{}
	}
	for h := range p.moment {
		out[h] = struct{}{}
	}
	for h := range p.meridiem {
		out[h] = struct{}{}
	}
	out[p.quarter] = struct{}{}
	out[p.half] = struct{}{}
	out[p.past] = struct{}{}
	out[p.oclock] = struct{}{}
	for h := range p.nums.OwnHashedTerms() {
		out[h] = struct{}{}
	}
	return out
}

// AddTermsToSet adds this parser's recognized surface terms to set,
// including the ones it borrows from nums.
func (p *Parser) AddTermsToSet(set map[string]struct{}) {
	for term := range p.terms {
		set[term] = struct{}{}
	}
	p.nums.AddTermsToSet(set)
}
