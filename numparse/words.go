package numparse

// cardinalWords lists every English cardinal-number surface word this
// parser recognizes, mapped to its numeric value. Multi-word magnitudes
// (e.g. "one hundred") are built up by Parser.Parse, not listed here.
var cardinalWords = map[string]int64{
	"zero":      0,
	"one":       1,
	"two":       2,
	"three":     3,
	"four":      4,
	"five":      5,
	"six":       6,
	"seven":     7,
	"eight":     8,
	"nine":      9,
	"ten":       10,
	"eleven":    11,
	"twelve":    12,
	"thirteen":  13,
	"fourteen":  14,
	"fifteen":   15,
	"sixteen":   16,
	"seventeen": 17,
	"eighteen":  18,
	"nineteen":  19,
	"twenty":    20,
	"thirty":    30,
	"forty":     40,
	"fifty":     50,
	"sixty":     60,
	"seventy":   70,
	"eighty":    80,
	"ninety":    90,

	"hundred":   100,
	"thousand":  1_000,
	"million":   1_000_000,
	"billion":   1_000_000_000,
	"trillion":  1_000_000_000_000,
}

// negativeWord, when it appears as the first token, flips the sign of
// whatever cardinal phrase follows it.
const negativeWord = "negative"

// hundredValue marks the magnitude-word boundary used by Parse's
// accumulation loop: values below it add into the group, "hundred"
// multiplies the group, and larger values fold the group into the total.
const hundredValue = 100
