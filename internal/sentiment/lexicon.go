package sentiment

// domainLexicon overlays the base VADER lexicon with e-commerce review
// vocabulary. Single-token entries overwrite the base valence directly;
// multi-word entries are collapsed into one token during preprocessing
// so the scorer sees them as a unit.
var domainLexicon = map[string]float64{
	// Positive terms
	"love":                  3.0,
	"perfect":               3.0,
	"excellent":             3.0,
	"amazing":               3.0,
	"worth":                 2.0,
	"recommend":             2.5,
	"fast shipping":         2.5,
	"great quality":         3.0,
	"true to size":          2.0,
	"fits perfectly":        3.0,
	"exceeded expectations": 3.5,
	"best purchase":         3.0,
	"highly recommend":      3.0,
	"great value":           2.5,
	"beautiful":             2.5,
	"sturdy":                2.0,
	"durable":               2.0,

	// Negative terms
	"cheap":             -2.0,
	"flimsy":            -2.5,
	"poor quality":      -3.0,
	"never arrived":     -3.5,
	"wrong size":        -2.5,
	"runs small":        -1.5,
	"runs large":        -1.5,
	"not as described":  -3.0,
	"false advertising": -3.5,
	"waste of money":    -3.5,
	"disappointed":      -2.5,
	"returned":          -1.5,
	"refund":            -1.5,
	"defective":         -3.0,
	"broken":            -3.0,
	"damaged":           -2.5,
	"late delivery":     -2.0,
	"terrible":          -3.0,
	"horrible":          -3.0,
	"awful":             -3.0,
	"overpriced":        -2.0,
	"scam":              -3.5,
	"fake":              -3.0,

	// Neutralized phrases. "nothing special" reads as mediocrity in
	// review language; without the override the base negation heuristic
	// scores it as outright negative.
	"nothing special": 0,
}
