package topics

// englishStopwords is the standard English function-word list applied
// before term weighting.
var englishStopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "also": {}, "am": {}, "an": {}, "and": {}, "any": {}, "are": {},
	"aren": {}, "as": {}, "at": {}, "be": {}, "because": {}, "been": {},
	"before": {}, "being": {}, "below": {}, "between": {}, "both": {}, "but": {},
	"by": {}, "can": {}, "cannot": {}, "could": {}, "couldn": {}, "did": {},
	"didn": {}, "do": {}, "does": {}, "doesn": {}, "doing": {}, "don": {},
	"down": {}, "during": {}, "each": {}, "few": {}, "for": {}, "from": {},
	"further": {}, "had": {}, "hadn": {}, "has": {}, "hasn": {}, "have": {},
	"haven": {}, "having": {}, "he": {}, "her": {}, "here": {}, "hers": {},
	"herself": {}, "him": {}, "himself": {}, "his": {}, "how": {}, "i": {},
	"if": {}, "in": {}, "into": {}, "is": {}, "isn": {}, "it": {}, "its": {},
	"itself": {}, "just": {}, "me": {}, "more": {}, "most": {}, "my": {},
	"myself": {}, "no": {}, "nor": {}, "not": {}, "now": {}, "of": {}, "off": {},
	"on": {}, "once": {}, "only": {}, "or": {}, "other": {}, "our": {},
	"ours": {}, "ourselves": {}, "out": {}, "over": {}, "own": {}, "same": {},
	"she": {}, "should": {}, "shouldn": {}, "so": {}, "some": {}, "such": {},
	"than": {}, "that": {}, "the": {}, "their": {}, "theirs": {}, "them": {},
	"themselves": {}, "then": {}, "there": {}, "these": {}, "they": {},
	"this": {}, "those": {}, "through": {}, "to": {}, "too": {}, "under": {},
	"until": {}, "up": {}, "very": {}, "was": {}, "wasn": {}, "we": {},
	"were": {}, "weren": {}, "what": {}, "when": {}, "where": {}, "which": {},
	"while": {}, "who": {}, "whom": {}, "why": {}, "will": {}, "with": {},
	"won": {}, "would": {}, "wouldn": {}, "you": {}, "your": {}, "yours": {},
	"yourself": {}, "yourselves": {},
}

// reviewStopwords drops review-domain filler that carries no
// discriminative value for topic discovery. Sentiment-bearing words
// like "good" and "love" are filtered here on purpose; they belong to
// the scorer, not the topic layer.
var reviewStopwords = map[string]struct{}{
	"product": {}, "item": {}, "order": {}, "ordered": {}, "buy": {},
	"bought": {}, "purchase": {}, "purchased": {}, "get": {}, "got": {},
	"use": {}, "used": {}, "using": {}, "one": {}, "really": {}, "like": {},
	"even": {}, "still": {}, "much": {}, "well": {}, "good": {}, "great": {},
	"nice": {}, "love": {}, "loved": {}, "best": {}, "better": {},
	"amazon": {}, "seller": {}, "review": {}, "star": {}, "stars": {},
	"rating": {}, "recommend": {},
}

func isStopword(token string) bool {
	if _, ok := englishStopwords[token]; ok {
		return true
	}
	_, ok := reviewStopwords[token]
	return ok
}
