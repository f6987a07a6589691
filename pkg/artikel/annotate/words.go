package annotate

import "github.com/cognicore/artikel/pkg/artikel/pos"

// closedClass is the built-in lexicon: function words plus the open-class
// words whose suffix would mislead guess.
var closedClass = map[string]pos.Tag{
	// determiners
	"a": pos.DT, "an": pos.DT, "the": pos.DT, "this": pos.DT, "that": pos.DT,
	"these": pos.DT, "those": pos.DT, "all": pos.DT, "some": pos.DT, "any": pos.DT,
	"no": pos.DT, "every": pos.DT, "each": pos.DT, "both": pos.DT, "none": pos.DT,
	"another": pos.DT, "either": pos.DT, "neither": pos.DT,

	"there": pos.EX,

	// pronouns
	"i": "PRP", "you": "PRP", "he": "PRP", "she": "PRP", "we": "PRP",
	"they": "PRP", "me": "PRP", "him": "PRP", "us": "PRP", "them": "PRP",
	"it": "PRP",
	"my": pos.PRPS, "your": pos.PRPS, "his": pos.PRPS, "her": pos.PRPS,
	"its": pos.PRPS, "our": pos.PRPS, "their": pos.PRPS,

	// auxiliaries and frequent verbs
	"is": pos.VBZ, "has": pos.VBZ, "does": pos.VBZ, "seems": pos.VBZ, "becomes": pos.VBZ,
	"was": pos.VBD, "were": pos.VBD, "had": pos.VBD, "did": pos.VBD, "became": pos.VBD,
	"seemed": pos.VBD,
	"are": "VBP", "am": "VBP", "have": "VBP", "do": "VBP",
	"be": "VB", "been": "VBN", "being": "VBG",
	"can": "MD", "could": "MD", "will": "MD", "would": "MD", "shall": "MD",
	"should": "MD", "may": "MD", "might": "MD", "must": "MD",
	"to": "TO",

	// conjunctions and prepositions
	"and": "CC", "or": "CC", "but": "CC", "nor": "CC",
	"in": pos.IN, "on": pos.IN, "at": pos.IN, "of": pos.IN, "with": pos.IN,
	"for": pos.IN, "from": pos.IN, "by": pos.IN, "about": pos.IN, "into": pos.IN,
	"over": pos.IN, "under": pos.IN, "after": pos.IN, "before": pos.IN,
	"between": pos.IN, "through": pos.IN, "during": pos.IN, "without": pos.IN,
	"within": pos.IN, "against": pos.IN, "among": pos.IN, "as": pos.IN,
	"like": pos.IN, "than": pos.IN, "because": pos.IN, "if": pos.IN,
	"while": pos.IN, "since": pos.IN, "until": pos.IN, "near": pos.IN,
	"behind": pos.IN, "across": pos.IN, "around": pos.IN,

	// numbers
	"one": pos.CD, "two": pos.CD, "three": pos.CD, "four": pos.CD, "five": pos.CD,
	"six": pos.CD, "seven": pos.CD, "eight": pos.CD, "nine": pos.CD, "ten": pos.CD,
	"twenty": pos.CD, "hundred": pos.CD, "thousand": pos.CD, "million": pos.CD,

	// adverbs and wh-words
	"not": "RB", "very": "RB", "also": "RB", "too": "RB", "often": "RB",
	"always": "RB", "never": "RB", "here": "RB", "now": "RB", "then": "RB",
	"just": "RB", "still": "RB", "already": "RB", "so": "RB",
	"what": "WP", "who": "WP", "which": "WDT",
	"where": "WRB", "when": "WRB", "how": "WRB", "why": "WRB",

	// adjectives
	"present": pos.JJ, "beautiful": pos.JJ, "fine": pos.JJ, "great": pos.JJ,
	"good": pos.JJ, "bad": pos.JJ, "big": pos.JJ, "small": pos.JJ, "old": pos.JJ,
	"new": pos.JJ, "young": pos.JJ, "same": pos.JJ, "main": pos.JJ, "whole": pos.JJ,
	"previous": pos.JJ, "right": pos.JJ, "next": pos.JJ, "left": pos.JJ,
	"last": pos.JJ, "only": pos.JJ, "wrong": pos.JJ, "first": pos.JJ,
	"favourite": pos.JJ, "favorite": pos.JJ, "little": pos.JJ, "long": pos.JJ,
	"large": pos.JJ, "high": pos.JJ, "honest": pos.JJ, "red": pos.JJ,
	"better": pos.JJR, "worse": pos.JJR, "bigger": pos.JJR, "older": pos.JJR,
	"best": pos.JJS, "worst": pos.JJS, "most": pos.JJS,

	// nouns with misleading suffixes
	"forest": pos.NN, "interest": pos.NN, "request": pos.NN, "contest": pos.NN,
	"protest": pos.NN, "harvest": pos.NN, "speed": pos.NN, "seed": pos.NN,
	"need": pos.NN, "bed": pos.NN, "family": pos.NN, "news": pos.NN,
	"physics": pos.NN, "mathematics": pos.NN,
}
