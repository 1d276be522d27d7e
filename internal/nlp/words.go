package nlp

import "strings"

// stopWords is the standard English stop-word list used for sentence
// filtering before scoring.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		i me my myself we our ours ourselves you you're you've you'll you'd
		your yours yourself yourselves he him his himself she she's her hers
		herself it it's its itself they them their theirs themselves what
		which who whom this that that'll these those am is are was were be
		been being have has had having do does did doing a an the and but if
		or because as until while of at by for with about against between
		into through during before after above below to from up down in out
		on off over under again further then once here there when where why
		how all any both each few more most other some such no nor not only
		own same so than too very s t can will just don don't should
		should've now d ll m o re ve y ain aren aren't couldn couldn't didn
		didn't doesn doesn't hadn hadn't hasn hasn't haven haven't isn isn't
		ma mightn mightn't mustn mustn't needn needn't shan shan't shouldn
		shouldn't wasn wasn't weren weren't won won't wouldn wouldn't`) {
		stopWords[w] = struct{}{}
	}
}

// IsStopWord reports whether the lowercased word is an English stop word.
func IsStopWord(word string) bool {
	_, ok := stopWords[strings.ToLower(word)]
	return ok
}

// stopArticles are short function words that are never acceptable as
// quiz answers on their own.
var stopArticles = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "his": {}, "her": {}, "its": {}, "their": {}, "our": {},
	"your": {}, "my": {}, "le": {}, "la": {}, "les": {}, "un": {},
	"une": {}, "des": {}, "el": {}, "los": {}, "las": {},
}

// IsStopArticle reports whether the lowercased text is a short
// function word unsuitable as a candidate keyword.
func IsStopArticle(text string) bool {
	_, ok := stopArticles[strings.ToLower(strings.TrimSpace(text))]
	return ok
}

// questionWords marks a sentence as already interrogative when any of
// them appears as a standalone word. Covers English, French and Spanish.
var questionWords = map[string]struct{}{
	"what": {}, "which": {}, "who": {}, "whom": {}, "whose": {},
	"where": {}, "when": {}, "why": {}, "how": {},
	"quoi": {}, "quel": {}, "quelle": {}, "quels": {}, "quelles": {},
	"pourquoi": {}, "comment": {}, "quand": {}, "qui": {},
	"qué": {}, "cuál": {}, "cuáles": {}, "quién": {}, "quiénes": {},
	"dónde": {}, "cuándo": {}, "cómo": {},
}

// IsQuestionWord reports whether the lowercased word signals an
// interrogative sentence.
func IsQuestionWord(word string) bool {
	_, ok := questionWords[strings.ToLower(word)]
	return ok
}
