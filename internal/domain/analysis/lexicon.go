package analysis

// Lexicon bundles the fixed English word lists and cue patterns driving the
// heuristic detectors. Treated as immutable once handed to an Analyzer;
// locale or domain variants swap the whole table rather than editing it.
type Lexicon struct {
	// Fillers are matched as whole words/phrases in lowercase text.
	Fillers []string
	// StopWords are excluded from the content-word frequency table.
	StopWords []string
	// QuestionCues, ExampleCues and InteractionCues are regular expression
	// fragments counted against the lowercase transcript text.
	QuestionCues    []string
	ExampleCues     []string
	InteractionCues []string
}

// DefaultLexicon returns the calibrated English lexicon.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Fillers: []string{
			"um", "uh", "ah", "er", "hmm", "like", "you know", "basically",
			"actually", "sort of", "kind of", "i mean", "well", "so",
		},
		StopWords: []string{
			"the", "a", "an", "and", "or", "but", "in", "on", "at", "to",
			"for", "of", "with", "by", "is", "are", "was", "were", "be",
			"been", "have", "has", "had", "do", "does", "did", "will",
			"would", "could", "should", "may", "might", "can", "this",
			"that", "these", "those", "i", "you", "he", "she", "it", "we",
			"they",
		},
		QuestionCues: []string{
			`\?`, `\bquestion\b`, `\bask\b`, `\banswer\b`,
			`\bwonder\b`, `\bthink about\b`,
		},
		ExampleCues: []string{
			`\bfor example\b`, `\bfor instance\b`, `\blike\b`,
			`\bimagine\b`, `\bsay\b`, `\bsuppose\b`,
		},
		InteractionCues: []string{
			`\byou\b`, `\byour\b`, `\bus\b`, `\bwe\b`,
			`\beveryone\b`, `\bclass\b`,
		},
	}
}
