package analysis

// Report is the aggregate metrics record computed for one lecture. It is
// built fresh per Analyze call and never mutated afterwards.
type Report struct {
	LectureOverview  Overview          `json:"lecture_overview"`
	Speech           SpeechMetrics     `json:"speech_metrics"`
	Fluency          FluencyMetrics    `json:"fluency_metrics"`
	Linguistic       LinguisticMetrics `json:"linguistic_metrics"`
	Confidence       ConfidenceMetrics `json:"confidence_metrics"`
	Engagement       EngagementMetrics `json:"engagement_analysis"`
	Pacing           PacingMetrics     `json:"pacing_analysis"`
	TopicTransitions []Transition      `json:"topic_transitions"`
}

// Overview summarizes the lecture at a glance.
type Overview struct {
	TotalDurationMinutes float64 `json:"total_duration_minutes"`
	TotalWords           int     `json:"total_words"`
	SegmentCount         int     `json:"segment_count"`
}

// SpeechMetrics covers rate, speech/silence split and pause behavior.
type SpeechMetrics struct {
	WordsPerMinute       float64 `json:"words_per_minute"`
	SpeechRateWPS        float64 `json:"speech_rate_wps"`
	TotalSpeechTime      float64 `json:"total_speech_time"`
	SilenceTime          float64 `json:"silence_time"`
	SilenceRatio         float64 `json:"silence_ratio"`
	AveragePauseDuration float64 `json:"average_pause_duration"`
	PauseCount           int     `json:"pause_count"`
	LongPauseCount       int     `json:"long_pause_count"`
}

// FluencyMetrics covers disfluency counts and the composite fluency score.
type FluencyMetrics struct {
	FillerWordCount int     `json:"filler_word_count"`
	FillerWordRate  float64 `json:"filler_word_rate"`
	RepetitionCount int     `json:"repetition_count"`
	FalseStartCount int     `json:"false_start_count"`
	// FluencyScore is 1 minus the per-word disfluency rate, floored at 0.
	// An empty transcript scores 1.0: no words means no evidence of
	// disfluency, and the low-fluency insight rule must stay silent.
	FluencyScore float64 `json:"fluency_score"`
}

// WordFrequency is one entry of the content-word frequency table.
type WordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// LinguisticMetrics covers vocabulary and sentence-level measures.
type LinguisticMetrics struct {
	TotalWords        int             `json:"total_words"`
	UniqueWords       int             `json:"unique_words"`
	LexicalDiversity  float64         `json:"lexical_diversity"`
	SentenceCount     int             `json:"sentence_count"`
	AvgSentenceLength float64         `json:"avg_sentence_length"`
	AvgWordLength     float64         `json:"avg_word_length"`
	MostFrequentWords []WordFrequency `json:"most_frequent_words"`
	// VocabularyRichness is unique words over the square root of total
	// words, a length-corrected type-token ratio.
	VocabularyRichness float64 `json:"vocabulary_richness"`
}

// ConfidenceMetrics aggregates word-level ASR confidence.
type ConfidenceMetrics struct {
	AverageConfidence  float64 `json:"average_confidence"`
	MinConfidence      float64 `json:"min_confidence"`
	MaxConfidence      float64 `json:"max_confidence"`
	ConfidenceStd      float64 `json:"confidence_std"`
	LowConfidenceCount int     `json:"low_confidence_segments"`
	LowConfidenceRatio float64 `json:"low_confidence_ratio"`
}

// EngagementMetrics counts lexical cues of audience engagement.
type EngagementMetrics struct {
	QuestionIndicators int     `json:"question_indicators"`
	ExampleCount       int     `json:"example_count"`
	InteractionCues    int     `json:"interaction_cues"`
	EngagementScore    float64 `json:"engagement_score"`
}

// PaceChange records a significant jump in local speech rate between
// adjacent segments.
type PaceChange struct {
	Timestamp       float64 `json:"timestamp"`
	ChangeMagnitude float64 `json:"change_magnitude"`
	NewRate         float64 `json:"new_rate"`
	PreviousRate    float64 `json:"previous_rate"`
}

// PacingMetrics covers per-segment rate statistics. Zero-valued when fewer
// than three segments are available.
type PacingMetrics struct {
	AverageRate            float64      `json:"average_rate"`
	RateStd                float64      `json:"rate_std"`
	MinRate                float64      `json:"min_rate"`
	MaxRate                float64      `json:"max_rate"`
	PacingConsistency      float64      `json:"pacing_consistency"`
	SignificantPaceChanges int          `json:"significant_pace_changes"`
	PaceChanges            []PaceChange `json:"pace_changes"`
}

// Transition is a heuristically detected likely topic boundary between two
// adjacent segments, based on timing gaps and lexical dissimilarity.
type Transition struct {
	Timestamp          float64 `json:"timestamp"`
	TimeGap            float64 `json:"time_gap"`
	LexicalSimilarity  float64 `json:"lexical_similarity"`
	TransitionStrength float64 `json:"transition_strength"`
	ContextBefore      string  `json:"context_before"`
	ContextAfter       string  `json:"context_after"`
}
