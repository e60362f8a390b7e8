package analysis_test

import (
	"testing"

	analysis "github.com/praxislab/lectern/internal/domain/analysis"
	"github.com/praxislab/lectern/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAnalyzer_EmptyTranscript(t *testing.T) {
	Convey("Given an empty transcript", t, func() {
		analyzer := analysis.New(nil, nil)

		Convey("When analyzing it", func() {
			report := analyzer.Analyze()

			Convey("Then every metric group is zero-valued", func() {
				So(report.LectureOverview.TotalWords, ShouldEqual, 0)
				So(report.LectureOverview.TotalDurationMinutes, ShouldEqual, 0)
				So(report.Speech.WordsPerMinute, ShouldEqual, 0)
				So(report.Linguistic.TotalWords, ShouldEqual, 0)
				So(report.Confidence.AverageConfidence, ShouldEqual, 0)
				So(report.Engagement.EngagementScore, ShouldEqual, 0)
				So(report.Pacing.AverageRate, ShouldEqual, 0)
			})

			Convey("And the transition list is empty, not nil", func() {
				So(report.TopicTransitions, ShouldNotBeNil)
				So(report.TopicTransitions, ShouldHaveLength, 0)
			})

			Convey("And the fluency score defaults to perfect", func() {
				So(report.Fluency.FluencyScore, ShouldEqual, 1)
			})
		})
	})
}

func TestAnalyzer_SpeechMetrics(t *testing.T) {
	Convey("Given a transcript with one long mid-lecture pause", t, func() {
		words := []model.Word{
			{Start: 0.0, End: 0.5, Text: "Hello", Confidence: 0.9},
			{Start: 0.5, End: 1.0, Text: "students", Confidence: 0.9},
			{Start: 3.5, End: 4.0, Text: "welcome", Confidence: 0.9},
			{Start: 4.1, End: 4.6, Text: "everyone", Confidence: 0.9},
		}

		Convey("When analyzing it", func() {
			report := analysis.New(words, nil).Analyze()

			Convey("Then the rate is words over the full span", func() {
				So(report.Speech.WordsPerMinute, ShouldAlmostEqual, 4.0/4.6*60, 0.0001)
				So(report.LectureOverview.TotalWords, ShouldEqual, 4)
				So(report.LectureOverview.TotalDurationMinutes, ShouldAlmostEqual, 4.6/60, 0.0001)
			})

			Convey("And speech and silence time partition the span", func() {
				So(report.Speech.TotalSpeechTime, ShouldAlmostEqual, 2.0)
				So(report.Speech.SilenceTime, ShouldAlmostEqual, 2.6)
				So(report.Speech.SilenceRatio, ShouldAlmostEqual, 2.6/4.6, 0.0001)
				So(report.Speech.SpeechRateWPS, ShouldAlmostEqual, 2.0)
			})

			Convey("And only the gap above the minimum cutoff counts as a pause", func() {
				So(report.Speech.PauseCount, ShouldEqual, 1)
				So(report.Speech.LongPauseCount, ShouldEqual, 1)
				So(report.Speech.AveragePauseDuration, ShouldAlmostEqual, 2.5)
			})
		})
	})

	Convey("Given unordered transcript input", t, func() {
		ordered := []model.Word{
			{Start: 0.0, End: 0.5, Text: "one", Confidence: 0.9},
			{Start: 0.6, End: 1.0, Text: "two", Confidence: 0.9},
			{Start: 1.1, End: 1.5, Text: "three", Confidence: 0.9},
		}
		shuffled := []model.Word{ordered[2], ordered[0], ordered[1]}

		Convey("When analyzing both orderings", func() {
			a := analysis.New(ordered, nil).Analyze()
			b := analysis.New(shuffled, nil).Analyze()

			Convey("Then the reports are identical", func() {
				So(b.Speech, ShouldResemble, a.Speech)
				So(b.Fluency, ShouldResemble, a.Fluency)
				So(b.Linguistic, ShouldResemble, a.Linguistic)
			})
		})
	})
}

func TestAnalyzer_Tokenization(t *testing.T) {
	Convey("Given entries with punctuation and mixed casing", t, func() {
		words := []model.Word{
			{Start: 0.0, End: 0.5, Text: "Hello,", Confidence: 0.9},
			{Start: 0.5, End: 1.0, Text: "World!", Confidence: 0.9},
			{Start: 1.0, End: 1.5, Text: "  ", Confidence: 0.9},
			{Start: 1.5, End: 2.0, Text: "hello", Confidence: 0.9},
		}

		Convey("When analyzing them", func() {
			report := analysis.New(words, nil).Analyze()

			Convey("Then tokens are lowercased, cleaned, and empty entries dropped", func() {
				So(report.LectureOverview.TotalWords, ShouldEqual, 3)
				So(report.Linguistic.UniqueWords, ShouldEqual, 2)
			})
		})
	})
}
