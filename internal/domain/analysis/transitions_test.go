package analysis_test

import (
	"testing"

	analysis "github.com/praxislab/lectern/internal/domain/analysis"
	"github.com/praxislab/lectern/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTopicTransitions(t *testing.T) {
	Convey("Given segments with a continuation, a long gap and a vocabulary shift", t, func() {
		segments := []model.Segment{
			{Start: 0, End: 10, Text: "the quick brown fox"},
			{Start: 10.5, End: 20, Text: "the quick red dog"},
			{Start: 26, End: 30, Text: "completely different words here"},
			{Start: 30.2, End: 40, Text: "another unrelated phrase entirely"},
		}

		Convey("When analyzing them", func() {
			report := analysis.New(nil, segments).Analyze()
			transitions := report.TopicTransitions

			Convey("Then the lexical continuation is not a transition", func() {
				So(transitions, ShouldHaveLength, 2)
				for _, tr := range transitions {
					So(tr.Timestamp, ShouldNotEqual, 10.0)
				}
			})

			Convey("And transitions rank by descending strength", func() {
				So(transitions[0].Timestamp, ShouldAlmostEqual, 20.0)
				So(transitions[0].TimeGap, ShouldAlmostEqual, 6.0)
				So(transitions[0].TransitionStrength, ShouldAlmostEqual, 1.2, 0.0001)
				So(transitions[1].Timestamp, ShouldAlmostEqual, 30.0)
				So(transitions[1].TransitionStrength, ShouldAlmostEqual, 1.0, 0.0001)
			})

			Convey("And each transition carries its surrounding text", func() {
				So(transitions[0].ContextBefore, ShouldEqual, "the quick red dog")
				So(transitions[0].ContextAfter, ShouldEqual, "completely different words here")
			})
		})
	})

	Convey("Given fewer than two segments", t, func() {
		segments := []model.Segment{{Start: 0, End: 10, Text: "alone"}}

		Convey("When analyzing them", func() {
			report := analysis.New(nil, segments).Analyze()

			Convey("Then the transition list is empty, not nil", func() {
				So(report.TopicTransitions, ShouldNotBeNil)
				So(report.TopicTransitions, ShouldHaveLength, 0)
			})
		})
	})

	Convey("Given more transitions than the report keeps", t, func() {
		thresholds := analysis.DefaultThresholds()
		thresholds.TopTransitions = 1
		segments := []model.Segment{
			{Start: 0, End: 10, Text: "alpha beta"},
			{Start: 15, End: 20, Text: "gamma delta"},
			{Start: 26, End: 30, Text: "epsilon zeta"},
		}

		Convey("When analyzing with a cap of one", func() {
			report := analysis.New(nil, segments,
				analysis.WithThresholds(thresholds),
			).Analyze()

			Convey("Then only the strongest transition survives", func() {
				So(report.TopicTransitions, ShouldHaveLength, 1)
				So(report.TopicTransitions[0].TimeGap, ShouldAlmostEqual, 6.0)
			})
		})
	})

	Convey("Given transitions of equal strength", t, func() {
		segments := []model.Segment{
			{Start: 0, End: 10, Text: "alpha beta"},
			{Start: 10.2, End: 20, Text: "gamma delta"},
			{Start: 20.2, End: 30, Text: "epsilon zeta"},
		}

		Convey("When analyzing them twice", func() {
			first := analysis.New(nil, segments).Analyze().TopicTransitions
			second := analysis.New(nil, segments).Analyze().TopicTransitions

			Convey("Then equal strengths keep timeline order, reproducibly", func() {
				So(first, ShouldHaveLength, 2)
				So(first[0].Timestamp, ShouldAlmostEqual, 10.0)
				So(first[1].Timestamp, ShouldAlmostEqual, 20.0)
				So(second, ShouldResemble, first)
			})
		})
	})
}

func TestTopicTransitions_Similarity(t *testing.T) {
	Convey("Given adjacent segments sharing half their smaller word set", t, func() {
		segments := []model.Segment{
			{Start: 0, End: 10, Text: "energy entropy"},
			{Start: 10.1, End: 20, Text: "entropy increases over time always"},
		}

		Convey("When analyzing them", func() {
			transitions := analysis.New(nil, segments).Analyze().TopicTransitions

			Convey("Then overlap normalizes by the smaller set", func() {
				So(transitions, ShouldHaveLength, 0)
			})
		})
	})
}

func TestTransitionContextWindow(t *testing.T) {
	Convey("Given a segment with very long text", t, func() {
		long := ""
		for i := 0; i < 40; i++ {
			long += "lengthy "
		}
		segments := []model.Segment{
			{Start: 0, End: 10, Text: long},
			{Start: 20, End: 30, Text: "short"},
		}

		Convey("When analyzing them", func() {
			transitions := analysis.New(nil, segments).Analyze().TopicTransitions

			Convey("Then context excerpts are bounded", func() {
				So(transitions, ShouldHaveLength, 1)
				So(len(transitions[0].ContextBefore), ShouldBeLessThanOrEqualTo, 100)
				So(transitions[0].ContextAfter, ShouldEqual, "short")
			})
		})
	})
}

func TestCustomTransitionDetector(t *testing.T) {
	Convey("Given a substitute transition detector", t, func() {
		fixed := fixedTransitions{{Timestamp: 42, TransitionStrength: 0.9}}

		Convey("When analyzing with it", func() {
			report := analysis.New(nil, []model.Segment{
				{Start: 0, End: 10, Text: "a"},
				{Start: 20, End: 30, Text: "b"},
			}, analysis.WithTransitionDetector(fixed)).Analyze()

			Convey("Then its output lands in the report unchanged", func() {
				So(report.TopicTransitions, ShouldHaveLength, 1)
				So(report.TopicTransitions[0].Timestamp, ShouldEqual, 42)
			})
		})
	})
}

// fixedTransitions is a canned TransitionDetector.
type fixedTransitions []analysis.Transition

func (f fixedTransitions) Detect([]model.Segment) []analysis.Transition {
	return []analysis.Transition(f)
}
