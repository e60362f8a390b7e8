package segmenter_test

import (
	"strings"
	"testing"

	"github.com/praxislab/lectern/internal/domain/model"
	segmenter "github.com/praxislab/lectern/internal/domain/segmenter"
	. "github.com/smartystreets/goconvey/convey"
)

// contiguousWords builds n back-to-back words, wordDur seconds each.
func contiguousWords(n int, wordDur float64) []model.Word {
	words := make([]model.Word, n)
	for i := range words {
		words[i] = model.Word{
			Start:      float64(i) * wordDur,
			End:        float64(i+1) * wordDur,
			Text:       "word",
			Confidence: 0.9,
		}
	}
	return words
}

func TestSegmenter_Segment(t *testing.T) {
	Convey("Given a segmenter with default thresholds", t, func() {
		splitter := segmenter.New()

		Convey("When segmenting an empty transcript", func() {
			segments := splitter.Segment(nil)

			Convey("Then it should return an empty, non-nil result", func() {
				So(segments, ShouldNotBeNil)
				So(segments, ShouldHaveLength, 0)
			})
		})

		Convey("When segmenting a single word", func() {
			segments := splitter.Segment([]model.Word{
				{Start: 1.0, End: 1.5, Text: "hello", Confidence: 0.95},
			})

			Convey("Then it should yield one segment spanning that word", func() {
				So(segments, ShouldHaveLength, 1)
				So(segments[0].Start, ShouldEqual, 1.0)
				So(segments[0].End, ShouldEqual, 1.5)
				So(segments[0].Text, ShouldEqual, "hello")
			})
		})

		Convey("When words flow without long pauses", func() {
			segments := splitter.Segment(contiguousWords(8, 0.5))

			Convey("Then all words land in a single segment", func() {
				So(segments, ShouldHaveLength, 1)
				So(segments[0].Start, ShouldEqual, 0.0)
				So(segments[0].End, ShouldEqual, 4.0)
			})
		})

		Convey("When 8 one-second words are separated by 0.1s gaps", func() {
			words := make([]model.Word, 8)
			for i := range words {
				words[i] = model.Word{
					Start:      float64(i) * 1.1,
					End:        float64(i)*1.1 + 1.0,
					Text:       "word",
					Confidence: 0.9,
				}
			}
			segments := splitter.Segment(words)

			Convey("Then the short gaps never break the segment", func() {
				So(segments, ShouldHaveLength, 1)
				So(segments[0].Start, ShouldEqual, 0.0)
				So(segments[0].End, ShouldAlmostEqual, 8.7, 0.0001)
			})
		})

		Convey("When contiguous speech runs past the max segment length", func() {
			segments := splitter.Segment(contiguousWords(121, 0.5))

			Convey("Then the limit splits it with the tripping word on the far side", func() {
				So(segments, ShouldHaveLength, 2)
				So(segments[0].End, ShouldAlmostEqual, 59.5, 0.0001)
				So(segments[1].Start, ShouldAlmostEqual, 59.5, 0.0001)
			})

			Convey("And no word is dropped across the split", func() {
				total := 0
				for _, seg := range segments {
					total += len(strings.Fields(seg.Text))
				}
				So(total, ShouldEqual, 121)
			})
		})

		Convey("When a pause reaches the pause threshold", func() {
			words := []model.Word{
				{Start: 0.0, End: 0.5, Text: "first", Confidence: 0.9},
				{Start: 0.6, End: 1.0, Text: "part", Confidence: 0.9},
				{Start: 4.0, End: 4.5, Text: "second", Confidence: 0.9},
				{Start: 4.6, End: 5.0, Text: "part", Confidence: 0.9},
			}
			segments := splitter.Segment(words)

			Convey("Then the segment breaks at the pause", func() {
				So(segments, ShouldHaveLength, 2)
				So(segments[0].Text, ShouldEqual, "first part")
				So(segments[1].Text, ShouldEqual, "second part")
				So(segments[0].End, ShouldEqual, 1.0)
				So(segments[1].Start, ShouldEqual, 4.0)
			})
		})

		Convey("When words arrive out of order", func() {
			words := []model.Word{
				{Start: 4.0, End: 4.5, Text: "later", Confidence: 0.9},
				{Start: 0.0, End: 0.5, Text: "earlier", Confidence: 0.9},
			}
			segments := splitter.Segment(words)

			Convey("Then segmentation works over the time-sorted sequence", func() {
				So(segments, ShouldHaveLength, 2)
				So(segments[0].Text, ShouldEqual, "earlier")
				So(segments[1].Text, ShouldEqual, "later")
			})
		})
	})

	Convey("Given a segmenter with a short max segment length", t, func() {
		splitter := segmenter.New(segmenter.WithMaxSegmentLen(2.0))

		Convey("When a word would stretch the segment to the limit", func() {
			segments := splitter.Segment(contiguousWords(6, 0.5))

			Convey("Then the tripping word opens the next segment", func() {
				So(segments, ShouldHaveLength, 2)
				// Words 1-3 span [0,1.5); word 4 ends at 2.0, tripping the
				// limit, so it starts segment two.
				So(segments[0].End, ShouldEqual, 1.5)
				So(segments[1].Start, ShouldEqual, 1.5)
				So(segments[1].End, ShouldEqual, 3.0)
			})
		})

		Convey("When a single word alone exceeds the limit", func() {
			segments := splitter.Segment([]model.Word{
				{Start: 0.0, End: 5.0, Text: "looooong", Confidence: 0.9},
			})

			Convey("Then it still forms one oversized segment", func() {
				So(segments, ShouldHaveLength, 1)
				So(segments[0].End-segments[0].Start, ShouldBeGreaterThan, 2.0)
			})
		})
	})

	Convey("Given a segmenter with a tight pause threshold", t, func() {
		splitter := segmenter.New(segmenter.WithPauseThreshold(0.5))

		Convey("When every gap reaches the threshold", func() {
			words := []model.Word{
				{Start: 0.0, End: 0.2, Text: "a", Confidence: 0.9},
				{Start: 0.7, End: 0.9, Text: "b", Confidence: 0.9},
				{Start: 1.4, End: 1.6, Text: "c", Confidence: 0.9},
			}
			segments := splitter.Segment(words)

			Convey("Then every word gets its own segment", func() {
				So(segments, ShouldHaveLength, 3)
			})
		})
	})
}

func TestSegmenter_SegmentStatistics(t *testing.T) {
	Convey("Given a two word transcript with a 0.2s gap", t, func() {
		words := []model.Word{
			{Start: 0.0, End: 1.0, Text: "hello", Confidence: 0.9},
			{Start: 1.2, End: 2.0, Text: "world", Confidence: 0.8},
		}

		Convey("When segmenting it", func() {
			segments := segmenter.New().Segment(words)

			Convey("Then the segment statistics are derived from the span", func() {
				So(segments, ShouldHaveLength, 1)
				seg := segments[0]
				So(seg.Text, ShouldEqual, "hello world")
				So(seg.SpeechRate, ShouldAlmostEqual, 1.0)
				So(seg.LexicalDiversity, ShouldAlmostEqual, 1.0)
				So(seg.SilenceRatio, ShouldAlmostEqual, 0.1)
				So(seg.ASRConfidence, ShouldAlmostEqual, 0.85)
			})
		})
	})

	Convey("Given a transcript repeating one word", t, func() {
		words := []model.Word{
			{Start: 0.0, End: 0.5, Text: "So", Confidence: 0.9},
			{Start: 0.5, End: 1.0, Text: "so", Confidence: 0.9},
			{Start: 1.0, End: 1.5, Text: "so", Confidence: 0.9},
			{Start: 1.5, End: 2.0, Text: "so", Confidence: 0.9},
		}

		Convey("When segmenting it", func() {
			segments := segmenter.New().Segment(words)

			Convey("Then lexical diversity reflects the single unique token", func() {
				So(segments, ShouldHaveLength, 1)
				So(segments[0].LexicalDiversity, ShouldAlmostEqual, 0.25)
			})
		})
	})

	Convey("Given a word with zero duration", t, func() {
		words := []model.Word{
			{Start: 1.0, End: 1.0, Text: "blip", Confidence: 0.7},
		}

		Convey("When segmenting it", func() {
			segments := segmenter.New().Segment(words)

			Convey("Then rate and silence stay zero instead of dividing by zero", func() {
				So(segments, ShouldHaveLength, 1)
				So(segments[0].SpeechRate, ShouldEqual, 0)
				So(segments[0].SilenceRatio, ShouldEqual, 0)
			})
		})
	})
}
