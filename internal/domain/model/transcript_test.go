package model_test

import (
	"encoding/json"
	"testing"

	"github.com/praxislab/lectern/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWord_UnmarshalJSON(t *testing.T) {
	Convey("Given transcript entries on the wire", t, func() {
		Convey("When an entry uses the conf spelling", func() {
			var w model.Word
			err := json.Unmarshal([]byte(`{"start":0.5,"end":1.2,"text":"hello","conf":0.93}`), &w)

			Convey("Then all fields decode", func() {
				So(err, ShouldBeNil)
				So(w.Start, ShouldEqual, 0.5)
				So(w.End, ShouldEqual, 1.2)
				So(w.Text, ShouldEqual, "hello")
				So(w.Confidence, ShouldAlmostEqual, 0.93)
				So(w.HasConfidence, ShouldBeTrue)
			})
		})

		Convey("When an entry uses the confidence spelling", func() {
			var w model.Word
			err := json.Unmarshal([]byte(`{"start":0,"end":1,"text":"hi","confidence":0.8}`), &w)

			Convey("Then the confidence decodes", func() {
				So(err, ShouldBeNil)
				So(w.Confidence, ShouldAlmostEqual, 0.8)
			})
		})

		Convey("When both spellings are present", func() {
			var w model.Word
			err := json.Unmarshal([]byte(`{"start":0,"end":1,"text":"hi","conf":0.5,"confidence":0.9}`), &w)

			Convey("Then confidence wins", func() {
				So(err, ShouldBeNil)
				So(w.Confidence, ShouldAlmostEqual, 0.9)
			})
		})

		Convey("When the confidence is absent", func() {
			var w model.Word
			err := json.Unmarshal([]byte(`{"start":0,"end":1,"text":"hi"}`), &w)

			Convey("Then it defaults to zero and is marked absent", func() {
				So(err, ShouldBeNil)
				So(w.Confidence, ShouldEqual, 0)
				So(w.HasConfidence, ShouldBeFalse)
			})
		})

		Convey("When an entry carries an explicit zero confidence", func() {
			var w model.Word
			err := json.Unmarshal([]byte(`{"start":0,"end":1,"text":"hi","conf":0}`), &w)

			Convey("Then the zero is kept as a supplied value", func() {
				So(err, ShouldBeNil)
				So(w.Confidence, ShouldEqual, 0)
				So(w.HasConfidence, ShouldBeTrue)
			})
		})

		Convey("When a required field is missing", func() {
			cases := []string{
				`{"end":1,"text":"hi"}`,
				`{"start":0,"text":"hi"}`,
				`{"start":0,"end":1}`,
			}
			for _, c := range cases {
				var w model.Word
				err := json.Unmarshal([]byte(c), &w)

				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, model.ErrMissingField.Error())
			}
		})

		Convey("When a field is present but zero-valued", func() {
			var w model.Word
			err := json.Unmarshal([]byte(`{"start":0,"end":0,"text":""}`), &w)

			Convey("Then the entry is accepted", func() {
				So(err, ShouldBeNil)
			})
		})
	})
}

func TestWord_MarshalJSON(t *testing.T) {
	Convey("Given a word decoded from the conf spelling", t, func() {
		var w model.Word
		So(json.Unmarshal([]byte(`{"start":0,"end":1,"text":"hi","conf":0.7}`), &w), ShouldBeNil)

		Convey("When marshaling it back", func() {
			out, err := json.Marshal(w)

			Convey("Then the canonical confidence spelling is emitted", func() {
				So(err, ShouldBeNil)
				So(string(out), ShouldContainSubstring, `"confidence":0.7`)
				So(string(out), ShouldNotContainSubstring, `"conf":`)
			})
		})
	})
}

func TestSortByStart(t *testing.T) {
	Convey("Given words out of time order", t, func() {
		words := []model.Word{
			{Start: 2.0, End: 2.5, Text: "c"},
			{Start: 0.0, End: 0.5, Text: "a"},
			{Start: 1.0, End: 1.5, Text: "b"},
		}

		Convey("When sorting by start", func() {
			model.SortByStart(words)

			Convey("Then words are ascending by start time", func() {
				So(words[0].Text, ShouldEqual, "a")
				So(words[1].Text, ShouldEqual, "b")
				So(words[2].Text, ShouldEqual, "c")
			})
		})
	})

	Convey("Given words with equal start times", t, func() {
		words := []model.Word{
			{Start: 1.0, End: 1.5, Text: "first"},
			{Start: 1.0, End: 1.2, Text: "second"},
		}

		Convey("When sorting by start", func() {
			model.SortByStart(words)

			Convey("Then the original order of ties is preserved", func() {
				So(words[0].Text, ShouldEqual, "first")
				So(words[1].Text, ShouldEqual, "second")
			})
		})
	})
}
