package expert_test

import (
	"testing"

	"github.com/boardroom-ai/boardroom/internal/domain/expert"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseRow(t *testing.T) {
	Convey("Given a full roster row", t, func() {
		row := "Doe,Jane,10,Ethics,,Moral philosopher,,0,F,EU,Yes"

		Convey("When parsing it", func() {
			r := expert.ParseRow(row)

			Convey("Then all columns map to their positions", func() {
				So(r.FirstName, ShouldEqual, "Jane")
				So(r.LastName, ShouldEqual, "Doe")
				So(r.Years, ShouldEqual, "10")
				So(r.Field, ShouldEqual, "Ethics")
				So(r.Specialty, ShouldEqual, "")
				So(r.Descriptor, ShouldEqual, "Moral philosopher")
				So(r.Status, ShouldEqual, 0)
				So(r.Gender, ShouldEqual, "F")
				So(r.Region, ShouldEqual, "EU")
				So(r.Recognizable, ShouldEqual, "Yes")
			})

			Convey("And the row is retained", func() {
				So(expert.Retain(r), ShouldBeTrue)
			})
		})
	})

	Convey("Given a row with missing trailing columns", t, func() {
		r := expert.ParseRow("Smith,Ada,12")

		Convey("Then missing columns default to empty/zero and the row is retained", func() {
			So(r.FirstName, ShouldEqual, "Ada")
			So(r.Field, ShouldEqual, "")
			So(r.Status, ShouldEqual, 0)
			So(expert.Retain(r), ShouldBeTrue)
		})
	})

	Convey("Given a row with a non-numeric status", t, func() {
		r := expert.ParseRow("Smith,Ada,12,Systems,,Architect,,active,F,US,No")

		Convey("Then status defaults to available", func() {
			So(r.Status, ShouldEqual, expert.StatusAvailable)
			So(expert.Retain(r), ShouldBeTrue)
		})
	})

	Convey("Given a row with a non-zero status", t, func() {
		r := expert.ParseRow("Smith,Ada,12,Systems,,Architect,,1,F,US,No")

		Convey("Then the row is excluded regardless of other fields", func() {
			So(expert.Retain(r), ShouldBeFalse)
		})
	})

	Convey("Given a row with an empty first name", t, func() {
		r := expert.ParseRow("Smith,,12,Systems,,Architect,,0,F,US,No")

		Convey("Then the row is excluded", func() {
			So(expert.Retain(r), ShouldBeFalse)
		})
	})
}

func TestParseCSV(t *testing.T) {
	Convey("Given a CSV export with a header and mixed rows", t, func() {
		data := "Last,First,Years,Field,Specialty,Descriptor,Notes,Status,Gender,Region,Known\n" +
			"Doe,Jane,10,Ethics,,Moral philosopher,,0,F,EU,Yes\n" +
			"Smith,Ada,12,Systems,,Architect,,1,F,US,No\n" +
			"\n" +
			"Brown,Omar,8,Data,ML,Statistician,,0,M,US,No\n"

		Convey("When parsing", func() {
			records := expert.ParseCSV(data)

			Convey("Then only available rows with a first name survive, in row order", func() {
				So(len(records), ShouldEqual, 2)
				So(records[0].FirstName, ShouldEqual, "Jane")
				So(records[1].FirstName, ShouldEqual, "Omar")
			})
		})
	})

	Convey("Given a header-only export", t, func() {
		records := expert.ParseCSV("Last,First,Years\n")

		Convey("Then the roster is empty", func() {
			So(records, ShouldBeEmpty)
		})
	})

	Convey("Given CRLF line endings", t, func() {
		records := expert.ParseCSV("h\r\nDoe,Jane,10,Ethics,,Moral philosopher,,0,F,EU,Yes\r\n")

		Convey("Then rows still parse", func() {
			So(len(records), ShouldEqual, 1)
			So(records[0].Recognizable, ShouldEqual, "Yes")
		})
	})
}

func TestRenderPool(t *testing.T) {
	Convey("Given retained records", t, func() {
		records := []expert.Record{
			{FirstName: "Jane", LastName: "Doe", Years: "10", Field: "Ethics", Descriptor: "Moral philosopher"},
			{FirstName: "Omar", LastName: "Brown", Years: "8", Field: "Data", Descriptor: "Statistician"},
		}

		Convey("When rendering the pool block", func() {
			pool := expert.RenderPool(records)

			Convey("Then each record is one summary line", func() {
				So(pool, ShouldEqual,
					"- Jane Doe (10) – Ethics, Moral philosopher\n"+
						"- Omar Brown (8) – Data, Statistician")
			})
		})
	})

	Convey("Given an empty roster", t, func() {
		Convey("Then the pool block says so instead of being blank", func() {
			So(expert.RenderPool(nil), ShouldContainSubstring, "no experts")
		})
	})
}
