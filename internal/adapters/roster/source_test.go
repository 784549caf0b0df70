package roster_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/boardroom-ai/boardroom/internal/adapters/roster"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSourceFetch(t *testing.T) {
	ctx := context.Background()

	Convey("Given a feed server", t, func() {
		csv := "Last,First,Years,Field,Specialty,Descriptor,Notes,Status,Gender,Region,Known\n" +
			"Doe,Jane,10,Ethics,,Moral philosopher,,0,F,EU,Yes\n" +
			"Smith,Ada,12,Systems,,Architect,,1,F,US,No\n"
		status := http.StatusOK
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(csv))
		}))
		defer srv.Close()

		src, err := roster.NewSource(srv.URL, roster.WithHTTPClient(srv.Client()))
		So(err, ShouldBeNil)

		Convey("When fetching", func() {
			records, err := src.Fetch(ctx)

			Convey("Then retained rows come back parsed", func() {
				So(err, ShouldBeNil)
				So(len(records), ShouldEqual, 1)
				So(records[0].FirstName, ShouldEqual, "Jane")
			})
		})

		Convey("When the feed answers with an error status", func() {
			status = http.StatusForbidden
			_, err := src.Fetch(ctx)

			Convey("Then the fetch fails", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "403")
			})
		})
	})

	Convey("Given an unreachable feed", t, func() {
		src, err := roster.NewSource("http://127.0.0.1:1/export.csv")
		So(err, ShouldBeNil)

		Convey("Then fetching reports a transport failure", func() {
			_, err := src.Fetch(ctx)
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given an empty URL", t, func() {
		Convey("Then the source refuses to construct", func() {
			_, err := roster.NewSource("")
			So(err, ShouldEqual, roster.ErrEmptyURL)
		})
	})
}
