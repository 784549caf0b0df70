package logger_test

import (
	"testing"

	"github.com/boardroom-ai/boardroom/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("Then Get returns a usable logger", func() {
			So(logger.Get(), ShouldNotBeNil)
		})

		Convey("Then Named returns a scoped logger", func() {
			So(logger.Named("test"), ShouldNotBeNil)
		})

		Convey("Then Sync is a no-op", func() {
			So(logger.Sync(), ShouldBeNil)
		})
	})

	Convey("Given level strings", t, func() {
		Convey("Known names are accepted", func() {
			for _, l := range []string{"debug", "info", "warn", "warning", "error", "", "  INFO "} {
				So(logger.SetLevelString(l), ShouldBeNil)
			}
		})

		Convey("Unknown names are rejected", func() {
			So(logger.SetLevelString("loud"), ShouldNotBeNil)
		})
	})
}

func TestFields(t *testing.T) {
	Convey("Given field constructors", t, func() {
		So(logger.String("k", "v").Key, ShouldEqual, "k")
		So(logger.Int("n", 3).Value, ShouldEqual, 3)
		So(logger.Error(nil).Key, ShouldEqual, "error")
		So(logger.Any("x", 1.5).Value, ShouldEqual, 1.5)
	})
}
