package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/boardroom-ai/boardroom/internal/adapters/roster"
	"github.com/boardroom-ai/boardroom/internal/app"
	"github.com/boardroom-ai/boardroom/internal/domain/expert"
	"github.com/boardroom-ai/boardroom/internal/domain/phase"
	"github.com/boardroom-ai/boardroom/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	m.Run()
}

// mockModel records the prompts it was given and replays canned output.
type mockModel struct {
	system string
	user   string
	calls  int
	out    string
	err    error
}

func (m *mockModel) Complete(_ context.Context, systemPrompt, userMessage string) (string, error) {
	m.calls++
	m.system = systemPrompt
	m.user = userMessage
	if m.err != nil {
		return "", m.err
	}
	return m.out, nil
}

func staticRoster(records ...expert.Record) *roster.Cache {
	return roster.NewCache(nil,
		roster.WithFetch(func(context.Context) ([]expert.Record, error) {
			return records, nil
		}),
		roster.WithClock(time.Now),
	)
}

func TestPhase1(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service with a canned model", t, func() {
		model := &mockModel{out: `{"paraphrase":"p","challengeType":"strategic","needsWhyItMatters":true}`}
		svc := app.New(app.WithModel(model), app.WithRoster(staticRoster()))

		Convey("When running phase one", func() {
			r, err := svc.Phase1(ctx, "Should we expand into Brazil?")

			Convey("Then the challenge rides as the user message", func() {
				So(err, ShouldBeNil)
				So(model.user, ShouldEqual, "Should we expand into Brazil?")
				So(model.system, ShouldContainSubstring, "paraphrase")
			})

			Convey("And the clarity result decodes", func() {
				So(r.Paraphrase, ShouldEqual, "p")
				So(r.NeedsWhyItMatters, ShouldBeTrue)
			})
		})

		Convey("When the model returns prose instead of JSON", func() {
			model.out = "sorry, no"
			_, err := svc.Phase1(ctx, "c")

			Convey("Then the parse kind surfaces", func() {
				So(errors.Is(err, phase.ErrResponseParse), ShouldBeTrue)
			})
		})

		Convey("When the model call fails", func() {
			model.err = errors.New("boom")
			_, err := svc.Phase1(ctx, "c")

			Convey("Then the gateway error surfaces unchanged", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, phase.ErrResponseParse), ShouldBeFalse)
			})
		})
	})
}

func TestPhase2(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service with a stocked roster", t, func() {
		model := &mockModel{out: `{"team":[{"name":"Jane Doe","role":"Ethical"}],"composition":"c"}`}
		svc := app.New(
			app.WithModel(model),
			app.WithRoster(staticRoster(
				expert.Record{FirstName: "Jane", LastName: "Doe", Years: "10", Field: "Ethics", Descriptor: "Moral philosopher"},
			)),
		)

		Convey("When running phase two", func() {
			r, err := svc.Phase2(ctx, "challenge text", "strategic")

			Convey("Then the pool and type are embedded in the instruction", func() {
				So(err, ShouldBeNil)
				So(model.system, ShouldContainSubstring, "Jane Doe (10) – Ethics, Moral philosopher")
				So(model.system, ShouldContainSubstring, "strategic")
				So(model.user, ShouldEqual, "challenge text")
			})

			Convey("And the team result decodes", func() {
				So(len(r.Team), ShouldEqual, 1)
				So(r.Composition, ShouldEqual, "c")
			})
		})
	})

	Convey("Given an empty roster", t, func() {
		model := &mockModel{out: `{"team":[],"composition":"c"}`}
		svc := app.New(app.WithModel(model), app.WithRoster(staticRoster()))

		Convey("When running phase two", func() {
			_, err := svc.Phase2(ctx, "c", "technical")

			Convey("Then the call still goes out with an empty-pool marker", func() {
				So(err, ShouldBeNil)
				So(model.system, ShouldContainSubstring, "no experts")
			})
		})
	})
}

func TestPhase3(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service and a caller-supplied team", t, func() {
		model := &mockModel{out: `{"questionNumber":1,"question":"q","askedBy":"Jane Doe","reveals":"assumptions"}`}
		svc := app.New(app.WithModel(model), app.WithRoster(staticRoster()))
		team := []phase.TeamMember{
			{Name: "Jane Doe", Role: "Ethical"},
			{Name: "Omar Brown", Role: "Systems"},
		}

		Convey("When running phase three", func() {
			r, err := svc.Phase3(ctx, "challenge text", team)

			Convey("Then only member names feed the instruction", func() {
				So(err, ShouldBeNil)
				So(model.system, ShouldContainSubstring, "Jane Doe, Omar Brown")
				So(model.system, ShouldNotContainSubstring, "Ethical")
			})

			Convey("And the question result decodes", func() {
				So(r.QuestionNumber, ShouldEqual, 1)
				So(r.Reveals, ShouldEqual, "assumptions")
			})
		})
	})
}

func TestStats(t *testing.T) {
	Convey("Given a service with a roster", t, func() {
		svc := app.New(
			app.WithModel(&mockModel{}),
			app.WithRoster(staticRoster(expert.Record{FirstName: "Jane"})),
		)

		Convey("Then stats report the roster gauges", func() {
			stats := svc.Stats()
			So(stats, ShouldContainKey, "rosterSize")
			So(stats, ShouldContainKey, "rosterAgeSeconds")
		})
	})
}
