// Package app provides the core service that implements the dependencies
// required by the HTTP API: phase orchestration over the model gateway and
// the roster cache.
package app

import (
	"context"

	"github.com/boardroom-ai/boardroom/internal/adapters/llm"
	"github.com/boardroom-ai/boardroom/internal/adapters/roster"
	"github.com/boardroom-ai/boardroom/internal/domain/expert"
	"github.com/boardroom-ai/boardroom/internal/domain/phase"
	"github.com/boardroom-ai/boardroom/pkg/logger"
)

// Service holds no per-request state. All cross-phase continuity (challenge
// text, team composition) is resupplied by the caller on every request.
type Service struct {
	model  llm.Client
	roster *roster.Cache
	log    logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithModel sets the completion client.
func WithModel(c llm.Client) Option {
	return func(s *Service) {
		if c != nil {
			s.model = c
		}
	}
}

// WithRoster sets the expert roster cache.
func WithRoster(r *roster.Cache) Option {
	return func(s *Service) {
		if r != nil {
			s.roster = r
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// New constructs a Service.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Get().Named("app")
	}
	return s
}

// Phase1 runs clarity capture: one completion, parsed into a ClarityResult.
func (s *Service) Phase1(ctx context.Context, challenge string) (phase.ClarityResult, error) {
	raw, err := s.model.Complete(ctx, phase.ClarityPrompt(), challenge)
	if err != nil {
		return phase.ClarityResult{}, err
	}
	return phase.ParseClarity(raw)
}

// Phase2 runs team construction: reads the current roster, embeds the
// rendered pool into the instruction, and parses the nine-member board.
func (s *Service) Phase2(ctx context.Context, challenge, challengeType string) (phase.TeamResult, error) {
	pool := s.roster.Records(ctx)
	s.log.Debug(ctx, "building team prompt", logger.Int("pool_size", len(pool)))

	prompt := phase.TeamPrompt(challengeType, expert.RenderPool(pool))
	raw, err := s.model.Complete(ctx, prompt, challenge)
	if err != nil {
		return phase.TeamResult{}, err
	}
	return phase.ParseTeam(raw)
}

// Phase3 runs one interrogation round. Only member names feed the prompt;
// the caller tracks question progression across calls.
func (s *Service) Phase3(ctx context.Context, challenge string, team []phase.TeamMember) (phase.QuestionResult, error) {
	names := make([]string, len(team))
	for i, m := range team {
		names[i] = m.Name
	}

	raw, err := s.model.Complete(ctx, phase.InterrogationPrompt(names), challenge)
	if err != nil {
		return phase.QuestionResult{}, err
	}
	return phase.ParseQuestion(raw)
}

// Stats reports service-level gauges for the metrics updater.
func (s *Service) Stats() map[string]any {
	stats := map[string]any{}
	if s.roster != nil {
		stats["rosterSize"] = s.roster.Size()
		stats["rosterAgeSeconds"] = s.roster.Age().Seconds()
	}
	return stats
}
