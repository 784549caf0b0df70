package llm

import "github.com/boardroom-ai/boardroom/pkg/logger"

// Option applies a configuration option to the Gateway.
type Option func(*Gateway)

// WithModel overrides the default model identifier.
func WithModel(model string) Option {
	return func(g *Gateway) {
		if model != "" {
			g.model = model
		}
	}
}

// WithMaxTokens overrides the completion token ceiling.
func WithMaxTokens(n int) Option {
	return func(g *Gateway) {
		if n > 0 {
			g.maxTokens = n
		}
	}
}

// WithBaseURL points the gateway at a different API endpoint, e.g. a local
// stand-in server in tests.
func WithBaseURL(url string) Option {
	return func(g *Gateway) {
		if url != "" {
			g.baseURL = url
		}
	}
}

// WithLogger sets a custom logger for the gateway.
func WithLogger(l logger.Logger) Option {
	return func(g *Gateway) {
		if l != nil {
			g.log = l
		}
	}
}
