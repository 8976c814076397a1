// SPDX-License-Identifier: MIT
// Package: lvknot/engine
//
// options.go - functional options for New.
//
// Contract:
//   • Option constructors panic on nil; the engine itself never panics on
//     diagram input.
//   • Defaults: a no-op logger and metrics that are not registered anywhere.

package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option customizes an Engine.
type Option func(*config)

type config struct {
	logger     *zap.Logger
	registerer prometheus.Registerer
}

func defaultConfig() config {
	return config{logger: zap.NewNop()}
}

func newConfig(opts ...Option) config {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// WithLogger sets the logger stage transitions and outcomes are written to.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("engine: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithRegisterer registers the engine metrics on r.
func WithRegisterer(r prometheus.Registerer) Option {
	if r == nil {
		panic("engine: WithRegisterer(nil)")
	}
	return func(c *config) { c.registerer = r }
}
