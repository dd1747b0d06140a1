// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package moona

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/katunilya/moona-sub000/effect"
)

// Outcome labels used in logs and the connections_total metric.
const (
	OutcomeCompleted    = "completed"
	OutcomeFailed       = "failed"
	OutcomeError        = "error"
	OutcomeDisconnected = "disconnected"
)

// Server runs a Handler once per connection.
type Server struct {
	handler Handler
	logger  *slog.Logger
	metrics *Metrics
	render  func(*Failure) Flow
	recover bool
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for outcome entries. Default slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithMetrics records connection metrics into m.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithFailureRenderer replaces RenderFailure as the mapper from a
// terminal failure to a response.
func WithFailureRenderer(r func(*Failure) Flow) Option {
	return func(s *Server) { s.render = r }
}

// WithRecovery converts handler panics into a 500 response and an
// error return instead of propagating them.
func WithRecovery(on bool) Option {
	return func(s *Server) { s.recover = on }
}

// WithConfig applies the serve section of cfg.
func WithConfig(cfg Config) Option {
	return func(s *Server) {
		s.recover = cfg.Serve.RecoverPanics
		s.render = FailureRenderer(cfg.Serve.FailureContentType)
	}
}

// NewServer returns a Server running h.
func NewServer(h Handler, opts ...Option) *Server {
	s := &Server{handler: h, render: RenderFailure}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Serve handles one connection described by scope over tr.
//
// A failure left at the end of the pipeline is rendered, and a response
// the handler did not send is sent, so the client always sees a complete
// response unless it disconnected. The returned Context is the one the
// pipeline finished with. Transport errors, and recovered panics, are
// returned.
func Serve(ctx context.Context, tr Transport, scope Scope, h Handler, opts ...Option) (*Context, error) {
	return NewServer(h, opts...).Serve(ctx, tr, scope)
}

// Serve handles one connection described by scope over tr.
func (s *Server) Serve(ctx context.Context, tr Transport, scope Scope) (*Context, error) {
	start := time.Now()
	c := NewContext(scope)
	if s.metrics != nil {
		tr = meteredTransport{Transport: tr, m: s.metrics}
	}

	st := s.run(ctx, tr, c)
	outcome := outcomeOf(st.Tag())
	elapsed := time.Since(start)
	s.metrics.observe(outcome, elapsed)
	s.log(ctx, st, outcome, elapsed)

	return st.Value().c, st.Err()
}

// exchange is the value threaded through the outcome State.
type exchange struct {
	c       *Context
	failure *Failure
}

func (s *Server) run(ctx context.Context, tr Transport, c *Context) (st effect.State[exchange]) {
	if s.recover {
		defer func() {
			if p := recover(); p != nil {
				err := errors.Errorf("moona: handler panic: %v", p)
				f := &Failure{Context: c, Status: http.StatusInternalServerError, Err: err}
				_, _ = Run(ctx, tr, s.render(f))
				st = effect.ErrorOf(exchange{c: c, failure: f}, err)
			}
		}()
	}
	st, err := effect.Await(ctx, NewDispatcher(tr), s.pipeline(c))
	if err != nil {
		return effect.ErrorOf(exchange{c: c}, err)
	}
	return st
}

// pipeline classifies the handler result, renders a failure and
// completes a response left unsent.
func (s *Server) pipeline(c *Context) effect.Future[effect.State[exchange]] {
	classified := effect.MapFuture(s.handler(c), func(r Result) effect.State[exchange] {
		return effect.MatchResult(r,
			func(v *Context) effect.State[exchange] {
				if disconnected(v) {
					return effect.FinalOf(exchange{c: v})
				}
				return effect.RightOf(exchange{c: v})
			},
			func(f *Failure) effect.State[exchange] {
				x := exchange{c: f.Context, failure: f}
				if x.c == nil {
					x.c = c
					f.Context = c
				}
				if disconnected(x.c) {
					return effect.FinalOf(x)
				}
				return effect.WrongOf(x)
			},
		)
	})
	rendered := effect.AlterStateAsync(classified, func(x exchange, _ error) effect.Future[effect.State[exchange]] {
		return effect.MapFuture(s.render(x.failure), func(r Result) effect.State[exchange] {
			if f, ok := r.Error(); ok {
				return effect.ErrorOf(x, f)
			}
			return effect.WrongOf(x)
		})
	})
	return effect.BindStateAsync(rendered, func(x exchange) effect.Future[effect.State[exchange]] {
		return effect.MapFuture(SendResponse(x.c), func(Result) effect.State[exchange] {
			return effect.RightOf(x)
		})
	})
}

func (s *Server) log(ctx context.Context, st effect.State[exchange], outcome string, d time.Duration) {
	x := st.Value()
	attrs := []slog.Attr{
		slog.String("conn_id", x.c.id),
		slog.String("method", x.c.Request.Method),
		slog.String("path", x.c.Request.Path),
		slog.Int("status", x.c.Response.Status),
		slog.String("outcome", outcome),
		slog.Duration("duration", d),
	}
	switch st.Tag() {
	case effect.Error:
		attrs = append(attrs, slog.String("error", st.Err().Error()))
		s.logger.LogAttrs(ctx, slog.LevelError, "connection error", attrs...)
	case effect.Wrong:
		attrs = append(attrs, slog.String("error", x.failure.Message))
		s.logger.LogAttrs(ctx, slog.LevelWarn, "connection failed", attrs...)
	default:
		s.logger.LogAttrs(ctx, slog.LevelInfo, "connection "+outcome, attrs...)
	}
}

func disconnected(c *Context) bool {
	return c.closed && !c.started
}

func outcomeOf(t effect.Tag) string {
	switch t {
	case effect.Right:
		return OutcomeCompleted
	case effect.Wrong:
		return OutcomeFailed
	case effect.Final:
		return OutcomeDisconnected
	default:
		return OutcomeError
	}
}
