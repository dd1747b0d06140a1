// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package moona

import (
	"fmt"

	"github.com/katunilya/moona-sub000/effect"
)

// Result is the outcome of a handler: the Context on success, or a
// control Failure.
type Result = effect.Result[*Context, *Failure]

// Flow is a pending Result. It runs only when awaited.
type Flow = effect.Future[Result]

// Handler is one step of a request pipeline.
type Handler func(*Context) Flow

// Done returns a successful Flow carrying c.
func Done(c *Context) Flow {
	c.passed = false
	return effect.Resolve(effect.Ok[*Context, *Failure](c))
}

// Fail returns a failed Flow carrying c and a diagnostic message.
func Fail(c *Context, status int, msg string) Flow {
	return effect.Resolve(effect.Err[*Context](&Failure{Context: c, Status: status, Message: msg}))
}

// Failf is Fail with a formatted message.
func Failf(c *Context, status int, format string, args ...any) Flow {
	return Fail(c, status, fmt.Sprintf(format, args...))
}

// FailWith returns a failed Flow caused by err.
func FailWith(c *Context, status int, err error) Flow {
	return effect.Resolve(effect.Err[*Context](&Failure{Context: c, Status: status, Message: err.Error(), Err: err}))
}

// Compose chains handlers left to right. The first failure skips every
// remaining handler. Compose() is the identity.
func Compose(hs ...Handler) Handler {
	fs := make([]func(*Context) Flow, len(hs))
	for i, h := range hs {
		fs[i] = func(c *Context) Flow {
			c.passed = false
			return h(c)
		}
	}
	run := effect.ComposeResultAsync(fs...)
	return func(c *Context) Flow {
		return effect.MapFuture(run(c), settle)
	}
}

// Choose tries handlers in order, each on its own copy of the Context.
// The first success is committed as is. When every alternative fails, or
// none is given, the original Context is passed through as success.
//
// A nested Choose that passed through counts as no match, so grouping
// alternatives does not change which one wins.
func Choose(hs ...Handler) Handler {
	return func(c *Context) Flow {
		return choose(c, hs)
	}
}

func choose(c *Context, hs []Handler) Flow {
	if len(hs) == 0 {
		c.passed = true
		return effect.Resolve(effect.Ok[*Context, *Failure](c))
	}
	trial := c.Copy()
	return effect.BindFuture(hs[0](trial), func(r Result) Flow {
		if v, ok := r.Value(); ok && !v.passed {
			return effect.Resolve(r)
		}
		c.absorb(trial)
		return choose(c, hs[1:])
	})
}

// absorb carries the transport progress of a discarded trial into c.
// Events already exchanged cannot be taken back.
func (c *Context) absorb(t *Context) {
	if t.received && !c.received {
		c.Request.Body = t.Request.Body
		c.received = true
	}
	c.started = c.started || t.started
	c.closed = c.closed || t.closed
}

// Apply runs h on the success of flow.
func Apply(h Handler, flow Flow) Flow {
	return effect.BindResultAsync[*Context, *Context, *Failure](flow, h)
}

// Recover runs h and maps its failure through onFail.
func Recover(h Handler, onFail func(*Failure) Flow) Handler {
	return func(c *Context) Flow {
		return effect.AlterResultAsync(h(c), onFail)
	}
}

func settle(r Result) Result {
	if c, ok := r.Value(); ok {
		c.passed = false
	}
	return r
}
