// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package moona

import (
	"net/http"

	"github.com/google/uuid"
)

// Addr is a host and port pair.
type Addr struct {
	Host string
	Port int
}

// Scope is the immutable metadata of one connection, supplied by the
// hosting runtime before any event is exchanged.
type Scope struct {
	Type        string
	HTTPVersion string
	Scheme      string
	Method      string
	Path        string
	Query       string
	Headers     Headers
	Client      Addr
	Server      Addr
}

// Request is the inbound half of a Context.
//
// Body is nil until ReceiveBody completes; a received empty body is a
// non-nil empty slice.
type Request struct {
	Method  string
	Path    string
	Query   string
	Headers Headers
	Body    []byte
}

// Response is the outbound half of a Context.
type Response struct {
	Status  int
	Headers Headers
	Body    []byte
}

// Context is the per-connection state threaded through a handler
// pipeline. It is owned by exactly one handling task.
//
// The protocol flags only ever move from false to true.
type Context struct {
	id    string
	scope Scope

	Request  Request
	Response Response

	received bool
	started  bool
	closed   bool

	// passed marks a Context returned by a Choose in which no
	// alternative matched.
	passed bool
}

// NewContext returns a fresh Context for scope with a new connection ID
// and a 200 response status.
func NewContext(scope Scope) *Context {
	return &Context{
		id:    uuid.NewString(),
		scope: scope,
		Request: Request{
			Method:  scope.Method,
			Path:    scope.Path,
			Query:   scope.Query,
			Headers: clip(scope.Headers),
		},
		Response: Response{Status: http.StatusOK},
	}
}

// ID returns the connection identifier.
func (c *Context) ID() string { return c.id }

// Scope returns the connection metadata.
func (c *Context) Scope() Scope { return c.scope }

// Received reports whether the full request body has been read.
func (c *Context) Received() bool { return c.received }

// Started reports whether the response start event has been sent.
func (c *Context) Started() bool { return c.started }

// Closed reports whether the response is complete or the client went away.
func (c *Context) Closed() bool { return c.closed }

// Copy returns a Context that can be mutated without affecting c.
// Response headers and body are duplicated; request fields are shared
// and clipped so appends on either side reallocate.
func (c *Context) Copy() *Context {
	d := *c
	d.Request.Headers = clip(c.Request.Headers)
	d.Request.Body = clip(c.Request.Body)
	d.Response.Headers = c.Response.Headers.Clone()
	if c.Response.Body != nil {
		d.Response.Body = append([]byte{}, c.Response.Body...)
	}
	d.passed = false
	return &d
}

func clip[S ~[]E, E any](s S) S {
	return s[:len(s):len(s)]
}
