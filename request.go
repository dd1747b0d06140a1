// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package moona

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/katunilya/moona-sub000/effect"
)

// MethodIs passes when the request method equals method.
func MethodIs(method string) Handler {
	return func(c *Context) Flow {
		if c.Request.Method != method {
			return Failf(c, http.StatusMethodNotAllowed, "expected method %s, got %s", method, c.Request.Method)
		}
		return Done(c)
	}
}

// Get passes GET requests.
func Get(c *Context) Flow { return MethodIs(http.MethodGet)(c) }

// Post passes POST requests.
func Post(c *Context) Flow { return MethodIs(http.MethodPost)(c) }

// Put passes PUT requests.
func Put(c *Context) Flow { return MethodIs(http.MethodPut)(c) }

// Patch passes PATCH requests.
func Patch(c *Context) Flow { return MethodIs(http.MethodPatch)(c) }

// Delete passes DELETE requests.
func Delete(c *Context) Flow { return MethodIs(http.MethodDelete)(c) }

// RouteIs passes when the request path equals path.
// Leading and trailing slashes are ignored on both sides.
func RouteIs(path string) Handler {
	want := normPath(path)
	return func(c *Context) Flow {
		if got := normPath(c.Request.Path); got != want {
			return Failf(c, http.StatusNotFound, "expected path %s, got %s", want, got)
		}
		return Done(c)
	}
}

// RoutePrefix passes when the request path lies under prefix,
// matching whole segments only.
func RoutePrefix(prefix string) Handler {
	want := normPath(prefix)
	return func(c *Context) Flow {
		got := normPath(c.Request.Path)
		if want != "/" && got != want && !strings.HasPrefix(got, want+"/") {
			return Failf(c, http.StatusNotFound, "expected path under %s, got %s", want, got)
		}
		return Done(c)
	}
}

// HeaderIs passes when the first request header name has value.
func HeaderIs(name, value string) Handler {
	return func(c *Context) Flow {
		got, ok := c.Request.Headers.Get(name).Get()
		if !ok || got != value {
			return Failf(c, http.StatusBadRequest, "expected header %s: %s", strings.ToLower(name), value)
		}
		return Done(c)
	}
}

// TypeIs passes when the connection protocol type is typ.
func TypeIs(typ string) Handler {
	return func(c *Context) Flow {
		if c.scope.Type != typ {
			return Failf(c, http.StatusBadRequest, "expected connection type %s, got %s", typ, c.scope.Type)
		}
		return Done(c)
	}
}

// Route passes requests for method and path, then runs hs.
func Route(method, path string, hs ...Handler) Handler {
	return Compose(append([]Handler{MethodIs(method), RouteIs(path)}, hs...)...)
}

// NotFound always fails with 404. It is the usual last alternative of a
// Choose that routes.
func NotFound() Handler {
	return func(c *Context) Flow {
		return Failf(c, http.StatusNotFound, "no route for %s %s", c.Request.Method, normPath(c.Request.Path))
	}
}

// Text receives the request body and passes it to f as a string.
func Text(f func(*Context, string) Flow) Handler {
	return func(c *Context) Flow {
		return Apply(func(c *Context) Flow {
			if !c.received {
				return Fail(c, http.StatusBadRequest, "request body not received")
			}
			return f(c, string(c.Request.Body))
		}, ReceiveBody(c))
	}
}

// JSON receives the request body and decodes it into a T for f.
// A body that does not decode fails with 400.
func JSON[T any](f func(*Context, T) Flow) Handler {
	return func(c *Context) Flow {
		return Apply(func(c *Context) Flow {
			if !c.received {
				return Fail(c, http.StatusBadRequest, "request body not received")
			}
			var v T
			if err := json.Unmarshal(c.Request.Body, &v); err != nil {
				return FailWith(c, http.StatusBadRequest, errors.Wrap(err, "decode json body"))
			}
			return f(c, v)
		}, ReceiveBody(c))
	}
}

// Header returns the first request header value stored under name.
func (c *Context) Header(name string) effect.Maybe[string] {
	return c.Request.Headers.Get(name)
}

func normPath(p string) string {
	return "/" + strings.Trim(p, "/")
}
