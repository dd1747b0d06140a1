// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package moona

import "github.com/katunilya/moona-sub000/effect"

// ReceiveBody reads the request body into c.Request.Body.
//
// Body chunks are accumulated until one arrives with More unset. A
// disconnect closes c and leaves the body unreceived. No-op when c is
// already received or closed.
func ReceiveBody(c *Context) Flow {
	return lazy(func() Flow {
		if c.closed || c.received {
			return Done(c)
		}
		return receiveLoop(c, []byte{})
	})
}

func receiveLoop(c *Context, buf []byte) Flow {
	return effect.BindFuture(effect.Perform(Receive{}), func(ev Event) Flow {
		switch ev.Kind {
		case EventRequestBody:
			buf = append(buf, ev.Payload...)
			if !ev.More {
				c.Request.Body = buf
				c.received = true
				return Done(c)
			}
		case EventDisconnect:
			c.closed = true
			return Done(c)
		}
		return receiveLoop(c, buf)
	})
}

// StartResponse sends the response status and headers.
// No-op when c is already started or closed.
func StartResponse(c *Context) Flow {
	return lazy(func() Flow {
		if c.closed || c.started {
			return Done(c)
		}
		ev := Event{
			Kind:    EventResponseStart,
			Status:  c.Response.Status,
			Headers: c.Response.Headers.Clone(),
		}
		return effect.BindFuture(effect.Perform(Send{Event: ev}), func(struct{}) Flow {
			c.started = true
			return Done(c)
		})
	})
}

// SendResponse sends the response body, starting the response first if
// needed, and closes c. No-op when c is already closed.
func SendResponse(c *Context) Flow {
	return lazy(func() Flow {
		if c.closed {
			return Done(c)
		}
		return Apply(sendBody, StartResponse(c))
	})
}

func sendBody(c *Context) Flow {
	if c.closed {
		return Done(c)
	}
	payload := c.Response.Body
	if payload == nil {
		payload = []byte{}
	}
	ev := Event{Kind: EventResponseBody, Payload: payload}
	return effect.BindFuture(effect.Perform(Send{Event: ev}), func(struct{}) Flow {
		c.closed = true
		return Done(c)
	})
}

// lazy defers f until the returned Flow runs, so state checks see the
// Context as it is at that point.
func lazy(f func() Flow) Flow {
	return effect.BindFuture(effect.Resolve(struct{}{}), func(struct{}) Flow {
		return f()
	})
}
