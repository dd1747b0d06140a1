// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package moona

import (
	"strings"

	"github.com/katunilya/moona-sub000/effect"
)

// EventKind tags an event exchanged with the transport.
type EventKind string

const (
	// EventRequestBody carries a chunk of the request body.
	// More reports whether further chunks follow.
	EventRequestBody EventKind = "http.request"
	// EventDisconnect signals that the client went away.
	EventDisconnect EventKind = "http.disconnect"
	// EventResponseStart carries the response status and headers.
	EventResponseStart EventKind = "http.response.start"
	// EventResponseBody carries the response body.
	EventResponseBody EventKind = "http.response.body"
)

// Event is one message at the transport boundary.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind    EventKind
	Status  int
	Headers Headers
	Payload []byte
	More    bool
}

// BodyEvent returns an inbound request body chunk.
func BodyEvent(payload []byte, more bool) Event {
	return Event{Kind: EventRequestBody, Payload: payload, More: more}
}

// DisconnectEvent returns an inbound disconnect.
func DisconnectEvent() Event {
	return Event{Kind: EventDisconnect}
}

// Header is a single name/value pair. Names are stored lowercased.
type Header struct {
	Name  string
	Value string
}

// Headers is an ordered header list. Duplicate names are preserved.
type Headers []Header

// NewHeaders builds Headers from alternating name, value arguments.
// A trailing name without a value is ignored.
func NewHeaders(kv ...string) Headers {
	h := make(Headers, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		h.Add(kv[i], kv[i+1])
	}
	return h
}

// Get returns the first value stored under name.
func (h Headers) Get(name string) effect.Maybe[string] {
	name = strings.ToLower(name)
	for _, hv := range h {
		if hv.Name == name {
			return effect.Some(hv.Value)
		}
	}
	return effect.None[string]()
}

// Values returns every value stored under name, in order.
func (h Headers) Values(name string) []string {
	name = strings.ToLower(name)
	var out []string
	for _, hv := range h {
		if hv.Name == name {
			out = append(out, hv.Value)
		}
	}
	return out
}

// Add appends a pair, keeping existing values for name.
func (h *Headers) Add(name, value string) {
	*h = append(*h, Header{Name: strings.ToLower(name), Value: value})
}

// Set replaces all values for name with value.
func (h *Headers) Set(name, value string) {
	h.Del(name)
	h.Add(name, value)
}

// Del removes all values for name.
func (h *Headers) Del(name string) {
	name = strings.ToLower(name)
	out := make(Headers, 0, len(*h))
	for _, hv := range *h {
		if hv.Name != name {
			out = append(out, hv)
		}
	}
	*h = out
}

// Clone returns an independent copy of h.
func (h Headers) Clone() Headers {
	if h == nil {
		return nil
	}
	out := make(Headers, len(h))
	copy(out, h)
	return out
}
