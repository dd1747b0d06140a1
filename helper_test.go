// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package moona_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katunilya/moona-sub000"
)

var errNoEvents = errors.New("recorder: no more events")

// recorder is a scripted Transport. Receive yields in order and fails
// once exhausted; Send records every event.
type recorder struct {
	in       []moona.Event
	sent     []moona.Event
	receives int
}

func newRecorder(in ...moona.Event) *recorder {
	return &recorder{in: in}
}

func (r *recorder) Receive(context.Context) (moona.Event, error) {
	r.receives++
	if len(r.in) == 0 {
		return moona.Event{}, errNoEvents
	}
	ev := r.in[0]
	r.in = r.in[1:]
	return ev, nil
}

func (r *recorder) Send(_ context.Context, ev moona.Event) error {
	r.sent = append(r.sent, ev)
	return nil
}

func (r *recorder) kinds() []moona.EventKind {
	out := make([]moona.EventKind, len(r.sent))
	for i, ev := range r.sent {
		out[i] = ev.Kind
	}
	return out
}

func newContext(method, path string) *moona.Context {
	return moona.NewContext(moona.Scope{
		Type:        "http",
		HTTPVersion: "1.1",
		Scheme:      "http",
		Method:      method,
		Path:        path,
	})
}

// run awaits h on c over tr and fails the test on a transport error.
func run(t *testing.T, tr moona.Transport, h moona.Handler, c *moona.Context) moona.Result {
	t.Helper()
	r, err := moona.Run(context.Background(), tr, h(c))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return r
}

func mustOk(t *testing.T, r moona.Result) *moona.Context {
	t.Helper()
	c, ok := r.Value()
	if !ok {
		f, _ := r.Error()
		t.Fatalf("got failure %v, want success", f)
	}
	return c
}

func mustFail(t *testing.T, r moona.Result) *moona.Failure {
	t.Helper()
	f, ok := r.Error()
	if !ok {
		t.Fatal("got success, want failure")
	}
	return f
}

// execFlow drives flow to completion on tr via the Step+Advance loop.
// Retries on iox.ErrWouldBlock (peer not ready yet).
func execFlow(tr moona.Transport, flow moona.Flow) moona.Result {
	result, susp := moona.Step(flow)
	for susp != nil {
		var err error
		result, susp, err = moona.Advance(context.Background(), tr, susp)
		if err != nil {
			continue
		}
	}
	return result
}

func equalKinds(got []moona.EventKind, want ...moona.EventKind) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
