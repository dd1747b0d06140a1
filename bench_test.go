// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package moona_test

import (
	"context"
	"testing"

	"github.com/katunilya/moona-sub000"
)

// discard is a Transport that accepts every event and never receives.
type discard struct{}

func (discard) Receive(context.Context) (moona.Event, error) { return moona.Event{}, errNoEvents }
func (discard) Send(context.Context, moona.Event) error       { return nil }

// BenchmarkCompose measures a four-step pipeline ending in a response.
func BenchmarkCompose(b *testing.B) {
	b.ReportAllocs()
	h := moona.Compose(moona.Get, moona.RouteIs("users"), moona.SetStatus(200), moona.SendBody([]byte("hi")))
	ctx := context.Background()
	for b.Loop() {
		moona.Run(ctx, discard{}, h(newContext("GET", "users")))
	}
}

// BenchmarkChoose measures routing to the last of four alternatives.
func BenchmarkChoose(b *testing.B) {
	b.ReportAllocs()
	h := moona.Choose(
		moona.Route("GET", "/a", moona.SendText("a")),
		moona.Route("GET", "/b", moona.SendText("b")),
		moona.Route("GET", "/c", moona.SendText("c")),
		moona.Route("GET", "/d", moona.SendText("d")),
	)
	ctx := context.Background()
	for b.Loop() {
		moona.Run(ctx, discard{}, h(newContext("GET", "/d")))
	}
}

// BenchmarkServePipe measures a full receive and respond cycle over a pipe.
func BenchmarkServePipe(b *testing.B) {
	skipRace(b)
	b.ReportAllocs()
	h := moona.Text(func(c *moona.Context, s string) moona.Flow {
		return moona.SendText(s)(c)
	})
	logger := quietLogger()
	ctx := context.Background()
	body := []byte("ping")
	for b.Loop() {
		server, client := moona.NewPipe()
		_ = client.Push(moona.BodyEvent(body, false))
		moona.Serve(ctx, server, scope("POST", "/"), h, moona.WithLogger(logger))
		client.Drain()
	}
}
