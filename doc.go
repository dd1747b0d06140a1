// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package moona builds request-handling pipelines over a duplex event
// transport, with effects from [github.com/katunilya/moona-sub000/effect].
//
// A pipeline is a [Handler]: a function from a [Context] to a [Flow], a
// pending success or control [Failure]. Handlers are chained with
// [Compose] and tried as alternatives with [Choose].
//
// # Architecture
//
//   - Transport: [Transport] yields inbound [Event] values and accepts outbound ones. [NewPipe] creates an in-memory pair over lock-free SPSC queues from [code.hybscloud.com/lfq].
//   - Suspension: [Receive] and [Send] are effect operations on [code.hybscloud.com/kont]; they are the only points where a pipeline waits.
//   - Non-blocking: transports may return [code.hybscloud.com/iox.ErrWouldBlock]; [Run] and [Serve] wait past it with adaptive backoff.
//   - Protocol: [ReceiveBody], [StartResponse] and [SendResponse] drive the connection state machine and are idempotent.
//   - Errors: control failures are values, a disconnect is [Context.Closed], and transport errors surface from [Run] and [Serve].
//
// # Integration
//
//   - Serving: [Serve] runs one connection, renders a terminal failure with [RenderFailure], logs the outcome with log/slog and records [Metrics].
//   - Stepping: [Step] and [Advance] evaluate a flow one transport operation at a time, for embedding into an event loop.
//   - Configuration: [LoadConfig] and [ParseConfig] read YAML.
//
// # Example
//
//	h := moona.Compose(
//		moona.Get,
//		moona.RouteIs("users"),
//		moona.SetStatus(200),
//		moona.SendBody([]byte("hi")),
//	)
//	c, err := moona.Serve(ctx, tr, scope, h)
package moona
