// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package moona

import (
	"context"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
	"github.com/pkg/errors"

	"github.com/katunilya/moona-sub000/effect"
)

// Transport is the connection boundary supplied by the hosting runtime.
//
// Receive yields the next inbound event; it is called repeatedly until a
// final body chunk or a disconnect is seen. Send transmits one outbound
// event. Either may return iox.ErrWouldBlock when the runtime cannot make
// progress yet; the call is then retried with adaptive backoff.
type Transport interface {
	Receive(ctx context.Context) (Event, error)
	Send(ctx context.Context, ev Event) error
}

// TransportFuncs adapts a pair of injected functions to a Transport.
type TransportFuncs struct {
	ReceiveFunc func(ctx context.Context) (Event, error)
	SendFunc    func(ctx context.Context, ev Event) error
}

// Receive calls t.ReceiveFunc(ctx).
func (t TransportFuncs) Receive(ctx context.Context) (Event, error) {
	return t.ReceiveFunc(ctx)
}

// Send calls t.SendFunc(ctx, ev).
func (t TransportFuncs) Send(ctx context.Context, ev Event) error {
	return t.SendFunc(ctx, ev)
}

// Receive is the effect operation for reading the next inbound event.
// Perform(Receive{}) suspends until the transport yields an event.
type Receive struct {
	kont.Phantom[Event]
}

// DispatchTransport handles Receive on tr.
func (Receive) DispatchTransport(ctx context.Context, tr Transport) (kont.Resumed, error) {
	ev, err := tr.Receive(ctx)
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// Send is the effect operation for transmitting an outbound event.
// Perform(Send{Event: ev}) suspends until the transport accepts ev.
type Send struct {
	kont.Phantom[struct{}]
	Event Event
}

// DispatchTransport handles Send on tr.
func (s Send) DispatchTransport(ctx context.Context, tr Transport) (kont.Resumed, error) {
	if err := tr.Send(ctx, s.Event); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}

// transportOp is the structural interface for transport operations.
// DispatchTransport may return iox.ErrWouldBlock.
type transportOp interface {
	DispatchTransport(ctx context.Context, tr Transport) (kont.Resumed, error)
}

// transportDispatcher implements effect.Dispatcher over a Transport.
type transportDispatcher struct {
	tr Transport
}

// NewDispatcher returns an effect.Dispatcher that resolves Receive and
// Send operations on tr.
func NewDispatcher(tr Transport) effect.Dispatcher {
	return transportDispatcher{tr: tr}
}

// Dispatch implements effect.Dispatcher via structural interface assertion.
// Waits past the iox.ErrWouldBlock boundary with adaptive backoff until
// the operation completes or ctx is done.
func (d transportDispatcher) Dispatch(ctx context.Context, op kont.Operation) (kont.Resumed, error) {
	top, ok := op.(transportOp)
	if !ok {
		panic("moona: unhandled effect in transportDispatcher")
	}
	var bo iox.Backoff
	for {
		v, err := top.DispatchTransport(ctx, d.tr)
		if err == nil {
			return v, nil
		}
		if !iox.IsWouldBlock(err) {
			return nil, errors.Wrap(err, opName(op))
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		bo.Wait()
	}
}

func opName(op kont.Operation) string {
	switch op.(type) {
	case Receive:
		return "receive"
	case Send:
		return "send"
	default:
		return "transport"
	}
}

// Run drives flow to completion on tr. Transport errors abort the run and
// are returned; control failures are part of the returned Result.
func Run(ctx context.Context, tr Transport, flow Flow) (Result, error) {
	return effect.Await(ctx, NewDispatcher(tr), flow)
}
