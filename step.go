// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package moona

import (
	"context"

	"code.hybscloud.com/kont"
)

// Step evaluates flow until the first transport suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step(flow Flow) (Result, *kont.Suspension[Result]) {
	return kont.Step(flow.Eff())
}

// Advance dispatches the suspended transport operation on tr once.
// DispatchTransport is non-blocking on a non-blocking transport such as
// Pipe: it returns iox.ErrWouldBlock when the peer has not made progress.
//
// On success (nil error), the suspension is consumed and the flow
// advances to the next suspension or completion.
// On error, the suspension is unconsumed and may be retried.
func Advance(ctx context.Context, tr Transport, susp *kont.Suspension[Result]) (Result, *kont.Suspension[Result], error) {
	top, ok := susp.Op().(transportOp)
	if !ok {
		panic("moona: unhandled effect in Advance")
	}
	v, err := top.DispatchTransport(ctx, tr)
	if err != nil {
		var zero Result
		return zero, susp, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}
