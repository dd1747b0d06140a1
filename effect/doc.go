// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package effect provides composable effect containers on
// [code.hybscloud.com/kont].
//
// Every container family has a good and a bad variant. Bind runs a
// function only on the good variant; Alter runs a function only on the
// bad variant. Containers are immutable values: each operation returns a
// new container and never changes the variant of its input.
//
// # Containers
//
//   - [Future]: a pending computation backed by [code.hybscloud.com/kont.Eff]. Run with [Await].
//   - [Result]: success or failure, backed by [code.hybscloud.com/kont.Either].
//   - [Maybe]: present value or absence.
//   - [State]: four tags, [Right], [Wrong], [Error] and [Final].
//
// # Sync and Async
//
// Each family has a synchronous form (BindResult, AlterMaybe, ...) and an
// asynchronous form over a pending container (BindResultAsync,
// AlterMaybeAsync, ...). A synchronous function is passed where an
// asynchronous one is expected with [Lift]; a synchronous container is
// made pending with [Resolve]:
//
//	r := effect.Ok[int, string](20)
//	double := func(n int) effect.Result[int, string] { return effect.Ok[int, string](n * 2) }
//	fr := effect.BindResultAsync(effect.Resolve(r), effect.Lift(double))
//	v := effect.MustAwait(fr) // Ok(40)
//
// # Running
//
// A Future suspends on kont effect operations ([Perform]). [Await] drives
// it on the calling goroutine and resolves each operation through a
// [Dispatcher]. Binding never runs eagerly.
package effect
