// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/katunilya/moona-sub000/effect"
)

func double(n int) effect.Result[int, string] { return effect.Ok[int, string](n * 2) }

func doubleAsync(n int) effect.Future[effect.Result[int, string]] {
	return effect.Resolve(effect.Ok[int, string](n * 2))
}

func TestResultAccessors(t *testing.T) {
	ok := effect.Ok[int, string](1)
	if !ok.IsOk() || ok.IsErr() {
		t.Fatal("Ok: wrong variant")
	}
	if v, _ := ok.Value(); v != 1 {
		t.Fatalf("got %d, want 1", v)
	}
	if _, has := ok.Error(); has {
		t.Fatal("Ok: unexpected error")
	}

	bad := effect.Err[int]("bad")
	if !bad.IsErr() {
		t.Fatal("Err: wrong variant")
	}
	if e, _ := bad.Error(); e != "bad" {
		t.Fatalf("got %q, want %q", e, "bad")
	}
	if !bad.Either().IsLeft() {
		t.Fatal("Err: either should be Left")
	}
}

func TestBindResultIdentity(t *testing.T) {
	r := effect.Ok[int, string](5)
	got := effect.BindResult(r, effect.Ok[int, string])
	if got != r {
		t.Fatalf("got %v, want %v", got, r)
	}
}

func TestBindResultSkipsFailure(t *testing.T) {
	calls := 0
	f := func(n int) effect.Result[int, string] {
		calls++
		return effect.Ok[int, string](n)
	}
	r := effect.Err[int]("nope")
	if got := effect.BindResult(r, f); got != r {
		t.Fatalf("got %v, want %v", got, r)
	}
	fr := effect.BindResultAsync(effect.Resolve(r), func(n int) effect.Future[effect.Result[int, string]] {
		calls++
		return effect.Resolve(effect.Ok[int, string](n))
	})
	if got := effect.MustAwait(fr); got != r {
		t.Fatalf("async got %v, want %v", got, r)
	}
	if calls != 0 {
		t.Fatalf("bound function ran %d times on failure", calls)
	}
}

// TestBindResultCombinations covers sync/async bound function against
// sync/async outer container.
func TestBindResultCombinations(t *testing.T) {
	want := effect.Ok[int, string](42)

	// sync outer, sync f
	if got := effect.BindResult(effect.Ok[int, string](21), double); got != want {
		t.Fatalf("sync/sync got %v, want %v", got, want)
	}
	// sync outer, async f
	got := effect.MustAwait(effect.BindResultAsync(effect.Resolve(effect.Ok[int, string](21)), doubleAsync))
	if got != want {
		t.Fatalf("sync/async got %v, want %v", got, want)
	}
	// async outer, sync f
	pending := effect.MapFuture(effect.Resolve(20), func(n int) effect.Result[int, string] {
		return effect.Ok[int, string](n + 1)
	})
	got = effect.MustAwait(effect.BindResultAsync(pending, effect.Lift(double)))
	if got != want {
		t.Fatalf("async/sync got %v, want %v", got, want)
	}
	// async outer, async f
	got = effect.MustAwait(effect.BindResultAsync(pending, doubleAsync))
	if got != want {
		t.Fatalf("async/async got %v, want %v", got, want)
	}
}

func TestAsyncOuterWithDispatch(t *testing.T) {
	pending := effect.MapFuture(effect.Perform(ask{}), effect.Ok[int, string])
	fr := effect.BindResultAsync(pending, doubleAsync)
	got, err := effect.Await(context.Background(), &counter{}, fr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := got.Value(); v != 2 {
		t.Fatalf("got %d, want 2", v)
	}
}

func TestMapResult(t *testing.T) {
	r := effect.MapResult(effect.Ok[int, string](7), strconv.Itoa)
	if v, _ := r.Value(); v != "7" {
		t.Fatalf("got %q, want %q", v, "7")
	}
	e := effect.MapResult(effect.Err[int]("x"), strconv.Itoa)
	if msg, _ := e.Error(); msg != "x" {
		t.Fatalf("got %q, want %q", msg, "x")
	}
}

func TestAlterResult(t *testing.T) {
	rescue := func(e string) effect.Result[int, int] { return effect.Ok[int, int](len(e)) }
	got := effect.AlterResult(effect.Err[int]("four"), rescue)
	if v, _ := got.Value(); v != 4 {
		t.Fatalf("got %d, want 4", v)
	}

	calls := 0
	untouched := effect.AlterResult(effect.Ok[int, string](9), func(e string) effect.Result[int, int] {
		calls++
		return effect.Err[int](0)
	})
	if v, _ := untouched.Value(); v != 9 || calls != 0 {
		t.Fatalf("got (%d, %d calls), want (9, 0 calls)", v, calls)
	}
}

func TestAlterResultAsync(t *testing.T) {
	fr := effect.AlterResultAsync(effect.Resolve(effect.Err[int]("e")), func(e string) effect.Future[effect.Result[int, string]] {
		return effect.Resolve(effect.Ok[int, string](len(e)))
	})
	if v, _ := effect.MustAwait(fr).Value(); v != 1 {
		t.Fatalf("got %d, want 1", v)
	}
	pass := effect.AlterResultAsync(effect.Resolve(effect.Ok[int, string](3)), func(string) effect.Future[effect.Result[int, string]] {
		t.Fatal("alter ran on success")
		return effect.Future[effect.Result[int, string]]{}
	})
	if v, _ := effect.MustAwait(pass).Value(); v != 3 {
		t.Fatalf("got %d, want 3", v)
	}
}

func TestMapErr(t *testing.T) {
	r := effect.MapErr(effect.Err[int]("abc"), func(e string) int { return len(e) })
	if e, _ := r.Error(); e != 3 {
		t.Fatalf("got %d, want 3", e)
	}
}

func TestMatchResult(t *testing.T) {
	show := func(r effect.Result[int, string]) string {
		return effect.MatchResult(r, strconv.Itoa, func(e string) string { return "err:" + e })
	}
	if got := show(effect.Ok[int, string](1)); got != "1" {
		t.Fatalf("got %q, want %q", got, "1")
	}
	if got := show(effect.Err[int]("x")); got != "err:x" {
		t.Fatalf("got %q, want %q", got, "err:x")
	}
}

func TestComposeResult(t *testing.T) {
	identity := effect.ComposeResult[int, string]()
	if got := identity(3); got != effect.Ok[int, string](3) {
		t.Fatalf("identity got %v", got)
	}

	calls := 0
	fail := func(int) effect.Result[int, string] { return effect.Err[int]("stop") }
	after := func(n int) effect.Result[int, string] {
		calls++
		return effect.Ok[int, string](n)
	}
	got := effect.ComposeResult(double, fail, after)(1)
	if e, _ := got.Error(); e != "stop" {
		t.Fatalf("got %v, want Err(stop)", got)
	}
	if calls != 0 {
		t.Fatalf("step after failure ran %d times", calls)
	}
}

func TestComposeResultAsync(t *testing.T) {
	f := effect.ComposeResultAsync(doubleAsync, doubleAsync, effect.Lift(double))
	if v, _ := effect.MustAwait(f(1)).Value(); v != 8 {
		t.Fatalf("got %d, want 8", v)
	}
	if got := effect.MustAwait(effect.ComposeResultAsync[int, string]()(5)); got != effect.Ok[int, string](5) {
		t.Fatalf("identity got %v", got)
	}
}
