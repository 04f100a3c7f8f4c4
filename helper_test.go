// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own_test

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/own"
)

// something is a non-trivial pointee with a method.
type something struct {
	n int
}

func (s *something) returnZero() int { return 0 }

// closer counts how many times it has been closed.
type closer struct {
	id     int
	closes atomix.Int32
}

func (c *closer) Close() error {
	c.closes.Add(1)
	return nil
}

// tracker records deleter invocations.
type tracker struct {
	calls atomix.Int64
}

// deleter returns a Deleter that counts its calls on tr.
func deleter[T any](tr *tracker) own.Deleter[T] {
	return func(*T) error {
		tr.calls.Add(1)
		return nil
	}
}

// must unwraps the (handle, error) pair returned by MoveFrom and
// CopyFrom so assignments can be chained inline.
func must[H any](h H, err error) H {
	if err != nil {
		panic(err)
	}
	return h
}

// unwrapWait retries TryUnwrap until s is the sole owner.
// Retries on iox.ErrWouldBlock (other owners still alive).
func unwrapWait[T any](s *own.Shared[T]) *own.Unique[T] {
	var bo iox.Backoff
	for {
		u, err := s.TryUnwrap()
		if err == nil {
			return u
		}
		if !iox.IsWouldBlock(err) {
			panic(err)
		}
		bo.Wait()
	}
}

func ptr[T any](v T) *T { return &v }
