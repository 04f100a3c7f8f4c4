// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

// Share moves the resource held by u, along with its deleter, into a
// new Shared with a use count of one. u is left empty.
func Share[T any](u *Unique[T]) *Shared[T] {
	if u.ptr == nil {
		return &Shared[T]{}
	}
	del := u.del
	if del == nil {
		del = DefaultDeleter[T]
	}
	c := newControl(u.ptr, del)
	s := &Shared[T]{ptr: u.ptr, ctl: c}
	u.ptr = nil
	return s
}

// TryUnwrap converts s back into exclusive ownership when s is the only
// owner. On success the returned Unique holds the resource and its
// deleter, and s is empty. While other owners exist it returns
// [ErrWouldBlock] and leaves s unchanged. An empty s yields an empty
// Unique.
//
// TryUnwrap never waits. Callers that need to wait retry on
// iox.IsWouldBlock with their own backoff.
func (s *Shared[T]) TryUnwrap() (*Unique[T], error) {
	c := s.ctl
	if c == nil {
		return &Unique[T]{}, nil
	}
	if !c.refs.CompareAndSwap(1, 0) {
		return nil, ErrWouldBlock
	}
	u := &Unique[T]{ptr: c.ptr, del: c.del}
	c.ptr, c.del = nil, nil
	s.ptr, s.ctl = nil, nil
	return u, nil
}
