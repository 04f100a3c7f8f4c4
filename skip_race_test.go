// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package own_test

// stressCycles is lowered under the race detector, which slows every
// atomic operation by an order of magnitude.
const stressCycles = 20_000
