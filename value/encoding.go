// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "github.com/vmihailenco/msgpack/v4"

// EncodeMsgpack implements msgpack.CustomEncoder.
// A Rational is encoded as the array [num, den, mixed].
func (r Rational) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(3); err != nil {
		return err
	}
	if err := enc.EncodeInt(r.num); err != nil {
		return err
	}
	if err := enc.EncodeInt(r.Den()); err != nil {
		return err
	}
	return enc.EncodeBool(r.mixed)
}

// DecodeMsgpack implements msgpack.CustomDecoder. The decoded pair is
// normalized as by New, so a zero denominator is rejected.
func (r *Rational) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 3 {
		return Errorf("msgpack: rational has %d elements, want 3", n)
	}
	num, err := dec.DecodeInt64()
	if err != nil {
		return err
	}
	den, err := dec.DecodeInt64()
	if err != nil {
		return err
	}
	mixed, err := dec.DecodeBool()
	if err != nil {
		return err
	}
	v, err := New(num, den)
	if err != nil {
		return err
	}
	*r = v.SetMixed(mixed)
	return nil
}
