// Package bitvec provides an embeddable bit-vector engine for Go.
//
// Bitvec models sets of non-negative integers as dense bit vectors with
// an implicit tail, so the complement of a finite set is a first-class
// value: "all integers except these" costs the same handful of words as
// the finite set itself. Every operation keeps values canonical, so
// structural equality and set equality always coincide.
//
// # Quick Start
//
//	b := bitvec.New().Set(1).Set(3)        // {1, 3}
//	fmt.Println(b)                         // "1010"
//	n, _ := b.Cardinality()                // 2
//
//	odd, _ := bitvec.Parse("1010")
//	mask := odd.Not()                      // indefinite: everything but {1, 3}
//	fmt.Println(mask.IsFinite())           // false
//	fmt.Println(mask)                      // "~1010"
//
// # Finite and Indefinite Sets
//
// A BitSet is finite when its tail is zero and indefinite (co-finite)
// when its tail is all ones. The algebra is closed over both kinds:
//
//	a, _ := bitvec.Parse("1100")
//	b, _ := bitvec.Parse("~1010")
//	u := a.Or(b)                           // indefinite union
//	i := a.And(b)                          // finite intersection
//
// Queries that only make sense on finite sets (Cardinality, Msb, ToArray,
// Iterator, ToBytes, ToBigInt, ToRoaring) report ErrIndefinite instead of
// looping or lying.
//
// # Mutation and Chaining
//
// Mutating operations work in place and return the receiver:
//
//	b := bitvec.New().SetRange(2, 5).Flip(8).Lsh(3)
//
// Value operations (And, Or, Xor, AndNot, Not, Clone, Slice) allocate a
// fresh result and never alias the operands' storage.
//
// # Text and Wire Forms
//
// Every value round-trips through a finite text form: binary digits for
// finite sets, "~" plus the complement for indefinite ones. Parse accepts
// both, plus "0x" hexadecimal. Binary snapshots are available through
// MarshalBinary and WriteTo/ReadFrom, and the codec subpackage adds
// framed, optionally compressed snapshot encoding.
//
// # Key Features
//
//   - Co-finite sets via an implicit tail, closed under the full algebra
//   - Canonical form: equality is structural, trailing tail words never leak
//   - Constant-time-per-word scanning (Msb, Lsb, NextSet, NextClear, Rank)
//   - Ranged mutation with boundary masks (SetRange, ClearRange, FlipRange)
//   - Tail-aware shifting (Lsh, Rsh)
//   - Interop with math/big and 64-bit roaring bitmaps
//   - Lazy iteration via iter.Seq
package bitvec
