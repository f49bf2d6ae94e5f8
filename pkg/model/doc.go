// Package model holds the reflection helpers shared by every generated value
// object: debug formatting, structural equality, hashing, deep copies, and
// closed-set enum lookup.
//
// Generated types delegate to these helpers so the per-type code stays a set
// of one-line methods. Only exported fields participate, in declaration order.
package model
