// Package collections provides one named growable list per scalar kind:
// ByteList, ShortList, IntList, LongList, FloatList, DoubleList and CharList.
//
// The list files are generated from templates/collections; edit the template
// and rerun go generate instead of editing them.
package collections

//go:generate go run ../cmd/scalar-generator --input ../templates --output ..
