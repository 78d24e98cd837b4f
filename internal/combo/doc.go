// Package combo enumerates ordered arrangements with repetition: every
// k-tuple over a fixed value list, i.e. its k-fold Cartesian power.
//
// Arrangement c is read as a k-digit base-n numeral; the least significant
// digit picks the last tuple position, so the rightmost position varies
// fastest. Generated file sets rely on this order being stable.
package combo
