// Package scalar holds the fixed table of scalar kinds the containers are
// specialized for.
//
// The table is hand-written and ordered; generated file sets are enumerated
// in this order, so it must not be reshuffled without regenerating.
package scalar
