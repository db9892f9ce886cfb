// Package rangemap maps half-open intervals of ordered positions to values.
//
// A Map keeps its segments sorted and disjoint. Setting a range that overlaps
// existing segments shadows them on the overlap: the newest value wins there,
// while older values keep whatever part of their range is not covered.
package rangemap
