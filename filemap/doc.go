// Package filemap translates byte offsets in a source text into line and
// column positions.
//
// A FileMap is built once from the full text and answers any number of
// queries in O(log n) in the number of lines. It is never modified after
// construction and may be shared between goroutines.
package filemap
