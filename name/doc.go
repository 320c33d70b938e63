/*
Package name provides hierarchical identifiers used as option keys.

A name is an ordered sequence of components written in its canonical
dotted form, e.g. `pp.unicode.fun`. The empty sequence is the anonymous
name and renders as `[anonymous]`.
*/
package name
