package app

import "github.com/specialistvlad/optmap/kvmap"

// Relation describes how two option sets relate.
type Relation int

const (
	Equivalent Relation = iota
	Subset
	Superset
	Different
)

func (r Relation) String() string {
	switch r {
	case Equivalent:
		return "equivalent"
	case Subset:
		return "subset"
	case Superset:
		return "superset"
	default:
		return "different"
	}
}

// Relate classifies left against right.
func Relate(left, right kvmap.KVMap) Relation {
	switch {
	case kvmap.Eqv(left, right):
		return Equivalent
	case kvmap.Subset(left, right):
		return Subset
	case kvmap.Subset(right, left):
		return Superset
	default:
		return Different
	}
}
