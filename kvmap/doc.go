/*
Package kvmap provides KVMap, an immutable association list from
hierarchical names to a closed set of value kinds.

# Values

A DataValue holds exactly one of a string, a bool, a name.Name, an unsigned
integer (Nat) or a signed integer (Int). Values are immutable.

# Ordering

A KVMap keeps its entries in storage order. Inserting a key that is not yet
present puts it at the front, so the most recently added new key is
iterated first. Overwriting a key that is already present replaces its
value in place and keeps its position:

	m := kvmap.Empty().
		SetNat(name.Must("a"), 1).
		SetNat(name.Must("b"), 2) // [b := 2, a := 1]
	m = m.SetNat(name.Must("a"), 3) // [b := 2, a := 3]

# Sharing

Every update returns a new map. Entries behind the updated position are
shared with the previous map, entries in front of it are copied, so older
maps stay valid and unchanged. Maps can be read from any number of
goroutines without locking.

All operations are total: lookups report absence with a bool or fall back
to a caller-supplied default.
*/
package kvmap
