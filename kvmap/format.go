package kvmap

import "strings"

// String renders the map as `[k1 := v1, k2 := v2]` in storage order.
func (m KVMap) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for c := m.head; c != nil; c = c.next {
		if c != m.head {
			sb.WriteString(", ")
		}
		sb.WriteString(c.key.String())
		sb.WriteString(" := ")
		sb.WriteString(c.val.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
