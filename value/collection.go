package value

import (
	"fmt"
	"slices"
	"strings"
)

// Collection is an ordered list of member identifiers. Duplicates are
// rejected on construction and on Add.
type Collection struct {
	members []string
}

// NewCollection returns a Collection containing members in order. Returns
// ErrInvalidValue if members contains a duplicate.
func NewCollection(members []string) (Collection, error) {
	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		if _, ok := seen[m]; ok {
			return Collection{}, fmt.Errorf("%w: Collection: duplicate member %q", ErrInvalidValue, m)
		}
		seen[m] = struct{}{}
	}
	return Collection{members: slices.Clone(members)}, nil
}

// Kind returns KindCollection.
func (Collection) Kind() Kind { return KindCollection }

// String returns the members joined by a comma, in insertion order.
func (v Collection) String() string { return strings.Join(v.members, ",") }

// Equal reports whether other is a Collection with the same members in the
// same order.
func (v Collection) Equal(other Value) bool {
	o, ok := other.(Collection)
	return ok && slices.Equal(v.members, o.members)
}

// Members returns the member identifiers in insertion order.
func (v Collection) Members() []string { return slices.Clone(v.members) }

// Len returns the number of members.
func (v Collection) Len() int { return len(v.members) }

// Contains reports whether id is a member of v.
func (v Collection) Contains(id string) bool { return slices.Contains(v.members, id) }

// Add returns a new Collection with id appended. Returns ErrInvalidValue if
// id is already a member.
func (v Collection) Add(id string) (Collection, error) {
	if v.Contains(id) {
		return Collection{}, fmt.Errorf("%w: Collection: duplicate member %q", ErrInvalidValue, id)
	}
	out := make([]string, len(v.members), len(v.members)+1)
	copy(out, v.members)
	return Collection{members: append(out, id)}, nil
}

// Remove returns a new Collection with id removed. It's a no-op if id is
// not a member.
func (v Collection) Remove(id string) Collection {
	out := make([]string, 0, len(v.members))
	for _, m := range v.members {
		if m != id {
			out = append(out, m)
		}
	}
	return Collection{members: out}
}
