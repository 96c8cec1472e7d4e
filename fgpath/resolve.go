package fgpath

// MemberLister returns the current member ids of the collection at
// collectionPath. Populate calls it once per Wildcard segment it
// encounters, with collectionPath set to the concrete prefix resolved so
// far — so a nested collection whose membership depends on which member
// of an outer collection it sits under is resolved correctly, rather than
// from a flat per-wildcard-index member list (see DESIGN.md, Open
// Question: abstract.populate).
type MemberLister func(collectionPath Path) ([]string, error)

// Populate enumerates every concrete path matching abstract path p,
// expanding each Wildcard segment against MemberLister in turn and
// producing the Cartesian product of member choices (spec §4.3). p need
// not be abstract; a fully concrete p populates to itself.
func (p Path) Populate(lister MemberLister) ([]Path, error) {
	prefix := Path{Absolute: p.Absolute}
	return populate(prefix, p.Segments, lister)
}

func populate(prefix Path, remaining []Segment, lister MemberLister) ([]Path, error) {
	if len(remaining) == 0 {
		return []Path{prefix}, nil
	}

	seg := remaining[0]
	rest := remaining[1:]

	if seg.Kind != Wildcard {
		next := Path{Absolute: prefix.Absolute, Segments: append(append([]Segment{}, prefix.Segments...), seg)}
		return populate(next, rest, lister)
	}

	members, err := lister(prefix)
	if err != nil {
		return nil, err
	}

	var out []Path
	for _, id := range members {
		next := Path{Absolute: prefix.Absolute, Segments: append(append([]Segment{}, prefix.Segments...), Segment{Kind: Member, Name: id})}
		expanded, err := populate(next, rest, lister)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
	}
	return out, nil
}
