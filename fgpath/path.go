// Package fgpath implements the Fact Graph path model (C3): parsing,
// normalization, relative resolution, and wildcard/member expansion over
// abstract and concrete paths.
package fgpath

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPath is returned for malformed path syntax or normalization
// that escapes above the root.
var ErrInvalidPath = errors.New("invalid path")

// SegmentKind distinguishes the four segment forms a path may contain.
type SegmentKind uint8

const (
	// Child names a fact by its declared identifier.
	Child SegmentKind = iota
	// Parent is the `..` segment: one step up from the current path.
	Parent
	// Wildcard is the `*` segment: every member of the enclosing collection.
	Wildcard
	// Member is a `#<id>` segment: one specific collection member.
	Member
)

// Segment is one step of a Path.
type Segment struct {
	Kind SegmentKind
	Name string // Child: identifier. Member: member id. unused for Parent/Wildcard.
}

func (s Segment) String() string {
	switch s.Kind {
	case Parent:
		return ".."
	case Wildcard:
		return "*"
	case Member:
		return "#" + s.Name
	default:
		return s.Name
	}
}

// Path is an absolute or relative sequence of Segments.
type Path struct {
	Absolute bool
	Segments []Segment
}

// Root is the empty absolute path.
func Root() Path { return Path{Absolute: true} }

// String renders p in its canonical form: segments joined by "/", with a
// leading "/" for absolute paths and a leading "." for a relative path
// that doesn't already start with ".." (matching spec §4.3's examples).
func (p Path) String() string {
	var b strings.Builder
	if p.Absolute {
		b.WriteByte('/')
	} else if len(p.Segments) == 0 || p.Segments[0].Kind != Parent {
		b.WriteString("./")
	}
	for i, seg := range p.Segments {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(seg.String())
	}
	return b.String()
}

// IsAbstract reports whether p contains any Wildcard segment.
func (p Path) IsAbstract() bool {
	for _, seg := range p.Segments {
		if seg.Kind == Wildcard {
			return true
		}
	}
	return false
}

// IsConcrete reports whether every segment is a Child or Member reference
// (no Wildcard, and — since concrete paths only make sense rooted — no
// unresolved Parent either).
func (p Path) IsConcrete() bool {
	for _, seg := range p.Segments {
		if seg.Kind == Wildcard || seg.Kind == Parent {
			return false
		}
	}
	return p.Absolute
}

// ToAbstract returns a copy of p with every Member segment replaced by
// Wildcard, discarding which specific member each concrete path used.
func (p Path) ToAbstract() Path {
	out := Path{Absolute: p.Absolute, Segments: make([]Segment, len(p.Segments))}
	for i, seg := range p.Segments {
		if seg.Kind == Member {
			out.Segments[i] = Segment{Kind: Wildcard}
		} else {
			out.Segments[i] = seg
		}
	}
	return out
}

// Normalize folds "." and ".." segments and rejects any attempt to ascend
// above the root of an absolute path. In a relative path, ".." segments
// with no preceding segment to consume are kept as leading "..".
func (p Path) Normalize() (Path, error) {
	out := make([]Segment, 0, len(p.Segments))
	for _, seg := range p.Segments {
		if seg.Kind == Parent {
			if len(out) > 0 && out[len(out)-1].Kind != Parent {
				out = out[:len(out)-1]
				continue
			}
			if p.Absolute {
				return Path{}, fmt.Errorf("fgpath: normalize: %w: escapes above root", ErrInvalidPath)
			}
			out = append(out, seg)
			continue
		}
		out = append(out, seg)
	}
	return Path{Absolute: p.Absolute, Segments: out}, nil
}

// Resolve interprets p relative to base (if p is relative) and returns a
// normalized absolute Path. An already-absolute p is normalized and
// returned unchanged in meaning.
func (base Path) Resolve(rel Path) (Path, error) {
	if rel.Absolute {
		return rel.Normalize()
	}
	combined := Path{Absolute: base.Absolute, Segments: append(append([]Segment{}, base.Segments...), rel.Segments...)}
	return combined.Normalize()
}

// Equal reports whether p and other have the same absoluteness and
// segment sequence.
func (p Path) Equal(other Path) bool {
	if p.Absolute != other.Absolute || len(p.Segments) != len(other.Segments) {
		return false
	}
	for i, seg := range p.Segments {
		if seg != other.Segments[i] {
			return false
		}
	}
	return true
}

// Child returns a new path with name appended.
func (p Path) Child(name string) Path {
	return Path{Absolute: p.Absolute, Segments: append(append([]Segment{}, p.Segments...), Segment{Kind: Child, Name: name})}
}

// WithMember returns a new path with a #id member segment appended.
func (p Path) WithMember(id string) Path {
	return Path{Absolute: p.Absolute, Segments: append(append([]Segment{}, p.Segments...), Segment{Kind: Member, Name: id})}
}

// WithWildcard returns a new path with a * segment appended.
func (p Path) WithWildcard() Path {
	return Path{Absolute: p.Absolute, Segments: append(append([]Segment{}, p.Segments...), Segment{Kind: Wildcard})}
}

// ParentPath returns p with its last segment removed. ParentPath of Root
// is Root.
func (p Path) ParentPath() Path {
	if len(p.Segments) == 0 {
		return p
	}
	return Path{Absolute: p.Absolute, Segments: p.Segments[:len(p.Segments)-1]}
}
