package fgpath

import "fmt"

// Parse parses a path string into a Path. Grammar (spec §4.3):
//
//	path       := "/" segment-list? | relative
//	relative   := ".." ("/" relative-rest)? | "." "/" segment-list? | segment-list
//	segment-list := segment ("/" segment)*
//	segment    := ident | "*" | "#" ident
//
// A leading "." denotes the current path and is dropped (it normalizes
// away); a leading ".." (repeatable) climbs one level per occurrence.
func Parse(s string) (Path, error) {
	l := newLexer(s)
	tok, err := l.next()
	if err != nil {
		return Path{}, err
	}

	p := Path{}
	if tok.kind == tokSlash {
		p.Absolute = true
		tok, err = l.next()
		if err != nil {
			return Path{}, err
		}
		if tok.kind == tokEOF {
			return p, nil
		}
	}

	for {
		switch tok.kind {
		case tokEOF:
			return p, nil
		case tokDot:
			// self-reference: contributes no segment.
		case tokDotDot:
			p.Segments = append(p.Segments, Segment{Kind: Parent})
		case tokIdent:
			p.Segments = append(p.Segments, Segment{Kind: Child, Name: tok.text})
		case tokStar:
			p.Segments = append(p.Segments, Segment{Kind: Wildcard})
		case tokHash:
			id, err := l.next()
			if err != nil {
				return Path{}, err
			}
			if id.kind != tokIdent {
				return Path{}, fmt.Errorf("%w: expected member id after '#' at position %d", ErrInvalidPath, id.pos)
			}
			p.Segments = append(p.Segments, Segment{Kind: Member, Name: id.text})
		default:
			return Path{}, fmt.Errorf("%w: unexpected token at position %d", ErrInvalidPath, tok.pos)
		}

		tok, err = l.next()
		if err != nil {
			return Path{}, err
		}
		if tok.kind == tokEOF {
			return p, nil
		}
		if tok.kind != tokSlash {
			return Path{}, fmt.Errorf("%w: expected '/' at position %d", ErrInvalidPath, tok.pos)
		}
		tok, err = l.next()
		if err != nil {
			return Path{}, err
		}
	}
}

// MustParse parses s, panicking on error. Intended for static paths
// embedded in dictionary definitions, not for untrusted input.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}
