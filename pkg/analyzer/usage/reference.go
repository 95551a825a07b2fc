package usage

import (
	"errors"
	"fmt"
	"strings"
)

// ReferenceKind selects the reference relationships the analyzer follows.
type ReferenceKind uint8

const (
	// RefLocal follows element, attribute, group and attribute-group refs.
	RefLocal ReferenceKind = 1 << iota
	// RefType follows the type of elements and attributes.
	RefType
	// RefBase follows extension and restriction bases.
	RefBase
	// RefItem follows list item types.
	RefItem
	// RefMember follows union member types.
	RefMember

	RefAll = RefLocal | RefType | RefBase | RefItem | RefMember
)

var referenceNames = []struct {
	name string
	kind ReferenceKind
}{
	{"local", RefLocal},
	{"type", RefType},
	{"base", RefBase},
	{"item", RefItem},
	{"member", RefMember},
}

// Has reports whether every flag in kind is set.
func (k ReferenceKind) Has(kind ReferenceKind) bool {
	return k&kind == kind
}

func (k ReferenceKind) String() string {
	if k == 0 {
		return "none"
	}
	var parts []string
	for _, r := range referenceNames {
		if k.Has(r.kind) {
			parts = append(parts, r.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseReferenceKinds combines reference kind names as accepted by the
// analysis.references configuration key.
func ParseReferenceKinds(names []string) (ReferenceKind, error) {
	if len(names) == 0 {
		return 0, errors.New("no reference kinds given")
	}
	var mask ReferenceKind
	for _, name := range names {
		switch n := strings.ToLower(strings.TrimSpace(name)); n {
		case "all":
			mask |= RefAll
		default:
			found := false
			for _, r := range referenceNames {
				if r.name == n {
					mask |= r.kind
					found = true
					break
				}
			}
			if !found {
				return 0, fmt.Errorf("unknown reference kind %q", name)
			}
		}
	}
	return mask, nil
}
