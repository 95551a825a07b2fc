package schema

import (
	"math"
	"strconv"
)

// Occurs is an occurrence bound: a non-negative count or Unbounded.
type Occurs uint32

// Unbounded is the maxOccurs="unbounded" bound.
const Unbounded Occurs = math.MaxUint32

// String returns the lexical form of the bound.
func (o Occurs) String() string {
	if o == Unbounded {
		return "unbounded"
	}
	return strconv.FormatUint(uint64(o), 10)
}

// Arity holds minOccurs/maxOccurs.
type Arity struct {
	Min Occurs
	Max Occurs
}

// One is the default (1,1) arity.
var One = Arity{Min: 1, Max: 1}

// Optional0 is the (0,1) arity.
var Optional0 = Arity{Min: 0, Max: 1}

// Many is the (0,unbounded) arity.
var Many = Arity{Min: 0, Max: Unbounded}

// NewArity builds an arity.
func NewArity(min, max Occurs) Arity {
	return Arity{Min: min, Max: max}
}

// Repeated reports whether more than one occurrence is allowed.
func (a Arity) Repeated() bool {
	return a.Max > 1
}

// Prohibited reports whether no occurrence is allowed.
func (a Arity) Prohibited() bool {
	return a.Max == 0
}

// Optional reports whether the component may be absent.
func (a Arity) Optional() bool {
	return a.Min == 0
}

// Singleton reports whether exactly one occurrence is required.
func (a Arity) Singleton() bool {
	return a.Min == 1 && a.Max == 1
}

func (a Arity) String() string {
	return "(" + a.Min.String() + "," + a.Max.String() + ")"
}

// AttributeUse is the use attribute of an attribute declaration.
type AttributeUse uint8

const (
	UseOptional AttributeUse = iota
	UseRequired
	UseProhibited
)

// Arity returns the occurrence bounds implied by the use.
func (u AttributeUse) Arity() Arity {
	switch u {
	case UseRequired:
		return One
	case UseProhibited:
		return Arity{}
	default:
		return Optional0
	}
}

func (u AttributeUse) String() string {
	switch u {
	case UseRequired:
		return "required"
	case UseProhibited:
		return "prohibited"
	default:
		return "optional"
	}
}

// Form is an elementFormDefault/attributeFormDefault value.
type Form uint8

const (
	FormUnqualified Form = iota
	FormQualified
)

func (f Form) String() string {
	if f == FormQualified {
		return "qualified"
	}
	return "unqualified"
}
