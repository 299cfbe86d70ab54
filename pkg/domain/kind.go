package domain

import (
	"fmt"
	"strings"
)

// Kind is the discriminant tag identifying a node's variant.
// Values are frozen: adding tags is fine, renumbering existing ones is not.
type Kind int

const (
	KindUnknown Kind = iota
	KindA
	KindB
	KindC
	KindAB
	KindBC
	// KindABC is reserved. No constructor is registered for it.
	KindABC
)

var kindNames = map[Kind]string{
	KindA:   "A",
	KindB:   "B",
	KindC:   "C",
	KindAB:  "AB",
	KindBC:  "BC",
	KindABC: "ABC",
}

// Kinds returns every defined tag in ascending order.
func Kinds() []Kind {
	return []Kind{KindA, KindB, KindC, KindAB, KindBC, KindABC}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Tag makes a bare Kind usable wherever a Tagged value is accepted.
func (k Kind) Tag() Kind { return k }

// IsBase reports whether k is one of the base tags A, B or C.
func (k Kind) IsBase() bool {
	return k >= KindA && k <= KindC
}

// ParseKind resolves a tag name (case-insensitive) or its integer value.
func ParseKind(s string) (Kind, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == needle || fmt.Sprint(int(k)) == needle {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
