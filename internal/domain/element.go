package domain

import (
	"fmt"
	"strings"
)

var elementNames = map[Element]string{
	ElementFire:  "نار",
	ElementWater: "ماء",
	ElementAir:   "هواء",
	ElementEarth: "تراب",
}

// ParseElement accepts an element name in any case, with surrounding
// whitespace ignored.
func ParseElement(s string) (Element, error) {
	e := Element(strings.ToLower(strings.TrimSpace(s)))
	if !e.Valid() {
		return "", fmt.Errorf("element %q must be one of fire, water, air, earth", s)
	}
	return e, nil
}

func (e Element) Valid() bool {
	_, ok := elementNames[e]
	return ok
}

// LocalizedName returns the Arabic name of the element, or "" if unknown.
func (e Element) LocalizedName() string {
	return elementNames[e]
}

// Title returns the element name with an upper-case first letter.
func (e Element) Title() string {
	if e == "" {
		return ""
	}
	s := string(e)
	return strings.ToUpper(s[:1]) + s[1:]
}
