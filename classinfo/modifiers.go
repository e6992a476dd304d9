package classinfo

import (
	"fmt"
	"strings"
)

// Modifiers is the modifier bit set recorded for classes, methods and fields.
type Modifiers uint32

const (
	ModPublic       Modifiers = 0x0001
	ModPrivate      Modifiers = 0x0002
	ModProtected    Modifiers = 0x0004
	ModStatic       Modifiers = 0x0008
	ModFinal        Modifiers = 0x0010
	ModSynchronized Modifiers = 0x0020
	ModVolatile     Modifiers = 0x0040
	ModTransient    Modifiers = 0x0080
	ModNative       Modifiers = 0x0100
	ModInterface    Modifiers = 0x0200
	ModAbstract     Modifiers = 0x0400
	ModStrict       Modifiers = 0x0800
	ModSynthetic    Modifiers = 0x1000
	ModVarargs      Modifiers = 0x4000
)

// IsStatic reports whether the static bit is set.
func (m Modifiers) IsStatic() bool { return m&ModStatic != 0 }

// IsAbstract reports whether the abstract bit is set.
func (m Modifiers) IsAbstract() bool { return m&ModAbstract != 0 }

// IsInterface reports whether the interface bit is set.
func (m Modifiers) IsInterface() bool { return m&ModInterface != 0 }

// IsVarargs reports whether the varargs bit is set.
func (m Modifiers) IsVarargs() bool { return m&ModVarargs != 0 }

var modifierWords = []struct {
	bit  Modifiers
	word string
}{
	{ModPublic, "public"},
	{ModProtected, "protected"},
	{ModPrivate, "private"},
	{ModAbstract, "abstract"},
	{ModStatic, "static"},
	{ModFinal, "final"},
	{ModTransient, "transient"},
	{ModVolatile, "volatile"},
	{ModSynchronized, "synchronized"},
	{ModNative, "native"},
	{ModStrict, "strictfp"},
	{ModInterface, "interface"},
}

// String renders the keyword form in canonical order, e.g. "public static final".
func (m Modifiers) String() string {
	var words []string
	for _, mw := range modifierWords {
		if m&mw.bit != 0 {
			words = append(words, mw.word)
		}
	}
	return strings.Join(words, " ")
}

// ParseModifiers combines modifier keywords. Besides the keywords String
// produces it accepts "synthetic" and "varargs".
func ParseModifiers(words []string) (Modifiers, error) {
	var m Modifiers
	for _, w := range words {
		bit, ok := modifierBit(strings.ToLower(strings.TrimSpace(w)))
		if !ok {
			return 0, fmt.Errorf("classinfo: unknown modifier %q", w)
		}
		m |= bit
	}
	return m, nil
}

func modifierBit(word string) (Modifiers, bool) {
	switch word {
	case "synthetic":
		return ModSynthetic, true
	case "varargs":
		return ModVarargs, true
	}
	for _, mw := range modifierWords {
		if mw.word == word {
			return mw.bit, true
		}
	}
	return 0, false
}
