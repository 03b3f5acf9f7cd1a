package taxon

import (
	"fmt"
	"strconv"
	"strings"
)

// BaseIRI is the prefix of every taxon IRI.
const BaseIRI = "https://uor.foundation/u/"

// IRISuffix returns the identifier of t, "U" followed by the
// uppercase hex codepoint, e.g. "U2800".
func (t Taxon) IRISuffix() string {
	return fmt.Sprintf("U%04X", t.Codepoint())
}

// IRI returns the full IRI of t.
func (t Taxon) IRI() string {
	return BaseIRI + t.IRISuffix()
}

// ParseIRISuffix parses an identifier of the form "UXXXX". Lowercase
// hex digits are accepted. Codepoints outside the Braille block are
// rejected.
func ParseIRISuffix(s string) (Taxon, error) {
	if len(s) != 5 || s[0] != 'U' {
		return Taxon{}, ErrBadIRI{Input: s, Msg: "expected U followed by 4 hex digits"}
	}
	cp, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Taxon{}, ErrBadIRI{Input: s, Msg: "invalid hex codepoint"}
	}
	if cp < BrailleBase || cp > BrailleMax {
		return Taxon{}, ErrBadIRI{Input: s, Msg: "codepoint outside the Braille block"}
	}
	return New(uint8(cp - BrailleBase)), nil
}

// ParseIRI parses a full taxon IRI.
func ParseIRI(s string) (Taxon, error) {
	suffix, ok := strings.CutPrefix(s, BaseIRI)
	if !ok {
		return Taxon{}, ErrBadIRI{Input: s, Msg: "missing base IRI"}
	}
	return ParseIRISuffix(suffix)
}
