package taxon

import "fmt"

type ErrNotUnit struct {
	Value uint8
}

func (e ErrNotUnit) Error() string {
	return fmt.Sprintf("taxon %d is even and has no multiplicative inverse mod 256", e.Value)
}

type ErrBadIRI struct {
	Input string
	Msg   string
}

func (e ErrBadIRI) Error() string {
	return fmt.Sprintf("bad taxon IRI %q: %s", e.Input, e.Msg)
}

type ErrTaxonCount struct {
	Want int
	Got  int
}

func (e ErrTaxonCount) Error() string {
	return fmt.Sprintf("wrong number of taxons: want %d, got %d", e.Want, e.Got)
}
