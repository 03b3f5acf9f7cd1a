package uorcmd

import (
	"strconv"
	"strings"

	"go.brendoncarroll.net/star"

	"github.com/UOR-Foundation/UOR-Framework/taxon"
)

var taxonCmd = star.NewDir(star.Metadata{
	Short: "inspect the byte universe",
}, map[star.Symbol]star.Command{
	"info":  taxonInfo,
	"table": taxonTable,
})

var taxonParam = star.Param[taxon.Taxon]{
	Name: "taxon",
	Parse: func(x string) (taxon.Taxon, error) {
		if strings.HasPrefix(x, "U") || strings.HasPrefix(x, taxon.BaseIRI) {
			if t, err := taxon.ParseIRI(x); err == nil {
				return t, nil
			}
			return taxon.ParseIRISuffix(x)
		}
		v, err := strconv.ParseUint(x, 0, 8)
		if err != nil {
			return taxon.Taxon{}, err
		}
		return taxon.New(uint8(v)), nil
	},
}

var taxonInfo = star.Command{
	Metadata: star.Metadata{
		Short: "print one taxon's identity and invariants",
	},
	Pos: []star.IParam{taxonParam},
	F: func(c star.Context) error {
		t := taxonParam.Load(c)
		c.Printf("value:     %d\n", t.Value())
		c.Printf("braille:   %c (U+%04X)\n", t.Braille(), t.Codepoint())
		c.Printf("iri:       %s\n", t.IRI())
		c.Printf("domain:    %v\n", t.Domain())
		c.Printf("rank:      %d\n", t.Rank())
		c.Printf("weight:    %d\n", t.Weight())
		c.Printf("curvature: %d\n", t.Curvature())
		c.Printf("basis:     %v\n", t.IsBasis())
		if inv, err := t.MulInverse(); err == nil {
			c.Printf("inverse:   %d\n", inv.Value())
		}
		return nil
	},
}

var taxonTable = star.Command{
	Metadata: star.Metadata{
		Short: "print the whole universe",
	},
	F: func(c star.Context) error {
		c.Printf("VALUE\tGLYPH\tIRI\tDOMAIN\tRANK\tWEIGHT\tCURV\n")
		for v := 0; v < taxon.Cardinality; v++ {
			t := taxon.New(uint8(v))
			c.Printf("%d\t%c\t%s\t%v\t%d\t%d\t%d\n",
				t.Value(), t.Braille(), t.IRISuffix(), t.Domain(), t.Rank(), t.Weight(), t.Curvature())
		}
		return nil
	},
}
