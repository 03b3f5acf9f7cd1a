package uorcmd

import (
	"go.brendoncarroll.net/star"

	"github.com/UOR-Foundation/UOR-Framework/conformance"
)

var measure = star.Command{
	Metadata: star.Metadata{
		Short: "measure the host and check it against a conformance tier",
	},
	Flags: []star.IParam{DBParam, tierParam, hzParam},
	F: func(c star.Context) error {
		be, err := executor()
		if err != nil {
			return err
		}
		tier := tierParam.Load(c)
		r, err := conformance.Measure(c.Context, be, hzParam.Load(c))
		if err != nil {
			return err
		}
		c.Printf("wavefront: %d cycles\n", r.WavefrontCycles)
		c.Printf("sequence:  %d cycles\n", r.SequenceCycles)
		c.Printf("throughput: %d bits/cycle\n", r.BitsPerCycle)

		passed := true
		if err := r.Validate(tier); err != nil {
			passed = false
			c.Printf("%v\n", err)
		} else {
			c.Printf("PASS %v\n", tier)
		}
		db := DBParam.Load(c)
		id, err := conformance.SaveReport(c.Context, db, tier, r, passed)
		if err != nil {
			return err
		}
		c.Printf("saved report %d\n", id)
		return nil
	},
}

var history = star.Command{
	Metadata: star.Metadata{
		Short: "list recorded conformance reports",
	},
	Flags: []star.IParam{DBParam},
	F: func(c star.Context) error {
		db := DBParam.Load(c)
		rows, err := conformance.ListReports(c.Context, db)
		if err != nil {
			return err
		}
		c.Printf("ID\tTIER\tWF\tSEQ\tBITS/CYC\tPASS\n")
		for _, r := range rows {
			c.Printf("%d\t%s\t%d\t%d\t%d\t%v\n",
				r.ID, r.Tier, r.WavefrontCycles, r.SequenceCycles, r.BitsPerCycle, r.Passed)
		}
		return nil
	},
}
