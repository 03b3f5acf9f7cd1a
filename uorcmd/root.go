// package uorcmd implements the uor command line tool.
package uorcmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"
	"go.brendoncarroll.net/star"

	"github.com/UOR-Foundation/UOR-Framework/conformance"
	"github.com/UOR-Foundation/UOR-Framework/zen3"
)

func Root() star.Command {
	return root
}

var root = star.NewDir(star.Metadata{
	Short: "UOR Framework",
}, map[star.Symbol]star.Command{
	"features": features,
	"measure":  measure,
	"history":  history,

	"run":   run,
	"bench": bench,

	"taxon": taxonCmd,
})

var features = star.Command{
	Metadata: star.Metadata{
		Short: "report the CPU capability set",
	},
	F: func(c star.Context) error {
		f := zen3.Detect()
		c.Printf("AVX2:   %v\n", f.AVX2)
		c.Printf("SHA-NI: %v\n", f.SHANI)
		c.Printf("AES-NI: %v\n", f.AESNI)
		if !f.AllPresent() {
			c.Printf("missing: %v\n", f.Missing())
		}
		return nil
	},
}

var DBParam = star.Param[*sqlx.DB]{
	Name:    "db",
	Default: star.Ptr(":memory:"),
	Parse: func(x string) (*sqlx.DB, error) {
		db, err := conformance.OpenDB(x)
		if err != nil {
			return nil, err
		}
		if err := conformance.SetupDB(context.Background(), db); err != nil {
			return nil, err
		}
		return db, nil
	},
}

var tierParam = star.Param[conformance.Tier]{
	Name:    "tier",
	Default: star.Ptr("minimum"),
	Parse: func(x string) (conformance.Tier, error) {
		switch x {
		case "minimum":
			return conformance.TierMinimum, nil
		case "optimized":
			return conformance.TierOptimized, nil
		case "theoretical":
			return conformance.TierTheoretical, nil
		}
		return 0, fmt.Errorf("unknown tier %q", x)
	},
}

var hzParam = star.Param[float64]{
	Name:    "hz",
	Default: star.Ptr("4.7e9"),
	Parse: func(x string) (float64, error) {
		return strconv.ParseFloat(x, 64)
	},
}

// executor returns a backend, refusing to run without the capability
// set.
func executor() (*zen3.Executor, error) {
	f := zen3.Detect()
	if !f.AllPresent() {
		return nil, fmt.Errorf("host is missing CPU features: %v", f.Missing())
	}
	return zen3.New(f), nil
}
