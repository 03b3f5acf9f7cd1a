package uorcmd

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"go.brendoncarroll.net/star"
	"golang.org/x/exp/maps"
	"golang.org/x/sync/errgroup"

	uor "github.com/UOR-Foundation/UOR-Framework"
	"github.com/UOR-Foundation/UOR-Framework/automaton"
)

var programs = map[string]func() []uor.Wavefront{
	"xor": func() []uor.Wavefront { return []uor.Wavefront{automaton.XorWavefront()} },
	"not": func() []uor.Wavefront { return []uor.Wavefront{automaton.NotWavefront()} },
	"sha256-round": func() []uor.Wavefront {
		return []uor.Wavefront{automaton.Sha256RoundWavefront()}
	},
	"sha256-compress": automaton.Sha256Compress,
	"aes128":          automaton.Aes128Encrypt,
	"aes256":          automaton.Aes256Encrypt,
}

var programParam = star.Param[[]uor.Wavefront]{
	Name: "program",
	Parse: func(x string) ([]uor.Wavefront, error) {
		mk, ok := programs[x]
		if !ok {
			names := maps.Keys(programs)
			slices.Sort(names)
			return nil, fmt.Errorf("unknown program %q, have %v", x, names)
		}
		return mk(), nil
	},
}

var countParam = star.Param[int]{
	Name:    "n",
	Default: star.Ptr("1"),
	Parse:   strconv.Atoi,
}

var workersParam = star.Param[int]{
	Name:    "workers",
	Default: star.Ptr("1"),
	Parse:   strconv.Atoi,
}

var run = star.Command{
	Metadata: star.Metadata{
		Short: "run a named program from the zero state",
	},
	Pos:   []star.IParam{programParam},
	Flags: []star.IParam{countParam},
	F: func(c star.Context) error {
		be, err := executor()
		if err != nil {
			return err
		}
		prog := programParam.Load(c)
		s := uor.Zero()
		for i := 0; i < countParam.Load(c); i++ {
			if s, err = be.RunFused(c.Context, s, prog); err != nil {
				return err
			}
		}
		c.Printf("program: %v\n", uor.ProgramFingerprint(prog))
		c.Printf("wavefronts: %d\n", len(prog)*countParam.Load(c))
		c.Printf("state: %v\n", s.Fingerprint())
		return nil
	},
}

var bench = star.Command{
	Metadata: star.Metadata{
		Short: "run a named program on parallel workers and report the rate",
	},
	Pos:   []star.IParam{programParam},
	Flags: []star.IParam{countParam, workersParam},
	F: func(c star.Context) error {
		be, err := executor()
		if err != nil {
			return err
		}
		prog := programParam.Load(c)
		n := countParam.Load(c)
		workers := workersParam.Load(c)

		start := time.Now()
		eg, ctx := errgroup.WithContext(c.Context)
		for w := 0; w < workers; w++ {
			eg.Go(func() error {
				s := uor.Zero()
				var err error
				for i := 0; i < n; i++ {
					if s, err = be.RunFused(ctx, s, prog); err != nil {
						return err
					}
				}
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}
		d := time.Since(start)
		total := len(prog) * n * workers
		c.Printf("%d wavefronts in %v (%.0f/s)\n", total, d, float64(total)/d.Seconds())
		return nil
	},
}
