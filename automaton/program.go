package automaton

import "lukechampine.com/blake3"

// ProgramBuilder assembles wavefront programs fluently.
type ProgramBuilder struct {
	wfs []Wavefront
}

// NewProgram returns an empty builder.
func NewProgram() *ProgramBuilder {
	return &ProgramBuilder{}
}

// Push appends one wavefront.
func (b *ProgramBuilder) Push(wf Wavefront) *ProgramBuilder {
	b.wfs = append(b.wfs, wf)
	return b
}

// Extend appends a sequence of wavefronts.
func (b *ProgramBuilder) Extend(wfs []Wavefront) *ProgramBuilder {
	b.wfs = append(b.wfs, wfs...)
	return b
}

// Repeat appends wf n times.
func (b *ProgramBuilder) Repeat(wf Wavefront, n int) *ProgramBuilder {
	for i := 0; i < n; i++ {
		b.wfs = append(b.wfs, wf)
	}
	return b
}

// Len returns the number of wavefronts so far.
func (b *ProgramBuilder) Len() int {
	return len(b.wfs)
}

// IsEmpty reports whether no wavefronts have been added.
func (b *ProgramBuilder) IsEmpty() bool {
	return len(b.wfs) == 0
}

// Build returns the assembled program. The builder can keep being used;
// the returned slice is a copy.
func (b *ProgramBuilder) Build() []Wavefront {
	out := make([]Wavefront, len(b.wfs))
	copy(out, b.wfs)
	return out
}

// ProgramFingerprint digests a program for caching and identification.
func ProgramFingerprint(prog []Wavefront) (ret Fingerprint) {
	h := blake3.New(32, nil)
	buf := make([]byte, 0, len(prog)*10)
	for _, wf := range prog {
		buf = append(buf,
			byte(wf.Ports.Port0.Code), wf.Ports.Port0.N,
			byte(wf.Ports.Port1.Code), wf.Ports.Port1.N,
			byte(wf.Ports.Port5.Code), wf.Ports.Port5.N,
			byte(wf.VecMask), byte(wf.VecMask>>8),
			byte(wf.GprMask), byte(wf.GprMask>>8),
		)
	}
	h.Write(buf)
	h.Sum(ret[:0])
	return ret
}
