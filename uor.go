package uor

import (
	"lukechampine.com/blake3"

	"github.com/UOR-Foundation/UOR-Framework/automaton"
	"github.com/UOR-Foundation/UOR-Framework/taxon"
)

const (
	// TaxonCardinality is the number of distinct taxons.
	TaxonCardinality = taxon.Cardinality

	// StateBits is the width of the register file.
	StateBits = automaton.StateBits

	StateTaxons = automaton.StateTaxons
)

type (
	// Taxon is one byte-valued universe element.
	Taxon = taxon.Taxon

	State      = automaton.State
	Wavefront  = automaton.Wavefront
	Op         = automaton.Op
	Complement = automaton.Complement

	Backend         = automaton.Backend
	Stepper         = automaton.Stepper
	LosslessStepper = automaton.LosslessStepper
	FusedStepper    = automaton.FusedStepper

	Fingerprint = automaton.Fingerprint
)

// Zero returns the all-zero register file.
func Zero() State {
	return automaton.Zero()
}

// ProgramFingerprint digests the canonical serialization of a
// wavefront sequence.
func ProgramFingerprint(prog []Wavefront) Fingerprint {
	return automaton.ProgramFingerprint(prog)
}

// Hash digests x with the same function used to fingerprint states
// and programs.
func Hash(x []byte) (ret Fingerprint) {
	h := blake3.New(32, nil)
	h.Write(x)
	h.Sum(ret[:0])
	return ret
}
