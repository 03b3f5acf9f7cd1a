package taxon

// Domain is one of the three triadic domains partitioning the taxa by
// residue mod 3.
type Domain uint8

const (
	// Theta holds taxa with value = 0 mod 3.
	Theta Domain = iota
	// Psi holds taxa with value = 1 mod 3.
	Psi
	// Delta holds taxa with value = 2 mod 3.
	Delta
)

// DomainCardinalities is the number of taxa per domain,
// indexed by Domain.
var DomainCardinalities = [3]int{86, 85, 85}

func domainFromResidue(r uint8) Domain {
	switch r {
	case 0:
		return Theta
	case 1:
		return Psi
	default:
		return Delta
	}
}

// Symbol returns the Greek letter for the domain.
func (d Domain) Symbol() rune {
	switch d {
	case Theta:
		return 'Θ'
	case Psi:
		return 'Ψ'
	default:
		return 'Δ'
	}
}

// Cardinality returns the number of taxa in the domain.
func (d Domain) Cardinality() int {
	return DomainCardinalities[d]
}

func (d Domain) String() string {
	switch d {
	case Theta:
		return "Theta"
	case Psi:
		return "Psi"
	default:
		return "Delta"
	}
}
