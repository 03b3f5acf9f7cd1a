package automaton

// Prebuilt wavefront patterns for the SHA-256 and AES schedules.

// XorWavefront applies xor across the full register file.
func XorWavefront() Wavefront { return NewWavefront(AllXor()) }

// AndWavefront applies and across the full register file.
func AndWavefront() Wavefront { return NewWavefront(AllAnd()) }

// OrWavefront applies or across the full register file.
func OrWavefront() Wavefront { return NewWavefront(AllOr()) }

// NotWavefront complements the destination registers.
func NotWavefront() Wavefront { return NewWavefront(AllNot()) }

// AddWavefront applies lane-wise addition.
func AddWavefront() Wavefront { return NewWavefront(AllAdd()) }

// SubWavefront applies lane-wise subtraction.
func SubWavefront() Wavefront { return NewWavefront(AllSub()) }

// RotRWavefront rotates lanes right by n.
func RotRWavefront(n uint8) Wavefront { return NewWavefront(RotROnly(n)) }

// RotLWavefront rotates lanes left by n.
func RotLWavefront(n uint8) Wavefront { return NewWavefront(RotLOnly(n)) }

// Sha256BigSigma0 is Σ0: three rotate-and-xor wavefronts (2, 13, 22).
func Sha256BigSigma0() []Wavefront {
	return []Wavefront{
		NewWavefront(RotateAndXor(2)),
		NewWavefront(RotateAndXor(13)),
		NewWavefront(RotateAndXor(22)),
	}
}

// Sha256BigSigma1 is Σ1: rotations 6, 11, 25.
func Sha256BigSigma1() []Wavefront {
	return []Wavefront{
		NewWavefront(RotateAndXor(6)),
		NewWavefront(RotateAndXor(11)),
		NewWavefront(RotateAndXor(25)),
	}
}

// Sha256SmallSigma0 is σ0: rotations 7 and 18 and a shift by 3.
func Sha256SmallSigma0() []Wavefront {
	return []Wavefront{
		NewWavefront(RotateAndXor(7)),
		NewWavefront(RotateAndXor(18)),
		NewWavefront(ShiftAndXor(3)),
	}
}

// Sha256SmallSigma1 is σ1: rotations 17 and 19 and a shift by 10.
func Sha256SmallSigma1() []Wavefront {
	return []Wavefront{
		NewWavefront(RotateAndXor(17)),
		NewWavefront(RotateAndXor(19)),
		NewWavefront(ShiftAndXor(10)),
	}
}

// Sha256Ch is the choice function in two wavefronts.
func Sha256Ch() []Wavefront {
	return []Wavefront{AndWavefront(), XorWavefront()}
}

// Sha256Maj is the majority function in three wavefronts.
func Sha256Maj() []Wavefront {
	return []Wavefront{AndWavefront(), AndWavefront(), XorWavefront()}
}

// Sha256RoundWavefront is one hardware round: sha256rnds2 with both
// message schedule helpers issued alongside.
func Sha256RoundWavefront() Wavefront {
	return NewWavefront(Sha256RoundPorts())
}

// Sha256Compress is the full compression: 64 rounds at two per
// hardware round.
func Sha256Compress() []Wavefront {
	return NewProgram().Repeat(Sha256RoundWavefront(), 32).Build()
}

// AesEncWavefront is one AES encryption round.
func AesEncWavefront() Wavefront { return NewWavefront(AesRoundPorts()) }

// AesDecWavefront is one AES decryption round.
func AesDecWavefront() Wavefront { return NewWavefront(AesDecRoundPorts()) }

// Aes128Encrypt is the 10-round AES-128 schedule.
func Aes128Encrypt() []Wavefront {
	return NewProgram().Repeat(AesEncWavefront(), 10).Build()
}

// Aes256Encrypt is the 14-round AES-256 schedule.
func Aes256Encrypt() []Wavefront {
	return NewProgram().Repeat(AesEncWavefront(), 14).Build()
}

// ShuffleWavefront permutes bytes within 128-bit halves.
func ShuffleWavefront() Wavefront { return NewWavefront(ShufflePorts()) }

// PermuteWavefront permutes dwords across the full register.
func PermuteWavefront() Wavefront { return NewWavefront(PermutePorts()) }
