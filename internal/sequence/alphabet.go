package sequence

// Alphabet lists the 24 residue symbols in substitution-matrix order:
// the 20 standard amino acids followed by the B, Z, X ambiguity codes and
// the '*' stop symbol.
const Alphabet = "ARNDCQEGHILKMFPSTWYVBZX*"

// Size is the number of symbols in Alphabet.
const Size = len(Alphabet)

// residueIndex maps a byte to its position in Alphabet, or -1.
var residueIndex [256]int8

func init() {
	for i := range residueIndex {
		residueIndex[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		residueIndex[Alphabet[i]] = int8(i)
	}
}

// Index returns the substitution-matrix index of residue c.
// Matching is case-sensitive: lowercase letters are not in the alphabet.
func Index(c byte) (int, bool) {
	idx := residueIndex[c]
	if idx < 0 {
		return 0, false
	}
	return int(idx), true
}

// IsValidResidue reports whether c is one of the 24 alphabet symbols.
func IsValidResidue(c byte) bool {
	return residueIndex[c] >= 0
}

// Encode converts residues to matrix indices, failing on the first symbol
// outside the alphabet.
func Encode(residues string) ([]uint8, error) {
	out := make([]uint8, len(residues))
	for i := 0; i < len(residues); i++ {
		idx := residueIndex[residues[i]]
		if idx < 0 {
			return nil, &InvalidSymbolError{Position: i, Found: residues[i]}
		}
		out[i] = uint8(idx)
	}
	return out, nil
}
