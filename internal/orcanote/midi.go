package orcanote

// semitoneOffsets gives the standard semitone offset from C for letters
// A through G, indexed by letter-'A'.
var semitoneOffsets = [7]int{
	'A' - 'A': 9,
	'B' - 'A': 11,
	'C' - 'A': 0,
	'D' - 'A': 2,
	'E' - 'A': 4,
	'F' - 'A': 5,
	'G' - 'A': 7,
}

// KeyForNote computes the MIDI key for a note letter and octave per
// spec.md §4.7. ok is false if letter is not alphabetic, in which case
// the emission must be silently dropped.
func KeyForNote(letter byte, octave int) (key int, ok bool) {
	sharp := 0
	if letter >= 'a' && letter <= 'z' {
		sharp = 1
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'Z' {
		return 0, false
	}

	// Letters above G are transpositions. Position arithmetic (A=1..Z=26)
	// is used rather than raw byte subtraction so every intermediate
	// value stays a real letter: while pos > I's position (9), subtract
	// it and bump the octave; then if pos > G's position (7), subtract
	// that too. H (8) and I (9) never enter the while loop, so they fold
	// straight onto A and B respectively with no octave change.
	pos := int(letter-'A') + 1
	for pos > 9 {
		pos -= 9
		octave++
	}
	if pos > 7 {
		pos -= 7
	}

	semitone := semitoneOffsets[pos-1]
	key = 12*(octave+2) + semitone + sharp
	return key, true
}
