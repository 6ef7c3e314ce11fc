package orcagrid

// operatorNames mirrors the original Orca reference implementation's
// char-to-name table (original_source/core/machine.hpp), used only for
// the host UI's cell_description hover text. It carries no evaluation
// semantics.
var operatorNames = map[byte]string{
	'A': "add",
	'B': "subtract",
	'C': "clock",
	'D': "delay",
	'E': "east",
	'F': "if",
	'G': "generator",
	'H': "halt",
	'I': "increment",
	'J': "jumper",
	'K': "konkat",
	'L': "less",
	'M': "multiply",
	'N': "north",
	'O': "read",
	'P': "push",
	'Q': "query",
	'R': "random",
	'S': "south",
	'T': "track",
	'U': "uclid",
	'V': "variable",
	'W': "west",
	'X': "write",
	'Y': "jymper",
	'Z': "lerp",
	'*': "bang",
	'#': "comment",
	':': "midi",
	'%': "mono",
	'!': "cc",
	'?': "pb",
	';': "udp",
	'=': "osc",
	'$': "self",
}

// OperatorName returns the human-readable name of an operator glyph and
// whether one is defined for it.
func OperatorName(glyph byte) (string, bool) {
	name, ok := operatorNames[glyph]
	return name, ok
}
