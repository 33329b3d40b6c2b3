package multiwire

// Coil energization tables. Each row is one step slot holding one Level per
// wire, in wiring order; stepping walks the rows with wraparound. The cycle
// length is the table length: 8 for two and four wire motors, 10 for five
// wire motors.

// twoWireSequence lays its four distinct patterns out twice so that two and
// four wire motors share the eight slot half-step modulus.
var twoWireSequence = [][]Level{
	{Low, High},
	{High, High},
	{High, Low},
	{Low, Low},
	{Low, High},
	{High, High},
	{High, Low},
	{Low, Low},
}

// fourWireSequence is the eight entry half-step table: alternating single
// coil and paired coil slots for twice the resolution of the four entry
// full-step variant.
var fourWireSequence = [][]Level{
	{High, Low, Low, Low},  // 1000
	{High, High, Low, Low}, // 1100
	{Low, High, Low, Low},  // 0100
	{Low, High, High, Low}, // 0110
	{Low, Low, High, Low},  // 0010
	{Low, Low, High, High}, // 0011
	{Low, Low, Low, High},  // 0001
	{High, Low, Low, High}, // 1001
}

// fiveWireSequence is the ten step sequence for five phase motors, one
// phase switched per slot.
var fiveWireSequence = [][]Level{
	{Low, High, High, Low, High},
	{Low, High, Low, Low, High},
	{Low, High, Low, High, High},
	{Low, High, Low, High, Low},
	{High, High, Low, High, Low},
	{High, Low, Low, High, Low},
	{High, Low, High, High, Low},
	{High, Low, High, Low, Low},
	{High, Low, High, Low, High},
	{Low, Low, High, Low, High},
}

// stepSequence returns the energization table for the given wire count.
func stepSequence(wires int) ([][]Level, error) {
	switch wires {
	case 2:
		return twoWireSequence, nil
	case 4:
		return fourWireSequence, nil
	case 5:
		return fiveWireSequence, nil
	default:
		return nil, NewWireCountError(wires)
	}
}
