package reg

// Check verifies the static signal table: every bit is in 0..7, no two
// signals claim the same coordinate, and every signal lives in a named
// register.
func Check() error {
	return checkTable(signalTable[:])
}

func checkTable(table []Coord) error {
	claimed := make(map[Coord]Signal, len(table))
	for n, coord := range table {
		sig := Signal(n)
		if coord.Bit > 7 {
			return &ErrTable{Signal: sig, Coord: coord, Err: ErrTableBit}
		}
		if _, ok := claimed[coord]; ok {
			return &ErrTable{Signal: sig, Coord: coord, Err: ErrTableDuplicate}
		}
		claimed[coord] = sig
		if _, ok := RegisterAt(coord.Addr); !ok {
			return &ErrTable{Signal: sig, Coord: coord, Err: ErrTableRegister}
		}
	}
	return nil
}

func init() {
	if err := Check(); err != nil {
		panic(err)
	}
}
