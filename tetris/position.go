package tetris

// Position is a cell coordinate on the board. Row grows downwards.
type Position struct {
	Row, Col int
}

// Add returns the coordinate-wise sum of p and q.
func (p Position) Add(q Position) Position {
	return Position{Row: p.Row + q.Row, Col: p.Col + q.Col}
}

// Sub returns the coordinate-wise difference of p and q.
func (p Position) Sub(q Position) Position {
	return Position{Row: p.Row - q.Row, Col: p.Col - q.Col}
}

func (p Position) Left() Position {
	return Position{Row: p.Row, Col: p.Col - 1}
}

func (p Position) Right() Position {
	return Position{Row: p.Row, Col: p.Col + 1}
}

func (p Position) Down() Position {
	return Position{Row: p.Row + 1, Col: p.Col}
}
