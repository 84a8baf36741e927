package tetris

import "math/rand/v2"

// ShapeSource picks the shape of randomly spawned blocks.
type ShapeSource interface {
	NextShape() Shape
}

// RandomSource chooses uniformly among Shapes.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a RandomSource whose sequence is fully determined
// by seed.
func NewRandomSource(seed uint64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *RandomSource) NextShape() Shape {
	return Shapes[s.rng.IntN(len(Shapes))]
}

// SequenceSource replays a fixed list of shapes, starting over when the
// list is exhausted. An empty list always yields ShapeI.
type SequenceSource struct {
	shapes []Shape
	next   int
}

func NewSequenceSource(shapes ...Shape) *SequenceSource {
	return &SequenceSource{shapes: shapes}
}

func (s *SequenceSource) NextShape() Shape {
	if len(s.shapes) == 0 {
		return ShapeI
	}
	shape := s.shapes[s.next%len(s.shapes)]
	s.next++
	return shape
}

// BagSource deals every shape once, in shuffled order, before refilling.
type BagSource struct {
	rng *rand.Rand
	bag []Shape
}

func NewBagSource(seed uint64) *BagSource {
	return &BagSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *BagSource) NextShape() Shape {
	if len(s.bag) == 0 {
		s.bag = append(s.bag[:0], Shapes...)
		s.rng.Shuffle(len(s.bag), func(i, j int) {
			s.bag[i], s.bag[j] = s.bag[j], s.bag[i]
		})
	}
	shape := s.bag[0]
	s.bag = s.bag[1:]
	return shape
}
