package game

import "golang.org/x/exp/rand"

// MessagePicker chooses the flavor text shown under the board
type MessagePicker interface {
	Choose() string
}

// RandomPicker picks uniformly from a fixed list
type RandomPicker struct {
	messages []string
	rng      *rand.Rand
}

// NewRandomPicker creates a picker over messages using the given seed
func NewRandomPicker(messages []string, seed uint64) *RandomPicker {
	return &RandomPicker{
		messages: append([]string(nil), messages...),
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (p *RandomPicker) Choose() string {
	if len(p.messages) == 0 {
		return ""
	}
	return p.messages[p.rng.Intn(len(p.messages))]
}
