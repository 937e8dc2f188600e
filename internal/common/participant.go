package common

import "fmt"

// Participant holds a trader's cash balance and per-asset inventory.
// Orders reference a Participant by identity only; the book never owns or
// destroys one — mutation happens in place while the book's gate is held.
type Participant struct {
	Name      string
	Balance   int64
	Inventory map[string]int64
}

// NewParticipant returns a Participant with a ready-to-use inventory map.
func NewParticipant(name string) *Participant {
	return &Participant{
		Name:      name,
		Inventory: make(map[string]int64),
	}
}

func (p *Participant) String() string {
	if p == nil {
		return "Participant(<none>)"
	}
	return fmt.Sprintf("Participant(name=%s, balance=%d, inventory=%v)", p.Name, p.Balance, p.Inventory)
}
