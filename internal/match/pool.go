package match

import (
	"github.com/google/uuid"

	"github.com/hackmatch/teamforge/internal/participant"
)

// pool is the working set of not-yet-assigned participants during one
// grouping pass. It is an ordered queue plus a membership set: entries
// leave the queue lazily, so removal by id is O(1) and popFront skips
// anything already taken. A participant is in at most one pool and
// leaves it exactly once.
type pool struct {
	queue   []participant.Participant
	present map[uuid.UUID]bool
}

func newPool(participants []participant.Participant) *pool {
	p := &pool{
		queue:   make([]participant.Participant, len(participants)),
		present: make(map[uuid.UUID]bool, len(participants)),
	}
	copy(p.queue, participants)
	for i := range participants {
		p.present[participants[i].ID] = true
	}
	return p
}

// popFront removes and returns the first remaining participant.
func (p *pool) popFront() (participant.Participant, bool) {
	for len(p.queue) > 0 {
		head := p.queue[0]
		p.queue = p.queue[1:]
		if p.present[head.ID] {
			delete(p.present, head.ID)
			return head, true
		}
	}
	return participant.Participant{}, false
}

// take removes the participant with the given id, if still present.
func (p *pool) take(id uuid.UUID) (participant.Participant, bool) {
	if !p.present[id] {
		return participant.Participant{}, false
	}
	for i := range p.queue {
		if p.queue[i].ID == id {
			delete(p.present, id)
			return p.queue[i], true
		}
	}
	// Unreachable: present implies queued.
	return participant.Participant{}, false
}

// remaining returns the participants still in the pool, in queue order.
// The returned slice is a snapshot; taking from the pool afterwards
// does not affect it.
func (p *pool) remaining() []participant.Participant {
	var out []participant.Participant
	for i := range p.queue {
		if p.present[p.queue[i].ID] {
			out = append(out, p.queue[i])
		}
	}
	return out
}

// pushFront returns participants to the head of the queue, preserving
// their relative order. The first pushed member is the next seed.
func (p *pool) pushFront(members []participant.Participant) {
	if len(members) == 0 {
		return
	}
	queue := make([]participant.Participant, 0, len(members)+len(p.queue))
	queue = append(queue, members...)
	queue = append(queue, p.queue...)
	p.queue = queue
	for i := range members {
		p.present[members[i].ID] = true
	}
}

// size returns the number of participants still in the pool.
func (p *pool) size() int {
	return len(p.present)
}
