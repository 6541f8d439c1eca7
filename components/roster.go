package components

import "github.com/yohamta/donburi"

// RosterData indexes the world's characters by their caller-assigned id.
type RosterData struct {
	byID map[int]donburi.Entity
}

func (r *RosterData) Lookup(id int) (donburi.Entity, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// Add records id → e. It returns false if id is already taken.
func (r *RosterData) Add(id int, e donburi.Entity) bool {
	if r.byID == nil {
		r.byID = make(map[int]donburi.Entity)
	}
	if _, ok := r.byID[id]; ok {
		return false
	}
	r.byID[id] = e
	return true
}

func (r *RosterData) Remove(id int) {
	delete(r.byID, id)
}

func (r *RosterData) Len() int {
	return len(r.byID)
}

var Roster = donburi.NewComponentType[RosterData]()
