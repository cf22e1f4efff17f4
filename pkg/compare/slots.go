package compare

import (
	"github.com/matst80/humidor/pkg/types"
)

const MaxSlots = 2

type Position string

const (
	Left  Position = "left"
	Right Position = "right"
)

type Slot struct {
	Item     types.CatalogItem `json:"item"`
	Position Position          `json:"position"`
}

// State holds at most two slots. The left slot is always filled first and a
// single remaining slot is always left.
type State struct {
	Slots []Slot `json:"slots"`
}

type Outcome string

const (
	Added    Outcome = "added"
	Rejected Outcome = "rejected"
)

type RejectReason string

const (
	ReasonNone      RejectReason = ""
	ReasonFull      RejectReason = "full"
	ReasonDuplicate RejectReason = "duplicate"
)

type AddResult struct {
	Outcome Outcome      `json:"outcome"`
	Reason  RejectReason `json:"reason,omitempty"`
}

func (r AddResult) Added() bool {
	return r.Outcome == Added
}

func Empty() State {
	return State{Slots: []Slot{}}
}

func (s State) Len() int {
	return len(s.Slots)
}

func (s State) Contains(id string) bool {
	for _, slot := range s.Slots {
		if slot.Item.Id == id {
			return true
		}
	}
	return false
}

func (s State) at(position Position) (types.CatalogItem, bool) {
	for _, slot := range s.Slots {
		if slot.Position == position {
			return slot.Item, true
		}
	}
	return types.CatalogItem{}, false
}

func (s State) Left() (types.CatalogItem, bool) {
	return s.at(Left)
}

func (s State) Right() (types.CatalogItem, bool) {
	return s.at(Right)
}

func CanAdd(s State) bool {
	return len(s.Slots) < MaxSlots
}

// TryAdd is Add with the reason a request was turned down.
func TryAdd(s State, item types.CatalogItem) (State, AddResult) {
	if !CanAdd(s) {
		return s, AddResult{Outcome: Rejected, Reason: ReasonFull}
	}
	if s.Contains(item.Id) {
		return s, AddResult{Outcome: Rejected, Reason: ReasonDuplicate}
	}
	position := Left
	if len(s.Slots) > 0 {
		position = Right
	}
	slots := make([]Slot, len(s.Slots), len(s.Slots)+1)
	copy(slots, s.Slots)
	return State{Slots: append(slots, Slot{Item: item, Position: position})}, AddResult{Outcome: Added}
}

// Add stages item for comparison. A full state or an item already staged
// leaves the state unchanged.
func Add(s State, item types.CatalogItem) State {
	ret, _ := TryAdd(s, item)
	return ret
}

// Remove drops any slot holding id and reassigns positions in the existing order.
func Remove(s State, id string) State {
	slots := make([]Slot, 0, len(s.Slots))
	for _, slot := range s.Slots {
		if slot.Item.Id != id {
			slots = append(slots, slot)
		}
	}
	return State{Slots: assignPositions(slots)}
}

func Clear(_ State) State {
	return Empty()
}

// Swap exchanges the left and right tags. Slots stay ordered left first.
func Swap(s State) State {
	if len(s.Slots) < MaxSlots {
		return s
	}
	return State{Slots: []Slot{
		{Item: s.Slots[1].Item, Position: Left},
		{Item: s.Slots[0].Item, Position: Right},
	}}
}

func assignPositions(slots []Slot) []Slot {
	for i := range slots {
		if i == 0 {
			slots[i].Position = Left
		} else {
			slots[i].Position = Right
		}
	}
	return slots
}

// Normalize turns a state received from outside into a valid one: left slots
// first, duplicates and anything past the second slot dropped.
func Normalize(s State) State {
	ordered := make([]Slot, 0, len(s.Slots))
	for _, position := range []Position{Left, Right, ""} {
		for _, slot := range s.Slots {
			if slot.Position == position || (position == "" && slot.Position != Left && slot.Position != Right) {
				ordered = append(ordered, slot)
			}
		}
	}
	ret := Empty()
	for _, slot := range ordered {
		ret = Add(ret, slot.Item)
	}
	return ret
}
