package hospital

// The facility has 6 floors of 10 rooms each. Rooms are identified by a
// global number 1-60; the floor is always derived from it, never stored,
// so a room/floor pair can never drift apart.
const (
	NumFloors     = 6
	RoomsPerFloor = 10
	NumRooms      = NumFloors * RoomsPerFloor
)

// FloorOf returns the floor a global room number belongs to.
func FloorOf(room int) int { return (room-1)/RoomsPerFloor + 1 }

// GlobalRoom maps a floor-local room number (1-10) to the global number.
func GlobalRoom(floor, local int) int { return (floor-1)*RoomsPerFloor + local }

// LocalRoom maps a global room number back to its floor-local number.
func LocalRoom(room int) int { return (room-1)%RoomsPerFloor + 1 }

// RoomRegistry owns the fixed room inventory and its occupancy state.
// Only the Coordinator flips occupancy; everything else reads.
type RoomRegistry struct {
	occupied map[int]bool // keyed by global room number, all 60 keys present
}

// NewRoomRegistry creates the registry with every room vacant.
func NewRoomRegistry() *RoomRegistry {
	occ := make(map[int]bool, NumRooms)
	for room := 1; room <= NumRooms; room++ {
		occ[room] = false
	}
	return &RoomRegistry{occupied: occ}
}

// validKey reports whether (room, floor) names a tracked room and the
// floor matches the one derived from the room number.
func (r *RoomRegistry) validKey(room, floor int) bool {
	_, ok := r.occupied[room]
	return ok && FloorOf(room) == floor
}

// IsAvailable reports whether (room, floor) is a tracked, vacant room.
// Unknown or inconsistent keys are never available.
func (r *RoomRegistry) IsAvailable(room, floor int) bool {
	return r.validKey(room, floor) && !r.occupied[room]
}

// Occupy marks the room occupied. Callers must check IsAvailable first;
// occupying a room that is already taken is a conflict, not a no-op.
func (r *RoomRegistry) Occupy(room, floor int) error {
	if !r.validKey(room, floor) {
		return Invalid("room %d on floor %d does not exist", room, floor)
	}
	if r.occupied[room] {
		return Conflict("room %d on floor %d is already occupied", room, floor)
	}
	r.occupied[room] = true
	return nil
}

// Release marks the room vacant. Releasing an already-vacant room is a
// no-op; only untracked keys are an error.
func (r *RoomRegistry) Release(room, floor int) error {
	if !r.validKey(room, floor) {
		return Invalid("room %d on floor %d does not exist", room, floor)
	}
	r.occupied[room] = false
	return nil
}

// Occupied reports the occupancy of a global room number.
func (r *RoomRegistry) Occupied(room int) bool { return r.occupied[room] }

// AvailableOnFloor returns the vacant global room numbers of a floor, in
// ascending order.
func (r *RoomRegistry) AvailableOnFloor(floor int) []int {
	var rooms []int
	for local := 1; local <= RoomsPerFloor; local++ {
		room := GlobalRoom(floor, local)
		if occ, ok := r.occupied[room]; ok && !occ {
			rooms = append(rooms, room)
		}
	}
	return rooms
}

// HasAvailableOnFloor reports whether any room on the floor is vacant.
func (r *RoomRegistry) HasAvailableOnFloor(floor int) bool {
	return len(r.AvailableOnFloor(floor)) > 0
}
