package database

import "context"

const entityRoom = "room"

func (s *store) GetRoom(ctx context.Context, id uint) (*Room, error) {
	return getByID[Room](ctx, s, entityRoom, id)
}

func (s *store) ListRooms(ctx context.Context) ([]*Room, error) {
	return listWhere[Room](ctx, s, entityRoom, nil)
}

func (s *store) CreateRoom(ctx context.Context, room *Room) error {
	return insert(ctx, s, entityRoom, room)
}

func (s *store) UpdateRoom(ctx context.Context, id uint, p RoomPatch) (*Room, error) {
	return update[Room](ctx, s, entityRoom, id, p.columns())
}

func (s *store) DeleteRoom(ctx context.Context, id uint) (*Room, error) {
	return remove[Room](ctx, s, entityRoom, id)
}

func (s *store) ListRoomsBySite(ctx context.Context, siteID uint) ([]*Room, error) {
	return listWhere[Room](ctx, s, entityRoom, "site_id = ?", siteID)
}

func (s *store) ListRoomsByCircuitType(ctx context.Context, circuitType string) ([]*Room, error) {
	return listWhere[Room](ctx, s, entityRoom, "circuit_type = ?", circuitType)
}
