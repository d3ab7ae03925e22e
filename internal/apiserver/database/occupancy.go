package database

import (
	"context"
	"database/sql"
)

const entityOccupancy = "occupancy"

func (s *store) GetOccupancy(ctx context.Context, id uint) (*Occupancy, error) {
	return getByID[Occupancy](ctx, s, entityOccupancy, id)
}

func (s *store) ListOccupancies(ctx context.Context) ([]*Occupancy, error) {
	return listWhere[Occupancy](ctx, s, entityOccupancy, nil)
}

func (s *store) CreateOccupancy(ctx context.Context, o *Occupancy) error {
	return insert(ctx, s, entityOccupancy, o)
}

func (s *store) UpdateOccupancy(ctx context.Context, id uint, p OccupancyPatch) (*Occupancy, error) {
	return update[Occupancy](ctx, s, entityOccupancy, id, p.columns())
}

func (s *store) DeleteOccupancy(ctx context.Context, id uint) (*Occupancy, error) {
	return remove[Occupancy](ctx, s, entityOccupancy, id)
}

func (s *store) ListOccupancyByRoomAndDate(ctx context.Context, roomID uint, date Date) ([]*Occupancy, error) {
	return listWhere[Occupancy](ctx, s, entityOccupancy, "room_id = ? AND date = ?", roomID, date)
}

func (s *store) AverageOccupancy(ctx context.Context, roomID uint, start, end Date) (*float64, error) {
	var avg sql.NullFloat64
	err := s.conn(ctx).Model(&Occupancy{}).
		Select("AVG(person_count)").
		Where("room_id = ? AND date >= ? AND date <= ?", roomID, start, end).
		Row().Scan(&avg)
	if err != nil {
		return nil, classify(err, entityOccupancy)
	}
	if !avg.Valid {
		return nil, nil
	}
	v := avg.Float64
	return &v, nil
}
