package database

import "context"

const entityDevice = "device"

func (s *store) GetDevice(ctx context.Context, id uint) (*Device, error) {
	return getByID[Device](ctx, s, entityDevice, id)
}

func (s *store) ListDevices(ctx context.Context) ([]*Device, error) {
	return listWhere[Device](ctx, s, entityDevice, nil)
}

func (s *store) CreateDevice(ctx context.Context, device *Device) error {
	return insert(ctx, s, entityDevice, device)
}

func (s *store) UpdateDevice(ctx context.Context, id uint, p DevicePatch) (*Device, error) {
	return update[Device](ctx, s, entityDevice, id, p.columns())
}

func (s *store) DeleteDevice(ctx context.Context, id uint) (*Device, error) {
	return remove[Device](ctx, s, entityDevice, id)
}

func (s *store) ListDevicesByRoom(ctx context.Context, roomID uint) ([]*Device, error) {
	return listWhere[Device](ctx, s, entityDevice, "room_id = ?", roomID)
}

func (s *store) ListDevicesInstalledBetween(ctx context.Context, start, end *Date) ([]*Device, error) {
	devices := make([]*Device, 0)
	q := s.conn(ctx).Where("installed_at IS NOT NULL")
	if start != nil {
		q = q.Where("installed_at >= ?", *start)
	}
	if end != nil {
		q = q.Where("installed_at <= ?", *end)
	}
	if err := q.Order("id asc").Find(&devices).Error; err != nil {
		return nil, classify(err, entityDevice)
	}
	return devices, nil
}

func (s *store) ListDevicesAboveConsumption(ctx context.Context, roomID uint, threshold float64) ([]*Device, error) {
	return listWhere[Device](ctx, s, entityDevice, "room_id = ? AND consumption > ?", roomID, threshold)
}
