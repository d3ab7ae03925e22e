package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegionsAndCenters(t *testing.T) {
	ts := newTestServer(t, false)
	userID, centerID, _, _ := ts.seedHierarchy(t)

	center := ts.mustDo(t, http.StatusOK, http.MethodGet, "/api/centers/"+itoa(centerID), nil)
	assert.Equal(t, "Santa Fe de Bogota", center.Get("city").String())
	assert.Equal(t, userID, center.Get("owner_id").Int())

	dup := ts.mustDo(t, http.StatusConflict, http.MethodPost, "/api/centers",
		map[string]any{"name": "Centro A", "city": "Cali", "region_id": "11", "owner_id": userID}, "X-Lang", "en")
	assert.Equal(t, "center Centro A already exists in region 11", dup.Get("error").String())

	orphan := ts.mustDo(t, http.StatusConflict, http.MethodPost, "/api/centers",
		map[string]any{"name": "Centro B", "city": "Cali", "region_id": "99", "owner_id": userID})
	assert.Equal(t, "referential_integrity", orphan.Get("kind").String())

	byCity := ts.mustDo(t, http.StatusOK, http.MethodGet, "/api/centers/city/santa%20fe%20DE%20bogota", nil)
	assert.Len(t, byCity.Array(), 1)
	ts.mustDo(t, http.StatusNotFound, http.MethodGet, "/api/centers/city/Medellin", nil)

	byRegion := ts.mustDo(t, http.StatusOK, http.MethodGet, "/api/centers/region/11", nil)
	assert.Len(t, byRegion.Array(), 1)
	ts.mustDo(t, http.StatusCreated, http.MethodPost, "/api/regions", map[string]any{"id": "76", "name": "Valle"})
	empty := ts.mustDo(t, http.StatusOK, http.MethodGet, "/api/centers/region/76", nil)
	assert.True(t, empty.IsArray())
	assert.Empty(t, empty.Array())

	renamed := ts.mustDo(t, http.StatusOK, http.MethodPut, "/api/centers/"+itoa(centerID), `{"city":"villa de LEYVA","name":null}`)
	assert.Equal(t, "Villa de Leyva", renamed.Get("city").String())
	assert.Equal(t, "Centro A", renamed.Get("name").String())

	region := ts.mustDo(t, http.StatusOK, http.MethodPut, "/api/regions/76", map[string]any{"name": "Valle del Cauca"})
	assert.Equal(t, "Valle del Cauca", region.Get("name").String())
	assert.Len(t, ts.mustDo(t, http.StatusOK, http.MethodGet, "/api/regions", nil).Array(), 2)

	inUse := ts.mustDo(t, http.StatusConflict, http.MethodDelete, "/api/regions/11", nil)
	assert.Equal(t, "referential_integrity", inUse.Get("kind").String())

	deleted := ts.mustDo(t, http.StatusOK, http.MethodDelete, "/api/regions/76", nil)
	assert.Equal(t, "registro eliminado: region", deleted.Get("message").String())
	assert.Equal(t, "76", deleted.Get("data.id").String())
	ts.mustDo(t, http.StatusNotFound, http.MethodGet, "/api/regions/76", nil)
}

func TestSitesAndRooms(t *testing.T) {
	ts := newTestServer(t, false)
	_, centerID, siteID, roomID := ts.seedHierarchy(t)

	sites := ts.mustDo(t, http.StatusOK, http.MethodGet, "/api/sites/center/"+itoa(centerID), nil)
	assert.Equal(t, []int64{siteID}, ids(sites))

	ts.mustDo(t, http.StatusConflict, http.MethodPost, "/api/sites/"+itoa(siteID)+"/centers/"+itoa(centerID), nil)
	ts.mustDo(t, http.StatusConflict, http.MethodPost, "/api/sites/"+itoa(siteID)+"/centers/999", nil)

	rooms := ts.mustDo(t, http.StatusOK, http.MethodGet, "/api/rooms/site/"+itoa(siteID), nil)
	assert.Equal(t, []int64{roomID}, ids(rooms))
	ts.mustDo(t, http.StatusNotFound, http.MethodGet, "/api/rooms/site/999", nil)

	byCircuit := ts.mustDo(t, http.StatusOK, http.MethodGet, "/api/rooms/circuit/trifasico", nil)
	assert.Equal(t, []int64{roomID}, ids(byCircuit))
	ts.mustDo(t, http.StatusNotFound, http.MethodGet, "/api/rooms/circuit/monofasico", nil)

	room := ts.mustDo(t, http.StatusOK, http.MethodPut, "/api/rooms/"+itoa(roomID), map[string]any{"name": "Sala 2"})
	assert.Equal(t, "Sala 2", room.Get("name").String())
	assert.Equal(t, "trifasico", room.Get("circuit_type").String())
	ts.mustDo(t, http.StatusConflict, http.MethodPut, "/api/rooms/"+itoa(roomID), map[string]any{"site_id": 999})

	// the site still has a room and a center link
	ts.mustDo(t, http.StatusConflict, http.MethodDelete, "/api/sites/"+itoa(siteID), nil)

	unlinked := ts.mustDo(t, http.StatusOK, http.MethodDelete, "/api/sites/"+itoa(siteID)+"/centers/"+itoa(centerID), nil)
	assert.Equal(t, centerID, unlinked.Get("data.center_id").Int())
	ts.mustDo(t, http.StatusNotFound, http.MethodDelete, "/api/sites/"+itoa(siteID)+"/centers/"+itoa(centerID), nil)
	ts.mustDo(t, http.StatusNotFound, http.MethodGet, "/api/sites/center/"+itoa(centerID), nil)

	ts.mustDo(t, http.StatusOK, http.MethodDelete, "/api/rooms/"+itoa(roomID), nil)
	ts.mustDo(t, http.StatusOK, http.MethodDelete, "/api/sites/"+itoa(siteID), nil)
	assert.Empty(t, ts.mustDo(t, http.StatusOK, http.MethodGet, "/api/sites", nil).Array())
}

func TestDevices(t *testing.T) {
	ts := newTestServer(t, false)
	userID, _, _, roomID := ts.seedHierarchy(t)

	low := ts.mustDo(t, http.StatusCreated, http.MethodPost, "/api/devices",
		map[string]any{"name": "Lampara", "consumption": 40, "installed_at": "2024-01-15", "room_id": roomID}).Get("id").Int()
	high := ts.mustDo(t, http.StatusCreated, http.MethodPost, "/api/devices",
		map[string]any{"name": "Horno", "consumption": 150, "installed_at": "2024-03-01", "room_id": roomID, "owner_id": userID}).Get("id").Int()

	bad := ts.mustDo(t, http.StatusBadRequest, http.MethodPost, "/api/devices", `{"room_id":1,"installed_at":"15/01/2024"}`)
	assert.Equal(t, "validation_failed", bad.Get("kind").String())
	ts.mustDo(t, http.StatusConflict, http.MethodPost, "/api/devices", map[string]any{"room_id": 999})

	above := ts.mustDo(t, http.StatusOK, http.MethodGet, "/api/devices/high-consumption/"+itoa(roomID)+"?threshold=100", nil)
	assert.Equal(t, []int64{high}, ids(above))
	ts.mustDo(t, http.StatusNotFound, http.MethodGet, "/api/devices/high-consumption/"+itoa(roomID)+"?threshold=150", nil)
	ts.mustDo(t, http.StatusBadRequest, http.MethodGet, "/api/devices/high-consumption/"+itoa(roomID)+"?threshold=lots", nil)

	installed := ts.mustDo(t, http.StatusOK, http.MethodGet, "/api/devices/installed?start=2024-01-15&end=2024-02-01", nil)
	assert.Equal(t, []int64{low}, ids(installed))
	installed = ts.mustDo(t, http.StatusOK, http.MethodGet, "/api/devices/installed?start=2024-01-01", nil)
	assert.Equal(t, []int64{low, high}, ids(installed))
	ts.mustDo(t, http.StatusNotFound, http.MethodGet, "/api/devices/installed?end=2023-12-31", nil)
	invalid := ts.mustDo(t, http.StatusBadRequest, http.MethodGet, "/api/devices/installed?start=yesterday", nil, "X-Lang", "en")
	assert.Equal(t, "start must be a date in YYYY-MM-DD format", invalid.Get("error").String())

	byRoom := ts.mustDo(t, http.StatusOK, http.MethodGet, "/api/devices/room/"+itoa(roomID), nil)
	assert.Equal(t, []int64{low, high}, ids(byRoom))

	patched := ts.mustDo(t, http.StatusOK, http.MethodPut, "/api/devices/"+itoa(low), `{"consumption":null,"description":"LED"}`)
	assert.Equal(t, 40.0, patched.Get("consumption").Float())
	assert.Equal(t, "LED", patched.Get("description").String())
	assert.Equal(t, "2024-01-15", patched.Get("installed_at").String())

	// the owner is referenced by a device
	ts.mustDo(t, http.StatusConflict, http.MethodDelete, "/api/users/"+itoa(userID), nil)

	ts.mustDo(t, http.StatusOK, http.MethodDelete, "/api/devices/"+itoa(high), nil)
	ts.mustDo(t, http.StatusNotFound, http.MethodGet, "/api/devices/"+itoa(high), nil)
	assert.Len(t, ts.mustDo(t, http.StatusOK, http.MethodGet, "/api/devices", nil).Array(), 1)
}

func TestOccupancy(t *testing.T) {
	ts := newTestServer(t, false)
	_, _, _, roomID := ts.seedHierarchy(t)

	for _, o := range []struct {
		count int
		date  string
	}{{60, "2024-05-01"}, {80, "2024-05-02"}, {70, "2024-05-02"}, {10, "2024-06-01"}} {
		ts.mustDo(t, http.StatusCreated, http.MethodPost, "/api/occupancy",
			map[string]any{"room_id": roomID, "person_count": o.count, "duration": 3600, "date": o.date})
	}

	sameDay := ts.mustDo(t, http.StatusOK, http.MethodGet, "/api/occupancy/room/"+itoa(roomID)+"/2024-05-02", nil)
	assert.Len(t, sameDay.Array(), 2)
	ts.mustDo(t, http.StatusNotFound, http.MethodGet, "/api/occupancy/room/"+itoa(roomID)+"/2024-05-03", nil)
	ts.mustDo(t, http.StatusBadRequest, http.MethodGet, "/api/occupancy/room/"+itoa(roomID)+"/may", nil)

	avg := ts.mustDo(t, http.StatusOK, http.MethodGet, "/api/occupancy/average/"+itoa(roomID)+"?start=2024-05-01&end=2024-05-31", nil)
	assert.InDelta(t, 70.0, avg.Get("average").Float(), 1e-9)
	ts.mustDo(t, http.StatusNotFound, http.MethodGet, "/api/occupancy/average/"+itoa(roomID)+"?start=2025-01-01&end=2025-01-31", nil)
	ts.mustDo(t, http.StatusBadRequest, http.MethodGet, "/api/occupancy/average/"+itoa(roomID)+"?start=2024-05-01", nil)

	all := ts.mustDo(t, http.StatusOK, http.MethodGet, "/api/occupancy", nil)
	first := all.Array()[0].Get("id").Int()
	updated := ts.mustDo(t, http.StatusOK, http.MethodPut, "/api/occupancy/"+itoa(first), map[string]any{"person_count": 65})
	assert.Equal(t, int64(65), updated.Get("person_count").Int())
	assert.Equal(t, int64(3600), updated.Get("duration").Int())
	ts.mustDo(t, http.StatusOK, http.MethodDelete, "/api/occupancy/"+itoa(first), nil)
}

func TestEnergyCostsAndSummary(t *testing.T) {
	ts := newTestServer(t, false)
	_, _, siteID, _ := ts.seedHierarchy(t)

	ts.mustDo(t, http.StatusNotFound, http.MethodGet, "/api/regions/11/summary", nil)
	ts.mustDo(t, http.StatusNotFound, http.MethodGet, "/api/regions/99/summary", nil)

	for _, ec := range []map[string]any{
		{"site_id": siteID, "year": 2024, "month": 1, "billing_start": "2024-01-01", "billing_end": "2024-01-31",
			"active_energy_kwh": 100.5, "reactive_energy_kvarh": 10, "invoice_amount": 500},
		{"site_id": siteID, "year": 2024, "month": 2, "billing_start": "2024-02-01", "billing_end": "2024-02-29",
			"active_energy_kwh": 200, "reactive_energy_kvarh": 20, "invoice_amount": 700},
	} {
		ts.mustDo(t, http.StatusCreated, http.MethodPost, "/api/energy-costs", ec)
	}
	ts.mustDo(t, http.StatusBadRequest, http.MethodPost, "/api/energy-costs", map[string]any{"site_id": siteID, "month": 13})

	period := ts.mustDo(t, http.StatusOK, http.MethodGet, "/api/energy-costs/site/"+itoa(siteID)+"/2024/2", nil)
	assert.Len(t, period.Array(), 1)
	assert.Equal(t, 700.0, period.Get("0.invoice_amount").Float())
	ts.mustDo(t, http.StatusNotFound, http.MethodGet, "/api/energy-costs/site/"+itoa(siteID)+"/2024/3", nil)
	ts.mustDo(t, http.StatusBadRequest, http.MethodGet, "/api/energy-costs/site/"+itoa(siteID)+"/2024/feb", nil)

	billed := ts.mustDo(t, http.StatusOK, http.MethodGet, "/api/energy-costs/site/"+itoa(siteID)+"?start=2024-01-01&end=2024-02-01", nil)
	assert.Len(t, billed.Array(), 2)
	ts.mustDo(t, http.StatusNotFound, http.MethodGet, "/api/energy-costs/site/"+itoa(siteID)+"?start=2023-01-01&end=2023-12-31", nil)

	sum := ts.mustDo(t, http.StatusOK, http.MethodGet, "/api/regions/11/summary", nil)
	assert.Equal(t, int64(2), sum.Get("records").Int())
	assert.InDelta(t, 300.5, sum.Get("total_active_energy_kwh").Float(), 1e-9)
	assert.InDelta(t, 30.0, sum.Get("total_reactive_energy_kvarh").Float(), 1e-9)
	assert.InDelta(t, 1200.0, sum.Get("total_invoice_amount").Float(), 1e-9)

	feb := ts.mustDo(t, http.StatusOK, http.MethodGet, "/api/regions/11/summary?year=2024&month=2", nil)
	assert.Equal(t, int64(1), feb.Get("records").Int())
	ts.mustDo(t, http.StatusBadRequest, http.MethodGet, "/api/regions/11/summary?month=0", nil)
}

func TestSubstations(t *testing.T) {
	ts := newTestServer(t, false)
	_, _, siteID, _ := ts.seedHierarchy(t)

	id := ts.mustDo(t, http.StatusCreated, http.MethodPost, "/api/substations",
		map[string]any{"name": "SE-1", "site_id": siteID, "voltage_level": 112.5}).Get("id").Int()

	bySite := ts.mustDo(t, http.StatusOK, http.MethodGet, "/api/substations/site/"+itoa(siteID), nil)
	assert.Equal(t, []int64{id}, ids(bySite))

	byVoltage := ts.mustDo(t, http.StatusOK, http.MethodGet, "/api/substations/voltage/112.5", nil)
	assert.Equal(t, []int64{id}, ids(byVoltage))
	ts.mustDo(t, http.StatusNotFound, http.MethodGet, "/api/substations/voltage/75", nil)
	ts.mustDo(t, http.StatusBadRequest, http.MethodGet, "/api/substations/voltage/high", nil)

	updated := ts.mustDo(t, http.StatusOK, http.MethodPut, "/api/substations/"+itoa(id), map[string]any{"voltage_level": 75})
	assert.Equal(t, 75.0, updated.Get("voltage_level").Float())
	assert.Equal(t, "SE-1", updated.Get("name").String())

	deleted := ts.mustDo(t, http.StatusOK, http.MethodDelete, "/api/substations/"+itoa(id), nil)
	assert.Equal(t, id, deleted.Get("data.id").Int())
	ts.mustDo(t, http.StatusNotFound, http.MethodDelete, "/api/substations/"+itoa(id), nil)
}
