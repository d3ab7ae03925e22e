package dto

import (
	"errors"
	"strings"

	"github.com/ecosedes/facilities/internal/apiserver/database"
	"github.com/ecosedes/facilities/pkg/patch"
	"github.com/go-playground/validator/v10"
)

// Update payloads apply the create rules to the fields they carry. Absent
// and null fields are not checked.

func NormalizeRegionPatch(p database.RegionPatch) (database.RegionPatch, error) {
	if v := p.Name.Value(); v != nil {
		if err := requireText("name", *v); err != nil {
			return p, err
		}
		p.Name = patch.NewOptional(strings.TrimSpace(*v))
	}
	return p, nil
}

// NormalizeCenterPatch also applies the city normalization used on create.
func NormalizeCenterPatch(p database.CenterPatch) (database.CenterPatch, error) {
	if v := p.Name.Value(); v != nil {
		if err := requireText("name", *v); err != nil {
			return p, err
		}
		p.Name = patch.NewOptional(strings.TrimSpace(*v))
	}
	if v := p.City.Value(); v != nil {
		if err := requireText("city", *v); err != nil {
			return p, err
		}
		p.City = patch.NewOptional(NormalizeCity(*v))
	}
	if v := p.RegionID.Value(); v != nil {
		id := strings.TrimSpace(*v)
		if err := checkVar("region_id", id, "required,max=64"); err != nil {
			return p, err
		}
		p.RegionID = patch.NewOptional(id)
	}
	return p, nil
}

func NormalizeSitePatch(p database.SitePatch) (database.SitePatch, error) {
	if v := p.Name.Value(); v != nil {
		if err := requireText("name", *v); err != nil {
			return p, err
		}
		p.Name = patch.NewOptional(strings.TrimSpace(*v))
	}
	return p, checkPresent("address", p.Address, "max=255")
}

func NormalizeRoomPatch(p database.RoomPatch) (database.RoomPatch, error) {
	return p, firstError(
		checkPresent("name", p.Name, "max=255"),
		checkPresent("circuit_type", p.CircuitType, "max=255"),
	)
}

func NormalizeDevicePatch(p database.DevicePatch) (database.DevicePatch, error) {
	return p, firstError(
		checkPresent("name", p.Name, "max=255"),
		checkPresent("consumption", p.Consumption, "gte=0"),
	)
}

func NormalizeOccupancyPatch(p database.OccupancyPatch) (database.OccupancyPatch, error) {
	return p, firstError(
		checkPresent("person_count", p.PersonCount, "gte=0"),
		checkPresent("duration", p.Duration, "gte=0"),
	)
}

func NormalizeEnergyCostPatch(p database.EnergyCostPatch) (database.EnergyCostPatch, error) {
	return p, firstError(
		checkPresent("month", p.Month, "gte=1,lte=12"),
		checkPresent("contract", p.Contract, "max=255"),
	)
}

func NormalizeSubstationPatch(p database.SubstationPatch) (database.SubstationPatch, error) {
	return p, checkPresent("name", p.Name, "max=255")
}

// checkPresent runs the validator tag against o when it holds a value.
func checkPresent[T any](field string, o patch.Optional[T], tag string) error {
	v := o.Value()
	if v == nil {
		return nil
	}
	return checkVar(field, *v, tag)
}

func checkVar(field string, v any, tag string) error {
	err := validate.Var(v, tag)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return invalid(field, ruleText(verrs[0]))
	}
	return err
}

func checkEmail(email string) error {
	return checkVar("email", email, "required,email,max=255")
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
