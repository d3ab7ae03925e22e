package importer

import (
	"fmt"
	"strings"
)

// Column titles, compared after foldHeader.
const (
	colRegionCode = "codigo regional"
	colRegionName = "regional"
	colCenterCode = "cod"
	colCenterName = "descripcion centro de costos"
	colSite       = "sedes"
	colAddress    = "direccion"
	colCity       = "municipio"
)

var requiredColumns = []string{
	colRegionCode, colRegionName, colCenterCode, colCenterName, colSite, colAddress, colCity,
}

// Row is one normalized line of the centers sheet.
type Row struct {
	Line       int // 1-based, header included
	RegionCode string
	RegionName string
	CenterCode string
	CenterName string
	Site       string
	Address    string
	City       string
}

// ParseRows maps a sheet with a header line to rows. Blank lines are dropped.
func ParseRows(table [][]string) ([]Row, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("sheet is empty")
	}

	index := make(map[string]int, len(table[0]))
	for i, title := range table[0] {
		if key := foldHeader(title); key != "" {
			if _, dup := index[key]; !dup {
				index[key] = i
			}
		}
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}

	rows := make([]Row, 0, len(table)-1)
	for i, rec := range table[1:] {
		cell := func(col string) string {
			if j := index[col]; j < len(rec) {
				return NormalizeText(rec[j])
			}
			return ""
		}
		r := Row{
			Line:       i + 2,
			RegionCode: code(cell(colRegionCode)),
			RegionName: cell(colRegionName),
			CenterCode: code(cell(colCenterCode)),
			CenterName: cell(colCenterName),
			Site:       cell(colSite),
			Address:    cell(colAddress),
			City:       cell(colCity),
		}
		if r.empty() {
			continue
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func (r Row) empty() bool {
	return r.RegionCode == "" && r.RegionName == "" && r.CenterCode == "" &&
		r.CenterName == "" && r.Site == "" && r.Address == "" && r.City == ""
}
