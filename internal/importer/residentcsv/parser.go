package residentcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/hmdang/bluemoon/internal/encoding"
	"github.com/hmdang/bluemoon/internal/resident"
)

// Parser reads resident roster CSV exports and produces resident params.
// It auto-detects which layout is being used by matching column headers
// against known profiles.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]resident.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, colMap, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching roster layout found: expected full name, national id and date of birth columns")
	}

	return parseRows(profile, colMap, rows[headerIdx+1:], headerIdx)
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

// matchesProfile checks if all required columns of a profile are present.
func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// dobLayouts are the date-of-birth formats seen in roster exports.
var dobLayouts = []string{"02/01/2006", "2006-01-02", "02-01-2006"}

// parseRows extracts residents from data rows using the matched profile.
// headerRowNum is the 0-based index of the header in the original file.
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]resident.CreateParams, error) {
	nameIdx := cols[p.FullNameCol]
	nationalIdx := cols[p.NationalCol]
	dobIdx := cols[p.DOBCol]

	genderIdx := optionalCol(cols, p.GenderCol)
	phoneIdx := optionalCol(cols, p.PhoneCol)

	var params []resident.CreateParams

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		name := cellValue(row, nameIdx)
		national := cellValue(row, nationalIdx)

		// Blank rows and footers carry neither value.
		if name == "" && national == "" {
			continue
		}

		if name == "" {
			return nil, fmt.Errorf("row %d: missing full name", rowNum)
		}

		if national == "" {
			return nil, fmt.Errorf("row %d: missing national id", rowNum)
		}

		dob, ok := parseDOB(row, dobIdx)
		if !ok {
			return nil, fmt.Errorf("row %d: unparseable date of birth", rowNum)
		}

		params = append(params, resident.CreateParams{
			FullName:    name,
			NationalID:  national,
			DateOfBirth: dob,
			Gender:      normalizeGender(cellValue(row, genderIdx)),
			PhoneNumber: cellValue(row, phoneIdx),
		})
	}

	return params, nil
}

func parseDOB(row []string, idx int) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dobLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// normalizeGender maps the values seen in exports onto a small set.
func normalizeGender(s string) string {
	switch strings.ToLower(s) {
	case "male", "m", "nam":
		return "male"
	case "female", "f", "nữ", "nu":
		return "female"
	case "":
		return ""
	}

	return "other"
}

func optionalCol(cols colIndex, name string) int {
	if name == "" {
		return -1
	}

	if idx, ok := cols[name]; ok {
		return idx
	}

	return -1
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
