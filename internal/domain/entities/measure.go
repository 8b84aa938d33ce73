package entities

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidMeasureType      = errors.New("invalid measure type")
	ErrInvalidMeasureDatetime  = errors.New("invalid measure datetime")
	ErrInvalidMeasureValue     = errors.New("invalid measure value")
	ErrMeasureAlreadyConfirmed = errors.New("measure already confirmed")
	ErrMonthlyMeasureExists    = errors.New("measure already reported for this month")
)

// MeasureType is the kind of meter being read.
type MeasureType string

const (
	MeasureTypeWater MeasureType = "WATER"
	MeasureTypeGas   MeasureType = "GAS"
)

// ParseMeasureType normalizes raw to upper case and checks it against the
// supported meter kinds.
func ParseMeasureType(raw string) (MeasureType, error) {
	switch t := MeasureType(strings.ToUpper(strings.TrimSpace(raw))); t {
	case MeasureTypeWater, MeasureTypeGas:
		return t, nil
	default:
		return "", ErrInvalidMeasureType
	}
}

// Measure is one submitted meter reading.
//
// Lifecycle:
//   - created pending (HasConfirmed=false) by the upload flow
//   - confirmed exactly once; MeasureValue may be replaced at that moment
//   - never deleted
//
// Storage model:
//   - DynamoDB: PK measure_uuid, GSI customer_code-index (PK customer_code, SK created_at)
//   - PostgreSQL: table measures, UNIQUE (customer_code, measure_type, measure_month)
type Measure struct {
	ID              string      `json:"id"`
	CustomerCode    string      `json:"customer_code"`
	MeasureUUID     string      `json:"measure_uuid"`
	MeasureDatetime time.Time   `json:"measure_datetime"`
	MeasureType     MeasureType `json:"measure_type"`
	HasConfirmed    bool        `json:"has_confirmed"`
	ImageURL        string      `json:"image_url"`
	MeasureValue    string      `json:"measure_value"`
	CreatedAt       time.Time   `json:"created_at"`
	ConfirmedAt     *time.Time  `json:"confirmed_at,omitempty"`
}

// Confirm moves a pending measure to confirmed, replacing its value.
func (m *Measure) Confirm(value string, at time.Time) error {
	if m.HasConfirmed {
		return ErrMeasureAlreadyConfirmed
	}
	confirmedAt := at.UTC()
	m.HasConfirmed = true
	m.MeasureValue = value
	m.ConfirmedAt = &confirmedAt
	return nil
}

// MonthKey identifies the uniqueness bucket of a measure.
func (m Measure) MonthKey() string {
	return MonthLockKey(m.CustomerCode, m.MeasureType, m.MeasureDatetime)
}

// MonthWindow returns [start of month, start of next month) for t, in UTC.
func MonthWindow(t time.Time) (start, end time.Time) {
	u := t.UTC()
	start = time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// MonthKey formats the UTC calendar month of t as YYYY-MM.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

func MonthLockKey(customerCode string, measureType MeasureType, t time.Time) string {
	return fmt.Sprintf("%s#%s#%s", customerCode, measureType, MonthKey(t))
}

var measureDatetimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseMeasureDatetime parses the reading time. Layouts without an offset are
// read as UTC; the result is always in UTC.
func ParseMeasureDatetime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrInvalidMeasureDatetime
	}
	for _, layout := range measureDatetimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMeasureDatetime, raw)
}

var numberToken = regexp.MustCompile(`^\d+(?:[.,]\d+)*$`)

// NormalizeMeasureValue reads the meter value out of a model answer and
// returns it in canonical decimal form ("00123" -> "123", "1,234.5" -> "1234.5").
//
// The answer must carry exactly one number. Words with letters ("m3", "M3",
// "kWh") are labels and ignored. A lone separator followed by exactly three
// digits ("1,234", "1.234") could be grouping or a fraction and is rejected.
func NormalizeMeasureValue(raw string) (string, error) {
	var candidates []string
	for _, field := range strings.Fields(raw) {
		field = strings.Trim(field, "\"'`:;()[]{}<>")
		field = strings.TrimRight(field, ".,!?")
		if !strings.ContainsAny(field, "0123456789") || strings.IndexFunc(field, unicode.IsLetter) >= 0 {
			continue
		}
		candidates = append(candidates, field)
	}
	if len(candidates) != 1 {
		return "", fmt.Errorf("%w: %q", ErrInvalidMeasureValue, raw)
	}

	canonical, ok := canonicalNumber(candidates[0])
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidMeasureValue, raw)
	}
	d, err := decimal.NewFromString(canonical)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidMeasureValue, raw)
	}
	return d.String(), nil
}

// canonicalNumber strips grouping separators and turns the decimal separator
// into '.'. With both ',' and '.' present the last one is the decimal mark.
func canonicalNumber(token string) (string, bool) {
	if !numberToken.MatchString(token) {
		return "", false
	}
	commas, dots := strings.Count(token, ","), strings.Count(token, ".")
	switch {
	case commas == 0 && dots == 0:
		return token, true
	case commas > 0 && dots > 0:
		decimalSep, groupSep := ".", ","
		if strings.LastIndex(token, ",") > strings.LastIndex(token, ".") {
			decimalSep, groupSep = ",", "."
		}
		if strings.Count(token, decimalSep) != 1 {
			return "", false
		}
		intPart, frac, _ := strings.Cut(token, decimalSep)
		if !validGrouping(strings.Split(intPart, groupSep)) {
			return "", false
		}
		return strings.ReplaceAll(intPart, groupSep, "") + "." + frac, true
	}

	sep := ","
	if dots > 0 {
		sep = "."
	}
	parts := strings.Split(token, sep)
	if len(parts) > 2 {
		if !validGrouping(parts) {
			return "", false
		}
		return strings.Join(parts, ""), true
	}
	if looksGrouped(parts) {
		return "", false
	}
	return parts[0] + "." + parts[1], true
}

// validGrouping reports whether parts are thousands groups: a leading group of
// one to three digits without a leading zero, then groups of exactly three.
func validGrouping(parts []string) bool {
	if len(parts) < 2 || !looksGrouped(parts[:2]) {
		return false
	}
	for _, p := range parts[2:] {
		if len(p) != 3 {
			return false
		}
	}
	return true
}

func looksGrouped(parts []string) bool {
	head := parts[0]
	return len(head) >= 1 && len(head) <= 3 && head[0] != '0' && len(parts[1]) == 3
}
