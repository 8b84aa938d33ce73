package entities

import (
	"errors"
	"testing"
	"time"
)

func TestParseMeasureType(t *testing.T) {
	cases := []struct {
		raw     string
		want    MeasureType
		wantErr bool
	}{
		{raw: "WATER", want: MeasureTypeWater},
		{raw: "water", want: MeasureTypeWater},
		{raw: " Gas ", want: MeasureTypeGas},
		{raw: "ELECTRICITY", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseMeasureType(tc.raw)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidMeasureType) {
				t.Fatalf("%q: expected ErrInvalidMeasureType, got %v", tc.raw, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("%q: expected %s, got %s (%v)", tc.raw, tc.want, got, err)
		}
	}
}

func TestParseMeasureDatetime(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
	}{
		{raw: "2024-03-15T10:00:00Z", want: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)},
		{raw: "2024-03-15T10:00:00.123Z", want: time.Date(2024, 3, 15, 10, 0, 0, 123000000, time.UTC)},
		{raw: "2024-04-01T01:00:00+03:00", want: time.Date(2024, 3, 31, 22, 0, 0, 0, time.UTC)},
		{raw: "2024-03-15T10:00:00", want: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)},
		{raw: "2024-03-15 10:00:00", want: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)},
		{raw: "2024-03-15", want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := ParseMeasureDatetime(tc.raw)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.raw, err)
		}
		if !got.Equal(tc.want) || got.Location() != time.UTC {
			t.Fatalf("%q: expected %s, got %s", tc.raw, tc.want, got)
		}
	}

	for _, raw := range []string{"", "  ", "15/03/2024", "yesterday"} {
		if _, err := ParseMeasureDatetime(raw); !errors.Is(err, ErrInvalidMeasureDatetime) {
			t.Fatalf("%q: expected ErrInvalidMeasureDatetime, got %v", raw, err)
		}
	}
}

func TestMonthWindow(t *testing.T) {
	start, end := MonthWindow(time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC))
	if !start.Equal(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start: %s", start)
	}
	if !end.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected end: %s", end)
	}

	// An instant that is still March locally but April in UTC belongs to April.
	local := time.Date(2024, 3, 31, 22, 0, 0, 0, time.FixedZone("BRT", -3*60*60))
	start, _ = MonthWindow(local)
	if start.Month() != time.April {
		t.Fatalf("expected April window, got %s", start)
	}
	if MonthKey(local) != "2024-04" {
		t.Fatalf("unexpected key: %s", MonthKey(local))
	}
}

func TestMeasure_MonthKey(t *testing.T) {
	m := Measure{CustomerCode: "cust-1", MeasureType: MeasureTypeGas, MeasureDatetime: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)}
	if got := m.MonthKey(); got != "cust-1#GAS#2024-03" {
		t.Fatalf("unexpected key: %s", got)
	}
}

func TestMeasure_Confirm(t *testing.T) {
	m := Measure{MeasureValue: "100"}
	now := time.Now()

	if err := m.Confirm("123", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.HasConfirmed || m.MeasureValue != "123" || m.ConfirmedAt == nil {
		t.Fatalf("unexpected measure: %+v", m)
	}

	if err := m.Confirm("999", now); !errors.Is(err, ErrMeasureAlreadyConfirmed) {
		t.Fatalf("expected ErrMeasureAlreadyConfirmed, got %v", err)
	}
	if m.MeasureValue != "123" {
		t.Fatalf("value changed after rejected confirmation: %s", m.MeasureValue)
	}
}

func TestNormalizeMeasureValue(t *testing.T) {
	cases := map[string]string{
		"00123":                    "123",
		"  4567\n":                 "4567",
		"4567.":                    "4567",
		"The reading is 0890.5 m3": "890.5",
		"12,50":                    "12.5",
		"0.500":                    "0.5",
		"12,345.6":                 "12345.6",
		"1.234,5":                  "1234.5",
		"1,234,567":                "1234567",
		"The meter M3 shows 04521": "4521",
	}
	for raw, want := range cases {
		got, err := NormalizeMeasureValue(raw)
		if err != nil || got != want {
			t.Fatalf("%q: expected %s, got %s (%v)", raw, want, got, err)
		}
	}

	rejected := []string{
		"no digits here",
		"1,234",
		"1.234",
		"Reading: 42 (second: 43)",
		"1,23,4",
		"12.345.6,7.8",
		"-5",
		"1,2345.6",
	}
	for _, raw := range rejected {
		if got, err := NormalizeMeasureValue(raw); !errors.Is(err, ErrInvalidMeasureValue) {
			t.Fatalf("%q: expected ErrInvalidMeasureValue, got %s (%v)", raw, got, err)
		}
	}
}

func TestNewMeasureEvent(t *testing.T) {
	at := time.Date(2024, 3, 15, 10, 0, 0, 0, time.FixedZone("X", 3600))
	m := Measure{MeasureUUID: "u-1", CustomerCode: "c-1", MeasureType: MeasureTypeWater, MeasureValue: "10", HasConfirmed: true}

	ev := NewMeasureEvent(MeasureEventConfirmed, m, at)
	if ev.Type != MeasureEventConfirmed || ev.MeasureUUID != "u-1" || !ev.HasConfirmed {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.OccurredAt.Location() != time.UTC {
		t.Fatalf("expected UTC occurred_at")
	}
}
