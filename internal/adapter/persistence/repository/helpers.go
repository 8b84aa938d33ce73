package repository

import "time"

// sortableTimeLayout is fixed width so that string comparison in DynamoDB
// sort keys matches chronological order.
const sortableTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(sortableTimeLayout)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

func defaultString(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
