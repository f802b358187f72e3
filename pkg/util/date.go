package util

import "time"

// DayUTC truncates t to midnight of its UTC calendar day.
func DayUTC(t time.Time) time.Time {
    t = t.UTC()
    return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ISODay formats t's UTC calendar day as YYYY-MM-DD.
func ISODay(t time.Time) string {
    return t.UTC().Format("2006-01-02")
}
