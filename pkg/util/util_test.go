package util

import (
    "testing"
    "time"
)

func TestParseIntDefault(t *testing.T) {
    if got := ParseIntDefault("42", 7); got != 42 {
        t.Fatalf("unexpected %d", got)
    }
    if got := ParseIntDefault("", 7); got != 7 {
        t.Fatalf("expected default, got %d", got)
    }
    if got := ParseIntDefault("abc", 7); got != 7 {
        t.Fatalf("expected default for junk, got %d", got)
    }
}

func TestClampInt(t *testing.T) {
    if got := ClampInt(5, 30, 2000); got != 30 {
        t.Fatalf("unexpected %d", got)
    }
    if got := ClampInt(9999, 30, 2000); got != 2000 {
        t.Fatalf("unexpected %d", got)
    }
    if got := ClampInt(365, 30, 2000); got != 365 {
        t.Fatalf("unexpected %d", got)
    }
}

func TestDayUTC(t *testing.T) {
    loc := time.FixedZone("UTC+5", 5*3600)
    in := time.Date(2026, 8, 30, 2, 15, 0, 0, loc) // 2026-08-29 in UTC
    got := DayUTC(in)
    if got.Hour() != 0 || got.Minute() != 0 || got.Location() != time.UTC {
        t.Fatalf("not midnight UTC: %v", got)
    }
    if ISODay(in) != "2026-08-29" {
        t.Fatalf("unexpected day %s", ISODay(in))
    }
}
