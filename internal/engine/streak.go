package engine

import "time"

// DayLayout is the calendar-day key format used throughout the engine.
const DayLayout = "2006-01-02"

// DayKey formats t as a YYYY-MM-DD day in loc.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayLayout)
}

// Streak counts consecutive active calendar days ending today or yesterday,
// where days are taken in now's location. Returns 0 when neither today nor
// yesterday has activity.
//
// Timestamps after today are skipped. A plain most-recent-first scan would
// see the future entry as the latest activity and report 0; skipping it
// instead keeps a mis-dated log from wiping out a real streak.
func Streak(timestamps []time.Time, now time.Time) int {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	todayKey := today.Format(DayLayout)

	active := make(map[string]struct{}, len(timestamps))
	for _, ts := range timestamps {
		key := DayKey(ts, loc)
		if key > todayKey {
			continue
		}
		active[key] = struct{}{}
	}

	day := today
	if _, ok := active[todayKey]; !ok {
		day = today.AddDate(0, 0, -1)
		if _, ok := active[day.Format(DayLayout)]; !ok {
			return 0
		}
	}

	streak := 0
	for {
		if _, ok := active[day.Format(DayLayout)]; !ok {
			return streak
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}
