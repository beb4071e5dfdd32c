package format

import "time"

// TimeLabelLayout is a time-of-day without date, as an en-US locale renders it.
const TimeLabelLayout = "3:04:05 PM"

// TimeLabel renders t as a time of day in loc (nil means time.Local).
func TimeLabel(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(TimeLabelLayout)
}
