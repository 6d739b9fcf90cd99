package service

import "time"

// NormalizeWindow turns two calendar dates into the timestamp window
// [startDate 00:00:00, endDate 23:59:59] in UTC. Only the year, month and
// day of each argument are used.
func NormalizeWindow(startDate, endDate time.Time) (time.Time, time.Time) {
	sy, sm, sd := startDate.Date()
	ey, em, ed := endDate.Date()
	return time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC),
		time.Date(ey, em, ed, 23, 59, 59, 0, time.UTC)
}
