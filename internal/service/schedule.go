package service

import "github.com/homeright/backend/pkg/entity"

// DueInMonth reports whether a task with the given schedule applies to
// calendar month m. Pure classification, no clock involved.
//
// TODO: product owners to decide whether "seasonal" should cover all four
// season-start months; today it behaves exactly like "spring".
func DueInMonth(schedule entity.Schedule, taskMonth *int, m int) bool {
	switch schedule {
	case entity.ScheduleCustom:
		return taskMonth != nil && *taskMonth == m
	case entity.ScheduleMonthly:
		return true
	case entity.ScheduleQuarterly:
		return m == 1 || m == 4 || m == 7 || m == 10
	case entity.ScheduleAnnual:
		return m == 1
	case entity.ScheduleSpring:
		return m == 3
	case entity.ScheduleSummer:
		return m == 6
	case entity.ScheduleFall:
		return m == 9
	case entity.ScheduleWinter:
		return m == 12
	case entity.ScheduleSeasonal:
		return m == 3
	}
	return false
}
