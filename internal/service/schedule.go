package service

import (
	"time"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/domain"
)

// dayCompletionThreshold: a past day counts as completed when at least this
// share of its exercises is done.
const dayCompletionThreshold = 0.6

// CurrentWeek computes the 1-based week number for today within a plan
// starting at startDate, clamped to [1, totalWeeks]. Whole calendar days
// are counted; time-of-day is ignored.
func CurrentWeek(startDate, today time.Time, totalWeeks int) int {
	if totalWeeks < 1 {
		totalWeeks = 1
	}
	start := truncateToDay(startDate)
	now := truncateToDay(today)
	days := int(now.Sub(start).Hours() / 24)
	week := days/7 + 1
	if week < 1 {
		week = 1
	}
	if week > totalWeeks {
		week = totalWeeks
	}
	return week
}

// DayStatusFor derives the status of one plan day.
//
// date is the day's calendar date; completedRatio is the fraction of its
// exercises in the completion set; rest marks rest days; dayDone marks days
// explicitly completed as a whole.
func DayStatusFor(date, today time.Time, rest, dayDone bool, completedRatio float64) domain.DayStatus {
	if rest {
		return domain.DayStatusRest
	}
	d := truncateToDay(date)
	now := truncateToDay(today)

	switch {
	case d.After(now):
		return domain.DayStatusUpcoming
	case d.Equal(now):
		if dayDone || completedRatio >= 1 {
			return domain.DayStatusCompleted
		}
		return domain.DayStatusInProgress
	default:
		// A past day is completed when it was marked done or enough of
		// its exercises were, missed otherwise.
		if dayDone || completedRatio >= dayCompletionThreshold {
			return domain.DayStatusCompleted
		}
		return domain.DayStatusMissed
	}
}

// WorkoutDayStatus derives the status of a workout day from the tracker's
// local completion state.
func WorkoutDayStatus(day domain.WorkoutDay, today time.Time, tracker *CompletionTracker) domain.DayStatus {
	date, err := time.Parse("2006-01-02", day.Date)
	if err != nil {
		return domain.DayStatusUpcoming
	}
	names := day.ExerciseNames()
	ratio := 0.0
	if len(names) > 0 {
		ratio = float64(tracker.CompletedExerciseCount(day.Date, names)) / float64(len(names))
	}
	return DayStatusFor(date, today, day.Rest, tracker.IsDayCompleted(day.Date), ratio)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
