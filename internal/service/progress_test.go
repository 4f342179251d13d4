package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainloop/fitplan/internal/domain"
)

func TestAnalyzeEmptySeries(t *testing.T) {
	analyzer := NewProgressAnalyzer()

	m := analyzer.Analyze(AnalysisInput{Goal: domain.GoalLoseWeight})

	assert.Equal(t, 0, m.DaysTracked)
	assert.Equal(t, domain.TrendMaintaining, m.Trend)
	assert.Zero(t, m.WeightChangeKg)
	assert.Zero(t, m.WorkoutAdherencePct)
	assert.False(t, m.Plateau.IsPlateau)
	assert.Equal(t, domain.PlateauNone, m.Plateau.Severity)
	assert.False(t, m.Prediction.Predictable)
}

func TestWorkoutAdherenceAndStreaks(t *testing.T) {
	analyzer := NewProgressAnalyzer()

	// Seven days, every one with a workout: 7 completed against 4 planned
	// for the week, capped at 100%.
	var records []*domain.DailyTrackingRecord
	for i := 0; i < 7; i++ {
		records = append(records, trackingDay(i, func(r *domain.DailyTrackingRecord) {
			r.WorkoutsCompleted = 1
		}))
	}

	m := analyzer.Analyze(AnalysisInput{
		Records:            records,
		Goal:               domain.GoalLoseWeight,
		WorkoutDaysPerWeek: 4,
	})

	assert.Equal(t, 100.0, m.WorkoutAdherencePct)
	assert.Equal(t, 7, m.CurrentStreak)
	assert.Equal(t, 7, m.LongestStreak)
}

func TestStreaksBrokenRun(t *testing.T) {
	analyzer := NewProgressAnalyzer()

	// Workout pattern: 3 on, 1 off, 2 on. Longest 3, current 2.
	pattern := []int{1, 1, 1, 0, 1, 1}
	var records []*domain.DailyTrackingRecord
	for i, w := range pattern {
		w := w
		records = append(records, trackingDay(i, func(r *domain.DailyTrackingRecord) {
			r.WorkoutsCompleted = w
		}))
	}

	current, longest := analyzer.streaks(records)
	assert.Equal(t, 2, current)
	assert.Equal(t, 3, longest)
}

func TestWeeklyAverageChangeAndTrend(t *testing.T) {
	analyzer := NewProgressAnalyzer()

	// 14 days dropping 0.1 kg per day: prior-7 avg 79.7, last-7 avg 79.0.
	var records []*domain.DailyTrackingRecord
	for i := 0; i < 14; i++ {
		weight := 80.0 - 0.1*float64(i)
		records = append(records, trackingDay(i, func(r *domain.DailyTrackingRecord) {
			r.WeightKg = weight
		}))
	}

	m := analyzer.Analyze(AnalysisInput{Records: records, Goal: domain.GoalLoseWeight, StartWeightKg: 80})

	assert.InDelta(t, -0.7, m.WeeklyAverageChangeKg, 0.01)
	assert.Equal(t, domain.TrendLosing, m.Trend)
	assert.InDelta(t, -1.3, m.WeightChangeKg, 0.01)
}

func TestWeeklyAverageChangeNeedsSevenWeighIns(t *testing.T) {
	analyzer := NewProgressAnalyzer()

	var records []*domain.DailyTrackingRecord
	for i := 0; i < 6; i++ {
		weight := 80.0 - float64(i)
		records = append(records, trackingDay(i, func(r *domain.DailyTrackingRecord) {
			r.WeightKg = weight
		}))
	}

	m := analyzer.Analyze(AnalysisInput{Records: records, Goal: domain.GoalLoseWeight})
	assert.Zero(t, m.WeeklyAverageChangeKg)
	assert.Equal(t, domain.TrendMaintaining, m.Trend)
}

func TestDetectPlateau(t *testing.T) {
	analyzer := NewProgressAnalyzer()

	flatSeries := func(days int, weight float64) []*domain.DailyTrackingRecord {
		var records []*domain.DailyTrackingRecord
		for i := 0; i < days; i++ {
			records = append(records, trackingDay(i, func(r *domain.DailyTrackingRecord) {
				r.WeightKg = weight
			}))
		}
		return records
	}

	t.Run("too few days", func(t *testing.T) {
		p := analyzer.DetectPlateau(flatSeries(10, 80))
		assert.False(t, p.IsPlateau)
	})

	t.Run("too few weigh-ins", func(t *testing.T) {
		records := flatSeries(14, 80)
		for i := 0; i < 6; i++ {
			records[i*2].WeightKg = 0 // not reported
		}
		p := analyzer.DetectPlateau(records)
		assert.False(t, p.IsPlateau)
		assert.Less(t, p.NonZeroWeighs, plateauMinWeighIns)
	})

	t.Run("flat fourteen days is mild", func(t *testing.T) {
		p := analyzer.DetectPlateau(flatSeries(14, 80))
		assert.True(t, p.IsPlateau)
		assert.Equal(t, domain.PlateauMild, p.Severity)
		assert.Equal(t, 14, p.DurationDays)
		assert.Less(t, p.WeightStdDev, plateauStdDevKg)
	})

	t.Run("flat month is severe with measured duration", func(t *testing.T) {
		p := analyzer.DetectPlateau(flatSeries(30, 80))
		assert.True(t, p.IsPlateau)
		assert.Equal(t, domain.PlateauSevere, p.Severity)
		assert.Equal(t, 30, p.DurationDays)
	})

	t.Run("trending weight is not flat", func(t *testing.T) {
		var records []*domain.DailyTrackingRecord
		for i := 0; i < 14; i++ {
			weight := 80.0 - 0.2*float64(i)
			records = append(records, trackingDay(i, func(r *domain.DailyTrackingRecord) {
				r.WeightKg = weight
			}))
		}
		p := analyzer.DetectPlateau(records)
		assert.False(t, p.IsPlateau)
	})

	t.Run("duration stops at the trend boundary", func(t *testing.T) {
		// 10 descending days followed by 20 flat ones: the flat run is
		// measured, not the whole series.
		var records []*domain.DailyTrackingRecord
		for i := 0; i < 10; i++ {
			weight := 84.0 - 0.4*float64(i)
			records = append(records, trackingDay(i, func(r *domain.DailyTrackingRecord) {
				r.WeightKg = weight
			}))
		}
		for i := 10; i < 30; i++ {
			records = append(records, trackingDay(i, func(r *domain.DailyTrackingRecord) {
				r.WeightKg = 80.0
			}))
		}
		p := analyzer.DetectPlateau(records)
		require.True(t, p.IsPlateau)
		assert.GreaterOrEqual(t, p.DurationDays, 20)
		assert.Less(t, p.DurationDays, 30)
	})
}

func TestPredictGoal(t *testing.T) {
	analyzer := NewProgressAnalyzer()

	var records []*domain.DailyTrackingRecord
	for i := 0; i < 14; i++ {
		weight := 80.0 - 0.1*float64(i)
		records = append(records, trackingDay(i, func(r *domain.DailyTrackingRecord) {
			r.WeightKg = weight
		}))
	}

	t.Run("predictable when target set", func(t *testing.T) {
		m := analyzer.Analyze(AnalysisInput{
			Records:        records,
			Goal:           domain.GoalLoseWeight,
			TargetWeightKg: 75,
		})
		require.True(t, m.Prediction.Predictable)
		assert.True(t, m.Prediction.OnTrack) // 0.7 kg/week inside the 0.3-1.2 band
		// 78.7 current, 3.7 kg remaining at 0.7 kg/week, about 37 days.
		assert.InDelta(t, 37, m.Prediction.DaysToGoal, 1)
		assert.False(t, m.Prediction.EstimatedDate.IsZero())
	})

	t.Run("no target weight", func(t *testing.T) {
		m := analyzer.Analyze(AnalysisInput{Records: records, Goal: domain.GoalLoseWeight})
		assert.False(t, m.Prediction.Predictable)
	})

	t.Run("wrong direction is off track", func(t *testing.T) {
		var gaining []*domain.DailyTrackingRecord
		for i := 0; i < 14; i++ {
			weight := 80.0 + 0.1*float64(i)
			gaining = append(gaining, trackingDay(i, func(r *domain.DailyTrackingRecord) {
				r.WeightKg = weight
			}))
		}
		m := analyzer.Analyze(AnalysisInput{
			Records:        gaining,
			Goal:           domain.GoalLoseWeight,
			TargetWeightKg: 75,
		})
		require.True(t, m.Prediction.Predictable)
		assert.False(t, m.Prediction.OnTrack)
	})
}

func TestOverallAndConsistencyScores(t *testing.T) {
	analyzer := NewProgressAnalyzer()

	var records []*domain.DailyTrackingRecord
	for i := 0; i < 7; i++ {
		records = append(records, trackingDay(i, func(r *domain.DailyTrackingRecord) {
			r.WorkoutsCompleted = 1
			r.SleepHours = 8
			r.WaterMl = 2500
			r.MoodRating = 5
		}))
	}

	m := analyzer.Analyze(AnalysisInput{
		Records:            records,
		Goal:               domain.GoalMaintain,
		WorkoutDaysPerWeek: 7,
		WaterGoalMl:        2500,
	})

	// Perfect adherence, sleep, water and mood: every component maxes out.
	assert.Equal(t, 100.0, m.OverallScore)
	assert.Equal(t, 100.0, m.ConsistencyScore)
}

func TestCalorieAdherence(t *testing.T) {
	analyzer := NewProgressAnalyzer()

	calories := []int{2000, 2100, 2350, 0, 1800}
	var records []*domain.DailyTrackingRecord
	for i, c := range calories {
		c := c
		records = append(records, trackingDay(i, func(r *domain.DailyTrackingRecord) {
			r.CaloriesConsumed = c
		}))
	}

	// Target 2000, 10% tolerance: 2000 and 2100 and 1800 are in, 2350 out,
	// zero is unreported. 3 of 4 reporting days.
	got := analyzer.calorieAdherence(records, 2000)
	assert.Equal(t, 75.0, got)
}

func TestGenerateInsights(t *testing.T) {
	analyzer := NewProgressAnalyzer()

	m := &domain.ProgressMetrics{
		WorkoutAdherencePct:   95,
		CurrentStreak:         10,
		AverageSleepHours:     5.5,
		Trend:                 domain.TrendLosing,
		WeeklyAverageChangeKg: -0.5,
		Plateau:               domain.PlateauDetection{IsPlateau: true, DurationDays: 16},
	}

	insights := analyzer.GenerateInsights(m, domain.GoalLoseWeight)
	require.NotEmpty(t, insights)

	// Sorted descending by priority.
	for i := 1; i < len(insights); i++ {
		assert.GreaterOrEqual(t, insights[i-1].Priority, insights[i].Priority)
	}

	types := make(map[domain.InsightType]bool)
	for _, ins := range insights {
		types[ins.Type] = true
	}
	assert.True(t, types[domain.InsightSuccess])
	assert.True(t, types[domain.InsightWarning])
}
