package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/trainloop/fitplan/internal/domain"
)

const (
	trendThresholdKgPerWeek = 0.1
	plateauMinTrackedDays   = 14
	plateauMinWeighIns      = 10
	plateauStdDevKg         = 0.3
	predictionMinRecords    = 7

	defaultWaterGoalMl   = 2500
	idealSleepHours      = 8.0
	calorieToleranceFrac = 0.10
)

// healthyWeeklyRate is the goal-specific band (kg/week, absolute) inside
// which progress counts as on track.
var healthyWeeklyRate = map[domain.Goal][2]float64{
	domain.GoalLoseWeight:  {0.3, 1.2},
	domain.GoalBuildMuscle: {0.2, 0.6},
}

// AnalysisInput bundles everything the analyzer needs. Records must be
// sorted ascending by date; the analyzer never mutates them.
type AnalysisInput struct {
	Records            []*domain.DailyTrackingRecord
	Goal               domain.Goal
	StartWeightKg      float64
	TargetWeightKg     float64
	WorkoutDaysPerWeek int
	TargetCalories     int
	WaterGoalMl        int
}

// ProgressAnalyzer computes derived adherence and trend metrics from the
// daily tracking series. Every derivation is a pure function over the
// record list; an empty list yields zeroed metrics, never an error.
type ProgressAnalyzer struct{}

// NewProgressAnalyzer creates a new analyzer.
func NewProgressAnalyzer() *ProgressAnalyzer {
	return &ProgressAnalyzer{}
}

// Analyze computes the full metrics view.
func (a *ProgressAnalyzer) Analyze(in AnalysisInput) *domain.ProgressMetrics {
	m := &domain.ProgressMetrics{
		Trend:   domain.TrendMaintaining,
		Plateau: domain.PlateauDetection{Severity: domain.PlateauNone},
	}
	records := in.Records
	m.DaysTracked = len(records)
	if len(records) == 0 {
		return m
	}

	start := in.StartWeightKg
	if start == 0 {
		start = firstNonZeroWeight(records)
	}
	current := lastNonZeroWeight(records)
	if start > 0 && current > 0 {
		m.WeightChangeKg = round1(current - start)
		m.WeightChangePercent = round1(m.WeightChangeKg / start * 100)
	}

	m.WeeklyAverageChangeKg = a.weeklyAverageChange(records)
	switch {
	case m.WeeklyAverageChangeKg > trendThresholdKgPerWeek:
		m.Trend = domain.TrendGaining
	case m.WeeklyAverageChangeKg < -trendThresholdKgPerWeek:
		m.Trend = domain.TrendLosing
	}

	m.WorkoutAdherencePct = a.workoutAdherence(records, in.WorkoutDaysPerWeek)
	m.CurrentStreak, m.LongestStreak = a.streaks(records)
	m.CalorieAdherencePct = a.calorieAdherence(records, in.TargetCalories)

	m.AverageSleepHours = round1(averageOf(records, func(r *domain.DailyTrackingRecord) float64 { return r.SleepHours }))
	m.AverageWaterMl = math.Round(averageOf(records, func(r *domain.DailyTrackingRecord) float64 { return float64(r.WaterMl) }))
	m.AverageMood = round1(averageOf(records, func(r *domain.DailyTrackingRecord) float64 { return float64(r.MoodRating) }))
	m.AverageEnergy = round1(averageOf(records, func(r *domain.DailyTrackingRecord) float64 { return float64(r.EnergyLevel) }))
	m.AverageRecovery = round1(averageOf(records, func(r *domain.DailyTrackingRecord) float64 { return r.RecoveryLevel }))

	m.Plateau = a.DetectPlateau(records)
	m.Prediction = a.predictGoal(records, in, current, m.WeeklyAverageChangeKg)
	m.OverallScore = a.overallScore(m, in.WaterGoalMl)
	m.ConsistencyScore = a.consistencyScore(records)

	return m
}

// weeklyAverageChange is avg(last 7) minus avg(prior 7) over the most
// recent 14 records, using non-zero weigh-ins only. Fewer than 7 non-zero
// weights in the window yields 0.
func (a *ProgressAnalyzer) weeklyAverageChange(records []*domain.DailyTrackingRecord) float64 {
	window := records
	if len(window) > 14 {
		window = window[len(window)-14:]
	}

	var weights []float64
	for _, r := range window {
		if r.WeightKg > 0 {
			weights = append(weights, r.WeightKg)
		}
	}
	if len(weights) < 7 {
		return 0
	}

	split := len(weights) - 7
	prior := weights[:split]
	last := weights[split:]
	if len(prior) == 0 {
		return 0
	}
	return round2(mean(last) - mean(prior))
}

// workoutAdherence is completed workouts over the planned count for the
// tracked span, capped at 100%.
func (a *ProgressAnalyzer) workoutAdherence(records []*domain.DailyTrackingRecord, daysPerWeek int) float64 {
	if daysPerWeek <= 0 || len(records) == 0 {
		return 0
	}
	completed := 0
	for _, r := range records {
		completed += r.WorkoutsCompleted
	}
	weeks := int(math.Ceil(float64(len(records)) / 7.0))
	planned := weeks * daysPerWeek
	pct := float64(completed) / float64(planned) * 100
	if pct > 100 {
		pct = 100
	}
	return round1(pct)
}

// streaks returns the trailing consecutive-workout-day run and the longest
// run over the whole series.
func (a *ProgressAnalyzer) streaks(records []*domain.DailyTrackingRecord) (current, longest int) {
	run := 0
	for _, r := range records {
		if r.WorkoutsCompleted >= 1 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].WorkoutsCompleted < 1 {
			break
		}
		current++
	}
	return current, longest
}

// calorieAdherence is the share of reporting days landing within 10% of
// the calorie target.
func (a *ProgressAnalyzer) calorieAdherence(records []*domain.DailyTrackingRecord, target int) float64 {
	if target <= 0 {
		return 0
	}
	reported, within := 0, 0
	tolerance := float64(target) * calorieToleranceFrac
	for _, r := range records {
		if r.CaloriesConsumed <= 0 {
			continue
		}
		reported++
		if math.Abs(float64(r.CaloriesConsumed-target)) <= tolerance {
			within++
		}
	}
	if reported == 0 {
		return 0
	}
	return round1(float64(within) / float64(reported) * 100)
}

// DetectPlateau checks whether the recent weight trend is statistically
// flat: at least 14 tracked days, at least 10 non-zero weigh-ins in the
// last 14, and a weight standard deviation under 0.3 kg. The duration is
// measured by extending the flat window backwards through the series
// rather than reported as a fixed constant.
func (a *ProgressAnalyzer) DetectPlateau(records []*domain.DailyTrackingRecord) domain.PlateauDetection {
	out := domain.PlateauDetection{Severity: domain.PlateauNone}
	if len(records) < plateauMinTrackedDays {
		return out
	}

	window := records[len(records)-plateauMinTrackedDays:]
	weights := nonZeroWeights(window)
	out.SampledDays = len(window)
	out.NonZeroWeighs = len(weights)
	if len(weights) < plateauMinWeighIns {
		return out
	}

	out.WeightStdDev = round2(stdDev(weights))
	if out.WeightStdDev >= plateauStdDevKg {
		return out
	}

	out.IsPlateau = true
	out.DurationDays = a.flatRunLength(records)
	switch {
	case out.DurationDays >= 28:
		out.Severity = domain.PlateauSevere
	case out.DurationDays >= 21:
		out.Severity = domain.PlateauModerate
	default:
		out.Severity = domain.PlateauMild
	}
	return out
}

// flatRunLength finds the longest trailing window whose non-zero weights
// still read as flat. Quadratic in the worst case, but series are short.
func (a *ProgressAnalyzer) flatRunLength(records []*domain.DailyTrackingRecord) int {
	best := plateauMinTrackedDays
	for k := plateauMinTrackedDays; k <= len(records); k++ {
		weights := nonZeroWeights(records[len(records)-k:])
		if len(weights) < plateauMinWeighIns {
			break
		}
		if stdDev(weights) >= plateauStdDevKg {
			break
		}
		best = k
	}
	return best
}

// predictGoal estimates days to the target weight from the recent weekly
// rate. Requires a target weight and at least 7 records.
func (a *ProgressAnalyzer) predictGoal(records []*domain.DailyTrackingRecord, in AnalysisInput, current, weeklyRate float64) domain.GoalPrediction {
	out := domain.GoalPrediction{WeeklyRateKg: weeklyRate}
	if in.TargetWeightKg <= 0 || len(records) < predictionMinRecords || current <= 0 {
		return out
	}

	band, hasBand := healthyWeeklyRate[in.Goal]
	if hasBand {
		rate := math.Abs(weeklyRate)
		directionOK := (in.Goal == domain.GoalLoseWeight && weeklyRate < 0) ||
			(in.Goal == domain.GoalBuildMuscle && weeklyRate > 0)
		out.OnTrack = directionOK && rate >= band[0] && rate <= band[1]
	}

	if math.Abs(weeklyRate) < 1e-9 {
		return out
	}

	remaining := math.Abs(in.TargetWeightKg - current)
	days := int(math.Ceil(remaining / math.Abs(weeklyRate) * 7))
	out.Predictable = true
	out.DaysToGoal = days
	out.EstimatedDate = domain.NormalizeDate(time.Now().UTC()).AddDate(0, 0, days)
	return out
}

// overallScore is the weighted composite: workout adherence 40%, sleep,
// water and mood 20% each, every sub-score capped at 100.
func (a *ProgressAnalyzer) overallScore(m *domain.ProgressMetrics, waterGoalMl int) float64 {
	if waterGoalMl <= 0 {
		waterGoalMl = defaultWaterGoalMl
	}
	sleepScore := capScore(m.AverageSleepHours / idealSleepHours * 100)
	waterScore := capScore(m.AverageWaterMl / float64(waterGoalMl) * 100)
	moodScore := capScore(m.AverageMood / 5 * 100)
	score := m.WorkoutAdherencePct*0.4 + sleepScore*0.2 + waterScore*0.2 + moodScore*0.2
	return round1(score)
}

// consistencyScore is check-in density: records present over the calendar
// span between first and last entry.
func (a *ProgressAnalyzer) consistencyScore(records []*domain.DailyTrackingRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	first := domain.NormalizeDate(records[0].Date)
	last := domain.NormalizeDate(records[len(records)-1].Date)
	span := int(last.Sub(first).Hours()/24) + 1
	if span < len(records) {
		span = len(records)
	}
	return round1(capScore(float64(len(records)) / float64(span) * 100))
}

// GenerateInsights converts metrics into a prioritized display list, sorted
// descending by priority. Missing data yields fewer insights, never an error.
func (a *ProgressAnalyzer) GenerateInsights(m *domain.ProgressMetrics, goal domain.Goal) []domain.Insight {
	var insights []domain.Insight

	switch {
	case m.WorkoutAdherencePct >= 90:
		insights = append(insights, domain.Insight{Type: domain.InsightSuccess, Priority: 4,
			Message: fmt.Sprintf("Outstanding consistency: %.0f%% workout adherence. Keep the momentum going.", m.WorkoutAdherencePct)})
	case m.WorkoutAdherencePct > 0 && m.WorkoutAdherencePct < 50:
		insights = append(insights, domain.Insight{Type: domain.InsightWarning, Priority: 5,
			Message: fmt.Sprintf("Workout adherence is at %.0f%%. Consider fewer weekly sessions you can actually hit.", m.WorkoutAdherencePct)})
	}

	if m.Plateau.IsPlateau {
		insights = append(insights, domain.Insight{Type: domain.InsightWarning, Priority: 4,
			Message: fmt.Sprintf("Weight has been flat for about %d days. A calorie or training change can restart progress.", m.Plateau.DurationDays)})
	}

	if m.CurrentStreak >= 7 {
		insights = append(insights, domain.Insight{Type: domain.InsightSuccess, Priority: 3,
			Message: fmt.Sprintf("You're on a %d-day workout streak.", m.CurrentStreak)})
	}

	if m.AverageSleepHours > 0 && m.AverageSleepHours < 6.5 {
		insights = append(insights, domain.Insight{Type: domain.InsightWarning, Priority: 4,
			Message: fmt.Sprintf("Averaging %.1f hours of sleep. Recovery and results suffer below 6.5 hours.", m.AverageSleepHours)})
	}

	if (goal == domain.GoalLoseWeight && m.Trend == domain.TrendLosing) ||
		(goal == domain.GoalBuildMuscle && m.Trend == domain.TrendGaining) {
		insights = append(insights, domain.Insight{Type: domain.InsightSuccess, Priority: 3,
			Message: fmt.Sprintf("Your weight trend (%.2f kg/week) is moving in the right direction.", m.WeeklyAverageChangeKg)})
	}

	if m.Prediction.Predictable {
		if m.Prediction.OnTrack {
			insights = append(insights, domain.Insight{Type: domain.InsightSuccess, Priority: 2,
				Message: fmt.Sprintf("On track to reach your target weight in about %d days.", m.Prediction.DaysToGoal)})
		} else {
			insights = append(insights, domain.Insight{Type: domain.InsightInfo, Priority: 3,
				Message: "Your current rate of change is outside the recommended range for your goal."})
		}
	}

	if m.AverageWaterMl > 0 && m.AverageWaterMl < defaultWaterGoalMl*7/10 {
		insights = append(insights, domain.Insight{Type: domain.InsightInfo, Priority: 2,
			Message: "Hydration is running below target. Keep a bottle within reach during the day."})
	}

	sort.SliceStable(insights, func(i, j int) bool { return insights[i].Priority > insights[j].Priority })
	return insights
}

func firstNonZeroWeight(records []*domain.DailyTrackingRecord) float64 {
	for _, r := range records {
		if r.WeightKg > 0 {
			return r.WeightKg
		}
	}
	return 0
}

func lastNonZeroWeight(records []*domain.DailyTrackingRecord) float64 {
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].WeightKg > 0 {
			return records[i].WeightKg
		}
	}
	return 0
}

func nonZeroWeights(records []*domain.DailyTrackingRecord) []float64 {
	var out []float64
	for _, r := range records {
		if r.WeightKg > 0 {
			out = append(out, r.WeightKg)
		}
	}
	return out
}

func averageOf(records []*domain.DailyTrackingRecord, value func(*domain.DailyTrackingRecord) float64) float64 {
	count := 0
	sum := 0.0
	for _, r := range records {
		v := value(r)
		if v > 0 {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		sum += (v - m) * (v - m)
	}
	return math.Sqrt(sum / float64(len(values)))
}

func capScore(v float64) float64 {
	if v > 100 {
		return 100
	}
	if v < 0 {
		return 0
	}
	return v
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
