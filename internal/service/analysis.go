package service

import (
	"fmt"
	"math"
	"time"

	"github.com/prperemyshlev/healthtrack-smoke/internal/domain"
)

// Assessment levels
const (
	LevelExcellent = "excellent"
	LevelGood      = "good"
	LevelFair      = "fair"
	LevelPoor      = "poor"
	LevelLow       = "low"
	LevelNormal    = "normal"
	LevelHigh      = "high"
)

// Assessment rates a single measurement against its personalized target
type Assessment struct {
	Value   float64 `json:"value"`
	Target  string  `json:"target"`
	Level   string  `json:"level"`
	Message string  `json:"message"`
}

// PersonalizedAnalysis is the personalized health analysis report
type PersonalizedAnalysis struct {
	UserID      string                       `json:"userId"`
	RecordDate  time.Time                    `json:"recordDate"`
	Standards   domain.PersonalizedStandards `json:"standards"`
	BMI         Assessment                   `json:"bmi"`
	Steps       Assessment                   `json:"steps"`
	HeartRate   Assessment                   `json:"heartRate"`
	Sleep       Assessment                   `json:"sleep"`
	Score       int                          `json:"score"`
	Suggestions []string                     `json:"suggestions"`
	DoctorNotes string                       `json:"doctorNotes,omitempty"`
}

// CalculateBMI returns weight / height² rounded to one decimal, 0 for missing input
func CalculateBMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	m := heightCm / 100
	return math.Round(weightKg/(m*m)*10) / 10
}

func assessBMI(bmi float64, s domain.PersonalizedStandards) Assessment {
	a := Assessment{
		Value:  bmi,
		Target: fmt.Sprintf("%.1f-%.1f", s.BMIMin, s.BMIMax),
	}
	switch {
	case bmi == 0:
		a.Level, a.Message = LevelFair, "height or weight not recorded"
	case bmi < s.BMIMin:
		a.Level, a.Message = LevelLow, "underweight for your age group"
	case bmi <= s.BMIMax:
		a.Level, a.Message = LevelNormal, "weight is in the healthy range"
	default:
		a.Level, a.Message = LevelHigh, "overweight for your age group"
	}
	return a
}

func assessSteps(steps int, s domain.PersonalizedStandards) Assessment {
	a := Assessment{
		Value:  float64(steps),
		Target: fmt.Sprintf(">= %d", s.StepsGoal),
	}
	ratio := 0.0
	if s.StepsGoal > 0 {
		ratio = float64(steps) / float64(s.StepsGoal)
	}
	switch {
	case ratio >= 1:
		a.Level, a.Message = LevelExcellent, "daily step goal reached"
	case ratio >= 0.7:
		a.Level, a.Message = LevelGood, "close to the daily step goal"
	case ratio >= 0.4:
		a.Level, a.Message = LevelFair, "below the daily step goal"
	default:
		a.Level, a.Message = LevelPoor, "far below the daily step goal"
	}
	return a
}

func assessHeartRate(hr int, s domain.PersonalizedStandards) Assessment {
	a := Assessment{
		Value:  float64(hr),
		Target: fmt.Sprintf("%d-%d", s.HeartRateMin, s.HeartRateMax),
	}
	switch {
	case hr < s.HeartRateMin:
		a.Level, a.Message = LevelLow, "resting heart rate below range"
	case hr > s.HeartRateMax:
		a.Level, a.Message = LevelHigh, "resting heart rate above range"
	default:
		a.Level, a.Message = LevelNormal, "resting heart rate in range"
	}
	return a
}

func assessSleep(hours float64, s domain.PersonalizedStandards) Assessment {
	a := Assessment{
		Value:  hours,
		Target: fmt.Sprintf(">= %.1f", s.SleepGoal),
	}
	switch {
	case hours >= s.SleepGoal:
		a.Level, a.Message = LevelGood, "enough sleep"
	case hours >= s.SleepGoal-1:
		a.Level, a.Message = LevelFair, "slightly short on sleep"
	default:
		a.Level, a.Message = LevelPoor, "not enough sleep"
	}
	return a
}

var levelScore = map[string]int{
	LevelExcellent: 25,
	LevelGood:      22,
	LevelNormal:    25,
	LevelFair:      15,
	LevelLow:       10,
	LevelHigh:      10,
	LevelPoor:      5,
}

var suggestions = map[string]string{
	"bmi":       "Review your diet and keep your weight in the recommended range.",
	"steps":     "Walk more during the day to reach your personalized step goal.",
	"heartRate": "Discuss your resting heart rate with your doctor.",
	"sleep":     "Go to bed earlier to reach your personalized sleep goal.",
}

// Analyze assesses a health record against personalized standards
func Analyze(profile *domain.HealthProfile, record *domain.HealthRecord) *PersonalizedAnalysis {
	standards := domain.StandardsFor(profile)

	out := &PersonalizedAnalysis{
		UserID:      profile.UserID,
		RecordDate:  record.RecordedAt,
		Standards:   standards,
		BMI:         assessBMI(CalculateBMI(record.WeightKg, record.HeightCm), standards),
		Steps:       assessSteps(record.Steps, standards),
		HeartRate:   assessHeartRate(record.HeartRate, standards),
		Sleep:       assessSleep(record.SleepHours, standards),
		Suggestions: []string{},
		DoctorNotes: profile.DoctorNotes,
	}

	for _, item := range []struct {
		key string
		a   Assessment
	}{
		{"bmi", out.BMI},
		{"steps", out.Steps},
		{"heartRate", out.HeartRate},
		{"sleep", out.Sleep},
	} {
		out.Score += levelScore[item.a.Level]
		switch item.a.Level {
		case LevelExcellent, LevelGood, LevelNormal:
		default:
			out.Suggestions = append(out.Suggestions, suggestions[item.key])
		}
	}

	return out
}
