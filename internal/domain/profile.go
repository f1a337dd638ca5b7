package domain

import "time"

type AgeGroup string

const (
	AgeGroupChild     AgeGroup = "child"
	AgeGroupTeen      AgeGroup = "teen"
	AgeGroupAdult     AgeGroup = "adult"
	AgeGroupMiddleAge AgeGroup = "middle_age"
	AgeGroupSenior    AgeGroup = "senior"
)

// AgeGroupFor buckets an age in years
func AgeGroupFor(age int) AgeGroup {
	switch {
	case age <= 12:
		return AgeGroupChild
	case age <= 18:
		return AgeGroupTeen
	case age <= 40:
		return AgeGroupAdult
	case age <= 65:
		return AgeGroupMiddleAge
	default:
		return AgeGroupSenior
	}
}

type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

// HealthProfile is the personalized health profile of a user
type HealthProfile struct {
	UserID                  string        `json:"userId"`
	AgeGroup                AgeGroup      `json:"ageGroup"`
	ActivityLevel           ActivityLevel `json:"activityLevel"`
	HealthCondition         string        `json:"healthCondition"`
	HasCardiovascularIssues bool          `json:"hasCardiovascularIssues"`
	HasDiabetes             bool          `json:"hasDiabetes"`
	HasJointIssues          bool          `json:"hasJointIssues"`
	DoctorNotes             string        `json:"doctorNotes"`
	PersonalizedStepsGoal   *int          `json:"personalizedStepsGoal"`
	PersonalizedSleepGoal   *float64      `json:"personalizedSleepGoal"`
	CreatedAt               time.Time     `json:"createdAt"`
	UpdatedAt               time.Time     `json:"updatedAt"`
}

// HealthRecord is a single day of tracked measurements
type HealthRecord struct {
	UserID     string    `json:"userId"`
	WeightKg   float64   `json:"weight"`
	HeightCm   float64   `json:"height"`
	Steps      int       `json:"steps"`
	HeartRate  int       `json:"heartRate"`
	SleepHours float64   `json:"sleep"`
	RecordedAt time.Time `json:"recordDate"`
}
