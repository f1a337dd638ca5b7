package domain

// PersonalizedStandards are the targets a user's records are assessed against
type PersonalizedStandards struct {
	UserID        string        `json:"userId"`
	AgeGroup      AgeGroup      `json:"ageGroup"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	StepsGoal     int           `json:"stepsGoal"`
	HeartRateMin  int           `json:"heartRateMin"`
	HeartRateMax  int           `json:"heartRateMax"`
	SleepGoal     float64       `json:"sleepGoal"`
	WaterGoalMl   int           `json:"waterGoal"`
	BMIMin        float64       `json:"bmiMin"`
	BMIMax        float64       `json:"bmiMax"`
}

type baseline struct {
	steps        int
	heartRateMin int
	heartRateMax int
	sleep        float64
	bmiMin       float64
	bmiMax       float64
}

var baselines = map[AgeGroup]baseline{
	AgeGroupChild:     {steps: 12000, heartRateMin: 70, heartRateMax: 110, sleep: 10, bmiMin: 14, bmiMax: 20},
	AgeGroupTeen:      {steps: 10000, heartRateMin: 60, heartRateMax: 100, sleep: 9, bmiMin: 16.5, bmiMax: 23},
	AgeGroupAdult:     {steps: 10000, heartRateMin: 60, heartRateMax: 100, sleep: 8, bmiMin: 18.5, bmiMax: 24},
	AgeGroupMiddleAge: {steps: 8000, heartRateMin: 60, heartRateMax: 100, sleep: 7.5, bmiMin: 18.5, bmiMax: 24},
	AgeGroupSenior:    {steps: 6000, heartRateMin: 60, heartRateMax: 100, sleep: 7, bmiMin: 20, bmiMax: 26.9},
}

var activityStepDelta = map[ActivityLevel]int{
	ActivitySedentary:       -2000,
	ActivityLightlyActive:   -1000,
	ActivityVeryActive:      2000,
	ActivityExtremelyActive: 4000,
}

// StandardsFor derives the personalized standards of a profile.
// Explicit personalized goals on the profile win over the derived ones.
func StandardsFor(p *HealthProfile) PersonalizedStandards {
	b, ok := baselines[p.AgeGroup]
	if !ok {
		b = baselines[AgeGroupAdult]
	}

	s := PersonalizedStandards{
		UserID:        p.UserID,
		AgeGroup:      p.AgeGroup,
		ActivityLevel: p.ActivityLevel,
		StepsGoal:     b.steps + activityStepDelta[p.ActivityLevel],
		HeartRateMin:  b.heartRateMin,
		HeartRateMax:  b.heartRateMax,
		SleepGoal:     b.sleep,
		WaterGoalMl:   2000,
		BMIMin:        b.bmiMin,
		BMIMax:        b.bmiMax,
	}

	if p.HasCardiovascularIssues {
		s.HeartRateMax -= 10
	}
	if p.HasJointIssues && s.StepsGoal > 6000 {
		s.StepsGoal = 6000
	}
	if p.PersonalizedStepsGoal != nil {
		s.StepsGoal = *p.PersonalizedStepsGoal
	}
	if p.PersonalizedSleepGoal != nil {
		s.SleepGoal = *p.PersonalizedSleepGoal
	}

	return s
}
