package domain

import "testing"

func validProfile() *UserProfile {
	return &UserProfile{
		UserID:             "user-1",
		Age:                25,
		Gender:             GenderMale,
		HeightCm:           175,
		WeightKg:           70,
		Goal:               GoalLoseWeight,
		ActivityLevel:      ActivityModerate,
		FitnessLevel:       LevelBeginner,
		WorkoutDaysPerWeek: 3,
		AvailableEquipment: EquipmentGym,
		WakeUpTime:         "07:00",
		SleepTime:          "23:00",
	}
}

func TestUserProfileComplete(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*UserProfile)
		want   bool
	}{
		{name: "all fields set", mutate: func(p *UserProfile) {}, want: true},
		{name: "missing age", mutate: func(p *UserProfile) { p.Age = 0 }, want: false},
		{name: "missing height", mutate: func(p *UserProfile) { p.HeightCm = 0 }, want: false},
		{name: "missing weight", mutate: func(p *UserProfile) { p.WeightKg = 0 }, want: false},
		{name: "missing gender", mutate: func(p *UserProfile) { p.Gender = "" }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(p)
			if got := p.Complete(); got != tt.want {
				t.Errorf("Complete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*UserProfile)
		wantErr bool
	}{
		{name: "valid", mutate: func(p *UserProfile) {}},
		{name: "zero workout days", mutate: func(p *UserProfile) { p.WorkoutDaysPerWeek = 0 }, wantErr: true},
		{name: "eight workout days", mutate: func(p *UserProfile) { p.WorkoutDaysPerWeek = 8 }, wantErr: true},
		{name: "unknown goal", mutate: func(p *UserProfile) { p.Goal = "get_swole" }, wantErr: true},
		{name: "unknown activity", mutate: func(p *UserProfile) { p.ActivityLevel = "couch" }, wantErr: true},
		{name: "unknown equipment", mutate: func(p *UserProfile) { p.AvailableEquipment = "spaceship" }, wantErr: true},
		{name: "bad wake time", mutate: func(p *UserProfile) { p.WakeUpTime = "25:00" }, wantErr: true},
		{name: "bad sleep time", mutate: func(p *UserProfile) { p.SleepTime = "nope" }, wantErr: true},
		{name: "empty fitness level allowed", mutate: func(p *UserProfile) { p.FitnessLevel = "" }},
		{name: "bad preferred workout time", mutate: func(p *UserProfile) { p.PreferredWorkoutTime = "9am" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(p)
			err := p.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("Validate() = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}
