package domain

import "testing"

func TestClockTimeMinutes(t *testing.T) {
	tests := []struct {
		name    string
		input   ClockTime
		want    int
		wantErr bool
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "morning", input: "07:30", want: 450},
		{name: "last minute", input: "23:59", want: 1439},
		{name: "missing colon", input: "0730", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.Minutes()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Minutes() = %d, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Minutes() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Minutes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestClockFromMinutes(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  ClockTime
	}{
		{name: "zero", input: 0, want: "00:00"},
		{name: "mid morning", input: 450, want: "07:30"},
		{name: "wraps past midnight", input: MinutesPerDay + 90, want: "01:30"},
		{name: "negative wraps backwards", input: -60, want: "23:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClockFromMinutes(tt.input); got != tt.want {
				t.Errorf("ClockFromMinutes(%d) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestAddClockMinutes(t *testing.T) {
	tests := []struct {
		name   string
		minute int
		delta  int
		want   int
	}{
		{name: "plain addition", minute: 420, delta: 30, want: 450},
		{name: "wraps forward", minute: 23 * 60, delta: 120, want: 60},
		{name: "wraps backward", minute: 30, delta: -90, want: MinutesPerDay - 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddClockMinutes(tt.minute, tt.delta); got != tt.want {
				t.Errorf("AddClockMinutes(%d, %d) = %d, want %d", tt.minute, tt.delta, got, tt.want)
			}
		})
	}
}
