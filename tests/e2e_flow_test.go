package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainloop/fitplan/internal/config"
	"github.com/trainloop/fitplan/internal/server"
)

// The golden path: register, onboard, derive targets, generate plans, check
// in, review progress and gamification, then rotate and revoke tokens.
func TestGoldenPath(t *testing.T) {
	// 1. Setup Infrastructure
	// MongoDB (Container)
	db, cleanupDB := SetupTestDB(t)
	defer cleanupDB()

	// Redis (Miniredis for speed/simplicity, or Container)
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	// The catalog memoizes on first read, so seed before the app boots.
	SeedExerciseLibrary(t, db)

	// Config (Minimal)
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-key-123"
	cfg.JWT.AccessTokenExpiry = time.Hour
	cfg.JWT.RefreshTokenExpiry = 24 * time.Hour

	// 2. Initialize App
	app := server.NewApp(server.AppDependencies{
		Config:      cfg,
		MongoDB:     db,
		RedisClient: redisClient,
	})

	// Helper for requests
	request := func(method, path, token string, body interface{}, headers map[string]string) *http.Response {
		var bodyReader io.Reader
		if body != nil {
			jsonBytes, _ := json.Marshal(body)
			bodyReader = bytes.NewReader(jsonBytes)
		}
		req, _ := http.NewRequest(method, path, bodyReader)
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		resp, err := app.Test(req, -1) // -1 disables timeout
		require.NoError(t, err)
		return resp
	}
	decode := func(resp *http.Response) map[string]interface{} {
		var envelope map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		return envelope
	}
	data := func(envelope map[string]interface{}) map[string]interface{} {
		d, ok := envelope["data"].(map[string]interface{})
		require.True(t, ok, "response missing data object: %v", envelope)
		return d
	}

	// ==========================================
	// STEP 1: Register
	// ==========================================
	resp := request("POST", "/v1/auth/register", "", map[string]string{
		"email":    "jane@example.com",
		"name":     "Jane",
		"password": "correct horse battery staple",
	}, nil)
	require.Equal(t, 201, resp.StatusCode)

	registerData := data(decode(resp))
	tokens := registerData["tokens"].(map[string]interface{})
	accessToken := tokens["access_token"].(string)
	refreshToken := tokens["refresh_token"].(string)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)

	fmt.Println("✓ Registered")

	// Duplicate registration conflicts.
	resp = request("POST", "/v1/auth/register", "", map[string]string{
		"email":    "jane@example.com",
		"password": "correct horse battery staple",
	}, nil)
	assert.Equal(t, 409, resp.StatusCode)

	// ==========================================
	// STEP 2: Login
	// ==========================================
	resp = request("POST", "/v1/auth/login", "", map[string]string{
		"email":    "jane@example.com",
		"password": "correct horse battery staple",
	}, nil)
	require.Equal(t, 200, resp.StatusCode)

	loginData := data(decode(resp))
	tokens = loginData["tokens"].(map[string]interface{})
	accessToken = tokens["access_token"].(string)
	refreshToken = tokens["refresh_token"].(string)

	fmt.Println("✓ Logged In")

	// Wrong password is rejected.
	resp = request("POST", "/v1/auth/login", "", map[string]string{
		"email":    "jane@example.com",
		"password": "wrong horse",
	}, nil)
	assert.Equal(t, 401, resp.StatusCode)

	// Protected routes reject missing tokens.
	resp = request("GET", "/v1/me/profile", "", nil, nil)
	assert.Equal(t, 401, resp.StatusCode)

	// ==========================================
	// STEP 3: Onboarding Profile
	// ==========================================
	// No profile before onboarding.
	resp = request("GET", "/v1/me/profile", accessToken, nil, nil)
	assert.Equal(t, 404, resp.StatusCode)

	resp = request("PUT", "/v1/me/profile", accessToken, map[string]interface{}{
		"age":                    25,
		"gender":                 "male",
		"height_cm":              175,
		"weight_kg":              70,
		"target_weight_kg":       65,
		"goal":                   "lose_weight",
		"activity_level":         "moderate",
		"fitness_level":          "beginner",
		"workout_days_per_week":  3,
		"available_equipment":    "gym",
		"wake_up_time":           "07:00",
		"sleep_time":             "23:00",
		"preferred_workout_time": "18:00",
	}, nil)
	require.Equal(t, 200, resp.StatusCode)

	fmt.Println("✓ Profile Saved")

	// Invalid profile is rejected.
	resp = request("PUT", "/v1/me/profile", accessToken, map[string]interface{}{
		"age": 25, "gender": "male", "height_cm": 175, "weight_kg": 70,
		"goal": "get_swole", "activity_level": "moderate",
		"workout_days_per_week": 3, "available_equipment": "gym",
		"wake_up_time": "07:00", "sleep_time": "23:00",
	}, nil)
	assert.Equal(t, 400, resp.StatusCode)

	// ==========================================
	// STEP 4: Derived Targets
	// ==========================================
	resp = request("GET", "/v1/me/targets", accessToken, nil, nil)
	require.Equal(t, 200, resp.StatusCode)

	targets := data(decode(resp))
	assert.EqualValues(t, 1673, targets["bmr"])
	assert.EqualValues(t, 2593, targets["tdee"])
	assert.EqualValues(t, 2093, targets["target_calories"])
	assert.EqualValues(t, 183, targets["protein_grams"])
	assert.EqualValues(t, 2750, targets["water_ml"])

	fmt.Println("✓ Targets Derived")

	// ==========================================
	// STEP 5: Generate Plans
	// ==========================================
	resp = request("POST", "/v1/me/plan/generate", accessToken, nil, nil)
	require.Equal(t, 201, resp.StatusCode)

	plans := data(decode(resp))
	workoutPlan := plans["workout_plan"].(map[string]interface{})
	mealPlan := plans["meal_plan"].(map[string]interface{})
	assert.Len(t, workoutPlan["days"].([]interface{}), 3)
	assert.Len(t, mealPlan["days"].([]interface{}), 7)

	fmt.Println("✓ Plans Generated")

	resp = request("GET", "/v1/me/plan/workouts", accessToken, nil, nil)
	require.Equal(t, 200, resp.StatusCode)
	workoutPlan = data(decode(resp))
	days := workoutPlan["days"].([]interface{})
	firstDay := days[0].(map[string]interface{})
	assert.NotEmpty(t, firstDay["exercises"])

	resp = request("GET", "/v1/me/plan/meals", accessToken, nil, nil)
	require.Equal(t, 200, resp.StatusCode)
	mealPlan = data(decode(resp))
	mealDays := mealPlan["days"].([]interface{})
	firstMealDay := mealDays[0].(map[string]interface{})
	assert.NotEmpty(t, firstMealDay["slots"])

	resp = request("GET", "/v1/me/plan/shopping-list", accessToken, nil, nil)
	require.Equal(t, 200, resp.StatusCode)
	shopping := data(decode(resp))
	assert.NotEmpty(t, shopping["categories"])

	fmt.Println("✓ Plan Retrieval Verified")

	// ==========================================
	// STEP 6: Daily Check-In
	// ==========================================
	resp = request("POST", "/v1/me/checkins", accessToken, map[string]interface{}{
		"date":               time.Now().UTC().Format("2006-01-02"),
		"weight_kg":          70,
		"calories_consumed":  2050,
		"workouts_completed": 1,
		"water_ml":           2800,
		"sleep_hours":        7.5,
		"mood_rating":        4,
	}, nil)
	require.Equal(t, 201, resp.StatusCode)

	fmt.Println("✓ Check-In Recorded")

	resp = request("GET", "/v1/me/checkins", accessToken, nil, nil)
	require.Equal(t, 200, resp.StatusCode)

	// ==========================================
	// STEP 7: Idempotent Replay
	// ==========================================
	headers := map[string]string{"X-Correlation-ID": "checkin-replay-1"}
	resp = request("POST", "/v1/me/checkins", accessToken, map[string]interface{}{
		"weight_kg": 70, "workouts_completed": 1,
	}, headers)
	require.Equal(t, 201, resp.StatusCode)

	// Give the fire-and-forget cache write a moment to land.
	time.Sleep(100 * time.Millisecond)

	resp = request("POST", "/v1/me/checkins", accessToken, map[string]interface{}{
		"weight_kg": 70, "workouts_completed": 1,
	}, headers)
	assert.Equal(t, "true", resp.Header.Get("X-Idempotent-Replay"))

	fmt.Println("✓ Idempotent Replay Verified")

	// ==========================================
	// STEP 8: Progress & Gamification
	// ==========================================
	resp = request("GET", "/v1/me/progress", accessToken, nil, nil)
	require.Equal(t, 200, resp.StatusCode)
	progress := data(decode(resp))
	assert.EqualValues(t, 1, progress["days_tracked"])

	resp = request("GET", "/v1/me/progress/insights", accessToken, nil, nil)
	require.Equal(t, 200, resp.StatusCode)

	resp = request("GET", "/v1/me/streak", accessToken, nil, nil)
	require.Equal(t, 200, resp.StatusCode)
	streak := data(decode(resp))
	assert.EqualValues(t, 1, streak["current_streak"])

	resp = request("GET", "/v1/me/achievements", accessToken, nil, nil)
	require.Equal(t, 200, resp.StatusCode)
	achievements := data(decode(resp))
	unlocks := achievements["unlocks"].([]interface{})
	require.NotEmpty(t, unlocks, "first workout should unlock an achievement")

	foundFirstWorkout := false
	for _, u := range unlocks {
		if u.(map[string]interface{})["code"] == "first_workout" {
			foundFirstWorkout = true
		}
	}
	assert.True(t, foundFirstWorkout)

	fmt.Println("✓ Progress & Gamification Verified")

	// ==========================================
	// STEP 9: Token Rotation & Logout
	// ==========================================
	resp = request("POST", "/v1/auth/refresh", "", map[string]string{
		"refresh_token": refreshToken,
	}, nil)
	require.Equal(t, 200, resp.StatusCode)
	rotated := data(decode(resp))
	newRefresh := rotated["refresh_token"].(string)
	require.NotEmpty(t, newRefresh)
	assert.NotEqual(t, refreshToken, newRefresh)

	// The old refresh token is dead after rotation.
	resp = request("POST", "/v1/auth/refresh", "", map[string]string{
		"refresh_token": refreshToken,
	}, nil)
	assert.Equal(t, 401, resp.StatusCode)

	resp = request("POST", "/v1/auth/logout", "", map[string]string{
		"refresh_token": newRefresh,
	}, nil)
	require.Equal(t, 200, resp.StatusCode)

	resp = request("POST", "/v1/auth/refresh", "", map[string]string{
		"refresh_token": newRefresh,
	}, nil)
	assert.Equal(t, 401, resp.StatusCode)

	fmt.Println("✓ Token Rotation & Logout Verified")
}
