package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/trainloop/fitplan/internal/config"
	"github.com/trainloop/fitplan/internal/domain"
	"github.com/trainloop/fitplan/internal/repository"
	"github.com/trainloop/fitplan/internal/service"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seeds the exercise library collection. When EXERCISE_CATALOG_URL is set the
// upstream catalog is fetched and mirrored; otherwise a built-in starter list
// is written. Upserts by name, so re-running is safe.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDB.URI))
	if err != nil {
		log.Fatalf("Failed to connect to Mongo: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB.Database)
	repo := repository.NewMongoExerciseRepository(db)

	exercises := starterLibrary
	if cfg.Catalog.URL != "" {
		catalog := service.NewHTTPCatalog(cfg.Catalog.URL, cfg.Catalog.RequestTimeout)
		fetched, err := catalog.All(ctx)
		if err != nil {
			log.Fatalf("Failed to fetch catalog from %s: %v", cfg.Catalog.URL, err)
		}
		exercises = fetched
		fmt.Printf("Fetched %d exercises from upstream catalog\n", len(fetched))
	}

	for _, ex := range exercises {
		ex := ex
		if err := repo.Upsert(ctx, &ex); err != nil {
			log.Printf("Error upserting %s: %v\n", ex.Name, err)
			continue
		}
		fmt.Printf("Upserted: %s\n", ex.Name)
	}
	fmt.Println("Seeding Exercises Complete.")
}

// starterLibrary covers every muscle the split planner schedules, at all
// three levels, across gym and home equipment.
var starterLibrary = []domain.Exercise{
	// Quadriceps / glutes
	{Name: "Barbell Squat", PrimaryMuscles: []string{"quadriceps"}, SecondaryMuscles: []string{"glutes", "hamstrings"}, Equipment: "barbell", Level: domain.LevelIntermediate,
		Instructions: []string{"Set the bar on your upper back.", "Squat until thighs are parallel, then drive up."}},
	{Name: "Goblet Squat", PrimaryMuscles: []string{"quadriceps"}, SecondaryMuscles: []string{"glutes"}, Equipment: "dumbbell", Level: domain.LevelBeginner,
		Instructions: []string{"Hold a dumbbell at your chest.", "Squat deep keeping your torso upright."}},
	{Name: "Bodyweight Squat", PrimaryMuscles: []string{"quadriceps"}, SecondaryMuscles: []string{"glutes"}, Equipment: "body only", Level: domain.LevelBeginner,
		Instructions: []string{"Feet shoulder width.", "Sit back and down, stand back up."}},
	{Name: "Leg Press", PrimaryMuscles: []string{"quadriceps"}, SecondaryMuscles: []string{"glutes"}, Equipment: "machine", Level: domain.LevelBeginner,
		Instructions: []string{"Lower the sled under control.", "Press without locking out hard."}},
	{Name: "Walking Lunge", PrimaryMuscles: []string{"quadriceps"}, SecondaryMuscles: []string{"glutes", "hamstrings"}, Equipment: "dumbbell", Level: domain.LevelIntermediate,
		Instructions: []string{"Step forward into a lunge.", "Alternate legs as you walk."}},
	{Name: "Bulgarian Split Squat", PrimaryMuscles: []string{"quadriceps"}, SecondaryMuscles: []string{"glutes"}, Equipment: "dumbbell", Level: domain.LevelAdvanced,
		Instructions: []string{"Rear foot elevated on a bench.", "Lower until the front thigh is parallel."}},
	{Name: "Glute Bridge", PrimaryMuscles: []string{"glutes"}, SecondaryMuscles: []string{"hamstrings"}, Equipment: "body only", Level: domain.LevelBeginner,
		Instructions: []string{"Lie on your back, knees bent.", "Drive hips up and squeeze."}},

	// Hamstrings / calves
	{Name: "Romanian Deadlift", PrimaryMuscles: []string{"hamstrings"}, SecondaryMuscles: []string{"glutes", "lower back"}, Equipment: "barbell", Level: domain.LevelIntermediate,
		Instructions: []string{"Hinge at the hips with a flat back.", "Lower the bar along your legs, then stand."}},
	{Name: "Dumbbell Romanian Deadlift", PrimaryMuscles: []string{"hamstrings"}, SecondaryMuscles: []string{"glutes"}, Equipment: "dumbbell", Level: domain.LevelBeginner,
		Instructions: []string{"Hinge at the hips holding dumbbells.", "Feel the stretch, then stand tall."}},
	{Name: "Lying Leg Curl", PrimaryMuscles: []string{"hamstrings"}, Equipment: "machine", Level: domain.LevelBeginner,
		Instructions: []string{"Curl the pad to your glutes.", "Lower slowly."}},
	{Name: "Standing Calf Raise", PrimaryMuscles: []string{"calves"}, Equipment: "machine", Level: domain.LevelBeginner,
		Instructions: []string{"Rise onto your toes.", "Pause at the top, lower below the step."}},
	{Name: "Single Leg Calf Raise", PrimaryMuscles: []string{"calves"}, Equipment: "body only", Level: domain.LevelIntermediate,
		Instructions: []string{"Stand on one foot on a step.", "Full range, slow negatives."}},

	// Chest
	{Name: "Barbell Bench Press", PrimaryMuscles: []string{"chest"}, SecondaryMuscles: []string{"triceps", "shoulders"}, Equipment: "barbell", Level: domain.LevelIntermediate,
		Instructions: []string{"Lower the bar to mid chest.", "Press to lockout."}},
	{Name: "Incline Dumbbell Press", PrimaryMuscles: []string{"chest"}, SecondaryMuscles: []string{"shoulders", "triceps"}, Equipment: "dumbbell", Level: domain.LevelIntermediate,
		Instructions: []string{"Bench at thirty degrees.", "Press the dumbbells together over your chest."}},
	{Name: "Push Up", PrimaryMuscles: []string{"chest"}, SecondaryMuscles: []string{"triceps", "shoulders", "abdominals"}, Equipment: "body only", Level: domain.LevelBeginner,
		Instructions: []string{"Body in a straight line.", "Chest to the floor, press back up."}},
	{Name: "Machine Chest Press", PrimaryMuscles: []string{"chest"}, SecondaryMuscles: []string{"triceps"}, Equipment: "machine", Level: domain.LevelBeginner,
		Instructions: []string{"Press the handles forward.", "Return under control."}},
	{Name: "Dumbbell Fly", PrimaryMuscles: []string{"chest"}, Equipment: "dumbbell", Level: domain.LevelAdvanced,
		Instructions: []string{"Slight elbow bend.", "Open wide, squeeze back together."}},

	// Back
	{Name: "Pull Up", PrimaryMuscles: []string{"lats"}, SecondaryMuscles: []string{"middle back", "biceps"}, Equipment: "body only", Level: domain.LevelAdvanced,
		Instructions: []string{"Hang from the bar.", "Pull your chin over the bar."}},
	{Name: "Lat Pulldown", PrimaryMuscles: []string{"lats"}, SecondaryMuscles: []string{"biceps"}, Equipment: "cable", Level: domain.LevelBeginner,
		Instructions: []string{"Pull the bar to your upper chest.", "Control the way up."}},
	{Name: "Barbell Row", PrimaryMuscles: []string{"middle back"}, SecondaryMuscles: []string{"lats", "biceps"}, Equipment: "barbell", Level: domain.LevelIntermediate,
		Instructions: []string{"Hinge forward, flat back.", "Row the bar to your stomach."}},
	{Name: "Single Arm Dumbbell Row", PrimaryMuscles: []string{"middle back"}, SecondaryMuscles: []string{"lats", "biceps"}, Equipment: "dumbbell", Level: domain.LevelBeginner,
		Instructions: []string{"One hand on the bench.", "Row the dumbbell to your hip."}},
	{Name: "Seated Cable Row", PrimaryMuscles: []string{"middle back"}, SecondaryMuscles: []string{"lats", "biceps"}, Equipment: "cable", Level: domain.LevelBeginner,
		Instructions: []string{"Pull the handle to your stomach.", "Keep your chest tall."}},
	{Name: "Resistance Band Row", PrimaryMuscles: []string{"middle back"}, SecondaryMuscles: []string{"biceps"}, Equipment: "bands", Level: domain.LevelBeginner,
		Instructions: []string{"Anchor the band at chest height.", "Row with elbows close."}},
	{Name: "Superman Hold", PrimaryMuscles: []string{"lower back"}, SecondaryMuscles: []string{"glutes"}, Equipment: "body only", Level: domain.LevelBeginner,
		Instructions: []string{"Lie face down.", "Lift chest and legs, hold."}},

	// Shoulders
	{Name: "Overhead Press", PrimaryMuscles: []string{"shoulders"}, SecondaryMuscles: []string{"triceps"}, Equipment: "barbell", Level: domain.LevelIntermediate,
		Instructions: []string{"Bar at your collarbone.", "Press overhead to lockout."}},
	{Name: "Dumbbell Shoulder Press", PrimaryMuscles: []string{"shoulders"}, SecondaryMuscles: []string{"triceps"}, Equipment: "dumbbell", Level: domain.LevelBeginner,
		Instructions: []string{"Dumbbells at ear height.", "Press up and slightly in."}},
	{Name: "Lateral Raise", PrimaryMuscles: []string{"shoulders"}, Equipment: "dumbbell", Level: domain.LevelBeginner,
		Instructions: []string{"Raise the dumbbells to shoulder height.", "Lower slowly."}},
	{Name: "Pike Push Up", PrimaryMuscles: []string{"shoulders"}, SecondaryMuscles: []string{"triceps"}, Equipment: "body only", Level: domain.LevelIntermediate,
		Instructions: []string{"Hips high in a pike.", "Lower your head toward the floor, press back."}},

	// Arms
	{Name: "Barbell Curl", PrimaryMuscles: []string{"biceps"}, Equipment: "barbell", Level: domain.LevelIntermediate,
		Instructions: []string{"Curl the bar without swinging.", "Lower under control."}},
	{Name: "Dumbbell Curl", PrimaryMuscles: []string{"biceps"}, Equipment: "dumbbell", Level: domain.LevelBeginner,
		Instructions: []string{"Curl both dumbbells.", "Keep elbows pinned to your sides."}},
	{Name: "Tricep Pushdown", PrimaryMuscles: []string{"triceps"}, Equipment: "cable", Level: domain.LevelBeginner,
		Instructions: []string{"Elbows at your sides.", "Extend to lockout."}},
	{Name: "Bench Dip", PrimaryMuscles: []string{"triceps"}, SecondaryMuscles: []string{"chest"}, Equipment: "body only", Level: domain.LevelBeginner,
		Instructions: []string{"Hands on a bench behind you.", "Lower and press back up."}},
	{Name: "Overhead Tricep Extension", PrimaryMuscles: []string{"triceps"}, Equipment: "dumbbell", Level: domain.LevelIntermediate,
		Instructions: []string{"Dumbbell overhead with both hands.", "Lower behind your head, extend."}},

	// Core
	{Name: "Plank", PrimaryMuscles: []string{"abdominals"}, Equipment: "body only", Level: domain.LevelBeginner,
		Instructions: []string{"Forearms down, body straight.", "Hold without sagging."}},
	{Name: "Crunch", PrimaryMuscles: []string{"abdominals"}, Equipment: "body only", Level: domain.LevelBeginner,
		Instructions: []string{"Curl your shoulders off the floor.", "Lower slowly."}},
	{Name: "Hanging Leg Raise", PrimaryMuscles: []string{"abdominals"}, Equipment: "body only", Level: domain.LevelAdvanced,
		Instructions: []string{"Hang from a bar.", "Raise straight legs to parallel."}},
	{Name: "Russian Twist", PrimaryMuscles: []string{"abdominals"}, Equipment: "body only", Level: domain.LevelIntermediate,
		Instructions: []string{"Lean back, feet up.", "Rotate side to side."}},
	{Name: "Kettlebell Swing", PrimaryMuscles: []string{"cardio"}, SecondaryMuscles: []string{"glutes", "hamstrings"}, Equipment: "kettlebells", Level: domain.LevelIntermediate,
		Instructions: []string{"Hinge and snap the hips.", "Swing to chest height."}},

	// Conditioning
	{Name: "Mountain Climber", PrimaryMuscles: []string{"cardio"}, SecondaryMuscles: []string{"abdominals"}, Equipment: "body only", Level: domain.LevelBeginner,
		Instructions: []string{"High plank.", "Drive knees to chest quickly."}},
	{Name: "Burpee", PrimaryMuscles: []string{"cardio"}, SecondaryMuscles: []string{"chest", "quadriceps"}, Equipment: "body only", Level: domain.LevelIntermediate,
		Instructions: []string{"Squat, kick back, push up.", "Jump up to finish."}},
	{Name: "Jump Rope", PrimaryMuscles: []string{"cardio"}, SecondaryMuscles: []string{"calves"}, Equipment: "body only", Level: domain.LevelBeginner,
		Instructions: []string{"Light bounces.", "Keep a steady rhythm."}},
}
