package workouts

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// SeedWorkoutPlans inserts the fixed plan catalog when the table is empty.
// Re-running is a no-op; existing rows are never touched.
func SeedWorkoutPlans(db *gorm.DB) error {
	var count int64
	if err := db.Model(&WorkoutPlan{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count workout plans: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, seed := range catalog {
		days, err := json.Marshal(seed.days)
		if err != nil {
			return fmt.Errorf("failed to encode days for plan %s: %w", seed.id, err)
		}

		plan := WorkoutPlan{
			ID:            seed.id,
			Name:          seed.name,
			Level:         seed.level,
			Description:   seed.description,
			DaysPerWeek:   seed.daysPerWeek,
			DurationWeeks: seed.durationWeeks,
			Days:          days,
		}
		if err := db.Create(&plan).Error; err != nil {
			return fmt.Errorf("failed to seed plan %s: %w", seed.id, err)
		}
	}

	slog.Info("seeded workout plans", "count", len(catalog))
	return nil
}

type planSeed struct {
	id            string
	name          string
	level         string
	description   string
	daysPerWeek   int
	durationWeeks int
	days          []PlanDay
}

var catalog = []planSeed{
	{
		id: "beginner-full-body", name: "Full Body Foundation", level: "Beginner",
		description: "Perfect for beginners. 3 days per week full body workout to build a solid foundation.",
		daysPerWeek: 3, durationWeeks: 8,
		days: []PlanDay{
			{Day: 1, Name: "Full Body A", Exercises: []PlanExercise{
				{Name: "Barbell Squat", Sets: 3, Reps: "8-10", WeightKg: 40, MuscleGroup: "Legs", RestSeconds: 90, Notes: "Focus on form"},
				{Name: "Bench Press", Sets: 3, Reps: "8-10", WeightKg: 30, MuscleGroup: "Chest", RestSeconds: 90, Notes: "Retract shoulder blades"},
				{Name: "Barbell Row", Sets: 3, Reps: "8-10", WeightKg: 30, MuscleGroup: "Back", RestSeconds: 90, Notes: "Pull to lower chest"},
				{Name: "Overhead Press", Sets: 3, Reps: "8-10", WeightKg: 20, MuscleGroup: "Shoulders", RestSeconds: 60, Notes: "Full lockout"},
				{Name: "Plank", Sets: 3, Reps: "30-45s", WeightKg: 0, MuscleGroup: "Core", RestSeconds: 60, Notes: "Keep hips level"},
			}},
			{Day: 3, Name: "Full Body B", Exercises: []PlanExercise{
				{Name: "Deadlift", Sets: 3, Reps: "6-8", WeightKg: 50, MuscleGroup: "Back/Legs", RestSeconds: 120, Notes: "Keep back straight"},
				{Name: "Incline Dumbbell Press", Sets: 3, Reps: "10-12", WeightKg: 14, MuscleGroup: "Chest", RestSeconds: 60, Notes: "30° incline"},
				{Name: "Lat Pulldown", Sets: 3, Reps: "10-12", WeightKg: 35, MuscleGroup: "Back", RestSeconds: 60, Notes: "Pull to upper chest"},
				{Name: "Lateral Raise", Sets: 3, Reps: "12-15", WeightKg: 6, MuscleGroup: "Shoulders", RestSeconds: 45, Notes: "Slight bend in elbows"},
				{Name: "Bicycle Crunches", Sets: 3, Reps: "15-20", WeightKg: 0, MuscleGroup: "Core", RestSeconds: 45, Notes: "Slow and controlled"},
			}},
			{Day: 5, Name: "Full Body C", Exercises: []PlanExercise{
				{Name: "Leg Press", Sets: 3, Reps: "10-12", WeightKg: 80, MuscleGroup: "Legs", RestSeconds: 90, Notes: "Don't lock knees"},
				{Name: "Dumbbell Chest Fly", Sets: 3, Reps: "12-15", WeightKg: 10, MuscleGroup: "Chest", RestSeconds: 60, Notes: "Feel the stretch"},
				{Name: "Seated Cable Row", Sets: 3, Reps: "10-12", WeightKg: 30, MuscleGroup: "Back", RestSeconds: 60, Notes: "Squeeze shoulder blades"},
				{Name: "Bicep Curls", Sets: 3, Reps: "10-12", WeightKg: 10, MuscleGroup: "Arms", RestSeconds: 45, Notes: "No swinging"},
				{Name: "Tricep Pushdown", Sets: 3, Reps: "10-12", WeightKg: 15, MuscleGroup: "Arms", RestSeconds: 45, Notes: "Lock elbows"},
			}},
		},
	},
	{
		id: "intermediate-ppl", name: "Push / Pull / Legs", level: "Intermediate",
		description: "Classic PPL split for intermediate lifters. 6 days per week for maximum gains.",
		daysPerWeek: 6, durationWeeks: 12,
		days: []PlanDay{
			{Day: 1, Name: "Push (Chest/Shoulders/Tri)", Exercises: []PlanExercise{
				{Name: "Barbell Bench Press", Sets: 4, Reps: "6-8", WeightKg: 60, MuscleGroup: "Chest", RestSeconds: 120, Notes: "Pyramid up"},
				{Name: "Incline Dumbbell Press", Sets: 3, Reps: "8-10", WeightKg: 22, MuscleGroup: "Upper Chest", RestSeconds: 90, Notes: "30-45° incline"},
				{Name: "Cable Fly", Sets: 3, Reps: "12-15", WeightKg: 15, MuscleGroup: "Chest", RestSeconds: 60, Notes: "Squeeze at peak"},
				{Name: "Overhead Press", Sets: 4, Reps: "8-10", WeightKg: 35, MuscleGroup: "Shoulders", RestSeconds: 90, Notes: "Strict form"},
				{Name: "Lateral Raises", Sets: 4, Reps: "12-15", WeightKg: 8, MuscleGroup: "Shoulders", RestSeconds: 45, Notes: "Controlled tempo"},
				{Name: "Tricep Dips", Sets: 3, Reps: "10-12", WeightKg: 0, MuscleGroup: "Triceps", RestSeconds: 60, Notes: "Add weight if needed"},
				{Name: "Overhead Tricep Extension", Sets: 3, Reps: "10-12", WeightKg: 20, MuscleGroup: "Triceps", RestSeconds: 60, Notes: "Full stretch"},
			}},
			{Day: 2, Name: "Pull (Back/Biceps)", Exercises: []PlanExercise{
				{Name: "Deadlift", Sets: 4, Reps: "5-6", WeightKg: 80, MuscleGroup: "Back", RestSeconds: 180, Notes: "Belt recommended"},
				{Name: "Pull-Ups", Sets: 4, Reps: "8-10", WeightKg: 0, MuscleGroup: "Back", RestSeconds: 90, Notes: "Add weight when possible"},
				{Name: "Barbell Row", Sets: 4, Reps: "8-10", WeightKg: 50, MuscleGroup: "Back", RestSeconds: 90, Notes: "Overhand grip"},
				{Name: "Face Pulls", Sets: 3, Reps: "15-20", WeightKg: 12, MuscleGroup: "Rear Delts", RestSeconds: 45, Notes: "External rotation"},
				{Name: "Barbell Curl", Sets: 3, Reps: "8-10", WeightKg: 25, MuscleGroup: "Biceps", RestSeconds: 60, Notes: "No swinging"},
				{Name: "Hammer Curls", Sets: 3, Reps: "10-12", WeightKg: 12, MuscleGroup: "Biceps", RestSeconds: 45, Notes: "Neutral grip"},
			}},
			{Day: 3, Name: "Legs", Exercises: []PlanExercise{
				{Name: "Barbell Squat", Sets: 4, Reps: "6-8", WeightKg: 80, MuscleGroup: "Quads", RestSeconds: 180, Notes: "Below parallel"},
				{Name: "Romanian Deadlift", Sets: 4, Reps: "8-10", WeightKg: 60, MuscleGroup: "Hamstrings", RestSeconds: 90, Notes: "Feel the stretch"},
				{Name: "Leg Press", Sets: 3, Reps: "10-12", WeightKg: 120, MuscleGroup: "Quads", RestSeconds: 90, Notes: "Feet shoulder width"},
				{Name: "Leg Curl", Sets: 3, Reps: "10-12", WeightKg: 30, MuscleGroup: "Hamstrings", RestSeconds: 60, Notes: "Squeeze at top"},
				{Name: "Calf Raises", Sets: 4, Reps: "15-20", WeightKg: 40, MuscleGroup: "Calves", RestSeconds: 45, Notes: "Full ROM"},
				{Name: "Walking Lunges", Sets: 3, Reps: "12 each", WeightKg: 16, MuscleGroup: "Glutes", RestSeconds: 60, Notes: "Long strides"},
			}},
			{Day: 4, Name: "Push Day 2", Exercises: []PlanExercise{
				{Name: "Dumbbell Bench Press", Sets: 4, Reps: "8-10", WeightKg: 28, MuscleGroup: "Chest", RestSeconds: 90, Notes: "Mind-muscle connection"},
				{Name: "Arnold Press", Sets: 4, Reps: "10-12", WeightKg: 16, MuscleGroup: "Shoulders", RestSeconds: 60, Notes: "Full rotation"},
				{Name: "Cable Lateral Raise", Sets: 3, Reps: "12-15", WeightKg: 7, MuscleGroup: "Shoulders", RestSeconds: 45, Notes: "Behind body"},
				{Name: "Close Grip Bench", Sets: 3, Reps: "8-10", WeightKg: 40, MuscleGroup: "Triceps", RestSeconds: 90, Notes: "Shoulder width"},
				{Name: "Rope Pushdown", Sets: 3, Reps: "12-15", WeightKg: 18, MuscleGroup: "Triceps", RestSeconds: 45, Notes: "Split at bottom"},
			}},
			{Day: 5, Name: "Pull Day 2", Exercises: []PlanExercise{
				{Name: "T-Bar Row", Sets: 4, Reps: "8-10", WeightKg: 40, MuscleGroup: "Back", RestSeconds: 90, Notes: "Close grip"},
				{Name: "Lat Pulldown", Sets: 4, Reps: "10-12", WeightKg: 50, MuscleGroup: "Back", RestSeconds: 60, Notes: "Wide grip"},
				{Name: "Reverse Fly", Sets: 3, Reps: "12-15", WeightKg: 8, MuscleGroup: "Rear Delts", RestSeconds: 45, Notes: "Bent over"},
				{Name: "Incline DB Curl", Sets: 3, Reps: "10-12", WeightKg: 10, MuscleGroup: "Biceps", RestSeconds: 45, Notes: "Full stretch"},
				{Name: "Concentration Curl", Sets: 3, Reps: "10-12", WeightKg: 10, MuscleGroup: "Biceps", RestSeconds: 45, Notes: "Peak contraction"},
			}},
			{Day: 6, Name: "Legs Day 2", Exercises: []PlanExercise{
				{Name: "Front Squat", Sets: 4, Reps: "8-10", WeightKg: 50, MuscleGroup: "Quads", RestSeconds: 120, Notes: "Upright torso"},
				{Name: "Bulgarian Split Squat", Sets: 3, Reps: "10 each", WeightKg: 14, MuscleGroup: "Quads/Glutes", RestSeconds: 90, Notes: "Rear foot elevated"},
				{Name: "Leg Extension", Sets: 3, Reps: "12-15", WeightKg: 30, MuscleGroup: "Quads", RestSeconds: 60, Notes: "Pause at top"},
				{Name: "Hip Thrust", Sets: 4, Reps: "10-12", WeightKg: 60, MuscleGroup: "Glutes", RestSeconds: 90, Notes: "Squeeze at top"},
				{Name: "Seated Calf Raise", Sets: 4, Reps: "15-20", WeightKg: 30, MuscleGroup: "Calves", RestSeconds: 45, Notes: "High reps"},
			}},
		},
	},
	{
		id: "advanced-power", name: "Power & Hypertrophy", level: "Advanced",
		description: "Upper/Lower split with heavy compounds and hypertrophy work. For experienced lifters.",
		daysPerWeek: 5, durationWeeks: 16,
		days: []PlanDay{
			{Day: 1, Name: "Upper Power", Exercises: []PlanExercise{
				{Name: "Barbell Bench Press", Sets: 5, Reps: "3-5", WeightKg: 80, MuscleGroup: "Chest", RestSeconds: 180, Notes: "Heavy RPE 8-9"},
				{Name: "Weighted Pull-Ups", Sets: 5, Reps: "3-5", WeightKg: 15, MuscleGroup: "Back", RestSeconds: 180, Notes: "Add weight belt"},
				{Name: "Overhead Press", Sets: 4, Reps: "5-6", WeightKg: 50, MuscleGroup: "Shoulders", RestSeconds: 120, Notes: "Strict press"},
				{Name: "Barbell Row", Sets: 4, Reps: "5-6", WeightKg: 70, MuscleGroup: "Back", RestSeconds: 120, Notes: "Explosive pull"},
				{Name: "Weighted Dips", Sets: 3, Reps: "6-8", WeightKg: 15, MuscleGroup: "Triceps", RestSeconds: 90, Notes: "Forward lean"},
			}},
			{Day: 2, Name: "Lower Power", Exercises: []PlanExercise{
				{Name: "Barbell Squat", Sets: 5, Reps: "3-5", WeightKg: 120, MuscleGroup: "Quads", RestSeconds: 240, Notes: "Heavy. Belt up"},
				{Name: "Conventional Deadlift", Sets: 4, Reps: "3-5", WeightKg: 130, MuscleGroup: "Posterior Chain", RestSeconds: 240, Notes: "Max effort"},
				{Name: "Barbell Hip Thrust", Sets: 4, Reps: "6-8", WeightKg: 80, MuscleGroup: "Glutes", RestSeconds: 120, Notes: "Pause at top"},
				{Name: "Leg Press", Sets: 3, Reps: "8-10", WeightKg: 160, MuscleGroup: "Quads", RestSeconds: 120, Notes: "Wide stance"},
				{Name: "Standing Calf Raise", Sets: 4, Reps: "8-10", WeightKg: 60, MuscleGroup: "Calves", RestSeconds: 60, Notes: "Heavy"},
			}},
			{Day: 4, Name: "Upper Hypertrophy", Exercises: []PlanExercise{
				{Name: "Incline Dumbbell Press", Sets: 4, Reps: "10-12", WeightKg: 30, MuscleGroup: "Chest", RestSeconds: 60, Notes: "Mind-muscle"},
				{Name: "Cable Fly", Sets: 3, Reps: "12-15", WeightKg: 15, MuscleGroup: "Chest", RestSeconds: 45, Notes: "Constant tension"},
				{Name: "Lat Pulldown", Sets: 4, Reps: "10-12", WeightKg: 55, MuscleGroup: "Back", RestSeconds: 60, Notes: "Wide grip"},
				{Name: "Seated Cable Row", Sets: 4, Reps: "10-12", WeightKg: 45, MuscleGroup: "Back", RestSeconds: 60, Notes: "Squeeze"},
				{Name: "Arnold Press", Sets: 4, Reps: "10-12", WeightKg: 18, MuscleGroup: "Shoulders", RestSeconds: 60, Notes: "Full rotation"},
				{Name: "Superset: Curls/Pushdowns", Sets: 3, Reps: "12-15", WeightKg: 12, MuscleGroup: "Arms", RestSeconds: 45, Notes: "No rest between"},
			}},
			{Day: 5, Name: "Lower Hypertrophy", Exercises: []PlanExercise{
				{Name: "Front Squat", Sets: 4, Reps: "10-12", WeightKg: 60, MuscleGroup: "Quads", RestSeconds: 90, Notes: "Slow descent"},
				{Name: "Romanian Deadlift", Sets: 4, Reps: "10-12", WeightKg: 70, MuscleGroup: "Hamstrings", RestSeconds: 90, Notes: "Feel stretch"},
				{Name: "Bulgarian Split Squat", Sets: 3, Reps: "12 each", WeightKg: 16, MuscleGroup: "Quads/Glutes", RestSeconds: 60, Notes: "Deep stretch"},
				{Name: "Leg Curl", Sets: 4, Reps: "12-15", WeightKg: 35, MuscleGroup: "Hamstrings", RestSeconds: 45, Notes: "Squeeze at top"},
				{Name: "Seated Calf Raise", Sets: 4, Reps: "15-20", WeightKg: 30, MuscleGroup: "Calves", RestSeconds: 45, Notes: "Full ROM"},
			}},
			{Day: 6, Name: "Full Body Power", Exercises: []PlanExercise{
				{Name: "Power Clean", Sets: 4, Reps: "3-5", WeightKg: 60, MuscleGroup: "Full Body", RestSeconds: 120, Notes: "Explosive technique"},
				{Name: "Incline Bench Press", Sets: 4, Reps: "6-8", WeightKg: 60, MuscleGroup: "Chest", RestSeconds: 120, Notes: "Moderate heavy"},
				{Name: "Pendlay Row", Sets: 4, Reps: "5-6", WeightKg: 65, MuscleGroup: "Back", RestSeconds: 90, Notes: "Dead stop each rep"},
				{Name: "Walking Lunges", Sets: 3, Reps: "10 each", WeightKg: 20, MuscleGroup: "Legs", RestSeconds: 60, Notes: "Heavy dumbbells"},
				{Name: "Ab Wheel Rollout", Sets: 3, Reps: "10-12", WeightKg: 0, MuscleGroup: "Core", RestSeconds: 60, Notes: "Full extension"},
			}},
		},
	},
}
