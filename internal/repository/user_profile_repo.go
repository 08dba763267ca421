package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/saeid-a/NutriGuide/internal/models"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UserProfileRepository struct {
	db DBTX
}

func NewUserProfileRepository(db DBTX) *UserProfileRepository {
	return &UserProfileRepository{db: db}
}

const userProfileColumns = `
	id, name, email, date_of_birth, height_cm, weight_kg, gender, ethnicity,
	typical_diet, food_allergies, dietary_preferences, meals_per_day, cooking_frequency,
	favorite_cuisines, favorite_foods, disliked_foods,
	bmr_measured, bmr_value, has_diabetes, diabetes_diagnosis, takes_medication, medications,
	is_pregnant_or_nursing, physical_activity_level,
	other_health_concerns, blood_sugar_goals, specific_goals,
	current_survey_step, survey_completed, updated_at`

func (r *UserProfileRepository) CreateEmpty(ctx context.Context, userID int64) error {
	query := `INSERT INTO user_profiles (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`
	_, err := r.db.Exec(ctx, query, userID)
	return err
}

func (r *UserProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserProfile, error) {
	query := `SELECT ` + userProfileColumns + ` FROM user_profiles WHERE user_id = $1`
	return scanUserProfile(r.db.QueryRow(ctx, query, userID))
}

// UpdatePartial writes every non-nil input field and keeps the stored value
// for the rest. A stored value cannot be reset to NULL through this path.
func (r *UserProfileRepository) UpdatePartial(ctx context.Context, userID int64, req UpdateUserProfileInput) (*models.UserProfile, error) {
	query := `
		UPDATE user_profiles
		SET name = COALESCE($1, name),
			email = COALESCE($2, email),
			date_of_birth = COALESCE($3, date_of_birth),
			height_cm = COALESCE($4, height_cm),
			weight_kg = COALESCE($5, weight_kg),
			gender = COALESCE($6, gender),
			ethnicity = COALESCE($7, ethnicity),
			typical_diet = COALESCE($8, typical_diet),
			food_allergies = COALESCE($9, food_allergies),
			dietary_preferences = COALESCE($10, dietary_preferences),
			meals_per_day = COALESCE($11, meals_per_day),
			cooking_frequency = COALESCE($12, cooking_frequency),
			favorite_cuisines = COALESCE($13, favorite_cuisines),
			favorite_foods = COALESCE($14, favorite_foods),
			disliked_foods = COALESCE($15, disliked_foods),
			bmr_measured = COALESCE($16, bmr_measured),
			bmr_value = COALESCE($17, bmr_value),
			has_diabetes = COALESCE($18, has_diabetes),
			diabetes_diagnosis = COALESCE($19, diabetes_diagnosis),
			takes_medication = COALESCE($20, takes_medication),
			medications = COALESCE($21, medications),
			is_pregnant_or_nursing = COALESCE($22, is_pregnant_or_nursing),
			physical_activity_level = COALESCE($23, physical_activity_level),
			other_health_concerns = COALESCE($24, other_health_concerns),
			blood_sugar_goals = COALESCE($25, blood_sugar_goals),
			specific_goals = COALESCE($26, specific_goals),
			current_survey_step = COALESCE($27, current_survey_step),
			survey_completed = COALESCE($28, survey_completed),
			updated_at = NOW()
		WHERE user_id = $29
		RETURNING ` + userProfileColumns

	return scanUserProfile(r.db.QueryRow(ctx, query,
		req.Name,
		req.Email,
		req.DateOfBirth,
		req.HeightCm,
		req.WeightKg,
		req.Gender,
		req.Ethnicity,
		req.TypicalDiet,
		req.FoodAllergies,
		req.DietaryPreferences,
		req.MealsPerDay,
		req.CookingFrequency,
		req.FavoriteCuisines,
		req.FavoriteFoods,
		req.DislikedFoods,
		req.BMRMeasured,
		req.BMRValue,
		req.HasDiabetes,
		req.DiabetesDiagnosis,
		req.TakesMedication,
		req.Medications,
		req.IsPregnantOrNursing,
		req.PhysicalActivityLevel,
		req.OtherHealthConcerns,
		req.BloodSugarGoals,
		req.SpecificGoals,
		req.CurrentSurveyStep,
		req.SurveyCompleted,
		userID,
	))
}

// UpdateSurveyProgress sets the survey step. A nil completed keeps the stored
// completion flag.
func (r *UserProfileRepository) UpdateSurveyProgress(ctx context.Context, userID int64, step int, completed *bool) (*models.UserProfile, error) {
	query := `
		UPDATE user_profiles
		SET current_survey_step = $1,
			survey_completed = COALESCE($2, survey_completed),
			updated_at = NOW()
		WHERE user_id = $3
		RETURNING ` + userProfileColumns
	return scanUserProfile(r.db.QueryRow(ctx, query, step, completed, userID))
}

func scanUserProfile(row pgx.Row) (*models.UserProfile, error) {
	var (
		profile     models.UserProfile
		dateOfBirth *time.Time
		updatedAt   time.Time
	)
	err := row.Scan(
		&profile.ID,
		&profile.Name,
		&profile.Email,
		&dateOfBirth,
		&profile.HeightCm,
		&profile.WeightKg,
		&profile.Gender,
		&profile.Ethnicity,
		&profile.TypicalDiet,
		&profile.FoodAllergies,
		&profile.DietaryPreferences,
		&profile.MealsPerDay,
		&profile.CookingFrequency,
		&profile.FavoriteCuisines,
		&profile.FavoriteFoods,
		&profile.DislikedFoods,
		&profile.BMRMeasured,
		&profile.BMRValue,
		&profile.HasDiabetes,
		&profile.DiabetesDiagnosis,
		&profile.TakesMedication,
		&profile.Medications,
		&profile.IsPregnantOrNursing,
		&profile.PhysicalActivityLevel,
		&profile.OtherHealthConcerns,
		&profile.BloodSugarGoals,
		&profile.SpecificGoals,
		&profile.CurrentSurveyStep,
		&profile.SurveyCompleted,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if dateOfBirth != nil {
		d := models.NewDate(dateOfBirth.Year(), dateOfBirth.Month(), dateOfBirth.Day())
		profile.DateOfBirth = &d
	}
	profile.UpdatedAt = &updatedAt
	return &profile, nil
}

type UpdateUserProfileInput struct {
	Name                  *string
	Email                 *string
	DateOfBirth           *time.Time
	HeightCm              *float64
	WeightKg              *float64
	Gender                *string
	Ethnicity             *string
	TypicalDiet           *string
	FoodAllergies         []string
	DietaryPreferences    []string
	MealsPerDay           *int
	CookingFrequency      *string
	FavoriteCuisines      []string
	FavoriteFoods         *string
	DislikedFoods         *string
	BMRMeasured           *bool
	BMRValue              *int
	HasDiabetes           *bool
	DiabetesDiagnosis     *string
	TakesMedication       *bool
	Medications           *string
	IsPregnantOrNursing   *bool
	PhysicalActivityLevel *string
	OtherHealthConcerns   *string
	BloodSugarGoals       []string
	SpecificGoals         *string
	CurrentSurveyStep     *int
	SurveyCompleted       *bool
}
