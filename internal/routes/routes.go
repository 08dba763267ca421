package routes

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/saeid-a/NutriGuide/internal/config"
	"github.com/saeid-a/NutriGuide/internal/handlers"
	"github.com/saeid-a/NutriGuide/internal/middleware"
	"github.com/saeid-a/NutriGuide/internal/profile"
	"github.com/saeid-a/NutriGuide/internal/repository"
	"github.com/saeid-a/NutriGuide/internal/services"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the profile API. profileCache may be nil.
func RegisterRoutes(app *fiber.App, cfg *config.Config, db repository.DBTX, profileCache services.ProfileCache, log *zap.Logger) error {
	policy, err := profile.PolicyByName(cfg.BMRPolicy)
	if err != nil {
		return fmt.Errorf("bmr policy: %w", err)
	}
	calc := profile.Calculator{Policy: policy}

	userProfileRepo := repository.NewUserProfileRepository(db)
	profileService := services.NewProfileService(userProfileRepo, profileCache, log)
	profileHandler := handlers.NewProfileHandler(profileService, calc, log)
	surveyHandler := handlers.NewSurveyHandler(profileService, log)

	api := app.Group("/api")

	user := api.Group("/user", middleware.AuthRequired(cfg.JWTSecret))
	user.Get("/profile", profileHandler.GetUserProfile)
	user.Put("/profile", profileHandler.UpdateUserProfile)
	user.Put("/survey", surveyHandler.UpdateProgress)

	return nil
}
