package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be >= 0 (got %d)", c.Server.RateLimitPerMinute)
	}

	if err := c.Meal.validate(); err != nil {
		return fmt.Errorf("meal: %w", err)
	}

	return nil
}

func (m *MealConfig) validate() error {
	if m.FallbackCaloriePerUnit <= 0 {
		return fmt.Errorf("fallback_calorie_per_unit must be > 0 (got %v)", m.FallbackCaloriePerUnit)
	}
	if m.MaxQuantity < 1 {
		return fmt.Errorf("max_quantity must be >= 1 (got %d)", m.MaxQuantity)
	}
	if m.MaxNameLength < 1 {
		return fmt.Errorf("max_name_length must be >= 1 (got %d)", m.MaxNameLength)
	}
	if m.DefaultGoalCalorie < 0 {
		return fmt.Errorf("default_goal_calorie must be >= 0 (got %v)", m.DefaultGoalCalorie)
	}
	return nil
}
