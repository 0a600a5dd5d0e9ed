package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Discovery.validate(); err != nil {
		return fmt.Errorf("discovery: %w", err)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerMin <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate_limit: requests_per_min and burst must be > 0 when enabled")
	}

	if c.Classify.MinConfidence < 0 || c.Classify.MinConfidence > 1 {
		return fmt.Errorf("classify.min_confidence must be in [0,1] (got %v)", c.Classify.MinConfidence)
	}
	if c.Classify.MinSimilarity <= 0 || c.Classify.MinSimilarity > 1 {
		return fmt.Errorf("classify.min_similarity must be in (0,1] (got %v)", c.Classify.MinSimilarity)
	}

	if c.Participation.RetentionDays < 0 {
		return fmt.Errorf("participation.retention_days must be >= 0 (got %d)", c.Participation.RetentionDays)
	}

	return nil
}

func (d *DiscoveryConfig) validate() error {
	if d.DefaultRadiusMeters <= 0 {
		return fmt.Errorf("default_radius_meters must be > 0 (got %d)", d.DefaultRadiusMeters)
	}
	if d.MaxLimit <= 0 {
		return fmt.Errorf("max_limit must be > 0 (got %d)", d.MaxLimit)
	}
	if d.DefaultLimit <= 0 || d.DefaultLimit > d.MaxLimit {
		return fmt.Errorf("default_limit must be in 1..max_limit (got %d, max %d)", d.DefaultLimit, d.MaxLimit)
	}
	return nil
}
