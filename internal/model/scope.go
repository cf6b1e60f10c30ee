package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the per-request caller identity through use cases.
type Scope struct {
	UserID string
	Email  string
}
