package infra

import "github.com/casbin/casbin/v2"

// NewEnforcer loads the casbin model and a CSV policy from disk.
func NewEnforcer(modelPath, policyPath string) (*casbin.Enforcer, error) {
	return casbin.NewEnforcer(modelPath, policyPath)
}
