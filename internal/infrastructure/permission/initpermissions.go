package permission

import (
	"fmt"

	"deskflow/internal/shared/logger"
)

// InitDefaultPolicies seeds the role policies the workflow relies on.
// Resources map to route groups; roles come from the user aggregate.
func InitDefaultPolicies(e *Enforcer, log logger.Interface) error {
	policies := [][]string{
		// Admin permissions - full access to master data and users
		{"admin", "status", "create"},
		{"admin", "status", "update"},
		{"admin", "status", "delete"},
		{"admin", "reference", "create"},
		{"admin", "reference", "update"},
		{"admin", "reference", "delete"},
		{"admin", "user", "create"},
		{"admin", "user", "read"},
		{"admin", "ticket", "delete"},

		// Approver permissions - decide material requests
		{"approver", "approval", "create"},
		{"approver", "approval", "read"},

		// Worker permissions - analyses and work logs
		{"worker", "analysis", "create"},
		{"worker", "analysis", "update"},
		{"worker", "worklog", "create"},
		{"worker", "worklog", "read"},
	}

	for _, policy := range policies {
		if err := e.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	log.Info("default permission policies initialized")
	return nil
}
