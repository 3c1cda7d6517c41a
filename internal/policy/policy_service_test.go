package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumedhatongle/employee-management-system/internal/identity"
	"github.com/Sumedhatongle/employee-management-system/internal/policy"
)

func TestAllowed(t *testing.T) {
	svc, err := policy.NewService()
	assert.NoError(t, err)

	cases := []struct {
		role     identity.Role
		resource string
		action   string
		want     bool
	}{
		{identity.RoleEmployee, "attendance", "record", true},
		{identity.RoleEmployee, "attendance", "read", true},
		{identity.RoleEmployee, "leave", "submit", true},
		{identity.RoleEmployee, "leave", "read-own", true},
		{identity.RoleEmployee, "leave", "list", false},
		{identity.RoleEmployee, "leave", "approve", false},
		{identity.RoleEmployee, "leave", "reject", false},
		{identity.RoleEmployee, "employee", "create", false},
		{identity.RoleEmployee, "employee", "read-profile", true},

		{identity.RoleHR, "leave", "list", true},
		{identity.RoleHR, "leave", "approve", true},
		{identity.RoleHR, "leave", "reject", true},
		{identity.RoleHR, "employee", "create", true},
		{identity.RoleHR, "attendance", "record", true},

		// Unknown triples never match.
		{identity.RoleHR, "payroll", "read", false},
		{identity.Role("Contractor"), "attendance", "record", false},
	}

	for _, tc := range cases {
		got, err := svc.Allowed(tc.role, tc.resource, tc.action)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s %s %s", tc.role, tc.resource, tc.action)
	}
}
