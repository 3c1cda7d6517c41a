package policy

import (
	"github.com/Sumedhatongle/employee-management-system/internal/identity"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// rules is the whole authorization surface: one row per permitted
// (role, resource, action) triple. There are two roles and no dynamic
// policy source, so the policies load once at startup.
var rules = [][]string{
	{"Employee", "attendance", "record"},
	{"Employee", "attendance", "read"},
	{"Employee", "leave", "submit"},
	{"Employee", "leave", "read-own"},
	{"Employee", "employee", "read-profile"},

	{"HR", "attendance", "record"},
	{"HR", "attendance", "read"},
	{"HR", "leave", "submit"},
	{"HR", "leave", "read-own"},
	{"HR", "leave", "list"},
	{"HR", "leave", "approve"},
	{"HR", "leave", "reject"},
	{"HR", "employee", "create"},
	{"HR", "employee", "read-profile"},
}

type Service interface {
	Allowed(role identity.Role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

func NewService() (Service, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, rule := range rules {
		if _, err := enforcer.AddPolicy(rule[0], rule[1], rule[2]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Allowed(role identity.Role, resource, action string) (bool, error) {
	return s.enforcer.Enforce(string(role), resource, action)
}
