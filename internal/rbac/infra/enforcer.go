package infra

import "github.com/casbin/casbin/v2"

// NewEnforcer builds a casbin enforcer with no storage adapter. Policies live
// in Postgres and are loaded per company by the rbac service.
func NewEnforcer(modelPath string) (*casbin.Enforcer, error) {
	e, err := casbin.NewEnforcer(modelPath)
	if err != nil {
		return nil, err
	}
	e.EnableAutoSave(false)
	return e, nil
}
