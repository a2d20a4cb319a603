package domain

// Unit represents a test unit declared in a plan file.
type Unit struct {
	Name     string   // Unit name, unique within its group
	Group    string   // Optional group, qualifies the name
	RunCmd   string   // Command executed for the call phase
	Setup    string   // Optional command executed before the call phase
	Teardown string   // Optional command executed after the call phase
	Depends  []string // Names of units this unit depends on, in declared order
	Mode     string   // Dependency check mode: all (default), any or each
	Dir      string   // Working directory for the commands (plan file dir)
}

// ID returns the unit's identifier, qualified by its group when present.
func (u Unit) ID() string {
	if u.Group != "" {
		return u.Group + "::" + u.Name
	}
	return u.Name
}
