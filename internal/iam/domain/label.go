package domain

import "encoding/json"

// RoleLabel describes which roles backed an authentication decision. It is a
// sum type: the built-in admin reports a single label, locally resolved users
// report the list of their role names. JSON encoding mirrors that shape: a
// single label marshals as a string, multiple labels as an array.
type RoleLabel struct {
	single string
	names  []string
}

// SingleRoleLabel returns a label naming one role.
func SingleRoleLabel(name string) RoleLabel {
	return RoleLabel{single: name}
}

// MultiRoleLabel returns a label naming zero or more roles.
func MultiRoleLabel(names []string) RoleLabel {
	return RoleLabel{names: names}
}

// IsSingle reports whether the label names exactly one role via SingleRoleLabel.
func (l RoleLabel) IsSingle() bool {
	return l.single != ""
}

// Names returns the role names behind the label.
func (l RoleLabel) Names() []string {
	if l.IsSingle() {
		return []string{l.single}
	}
	return l.names
}

// MarshalJSON encodes a single label as a string and multiple labels as an array.
func (l RoleLabel) MarshalJSON() ([]byte, error) {
	if l.IsSingle() {
		return json.Marshal(l.single)
	}
	if l.names == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l.names)
}

// UnmarshalJSON accepts either a string or an array of strings.
func (l *RoleLabel) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = SingleRoleLabel(single)
		return nil
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	*l = MultiRoleLabel(names)
	return nil
}

// AccessEntries is the outcome of a credential check: whether the credentials
// authenticated, the resolved access set, and the roles that produced it.
type AccessEntries struct {
	IsAuth    bool      `json:"is_auth"`
	Accesses  []string  `json:"accesses"`
	RoleLabel RoleLabel `json:"role_label"`
}

// Denied returns the uniform failed-authentication result. It carries no
// access names and no role label so that callers cannot distinguish an
// unknown username from a password mismatch.
func Denied() AccessEntries {
	return AccessEntries{
		IsAuth:    false,
		Accesses:  []string{},
		RoleLabel: MultiRoleLabel(nil),
	}
}
