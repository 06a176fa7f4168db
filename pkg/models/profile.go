// Package models defines the profile and automation settings records served to the control panel.
package models

// Profile is a named configuration context selectable from the control panel.
type Profile struct {
	ID       string `json:"id"`
	Name     string `json:"name"     validate:"required,min=1"`
	IsActive bool   `json:"isActive"`
}

// ProfilePatch carries the fields of a partial profile update.
// Nil fields are left untouched.
type ProfilePatch struct {
	Name     *string `json:"name,omitempty"     validate:"omitnil,min=1"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// Apply merges the patch into a copy of p.
func (patch ProfilePatch) Apply(p Profile) Profile {
	if patch.Name != nil {
		p.Name = *patch.Name
	}

	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}

	return p
}
