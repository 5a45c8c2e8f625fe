package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

var errNameRequired = errors.New("enter a group name")

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errNameRequired
	}
	return nil
}

// newParentForm returns the single-field add-group form bound to name.
func newParentForm(name *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New Group").
				Placeholder("Group name").
				CharLimit(100).
				Value(name).
				Validate(validateRequired),
		),
	).WithTheme(huhTheme()).WithShowHelp(false)
}
