package models

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	role, err := ParseRole(" Accent ")
	if err != nil {
		t.Fatalf("ParseRole: %v", err)
	}
	if role != RoleAccent {
		t.Fatalf("expected accent, got %q", role)
	}

	if _, err := ParseRole("border"); !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestColorSetWithLeavesOriginal(t *testing.T) {
	set := DefaultColorSet
	edited := set.With(RoleHigh, "#000000")

	if edited.High != "#000000" {
		t.Fatalf("expected high to change, got %q", edited.High)
	}
	if set != DefaultColorSet {
		t.Fatalf("original set mutated: %+v", set)
	}
	for _, role := range []Role{RoleContainer, RoleAccent, RoleMedium, RoleLow} {
		if edited.Get(role) != set.Get(role) {
			t.Fatalf("role %s changed unexpectedly", role)
		}
	}
}

func TestColorSetValidate(t *testing.T) {
	if err := DefaultColorSet.Validate(); err != nil {
		t.Fatalf("default set invalid: %v", err)
	}

	set := DefaultColorSet.With(RoleLow, " ")
	err := set.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	var validation *ValidationErrors
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(validation.Errors) != 1 || validation.Errors[0].Field != "low" {
		t.Fatalf("unexpected errors: %+v", validation.Errors)
	}
}

func TestIsOnRole(t *testing.T) {
	if RoleContainer.IsOnRole() {
		t.Fatal("container is not an on role")
	}
	for _, role := range OnRoles {
		if !role.IsOnRole() {
			t.Fatalf("expected %s to be an on role", role)
		}
	}
}
