package model

import "testing"

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

func TestSkillPatchMergesOnlyProvidedFields(t *testing.T) {
	s := Skill{Name: "Go", Icon: "🐹", SortOrder: 3, IsPublished: true}

	p := SkillPatch{Name: strp("Golang"), IsPublished: boolp(false)}
	p.Apply(&s)

	if s.Name != "Golang" {
		t.Errorf("name not applied: %q", s.Name)
	}
	if s.IsPublished {
		t.Error("isPublished not applied")
	}
	if s.Icon != "🐹" || s.SortOrder != 3 {
		t.Errorf("absent fields must survive: %+v", s)
	}
}

func TestPatchDistinguishesEmptyFromAbsent(t *testing.T) {
	s := HomeSection{Greeting: "Hi", Description: "text", ImageURL: "/uploads/a.png"}

	// Explicit empty string clears the field; untouched pointers keep it.
	p := HomeSectionPatch{ImageURL: strp("")}
	p.Apply(&s)
	if s.ImageURL != "" {
		t.Errorf("explicit empty value must clear: %q", s.ImageURL)
	}
	if s.Greeting != "Hi" || s.Description != "text" {
		t.Errorf("absent fields changed: %+v", s)
	}
}

func TestServicePatchShowFlags(t *testing.T) {
	sv := Service{Title: "Web", ShowDemoInPortfolio: true, ShowRatingsInPortfolio: true}

	p := ServicePatch{ShowDemoInPortfolio: boolp(false)}
	p.Apply(&sv)
	if sv.ShowDemoInPortfolio {
		t.Error("show flag not applied")
	}
	if !sv.ShowRatingsInPortfolio {
		t.Error("untouched show flag changed")
	}
}
