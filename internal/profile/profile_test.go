package profile

import "testing"

func TestPersonalInfoNameSplit(t *testing.T) {
	cases := []struct {
		name        string
		first, last string
	}{
		{"Jordan Avery Smith", "Jordan", "Smith"},
		{"Madonna", "Madonna", "Madonna"},
		{"", "", ""},
		{"  Ada   Lovelace  ", "Ada", "Lovelace"},
	}
	for _, c := range cases {
		info := PersonalInfo{Name: c.name}
		if got := info.FirstName(); got != c.first {
			t.Errorf("FirstName(%q) = %q, want %q", c.name, got, c.first)
		}
		if got := info.LastName(); got != c.last {
			t.Errorf("LastName(%q) = %q, want %q", c.name, got, c.last)
		}
	}
}

func TestSkillsAll(t *testing.T) {
	s := Skills{
		ProgrammingLanguages: []string{"Go", "SQL"},
		Frameworks:           []string{"Gin"},
		Databases:            []string{"PostgreSQL"},
		Tools:                []string{"Docker"},
		Other:                []string{"REST"},
	}
	all := s.All()
	want := []string{"Go", "SQL", "Gin", "PostgreSQL", "Docker", "REST"}
	if len(all) != len(want) {
		t.Fatalf("All() = %v", all)
	}
	for i := range want {
		if all[i] != want[i] {
			t.Errorf("All()[%d] = %q, want %q", i, all[i], want[i])
		}
	}

	// mutating the returned slice must not touch the record
	all[0] = "mutated"
	if s.ProgrammingLanguages[0] != "Go" {
		t.Error("All() must return a copy")
	}
}

func TestRemotePreferences(t *testing.T) {
	if (RemotePreferences{}).AnySelected() {
		t.Error("empty preferences should select nothing")
	}
	if !(RemotePreferences{Hybrid: true}).WantsRemote() {
		t.Error("hybrid should count as remote")
	}
	if (RemotePreferences{Onsite: true}).WantsRemote() {
		t.Error("onsite only should not count as remote")
	}
}

func TestCurrentPositions(t *testing.T) {
	r := ResumeProfile{Experience: []Position{
		{Company: "A", Current: true},
		{Company: "B", EndDate: "2020-01"},
		{Company: "C"}, // no end date, implicitly current
	}}
	current := r.CurrentPositions()
	if len(current) != 2 || current[0].Company != "A" || current[1].Company != "C" {
		t.Errorf("CurrentPositions = %+v", current)
	}
}

func TestEnumValidity(t *testing.T) {
	if !PersonalizationMedium.Valid() || PersonalizationLevel("extreme").Valid() {
		t.Error("personalization level validity is wrong")
	}
	if !ProficiencyNative.Valid() || Proficiency("okay-ish").Valid() {
		t.Error("proficiency validity is wrong")
	}
}

func TestCustomizationAnswer(t *testing.T) {
	c := Customization{CustomAnswers: []CustomAnswer{
		{QuestionID: "visa_status", Response: "No sponsorship required."},
	}}
	if resp, ok := c.Answer("visa_status"); !ok || resp == "" {
		t.Errorf("Answer = %q, %v", resp, ok)
	}
	if _, ok := c.Answer("missing"); ok {
		t.Error("unknown question should not resolve")
	}
}
