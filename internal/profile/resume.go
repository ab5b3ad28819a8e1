package profile

import "strings"

// ResumeProfile mirrors the resume document (resume.json).
type ResumeProfile struct {
	PersonalInfo   PersonalInfo     `json:"personal_info"`
	Summary        string           `json:"summary"`
	Skills         Skills           `json:"skills"`
	Experience     []Position       `json:"experience"`
	Education      []Degree         `json:"education"`
	Projects       []Project        `json:"projects"`
	Certifications []Certification  `json:"certifications"`
	Languages      []SpokenLanguage `json:"languages" validate:"dive"`
}

// PersonalInfo carries identity and contact fields. Links are optional.
type PersonalInfo struct {
	Name      string `json:"name"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
}

// FirstName returns the leading token of the full name. Application forms
// that take split names (Greenhouse-style) use this.
func (p PersonalInfo) FirstName() string {
	fields := strings.Fields(p.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// LastName returns the trailing token of the full name.
func (p PersonalInfo) LastName() string {
	fields := strings.Fields(p.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// Skills groups skill names by category. Order within a category follows
// the source document.
type Skills struct {
	ProgrammingLanguages []string `json:"programming_languages"`
	Frameworks           []string `json:"frameworks"`
	Databases            []string `json:"databases"`
	Tools                []string `json:"tools"`
	Other                []string `json:"other"`
}

// All returns every skill across categories as a single flat list, in
// category order. The returned slice is a copy.
func (s Skills) All() []string {
	all := make([]string, 0,
		len(s.ProgrammingLanguages)+len(s.Frameworks)+len(s.Databases)+len(s.Tools)+len(s.Other))
	all = append(all, s.ProgrammingLanguages...)
	all = append(all, s.Frameworks...)
	all = append(all, s.Databases...)
	all = append(all, s.Tools...)
	all = append(all, s.Other...)
	return all
}

// Position is one entry in the work history. EndDate is empty for a
// position still held; Current marks it explicitly.
type Position struct {
	Company    string   `json:"company"`
	Title      string   `json:"title"`
	Location   string   `json:"location"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	Current    bool     `json:"current"`
	Highlights []string `json:"highlights"`
}

// Degree is one education entry.
type Degree struct {
	Institution    string   `json:"institution"`
	Degree         string   `json:"degree"`
	GraduationDate string   `json:"graduation_date"`
	GPA            *float64 `json:"gpa,omitempty"`
}

// Project is a personal or professional project entry.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	URL          string   `json:"url"`
	Technologies []string `json:"technologies"`
}

// Certification is a professional certificate entry.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// SpokenLanguage pairs a language with a proficiency level.
type SpokenLanguage struct {
	Language    string      `json:"language"`
	Proficiency Proficiency `json:"proficiency" validate:"omitempty,oneof=native fluent professional conversational basic"`
}

// Proficiency is a spoken-language proficiency level.
type Proficiency string

const (
	ProficiencyNative         Proficiency = "native"
	ProficiencyFluent         Proficiency = "fluent"
	ProficiencyProfessional   Proficiency = "professional"
	ProficiencyConversational Proficiency = "conversational"
	ProficiencyBasic          Proficiency = "basic"
)

// Valid reports whether the proficiency is one of the known levels.
func (p Proficiency) Valid() bool {
	switch p {
	case ProficiencyNative, ProficiencyFluent, ProficiencyProfessional,
		ProficiencyConversational, ProficiencyBasic:
		return true
	}
	return false
}

// CurrentPositions returns the positions still held, as a copy.
func (r *ResumeProfile) CurrentPositions() []Position {
	var current []Position
	for _, pos := range r.Experience {
		if pos.Current || pos.EndDate == "" {
			current = append(current, pos)
		}
	}
	return current
}
