package study

import (
	"fmt"
	"strings"
)

// Subject is one of the fixed engineering disciplines. The value is the
// display name, which is also what the model sees in prompts.
type Subject string

const (
	SubjectCS         Subject = "Computer Science & Engineering"
	SubjectMech       Subject = "Mechanical Engineering"
	SubjectCivil      Subject = "Civil Engineering"
	SubjectElectrical Subject = "Electrical & Electronics"
	SubjectChem       Subject = "Chemical Engineering"
	SubjectAero       Subject = "Aerospace Engineering"
)

// SubjectInfo is the catalog entry rendered as a subject card.
type SubjectInfo struct {
	ID          string
	Subject     Subject
	Description string
	Icon        string
}

var catalog = []SubjectInfo{
	{ID: "cs", Subject: SubjectCS, Icon: "</>", Description: "Algorithms, operating systems, networks and the theory of computation."},
	{ID: "mech", Subject: SubjectMech, Icon: "⚙", Description: "Thermodynamics, fluid mechanics, machine design and dynamics."},
	{ID: "civil", Subject: SubjectCivil, Icon: "⌂", Description: "Structural analysis, geotechnics, surveying and transportation."},
	{ID: "electrical", Subject: SubjectElectrical, Icon: "⚡", Description: "Circuit theory, power systems, signals and semiconductor devices."},
	{ID: "chem", Subject: SubjectChem, Icon: "⚗", Description: "Mass transfer, reaction kinetics, process control and unit operations."},
	{ID: "aero", Subject: SubjectAero, Icon: "✈", Description: "Aerodynamics, propulsion, flight mechanics and orbital dynamics."},
}

// Subjects returns the catalog in display order.
func Subjects() []SubjectInfo {
	out := make([]SubjectInfo, len(catalog))
	copy(out, catalog)
	return out
}

// LookupSubject finds a subject by id or display name, case-insensitively.
func LookupSubject(key string) (SubjectInfo, error) {
	key = strings.TrimSpace(key)
	for _, info := range catalog {
		if strings.EqualFold(info.ID, key) || strings.EqualFold(string(info.Subject), key) {
			return info, nil
		}
	}
	return SubjectInfo{}, fmt.Errorf("unknown subject %q", key)
}

// Modules returns the study modules offered for a subject.
func Modules(s Subject) []Concept {
	id := string(s)
	if info, err := LookupSubject(id); err == nil {
		id = info.ID
	}
	return []Concept{
		{ID: id + "-foundations", Title: "Module 1: Foundations", Subject: s, Summary: "Core definitions and first principles."},
		{ID: id + "-advanced", Title: "Module 2: Advanced Topics", Subject: s, Summary: "Specialised methods and current practice."},
	}
}
