package domain

import "time"

// Document is the on-disk wrapper around a resume.
type Document struct {
	Resume Resume `json:"resume" yaml:"resume"`
}

// Resume is the full input: personal info plus the three entity collections.
type Resume struct {
	Info        PersonalInfo `json:"info" yaml:"info"`
	Experiences []Experience `json:"experiences" yaml:"experiences"`
	Projects    []Project    `json:"projects" yaml:"projects"`
	Skills      []Skill      `json:"skills" yaml:"skills"`
}

// PersonalInfo holds contact details. Links maps a label (e.g. "github") to a URL.
type PersonalInfo struct {
	Name        string            `json:"name" yaml:"name"`
	Location    string            `json:"location" yaml:"location"`
	PhoneNumber string            `json:"phone_number" yaml:"phone_number"`
	Email       string            `json:"email" yaml:"email"`
	Links       map[string]string `json:"links" yaml:"links"`
}

// Experience is a period of employment. A nil EndDate means ongoing.
type Experience struct {
	ID        string     `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	Employer  string     `json:"employer" yaml:"employer"`
	StartDate time.Time  `json:"start_date" yaml:"start_date"`
	EndDate   *time.Time `json:"end_date" yaml:"end_date"`
	Projects  []string   `json:"projects" yaml:"projects"`
}

// Ongoing reports whether the experience has no end date.
func (e Experience) Ongoing() bool {
	return e.EndDate == nil
}

// Project is a piece of work that uses a list of skills.
type Project struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Duration    *string  `json:"duration" yaml:"duration"`
	Description string   `json:"description" yaml:"description"`
	Skills      []string `json:"skills" yaml:"skills"`
}

// Skill is a single capability, tagged with a type and a category.
type Skill struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Category string `json:"category" yaml:"category"`
}

// EntityKind names one of the three identified entity collections.
type EntityKind string

const (
	KindExperience EntityKind = "experience"
	KindProject    EntityKind = "project"
	KindSkill      EntityKind = "skill"
)

// DuplicateID records an id that appears more than once within one collection.
// Only the last occurrence survives in the identity lookups.
type DuplicateID struct {
	Kind  EntityKind
	ID    string
	Count int
}

// DuplicateIDs lists ids repeated within a collection, in order of first appearance.
func (r *Resume) DuplicateIDs() []DuplicateID {
	var dups []DuplicateID
	dups = appendDuplicates(dups, KindExperience, r.Experiences, func(e Experience) string { return e.ID })
	dups = appendDuplicates(dups, KindProject, r.Projects, func(p Project) string { return p.ID })
	dups = appendDuplicates(dups, KindSkill, r.Skills, func(s Skill) string { return s.ID })
	return dups
}

func appendDuplicates[T any](dups []DuplicateID, kind EntityKind, items []T, id func(T) string) []DuplicateID {
	counts := make(map[string]int, len(items))
	var order []string
	for _, item := range items {
		key := id(item)
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}
	for _, key := range order {
		if counts[key] > 1 {
			dups = append(dups, DuplicateID{Kind: kind, ID: key, Count: counts[key]})
		}
	}
	return dups
}

// ProjectIDs returns distinct project ids in order of first appearance.
func (r *Resume) ProjectIDs() []string {
	return distinct(r.Projects, func(p Project) string { return p.ID })
}

// SkillIDs returns distinct skill ids in order of first appearance.
func (r *Resume) SkillIDs() []string {
	return distinct(r.Skills, func(s Skill) string { return s.ID })
}

// ExperienceIDs returns distinct experience ids in order of first appearance.
func (r *Resume) ExperienceIDs() []string {
	return distinct(r.Experiences, func(e Experience) string { return e.ID })
}

func distinct[T any](items []T, id func(T) string) []string {
	seen := make(map[string]bool, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		key := id(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		ids = append(ids, key)
	}
	return ids
}
