// Package domaintest provides resume fixtures shared by tests across packages.
package domaintest

import (
	"time"

	"resumemcp/internal/domain"
)

// Date parses an RFC 3339 timestamp and panics on error.
func Date(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// SampleResume returns a small resume with two experiences, three projects and six skills.
//
//	exp1 -> proj1 (rust, postgresql, docker), proj2 (rust, kafka, redis)
//	exp2 -> proj3 (python, postgresql, docker)
func SampleResume() *domain.Resume {
	return &domain.Resume{
		Info: domain.PersonalInfo{
			Name:        "Test User",
			Location:    "San Francisco, CA",
			PhoneNumber: "+1-555-0123",
			Email:       "test@example.com",
			Links: map[string]string{
				"github":   "https://github.com/testuser",
				"linkedin": "https://linkedin.com/in/testuser",
			},
		},
		Experiences: []domain.Experience{
			{
				ID:        "exp1",
				Title:     "Senior Software Engineer",
				Employer:  "Tech Corp",
				StartDate: Date("2022-01-01T00:00:00Z"),
				Projects:  []string{"proj1", "proj2"},
			},
			{
				ID:        "exp2",
				Title:     "Software Engineer",
				Employer:  "StartupCo",
				StartDate: Date("2020-01-01T00:00:00Z"),
				EndDate:   Ptr(Date("2021-12-31T23:59:59Z")),
				Projects:  []string{"proj3"},
			},
		},
		Projects: []domain.Project{
			{
				ID:          "proj1",
				Title:       "E-commerce Platform",
				Duration:    Ptr("8 months"),
				Description: "Built scalable e-commerce platform with microservices",
				Skills:      []string{"rust", "postgresql", "docker"},
			},
			{
				ID:          "proj2",
				Title:       "Data Pipeline",
				Duration:    Ptr("4 months"),
				Description: "Real-time data processing pipeline",
				Skills:      []string{"rust", "kafka", "redis"},
			},
			{
				ID:          "proj3",
				Title:       "Mobile App Backend",
				Duration:    Ptr("6 months"),
				Description: "REST API for mobile application",
				Skills:      []string{"python", "postgresql", "docker"},
			},
		},
		Skills: []domain.Skill{
			{ID: "rust", Name: "Rust", Type: "programming_language", Category: "backend"},
			{ID: "python", Name: "Python", Type: "programming_language", Category: "backend"},
			{ID: "postgresql", Name: "PostgreSQL", Type: "database", Category: "backend"},
			{ID: "docker", Name: "Docker", Type: "tool", Category: "devops"},
			{ID: "kafka", Name: "Apache Kafka", Type: "message_queue", Category: "backend"},
			{ID: "redis", Name: "Redis", Type: "database", Category: "backend"},
		},
	}
}

// EmptyResume returns a resume with personal info only.
func EmptyResume() *domain.Resume {
	return &domain.Resume{
		Info: domain.PersonalInfo{Name: "Empty User", Links: map[string]string{}},
	}
}

// Project builds a minimal project using the given skills.
func Project(id string, skills ...string) domain.Project {
	return domain.Project{ID: id, Title: id, Description: id, Skills: skills}
}

// Experience builds a minimal experience referencing the given projects.
func Experience(id string, projects ...string) domain.Experience {
	return domain.Experience{ID: id, Title: id, StartDate: Date("2020-01-01T00:00:00Z"), Projects: projects}
}

// Skill builds a minimal skill.
func Skill(id string) domain.Skill {
	return domain.Skill{ID: id, Name: id, Type: "tool", Category: "general"}
}

// Skills builds minimal skills for each id.
func Skills(ids ...string) []domain.Skill {
	out := make([]domain.Skill, 0, len(ids))
	for _, id := range ids {
		out = append(out, Skill(id))
	}
	return out
}
