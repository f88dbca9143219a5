package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"resumemcp/internal/domain"
)

// exportTx wraps the transaction used by Export
type exportTx struct {
	tx *sql.Tx
}

func (c *Catalog) beginTx(ctx context.Context) (*exportTx, error) {
	if c.db == nil {
		return nil, fmt.Errorf("catalog is not open")
	}
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &exportTx{tx: tx}, nil
}

// clear removes every exported row, keeping meta
func (t *exportTx) clear() error {
	_, err := t.tx.Exec(`
		DELETE FROM experiences;
		DELETE FROM projects;
		DELETE FROM skills;
		DELETE FROM skill_projects;
		DELETE FROM skill_experiences;
		DELETE FROM project_experiences;
		DELETE FROM skill_clusters;
	`)
	return err
}

// insertExperience inserts or replaces an experience
func (t *exportTx) insertExperience(e domain.Experience) error {
	var end sql.NullString
	if !e.Ongoing() {
		end = sql.NullString{String: e.EndDate.UTC().Format(time.RFC3339), Valid: true}
	}
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO experiences (id, title, employer, start_date, end_date)
		VALUES (?, ?, ?, ?, ?)
	`, e.ID, e.Title, e.Employer, e.StartDate.UTC().Format(time.RFC3339), end)
	return err
}

// insertProject inserts or replaces a project
func (t *exportTx) insertProject(p domain.Project) error {
	var duration sql.NullString
	if p.Duration != nil {
		duration = sql.NullString{String: *p.Duration, Valid: true}
	}
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO projects (id, title, duration, description)
		VALUES (?, ?, ?, ?)
	`, p.ID, p.Title, duration, p.Description)
	return err
}

// insertSkill inserts or replaces a skill
func (t *exportTx) insertSkill(s domain.Skill) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO skills (id, name, type, category)
		VALUES (?, ?, ?, ?)
	`, s.ID, s.Name, s.Type, s.Category)
	return err
}

func (t *exportTx) insertSkillProject(skillID, projectID string, position int) error {
	_, err := t.tx.Exec(`
		INSERT INTO skill_projects (skill_id, project_id, position) VALUES (?, ?, ?)
	`, skillID, projectID, position)
	return err
}

func (t *exportTx) insertSkillExperience(skillID, experienceID string) error {
	_, err := t.tx.Exec(`
		INSERT INTO skill_experiences (skill_id, experience_id) VALUES (?, ?)
	`, skillID, experienceID)
	return err
}

func (t *exportTx) insertProjectExperience(projectID, experienceID string, position int) error {
	_, err := t.tx.Exec(`
		INSERT INTO project_experiences (project_id, experience_id, position) VALUES (?, ?, ?)
	`, projectID, experienceID, position)
	return err
}

func (t *exportTx) insertClusterMember(key, projectID string, position int) error {
	_, err := t.tx.Exec(`
		INSERT INTO skill_clusters (cluster_key, project_id, position) VALUES (?, ?, ?)
	`, key, projectID, position)
	return err
}

// commit commits the transaction
func (t *exportTx) commit() error {
	return t.tx.Commit()
}

// rollback aborts the transaction. It is a no-op after commit.
func (t *exportTx) rollback() error {
	return t.tx.Rollback()
}
