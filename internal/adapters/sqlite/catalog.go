package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"resumemcp/internal/application"
	"resumemcp/internal/domain"
	"resumemcp/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// tables lists the exported tables in the order Counts reports them
var tables = []string{
	"experiences",
	"projects",
	"skills",
	"skill_projects",
	"skill_experiences",
	"project_experiences",
	"skill_clusters",
}

// Catalog implements ports.Catalog using SQLite
type Catalog struct {
	db     *sql.DB
	dbPath string
}

// Ensure Catalog implements the catalog ports
var (
	_ ports.Catalog       = (*Catalog)(nil)
	_ ports.CatalogReader = (*Catalog)(nil)
)

// NewCatalog creates a new SQLite catalog
func NewCatalog() *Catalog {
	return &Catalog{}
}

func expandHome(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return path, nil
}

// OpenExisting opens a catalog written by an earlier export. A missing file is
// reported as application.ErrNotFound instead of creating an empty database.
func (c *Catalog) OpenExisting(path string) error {
	path, err := expandHome(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("catalog %s: %w (run generate --sqlite first)", path, application.ErrNotFound)
		}
		return fmt.Errorf("failed to stat catalog: %w", err)
	}
	return c.Open(path)
}

// Open creates or opens the database at path and ensures the schema
func (c *Catalog) Open(path string) error {
	path, err := expandHome(path)
	if err != nil {
		return err
	}
	c.dbPath = path

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	c.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS experiences (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			employer TEXT NOT NULL,
			start_date TEXT NOT NULL,
			end_date TEXT
		);
		CREATE TABLE IF NOT EXISTS projects (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			duration TEXT,
			description TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS skills (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			category TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS skill_projects (
			skill_id TEXT NOT NULL,
			project_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY (skill_id, position)
		);
		CREATE TABLE IF NOT EXISTS skill_experiences (
			skill_id TEXT NOT NULL,
			experience_id TEXT NOT NULL,
			PRIMARY KEY (skill_id, experience_id)
		);
		CREATE TABLE IF NOT EXISTS project_experiences (
			project_id TEXT NOT NULL,
			experience_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY (project_id, position)
		);
		CREATE TABLE IF NOT EXISTS skill_clusters (
			cluster_key TEXT NOT NULL,
			project_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY (cluster_key, position)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_skill_projects_project ON skill_projects(project_id);
		CREATE INDEX IF NOT EXISTS idx_project_experiences_experience ON project_experiences(experience_id);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Path returns the database file path
func (c *Catalog) Path() string {
	return c.dbPath
}

// Close closes the database connection
func (c *Catalog) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Export replaces the catalog contents in a single transaction
func (c *Catalog) Export(ctx context.Context, resume *domain.Resume, index *domain.ResumeIndex, clusters map[string][]string) error {
	tx, err := c.beginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.rollback()

	if err := tx.clear(); err != nil {
		return fmt.Errorf("failed to clear catalog: %w", err)
	}

	// Later duplicates replace earlier rows, like the identity lookups
	for _, e := range resume.Experiences {
		if err := tx.insertExperience(e); err != nil {
			return fmt.Errorf("failed to insert experience %s: %w", e.ID, err)
		}
	}
	for _, p := range resume.Projects {
		if err := tx.insertProject(p); err != nil {
			return fmt.Errorf("failed to insert project %s: %w", p.ID, err)
		}
	}
	for _, s := range resume.Skills {
		if err := tx.insertSkill(s); err != nil {
			return fmt.Errorf("failed to insert skill %s: %w", s.ID, err)
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	for _, skill := range sortedKeys(index.SkillToProjects) {
		for i, project := range index.SkillToProjects[skill] {
			if err := tx.insertSkillProject(skill, project, i); err != nil {
				return fmt.Errorf("failed to insert skill_projects row: %w", err)
			}
		}
	}
	for _, skill := range sortedKeys(index.SkillToExperiences) {
		for _, exp := range index.SkillToExperiences[skill] {
			if err := tx.insertSkillExperience(skill, exp); err != nil {
				return fmt.Errorf("failed to insert skill_experiences row: %w", err)
			}
		}
	}
	for _, project := range sortedKeys(index.ProjectToExperiences) {
		for i, exp := range index.ProjectToExperiences[project] {
			if err := tx.insertProjectExperience(project, exp, i); err != nil {
				return fmt.Errorf("failed to insert project_experiences row: %w", err)
			}
		}
	}
	for _, key := range sortedKeys(clusters) {
		for i, project := range clusters[key] {
			if err := tx.insertClusterMember(key, project, i); err != nil {
				return fmt.Errorf("failed to insert skill_clusters row: %w", err)
			}
		}
	}

	return tx.commit()
}

// ProjectsForSkill returns the project ids recorded for a skill, in index order
func (c *Catalog) ProjectsForSkill(ctx context.Context, skillID string) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT project_id FROM skill_projects
		WHERE skill_id = ?
		ORDER BY position
	`, skillID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Clusters reads the skill clusters back as cluster key -> project ids
func (c *Catalog) Clusters(ctx context.Context) (map[string][]string, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT cluster_key, project_id FROM skill_clusters
		ORDER BY cluster_key, position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clusters := make(map[string][]string)
	for rows.Next() {
		var key, project string
		if err := rows.Scan(&key, &project); err != nil {
			return nil, err
		}
		clusters[key] = append(clusters[key], project)
	}
	return clusters, rows.Err()
}

// Count returns the number of rows in one of the catalog tables
func (c *Catalog) Count(ctx context.Context, table string) (int, error) {
	if !slices.Contains(tables, table) {
		return 0, fmt.Errorf("unknown table %q", table)
	}
	var n int
	err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n)
	return n, err
}

// Counts returns the row count of every exported table
func (c *Catalog) Counts(ctx context.Context) ([]ports.TableCount, error) {
	counts := make([]ports.TableCount, 0, len(tables))
	for _, table := range tables {
		n, err := c.Count(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		counts = append(counts, ports.TableCount{Table: table, Rows: n})
	}
	return counts, nil
}

// SkillsByCategory lists skill ids per category, both ascending
func (c *Catalog) SkillsByCategory(ctx context.Context) (map[string][]string, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT category, id FROM skills ORDER BY category, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var category, id string
		if err := rows.Scan(&category, &id); err != nil {
			return nil, err
		}
		out[category] = append(out[category], id)
	}
	return out, rows.Err()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
