// Package precompute materializes the answer to every supported query over a
// resume, keyed the way a client would address it.
package precompute

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"resumemcp/internal/domain"
)

// Engine answers queries from a resume and its index. Both are read-only.
type Engine struct {
	resume   *domain.Resume
	index    *domain.ResumeIndex
	parallel bool
	log      zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithParallel runs the independent passes of Run concurrently.
// Output is identical either way.
func WithParallel(parallel bool) Option {
	return func(e *Engine) {
		e.parallel = parallel
	}
}

// WithLogger sets the logger used for pass timings.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// NewEngine creates an engine over a resume and the index built from it.
func NewEngine(resume *domain.Resume, index *domain.ResumeIndex, opts ...Option) *Engine {
	e := &Engine{
		resume:   resume,
		index:    index,
		parallel: true,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type pass struct {
	name string
	run  func(ctx context.Context, res *Result) error
}

// Run computes every query answer. Each pass fills its own fields of the result,
// so passes never share state.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	res := &Result{
		BasicInfo: e.BasicInfo(),
		Indexes:   e.Indexes(),
	}

	passes := []pass{
		{name: "projects", run: e.projectPass},
		{name: "skills", run: e.skillPass},
		{name: "experiences", run: e.experiencePass},
		{name: "shared_skills", run: e.sharedSkillsPass},
		{name: "skill_clusters", run: e.clusterPass},
	}

	if !e.parallel {
		for _, p := range passes {
			if err := e.timed(ctx, p, res); err != nil {
				return nil, err
			}
		}
		return res, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range passes {
		g.Go(func() error {
			return e.timed(gctx, p, res)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (e *Engine) timed(ctx context.Context, p pass, res *Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	if err := p.run(ctx, res); err != nil {
		return err
	}
	e.log.Debug().
		Str("pass", p.name).
		Dur("elapsed", time.Since(start)).
		Msg("precompute pass finished")
	return nil
}

func (e *Engine) projectPass(ctx context.Context, res *Result) error {
	ids := e.resume.ProjectIDs()
	res.SkillsForProject = make(map[string][]domain.Skill, len(ids))
	res.ProjectDetails = make(map[string]domain.Project, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}
		res.SkillsForProject[id] = e.SkillsForProject(id)
		res.ProjectDetails[id], _ = e.ProjectDetails(id)
	}
	return nil
}

func (e *Engine) skillPass(ctx context.Context, res *Result) error {
	ids := e.resume.SkillIDs()
	res.ProjectsUsingSkill = make(map[string][]domain.Project, len(ids))
	res.ExperiencesUsingSkill = make(map[string][]domain.Experience, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}
		res.ProjectsUsingSkill[id] = e.ProjectsUsingSkill(id)
		res.ExperiencesUsingSkill[id] = e.ExperiencesUsingSkill(id)
	}
	return nil
}

func (e *Engine) experiencePass(ctx context.Context, res *Result) error {
	ids := e.resume.ExperienceIDs()
	res.ExperienceDetails = make(map[string]domain.Experience, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}
		res.ExperienceDetails[id], _ = e.ExperienceDetails(id)
	}
	return nil
}

// sharedSkillsPass computes each unordered pair once and stores the same answer
// under both orderings.
func (e *Engine) sharedSkillsPass(ctx context.Context, res *Result) error {
	ids := e.resume.ProjectIDs()
	res.SharedSkills = make(map[PairKey][]domain.Skill, len(ids)*len(ids))
	for i, a := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, b := range ids[i+1:] {
			shared := e.SharedSkills(a, b)
			res.SharedSkills[PairKey{A: a, B: b}] = shared
			res.SharedSkills[PairKey{A: b, B: a}] = shared
		}
	}
	return nil
}

func (e *Engine) clusterPass(ctx context.Context, res *Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	res.SkillClusters = e.SkillClusters()
	return nil
}
