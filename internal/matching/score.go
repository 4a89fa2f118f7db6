// Package matching computes compatibility scores between talent profiles
// and job postings.
//
// Scoring is a pure, deterministic calculation over in-memory records: no
// I/O, no shared state, safe for concurrent use. Each component score is
// computed in [0,1], weighted, and reported as an independently rounded
// integer percentage. Because components and total are rounded separately,
// re-multiplying the reported components by the weights may drift from the
// reported total by a point; this is accepted display behavior.
//
// Known limitation: skill matching uses bidirectional substring containment
// ("React" matches "React.js"), which also produces false positives such as
// "Java" matching "JavaScript" and misses synonyms like "JS" vs
// "JavaScript". The semantics are kept as-is for output compatibility.
package matching

import (
	"math"
	"strings"

	"github.com/mikhail/talenthub/internal/types"
)

// Default weights for scoring components.
const (
	skillOverlapWeight    = 0.5
	categoryMatchWeight   = 0.2
	experienceMatchWeight = 0.2
	engagementMatchWeight = 0.1
)

// Experience penalties per rank of distance between talent and job level.
// Over-qualification is penalized more gently than under-qualification.
const (
	overQualifiedPenalty  = 0.1
	overQualifiedFloor    = 0.7
	underQualifiedPenalty = 0.3
	neutralScore          = 0.5
)

// Weights controls the contribution of each component to the total score.
// The engine does not renormalize: weights that do not sum to 1 produce a
// correspondingly out-of-range total, which is the caller's risk.
type Weights struct {
	SkillOverlap    float64
	CategoryMatch   float64
	ExperienceMatch float64
	EngagementMatch float64
}

// DefaultWeights returns the standard component weights.
func DefaultWeights() Weights {
	return Weights{
		SkillOverlap:    skillOverlapWeight,
		CategoryMatch:   categoryMatchWeight,
		ExperienceMatch: experienceMatchWeight,
		EngagementMatch: engagementMatchWeight,
	}
}

// Score computes the match score between a talent and a job using the
// default weights. It returns the total as an integer percentage together
// with the per-component breakdown.
func Score(talent *types.Talent, job *types.Job) (int, types.MatchBreakdown) {
	return ScoreWithWeights(talent, job, DefaultWeights())
}

// ScoreWithWeights computes the match score using caller-supplied weights.
func ScoreWithWeights(talent *types.Talent, job *types.Job, w Weights) (int, types.MatchBreakdown) {
	skillOverlap := computeSkillOverlap(talent.Skills, job.Skills)
	categoryMatch := computeCategoryMatch(talent.Categories, job.Category)
	experienceMatch := computeExperienceMatch(talent.Experience, job)
	engagementMatch := computeEngagementMatch(talent, job.Engagement)

	total := (w.SkillOverlap * skillOverlap) +
		(w.CategoryMatch * categoryMatch) +
		(w.ExperienceMatch * experienceMatch) +
		(w.EngagementMatch * engagementMatch)

	breakdown := types.MatchBreakdown{
		SkillOverlap:    toPercent(skillOverlap),
		CategoryMatch:   toPercent(categoryMatch),
		ExperienceMatch: toPercent(experienceMatch),
		EngagementMatch: toPercent(engagementMatch),
		Total:           toPercent(total),
	}

	return breakdown.Total, breakdown
}

// computeSkillOverlap calculates the fraction of required job skills covered
// by the talent's skills. A job skill counts as matched when it contains, or
// is contained in, some talent skill after normalization. A job with no
// required skills scores 0, not 1.
func computeSkillOverlap(talentSkills, jobSkills []string) float64 {
	if len(jobSkills) == 0 {
		return 0.0
	}

	normalized := make([]string, 0, len(talentSkills))
	for _, skill := range talentSkills {
		if s := normalizeSkill(skill); s != "" {
			normalized = append(normalized, s)
		}
	}

	matched := 0
	for _, jobSkill := range jobSkills {
		required := normalizeSkill(jobSkill)
		if required == "" {
			continue
		}
		for _, talentSkill := range normalized {
			if strings.Contains(talentSkill, required) || strings.Contains(required, talentSkill) {
				matched++
				break
			}
		}
	}

	return float64(matched) / float64(len(jobSkills))
}

// computeCategoryMatch is binary: 1 when the job's category is among the
// talent's categories, else 0. No partial credit.
func computeCategoryMatch(talentCategories types.OneOrMany, jobCategory types.ServiceCategory) float64 {
	if talentCategories.Contains(string(jobCategory)) {
		return 1.0
	}
	return 0.0
}

// computeExperienceMatch compares ordinal experience ranks. A job without a
// target level scores neutral. Equal ranks score perfect; over-qualified
// talents take a mild floor-bounded penalty, under-qualified talents a
// steeper one.
func computeExperienceMatch(level types.ExperienceLevel, job *types.Job) float64 {
	if !job.HasTargetExperience() {
		return neutralScore
	}

	talentRank := level.Rank()
	jobRank := job.Experience.Rank()

	switch {
	case talentRank == jobRank:
		return 1.0
	case talentRank > jobRank:
		diff := float64(talentRank - jobRank)
		return math.Max(overQualifiedFloor, 1.0-overQualifiedPenalty*diff)
	default:
		diff := float64(jobRank - talentRank)
		return math.Max(0.0, 1.0-underQualifiedPenalty*diff)
	}
}

// computeEngagementMatch is neutral when the talent has no preference,
// otherwise strict membership of the job's engagement type in the
// preference set. No partial credit for "close" engagement types.
func computeEngagementMatch(talent *types.Talent, jobEngagement types.EngagementType) float64 {
	if !talent.HasEngagementPreference() {
		return neutralScore
	}
	if talent.Engagements.Contains(string(jobEngagement)) {
		return 1.0
	}
	return 0.0
}

// normalizeSkill lowercases and trims a free-text skill string.
func normalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// toPercent converts a [0,1] fraction to the nearest integer percentage.
func toPercent(fraction float64) int {
	return int(math.Round(fraction * 100))
}
