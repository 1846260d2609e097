package types

// JobExploreItem is one candidate job in an exploration result. The service
// returns candidates ranked best-match first; order is meaningful and must be
// preserved by callers.
type JobExploreItem struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	MatchScore   float64 `json:"match_score,omitempty"`
	MatchSummary string  `json:"match_summary,omitempty"`
}

// SkillGap describes one skill the candidate is missing or under-leveled on
// relative to the supplied resume.
type SkillGap struct {
	Skill         string `json:"skill"`
	RequiredLevel string `json:"required_level,omitempty"`
	CurrentLevel  string `json:"current_level,omitempty"`
}

// JobPreview is the expanded detail for a single job, fetched independently
// of the exploration list and addressable by job identifier.
type JobPreview struct {
	JobID        string     `json:"job_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Requirements []string   `json:"requirements,omitempty"`
	SkillGaps    []SkillGap `json:"skill_gaps,omitempty"`
}

// StartResult is the response to starting an onboarding session: the opaque
// anonymous session token plus an optional initial recommendation seed.
type StartResult struct {
	SessionToken    string           `json:"session_token"`
	Recommendations []JobExploreItem `json:"recommendations,omitempty"`
}

// ExploreResult is an ordered page of job candidates with the total count of
// matches known to the service.
type ExploreResult struct {
	Jobs      []JobExploreItem `json:"jobs"`
	TotalJobs int              `json:"total_jobs"`
}

// SelectResult confirms a job selection against the current session.
type SelectResult struct {
	JobID    string `json:"job_id"`
	Selected bool   `json:"selected"`
}
