package types

import "github.com/go-playground/validator/v10"

// DefaultExploreLimit is applied when an explore request does not set Limit.
const DefaultExploreLimit = 10

// StartRequest begins an anonymous onboarding session. At least one of
// ResumePath and ResumeText may be absent; the service decides how to proceed
// without resume context.
type StartRequest struct {
	DesiredJob string `validate:"required"`
	ResumePath string
	ResumeText string
}

// ExploreRequest asks for a ranked page of job candidates for the current
// anonymous session.
type ExploreRequest struct {
	SessionToken string `json:"session_token"`
	DesiredJob   string `json:"desired_job" validate:"required"`
	ResumeText   string `json:"resume_text,omitempty"`
	Limit        int    `json:"limit"`
}

// PreviewRequest fetches expanded detail for one job. The session token is
// optional; with it the service can compute skill gaps against the session's
// resume.
type PreviewRequest struct {
	JobID        string `json:"job_id" validate:"required"`
	SessionToken string `json:"session_token,omitempty"`
	ResumeText   string `json:"resume_text,omitempty"`
}

// SelectRequest records the session's chosen job.
type SelectRequest struct {
	JobID        string `json:"job_id" validate:"required"`
	SessionToken string `json:"session_token"`
}

// GeneratePathwayRequest asks the service to generate a learning pathway for
// a selected job. Requires an authenticated bearer token, not the session
// token.
type GeneratePathwayRequest struct {
	JobID          string         `json:"job_id" validate:"required"`
	DesiredGoals   string         `json:"desired_goals,omitempty"`
	CourseMode     CourseMode     `json:"course_mode" validate:"required,oneof=parallel sequential"`
	GenerationMode GenerationMode `json:"generation_mode" validate:"required,oneof=topic lesson"`
}

// Validate rejects an explore request with an empty desired job before any
// network call, using the same error shape as remote failures.
func (r *ExploreRequest) Validate() *OnboardingError {
	if r.DesiredJob == "" {
		return NewOnboardingError(CodeMissingGoals, "desired job title is required to explore jobs")
	}
	return nil
}

// Validate rejects a preview request with no job identifier before any
// network call.
func (r *PreviewRequest) Validate() *OnboardingError {
	if r.JobID == "" {
		return NewOnboardingError(CodeMissingJob, "a job id is required to preview a job")
	}
	return nil
}

// Validate checks the pathway request locally: the job id must be present and
// both modes must be one of their allowed values.
func (r *GeneratePathwayRequest) Validate() *OnboardingError {
	if r.JobID == "" {
		return NewOnboardingError(CodeMissingJob, "a job id is required to generate a pathway")
	}
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return NewOnboardingError(CodeValidation, err.Error())
	}
	return nil
}

// Validate checks the start request using the validator.
func (r *StartRequest) Validate() *OnboardingError {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return NewOnboardingError(CodeMissingGoals, "desired job title is required to start onboarding")
	}
	return nil
}
