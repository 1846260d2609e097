// Package onboarding provides the typed protocol client for the onboarding
// flow: starting an anonymous session, exploring and previewing jobs,
// selecting a job, and generating and fetching a learning pathway.
//
// Operations up through job selection authenticate with the anonymous session
// token issued by Start. Pathway generation and retrieval require a bearer
// token from the authentication provider; the client never derives one
// credential from the other.
package onboarding

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jonathan/pathway-onboarding/internal/transport"
	"github.com/jonathan/pathway-onboarding/internal/types"
)

// Endpoints of the onboarding API. The client consumes this contract, it
// does not own it.
const (
	endpointStart           = "/onboarding/start"
	endpointExploreJobs     = "/onboarding/explore-jobs"
	endpointJobPreview      = "/onboarding/job-preview"
	endpointSelectJob       = "/onboarding/select-job"
	endpointGeneratePathway = "/onboarding/generate-pathway"
	endpointPathway         = "/onboarding/pathway/"
)

// Client implements the onboarding protocol over the transport layer.
type Client struct {
	t *transport.Client
}

// NewClient creates a protocol client for the given API base URL.
func NewClient(baseURL string, opts *transport.Options) *Client {
	return &Client{t: transport.NewClient(baseURL, opts)}
}

// Start begins an anonymous onboarding session. The request is a multipart
// form so an optional resume file can ride along with the desired job title
// and optional resume text.
func (c *Client) Start(ctx context.Context, req types.StartRequest) (*types.StartResult, error) {
	if verr := req.Validate(); verr != nil {
		return nil, verr
	}

	form := &transport.Form{Fields: map[string]string{"desired_job": req.DesiredJob}}
	if req.ResumeText != "" {
		form.Fields["resume_text"] = req.ResumeText
	}
	if req.ResumePath != "" {
		f, err := os.Open(req.ResumePath)
		if err != nil {
			return nil, types.WrapUnknown("failed to open resume file", err)
		}
		defer func() { _ = f.Close() }()
		form.Files = append(form.Files, transport.FormFile{
			Field:    "resume",
			Filename: filepath.Base(req.ResumePath),
			Content:  f,
		})
	}

	envelope, err := c.t.Send(ctx, endpointStart, transport.Request{
		Method: http.MethodPost,
		Form:   form,
	})
	if err != nil {
		return nil, err
	}

	var result types.StartResult
	if err := envelope.Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ExploreJobs fetches a ranked page of job candidates for the session.
// An empty desired job title is rejected locally with code MISSING_GOALS
// before any network call. A zero Limit defaults to DefaultExploreLimit.
func (c *Client) ExploreJobs(ctx context.Context, req types.ExploreRequest) (*types.ExploreResult, error) {
	if verr := req.Validate(); verr != nil {
		return nil, verr
	}
	if req.Limit <= 0 {
		req.Limit = types.DefaultExploreLimit
	}

	envelope, err := c.t.Send(ctx, endpointExploreJobs, transport.Request{
		Method:       http.MethodPost,
		JSON:         &req,
		SessionToken: req.SessionToken,
	})
	if err != nil {
		return nil, err
	}

	var result types.ExploreResult
	if err := envelope.Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PreviewJob fetches expanded detail and skill gaps for one job. An empty job
// id is rejected locally with code MISSING_JOB before any network call.
func (c *Client) PreviewJob(ctx context.Context, req types.PreviewRequest) (*types.JobPreview, error) {
	if verr := req.Validate(); verr != nil {
		return nil, verr
	}

	envelope, err := c.t.Send(ctx, endpointJobPreview, transport.Request{
		Method:       http.MethodPost,
		JSON:         &req,
		SessionToken: req.SessionToken,
	})
	if err != nil {
		return nil, err
	}

	var preview types.JobPreview
	if err := envelope.Decode(&preview); err != nil {
		return nil, err
	}
	return &preview, nil
}

// SelectJob records the session's chosen job.
func (c *Client) SelectJob(ctx context.Context, sessionToken, jobID string) (*types.SelectResult, error) {
	if jobID == "" {
		return nil, types.NewOnboardingError(types.CodeMissingJob, "a job id is required to select a job")
	}

	req := types.SelectRequest{JobID: jobID, SessionToken: sessionToken}
	envelope, err := c.t.Send(ctx, endpointSelectJob, transport.Request{
		Method:       http.MethodPost,
		JSON:         &req,
		SessionToken: sessionToken,
	})
	if err != nil {
		return nil, err
	}

	var result types.SelectResult
	if err := envelope.Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GeneratePathway asks the service to generate a learning pathway for the
// selected job. Requires the authenticated bearer token; the session token
// plays no part in this call.
func (c *Client) GeneratePathway(ctx context.Context, authToken string, req types.GeneratePathwayRequest) (*types.PathwaySummary, error) {
	if verr := req.Validate(); verr != nil {
		return nil, verr
	}

	envelope, err := c.t.Send(ctx, endpointGeneratePathway, transport.Request{
		Method:    http.MethodPost,
		JSON:      &req,
		AuthToken: authToken,
	})
	if err != nil {
		return nil, err
	}

	var summary types.PathwaySummary
	if err := envelope.Decode(&summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetPathway fetches a generated pathway by id. When includeWeeks is set the
// service expands per-week detail; otherwise Weeks is left empty.
func (c *Client) GetPathway(ctx context.Context, authToken, pathwayID string, includeWeeks bool) (*types.Pathway, error) {
	if pathwayID == "" {
		return nil, types.NewOnboardingError(types.CodeValidation, "a pathway id is required")
	}

	req := transport.Request{
		Method:    http.MethodGet,
		AuthToken: authToken,
	}
	if includeWeeks {
		req.Query = url.Values{"include_weeks": []string{strconv.FormatBool(true)}}
	}

	envelope, err := c.t.Send(ctx, endpointPathway+url.PathEscape(pathwayID), req)
	if err != nil {
		return nil, err
	}

	var pathway types.Pathway
	if err := envelope.Decode(&pathway); err != nil {
		return nil, err
	}
	return &pathway, nil
}
