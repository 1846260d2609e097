package onboarding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/pathway-onboarding/internal/types"
)

// newTestClient wires a client to an httptest server and counts requests so
// precondition tests can assert zero network calls.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *int) {
	t.Helper()
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(server.Close)
	return NewClient(server.URL, nil), &calls
}

func success(t *testing.T, w http.ResponseWriter, data any) {
	t.Helper()
	payload, err := json.Marshal(data)
	require.NoError(t, err)
	_, _ = w.Write([]byte(`{"success":true,"data":` + string(payload) + `}`))
}

func TestExploreJobs_MissingGoals(t *testing.T) {
	client, calls := newTestClient(t, http.NotFoundHandler())

	_, err := client.ExploreJobs(context.Background(), types.ExploreRequest{
		SessionToken: "tok123",
		DesiredJob:   "",
	})

	var oe *types.OnboardingError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, types.CodeMissingGoals, oe.Code)
	assert.Equal(t, 0, *calls, "precondition failures must not reach the network")
}

func TestPreviewJob_MissingJob(t *testing.T) {
	client, calls := newTestClient(t, http.NotFoundHandler())

	_, err := client.PreviewJob(context.Background(), types.PreviewRequest{})

	var oe *types.OnboardingError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, types.CodeMissingJob, oe.Code)
	assert.Equal(t, 0, *calls)
}

func TestGeneratePathway_InvalidMode(t *testing.T) {
	client, calls := newTestClient(t, http.NotFoundHandler())

	_, err := client.GeneratePathway(context.Background(), "bearer", types.GeneratePathwayRequest{
		JobID:          "job-1",
		CourseMode:     "diagonal",
		GenerationMode: types.GenerationModeTopic,
	})

	var oe *types.OnboardingError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, types.CodeValidation, oe.Code)
	assert.Equal(t, 0, *calls)
}

func TestStart_Multipart(t *testing.T) {
	resumePath := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte("5 years in networking"), 0o600))

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/onboarding/start", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "SOC Analyst", r.FormValue("desired_job"))

		file, header, err := r.FormFile("resume")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, "resume.txt", header.Filename)

		success(t, w, types.StartResult{SessionToken: "tok123"})
	}))

	result, err := client.Start(context.Background(), types.StartRequest{
		DesiredJob: "SOC Analyst",
		ResumePath: resumePath,
	})
	require.NoError(t, err)
	assert.Equal(t, "tok123", result.SessionToken)
}

func TestStart_MissingDesiredJob(t *testing.T) {
	client, calls := newTestClient(t, http.NotFoundHandler())

	_, err := client.Start(context.Background(), types.StartRequest{})

	var oe *types.OnboardingError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, types.CodeMissingGoals, oe.Code)
	assert.Equal(t, 0, *calls)
}

func TestExploreJobs_Success(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/onboarding/explore-jobs", r.URL.Path)
		assert.Equal(t, "tok123", r.Header.Get("X-Session-Token"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "tok123", body["session_token"])
		assert.Equal(t, "SOC Analyst", body["desired_job"])
		assert.Equal(t, float64(10), body["limit"], "limit should default to 10")

		success(t, w, types.ExploreResult{
			Jobs: []types.JobExploreItem{
				{ID: "j1", Title: "SOC Analyst I"},
				{ID: "j2", Title: "Security Engineer"},
			},
			TotalJobs: 2,
		})
	}))

	result, err := client.ExploreJobs(context.Background(), types.ExploreRequest{
		SessionToken: "tok123",
		DesiredJob:   "SOC Analyst",
	})
	require.NoError(t, err)
	require.Len(t, result.Jobs, 2)
	assert.Equal(t, "j1", result.Jobs[0].ID, "rank order must be preserved")
	assert.Equal(t, "j2", result.Jobs[1].ID)
	assert.Equal(t, 2, result.TotalJobs)
}

func TestPreviewJob_Success(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/onboarding/job-preview", r.URL.Path)
		success(t, w, types.JobPreview{
			JobID: "j1",
			Title: "SOC Analyst I",
			SkillGaps: []types.SkillGap{
				{Skill: "SIEM", RequiredLevel: "intermediate"},
			},
		})
	}))

	preview, err := client.PreviewJob(context.Background(), types.PreviewRequest{
		JobID:        "j1",
		SessionToken: "tok123",
	})
	require.NoError(t, err)
	assert.Equal(t, "j1", preview.JobID)
	require.Len(t, preview.SkillGaps, 1)
	assert.Equal(t, "SIEM", preview.SkillGaps[0].Skill)
}

func TestSelectJob_Success(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/onboarding/select-job", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "j1", body["job_id"])
		assert.Equal(t, "tok123", body["session_token"])

		success(t, w, types.SelectResult{JobID: "j1", Selected: true})
	}))

	result, err := client.SelectJob(context.Background(), "tok123", "j1")
	require.NoError(t, err)
	assert.True(t, result.Selected)
}

func TestGeneratePathway_Success(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/onboarding/generate-pathway", r.URL.Path)
		assert.Equal(t, "Bearer bearer456", r.Header.Get("Authorization"))
		_, hasSession := r.Header["X-Session-Token"]
		assert.False(t, hasSession, "pathway generation uses only the bearer token")

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "parallel", body["course_mode"])
		assert.Equal(t, "topic", body["generation_mode"])

		success(t, w, types.PathwaySummary{PathwayID: "pw456", JobID: "j1", WeekCount: 8})
	}))

	summary, err := client.GeneratePathway(context.Background(), "bearer456", types.GeneratePathwayRequest{
		JobID:          "j1",
		CourseMode:     types.CourseModeParallel,
		GenerationMode: types.GenerationModeTopic,
	})
	require.NoError(t, err)
	assert.Equal(t, "pw456", summary.PathwayID)
	assert.Equal(t, 8, summary.WeekCount)
}

func TestGetPathway_IncludeWeeks(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/onboarding/pathway/pw456", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("include_weeks"))
		assert.Equal(t, "Bearer bearer456", r.Header.Get("Authorization"))

		success(t, w, types.Pathway{
			ID:             "pw456",
			JobID:          "j1",
			CourseMode:     types.CourseModeParallel,
			GenerationMode: types.GenerationModeTopic,
			Weeks: []types.PathwayWeek{
				{Number: 1, Topic: "Networking fundamentals"},
				{Number: 2, Topic: "SIEM basics"},
			},
		})
	}))

	pathway, err := client.GetPathway(context.Background(), "bearer456", "pw456", true)
	require.NoError(t, err)
	require.Len(t, pathway.Weeks, 2)
	assert.Equal(t, 1, pathway.Weeks[0].Number)
}

func TestGetPathway_WithoutWeeks(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("include_weeks"))
		success(t, w, types.Pathway{ID: "pw456", JobID: "j1"})
	}))

	pathway, err := client.GetPathway(context.Background(), "bearer456", "pw456", false)
	require.NoError(t, err)
	assert.Empty(t, pathway.Weeks)
}

func TestExploreJobs_RemoteError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"success":false,"error":{"code":"EXPLORE_FAILED","message":"matching engine unavailable"}}`))
	}))

	_, err := client.ExploreJobs(context.Background(), types.ExploreRequest{
		SessionToken: "tok123",
		DesiredJob:   "SOC Analyst",
	})

	var oe *types.OnboardingError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, "EXPLORE_FAILED", oe.Code)
	assert.Equal(t, "matching engine unavailable", oe.Message)
}

// TestOnboardingFlow_EndToEnd walks the full protocol against a fake service:
// start with a resume, explore, preview the top job, select it, then generate
// and fetch the pathway with the authenticated identity.
func TestOnboardingFlow_EndToEnd(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /onboarding/start", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "SOC Analyst", r.FormValue("desired_job"))
		assert.Equal(t, "5 years in networking", r.FormValue("resume_text"))
		success(t, w, types.StartResult{SessionToken: "tok123"})
	})
	mux.HandleFunc("POST /onboarding/explore-jobs", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tok123", r.Header.Get("X-Session-Token"))
		success(t, w, types.ExploreResult{
			Jobs: []types.JobExploreItem{
				{ID: "j1", Title: "SOC Analyst I", MatchScore: 0.91},
				{ID: "j2", Title: "SOC Analyst II", MatchScore: 0.74},
				{ID: "j3", Title: "Security Engineer", MatchScore: 0.66},
				{ID: "j4", Title: "Incident Responder", MatchScore: 0.58},
				{ID: "j5", Title: "Threat Analyst", MatchScore: 0.52},
			},
			TotalJobs: 5,
		})
	})
	mux.HandleFunc("POST /onboarding/job-preview", func(w http.ResponseWriter, r *http.Request) {
		success(t, w, types.JobPreview{
			JobID:     "j1",
			Title:     "SOC Analyst I",
			SkillGaps: []types.SkillGap{{Skill: "SIEM"}, {Skill: "Threat hunting"}},
		})
	})
	mux.HandleFunc("POST /onboarding/select-job", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "j1", body["job_id"])
		assert.Equal(t, "tok123", body["session_token"])
		success(t, w, types.SelectResult{JobID: "j1", Selected: true})
	})
	mux.HandleFunc("POST /onboarding/generate-pathway", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer bearer456", r.Header.Get("Authorization"))
		success(t, w, types.PathwaySummary{PathwayID: "pw456", JobID: "j1", WeekCount: 2})
	})
	mux.HandleFunc("GET /onboarding/pathway/pw456", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer bearer456", r.Header.Get("Authorization"))
		assert.Equal(t, "true", r.URL.Query().Get("include_weeks"))
		success(t, w, types.Pathway{
			ID:             "pw456",
			JobID:          "j1",
			CourseMode:     types.CourseModeParallel,
			GenerationMode: types.GenerationModeTopic,
			Weeks: []types.PathwayWeek{
				{Number: 1, Topic: "Networking fundamentals"},
				{Number: 2, Topic: "SIEM basics"},
			},
		})
	})

	client, _ := newTestClient(t, mux)
	ctx := context.Background()

	started, err := client.Start(ctx, types.StartRequest{
		DesiredJob: "SOC Analyst",
		ResumeText: "5 years in networking",
	})
	require.NoError(t, err)
	require.Equal(t, "tok123", started.SessionToken)

	explored, err := client.ExploreJobs(ctx, types.ExploreRequest{
		SessionToken: started.SessionToken,
		DesiredJob:   "SOC Analyst",
		Limit:        5,
	})
	require.NoError(t, err)
	require.Len(t, explored.Jobs, 5)

	preview, err := client.PreviewJob(ctx, types.PreviewRequest{
		JobID:        explored.Jobs[0].ID,
		SessionToken: started.SessionToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, preview.SkillGaps)

	selected, err := client.SelectJob(ctx, started.SessionToken, explored.Jobs[0].ID)
	require.NoError(t, err)
	assert.True(t, selected.Selected)

	summary, err := client.GeneratePathway(ctx, "bearer456", types.GeneratePathwayRequest{
		JobID:          explored.Jobs[0].ID,
		CourseMode:     types.CourseModeParallel,
		GenerationMode: types.GenerationModeTopic,
	})
	require.NoError(t, err)
	require.Equal(t, "pw456", summary.PathwayID)

	pathway, err := client.GetPathway(ctx, "bearer456", summary.PathwayID, true)
	require.NoError(t, err)
	require.Len(t, pathway.Weeks, 2)
	assert.Equal(t, "Networking fundamentals", pathway.Weeks[0].Topic)
}
