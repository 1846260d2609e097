package types

// CourseMode is the layout strategy for pathway content.
type CourseMode string

// GenerationMode is the granularity of generated pathway content.
type GenerationMode string

const (
	CourseModeParallel   CourseMode = "parallel"
	CourseModeSequential CourseMode = "sequential"

	GenerationModeTopic  GenerationMode = "topic"
	GenerationModeLesson GenerationMode = "lesson"
)

// PathwayWeek is one week of a generated learning plan. Lessons is populated
// only when the pathway was generated in lesson mode and week detail was
// requested on fetch.
type PathwayWeek struct {
	Number  int      `json:"number"`
	Topic   string   `json:"topic"`
	Lessons []string `json:"lessons,omitempty"`
}

// PathwaySummary is the response to pathway generation: the identifier plus
// enough detail to render a confirmation without a second fetch.
type PathwaySummary struct {
	PathwayID      string         `json:"pathway_id"`
	JobID          string         `json:"job_id"`
	CourseMode     CourseMode     `json:"course_mode"`
	GenerationMode GenerationMode `json:"generation_mode"`
	WeekCount      int            `json:"week_count"`
}

// Pathway is a generated learning plan for a selected job. Weeks are ordered;
// the slice is empty unless week detail was requested on fetch.
type Pathway struct {
	ID             string         `json:"id"`
	JobID          string         `json:"job_id"`
	Title          string         `json:"title,omitempty"`
	CourseMode     CourseMode     `json:"course_mode"`
	GenerationMode GenerationMode `json:"generation_mode"`
	Weeks          []PathwayWeek  `json:"weeks,omitempty"`
}
