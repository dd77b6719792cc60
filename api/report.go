package api

type RunStatus string

const (
	// Settled: a final verdict was observed.
	Settled RunStatus = "settled"
	// Submitted: the solution was located but grading was not awaited or
	// ended with a label the client does not know.
	Submitted RunStatus = "submitted"
	Failed    RunStatus = "failed"
)

// RunReport is the complete summary of one run.
type RunReport struct {
	RunUuid string    `json:"run_uuid"`
	Status  RunStatus `json:"status"`

	Username   string  `json:"username,omitempty"`
	ProblemID  uint32  `json:"problem_id,omitempty"`
	Language   string  `json:"language,omitempty"`
	SolutionID *uint32 `json:"solution_id,omitempty"`

	Verdict  string `json:"verdict,omitempty"`
	Label    string `json:"label,omitempty"`
	Usage    *Usage `json:"usage,omitempty"`
	Attempts int    `json:"attempts"`

	ErrorMessage *string `json:"error_message,omitempty"`

	StartTime   string `json:"start_time"`
	FinishTime  string `json:"finish_time"`
	TotalTimeMs int64  `json:"total_time_ms"`
}
