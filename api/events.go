package api

import "time"

// MsgType is a message type for run progress events
type MsgType string

const (
	StartRunMsg        MsgType = "run_start"
	ResolveIdentityMsg MsgType = "identity_resolve"
	SubmitSolutionMsg  MsgType = "solution_submit"
	LocateSolutionMsg  MsgType = "solution_locate"
	UpdateVerdictMsg   MsgType = "verdict_update"
	FinishRunMsg       MsgType = "run_finish"
)

// Header is the common header for all run progress messages
type Header struct {
	RunUuid string  `json:"run_uuid"`
	MsgType MsgType `json:"msg_type"`
}

type Usage struct {
	TimeMs   uint32 `json:"time_ms"`
	MemoryKB uint32 `json:"memory_kb"`
}

// StartRun is sent before the first request of a run
type StartRun struct {
	Header
	ProblemID   uint32 `json:"problem_id"`
	Language    string `json:"language"`
	StartedTime string `json:"started_time"`
}

// ResolveIdentity carries the username the cookies belong to
type ResolveIdentity struct {
	Header
	Username string `json:"username"`
}

// SubmitSolution is sent once the judge accepted the submit form
type SubmitSolution struct {
	Header
	ProblemID uint32 `json:"problem_id"`
}

// LocateSolution carries the id the judge assigned to the submission
type LocateSolution struct {
	Header
	SolutionID uint32 `json:"solution_id"`
}

// UpdateVerdict is sent for every verdict reading
type UpdateVerdict struct {
	Header
	SolutionID uint32 `json:"solution_id"`
	State      string `json:"state"`
	Verdict    string `json:"verdict"`
	Label      string `json:"label"`
	Usage      *Usage `json:"usage,omitempty"`
	Attempt    int    `json:"attempt"`
}

// FinishRun closes a run, successfully or not
type FinishRun struct {
	Header
	SolutionID   *uint32 `json:"solution_id,omitempty"`
	Verdict      *string `json:"verdict,omitempty"`
	ErrorMessage *string `json:"error_message,omitempty"`
	FinishedTime string  `json:"finished_time"`
}

func NewHeader(runUuid string, msgType MsgType) Header {
	return Header{
		RunUuid: runUuid,
		MsgType: msgType,
	}
}

func NewStartRun(runUuid string, problemID uint32, language string) StartRun {
	return StartRun{
		Header:      NewHeader(runUuid, StartRunMsg),
		ProblemID:   problemID,
		Language:    language,
		StartedTime: time.Now().Format(time.RFC3339),
	}
}

func NewResolveIdentity(runUuid, username string) ResolveIdentity {
	return ResolveIdentity{
		Header:   NewHeader(runUuid, ResolveIdentityMsg),
		Username: username,
	}
}

func NewSubmitSolution(runUuid string, problemID uint32) SubmitSolution {
	return SubmitSolution{
		Header:    NewHeader(runUuid, SubmitSolutionMsg),
		ProblemID: problemID,
	}
}

func NewLocateSolution(runUuid string, solutionID uint32) LocateSolution {
	return LocateSolution{
		Header:     NewHeader(runUuid, LocateSolutionMsg),
		SolutionID: solutionID,
	}
}

func NewUpdateVerdict(runUuid string, solutionID uint32, state, verdict, label string, usage *Usage, attempt int) UpdateVerdict {
	return UpdateVerdict{
		Header:     NewHeader(runUuid, UpdateVerdictMsg),
		SolutionID: solutionID,
		State:      state,
		Verdict:    verdict,
		Label:      label,
		Usage:      usage,
		Attempt:    attempt,
	}
}

func NewFinishRun(runUuid string, solutionID *uint32, verdict *string, errorMessage *string) FinishRun {
	return FinishRun{
		Header:       NewHeader(runUuid, FinishRunMsg),
		SolutionID:   solutionID,
		Verdict:      verdict,
		ErrorMessage: errorMessage,
		FinishedTime: time.Now().Format(time.RFC3339),
	}
}
