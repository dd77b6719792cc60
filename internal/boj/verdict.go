package boj

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Verdict is the judge's classification of a solution. Other covers both
// "still grading" and labels this package does not know; use IsPendingLabel
// on the raw label to tell them apart.
type Verdict int

const (
	Other Verdict = iota
	Accepted
	WrongFormat
	Wrong
	Timeout
	OutOfMemory
	TooMuchOutput
	RuntimeError
	CompileError
)

var verdictLabels = map[string]Verdict{
	"맞았습니다!!":        Accepted,
	"출력 형식이 잘못되었습니다": WrongFormat,
	"틀렸습니다":          Wrong,
	"시간 초과":          Timeout,
	"메모리 초과":         OutOfMemory,
	"출력 초과":          TooMuchOutput,
	"런타임 에러":         RuntimeError,
	"컴파일 에러":         CompileError,
}

var verdictNames = map[Verdict]string{
	Other:         "Other",
	Accepted:      "Accepted",
	WrongFormat:   "WrongFormat",
	Wrong:         "Wrong",
	Timeout:       "Timeout",
	OutOfMemory:   "OutOfMemory",
	TooMuchOutput: "TooMuchOutput",
	RuntimeError:  "RuntimeError",
	CompileError:  "CompileError",
}

var terminalVerdicts = mapset.NewSet(
	Accepted, WrongFormat, Wrong, Timeout, OutOfMemory, TooMuchOutput, RuntimeError, CompileError,
)

// in-progress labels shown by the status page and the ajax endpoint
var pendingLabels = mapset.NewSet(
	"기다리는 중",
	"재채점을 기다리는 중",
	"채점 준비 중",
)

const judgingLabelPrefix = "채점 중"

// ParseVerdict maps a judge label to a Verdict. Only exact labels match;
// everything else is Other.
func ParseVerdict(label string) Verdict {
	if v, ok := verdictLabels[label]; ok {
		return v
	}
	return Other
}

// Label returns the judge's text for a terminal verdict and "" for Other.
func (v Verdict) Label() string {
	for label, verdict := range verdictLabels {
		if verdict == v {
			return label
		}
	}
	return ""
}

func (v Verdict) String() string {
	if name, ok := verdictNames[v]; ok {
		return name
	}
	return "Other"
}

func (v Verdict) IsTerminal() bool {
	return terminalVerdicts.Contains(v)
}

// IsPendingLabel reports whether label is one the judge shows while a
// solution waits in the queue or is being graded. An empty label counts as
// pending.
func IsPendingLabel(label string) bool {
	label = strings.TrimSpace(label)
	if label == "" || pendingLabels.Contains(label) {
		return true
	}
	return strings.HasPrefix(label, judgingLabelPrefix)
}
