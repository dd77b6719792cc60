package boj

import "fmt"

// Visibility controls who may read the submitted source after grading.
type Visibility int

const (
	Open Visibility = iota
	Close
	OnlyAccepted
)

func (v Visibility) String() string {
	switch v {
	case Open:
		return "open"
	case Close:
		return "close"
	case OnlyAccepted:
		return "onlyaccepted"
	}
	return fmt.Sprintf("Visibility(%d)", int(v))
}

func ParseVisibility(s string) (Visibility, error) {
	switch s {
	case "open", "":
		return Open, nil
	case "close":
		return Close, nil
	case "onlyaccepted":
		return OnlyAccepted, nil
	}
	return Open, fmt.Errorf("unknown code visibility %q", s)
}
