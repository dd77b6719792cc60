package boj

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ResourceUsage is what grading consumed: time in ms and memory in KB.
type ResourceUsage struct {
	Time   uint32 `json:"time"`
	Memory uint32 `json:"memory"`
}

// Solution is one row of the status page.
type Solution struct {
	ID        uint32
	User      string
	ProblemID ProblemID
	Verdict   Verdict
	// Label is the raw verdict text as rendered by the judge.
	Label    string
	Usage    *ResourceUsage
	Language string
}

// StatusFilter narrows the status page. Zero fields are not sent.
type StatusFilter struct {
	ProblemID ProblemID
	UserID    string
}

func (f StatusFilter) query() url.Values {
	q := url.Values{}
	if f.ProblemID != 0 {
		q.Set("problem_id", f.ProblemID.String())
	}
	if f.UserID != "" {
		q.Set("user_id", f.UserID)
	}
	return q
}

const (
	solutionRowSelector = `tr[id^="solution-"]`
	statusPage          = "status"
)

// column order on the status table
const (
	colID = iota
	colUser
	colProblem
	colResult
	colMemory
	colTime
	colLanguage
)

// ListSolutions returns the status page rows in the order the judge renders
// them, newest first. No matching rows is not an error.
func (c *Client) ListSolutions(ctx context.Context, filter StatusFilter) ([]Solution, error) {
	doc, err := c.session.Fetch(ctx, http.MethodGet, "/status", filter.query())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch status page: %w", err)
	}
	return parseSolutions(doc)
}

func parseSolutions(doc *goquery.Document) ([]Solution, error) {
	var (
		solutions []Solution
		parseErr  error
	)
	doc.Find(solutionRowSelector).EachWithBreak(func(i int, row *goquery.Selection) bool {
		sol, err := parseSolutionRow(row)
		if err != nil {
			parseErr = err
			return false
		}
		solutions = append(solutions, sol)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return solutions, nil
}

func parseSolutionRow(row *goquery.Selection) (Solution, error) {
	rowID, _ := row.Attr("id")
	cells := row.Find("td").Map(func(_ int, td *goquery.Selection) string {
		return strings.TrimSpace(td.Text())
	})
	if len(cells) <= colResult {
		return Solution{}, unparseable(statusPage, solutionRowSelector,
			fmt.Errorf("row %s has %d cells, want at least %d", rowID, len(cells), colResult+1))
	}

	id, err := strconv.ParseUint(cells[colID], 10, 32)
	if err != nil {
		return Solution{}, unparseable(statusPage, "#"+rowID+" td:nth-child(1)", err)
	}
	problem, err := strconv.ParseUint(cells[colProblem], 10, 32)
	if err != nil {
		return Solution{}, unparseable(statusPage, "#"+rowID+" td:nth-child(3)", err)
	}

	sol := Solution{
		ID:        uint32(id),
		User:      cells[colUser],
		ProblemID: ProblemID(problem),
		Label:     cells[colResult],
		Verdict:   ParseVerdict(cells[colResult]),
	}
	if len(cells) > colTime {
		mem, memOk := leadingUint(cells[colMemory])
		tm, tmOk := leadingUint(cells[colTime])
		if memOk && tmOk {
			sol.Usage = &ResourceUsage{Time: tm, Memory: mem}
		}
	}
	if len(cells) > colLanguage {
		sol.Language = cells[colLanguage]
	}
	return sol, nil
}

// leadingUint reads the digits a cell starts with, so "2020KB" gives 2020.
func leadingUint(s string) (uint32, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.ParseUint(s[:end], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}
