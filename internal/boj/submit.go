package boj

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// SubmissionRequest is everything the submit form carries.
type SubmissionRequest struct {
	ProblemID         ProblemID
	Language          Language
	Visibility        Visibility
	Source            string
	CsrfKey           CsrfKey
	RecaptchaResponse string
}

func (r SubmissionRequest) form() url.Values {
	return url.Values{
		"recaptcha_response": {r.RecaptchaResponse},
		"problem_id":         {r.ProblemID.String()},
		"language":           {strconv.FormatUint(uint64(r.Language.Code()), 10)},
		"code_open":          {r.Visibility.String()},
		"source":             {r.Source},
		"csrf_key":           {string(r.CsrfKey)},
	}
}

// Submit posts the solution. A nil error only means the judge answered with
// a 2xx status: an expired session or stale token still gets an error page
// with status 200, so look the solution up with ListSolutions afterwards.
func (c *Client) Submit(ctx context.Context, req SubmissionRequest) error {
	resp, err := c.session.do(ctx, http.MethodPost, submitPath(req.ProblemID), req.form(), nil)
	if err != nil {
		return fmt.Errorf("failed to submit solution for problem %s: %w", req.ProblemID, err)
	}
	resp.Body.Close()
	return nil
}
