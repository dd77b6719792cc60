package boj

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// VerdictStatus is one reading of the status ajax endpoint.
type VerdictStatus struct {
	SolutionID uint32
	Verdict    Verdict
	Label      string
	// Color is the judge's CSS color for the label, passed through as is.
	Color string
	Usage *ResourceUsage
}

type ajaxResponse struct {
	SolutionID  json.RawMessage `json:"solution_id"`
	Time        json.RawMessage `json:"time"`
	Memory      json.RawMessage `json:"memory"`
	ResultColor string          `json:"result_color"`
	ResultName  string          `json:"result_name"`
}

// FetchVerdict reads the current verdict of one solution. It performs a
// single request; polling is left to the caller.
func (c *Client) FetchVerdict(ctx context.Context, solutionID uint32) (VerdictStatus, error) {
	form := url.Values{"solution_id": {strconv.FormatUint(uint64(solutionID), 10)}}
	header := http.Header{
		"X-Requested-With": {"XMLHttpRequest"},
		"Accept":           {"application/json"},
	}
	body, err := c.session.FetchBody(ctx, http.MethodPost, "/status/ajax", form, header)
	if err != nil {
		return VerdictStatus{}, fmt.Errorf("failed to fetch verdict of solution %d: %w", solutionID, err)
	}
	return decodeVerdict(body)
}

func decodeVerdict(body []byte) (VerdictStatus, error) {
	var resp ajaxResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return VerdictStatus{}, &DecodeError{Err: err}
	}

	id, ok, err := coerceUint(resp.SolutionID)
	if err != nil {
		return VerdictStatus{}, &DecodeError{Field: "solution_id", Err: err}
	}
	if !ok {
		return VerdictStatus{}, &DecodeError{Field: "solution_id", Err: errors.New("missing")}
	}

	status := VerdictStatus{
		SolutionID: id,
		Verdict:    ParseVerdict(resp.ResultName),
		Label:      resp.ResultName,
		Color:      resp.ResultColor,
	}

	tm, hasTime, err := coerceUint(resp.Time)
	if err != nil {
		return VerdictStatus{}, &DecodeError{Field: "time", Err: err}
	}
	mem, hasMem, err := coerceUint(resp.Memory)
	if err != nil {
		return VerdictStatus{}, &DecodeError{Field: "memory", Err: err}
	}
	if hasTime && hasMem {
		status.Usage = &ResourceUsage{Time: tm, Memory: mem}
	}
	return status, nil
}

// coerceUint accepts a JSON number or a string holding one. Absent, null and
// empty string values report ok == false.
func coerceUint(raw json.RawMessage) (n uint32, ok bool, err error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false, nil
	}

	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, false, err
		}
		if text == "" {
			return 0, false, nil
		}
	}

	v, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, false, err
	}
	return uint32(v), true, nil
}
