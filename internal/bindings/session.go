package bindings

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"anthropic-dashboard/internal/domain"
)

// Input binding names the frontend may write.
const (
	InputDateStart   = "date_start"
	InputDateEnd     = "date_end"
	InputGranularity = "filter_granularity"
	InputWorkspaceID = "filter_workspace_id"
	InputAPIKeyID    = "filter_api_key_id"
	InputModel       = "filter_model"
	InputDemoMode    = "demo_mode"
	InputRefresh     = "refresh"
)

// ErrUnknownInput is wrapped into the error returned for unrecognized
// input binding names.
var ErrUnknownInput = fmt.Errorf("unknown input binding")

// Session is the per-connection bindings state: the current value of every
// input. A session belongs to a single reader goroutine, so there is no
// locking here.
type Session struct {
	ID     string
	inputs domain.Inputs
}

// NewSession creates a session with default inputs (last 7 days, daily
// buckets, no filters).
func NewSession(now time.Time) *Session {
	return &Session{
		ID:     uuid.NewString(),
		inputs: domain.DefaultInputs(now),
	}
}

// Inputs returns the current input values.
func (s *Session) Inputs() domain.Inputs {
	return s.inputs
}

// Apply sets one named input from its raw JSON value. Every successful
// apply invalidates all outputs; the caller recomputes and pushes them.
// Applying InputRefresh changes nothing but still triggers recompute.
func (s *Session) Apply(name string, value json.RawMessage) error {
	switch name {
	case InputDateStart:
		t, err := parseDate(value)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		s.inputs.DateStart = t
	case InputDateEnd:
		t, err := parseDate(value)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		// A bare date means end of that day.
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
			t = t.Add(24*time.Hour - time.Second)
		}
		s.inputs.DateEnd = t
	case InputGranularity:
		var g string
		if err := json.Unmarshal(value, &g); err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		if !domain.ValidGranularity(g) {
			return fmt.Errorf("unsupported granularity %q", g)
		}
		s.inputs.Granularity = g
	case InputWorkspaceID:
		id, err := parseFilter(value)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		s.inputs.WorkspaceID = id
		// The key filter may reference a key outside the new workspace.
		s.inputs.APIKeyID = domain.FilterAll
	case InputAPIKeyID:
		id, err := parseFilter(value)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		s.inputs.APIKeyID = id
	case InputModel:
		id, err := parseFilter(value)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		s.inputs.Model = id
	case InputDemoMode:
		var on bool
		if err := json.Unmarshal(value, &on); err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		s.inputs.DemoMode = on
	case InputRefresh:
		// Recompute trigger only.
	default:
		return fmt.Errorf("%w: %q", ErrUnknownInput, name)
	}
	return nil
}

func parseDate(value json.RawMessage) (time.Time, error) {
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return time.Time{}, err
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func parseFilter(value json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", err
	}
	if s == "" {
		return domain.FilterAll, nil
	}
	return s, nil
}
