package bindings

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"anthropic-dashboard/internal/domain"
)

func raw(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func TestNewSession_Defaults(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	s := NewSession(now)

	if s.ID == "" {
		t.Error("expected a session ID")
	}
	in := s.Inputs()
	if in.Granularity != domain.GranularityDay {
		t.Errorf("expected daily default, got %q", in.Granularity)
	}
	if in.WorkspaceID != domain.FilterAll || in.APIKeyID != domain.FilterAll || in.Model != domain.FilterAll {
		t.Errorf("expected all filters open, got %+v", in)
	}
	if in.DateEnd.Sub(in.DateStart) < 7*24*time.Hour {
		t.Errorf("expected a 7-day default window, got %v to %v", in.DateStart, in.DateEnd)
	}
}

func TestApply_Dates(t *testing.T) {
	s := NewSession(time.Now())

	if err := s.Apply(InputDateStart, raw(t, "2025-03-01")); err != nil {
		t.Fatalf("apply date_start: %v", err)
	}
	want := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	if !s.Inputs().DateStart.Equal(want) {
		t.Errorf("expected %v, got %v", want, s.Inputs().DateStart)
	}

	// A bare end date means end of that day
	if err := s.Apply(InputDateEnd, raw(t, "2025-03-07")); err != nil {
		t.Fatalf("apply date_end: %v", err)
	}
	wantEnd := time.Date(2025, 3, 7, 23, 59, 59, 0, time.UTC)
	if !s.Inputs().DateEnd.Equal(wantEnd) {
		t.Errorf("expected %v, got %v", wantEnd, s.Inputs().DateEnd)
	}

	// RFC 3339 timestamps pass through
	if err := s.Apply(InputDateEnd, raw(t, "2025-03-07T12:00:00Z")); err != nil {
		t.Fatalf("apply rfc3339 date_end: %v", err)
	}
	if s.Inputs().DateEnd.Hour() != 12 {
		t.Errorf("expected 12:00 end, got %v", s.Inputs().DateEnd)
	}

	if err := s.Apply(InputDateStart, raw(t, "bogus")); err == nil {
		t.Error("expected error for unparseable date")
	}
}

func TestApply_Granularity(t *testing.T) {
	s := NewSession(time.Now())

	if err := s.Apply(InputGranularity, raw(t, "1h")); err != nil {
		t.Fatalf("apply granularity: %v", err)
	}
	if s.Inputs().Granularity != domain.GranularityHour {
		t.Errorf("expected 1h, got %q", s.Inputs().Granularity)
	}

	if err := s.Apply(InputGranularity, raw(t, "2w")); err == nil {
		t.Error("expected error for unsupported granularity")
	}
	if s.Inputs().Granularity != domain.GranularityHour {
		t.Error("rejected value must not change state")
	}
}

func TestApply_WorkspaceResetsAPIKey(t *testing.T) {
	s := NewSession(time.Now())

	if err := s.Apply(InputAPIKeyID, raw(t, "key_1")); err != nil {
		t.Fatalf("apply api key: %v", err)
	}
	if err := s.Apply(InputWorkspaceID, raw(t, "ws_2")); err != nil {
		t.Fatalf("apply workspace: %v", err)
	}

	in := s.Inputs()
	if in.WorkspaceID != "ws_2" {
		t.Errorf("expected ws_2, got %q", in.WorkspaceID)
	}
	if in.APIKeyID != domain.FilterAll {
		t.Errorf("workspace change must reset the key filter, got %q", in.APIKeyID)
	}
}

func TestApply_DemoModeAndRefresh(t *testing.T) {
	s := NewSession(time.Now())

	if err := s.Apply(InputDemoMode, raw(t, true)); err != nil {
		t.Fatalf("apply demo_mode: %v", err)
	}
	if !s.Inputs().DemoMode {
		t.Error("expected demo mode on")
	}

	before := s.Inputs()
	if err := s.Apply(InputRefresh, raw(t, true)); err != nil {
		t.Fatalf("apply refresh: %v", err)
	}
	if s.Inputs() != before {
		t.Error("refresh must not change inputs")
	}
}

func TestApply_EmptyFilterMeansAll(t *testing.T) {
	s := NewSession(time.Now())

	if err := s.Apply(InputModel, raw(t, "")); err != nil {
		t.Fatalf("apply model: %v", err)
	}
	if s.Inputs().Model != domain.FilterAll {
		t.Errorf("expected all, got %q", s.Inputs().Model)
	}
}

func TestApply_UnknownInput(t *testing.T) {
	s := NewSession(time.Now())

	err := s.Apply("theme", raw(t, "dark"))
	if !errors.Is(err, ErrUnknownInput) {
		t.Errorf("expected ErrUnknownInput, got %v", err)
	}
}
