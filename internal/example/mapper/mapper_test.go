package mapper_test

import (
	"testing"
	"time"

	"oddly-ddd/internal/example"
	"oddly-ddd/internal/example/mapper"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestWriteEntityRoundTrip(t *testing.T) {
	m, err := mapper.RequestToModel(example.CreateInput{Name: "Widget", Description: "d", OwnerID: "u1"}, now)
	if err != nil {
		t.Fatalf("RequestToModel: %v", err)
	}
	_ = m.Deactivate(now.Add(time.Minute))

	back := mapper.WriteEntityToModel(mapper.ModelToWriteEntity(m))

	if back.ID() != m.ID() || back.Name() != m.Name() || back.Description() != m.Description() ||
		back.OwnerID() != m.OwnerID() || back.IsActive() != m.IsActive() {
		t.Errorf("round trip mismatch: %+v vs %+v", back, m)
	}
	if !back.CreatedAt().Equal(m.CreatedAt()) || !back.UpdatedAt().Equal(m.UpdatedAt()) {
		t.Errorf("timestamps changed: %v %v", back.CreatedAt(), back.UpdatedAt())
	}
}

func TestRequestToModel_Invalid(t *testing.T) {
	if _, err := mapper.RequestToModel(example.CreateInput{Name: "ab", OwnerID: "u1"}, now); err == nil {
		t.Error("expected validation error")
	}
}

func TestModelToResponse_UsesPlaceholderOwner(t *testing.T) {
	m, _ := mapper.RequestToModel(example.CreateInput{Name: "Widget", OwnerID: "u1"}, now)

	v := mapper.ModelToResponse(m, 1)
	if v.OwnerName != example.UnknownOwnerName {
		t.Errorf("expected placeholder owner name, got %q", v.OwnerName)
	}
	if v.DisplayName != "Widget (u1)" || v.StatusText != "Active" || v.Version != 1 {
		t.Errorf("unexpected computed fields %+v", v)
	}
}

func TestModelToReadEntity_ComputedFields(t *testing.T) {
	m, _ := mapper.RequestToModel(example.CreateInput{Name: "Widget", OwnerID: "u1"}, now)
	_ = m.Deactivate(now)

	e := mapper.ModelToReadEntity(m, 4, "Ada")
	if e.DisplayName != "Widget (Ada)" || e.StatusText != "Inactive" || e.Version != 4 {
		t.Errorf("unexpected read entity %+v", e)
	}
	if v := mapper.ReadEntityToResponse(e); v.DisplayName != e.DisplayName || v.OwnerName != "Ada" {
		t.Errorf("unexpected view %+v", v)
	}
}
