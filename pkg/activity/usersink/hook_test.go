package usersink_test

import (
	"context"
	"testing"
	"time"

	"github.com/goliatone/go-presets/pkg/activity"
	"github.com/goliatone/go-presets/pkg/activity/usersink"
	usertypes "github.com/goliatone/go-users/pkg/types"
	"github.com/google/uuid"
)

type recordingSink struct {
	records []usertypes.ActivityRecord
	err     error
}

func (s *recordingSink) Log(_ context.Context, record usertypes.ActivityRecord) error {
	s.records = append(s.records, record)
	return s.err
}

func TestHookNotifyMapsEvent(t *testing.T) {
	sink := &recordingSink{}
	hook := usersink.Hook{Sink: sink}

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	actorID := uuid.New()
	userID := uuid.New()
	tenantID := uuid.New()

	event := activity.Event{
		Verb:       "preset.saved",
		ActorID:    actorID.String(),
		UserID:     userID.String(),
		TenantID:   tenantID.String(),
		ObjectType: "preset",
		ObjectID:   "quality",
		Preset:     "quality",
		File:       "/presets/quality.json",
		SnapshotID: "snap-1",
		Channel:    "presets",
		Recipients: []string{"ops@example.com"},
		Metadata: map[string]any{
			"path": "Group/Threshold",
		},
		OccurredAt: now,
	}

	if err := hook.Notify(context.Background(), event); err != nil {
		t.Fatalf("notify: %v", err)
	}

	if len(sink.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(sink.records))
	}
	record := sink.records[0]
	if record.ActorID != actorID {
		t.Fatalf("expected actor %s got %s", actorID, record.ActorID)
	}
	if record.UserID != userID {
		t.Fatalf("expected user %s got %s", userID, record.UserID)
	}
	if record.TenantID != tenantID {
		t.Fatalf("expected tenant %s got %s", tenantID, record.TenantID)
	}
	if record.Verb != "preset.saved" || record.ObjectType != "preset" || record.ObjectID != "quality" {
		t.Fatalf("unexpected record payload: %+v", record)
	}
	if record.Channel != "presets" {
		t.Fatalf("expected channel presets got %q", record.Channel)
	}
	if record.OccurredAt != now {
		t.Fatalf("expected occurred_at %v got %v", now, record.OccurredAt)
	}
	if record.Data["preset"] != "quality" {
		t.Fatalf("expected preset metadata got %v", record.Data["preset"])
	}
	if record.Data["file"] != "/presets/quality.json" {
		t.Fatalf("expected file metadata got %v", record.Data["file"])
	}
	if record.Data["snapshot_id"] != "snap-1" {
		t.Fatalf("expected snapshot metadata got %v", record.Data["snapshot_id"])
	}
	if record.Data["path"] != "Group/Threshold" {
		t.Fatalf("expected metadata passthrough got %v", record.Data["path"])
	}
	recipients, ok := record.Data["recipients"].([]string)
	if !ok || len(recipients) != 1 || recipients[0] != "ops@example.com" {
		t.Fatalf("expected recipients metadata got %v", record.Data["recipients"])
	}
}

func TestHookNotifySkipsMissingVerb(t *testing.T) {
	sink := &recordingSink{}
	hook := usersink.Hook{Sink: sink}

	_ = hook.Notify(context.Background(), activity.Event{})

	if len(sink.records) != 0 {
		t.Fatalf("expected no records for empty event, got %d", len(sink.records))
	}
}

func TestHookNotifyTreatsBadUUIDsAsNil(t *testing.T) {
	sink := &recordingSink{}
	hook := usersink.Hook{Sink: sink}

	err := hook.Notify(context.Background(), activity.Event{
		Verb:       "preset.applied",
		ActorID:    "not-a-uuid",
		ObjectType: "preset",
		ObjectID:   "p1",
	})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}
	if sink.records[0].ActorID != uuid.Nil {
		t.Fatalf("expected malformed actor id mapped to uuid.Nil, got %s", sink.records[0].ActorID)
	}
}

func TestHookNotifyDefaultsTimestamp(t *testing.T) {
	sink := &recordingSink{}
	hook := usersink.Hook{Sink: sink}

	err := hook.Notify(context.Background(), activity.Event{
		Verb:       "preset.saved",
		ObjectType: "preset",
		ObjectID:   "p1",
	})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}
	if len(sink.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(sink.records))
	}
	if sink.records[0].OccurredAt.IsZero() {
		t.Fatalf("expected occurred_at to be defaulted")
	}
}
