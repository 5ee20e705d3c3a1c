package queue

import (
    "encoding/json"
    "os"
    "path/filepath"
    "strings"
    "testing"
    "time"

    "github.com/iliyamo/ice-cream-parlor/internal/model"
)

func TestNewFlavorCreatedEvent(t *testing.T) {
    desc := "Classic vanilla"
    f := &model.Flavor{ID: 4, Name: "Vanilla", Description: &desc, CreatedAt: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)}
    ev := NewFlavorCreatedEvent(f, time.Date(2026, 10, 19, 9, 0, 1, 0, time.UTC))
    if ev.FlavorID != 4 || ev.Name != "Vanilla" || *ev.Description != desc {
        t.Fatalf("unexpected event: %+v", ev)
    }
    if ev.CreatedAt != "2026-10-19T09:00:00Z" || ev.PublishedAt != "2026-10-19T09:00:01Z" {
        t.Fatalf("unexpected timestamps: %s %s", ev.CreatedAt, ev.PublishedAt)
    }
}

func TestFormatLine(t *testing.T) {
    ev := FlavorCreatedEvent{FlavorID: 2, Name: "Mint", CreatedAt: "c", PublishedAt: "p"}
    want := `[p] Flavor created | flavor_id=2 | name="Mint" | description=- | created_at=c` + "\n"
    if got := formatLine(ev); got != want {
        t.Fatalf("got %q, want %q", got, want)
    }
}

func TestHandleMessageAppends(t *testing.T) {
    dir := filepath.Join(t.TempDir(), "logs")
    for _, name := range []string{"Vanilla", "Mint"} {
        body, _ := json.Marshal(FlavorCreatedEvent{FlavorID: 1, Name: name})
        if err := handleMessage(dir, body); err != nil {
            t.Fatalf("handle %s: %v", name, err)
        }
    }
    raw, err := os.ReadFile(filepath.Join(dir, LogFile))
    if err != nil {
        t.Fatalf("read log: %v", err)
    }
    lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
    if len(lines) != 2 || !strings.Contains(lines[1], `name="Mint"`) {
        t.Fatalf("unexpected log contents:\n%s", raw)
    }
}

func TestHandleMessageRejectsGarbage(t *testing.T) {
    dir := t.TempDir()
    if err := handleMessage(dir, []byte("not json")); err == nil {
        t.Fatal("expected unmarshal error")
    }
    if err := handleMessage(dir, []byte(`{"flavor_id":0}`)); err == nil {
        t.Fatal("expected validation error")
    }
}
