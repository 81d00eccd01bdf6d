package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Maartz/huffman-encoding/internal/model"
)

func TestInMemorySaveFind(t *testing.T) {
	ctx := context.Background()
	r := NewArchiveRepoInMemory()
	a := &model.Archive{ID: "a1", Name: "x.txt", Data: []byte{1, 2, 3}, CreatedAt: time.Now()}
	if err := r.Save(ctx, a); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := r.FindByID(ctx, "a1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Name != "x.txt" || len(got.Data) != 3 {
		t.Fatalf("unexpected archive %+v", got)
	}
	if _, err := r.FindByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInMemoryListOrdered(t *testing.T) {
	ctx := context.Background()
	r := NewArchiveRepoInMemory()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"c", "a", "b"} {
		_ = r.Save(ctx, &model.Archive{ID: id, CreatedAt: base.Add(time.Duration(2-i) * time.Minute)})
	}
	list, err := r.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"b", "a", "c"}
	for i, a := range list {
		if a.ID != want[i] {
			t.Fatalf("list[%d] = %s, want %s", i, a.ID, want[i])
		}
	}
}
