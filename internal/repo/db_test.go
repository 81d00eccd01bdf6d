package repo

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/Maartz/huffman-encoding/internal/model"
)

// DATABASE_URL 있을 때만 실행
func TestPGRepoRoundTrip(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := Open(ctx, dsn)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer pool.Close()
	if err := Migrate(ctx, pool); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	r := NewArchiveRepoPG(pool)
	id := "test-" + time.Now().UTC().Format("20060102150405.000000000")
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM archives WHERE id = $1`, id)
	})

	want := &model.Archive{
		ID:              id,
		Name:            "pg.txt",
		OriginalSize:    120,
		CompressedSize:  40,
		DistinctSymbols: 7,
		Ratio:           40.0 / 120.0,
		CreatedAt:       time.Now().UTC().Truncate(time.Microsecond),
		Data:            []byte{0x5A, 0x00, 0x01},
	}
	if err := r.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := r.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Name != want.Name || got.OriginalSize != want.OriginalSize || got.CompressedSize != want.CompressedSize ||
		got.DistinctSymbols != want.DistinctSymbols || got.Ratio != want.Ratio || !got.CreatedAt.Equal(want.CreatedAt) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if !bytes.Equal(got.Data, want.Data) {
		t.Fatalf("data = % x, want % x", got.Data, want.Data)
	}

	list, err := r.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	found := false
	for _, a := range list {
		if a.ID == id {
			found = a.Name == want.Name && a.Data == nil
		}
	}
	if !found {
		t.Fatalf("archive %s missing from list or carries data", id)
	}

	if _, err := r.FindByID(ctx, id+"-missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
