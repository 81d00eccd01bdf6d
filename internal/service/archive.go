package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Maartz/huffman-encoding/internal/model"
	"github.com/Maartz/huffman-encoding/internal/repo"
	"github.com/Maartz/huffman-encoding/pkg/huffman"
	"github.com/Maartz/huffman-encoding/pkg/logger"

	"github.com/google/uuid"
)

// ErrBadInput wraps every codec error caused by the caller's bytes.
var ErrBadInput = errors.New("bad input")

type ArchiveService struct {
	repo   repo.ArchiveRepo
	logger logger.Logger
	now    func() time.Time
}

func NewArchiveService(r repo.ArchiveRepo, l logger.Logger) *ArchiveService {
	return &ArchiveService{repo: r, logger: l, now: time.Now}
}

func (s *ArchiveService) Compress(ctx context.Context, name string, data []byte) (*model.Archive, error) {
	if name == "" {
		name = "unnamed"
	}
	out, st, err := huffman.CompressWithStats(data)
	if err != nil {
		return nil, classify(err)
	}
	a := &model.Archive{
		ID:              uuid.NewString(),
		Name:            name,
		OriginalSize:    st.InputBytes,
		CompressedSize:  st.OutputBytes,
		DistinctSymbols: st.DistinctSymbols,
		Ratio:           st.Ratio(),
		CreatedAt:       s.now().UTC(),
		Data:            out,
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return nil, err
	}
	s.logger.Infof("archive created: %s (%s)", a.ID, a.Name)
	s.logger.Debugf("archive %s: %s", a.ID, st)
	return a, nil
}

func (s *ArchiveService) GetByID(ctx context.Context, id string) (*model.Archive, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ArchiveService) List(ctx context.Context) ([]*model.Archive, error) {
	return s.repo.List(ctx)
}

// Content returns the original bytes of a stored archive.
func (s *ArchiveService) Content(ctx context.Context, id string) ([]byte, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := huffman.Decompress(a.Data)
	if err != nil {
		s.logger.Errorf("stored archive %s does not decode: %v", id, err)
		return nil, fmt.Errorf("archive %s: %w", id, err)
	}
	return out, nil
}

// Decompress decodes a caller-supplied encoded file without storing anything.
func (s *ArchiveService) Decompress(data []byte) ([]byte, error) {
	out, err := huffman.Decompress(data)
	if err != nil {
		return nil, classify(err)
	}
	s.logger.Debugf("decompressed %dB -> %dB", len(data), len(out))
	return out, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, huffman.ErrEmptyInput),
		errors.Is(err, huffman.ErrCorruptTree),
		errors.Is(err, huffman.ErrTruncatedStream),
		errors.Is(err, huffman.ErrInvalidTrailer):
		return fmt.Errorf("%w: %w", ErrBadInput, err)
	}
	return err
}
