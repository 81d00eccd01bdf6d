package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/Maartz/huffman-encoding/internal/repo"
	"github.com/Maartz/huffman-encoding/internal/service"

	"github.com/gin-gonic/gin"
)

const octetStream = "application/octet-stream"

type ArchiveHandler struct {
	svc      *service.ArchiveService
	maxBytes int64
}

func NewArchiveHandler(s *service.ArchiveService, maxBytes int64) *ArchiveHandler {
	return &ArchiveHandler{svc: s, maxBytes: maxBytes}
}

type createArchiveReq struct {
	Name string `form:"name"`
}

// Create compresses the raw request body and stores the result.
func (h *ArchiveHandler) Create(c *gin.Context) {
	var req createArchiveReq
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	body, ok := h.readBody(c)
	if !ok {
		return
	}
	a, err := h.svc.Compress(c.Request.Context(), req.Name, body)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *ArchiveHandler) GetByID(c *gin.Context) {
	a, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *ArchiveHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Raw returns the stored encoded file.
func (h *ArchiveHandler) Raw(c *gin.Context) {
	a, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, octetStream, a.Data)
}

// Content returns the decompressed bytes of a stored archive.
func (h *ArchiveHandler) Content(c *gin.Context) {
	out, err := h.svc.Content(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, octetStream, out)
}

// Decompress decodes an encoded file sent as the request body.
func (h *ArchiveHandler) Decompress(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}
	out, err := h.svc.Decompress(body)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, octetStream, out)
}

func (h *ArchiveHandler) readBody(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "body too large"})
			return nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return body, true
}

func (h *ArchiveHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "archive not found"})
	case errors.Is(err, service.ErrBadInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
