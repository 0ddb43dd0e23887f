package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"legalcopilot/internal/intake"
)

func (s *Server) handleHealthz(c *gin.Context) {
	info := s.providers.ActiveInfo()
	c.JSON(http.StatusOK, gin.H{"ok": true, "provider": info.Name, "model": info.Model, "configured_providers": s.providers.LLMCount()})
}

func (s *Server) handleUpload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxUploadBytes())

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeErr(c, http.StatusBadRequest, fmt.Errorf("%w: %v", errUploadTooLarge, err))
			return
		}
		writeErr(c, http.StatusBadRequest, fmt.Errorf("%w: %v", errNoFilePart, err))
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeErr(c, http.StatusBadRequest, fmt.Errorf("open upload: %w", err))
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		writeErr(c, http.StatusBadRequest, fmt.Errorf("read upload: %w", err))
		return
	}

	text, err := intake.ExtractText(data, fh.Filename)
	if err != nil {
		writeErr(c, http.StatusBadRequest, err)
		return
	}
	s.log.Info("document uploaded", "filename", fh.Filename, "bytes", len(data), "text_chars", len(text))
	c.JSON(http.StatusOK, gin.H{"text": text})
}

type processRequest struct {
	Document string `json:"document"`
}

func (s *Server) handleProcess(c *gin.Context) {
	var req processRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErr(c, http.StatusBadRequest, fmt.Errorf("%w: %v", errInvalidJSON, err))
		return
	}
	if req.Document == "" {
		writeErr(c, http.StatusBadRequest, errDocumentRequired)
		return
	}
	s.log.Info("processing document", "document_chars", len(req.Document))

	res, err := s.analyzer.Process(c.Request.Context(), req.Document)
	if err != nil {
		writeErr(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type chatRequest struct {
	Document string `json:"document"`
	Question string `json:"question"`
}

func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErr(c, http.StatusBadRequest, fmt.Errorf("%w: %v", errInvalidJSON, err))
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeErr(c, http.StatusBadRequest, errQuestionRequired)
		return
	}

	answer, err := s.analyzer.Answer(c.Request.Context(), req.Document, req.Question)
	if err != nil {
		writeErr(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

type checkTermsRequest struct {
	Document  string `json:"document"`
	UserTerms string `json:"userTerms"`
}

func (s *Server) handleCheckTerms(c *gin.Context) {
	var req checkTermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErr(c, http.StatusBadRequest, fmt.Errorf("%w: %v", errInvalidJSON, err))
		return
	}
	if strings.TrimSpace(req.UserTerms) == "" {
		writeErr(c, http.StatusBadRequest, errTermsRequired)
		return
	}

	result, err := s.analyzer.CheckTerms(c.Request.Context(), req.Document, req.UserTerms)
	if err != nil {
		writeErr(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}
