// =============================================================================
// Payslip Mailer - HTTP Upload API
// =============================================================================
//
// This module exposes the batch pipeline over HTTP. One route accepts a
// multipart payroll file upload, parses it, runs the batch and returns the
// per-row outcome report as JSON.
//
// ROUTE:
//   POST /generate-and-email-payslips/   (multipart field "file")
//
// The SMTP transport was validated at startup, so by the time a request
// reaches this handler the only batch-level error left is a file problem,
// which maps to 400.
//
// =============================================================================

package server

import (
	"io"
	"net/http"

	"github.com/apexseekers/payslip-mailer/internal/ingest"
	"github.com/apexseekers/payslip-mailer/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// BatchRunner runs one parsed payroll sheet to completion.
// *batch.Processor satisfies this; tests substitute a stub.
type BatchRunner interface {
	Run(sheet *types.Sheet) (*types.BatchResult, error)
}

// Server wires the upload route to the batch pipeline.
type Server struct {
	engine *gin.Engine
	runner BatchRunner
	logger *logrus.Logger
}

// batchResponse is the report envelope returned to the caller.
type batchResponse struct {
	Status string `json:"status"`
	*types.BatchResult
}

// New creates the HTTP server around a batch runner.
func New(runner BatchRunner, logger *logrus.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine: engine,
		runner: runner,
		logger: logger,
	}

	engine.POST("/generate-and-email-payslips/", s.handleGenerateAndEmail)

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run blocks serving HTTP on the given address.
func (s *Server) Run(addr string) error {
	s.logger.WithField("addr", addr).Info("payslip upload API listening")
	return s.engine.Run(addr)
}

// =============================================================================
// HANDLER
// =============================================================================

// handleGenerateAndEmail accepts a payroll file, emails a payslip to every
// employee row, and responds with the aggregate report.
func (s *Server) handleGenerateAndEmail(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a payroll file upload is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}

	sheet, err := ingest.Parse(fileHeader.Filename, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.runner.Run(sheet)
	if err != nil {
		// The only batch-level error past startup is a sheet that cannot be
		// processed at all (missing required columns).
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, batchResponse{
		Status:      "Complete",
		BatchResult: result,
	})
}
