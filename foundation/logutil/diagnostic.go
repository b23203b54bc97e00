package logutil

import (
	"github.com/vortex-fintech/go-contactlink/foundation/contactutil"
	"github.com/vortex-fintech/go-contactlink/foundation/logger"
	"github.com/vortex-fintech/go-contactlink/foundation/piiutil"
)

const invalidNumberMsg = "invalid phone number"

// DiagnosticLogger writes contactutil diagnostics as structured warnings.
// Numbers are masked before they reach the log.
type DiagnosticLogger struct {
	log logger.LoggerInterface
}

// NewDiagnosticLogger returns an observer backed by log. A nil log
// produces an observer that drops everything.
func NewDiagnosticLogger(log logger.LoggerInterface) *DiagnosticLogger {
	return &DiagnosticLogger{log: log}
}

func (d *DiagnosticLogger) ObserveInvalid(diag contactutil.Diagnostic) {
	if d == nil || d.log == nil {
		return
	}
	d.log.Warnw(invalidNumberMsg,
		"number", piiutil.MaskPhone(diag.Number.String()),
		"digits", diag.Digits,
		"reason", diag.Reason,
	)
}

var _ contactutil.Observer = (*DiagnosticLogger)(nil)
