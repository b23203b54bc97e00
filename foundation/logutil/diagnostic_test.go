package logutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vortex-fintech/go-contactlink/foundation/contactutil"
	"github.com/vortex-fintech/go-contactlink/foundation/logger"
	"github.com/vortex-fintech/go-contactlink/foundation/logutil"
)

func TestDiagnosticLogger_WarnsWithMaskedNumber(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	obs := logutil.NewDiagnosticLogger(logger.FromZap(zap.New(core)))

	require.False(t, contactutil.DefaultPlan().Validate(contactutil.Normalize("98765-4321"), obs))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zap.WarnLevel, entries[0].Level)
	require.Equal(t, "invalid phone number", entries[0].Message)

	fields := entries[0].ContextMap()
	require.Equal(t, "*****4321", fields["number"])
	require.EqualValues(t, 9, fields["digits"])
	require.Equal(t, contactutil.ReasonTooShort, fields["reason"])
}

func TestDiagnosticLogger_SilentForValidNumbers(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	b, err := contactutil.NewBuilder(
		contactutil.WithObserver(logutil.NewDiagnosticLogger(logger.FromZap(zap.New(core)))),
	)
	require.NoError(t, err)

	_, ok := b.LinkRaw("+55 11 98765-4321", "oi")
	require.True(t, ok)
	require.Zero(t, logs.Len())
}

func TestDiagnosticLogger_NilSafe(t *testing.T) {
	var nilObs *logutil.DiagnosticLogger
	require.NotPanics(t, func() {
		nilObs.ObserveInvalid(contactutil.Diagnostic{})
		logutil.NewDiagnosticLogger(nil).ObserveInvalid(contactutil.Diagnostic{})
	})
}
