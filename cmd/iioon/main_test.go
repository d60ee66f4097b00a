package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.iioon.dev/iioon/internal/app"
	"go.iioon.dev/iioon/internal/core/ports/mocks"
	"go.iioon.dev/iioon/internal/engine/evaluator"
	"go.uber.org/mock/gomock"
)

func newTestComponents(ctrl *gomock.Controller, manifests *mocks.MockManifestLoader) *app.Components {
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	resolver := mocks.NewMockInputResolver(ctrl)

	application := app.New(app.Deps{
		Manifests: manifests,
		Evaluator: evaluator.New(resolver),
		Resolver:  resolver,
		Logger:    logger,
	})

	return &app.Components{App: application, Logger: logger}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	components := newTestComponents(ctrl, mocks.NewMockManifestLoader(ctrl))
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)

	manifests := mocks.NewMockManifestLoader(ctrl)
	manifests.EXPECT().Load(".").Return(nil, nil, errors.New("load failed"))

	components := newTestComponents(ctrl, manifests)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"langs"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
}
