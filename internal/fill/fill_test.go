// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fill_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-pass-autofill/internal/fill"
	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/mock"
	"github.com/MKhiriev/go-pass-autofill/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// attemptCall records the escalation-relevant parameters of one FillLogin
// round-trip.
type attemptCall struct {
	scope         fill.FrameScope
	allowForeign  bool
	allowNoSecret bool
}

func newTestDispatcher(t *testing.T, ctrl *gomock.Controller) (*fill.Dispatcher, *mock.MockPageAgent, *mock.MockPolicyStore) {
	t.Helper()
	agent := mock.NewMockPageAgent(ctrl)
	policy := mock.NewMockPolicyStore(ctrl)
	return fill.NewDispatcher(agent, policy, logger.Nop()), agent, policy
}

func fillRequest() fill.Request {
	return fill.Request{
		Origin: "https://example.com",
		Login:  "web/example.com/alice",
		Fields: map[string]string{
			models.FieldSecret: "s3cret",
			models.FieldLogin:  "alice",
		},
	}
}

func TestDispatch_TopFrameSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, agent, policy := newTestDispatcher(t, ctrl)
	ctx := context.Background()

	agent.EXPECT().InjectTopFrame(ctx).Return(nil)
	agent.EXPECT().InjectAllFrames(ctx).Return(nil)
	policy.EXPECT().ForeignFillPolicy(ctx, "https://example.com").Return(nil, nil)

	agent.EXPECT().
		FillLogin(ctx, fill.ScopeTopFrame, gomock.Any()).
		Return(models.FillResult{FilledFields: []string{models.FieldLogin, models.FieldSecret}}, nil)
	agent.EXPECT().FocusOrSubmit(ctx, fill.ScopeTopFrame, gomock.Any()).Return(nil)

	filled, err := d.Dispatch(ctx, fillRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{models.FieldLogin, models.FieldSecret}, filled)
}

func TestDispatch_EscalatesToSameOriginFrames(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, agent, policy := newTestDispatcher(t, ctrl)
	ctx := context.Background()

	agent.EXPECT().InjectTopFrame(ctx).Return(nil)
	agent.EXPECT().InjectAllFrames(ctx).Return(nil)
	policy.EXPECT().ForeignFillPolicy(ctx, "https://example.com").Return(nil, nil)

	var calls []attemptCall
	agent.EXPECT().
		FillLogin(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, scope fill.FrameScope, req models.FillRequest) (models.FillResult, error) {
			calls = append(calls, attemptCall{scope, req.AllowForeign, req.AllowNoSecret})
			if scope == fill.ScopeAllFrames {
				// the password lives in a same-origin iframe
				return models.FillResult{FilledFields: []string{models.FieldSecret, models.FieldLogin}}, nil
			}
			return models.FillResult{FilledFields: []string{models.FieldLogin}}, nil
		}).
		Times(2)
	agent.EXPECT().FocusOrSubmit(ctx, fill.ScopeAllFrames, gomock.Any()).Return(nil)

	filled, err := d.Dispatch(ctx, fillRequest())
	require.NoError(t, err)

	// merged in first-seen order, no foreign-frame attempt
	assert.Equal(t, []string{models.FieldLogin, models.FieldSecret}, filled)
	assert.Equal(t, []attemptCall{
		{fill.ScopeTopFrame, false, false},
		{fill.ScopeAllFrames, false, false},
	}, calls)
}

func TestDispatch_TopFrameInjectionFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, agent, _ := newTestDispatcher(t, ctrl)
	ctx := context.Background()

	agent.EXPECT().InjectTopFrame(ctx).Return(errors.New("tab gone"))

	_, err := d.Dispatch(ctx, fillRequest())
	assert.ErrorIs(t, err, fill.ErrTopFrameInjection)
}

func TestDispatch_ExhaustedNamesRequestedFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, agent, policy := newTestDispatcher(t, ctrl)
	ctx := context.Background()

	agent.EXPECT().InjectTopFrame(ctx).Return(nil)
	agent.EXPECT().InjectAllFrames(ctx).Return(errors.New("frame injection blocked"))
	policy.EXPECT().ForeignFillPolicy(ctx, "https://example.com").Return(nil, nil)

	var calls []attemptCall
	agent.EXPECT().
		FillLogin(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, scope fill.FrameScope, req models.FillRequest) (models.FillResult, error) {
			calls = append(calls, attemptCall{scope, req.AllowForeign, req.AllowNoSecret})
			return models.FillResult{}, nil
		}).
		AnyTimes()

	_, err := d.Dispatch(ctx, fillRequest())
	require.ErrorIs(t, err, fill.ErrNoFillableForm)
	assert.ErrorContains(t, err, "login")
	assert.ErrorContains(t, err, "secret")

	// all-frames injection failed: every attempt stays in the top frame,
	// the relaxation pass re-walks the same escalation order
	assert.Equal(t, []attemptCall{
		{fill.ScopeTopFrame, false, false},
		{fill.ScopeTopFrame, true, false},
		{fill.ScopeTopFrame, false, true},
		{fill.ScopeTopFrame, true, true},
	}, calls)
}

func TestDispatch_ForeignDecisionPersistedImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, agent, policy := newTestDispatcher(t, ctrl)
	ctx := context.Background()

	agent.EXPECT().InjectTopFrame(ctx).Return(nil)
	agent.EXPECT().InjectAllFrames(ctx).Return(nil)
	policy.EXPECT().ForeignFillPolicy(ctx, "https://example.com").Return(nil, nil)

	allow := true
	agent.EXPECT().
		FillLogin(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ fill.FrameScope, req models.FillRequest) (models.FillResult, error) {
			if !req.AllowForeign {
				return models.FillResult{}, nil
			}
			return models.FillResult{
				FilledFields:  []string{models.FieldSecret, models.FieldLogin},
				ForeignFill:   &allow,
				ForeignOrigin: "https://idp.example",
			}, nil
		}).
		Times(3)
	policy.EXPECT().
		SaveForeignFillDecision(ctx, "https://example.com", "https://idp.example", true).
		Return(nil)
	agent.EXPECT().
		FocusOrSubmit(ctx, fill.ScopeAllFrames, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ fill.FrameScope, req models.FillRequest) error {
			assert.True(t, req.AllowForeign, "focus must reuse the winning permission level")
			return nil
		})

	filled, err := d.Dispatch(ctx, fillRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{models.FieldSecret, models.FieldLogin}, filled)
}

func TestDispatch_PolicyRefusalSkipsForeignAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, agent, policy := newTestDispatcher(t, ctrl)
	ctx := context.Background()

	agent.EXPECT().InjectTopFrame(ctx).Return(nil)
	agent.EXPECT().InjectAllFrames(ctx).Return(nil)
	policy.EXPECT().
		ForeignFillPolicy(ctx, "https://example.com").
		Return(models.ForeignFillPolicy{"https://idp.example": false}, nil)

	request := fill.Request{
		Origin: "https://example.com",
		Login:  "web/example.com/alice",
		Fields: map[string]string{models.FieldLogin: "alice"},
	}

	var calls []attemptCall
	agent.EXPECT().
		FillLogin(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, scope fill.FrameScope, req models.FillRequest) (models.FillResult, error) {
			calls = append(calls, attemptCall{scope, req.AllowForeign, req.AllowNoSecret})
			return models.FillResult{}, nil
		}).
		AnyTimes()

	_, err := d.Dispatch(ctx, request)
	require.ErrorIs(t, err, fill.ErrNoFillableForm)

	// login-only request: base pass is already relaxed, and the recorded
	// refusal keeps foreign frames out of the plan entirely
	assert.Equal(t, []attemptCall{
		{fill.ScopeTopFrame, false, true},
		{fill.ScopeAllFrames, false, true},
	}, calls)
}

func TestDispatch_PartialFillStillFocuses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, agent, policy := newTestDispatcher(t, ctrl)
	ctx := context.Background()

	agent.EXPECT().InjectTopFrame(ctx).Return(nil)
	agent.EXPECT().InjectAllFrames(ctx).Return(nil)
	policy.EXPECT().ForeignFillPolicy(ctx, "https://example.com").Return(nil, nil)

	var calls []attemptCall
	agent.EXPECT().
		FillLogin(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, scope fill.FrameScope, req models.FillRequest) (models.FillResult, error) {
			calls = append(calls, attemptCall{scope, req.AllowForeign, req.AllowNoSecret})
			return models.FillResult{FilledFields: []string{models.FieldLogin}}, nil
		}).
		Times(3)
	// focus goes to the first attempt that filled, at its permission level
	agent.EXPECT().
		FocusOrSubmit(ctx, fill.ScopeTopFrame, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ fill.FrameScope, req models.FillRequest) error {
			assert.False(t, req.AllowNoSecret)
			return nil
		})

	filled, err := d.Dispatch(ctx, fillRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{models.FieldLogin}, filled)

	// a partial fill stops the escalation at the base pass: no relaxed
	// AllowNoSecret attempts may reach the page
	assert.Equal(t, []attemptCall{
		{fill.ScopeTopFrame, false, false},
		{fill.ScopeAllFrames, false, false},
		{fill.ScopeAllFrames, true, false},
	}, calls)
}

func TestDispatch_AutoSubmitForwarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, agent, policy := newTestDispatcher(t, ctrl)
	ctx := context.Background()

	agent.EXPECT().InjectTopFrame(ctx).Return(nil)
	agent.EXPECT().InjectAllFrames(ctx).Return(nil)
	policy.EXPECT().ForeignFillPolicy(ctx, "https://example.com").Return(nil, nil)

	agent.EXPECT().
		FillLogin(ctx, fill.ScopeTopFrame, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ fill.FrameScope, req models.FillRequest) (models.FillResult, error) {
			assert.False(t, req.AutoSubmit, "fill instructions never auto-submit")
			return models.FillResult{FilledFields: []string{models.FieldSecret}}, nil
		})
	agent.EXPECT().
		FocusOrSubmit(ctx, fill.ScopeTopFrame, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ fill.FrameScope, req models.FillRequest) error {
			assert.True(t, req.AutoSubmit)
			return nil
		})

	request := fillRequest()
	request.AutoSubmit = true

	_, err := d.Dispatch(ctx, request)
	require.NoError(t, err)
}

func TestDispatch_AgentErrorIsTerminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, agent, policy := newTestDispatcher(t, ctrl)
	ctx := context.Background()

	agent.EXPECT().InjectTopFrame(ctx).Return(nil)
	agent.EXPECT().InjectAllFrames(ctx).Return(nil)
	policy.EXPECT().ForeignFillPolicy(ctx, "https://example.com").Return(nil, nil)

	rpcErr := errors.New("frame vanished")
	agent.EXPECT().
		FillLogin(ctx, fill.ScopeTopFrame, gomock.Any()).
		Return(models.FillResult{}, rpcErr)

	_, err := d.Dispatch(ctx, fillRequest())
	assert.ErrorIs(t, err, rpcErr)
}
