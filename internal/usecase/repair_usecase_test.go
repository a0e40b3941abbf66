package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"nexar/pkg/errors"
)

func TestCheckConnectionHealthy(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	remediator := &fakeRemediator{}
	uc := NewRepairUseCase(profileRepo, remediator)

	status := uc.CheckConnection(context.Background())
	assert.True(t, status.Connected)
	assert.False(t, status.RepairAttempted)
	assert.Zero(t, remediator.calls)
}

func TestCheckConnectionRepairsAndRecovers(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	profileRepo.probeErr = errors.Internal("store down", nil)

	// The repair request fixes the store before the second probe.
	remediator := &fakeRemediator{}
	remediator.onCall = func() { profileRepo.probeErr = nil }
	uc := NewRepairUseCase(profileRepo, remediator)

	status := uc.CheckConnection(context.Background())
	assert.True(t, status.Connected)
	assert.True(t, status.RepairAttempted)
	assert.Equal(t, 1, remediator.calls)
}

func TestCheckConnectionRepairFails(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	profileRepo.probeErr = errors.Internal("store down", nil)
	remediator := &fakeRemediator{err: errors.Internal("trigger unavailable", nil)}
	uc := NewRepairUseCase(profileRepo, remediator)

	status := uc.CheckConnection(context.Background())
	assert.False(t, status.Connected)
	assert.True(t, status.RepairAttempted)
}

func TestCheckConnectionStillDownAfterRepair(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	profileRepo.probeErr = errors.Internal("store down", nil)
	remediator := &fakeRemediator{}
	uc := NewRepairUseCase(profileRepo, remediator)

	status := uc.CheckConnection(context.Background())
	assert.False(t, status.Connected)
	assert.True(t, status.RepairAttempted)
	// Exactly one repair and no third probe.
	assert.Equal(t, 1, remediator.calls)
}
