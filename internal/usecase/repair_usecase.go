package usecase

import (
	"context"

	"nexar/internal/domain/repository"
	"nexar/pkg/logger"
)

type RepairUseCase struct {
	profileRepo repository.ProfileRepository
	remediator  Remediator
}

func NewRepairUseCase(profileRepo repository.ProfileRepository, remediator Remediator) *RepairUseCase {
	return &RepairUseCase{
		profileRepo: profileRepo,
		remediator:  remediator,
	}
}

// ConnectionStatus reports the outcome of a backend health probe and
// whether a repair was attempted along the way.
type ConnectionStatus struct {
	Connected       bool `json:"connected"`
	RepairAttempted bool `json:"repair_attempted"`
}

// CheckConnection probes the data store; on failure it files a repair
// request and probes once more. It never probes more than twice.
func (uc *RepairUseCase) CheckConnection(ctx context.Context) *ConnectionStatus {
	if err := uc.profileRepo.Probe(ctx); err == nil {
		return &ConnectionStatus{Connected: true}
	}

	status := &ConnectionStatus{RepairAttempted: true}
	if err := uc.remediator.RequestRepair(ctx); err != nil {
		logger.Error("Repair request failed: %v", err)
		return status
	}

	if err := uc.profileRepo.Probe(ctx); err != nil {
		logger.Error("Probe still failing after repair: %v", err)
		return status
	}

	status.Connected = true
	return status
}
