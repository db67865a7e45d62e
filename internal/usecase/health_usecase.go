package usecase

import (
	"context"
	"log"
	"motorcar_consultancy/internal/usecase/interfaces"
	"time"
)

const (
	StorageConnected    = "connected"
	StorageDisconnected = "disconnected"

	storagePingTimeout = 2 * time.Second
)

type HealthStatus struct {
	Storage   string
	Driver    string
	CheckedAt time.Time
}

// IHealthUseCase reports process and storage readiness.

type IHealthUseCase interface {
	Check(ctx context.Context) HealthStatus
}

type HealthUseCase struct {
	storage interfaces.IStorageHealthChecker
}

var _ IHealthUseCase = (*HealthUseCase)(nil)

func NewHealthUseCase(storage interfaces.IStorageHealthChecker) *HealthUseCase {
	return &HealthUseCase{storage: storage}
}

func (u *HealthUseCase) Check(ctx context.Context) HealthStatus {
	st := HealthStatus{Storage: StorageDisconnected, CheckedAt: time.Now().UTC()}
	if u.storage == nil {
		return st
	}
	st.Driver = u.storage.Driver()

	ctx, cancel := context.WithTimeout(ctx, storagePingTimeout)
	defer cancel()
	if err := u.storage.Ping(ctx); err != nil {
		log.Printf("[health][usecase] storage ping failed driver=%s err=%v", st.Driver, err)
		return st
	}
	st.Storage = StorageConnected
	return st
}
