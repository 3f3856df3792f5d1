package usecase

import (
	"context"
	"sort"
)

// Probe reports whether one dependency is reachable.
type Probe func(ctx context.Context) error

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	probes map[string]Probe
}

func NewHealthUsecase(probes map[string]Probe) HealthUsecase {
	return &healthUsecase{probes: probes}
}

// Check runs every probe and reports "ok" or the error text per dependency.
func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	result := map[string]string{"status": "ok"}
	healthy := true

	names := make([]string, 0, len(u.probes))
	for name := range u.probes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := u.probes[name](ctx); err != nil {
			result[name] = err.Error()
			healthy = false
			continue
		}
		result[name] = "ok"
	}
	if !healthy {
		result["status"] = "degraded"
	}
	return result, healthy
}
