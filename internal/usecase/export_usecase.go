package usecase

import (
	"context"
	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// IExportUseCase produces the administrator's policy spreadsheet.
type IExportUseCase interface {
	ExportPolicies(ctx context.Context, p entities.Principal) ([]byte, error)
}

type ExportUseCase struct {
	policies    interfaces.IPolicyRepository
	simulations interfaces.ISimulationRepository
	exporter    interfaces.IPolicyExporter
	logger      *zap.Logger
}

var _ IExportUseCase = (*ExportUseCase)(nil)

func NewExportUseCase(
	policies interfaces.IPolicyRepository,
	simulations interfaces.ISimulationRepository,
	exporter interfaces.IPolicyExporter,
	logger *zap.Logger,
) *ExportUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportUseCase{policies: policies, simulations: simulations, exporter: exporter, logger: logger}
}

// ExportPolicies loads every policy and simulation concurrently and renders
// one row per policy, oldest first.
func (u *ExportUseCase) ExportPolicies(ctx context.Context, p entities.Principal) ([]byte, error) {
	if err := authorize(p, resourcePolicy, actionExport, ""); err != nil {
		return nil, err
	}

	var (
		policies    []entities.Policy
		simulations []entities.Simulation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		policies, err = u.policies.ListAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		simulations, err = u.simulations.ListAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		u.logger.Error("[export][usecase] load failed", zap.Error(err))
		return nil, transient(err)
	}

	titles := make(map[string]string, len(simulations))
	for _, s := range simulations {
		titles[s.ID] = s.Title
	}

	sort.SliceStable(policies, func(i, j int) bool {
		return policies[i].CreatedAt.Before(policies[j].CreatedAt)
	})
	rows := make([]interfaces.PolicyExportRow, 0, len(policies))
	for _, pol := range policies {
		rows = append(rows, interfaces.PolicyExportRow{Policy: pol, SimulationTitle: titles[pol.SimulationID]})
	}

	out, err := u.exporter.RenderPolicies(rows)
	if err != nil {
		return nil, err
	}
	u.logger.Info("[export][usecase] policies exported", zap.Int("rows", len(rows)))
	return out, nil
}
