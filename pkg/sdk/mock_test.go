package cardex

import (
	"context"

	"github.com/kailas-cloud/cardex/internal/domain/session"
	commanduc "github.com/kailas-cloud/cardex/internal/usecase/command"
	healthuc "github.com/kailas-cloud/cardex/internal/usecase/health"
)

// --- commandUseCase mock ---

type mockCommandUC struct {
	startFn    func(ctx context.Context) (*session.Session, error)
	endFn      func(ctx context.Context, id string) error
	describeFn func(ctx context.Context, id string) (commanduc.Snapshot, error)
	handleFn   func(ctx context.Context, id, raw string) (commanduc.Outcome, error)
}

func (m *mockCommandUC) Start(ctx context.Context) (*session.Session, error) {
	return m.startFn(ctx)
}

func (m *mockCommandUC) End(ctx context.Context, id string) error {
	return m.endFn(ctx, id)
}

func (m *mockCommandUC) Describe(ctx context.Context, id string) (commanduc.Snapshot, error) {
	return m.describeFn(ctx, id)
}

func (m *mockCommandUC) Handle(ctx context.Context, id, raw string) (commanduc.Outcome, error) {
	return m.handleFn(ctx, id, raw)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(_ context.Context) healthuc.Report {
	return m.report
}
