package tools

import (
	"context"

	"github.com/custodia-labs/fincrew/internal/core/domain"
	"github.com/custodia-labs/fincrew/internal/core/ports/driven"
)

// RiskName is the tool name used in agent and task descriptors.
const RiskName = "risk"

var _ driven.AnalysisTool = (*Risk)(nil)

// Risk assesses the risks described in a report.
type Risk struct{}

// NewRisk creates the risk tool.
func NewRisk() *Risk {
	return &Risk{}
}

// Name returns "risk".
func (t *Risk) Name() string {
	return RiskName
}

// Description explains what the tool does.
func (t *Risk) Description() string {
	return "Assesses market, credit, liquidity and operational risk in the report."
}

// Analyse returns pending findings.
func (t *Risk) Analyse(ctx context.Context, _ string) (*domain.Findings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &domain.Findings{
		Tool:    RiskName,
		Status:  domain.FindingsPending,
		Summary: "Risk assessment functionality to be implemented",
	}, nil
}
