package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/fincrew/internal/core/domain"
	"github.com/custodia-labs/fincrew/internal/core/ports/driven"
	"github.com/custodia-labs/fincrew/internal/postprocessors/whitespace"
)

// InvestmentName is the tool name used in agent and task descriptors.
const InvestmentName = "investment"

var _ driven.AnalysisTool = (*Investment)(nil)

// Investment prepares the report for investment analysis.
type Investment struct{}

// NewInvestment creates the investment tool.
func NewInvestment() *Investment {
	return &Investment{}
}

// Name returns "investment".
func (t *Investment) Name() string {
	return InvestmentName
}

// Description explains what the tool does.
func (t *Investment) Description() string {
	return "Cleans the report text and analyses it for investment potential."
}

// Analyse collapses runs of spaces in documentText and returns pending
// findings describing the cleaned input.
func (t *Investment) Analyse(ctx context.Context, documentText string) (*domain.Findings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cleaned := whitespace.CollapseSpaces(documentText)

	return &domain.Findings{
		Tool:    InvestmentName,
		Status:  domain.FindingsPending,
		Summary: "Investment analysis functionality to be implemented",
		Items: []string{
			fmt.Sprintf("Prepared %d characters across %d lines for analysis",
				len(cleaned), strings.Count(cleaned, "\n")),
		},
	}, nil
}
