// Package tools provides the analysis capabilities agents can call.
//
// Each tool receives the full report text and returns structured findings.
// The investment and risk tools are placeholders: they report
// domain.FindingsPending until real analysis is implemented.
package tools
