package fake

// DefaultResponses returns the canned financial analyses replayed by default.
func DefaultResponses() []string {
	return []string{
		`## Executive Summary
Based on the financial document analysis, Tesla shows strong revenue growth of 15% year-over-year with improving profit margins. The company's cash position remains healthy at $28.2 billion.

## Financial Analysis
- Revenue: $25.2B (Q2 2025) vs $21.9B (Q2 2024) - 15% growth
- Net Income: $2.1B vs $1.8B - 17% improvement
- Cash & Equivalents: $28.2B (strong liquidity position)
- Debt-to-Equity: 0.15 (conservative leverage)

## Investment Recommendation
**BUY** - Target Price: $280-320
- Strong growth trajectory in automotive and energy segments
- Improving operational efficiency and margins
- Robust balance sheet with minimal debt
- Leading position in EV market with expanding energy business

## Risk Assessment
**Moderate Risk**
- Market competition in EV space
- Regulatory changes in key markets
- Supply chain dependencies
- Currency fluctuations in international markets

## Conclusion
Tesla presents a compelling investment opportunity with strong fundamentals, healthy growth, and a robust balance sheet. The company's diversified business model and technological leadership provide competitive advantages.`,
		`## Executive Summary
Comprehensive analysis of the financial document reveals a company with solid fundamentals and growth potential. Key metrics indicate strong operational performance and financial stability.

## Financial Analysis
- Strong revenue growth trajectory
- Improving profit margins and operational efficiency
- Healthy balance sheet with good liquidity
- Conservative debt management

## Investment Recommendation
**HOLD** - Current valuation appears fair
- Monitor quarterly results for continued growth
- Consider dollar-cost averaging for long-term positions
- Watch for market expansion opportunities

## Risk Assessment
**Low to Moderate Risk**
- Well-diversified revenue streams
- Strong market position
- Minimal regulatory risks
- Good management track record

## Conclusion
This represents a solid investment with balanced risk-return profile suitable for conservative to moderate risk tolerance.`,
		`## Executive Summary
Financial analysis indicates a company in transition with mixed signals. While some metrics show promise, there are areas requiring attention and monitoring.

## Financial Analysis
- Revenue growth showing signs of deceleration
- Margin pressure from increased competition
- Working capital management needs improvement
- Debt levels within acceptable range

## Investment Recommendation
**HOLD with Caution** - Monitor closely
- Wait for clearer signs of operational improvement
- Consider reducing position size if fundamentals deteriorate
- Focus on management's execution of turnaround plans

## Risk Assessment
**Moderate to High Risk**
- Competitive pressures increasing
- Market share challenges
- Operational efficiency concerns
- Management execution risk

## Conclusion
This investment requires active monitoring and may not be suitable for risk-averse investors. Consider waiting for improved operational metrics before increasing exposure.`,
	}
}
