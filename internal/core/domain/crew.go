package domain

import "strings"

// Well-known agent IDs.
const (
	AgentFinancialAnalyst  = "financial_analyst"
	AgentVerifier          = "verifier"
	AgentInvestmentAdvisor = "investment_advisor"
	AgentRiskAssessor      = "risk_assessor"
)

// Well-known task IDs.
const (
	TaskAnalyzeDocument    = "analyze_financial_document"
	TaskInvestmentAnalysis = "investment_analysis"
	TaskRiskAssessment     = "risk_assessment"
	TaskVerification       = "verification"
)

// Template placeholders substituted into goals and task prompts.
const (
	PlaceholderQuery    = "{query}"
	PlaceholderFilePath = "{file_path}"
)

// Agent is a role-played language-model persona.
type Agent struct {
	// ID is the unique agent identifier.
	ID string

	// Role is the persona's job title.
	Role string

	// Goal describes what the agent is trying to achieve. May contain {query}.
	Goal string

	// Backstory is the persona description given to the model.
	Backstory string

	// Memory passes earlier task outputs of the same run to this agent.
	Memory bool

	// MaxIter is the maximum number of model calls per task.
	MaxIter int

	// MaxRPM caps model requests per minute. Zero means unlimited.
	MaxRPM int

	// AllowDelegation is carried for completeness; delegation is never performed.
	AllowDelegation bool

	// Tools names the analysis tools the agent may use.
	Tools []string
}

// Attempts returns the number of model calls allowed per task (at least one).
func (a Agent) Attempts() int {
	if a.MaxIter < 1 {
		return 1
	}
	return a.MaxIter
}

// Task is a prompt assigned to an agent.
type Task struct {
	// ID is the unique task identifier. It also names the prompt templates.
	ID string

	// AgentID is the agent that performs the task.
	AgentID string

	// Tools names the analysis tools available to the task.
	Tools []string
}

// DescriptionPrompt returns the prompt template name for the task description.
func (t Task) DescriptionPrompt() string {
	return t.ID
}

// ExpectedOutputPrompt returns the prompt template name for the expected output.
func (t Task) ExpectedOutputPrompt() string {
	return t.ID + "_expected"
}

// RenderTemplate substitutes {query} and {file_path} in tmpl.
func RenderTemplate(tmpl, query, filePath string) string {
	r := strings.NewReplacer(PlaceholderQuery, query, PlaceholderFilePath, filePath)
	return r.Replace(tmpl)
}

// DefaultAgents returns the built-in crew.
func DefaultAgents() []Agent {
	return []Agent{
		{
			ID:   AgentFinancialAnalyst,
			Role: "Senior Financial Analyst",
			Goal: "Provide comprehensive and accurate financial analysis based on the user's query: {query}",
			Backstory: "You are a seasoned financial analyst with over 10 years of experience in equity research, " +
				"financial modeling, and investment analysis. You have a deep understanding of financial statements, " +
				"market dynamics, and regulatory frameworks. Your analysis is always thorough, evidence-based, " +
				"and follows professional standards. You provide clear, actionable insights while maintaining " +
				"appropriate disclaimers about investment risks. You excel at identifying key financial metrics, " +
				"trends, and potential investment opportunities while highlighting associated risks.",
			Memory:  true,
			MaxIter: 3,
			MaxRPM:  10,
		},
		{
			ID:   AgentVerifier,
			Role: "Financial Document Verifier",
			Goal: "Verify that uploaded documents are legitimate financial documents and contain relevant financial data",
			Backstory: "You are a compliance specialist with extensive experience in financial document verification. " +
				"You carefully examine uploaded documents to ensure they contain legitimate financial information " +
				"such as financial statements, earnings reports, or investment documents. You identify the document " +
				"type, verify its authenticity, and confirm it contains relevant financial data for analysis. " +
				"You maintain high standards for document quality and provide clear feedback on document suitability.",
			Memory:  true,
			MaxIter: 2,
			MaxRPM:  5,
		},
		{
			ID:   AgentInvestmentAdvisor,
			Role: "Investment Advisor",
			Goal: "Provide well-researched investment recommendations based on thorough financial analysis",
			Backstory: "You are a certified investment advisor with 15+ years of experience in portfolio management " +
				"and investment research. You hold relevant financial certifications and adhere to fiduciary standards. " +
				"Your recommendations are based on comprehensive analysis of financial documents, market conditions, " +
				"and risk-return profiles. You provide balanced investment advice that considers the client's " +
				"risk tolerance, investment objectives, and time horizon. You always include appropriate " +
				"disclaimers and emphasize the importance of diversification and risk management.",
			MaxIter: 3,
			MaxRPM:  10,
			Tools:   []string{"investment"},
		},
		{
			ID:   AgentRiskAssessor,
			Role: "Risk Assessment Specialist",
			Goal: "Conduct thorough risk analysis and provide comprehensive risk assessments based on financial data",
			Backstory: "You are a risk management specialist with extensive experience in financial risk assessment, " +
				"portfolio risk analysis, and regulatory compliance. You have worked with institutional investors " +
				"and understand various risk metrics including VaR, beta, volatility, and credit risk. " +
				"Your assessments are methodical, data-driven, and consider multiple risk factors including " +
				"market risk, credit risk, liquidity risk, and operational risk. You provide clear risk " +
				"ratings and recommendations for risk mitigation strategies.",
			MaxIter: 3,
			MaxRPM:  10,
			Tools:   []string{"risk"},
		},
	}
}

// DefaultTasks returns the built-in task sequence.
// Every task is handled by the financial analyst.
func DefaultTasks() []Task {
	return []Task{
		{ID: TaskAnalyzeDocument, AgentID: AgentFinancialAnalyst},
		{ID: TaskInvestmentAnalysis, AgentID: AgentFinancialAnalyst},
		{ID: TaskRiskAssessment, AgentID: AgentFinancialAnalyst},
		{ID: TaskVerification, AgentID: AgentFinancialAnalyst},
	}
}
