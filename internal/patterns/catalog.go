package patterns

import "github.com/HendryAvila/flowsmith/internal/domain"

// builtinPatterns is the catalog in detection order. Reordering entries
// changes routing for concepts that hit more than one pattern.
var builtinPatterns = []Pattern{
	{
		Key:         AutoApproval,
		Name:        "Auto-Approval",
		Description: "Automatically approve routine requests that satisfy policy, routing the rest to a person.",
		Triggers:    []string{"auto", "approv"},
		Objects:     []string{"Request", "Approval", "Entity", "Policy"},
		Oversight:   "Humans own the policy and every exception. Auto-decisions are logged, reversible, and sampled for audit.",
		Examples: map[domain.Industry]string{
			domain.Generic: "Auto-approve routine access requests that match the requester's role.",
			domain.HCM:     "Auto-approve PTO requests when team coverage stays above the minimum.",
			domain.Finance: "Auto-approve expense reports under policy limits with valid receipts.",
		},
	},
	{
		Key:         AnomalyDetection,
		Name:        "Anomaly Detection",
		Description: "Continuously scan records for deviations and route flagged items to a reviewer.",
		Triggers:    []string{"detect", "anomal", "flag", "unusual", "outlier", "error", "missing"},
		Objects:     []string{"Transaction", "Anomaly", "Notification"},
		Oversight:   "AI flags, people decide. No record is changed or blocked without a reviewer confirming the anomaly.",
		Examples: map[domain.Industry]string{
			domain.Generic: "Flag unusual records before they reach downstream reports.",
			domain.HCM:     "Flag missing punches and unusual overtime before payroll closes.",
			domain.Finance: "Detect unusual journal entries and flag them before close.",
		},
	},
	{
		Key:         IntelligentScheduling,
		Name:        "Intelligent Scheduling",
		Description: "Generate schedules that balance demand, availability and rules, then let people adjust.",
		Triggers:    []string{"schedul", "shift", "roster", "staffing", "calendar"},
		Objects:     []string{"Schedule", "Shift", "Entity", "Forecast"},
		Oversight:   "The scheduler proposes, a manager publishes. Manual edits always win over generated slots.",
		Examples: map[domain.Industry]string{
			domain.Generic: "Schedule field technicians against forecast demand.",
			domain.HCM:     "Build next week's rota from forecast store traffic.",
			domain.Finance: "Schedule month-end close tasks around team capacity.",
		},
	},
	{
		Key:         PredictiveForecasting,
		Name:        "Predictive Forecasting",
		Description: "Project a metric forward with an uncertainty band and explain its drivers.",
		Triggers:    []string{"forecast", "predict", "projection", "trend"},
		Objects:     []string{"Forecast", "Data Source", "Insight"},
		Oversight:   "Forecasts inform plans; they never trigger actions on their own. Owners can override with a note.",
		Examples: map[domain.Industry]string{
			domain.Generic: "Forecast next quarter's demand from historical orders.",
			domain.HCM:     "Predict which teams will lose people next quarter.",
			domain.Finance: "Forecast 13-week cash position from receivables and payables.",
		},
	},
	{
		Key:         ConversationalAssistant,
		Name:        "Conversational Assistant",
		Description: "Answer natural-language questions grounded in the user's data and hand off when unsure.",
		Triggers:    []string{"chat", "assistant", "conversation", "ask", "question"},
		Objects:     []string{"Conversation", "Message", "Entity"},
		Oversight:   "Answers cite sources. Anything that changes data needs explicit user confirmation; unclear cases go to a person.",
		Examples: map[domain.Industry]string{
			domain.Generic: "Let users ask questions about their account in plain language.",
			domain.HCM:     "Ask how many vacation days I have left and how to book them.",
			domain.Finance: "Ask whether a client dinner is reimbursable and under which category.",
		},
	},
	{
		Key:         DocumentIntelligence,
		Name:        "Document Intelligence",
		Description: "Extract structured fields from documents and ask a person to verify low-confidence values.",
		Triggers:    []string{"document", "extract", "invoice", "receipt", "ocr", "parse"},
		Objects:     []string{"Document", "Entity", "Transaction"},
		Oversight:   "Low-confidence fields are highlighted for verification. Nothing is posted until a person confirms.",
		Examples: map[domain.Industry]string{
			domain.Generic: "Extract key fields from uploaded contracts.",
			domain.HCM:     "Extract identity and tax details from new-hire documents.",
			domain.Finance: "Extract invoice lines and match them to purchase orders.",
		},
	},
	{
		Key:         SmartRecommendation,
		Name:        "Smart Recommendation",
		Description: "Rank options for a user and explain why each was suggested.",
		Triggers:    []string{"recommend", "suggest", "personaliz", "match"},
		Objects:     []string{"Recommendation", "Entity"},
		Oversight:   "Users choose. Recommendations are explainable and dismissable, and dismissals feed back as signals.",
		Examples: map[domain.Industry]string{
			domain.Generic: "Suggest the next best action for each open case.",
			domain.HCM:     "Suggest courses that close each employee's skill gaps.",
			domain.Finance: "Suggest the general ledger account for each invoice line.",
		},
	},
	{
		Key:         CrossSystemInsights,
		Name:        "Cross-System Insights",
		Description: "Join data from several systems into one view and surface insights no single system shows.",
		Triggers:    []string{"unified", "across", "360", "cross-domain", "holistic"},
		Objects:     []string{"Data Source", "Insight", "Entity"},
		Oversight:   "Insights show their sources and freshness. Access follows the strictest permission of the underlying systems.",
		Examples: map[domain.Industry]string{
			domain.Generic: "Unified customer view across sales, support and billing.",
			domain.HCM:     "Unified view of headcount, overtime and engagement across HR systems.",
			domain.Finance: "Unified view of spend across procurement, AP and card programs.",
		},
	},
	{
		Key:         IntelligentSearch,
		Name:        "Intelligent Search",
		Description: "Interpret a search intent, rank results semantically and let users refine.",
		Triggers:    []string{"search", "find", "lookup", "discover"},
		Objects:     []string{"Search Query", "Entity"},
		Oversight:   "Results respect the searcher's permissions. Ranking signals are visible on request.",
		Examples: map[domain.Industry]string{
			domain.Generic: "Find records by describing them instead of filling filters.",
			domain.HCM:     "Find employees who speak Spanish and are certified forklift operators.",
			domain.Finance: "Find every payment to this vendor above 10,000 last year.",
		},
	},
	{
		Key:         ComplianceMonitoring,
		Name:        "Compliance Monitoring",
		Description: "Check activity continuously against rules and open cases for violations.",
		Triggers:    []string{"complian", "audit", "regulat", "policy"},
		Objects:     []string{"Policy", "Transaction", "Anomaly", "Notification"},
		Oversight:   "A compliance owner confirms every violation. The rule set is versioned and every check is evidenced.",
		Examples: map[domain.Industry]string{
			domain.Generic: "Monitor access changes against the access policy.",
			domain.HCM:     "Monitor meal-break compliance against state labor rules.",
			domain.Finance: "Monitor segregation-of-duties and approval controls continuously.",
		},
	},
	{
		Key:         SentimentAnalysis,
		Name:        "Sentiment Analysis",
		Description: "Classify free-text feedback by sentiment and theme and summarise it for owners.",
		Triggers:    []string{"sentiment", "feedback", "survey", "engagement"},
		Objects:     []string{"Feedback", "Insight"},
		Oversight:   "Aggregates only; individual comments are never scored for performance purposes. Small groups are suppressed.",
		Examples: map[domain.Industry]string{
			domain.Generic: "Summarise themes from customer feedback tickets.",
			domain.HCM:     "Summarize themes from the quarterly engagement survey.",
			domain.Finance: "Summarise supplier feedback from quarterly business reviews.",
		},
	},
	{
		Key:         RiskScoring,
		Name:        "Risk Scoring",
		Description: "Score subjects for risk with explainable factors and route high scores for action.",
		Triggers:    []string{"fraud", "risk", "score", "credit"},
		Objects:     []string{"Risk Score", "Entity", "Transaction"},
		Oversight:   "Scores prioritise human attention; they never deny service on their own. Factors are shown with every score.",
		Examples: map[domain.Industry]string{
			domain.Generic: "Score accounts for churn risk each week.",
			domain.HCM:     "Score each employee's risk of leaving in the next six months.",
			domain.Finance: "Score vendors for payment fraud and concentration risk.",
		},
	},
}
