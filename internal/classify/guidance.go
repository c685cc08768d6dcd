package classify

type guidance struct {
	principles []string
	technical  []string
	risks      []string
	examples   []string
}

type visGuidance struct {
	principles []string
	trustCues  []string
	risks      []string
}

var guidanceFor = map[string]guidance{
	LLM: {
		principles: []string{
			"Ground every answer in cited sources",
			"Make it easy to hand off to a person",
		},
		technical: []string{
			"Retrieval over tenant data with permission filtering",
			"Prompt and response logging for review",
			"Guardrails for PII and out-of-scope questions",
		},
		risks: []string{
			"Hallucinated or fabricated answers",
			"Leaking data the user is not entitled to see",
			"Inconsistent answers to the same question",
		},
		examples: []string{
			"Benefits question answering",
			"Policy document summarization",
		},
	},
	ComputerVision: {
		principles: []string{
			"Show the extracted value next to the source image",
		},
		technical: []string{
			"Image quality checks before extraction",
			"Per-field confidence thresholds",
		},
		risks: []string{
			"Poor image quality degrading accuracy",
			"Bias in recognition across populations",
		},
		examples: []string{
			"Receipt capture",
			"ID document verification",
		},
	},
	TimeSeries: {
		principles: []string{
			"Show ranges, not single numbers",
			"Explain the main drivers of each forecast",
		},
		technical: []string{
			"Sufficient history per series (at least two seasonal cycles)",
			"Backtesting against held-out periods",
			"Retraining schedule and drift monitoring",
		},
		risks: []string{
			"Forecasts treated as certainties",
			"Model drift as conditions change",
		},
		examples: []string{
			"Headcount forecasting",
			"Cash flow projection",
		},
	},
	AnomalyML: {
		principles: []string{
			"Explain why each item was flagged",
			"Let reviewers dismiss false positives in one step",
		},
		technical: []string{
			"Baseline per segment, not one global threshold",
			"Feedback loop from reviewer decisions",
		},
		risks: []string{
			"False positives eroding trust",
			"Missed anomalies outside the training distribution",
			"Alert fatigue for reviewers",
		},
		examples: []string{
			"Expense fraud detection",
			"Timecard anomaly flagging",
		},
	},
	Recommendation: {
		principles: []string{
			"Explain why each suggestion was made",
			"Always allow dismissing a suggestion",
		},
		technical: []string{
			"Cold-start strategy for new users and items",
			"Capture accept and dismiss signals",
		},
		risks: []string{
			"Filter bubbles narrowing choices",
			"Bias amplification from historical data",
		},
		examples: []string{
			"Learning course suggestions",
			"GL account suggestions",
		},
	},
	RuleBased: {
		principles: []string{
			"Keep rules readable and owned by the business",
			"Log every automated decision with the rule that fired",
		},
		technical: []string{
			"Versioned rule configuration",
			"Simulation mode before rules go live",
			"Exception routing to a human queue",
		},
		risks: []string{
			"Rules becoming outdated as policies change",
			"Edge cases not covered by rules",
			"Over-automation of decisions needing judgment",
		},
		examples: []string{
			"PTO auto-approval",
			"Expense auto-approval under limits",
		},
	},
	TraditionalML: {
		principles: []string{
			"Start with a measurable baseline",
		},
		technical: []string{
			"Labeled training data with clear ownership",
			"Evaluation metrics agreed before launch",
		},
		risks: []string{
			"Insufficient or biased training data",
		},
		examples: []string{
			"Attrition classification",
		},
	},
}

var visibilityGuidance = map[Visibility]visGuidance{
	Backstage: {
		principles: []string{
			"Surface outcomes with an audit trail",
		},
		trustCues: []string{
			"Activity log of automated actions",
			"Easy undo or override of automated outcomes",
			"Periodic summary of what the AI did",
		},
		risks: []string{
			"Lack of transparency in automated decisions",
			"Silent failures going unnoticed",
		},
	},
	CoPilot: {
		principles: []string{
			"Keep the user in control of every action",
		},
		trustCues: []string{
			"Visible AI indicator on generated content",
			"Confidence or source shown with each suggestion",
			"One-click feedback on responses",
		},
		risks: []string{
			"Over-reliance on AI suggestions",
		},
	},
}
