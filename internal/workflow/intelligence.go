package workflow

import (
	"github.com/HendryAvila/flowsmith/internal/objects"
	"github.com/HendryAvila/flowsmith/internal/rules"
)

// Analytical patterns: the AI produces a number, a ranking or a summary
// that people act on.

// --- predictiveForecasting ---

var (
	metricTerms = []rules.Rule[string]{
		derive("attrition", "attrition", "turnover", "leave the company", "quit"),
		derive("headcount", "headcount", "hiring"),
		derive("cash position", "cash"),
		derive("revenue", "revenue", "sales"),
		derive("labour cost", "labor cost", "labour cost", "overtime"),
		derive("demand", "demand", "volume"),
	}
	horizonTerms = []rules.Rule[string]{
		derive("next 13 weeks", "13-week", "13 week", "weekly"),
		derive("next quarter", "quarter"),
		derive("next 12 months", "year", "annual"),
		derive("next month", "month"),
	}
	forecastFactorTerms = []rules.Rule[string]{
		derive("tenure, engagement and pay position", "attrition", "turnover"),
		derive("receivables, payables and seasonality", "cash"),
		derive("historical volume and seasonality", "demand", "volume", "sales"),
	}
	audienceTerms = []rules.Rule[string]{
		derive("HR business partners", "attrition", "headcount", "employee"),
		derive("finance leadership", "cash", "revenue", "budget", "spend"),
		derive("managers", "manager", "team"),
	}
)

func synthForecasting(c Context) Parts {
	metric := c.Term("metric", metricTerms, "the target metric")
	horizon := c.Term("horizon", horizonTerms, "next period")
	factors := c.Term("factors", forecastFactorTerms, "historical values and known drivers")
	audience := c.Term("audience", audienceTerms, "planners")

	return Parts{
		Flow: []Step{
			step("1", System, objects.KeyDataSource, "Gathers history for "+metric),
			step("2", AI, objects.KeyForecast, "Refreshes the model using "+factors),
			step("3", AI, objects.KeyForecast, "Produces a "+horizon+" forecast with a confidence range").confident(),
			step("4", AI, objects.KeyInsight, "Explains the main drivers behind the forecast").confident(),
			step("5", User, objects.KeyForecast, "Reviews the forecast and adjusts assumptions ("+audience+")"),
			step("6", System, objects.KeyForecast, "Tracks actuals against the forecast and reports accuracy"),
		},
		Touchpoints: Touchpoints{
			HCM: []string{
				"Attrition risk forecasting",
				"Headcount demand projection",
				"Driver explanation for forecasts",
			},
			Finance: []string{
				"Cash flow forecasting",
				"Budget variance projection",
				"Driver explanation for forecasts",
			},
			Generic: []string{
				"Time series forecasting",
				"Scenario comparison",
				"Driver explanation for forecasts",
			},
		},
		Config: []ConfigNeed{
			{"forecastHorizon", "How far ahead to forecast", horizon},
			{"refreshFrequency", "How often the forecast is recomputed", "weekly"},
			{"minimumHistoryMonths", "History required before a forecast is shown", "24"},
			{"confidenceInterval", "Width of the range shown with each forecast", "80%"},
		},
	}
}

// --- crossSystemInsights ---

var (
	systemsTerms = []rules.Rule[string]{
		derive("HR, payroll and time systems", "hr", "payroll", "workforce"),
		derive("ERP, procurement and card systems", "spend", "procurement", "erp"),
		derive("CRM, support and billing systems", "customer", "crm"),
	}
	insightQuestionTerms = []rules.Rule[string]{
		derive("what is driving cost", "cost", "spend"),
		derive("where people risk is building up", "attrition", "engagement", "workforce"),
		derive("how the customer relationship is trending", "customer"),
	}
)

func synthInsights(c Context) Parts {
	systems := c.Term("systems", systemsTerms, "the connected systems")
	question := c.Term("question", insightQuestionTerms, "the questions the business asks most")
	audience := c.Term("audience", audienceTerms, "business leaders")

	return Parts{
		Flow: []Step{
			step("1", System, objects.KeyDataSource, "Connects to "+systems),
			step("2", AI, objects.KeyEntity, "Matches the same "+c.Entity()+" across systems").confident(),
			step("3", System, objects.KeyDataSource, "Joins and normalises the data into one model"),
			step("4", AI, objects.KeyInsight, "Surfaces insights on "+question).confident(),
			step("5", User, objects.KeyInsight, "Explores insights and drills into source records ("+audience+")"),
			step("6", System, objects.KeyDataSource, "Refreshes on schedule and flags stale sources"),
		},
		Touchpoints: Touchpoints{
			HCM: []string{
				"Employee identity resolution across systems",
				"Workforce cost driver analysis",
				"Natural language insight summaries",
			},
			Finance: []string{
				"Vendor identity resolution across systems",
				"Spend leakage analysis",
				"Natural language insight summaries",
			},
			Generic: []string{
				"Entity resolution across systems",
				"Cross-source correlation analysis",
				"Natural language insight summaries",
			},
		},
		Config: []ConfigNeed{
			{"connectedSystems", "Systems joined into the unified view", systems},
			{"refreshInterval", "How often data is re-synchronised", "daily"},
			{"matchConfidence", "Minimum confidence to merge two records as the same entity", "0.9"},
			{"accessModel", "Which permissions govern the joined view", "strictest source"},
		},
	}
}

// --- sentimentAnalysis ---

var (
	feedbackSourceTerms = []rules.Rule[string]{
		derive("engagement survey comments", "engagement", "survey", "pulse"),
		derive("exit interview notes", "exit"),
		derive("customer feedback tickets", "customer", "ticket", "review"),
		derive("supplier feedback", "supplier", "vendor"),
	}
	themeTerms = []rules.Rule[string]{
		derive("workload, recognition and growth", "engagement", "employee", "survey"),
		derive("service quality and response time", "customer", "ticket"),
	}
)

func synthSentiment(c Context) Parts {
	source := c.Term("source", feedbackSourceTerms, "free-text feedback")
	themes := c.Term("themes", themeTerms, "recurring topics")
	audience := c.Term("audience", audienceTerms, "feedback owners")

	return Parts{
		Flow: []Step{
			step("1", System, objects.KeyFeedback, "Collects "+source),
			step("2", AI, objects.KeyFeedback, "Classifies sentiment for each comment").confident(),
			step("3", AI, objects.KeyInsight, "Groups comments into themes such as "+themes).confident(),
			step("4", System, objects.KeyInsight, "Suppresses groups below the minimum size"),
			step("5", User, objects.KeyInsight, "Reviews summarised themes ("+audience+")"),
			step("6", User, objects.KeyFeedback, "Records actions taken against each theme"),
		},
		Touchpoints: Touchpoints{
			HCM: []string{
				"Survey comment sentiment classification",
				"Theme extraction from open text",
				"Engagement trend summaries",
			},
			Finance: []string{
				"Supplier feedback sentiment classification",
				"Theme extraction from open text",
			},
			Generic: []string{
				"Sentiment classification",
				"Theme extraction from open text",
				"Trend summaries",
			},
		},
		Config: []ConfigNeed{
			{"minimumGroupSize", "Smallest group whose results are shown", "5"},
			{"themeTaxonomy", "Themes comments are mapped to", themes},
			{"languageSupport", "Languages analysed", "en"},
		},
	}
}

// --- riskScoring ---

var (
	riskSubjectTerms = []rules.Rule[string]{
		derive("transaction fraud risk", "fraud", "transaction"),
		derive("employee flight risk", "flight", "attrition", "retention", "employee"),
		derive("credit risk", "credit"),
		derive("vendor risk", "vendor", "supplier"),
	}
	riskFactorTerms = []rules.Rule[string]{
		derive("amount, velocity, location and device signals", "fraud", "transaction"),
		derive("tenure, pay ratio and engagement", "flight", "attrition", "employee"),
		derive("payment history and exposure", "credit"),
	}
	riskActionTerms = []rules.Rule[string]{
		derive("hold the transaction for review", "fraud", "transaction"),
		derive("schedule a stay conversation", "flight", "attrition", "employee"),
		derive("review the credit limit", "credit"),
	}
)

func synthRiskScoring(c Context) Parts {
	subject := c.Term("subject", riskSubjectTerms, "risk")
	factors := c.Term("factors", riskFactorTerms, "known risk factors")
	action := c.Term("action", riskActionTerms, "review the case")

	return Parts{
		Flow: []Step{
			step("1", System, objects.KeyEntity, "Assembles "+factors+" for each subject"),
			step("2", AI, objects.KeyRiskScore, "Computes a "+subject+" score with factor attribution").confident(),
			step("3", System, objects.KeyRiskScore, "Places the score in a band").branchPoint(),
			step("3a", System, objects.KeyRiskScore, "Logs the score").
				when("Score in the low band"),
			step("3b", System, objects.KeyRiskScore, "Adds the subject to a watchlist").
				when("Score in the medium band"),
			step("3c", System, objects.KeyNotification, "Alerts the owner to "+action).
				when("Score in the high band"),
			step("4", User, objects.KeyRiskScore, "Reviews the contributing factors and records the outcome"),
			step("5", System, objects.KeyRiskScore, "Recalibrates bands from recorded outcomes"),
		},
		Touchpoints: Touchpoints{
			HCM: []string{
				"Flight risk scoring",
				"Risk factor attribution",
				"Retention action suggestions",
			},
			Finance: []string{
				"Payment fraud scoring",
				"Vendor risk scoring",
				"Risk factor attribution",
			},
			Generic: []string{
				"Risk scoring",
				"Risk factor attribution",
				"Score calibration monitoring",
			},
		},
		Config: []ConfigNeed{
			{"bandThresholds", "Score boundaries for low, medium and high", "40/70"},
			{"highRiskAction", "What happens when a score is high", action},
			{"rescoreFrequency", "How often subjects are re-scored", "daily"},
			{"showFactors", "Show contributing factors with each score", "true"},
		},
	}
}
