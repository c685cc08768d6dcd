package workflow

import (
	"github.com/HendryAvila/flowsmith/internal/objects"
	"github.com/HendryAvila/flowsmith/internal/rules"
)

// Operational patterns: decisions and checks that run inside a business
// process.

// --- autoApproval ---

var (
	requestTypeTerms = []rules.Rule[string]{
		derive("time-off request", "pto", "vacation", "leave", "time off", "time-off"),
		derive("expense report", "expense", "reimburse"),
		derive("purchase requisition", "purchase", "requisition", "procure"),
		derive("access request", "access", "permission"),
		derive("overtime request", "overtime"),
		derive("timesheet", "timesheet", "timecard"),
	}
	criteriaTerms = []rules.Rule[string]{
		derive("team coverage, balance and policy rules", "coverage"),
		derive("policy limits and receipt checks", "expense", "receipt"),
		derive("budget availability and approval limits", "budget", "purchase"),
		derive("policy thresholds", "policy", "threshold", "limit"),
	}
	approverTerms = []rules.Rule[string]{
		derive("people manager", "pto", "leave", "vacation", "overtime", "employee"),
		derive("budget owner", "expense", "purchase", "budget"),
		derive("system owner", "access"),
	}
	recipientTerms = []rules.Rule[string]{
		derive("employee", "pto", "leave", "vacation", "employee"),
		derive("submitter", "expense", "purchase"),
	}
)

func synthAutoApproval(c Context) Parts {
	requestType := c.Term("requestType", requestTypeTerms, "request")
	criteria := c.Term("criteria", criteriaTerms, "configured approval criteria")
	approver := c.Term("approver", approverTerms, "approver")
	recipient := c.Term("recipient", recipientTerms, "requester")

	return Parts{
		Flow: []Step{
			step("1", User, objects.KeyRequest, "Submits a new "+requestType),
			step("2", System, objects.KeyEntity, "Validates required fields and loads the "+c.Entity()+" context"),
			step("3", AI, objects.KeyApproval, "Evaluates the "+requestType+" against "+criteria).confident(),
			step("4", System, objects.KeyApproval, "Decides the approval route from the evaluation").branchPoint(),
			step("4a", System, objects.KeyApproval, "Auto-approves and notifies the "+recipient).
				when("All criteria met and confidence at or above the auto-approval threshold"),
			step("4b", System, objects.KeyApproval, "Routes to the "+approver+" with the AI recommendation and reasons").
				when("Any criterion fails or confidence below the threshold"),
			step("5", System, objects.KeyRequest, "Records the decision, the rule that fired and the confidence in the audit trail"),
		},
		Touchpoints: Touchpoints{
			HCM: []string{
				"Leave balance and accrual validation",
				"Team coverage impact analysis",
				"Blackout period and policy rule evaluation",
				"Approval recommendation with rationale",
			},
			Finance: []string{
				"Policy limit rule evaluation",
				"Receipt validity check",
				"Duplicate expense detection",
				"Approval recommendation with rationale",
			},
			Generic: []string{
				"Policy rule evaluation",
				"Request eligibility check",
				"Approval recommendation with rationale",
			},
		},
		Config: []ConfigNeed{
			{"autoApprovalEnabled", "Turn automatic approval on or off per " + requestType + " type", "true"},
			{"confidenceThreshold", "Minimum confidence required to auto-approve", "0.85"},
			{"escalationApprover", "Who receives requests that are not auto-approved", approver},
			{"escalationTimeoutHours", "Hours before an unanswered escalation is re-routed", "48"},
			{"auditRetentionDays", "How long automated decisions are kept for audit", "365"},
		},
	}
}

// --- anomalyDetection ---

var (
	anomalySubjectTerms = []rules.Rule[string]{
		derive("transactions", "transaction", "payment", "fraud"),
		derive("timecard entries", "timecard", "punch", "clock", "attendance"),
		derive("expense claims", "expense"),
		derive("journal entries", "journal", "ledger"),
		derive("payroll results", "payroll"),
	}
	detectionTerms = []rules.Rule[string]{
		derive("suspected fraud patterns", "fraud"),
		derive("missing or incomplete records", "missing"),
		derive("data errors", "error"),
		derive("unusual values and outliers", "unusual", "outlier", "anomal"),
	}
	reviewerTerms = []rules.Rule[string]{
		derive("fraud analyst", "fraud"),
		derive("payroll administrator", "payroll", "timecard", "punch"),
		derive("controller", "journal", "ledger"),
	}
)

func synthAnomalyDetection(c Context) Parts {
	subject := c.Term("subject", anomalySubjectTerms, "records")
	detection := c.Term("detection", detectionTerms, "deviations from the expected pattern")
	reviewer := c.Term("reviewer", reviewerTerms, "reviewer")

	return Parts{
		Flow: []Step{
			step("1", System, objects.KeyTransaction, "Ingests new "+subject+" as they are created"),
			step("2", AI, objects.KeyAnomaly, "Scores each record against the learned baseline").confident(),
			step("3", AI, objects.KeyAnomaly, "Explains flagged items in terms of "+detection).confident(),
			step("4", System, objects.KeyAnomaly, "Evaluates severity of the anomaly score").branchPoint(),
			step("4a", System, objects.KeyTransaction, "Lets the record continue unchanged").
				when("Score below the alert threshold"),
			step("4b", System, objects.KeyNotification, "Queues the item for the "+reviewer+" with the explanation").
				when("Score above the alert threshold"),
			step("4c", System, objects.KeyNotification, "Holds the record and alerts the "+reviewer+" immediately").
				when("Score in the critical band"),
			step("5", User, objects.KeyAnomaly, "Confirms or dismisses the anomaly with a reason"),
			step("6", System, objects.KeyAnomaly, "Feeds the decision back to tune the baseline"),
		},
		Touchpoints: Touchpoints{
			HCM: []string{
				"Missing punch detection",
				"Overtime outlier detection",
				"Payroll variance analysis",
				"Anomaly explanation in plain language",
			},
			Finance: []string{
				"Duplicate payment detection",
				"Unusual journal entry detection",
				"Vendor bank detail change monitoring",
				"Anomaly explanation in plain language",
			},
			Generic: []string{
				"Statistical outlier detection",
				"Anomaly explanation in plain language",
				"Reviewer feedback learning",
			},
		},
		Config: []ConfigNeed{
			{"alertThreshold", "Anomaly score above which items are queued for review", "0.7"},
			{"criticalThreshold", "Anomaly score above which records are held", "0.95"},
			{"reviewer", "Who reviews flagged " + subject, reviewer},
			{"baselineWindowDays", "History used to learn normal behaviour", "90"},
			{"feedbackLearning", "Use reviewer decisions to tune the baseline", "true"},
		},
	}
}

// --- intelligentScheduling ---

var (
	resourceTerms = []rules.Rule[string]{
		derive("nurses", "nurse", "clinic", "hospital"),
		derive("store associates", "store", "retail"),
		derive("agents", "call centre", "call center", "contact centre", "agent"),
		derive("employees", "employee", "staff", "shift", "roster"),
		derive("close tasks", "close", "month-end"),
	}
	constraintTerms = []rules.Rule[string]{
		derive("availability, skills and labour rules", "shift", "roster", "staff"),
		derive("task dependencies and deadlines", "task", "deadline"),
		derive("room and attendee availability", "meeting", "calendar"),
	}
	demandTerms = []rules.Rule[string]{
		derive("forecast demand", "forecast", "demand", "traffic"),
		derive("coverage targets", "coverage"),
		derive("the calendar of deadlines", "calendar", "deadline"),
	}
)

func synthScheduling(c Context) Parts {
	resource := c.Term("resource", resourceTerms, "resources")
	constraints := c.Term("constraints", constraintTerms, "availability and business rules")
	demand := c.Term("demand", demandTerms, "expected demand")

	return Parts{
		Flow: []Step{
			step("1", System, objects.KeyForecast, "Collects "+demand+" for the scheduling period"),
			step("2", System, objects.KeyEntity, "Loads availability and preferences for "+resource),
			step("3", AI, objects.KeySchedule, "Generates a draft schedule that honours "+constraints).confident(),
			step("4", User, objects.KeySchedule, "Reviews the draft schedule").branchPoint(),
			step("4a", System, objects.KeyShift, "Publishes shifts and notifies "+resource).
				when("Manager accepts the draft"),
			step("4b", AI, objects.KeyShift, "Re-checks constraints after manual edits and flags conflicts").
				when("Manager edits the draft").confident(),
			step("5", AI, objects.KeyShift, "Suggests replacements when someone calls out").confident(),
		},
		Touchpoints: Touchpoints{
			HCM: []string{
				"Demand-based shift generation",
				"Labour law and rest rule validation",
				"Skill and availability matching",
				"Call-out replacement suggestions",
			},
			Finance: []string{
				"Close task sequencing",
				"Reviewer capacity balancing",
				"Deadline risk prediction",
			},
			Generic: []string{
				"Constraint-based schedule generation",
				"Conflict detection",
				"Replacement suggestions",
			},
		},
		Config: []ConfigNeed{
			{"schedulingHorizonDays", "How far ahead schedules are generated", "14"},
			{"publishLeadTimeDays", "Minimum notice before a schedule is published", "7"},
			{"hardConstraints", "Rules the generator may never break", constraints},
			{"optimisationGoal", "What the generator optimises for", "coverage then cost"},
		},
	}
}

// --- complianceMonitoring ---

var (
	regulationTerms = []rules.Rule[string]{
		derive("labour law break and overtime rules", "break", "labor", "labour", "overtime"),
		derive("SOX internal controls", "sox", "control"),
		derive("data privacy regulation", "privacy", "gdpr", "pii"),
		derive("expense policy", "expense"),
		derive("internal policy", "policy"),
	}
	evidenceTerms = []rules.Rule[string]{
		derive("timecard and break records", "break", "timecard", "overtime"),
		derive("approval logs and access records", "control", "sox", "access"),
		derive("transaction history", "payment", "transaction", "expense"),
	}
	ownerTerms = []rules.Rule[string]{
		derive("HR compliance lead", "labor", "labour", "break", "employee"),
		derive("internal audit", "sox", "audit", "control"),
		derive("data protection officer", "privacy", "gdpr"),
	}
)

func synthCompliance(c Context) Parts {
	regulation := c.Term("regulation", regulationTerms, "applicable rules")
	evidence := c.Term("evidence", evidenceTerms, "activity records")
	owner := c.Term("owner", ownerTerms, "compliance owner")

	return Parts{
		Flow: []Step{
			step("1", System, objects.KeyTransaction, "Captures "+evidence+" continuously"),
			step("2", AI, objects.KeyPolicy, "Checks activity against "+regulation).confident(),
			step("3", System, objects.KeyPolicy, "Evaluates the check result").branchPoint(),
			step("3a", System, objects.KeyPolicy, "Records a passing check with its evidence").
				when("No violation found"),
			step("3b", System, objects.KeyNotification, "Opens a case for the "+owner+" with the evidence attached").
				when("Potential violation found"),
			step("4", User, objects.KeyAnomaly, "Confirms or dismisses the violation and records the remediation"),
			step("5", System, objects.KeyDocument, "Compiles an evidence pack for auditors"),
		},
		Touchpoints: Touchpoints{
			HCM: []string{
				"Meal and rest break rule checking",
				"Overtime limit monitoring",
				"Policy change impact analysis",
			},
			Finance: []string{
				"Segregation of duties monitoring",
				"Approval control testing",
				"Policy change impact analysis",
			},
			Generic: []string{
				"Continuous rule checking",
				"Violation explanation",
				"Evidence collection",
			},
		},
		Config: []ConfigNeed{
			{"ruleSetVersion", "Version of the rule set checks run against", "latest"},
			{"caseOwner", "Who receives potential violations", owner},
			{"checkFrequency", "How often activity is checked", "daily"},
			{"evidenceRetentionYears", "How long evidence is retained", "7"},
		},
	}
}
