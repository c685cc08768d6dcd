package objects

// GenericTable returns a fresh copy of the generic object-type table.
// Callers own the returned map.
func GenericTable() Table {
	t := make(Table, len(genericObjects))
	for _, o := range genericObjects {
		t[o.Key] = o.Clone()
	}
	return t
}

var genericObjects = []ObjectType{
	{
		Key:            KeyRequest,
		Name:           "Request",
		Description:    "A submission asking for something to be granted, changed, or processed.",
		CoreFields:     []string{"requestType", "requestedBy", "details", "amount", "startDate", "endDate"},
		MetadataFields: []string{"status", "submittedAt", "priority", "channel"},
		Actions:        []string{"submit", "withdraw", "amend", "approve", "reject", "escalate"},
		Relationships: []Relationship{
			{Kind: BelongsTo, Target: KeyEntity, Description: "Submitted by an entity"},
			{Kind: HasMany, Target: KeyApproval, Description: "Collects one or more approval decisions"},
			{Kind: RelatesTo, Target: KeyPolicy, Description: "Evaluated against applicable policies"},
		},
	},
	{
		Key:            KeyApproval,
		Name:           "Approval",
		Description:    "A decision record on a request, made by a person or by an automated rule.",
		CoreFields:     []string{"decision", "decidedBy", "rationale"},
		MetadataFields: []string{"decidedAt", "automated", "confidence", "overriddenBy"},
		Actions:        []string{"approve", "reject", "delegate", "override"},
		Relationships: []Relationship{
			{Kind: BelongsTo, Target: KeyRequest, Description: "Decides a single request"},
			{Kind: RelatesTo, Target: KeyEntity, Description: "Made by an approver"},
		},
	},
	{
		Key:            KeyEntity,
		Name:           "Entity",
		Description:    "The primary business subject the concept operates on (person, account, asset).",
		CoreFields:     []string{"name", "identifier", "type", "owner"},
		MetadataFields: []string{"createdAt", "updatedAt", "status", "tags"},
		Actions:        []string{"view", "update", "assign", "archive"},
		Relationships: []Relationship{
			{Kind: HasMany, Target: KeyRequest, Description: "Raises requests"},
			{Kind: HasMany, Target: KeyTransaction, Description: "Participates in transactions"},
			{Kind: ReportsTo, Target: KeyEntity, Description: "Optional hierarchy between entities"},
		},
	},
	{
		Key:            KeyAnomaly,
		Name:           "Anomaly",
		Description:    "A detected deviation from expected behaviour that may need review.",
		CoreFields:     []string{"anomalyType", "severity", "detectedValue", "expectedRange", "explanation"},
		MetadataFields: []string{"detectedAt", "confidence", "reviewStatus", "reviewedBy"},
		Actions:        []string{"review", "dismiss", "escalate", "resolve"},
		Relationships: []Relationship{
			{Kind: BelongsTo, Target: KeyTransaction, Description: "Raised on a specific record"},
			{Kind: HasOne, Target: KeyNotification, Description: "Triggers an alert"},
		},
	},
	{
		Key:            KeyTransaction,
		Name:           "Transaction",
		Description:    "A recorded business event with a value, a time, and participants.",
		CoreFields:     []string{"transactionId", "amount", "currency", "counterparty", "category"},
		MetadataFields: []string{"postedAt", "source", "status", "batchId"},
		Actions:        []string{"view", "flag", "reverse", "annotate"},
		Relationships: []Relationship{
			{Kind: BelongsTo, Target: KeyEntity, Description: "Owned by an entity"},
			{Kind: HasMany, Target: KeyAnomaly, Description: "May carry anomalies"},
		},
	},
	{
		Key:            KeySchedule,
		Name:           "Schedule",
		Description:    "A time-boxed plan that allocates people or resources to slots.",
		CoreFields:     []string{"period", "location", "coverageTarget", "slots"},
		MetadataFields: []string{"publishedAt", "version", "generatedBy"},
		Actions:        []string{"generate", "publish", "adjust", "lock"},
		Relationships: []Relationship{
			{Kind: HasMany, Target: KeyShift, Description: "Composed of shifts"},
			{Kind: RelatesTo, Target: KeyForecast, Description: "Driven by demand forecasts"},
		},
	},
	{
		Key:            KeyShift,
		Name:           "Shift",
		Description:    "A single assignable block of work time.",
		CoreFields:     []string{"start", "end", "role", "assignee"},
		MetadataFields: []string{"status", "swapRequested", "overtime"},
		Actions:        []string{"assign", "swap", "drop", "confirm"},
		Relationships: []Relationship{
			{Kind: BelongsTo, Target: KeySchedule, Description: "Part of a schedule"},
			{Kind: RelatesTo, Target: KeyEntity, Description: "Worked by an entity"},
		},
	},
	{
		Key:            KeyTimeEntry,
		Name:           "Time Entry",
		Description:    "Recorded working time for a person and a period.",
		CoreFields:     []string{"worker", "date", "hours", "project", "payCode"},
		MetadataFields: []string{"submittedAt", "approvedAt", "source", "exceptions"},
		Actions:        []string{"record", "correct", "submit", "approve"},
		Relationships: []Relationship{
			{Kind: BelongsTo, Target: KeyEntity, Description: "Logged by an entity"},
			{Kind: RelatesTo, Target: KeyShift, Description: "Compared against the scheduled shift"},
		},
	},
	{
		Key:            KeyInsight,
		Name:           "Insight",
		Description:    "A generated finding that summarises data and suggests an action.",
		CoreFields:     []string{"headline", "evidence", "impact", "suggestedAction"},
		MetadataFields: []string{"generatedAt", "confidence", "audience", "expiresAt"},
		Actions:        []string{"view", "share", "dismiss", "act"},
		Relationships: []Relationship{
			{Kind: HasMany, Target: KeyDataSource, Description: "Derived from data sources"},
			{Kind: RelatesTo, Target: KeyEntity, Description: "About an entity"},
		},
	},
	{
		Key:            KeyDataSource,
		Name:           "Data Source",
		Description:    "A system of record or feed the concept reads from.",
		CoreFields:     []string{"system", "domain", "refreshCadence", "owner"},
		MetadataFields: []string{"lastSyncedAt", "recordCount", "qualityScore"},
		Actions:        []string{"connect", "sync", "map", "disconnect"},
		Relationships: []Relationship{
			{Kind: HasMany, Target: KeyInsight, Description: "Feeds insights"},
		},
	},
	{
		Key:            KeySearchQuery,
		Name:           "Search Query",
		Description:    "A user's information request and the ranked results returned for it.",
		CoreFields:     []string{"queryText", "filters", "results", "selectedResult"},
		MetadataFields: []string{"askedAt", "latencyMs", "resultCount"},
		Actions:        []string{"search", "refine", "open", "save"},
		Relationships: []Relationship{
			{Kind: RelatesTo, Target: KeyEntity, Description: "Returns matching entities"},
		},
	},
	{
		Key:            KeyConversation,
		Name:           "Conversation",
		Description:    "A multi-turn exchange between a user and an assistant.",
		CoreFields:     []string{"topic", "participants", "messages", "outcome"},
		MetadataFields: []string{"startedAt", "endedAt", "channel", "handedOff"},
		Actions:        []string{"start", "reply", "handoff", "close"},
		Relationships: []Relationship{
			{Kind: HasMany, Target: KeyMessage, Description: "Made of messages"},
			{Kind: RelatesTo, Target: KeyEntity, Description: "About an entity"},
		},
	},
	{
		Key:            KeyMessage,
		Name:           "Message",
		Description:    "A single turn within a conversation.",
		CoreFields:     []string{"author", "body", "citations"},
		MetadataFields: []string{"sentAt", "role", "feedback"},
		Actions:        []string{"send", "edit", "rate"},
		Relationships: []Relationship{
			{Kind: BelongsTo, Target: KeyConversation, Description: "Part of a conversation"},
		},
	},
	{
		Key:            KeyNotification,
		Name:           "Notification",
		Description:    "An outbound message telling someone that something needs attention.",
		CoreFields:     []string{"recipient", "subject", "body", "link"},
		MetadataFields: []string{"sentAt", "channel", "readAt"},
		Actions:        []string{"send", "acknowledge", "snooze"},
		Relationships: []Relationship{
			{Kind: RelatesTo, Target: KeyEntity, Description: "Addressed to an entity"},
		},
	},
	{
		Key:            KeyDocument,
		Name:           "Document",
		Description:    "An uploaded file whose contents are extracted into structured fields.",
		CoreFields:     []string{"fileName", "documentType", "extractedFields", "pages"},
		MetadataFields: []string{"uploadedAt", "uploadedBy", "extractionConfidence"},
		Actions:        []string{"upload", "extract", "verify", "attach"},
		Relationships: []Relationship{
			{Kind: BelongsTo, Target: KeyEntity, Description: "Submitted for an entity"},
			{Kind: RelatesTo, Target: KeyTransaction, Description: "Backs a transaction"},
		},
	},
	{
		Key:            KeyForecast,
		Name:           "Forecast",
		Description:    "A projected value over a future horizon with an uncertainty band.",
		CoreFields:     []string{"metric", "horizon", "projectedValues", "lowerBound", "upperBound"},
		MetadataFields: []string{"generatedAt", "modelVersion", "accuracy"},
		Actions:        []string{"generate", "compare", "adjust", "publish"},
		Relationships: []Relationship{
			{Kind: HasMany, Target: KeyDataSource, Description: "Trained on historical data"},
		},
	},
	{
		Key:            KeyRecommendation,
		Name:           "Recommendation",
		Description:    "A ranked suggestion offered to a user, with the reason it was chosen.",
		CoreFields:     []string{"item", "rank", "reason"},
		MetadataFields: []string{"shownAt", "accepted", "feedback"},
		Actions:        []string{"show", "accept", "dismiss"},
		Relationships: []Relationship{
			{Kind: RelatesTo, Target: KeyEntity, Description: "Targeted at an entity"},
		},
	},
	{
		Key:            KeyPolicy,
		Name:           "Policy",
		Description:    "A business rule or regulation that decisions must respect.",
		CoreFields:     []string{"policyName", "conditions", "limits", "effectiveDate"},
		MetadataFields: []string{"owner", "version", "lastReviewedAt"},
		Actions:        []string{"define", "update", "retire"},
		Relationships: []Relationship{
			{Kind: RelatesTo, Target: KeyRequest, Description: "Governs requests"},
		},
	},
	{
		Key:            KeyFeedback,
		Name:           "Feedback",
		Description:    "Free-text or rated input collected from people.",
		CoreFields:     []string{"source", "text", "rating", "topic"},
		MetadataFields: []string{"collectedAt", "sentiment", "anonymous"},
		Actions:        []string{"collect", "tag", "respond"},
		Relationships: []Relationship{
			{Kind: BelongsTo, Target: KeyEntity, Description: "Given by an entity"},
		},
	},
	{
		Key:            KeyRiskScore,
		Name:           "Risk Score",
		Description:    "A numeric risk estimate with the factors that produced it.",
		CoreFields:     []string{"subject", "score", "factors", "band"},
		MetadataFields: []string{"scoredAt", "modelVersion", "overridden"},
		Actions:        []string{"calculate", "review", "override"},
		Relationships: []Relationship{
			{Kind: BelongsTo, Target: KeyEntity, Description: "Scores an entity"},
			{Kind: RelatesTo, Target: KeyTransaction, Description: "Informed by transactions"},
		},
	},
}
