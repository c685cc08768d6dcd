package workflow

import (
	"github.com/HendryAvila/flowsmith/internal/objects"
	"github.com/HendryAvila/flowsmith/internal/rules"
)

// Interactive patterns: a person is in the loop for every run.

// --- conversationalAssistant ---

var (
	topicTerms = []rules.Rule[string]{
		derive("benefits and leave", "benefit", "leave", "pto", "vacation"),
		derive("payroll and pay slips", "payroll", "pay slip", "payslip", "salary"),
		derive("expense policy", "expense", "reimburs"),
		derive("company policies", "policy", "policies"),
	}
	sourceTerms = []rules.Rule[string]{
		derive("the policy handbook and the user's own records", "policy", "benefit", "leave"),
		derive("the ledger and the expense policy", "expense", "payment"),
	}
	handoffTerms = []rules.Rule[string]{
		derive("HR service centre", "hr", "benefit", "leave", "payroll"),
		derive("accounts payable team", "expense", "invoice", "payment"),
		derive("IT help desk", "it ", "laptop", "password"),
	}
)

func synthAssistant(c Context) Parts {
	topic := c.Term("topic", topicTerms, "everyday questions")
	sources := c.Term("sources", sourceTerms, "approved knowledge sources")
	handoff := c.Term("handoff", handoffTerms, "support team")

	return Parts{
		Flow: []Step{
			step("1", User, objects.KeyConversation, "Asks a question about "+topic),
			step("2", AI, objects.KeyMessage, "Interprets the intent and the entities mentioned").confident(),
			step("3", System, objects.KeyDataSource, "Retrieves content from "+sources+" within the user's permissions"),
			step("4", AI, objects.KeyMessage, "Drafts a grounded answer").branchPoint().confident(),
			step("4a", AI, objects.KeyMessage, "Responds with the answer and its sources").
				when("Answer found with high confidence"),
			step("4b", AI, objects.KeyMessage, "Asks a clarifying question").
				when("Question is ambiguous"),
			step("4c", System, objects.KeyConversation, "Hands off to the "+handoff+" with the transcript").
				when("Out of scope or low confidence"),
			step("5", User, objects.KeyFeedback, "Rates the answer"),
		},
		Touchpoints: Touchpoints{
			HCM: []string{
				"Natural language policy question answering",
				"Personal balance and payslip lookup",
				"Handoff to HR case management",
			},
			Finance: []string{
				"Natural language policy question answering",
				"Payment status lookup",
				"Handoff to finance case management",
			},
			Generic: []string{
				"Natural language question answering",
				"Source citation",
				"Handoff to a human agent",
			},
		},
		Config: []ConfigNeed{
			{"knowledgeSources", "Content the assistant may answer from", sources},
			{"handoffQueue", "Where unanswered conversations go", handoff},
			{"answerConfidenceThreshold", "Minimum confidence to answer without handoff", "0.75"},
			{"transcriptRetentionDays", "How long conversations are kept", "90"},
		},
	}
}

// --- documentIntelligence ---

var (
	documentTypeTerms = []rules.Rule[string]{
		derive("vendor invoices", "invoice"),
		derive("expense receipts", "receipt"),
		derive("onboarding documents", "onboard", "new hire", "new-hire"),
		derive("contracts", "contract"),
		derive("resumes", "resume", "cv"),
	}
	fieldTerms = []rules.Rule[string]{
		derive("invoice number, vendor, dates, lines and totals", "invoice"),
		derive("merchant, date, amount and tax", "receipt"),
		derive("name, identity number and tax details", "onboard", "new hire", "new-hire"),
		derive("parties, dates and obligations", "contract"),
	}
	destinationTerms = []rules.Rule[string]{
		derive("accounts payable ledger", "invoice"),
		derive("expense report", "receipt"),
		derive("employee record", "onboard", "new hire", "new-hire", "employee"),
	}
)

func synthDocuments(c Context) Parts {
	docType := c.Term("documentType", documentTypeTerms, "documents")
	fields := c.Term("fields", fieldTerms, "key fields")
	destination := c.Term("destination", destinationTerms, "target system")

	return Parts{
		Flow: []Step{
			step("1", User, objects.KeyDocument, "Uploads "+docType),
			step("2", AI, objects.KeyDocument, "Classifies the document and checks image quality").confident(),
			step("3", AI, objects.KeyDocument, "Extracts "+fields).confident(),
			step("4", System, objects.KeyDocument, "Validates extracted values against reference data").branchPoint(),
			step("4a", System, objects.KeyTransaction, "Posts the values to the "+destination).
				when("All fields valid and above the confidence threshold"),
			step("4b", User, objects.KeyDocument, "Verifies the highlighted low-confidence fields").
				when("Any field invalid or below the confidence threshold"),
			step("5", System, objects.KeyDocument, "Stores the document with an extraction audit trail"),
		},
		Touchpoints: Touchpoints{
			HCM: []string{
				"Identity document data extraction",
				"Document expiry tracking",
				"Field confidence highlighting",
			},
			Finance: []string{
				"Invoice data extraction",
				"Purchase order matching",
				"Field confidence highlighting",
			},
			Generic: []string{
				"Document classification",
				"Field extraction",
				"Field confidence highlighting",
			},
		},
		Config: []ConfigNeed{
			{"fieldConfidenceThreshold", "Minimum confidence to accept a field without review", "0.9"},
			{"destination", "Where validated values are posted", destination},
			{"supportedFormats", "Accepted file formats", "pdf, jpg, png"},
			{"retentionDays", "How long source documents are kept", "2555"},
		},
	}
}

// --- smartRecommendation ---

var (
	itemTerms = []rules.Rule[string]{
		derive("learning courses", "course", "learning", "training"),
		derive("open roles", "job", "role", "career"),
		derive("general ledger codes", "gl ", "ledger", "coding"),
		derive("products", "product"),
	}
	signalTerms = []rules.Rule[string]{
		derive("role, skills and career goals", "course", "learning", "career", "skill"),
		derive("vendor history and prior coding", "ledger", "coding", "invoice"),
	}
)

func synthRecommendation(c Context) Parts {
	item := c.Term("item", itemTerms, "options")
	signals := c.Term("signals", signalTerms, "past behaviour and profile data")
	audience := c.Term("audience", audienceTerms, "users")

	return Parts{
		Flow: []Step{
			step("1", System, objects.KeyEntity, "Builds a profile from "+signals),
			step("2", AI, objects.KeyRecommendation, "Ranks candidate "+item).confident(),
			step("3", AI, objects.KeyRecommendation, "Attaches the reason behind each suggestion").confident(),
			step("4", User, objects.KeyRecommendation, "Reviews the suggestions ("+audience+")").branchPoint(),
			step("4a", System, objects.KeyRecommendation, "Applies the choice and records the acceptance").
				when("User accepts a suggestion"),
			step("4b", System, objects.KeyRecommendation, "Records the dismissal and its reason").
				when("User dismisses a suggestion"),
			step("5", AI, objects.KeyRecommendation, "Updates rankings from accept and dismiss signals"),
		},
		Touchpoints: Touchpoints{
			HCM: []string{
				"Skill gap based course recommendations",
				"Internal mobility suggestions",
				"Recommendation explanations",
			},
			Finance: []string{
				"GL coding suggestions",
				"Approver suggestions",
				"Recommendation explanations",
			},
			Generic: []string{
				"Personalized ranking",
				"Recommendation explanations",
				"Feedback learning",
			},
		},
		Config: []ConfigNeed{
			{"maxSuggestions", "How many suggestions are shown at once", "5"},
			{"explanationsEnabled", "Show the reason behind each suggestion", "true"},
			{"coldStartStrategy", "What new users see before signals exist", "popular in role"},
		},
	}
}

// --- intelligentSearch ---

var (
	corpusTerms = []rules.Rule[string]{
		derive("employee profiles and skills", "employee", "people", "skill", "candidate"),
		derive("transactions and documents", "payment", "transaction", "invoice"),
		derive("policies and knowledge articles", "policy", "article", "knowledge"),
	}
	filterTerms = []rules.Rule[string]{
		derive("location, department and skills", "employee", "people", "skill"),
		derive("vendor, period and amount", "payment", "transaction", "invoice"),
	}
)

func synthSearch(c Context) Parts {
	corpus := c.Term("corpus", corpusTerms, "business records")
	filters := c.Term("filters", filterTerms, "common attributes")

	return Parts{
		Flow: []Step{
			step("1", User, objects.KeySearchQuery, "Describes what they are looking for across "+corpus),
			step("2", AI, objects.KeySearchQuery, "Extracts intent and filters such as "+filters).confident(),
			step("3", System, objects.KeyEntity, "Retrieves candidates the user is permitted to see"),
			step("4", AI, objects.KeySearchQuery, "Ranks results by relevance").branchPoint().confident(),
			step("4a", System, objects.KeySearchQuery, "Shows ranked results with matches highlighted").
				when("Results found"),
			step("4b", AI, objects.KeySearchQuery, "Suggests a broader or corrected query").
				when("No results found"),
			step("5", User, objects.KeySearchQuery, "Refines the filters or opens a record"),
		},
		Touchpoints: Touchpoints{
			HCM: []string{
				"Skill and certification search",
				"Natural language query understanding",
				"Semantic result ranking",
			},
			Finance: []string{
				"Transaction search by description",
				"Natural language query understanding",
				"Semantic result ranking",
			},
			Generic: []string{
				"Natural language query understanding",
				"Semantic result ranking",
				"Query suggestions",
			},
		},
		Config: []ConfigNeed{
			{"searchableSources", "Sources included in the index", corpus},
			{"indexRefreshMinutes", "How often the index is refreshed", "15"},
			{"resultsPerPage", "Results shown per page", "20"},
		},
	}
}

// --- generic fallback ---

func synthGeneric(c Context) Parts {
	return Parts{
		Flow: []Step{
			step("1", User, objects.KeyEntity, "Describes the task or starts the process"),
			step("2", System, objects.KeyDataSource, "Gathers the relevant data"),
			step("3", AI, objects.KeyInsight, "Analyses the data and proposes an outcome").confident(),
			step("4", User, objects.KeyEntity, "Reviews and confirms the outcome"),
		},
		Touchpoints: Touchpoints{
			HCM: []string{
				"Workforce data analysis",
				"Outcome recommendation with rationale",
			},
			Finance: []string{
				"Financial data analysis",
				"Outcome recommendation with rationale",
			},
			Generic: []string{
				"Data analysis",
				"Outcome recommendation with rationale",
			},
		},
		Config: []ConfigNeed{
			{"humanReviewRequired", "Require confirmation before outcomes are applied", "true"},
			{"auditLogging", "Record every AI-proposed outcome", "true"},
		},
	}
}
