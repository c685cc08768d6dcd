// Package objects holds the object-type model used to populate a workflow's
// entity list: the generic object table, domain-overlay merging into a
// frozen Registry, and keyword-based relevance extraction.
package objects

import "fmt"

// Key identifies an object type. Keys are shared between the generic table
// and domain overlays so an overlay can replace a generic definition.
type Key string

// Well-known object-type keys in the generic table.
const (
	KeyRequest        Key = "request"
	KeyApproval       Key = "approval"
	KeyEntity         Key = "entity"
	KeyAnomaly        Key = "anomaly"
	KeyTransaction    Key = "transaction"
	KeySchedule       Key = "schedule"
	KeyShift          Key = "shift"
	KeyTimeEntry      Key = "timeEntry"
	KeyInsight        Key = "insight"
	KeyDataSource     Key = "dataSource"
	KeySearchQuery    Key = "searchQuery"
	KeyConversation   Key = "conversation"
	KeyMessage        Key = "message"
	KeyNotification   Key = "notification"
	KeyDocument       Key = "document"
	KeyForecast       Key = "forecast"
	KeyRecommendation Key = "recommendation"
	KeyPolicy         Key = "policy"
	KeyFeedback       Key = "feedback"
	KeyRiskScore      Key = "riskScore"
)

// RelationKind is the type of a relationship between two object types.
type RelationKind string

const (
	HasMany   RelationKind = "has-many"
	HasOne    RelationKind = "has-one"
	BelongsTo RelationKind = "belongs-to"
	RelatesTo RelationKind = "relates-to"
	ReportsTo RelationKind = "reports-to"
)

// validKinds is the set of allowed relationship kinds.
var validKinds = map[RelationKind]bool{
	HasMany:   true,
	HasOne:    true,
	BelongsTo: true,
	RelatesTo: true,
	ReportsTo: true,
}

// ValidateKind returns an error if the relationship kind is not recognized.
func ValidateKind(k RelationKind) error {
	if !validKinds[k] {
		return fmt.Errorf("invalid relation kind %q: must be one of: has-many, has-one, belongs-to, relates-to, reports-to", k)
	}
	return nil
}

// Relationship is a typed edge from one object type to another.
// Target may name a key that no registry holds; see Registry.Dangling.
type Relationship struct {
	Kind        RelationKind `json:"kind" yaml:"kind"`
	Target      Key          `json:"target" yaml:"target"`
	Description string       `json:"description" yaml:"description"`
}

// ObjectType is a reusable entity definition.
type ObjectType struct {
	Key            Key            `json:"key" yaml:"-"`
	Name           string         `json:"name" yaml:"name"`
	Description    string         `json:"description" yaml:"description"`
	CoreFields     []string       `json:"core_fields" yaml:"core"`
	MetadataFields []string       `json:"metadata_fields" yaml:"metadata"`
	Actions        []string       `json:"actions" yaml:"actions"`
	Relationships  []Relationship `json:"relationships" yaml:"relationships"`
}

// Clone returns a deep copy so snapshots handed to callers cannot alias
// registry state.
func (o ObjectType) Clone() ObjectType {
	c := o
	c.CoreFields = append([]string(nil), o.CoreFields...)
	c.MetadataFields = append([]string(nil), o.MetadataFields...)
	c.Actions = append([]string(nil), o.Actions...)
	c.Relationships = append([]Relationship(nil), o.Relationships...)
	return c
}

// Table is a mutable object-type table keyed by Key. It only exists while
// a Registry is being built.
type Table map[Key]ObjectType

// Overlay is the part of a domain overlay the registry cares about.
type Overlay interface {
	OverlayName() string
	OverlayObjects() Table
}
