package models

// IntegrationGroup maps an integration identity to its log records.
// IDs holds every identity in ascending order and drives iteration; the records of each
// identity are ordered by ascending date.
type IntegrationGroup struct {
	Kind    RecordKind
	IDs     []string
	Records map[string][]LogRecord
}

func NewIntegrationGroup(kind RecordKind) *IntegrationGroup {
	return &IntegrationGroup{
		Kind:    kind,
		IDs:     []string{},
		Records: make(map[string][]LogRecord),
	}
}

func (g *IntegrationGroup) Len() int {
	return len(g.IDs)
}

// Latest returns the most recent record of an identity.
func (g *IntegrationGroup) Latest(id string) (LogRecord, bool) {
	records := g.Records[id]
	if len(records) == 0 {
		return LogRecord{}, false
	}
	return records[len(records)-1], true
}

// Groupings is the result of partitioning a log sequence by integration identity.
type Groupings struct {
	Services     *IntegrationGroup
	Apps         *IntegrationGroup
	Unclassified []LogRecord
}

// Groups returns the identity groupings in report order: services, then apps.
func (g *Groupings) Groups() []*IntegrationGroup {
	return []*IntegrationGroup{g.Services, g.Apps}
}

// IdentityCount is the number of distinct identities across both groupings.
func (g *Groupings) IdentityCount() int {
	return g.Services.Len() + g.Apps.Len()
}
