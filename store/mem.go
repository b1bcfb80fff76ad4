package store

// MemStore is an in-memory Store, used in tests and by tooling that already
// holds its records.
type MemStore struct {
	cases       map[string]*Case
	caseOrder   []string
	caseSamples map[string][]*CaseSample
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		cases:       make(map[string]*Case),
		caseSamples: make(map[string][]*CaseSample),
	}
}

// AddCase records the given case.
func (m *MemStore) AddCase(c *Case) {
	if _, ok := m.cases[c.InternalID]; !ok {
		m.caseOrder = append(m.caseOrder, c.InternalID)
	}

	m.cases[c.InternalID] = c
}

// AddCaseSample links the given sample in to the given case.
func (m *MemStore) AddCaseSample(caseID string, s *Sample, opts ...func(*CaseSample)) {
	cs := &CaseSample{
		CaseID:   caseID,
		SampleID: s.InternalID,
		Sample:   s,
	}

	for _, opt := range opts {
		opt(cs)
	}

	m.caseSamples[caseID] = append(m.caseSamples[caseID], cs)
}

// CaseByInternalID implements Store.
func (m *MemStore) CaseByInternalID(id string) (*Case, error) {
	c, ok := m.cases[id]
	if !ok {
		return nil, ErrCaseNotFound
	}

	return c, nil
}

// CasesByTicket implements Store.
func (m *MemStore) CasesByTicket(ticket string) ([]*Case, error) {
	var cases []*Case

	for _, id := range m.caseOrder {
		if c := m.cases[id]; c.Ticket == ticket {
			cases = append(cases, c)
		}
	}

	return cases, nil
}

// CaseSamples implements Store.
func (m *MemStore) CaseSamples(caseID string) ([]*CaseSample, error) {
	return m.caseSamples[caseID], nil
}
