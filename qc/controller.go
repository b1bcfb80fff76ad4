package qc

import (
	"github.com/wtsi-hgi/seqdeliver/store"
	"github.com/wtsi-hgi/seqdeliver/workflow"
)

// CaseRule is one case-level QC rule.
type CaseRule func(*store.Case, []*store.CaseSample) Verdict

// caseRuleImpls binds the workflow package's rule ids to their
// implementations. Every QCRule constant must appear here.
var caseRuleImpls = map[workflow.QCRule]CaseRule{ //nolint:gochecknoglobals
	workflow.QCStandardCaseReads: CaseStandardReads,
	workflow.QCExpressCaseReads:  CaseExpressReads,
	workflow.QCAnySampleReads:    AnySampleHasReads,
}

// Controller evaluates sequencing QC for cases and samples against the
// per-workflow rule tables.
type Controller struct {
	store store.Store
}

// NewController creates a Controller reading case samples from the given
// store.
func NewController(s store.Store) *Controller {
	return &Controller{store: s}
}

// CasePasses returns true if the case passes sequencing QC: the workflow's
// configured rules are tried in order and the first one that passes wins. A
// case whose rules all fail or do not apply fails QC. Errors for a workflow
// with no configured QC rules.
func (c *Controller) CasePasses(cse *store.Case) (bool, error) {
	rules, err := workflow.QCRules(cse.Workflow)
	if err != nil {
		return false, err
	}

	links, err := c.store.CaseSamples(cse.InternalID)
	if err != nil {
		return false, err
	}

	for _, rule := range rules {
		if caseRuleImpls[rule](cse, links).Passed() {
			return true, nil
		}
	}

	return false, nil
}

// SamplePasses returns true if the sample passes sequencing QC on its own.
func (c *Controller) SamplePasses(s *store.Sample) bool {
	return SampleSequencingQC(s)
}
