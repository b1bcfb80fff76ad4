package delivery

import (
	"time"

	"github.com/inconshreveable/log15"
	"github.com/wtsi-hgi/seqdeliver/bundle"
	"github.com/wtsi-hgi/seqdeliver/store"
	"github.com/wtsi-hgi/seqdeliver/workflow"
)

const (
	testCaseID   = "fam42"
	testCaseName = "FamilyX"
	testCustomer = "cust000"
	testTicket   = "123456"
)

func quietLogger() log15.Logger {
	logger := log15.New()
	logger.SetHandler(log15.DiscardHandler())

	return logger
}

func testSample(id, name string, reads int64) *store.Sample {
	return &store.Sample{
		InternalID:   id,
		Name:         name,
		CustomerID:   testCustomer,
		Reads:        reads,
		Priority:     workflow.PriorityStandard,
		PrepCategory: workflow.PrepWGS,
		Application: store.Application{
			Tag:                    "WGSPCFC030",
			TargetReads:            40,
			PercentReadsGuaranteed: 75,
		},
	}
}

func testCase(w workflow.Workflow, dataDelivery string) *store.Case {
	return &store.Case{
		InternalID:   testCaseID,
		Name:         testCaseName,
		CustomerID:   testCustomer,
		Workflow:     w,
		DataDelivery: dataDelivery,
		Ticket:       testTicket,
		Priority:     workflow.PriorityStandard,
	}
}

func testLinks(samples ...*store.Sample) []*store.CaseSample {
	links := make([]*store.CaseSample, len(samples))

	for i, s := range samples {
		links[i] = &store.CaseSample{
			CaseID:   testCaseID,
			SampleID: s.InternalID,
			Sample:   s,
		}
	}

	return links
}

func testVersion(name string, files ...bundle.File) *bundle.Version {
	return &bundle.Version{
		Bundle:  name,
		Created: time.Unix(1735689600, 0),
		Files:   files,
	}
}

func allDeliverable(*store.Sample) bool { return true }
