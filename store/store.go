/*******************************************************************************
 * Copyright (c) 2026 Genome Research Ltd.
 *
 * Authors:
 *   Sendu Bala <sb10@sanger.ac.uk>
 *
 * Permission is hereby granted, free of charge, to any person obtaining
 * a copy of this software and associated documentation files (the
 * "Software"), to deal in the Software without restriction, including
 * without limitation the rights to use, copy, modify, merge, publish,
 * distribute, sublicense, and/or sell copies of the Software, and to
 * permit persons to whom the Software is furnished to do so, subject to
 * the following conditions:
 *
 * The above copyright notice and this permission notice shall be included
 * in all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
 * EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
 * MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
 * IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY
 * CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
 * TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE
 * SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 ******************************************************************************/

// Package store gives read access to the facility's case and sample records,
// as created and maintained by the order intake and sequencing ingestion
// systems. Nothing in this module writes to these records.
package store

import "github.com/wtsi-hgi/seqdeliver/workflow"

// Error is the custom error type for the store package.
type Error string

const (
	// ErrCaseNotFound is returned when a case internal id is not known.
	ErrCaseNotFound = Error("case not found")
)

func (e Error) Error() string { return string(e) }

// Application describes the ordered application version a sample was
// sequenced under, carrying its read count thresholds.
type Application struct {
	// Tag is the facility's application tag, eg. "WGSPCFC030".
	Tag string

	// TargetReads is the read count the application aims to produce.
	TargetReads int64

	// PercentReadsGuaranteed is the percentage of TargetReads the facility
	// guarantees, and so the fraction a sample must reach to pass QC.
	PercentReadsGuaranteed int64

	// MinSequencingDepth is the minimum coverage depth for the application.
	MinSequencingDepth int

	// External is true when the customer sequenced the sample themselves;
	// such samples bypass in-house sequencing QC.
	External bool
}

// ExpectedReads is the read count a sample on this application must reach to
// pass standard sequencing QC.
func (a Application) ExpectedReads() int64 {
	return a.TargetReads * a.PercentReadsGuaranteed / 100
}

// Sample is one sequenced sample. Reads is never null; a sample with no
// sequencing metrics yet has Reads 0.
type Sample struct {
	InternalID   string
	Name         string
	CustomerID   string
	Reads        int64
	Priority     workflow.Priority
	PrepCategory workflow.PrepCategory
	Tumour       bool
	Application  Application
}

// Case is a unit of analysis grouping one or more samples.
type Case struct {
	InternalID   string
	Name         string
	CustomerID   string
	Workflow     workflow.Workflow
	DataDelivery string
	Ticket       string
	Priority     workflow.Priority
}

// Scopes parses the case's ordered data delivery in to scope tokens.
func (c *Case) Scopes() workflow.Scopes {
	return workflow.ParseScopes(c.DataDelivery)
}

// CaseSampleStatus is the pedigree status of a sample within a case.
type CaseSampleStatus uint8

const (
	StatusUnknown CaseSampleStatus = iota
	StatusAffected
	StatusUnaffected
)

// CaseSample links one sample in to one case, optionally carrying pedigree
// information. A (case, sample) pair appears at most once.
type CaseSample struct {
	CaseID   string
	SampleID string
	Status   CaseSampleStatus
	MotherID string
	FatherID string
	Sample   *Sample
}

// Store provides read access to case and sample records.
type Store interface {
	// CaseByInternalID returns the case with the given internal id, or
	// ErrCaseNotFound.
	CaseByInternalID(id string) (*Case, error)

	// CasesByTicket returns all cases ordered under the given ticket. An
	// unknown ticket returns an empty slice, not an error.
	CasesByTicket(ticket string) ([]*Case, error)

	// CaseSamples returns the sample links of the given case, in order, with
	// Sample populated.
	CaseSamples(caseID string) ([]*CaseSample, error)
}
