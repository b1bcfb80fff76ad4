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

// Package qc decides whether a sample's or case's sequencing output is
// sufficient to proceed to analysis and delivery, based on read counts,
// priority tier, prep category and workflow.
package qc

import (
	"github.com/wtsi-hgi/seqdeliver/store"
	"github.com/wtsi-hgi/seqdeliver/workflow"
)

// Verdict is the outcome of applying one QC rule. Rules guard their own
// applicability, so "did not apply" stays distinguishable from "failed".
type Verdict uint8

const (
	VerdictNotApplicable Verdict = iota
	VerdictPass
	VerdictFail
)

// Passed returns true only for VerdictPass; a rule that did not apply did not
// pass.
func (v Verdict) Passed() bool {
	return v == VerdictPass
}

func boolVerdict(pass bool) Verdict {
	if pass {
		return VerdictPass
	}

	return VerdictFail
}

// ExpressReadsThreshold is the relaxed read count an express sample must
// reach: half the application's target, rounded half up.
func ExpressReadsThreshold(targetReads int64) int64 {
	return (targetReads + 1) / 2
}

// ReadyMadeLibraryHasReads applies to ready-made-library samples only, which
// pass on any reads at all. Other prep categories do not apply.
func ReadyMadeLibraryHasReads(s *store.Sample) Verdict {
	if s.PrepCategory != workflow.PrepReadyMadeLibrary {
		return VerdictNotApplicable
	}

	return boolVerdict(s.Reads > 0)
}

// SampleHasEnoughReads passes when the sample reached its application's
// expected read count.
func SampleHasEnoughReads(s *store.Sample) Verdict {
	return boolVerdict(s.Reads >= s.Application.ExpectedReads())
}

// ExpressSampleHasEnoughReads passes when the sample reached half its
// application's target read count.
func ExpressSampleHasEnoughReads(s *store.Sample) Verdict {
	return boolVerdict(s.Reads >= ExpressReadsThreshold(s.Application.TargetReads))
}

// SampleSequencingQC is the overall per-sample sequencing QC decision:
// express samples are held to the half-target threshold, ready-made-library
// samples to any reads at all, and everything else to the application's
// expected read count.
func SampleSequencingQC(s *store.Sample) bool {
	if s.Priority == workflow.PriorityExpress {
		return ExpressSampleHasEnoughReads(s).Passed()
	}

	if s.PrepCategory == workflow.PrepReadyMadeLibrary {
		return s.Reads > 0
	}

	return SampleHasEnoughReads(s).Passed()
}

// CaseStandardReads applies to non-express cases, which pass when every
// sample individually reached its expected read count.
func CaseStandardReads(c *store.Case, links []*store.CaseSample) Verdict {
	if c.Priority == workflow.PriorityExpress {
		return VerdictNotApplicable
	}

	for _, link := range links {
		if !SampleHasEnoughReads(link.Sample).Passed() {
			return VerdictFail
		}
	}

	return VerdictPass
}

// CaseExpressReads applies to express cases, which pass when every sample
// reached half its target read count.
func CaseExpressReads(c *store.Case, links []*store.CaseSample) Verdict {
	if c.Priority != workflow.PriorityExpress {
		return VerdictNotApplicable
	}

	for _, link := range links {
		if !ExpressSampleHasEnoughReads(link.Sample).Passed() {
			return VerdictFail
		}
	}

	return VerdictPass
}

// AnySampleHasReads passes when any sample in the case has reads, for
// workflows where one failing sample must not block the whole case.
func AnySampleHasReads(_ *store.Case, links []*store.CaseSample) Verdict {
	for _, link := range links {
		if link.Sample.Reads > 0 {
			return VerdictPass
		}
	}

	return VerdictFail
}
