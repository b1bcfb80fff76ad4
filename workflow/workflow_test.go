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

package workflow

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEnums(t *testing.T) {
	Convey("Workflow names round-trip through Parse", t, func() {
		for w, name := range workflowNames {
			parsed, err := Parse(name)
			So(err, ShouldBeNil)
			So(parsed, ShouldEqual, w)
			So(parsed.String(), ShouldEqual, name)
		}

		_, err := Parse("no-such-workflow")
		So(err, ShouldEqual, ErrInvalidWorkflow)
		So(WorkflowUnknown.String(), ShouldEqual, "unknown")
	})

	Convey("Priority names round-trip through ParsePriority", t, func() {
		for p, name := range priorityNames {
			parsed, err := ParsePriority(name)
			So(err, ShouldBeNil)
			So(parsed, ShouldEqual, p)
		}

		_, err := ParsePriority("urgent")
		So(err, ShouldEqual, ErrInvalidPriority)
	})

	Convey("PrepCategory names round-trip through ParsePrepCategory", t, func() {
		for p, name := range prepNames {
			parsed, err := ParsePrepCategory(name)
			So(err, ShouldBeNil)
			So(parsed, ShouldEqual, p)
		}

		_, err := ParsePrepCategory("panel")
		So(err, ShouldEqual, ErrInvalidPrepCategory)
	})
}

func TestScopes(t *testing.T) {
	Convey("ParseScopes splits on - and _", t, func() {
		scopes := ParseScopes("fastq-analysis")
		So(scopes.Has(ScopeFastq), ShouldBeTrue)
		So(scopes.Has(ScopeAnalysis), ShouldBeTrue)
		So(scopes.Has("scout"), ShouldBeFalse)

		scopes = ParseScopes("fastq_analysis")
		So(scopes.Has(ScopeFastq), ShouldBeTrue)
		So(scopes.Has(ScopeAnalysis), ShouldBeTrue)

		So(ParseScopes("").Has(ScopeFastq), ShouldBeFalse)
	})
}

func TestPolicyTables(t *testing.T) {
	Convey("Delivery tag lookups of an unconfigured workflow are empty, not errors", t, func() {
		So(CaseTagRules(Raw), ShouldBeEmpty)
		So(CaseTagRules(Microsalt), ShouldBeEmpty)
		So(SampleTagRules(Mutant), ShouldBeEmpty)

		So(CaseTagRules(MIPDNA), ShouldNotBeEmpty)
		So(SampleTagRules(Raw), ShouldNotBeEmpty)
	})

	Convey("QC rule lookup of an unconfigured workflow is an error", t, func() {
		_, err := QCRules(WorkflowUnknown)
		So(err, ShouldEqual, ErrQCNotImplemented)

		rules, err := QCRules(MIPDNA)
		So(err, ShouldBeNil)
		So(rules, ShouldResemble, []QCRule{QCStandardCaseReads, QCExpressCaseReads})

		rules, err = QCRules(Raw)
		So(err, ShouldBeNil)
		So(rules, ShouldResemble, []QCRule{QCAnySampleReads})
	})

	Convey("Only single-case-per-ticket workflows drop the case directory", t, func() {
		So(OneCasePerTicket(Microsalt), ShouldBeTrue)
		So(OneCasePerTicket(Mutant), ShouldBeTrue)
		So(OneCasePerTicket(MIPDNA), ShouldBeFalse)
	})
}
