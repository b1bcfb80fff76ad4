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

package store

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/wtsi-hgi/seqdeliver/workflow"
)

func TestApplication(t *testing.T) {
	Convey("ExpectedReads is the guaranteed fraction of the target", t, func() {
		app := Application{TargetReads: 40, PercentReadsGuaranteed: 75}
		So(app.ExpectedReads(), ShouldEqual, 30)

		app.PercentReadsGuaranteed = 100
		So(app.ExpectedReads(), ShouldEqual, 40)

		So(Application{}.ExpectedReads(), ShouldEqual, 0)
	})
}

func TestCaseScopes(t *testing.T) {
	Convey("A case's data delivery parses in to scopes", t, func() {
		c := Case{DataDelivery: "fastq-analysis"}
		So(c.Scopes().Has(workflow.ScopeFastq), ShouldBeTrue)
		So(c.Scopes().Has(workflow.ScopeAnalysis), ShouldBeTrue)
	})
}

func TestMemStore(t *testing.T) {
	Convey("Given a MemStore with two cases on one ticket", t, func() {
		db := NewMemStore()

		a := &Case{InternalID: "fam42", Ticket: "123456"}
		b := &Case{InternalID: "fam43", Ticket: "123456"}
		db.AddCase(a)
		db.AddCase(b)
		db.AddCaseSample("fam42", &Sample{InternalID: "ACC001"})

		Convey("cases are found by internal id", func() {
			got, err := db.CaseByInternalID("fam42")
			So(err, ShouldBeNil)
			So(got, ShouldEqual, a)

			_, err = db.CaseByInternalID("fam99")
			So(err, ShouldEqual, ErrCaseNotFound)
		})

		Convey("tickets list their cases in insertion order", func() {
			cases, err := db.CasesByTicket("123456")
			So(err, ShouldBeNil)
			So(cases, ShouldResemble, []*Case{a, b})

			cases, err = db.CasesByTicket("000000")
			So(err, ShouldBeNil)
			So(cases, ShouldBeEmpty)
		})

		Convey("case samples are returned with Sample populated", func() {
			links, err := db.CaseSamples("fam42")
			So(err, ShouldBeNil)
			So(len(links), ShouldEqual, 1)
			So(links[0].Sample.InternalID, ShouldEqual, "ACC001")
		})
	})
}
