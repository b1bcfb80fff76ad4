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

package cmd

import (
	"os"

	"github.com/dustin/go-humanize" //nolint:misspell
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/wtsi-hgi/seqdeliver/qc"
	"github.com/wtsi-hgi/seqdeliver/store"
	"github.com/wtsi-hgi/seqdeliver/workflow"
)

// options for this cmd.
var (
	qcTicket   string
	qcCaseID   string
	qcStatusDB string
)

var qcCmd = &cobra.Command{
	Use:   "qc",
	Short: "report sequencing QC status of a ticket or case",
	Long: `qc reports the sequencing QC status of every sample in a ticket's
or a single case's samples, plus the overall per-case verdict.

Specify exactly one of --ticket or --case-id. Per-sample rows show the read
count, the threshold that applied given the sample's priority and prep
category, and pass/fail. The case row shows the workflow's overall verdict.`,
	Run: func(_ *cobra.Command, _ []string) {
		setCLIFormat()
		loadDotEnv()

		if (qcTicket == "") == (qcCaseID == "") {
			die("specify exactly one of --ticket or --case-id")
		}

		dbPath := flagOrEnv(qcStatusDB, envStatusDB)
		if dbPath == "" {
			die("need a status database; set --db or $%s", envStatusDB)
		}

		db, err := store.OpenSQLDB(dbPath)
		if err != nil {
			die("failed to open status database: %s", err)
		}

		defer db.Close()

		cases, err := qcCases(db)
		if err != nil {
			die("%s", err)
		}

		if err := printQCReport(db, cases); err != nil {
			die("%s", err)
		}
	},
}

func init() {
	RootCmd.AddCommand(qcCmd)

	qcCmd.Flags().StringVarP(&qcTicket, "ticket", "t", "",
		"ticket whose cases should be reported on")
	qcCmd.Flags().StringVarP(&qcCaseID, "case-id", "c", "",
		"internal id of the single case to report on")
	qcCmd.Flags().StringVar(&qcStatusDB, "db", "",
		"path to the status database (default $SEQDELIVER_DB)")
}

func qcCases(db store.Store) ([]*store.Case, error) {
	if qcTicket != "" {
		return db.CasesByTicket(qcTicket)
	}

	c, err := db.CaseByInternalID(qcCaseID)
	if err != nil {
		return nil, err
	}

	return []*store.Case{c}, nil
}

func printQCReport(db store.Store, cases []*store.Case) error {
	controller := qc.NewController(db)
	table := prepareQCTable()

	for _, c := range cases {
		casePass, err := controller.CasePasses(c)
		if err != nil {
			return err
		}

		links, err := db.CaseSamples(c.InternalID)
		if err != nil {
			return err
		}

		for _, link := range links {
			table.Append(sampleColumns(c, link.Sample, controller.SamplePasses(link.Sample)))
		}

		table.Append([]string{c.InternalID, "(case)", c.Workflow.String(), c.Priority.String(),
			"", "", passFail(casePass)})
	}

	table.Render()

	return nil
}

// prepareQCTable creates a table with a header that outputs to STDOUT.
func prepareQCTable() *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Case", "Sample", "Workflow", "Priority", "Reads", "Threshold", "QC"})

	return table
}

func sampleColumns(c *store.Case, s *store.Sample, pass bool) []string {
	return []string{
		c.InternalID,
		s.InternalID,
		c.Workflow.String(),
		s.Priority.String(),
		humanize.Comma(s.Reads),
		humanize.Comma(sampleThreshold(s)),
		passFail(pass),
	}
}

// sampleThreshold is the read count this sample had to reach, given its
// priority and prep category.
func sampleThreshold(s *store.Sample) int64 {
	if s.Priority == workflow.PriorityExpress {
		return qc.ExpressReadsThreshold(s.Application.TargetReads)
	}

	if s.PrepCategory == workflow.PrepReadyMadeLibrary {
		return 1
	}

	return s.Application.ExpectedReads()
}

func passFail(pass bool) string {
	if pass {
		return "pass"
	}

	return "FAIL"
}
