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
	"code.cloudfoundry.org/bytefmt"
	"github.com/spf13/cobra"
	"github.com/wtsi-hgi/seqdeliver/bundle"
	"github.com/wtsi-hgi/seqdeliver/delivery"
	"github.com/wtsi-hgi/seqdeliver/store"
	"github.com/wtsi-hgi/seqdeliver/workflow"
)

// options for this cmd.
var (
	deliverTicket        string
	deliverCaseID        string
	deliverWorkflow      string
	deliverDryRun        bool
	deliverForceAll      bool
	deliverIgnoreBundles bool
	deliverStatusDB      string
	deliverBundlesDB     string
	deliverCustomersDir  string
)

var deliverCmd = &cobra.Command{
	Use:   "deliver",
	Short: "deliver a ticket's or case's result files",
	Long: `deliver hard-links a ticket's or case's result files in to the
customer's inbox directory.

Specify exactly one of --ticket or --case-id, plus the --workflow whose
delivery rules should apply. Files land under:

  <customers>/<customer>/inbox/<ticket>[/<case>][/<sample>]/

Delivery is idempotent: files already delivered are counted and skipped, so
re-running after a partial delivery is safe.

Samples that failed sequencing QC are not delivered unless --force-all is
supplied, or the sample was sequenced externally. A case without a stored
file bundle is an error unless its workflow tolerates that, or
--ignore-missing-bundles is supplied.

--dry-run logs what would be linked without touching the filesystem.`,
	Run: func(_ *cobra.Command, _ []string) {
		setCLIFormat()
		loadDotEnv()

		if (deliverTicket == "") == (deliverCaseID == "") {
			die("specify exactly one of --ticket or --case-id")
		}

		w, err := workflow.Parse(deliverWorkflow)
		if err != nil {
			die("bad --workflow [%s]: %s", deliverWorkflow, err)
		}

		engine, closeAll := openEngine()
		defer closeAll()

		opts := delivery.Options{
			DryRun:               deliverDryRun,
			ForceAll:             deliverForceAll,
			IgnoreMissingBundles: deliverIgnoreBundles,
		}

		report, err := deliver(engine, w, opts)
		if err != nil {
			die("delivery failed: %s", err)
		}

		cliPrint("linked %d file(s) (%s), %d already delivered\n",
			report.Linked, bytefmt.ByteSize(report.Bytes), report.Existing)
	},
}

func init() {
	RootCmd.AddCommand(deliverCmd)

	deliverCmd.Flags().StringVarP(&deliverTicket, "ticket", "t", "",
		"ticket whose cases should be delivered")
	deliverCmd.Flags().StringVarP(&deliverCaseID, "case-id", "c", "",
		"internal id of the single case to deliver")
	deliverCmd.Flags().StringVarP(&deliverWorkflow, "workflow", "w", "",
		"workflow whose delivery rules apply (eg. mip-dna, balsamic, raw-data)")
	deliverCmd.Flags().BoolVarP(&deliverDryRun, "dry-run", "n", false,
		"log intended actions without linking anything")
	deliverCmd.Flags().BoolVar(&deliverForceAll, "force-all", false,
		"also deliver samples that failed sequencing QC")
	deliverCmd.Flags().BoolVar(&deliverIgnoreBundles, "ignore-missing-bundles", false,
		"skip cases and samples without stored file bundles")
	deliverCmd.Flags().StringVar(&deliverStatusDB, "db", "",
		"path to the status database (default $SEQDELIVER_DB)")
	deliverCmd.Flags().StringVar(&deliverBundlesDB, "bundles", "",
		"path to the bundles database (default $SEQDELIVER_BUNDLES)")
	deliverCmd.Flags().StringVar(&deliverCustomersDir, "customers", "",
		"path to the customers folder (default $SEQDELIVER_CUSTOMERS)")
}

func deliver(engine *delivery.Engine, w workflow.Workflow, opts delivery.Options) (*delivery.Report, error) {
	if deliverTicket != "" {
		return engine.DeliverTicket(deliverTicket, w, opts)
	}

	return engine.DeliverCase(deliverCaseID, w, opts)
}

// openEngine opens the status and bundles databases from flags/env and
// assembles the delivery engine. The returned func closes both databases.
func openEngine() (*delivery.Engine, func()) {
	db, hk, customers := openCollaborators(deliverStatusDB, deliverBundlesDB, deliverCustomersDir)

	resolver := delivery.NewResolver(hk, customers, appLogger)

	return delivery.NewEngine(db, resolver, appLogger), func() {
		_ = hk.Close()
		_ = db.Close()
	}
}

func openCollaborators(dbFlag, bundlesFlag, customersFlag string) (*store.SQLDB, *bundle.BoltStore, string) {
	dbPath := flagOrEnv(dbFlag, envStatusDB)
	if dbPath == "" {
		die("need a status database; set --db or $%s", envStatusDB)
	}

	bundlesPath := flagOrEnv(bundlesFlag, envBundlesDB)
	if bundlesPath == "" {
		die("need a bundles database; set --bundles or $%s", envBundlesDB)
	}

	customers := flagOrEnv(customersFlag, envCustomersFolder)
	if customers == "" {
		die("need a customers folder; set --customers or $%s", envCustomersFolder)
	}

	db, err := store.OpenSQLDB(dbPath)
	if err != nil {
		die("failed to open status database: %s", err)
	}

	hk, err := bundle.OpenBoltRO(bundlesPath)
	if err != nil {
		die("failed to open bundles database: %s", err)
	}

	return db, hk, customers
}
