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

package delivery

import (
	"fmt"
	"path/filepath"

	"github.com/inconshreveable/log15"
	"github.com/wtsi-hgi/seqdeliver/bundle"
	"github.com/wtsi-hgi/seqdeliver/store"
	"github.com/wtsi-hgi/seqdeliver/workflow"
)

// DeliveryFile is one file to deliver: the stored source path and the
// customer-facing destination it will be hard-linked to.
type DeliveryFile struct {
	Source      string
	Destination string
}

// Options alter a delivery run.
type Options struct {
	// DryRun logs intended actions without touching the filesystem.
	DryRun bool

	// ForceAll delivers samples even when they failed sequencing QC.
	ForceAll bool

	// IgnoreMissingBundles treats any missing file bundle as a soft skip,
	// regardless of workflow.
	IgnoreMissingBundles bool
}

// Resolver turns a case's stored bundles in to the final list of delivery
// files for a workflow.
type Resolver struct {
	hk     bundle.Housekeeper
	base   string
	logger log15.Logger
}

// NewResolver creates a Resolver reading bundles from hk and delivering under
// the given customers folder.
func NewResolver(hk bundle.Housekeeper, base string, logger log15.Logger) *Resolver {
	return &Resolver{hk: hk, base: base, logger: logger}
}

// Files produces the delivery files for the case under the given workflow:
// case-level files first, then the files of every sample that deliverable
// accepts. Bundles are the case's, except that fastq delivery reads each
// sample's own bundle.
//
// A missing bundle is fatal unless the workflow (or opts) tolerates it, in
// which case the case or sample is skipped with a warning. A deliverable
// sample whose bundle yields no files is always fatal.
func (r *Resolver) Files(c *store.Case, links []*store.CaseSample, w workflow.Workflow,
	deliverable func(*store.Sample) bool, opts Options) ([]DeliveryFile, error) {
	caseName := c.Name
	if workflow.OneCasePerTicket(w) {
		caseName = ""
	}

	sampleIDs := make([]string, len(links))
	for i, link := range links {
		sampleIDs[i] = link.SampleID
	}

	var (
		files       []DeliveryFile
		caseVersion *bundle.Version
		fetched     bool
	)

	if caseRules := workflow.CaseTagRules(w); len(caseRules) > 0 {
		v, err := r.bundleVersion(c.InternalID, w, opts)
		if err != nil {
			return nil, err
		}

		caseVersion, fetched = v, true

		if v != nil {
			files = append(files, r.caseFiles(c, caseName, v, caseRules, sampleIDs)...)
		}
	}

	sampleRules := workflow.SampleTagRules(w)
	if len(sampleRules) == 0 {
		return files, nil
	}

	useSampleBundles := c.Scopes().Has(workflow.ScopeFastq) || w == workflow.Raw

	for _, link := range links {
		if !deliverable(link.Sample) {
			r.logger.Info("sample not deliverable, skipping", "sample", link.SampleID)

			continue
		}

		v, err := r.sampleBundleVersion(c, link, w, useSampleBundles, &caseVersion, &fetched, opts)
		if err != nil {
			return nil, err
		}

		if v == nil {
			continue
		}

		sampleFiles, err := r.sampleFiles(c, caseName, link, v, sampleRules)
		if err != nil {
			return nil, err
		}

		files = append(files, sampleFiles...)
	}

	return files, nil
}

// bundleVersion fetches the latest version of the named bundle, applying the
// workflow's missing-bundle tolerance: a tolerated missing bundle returns
// (nil, nil) after a warning.
func (r *Resolver) bundleVersion(name string, w workflow.Workflow, opts Options) (*bundle.Version, error) {
	v, err := r.hk.LatestVersion(name)
	if err != nil {
		return nil, err
	}

	if v != nil {
		return v, nil
	}

	if workflow.TolerateMissingBundle(w) || opts.IgnoreMissingBundles {
		r.logger.Warn("no file bundle found, skipping", "bundle", name)

		return nil, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrMissingBundle, name)
}

func (r *Resolver) sampleBundleVersion(c *store.Case, link *store.CaseSample, w workflow.Workflow,
	useSampleBundles bool, caseVersion **bundle.Version, fetched *bool, opts Options) (*bundle.Version, error) {
	if useSampleBundles {
		return r.bundleVersion(link.SampleID, w, opts)
	}

	if !*fetched {
		v, err := r.bundleVersion(c.InternalID, w, opts)
		if err != nil {
			return nil, err
		}

		*caseVersion, *fetched = v, true
	}

	return *caseVersion, nil
}

func (r *Resolver) caseFiles(c *store.Case, caseName string, v *bundle.Version,
	rules []workflow.TagRule, sampleIDs []string) []DeliveryFile {
	dir := DeliveryDir(r.base, c.CustomerID, c.Ticket, caseName, "")

	var files []DeliveryFile

	for _, f := range v.Files {
		if !MatchesCaseScope(f.TagSet(), rules, sampleIDs) {
			continue
		}

		name := RenameForDelivery(filepath.Base(f.Path), c.InternalID, c.Name)

		files = append(files, DeliveryFile{Source: f.Path, Destination: filepath.Join(dir, name)})
	}

	return files
}

// sampleFiles matches the version's files in sample scope and renames them
// with both the sample's and the case's external names, so neither internal
// id leaks in to delivered file names.
func (r *Resolver) sampleFiles(c *store.Case, caseName string, link *store.CaseSample,
	v *bundle.Version, rules []workflow.TagRule) ([]DeliveryFile, error) {
	dir := DeliveryDir(r.base, c.CustomerID, c.Ticket, caseName, link.Sample.Name)

	var files []DeliveryFile

	for _, f := range v.Files {
		if !MatchesSampleScope(f.TagSet(), rules, link.SampleID) {
			continue
		}

		name := RenameForDelivery(filepath.Base(f.Path), link.SampleID, link.Sample.Name)
		name = RenameForDelivery(name, c.InternalID, c.Name)

		files = append(files, DeliveryFile{Source: f.Path, Destination: filepath.Join(dir, name)})
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSampleFiles, link.SampleID)
	}

	return files, nil
}
