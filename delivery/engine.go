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
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/inconshreveable/log15"
	"github.com/wtsi-hgi/seqdeliver/qc"
	"github.com/wtsi-hgi/seqdeliver/store"
	"github.com/wtsi-hgi/seqdeliver/workflow"
)

const deliveryDirPerms = 0o755

// LinkResult is the outcome of one hard-link attempt.
type LinkResult uint8

const (
	// Linked means the destination was newly created (or would have been, in
	// a dry run).
	Linked LinkResult = iota
	// AlreadyExists means the destination was already delivered; this is a
	// routine outcome, not an error.
	AlreadyExists
	// Failed means the link could not be made.
	Failed
)

// Report summarises one delivery run.
type Report struct {
	// RunID uniquely identifies this delivery run in logs.
	RunID uuid.UUID

	// Linked counts newly hard-linked files; Existing counts files that were
	// already delivered.
	Linked   int
	Existing int

	// Bytes is the total size of the newly linked source files.
	Bytes uint64
}

// Engine delivers a case's or ticket's files to its customer's inbox.
type Engine struct {
	store    store.Store
	qc       *qc.Controller
	resolver *Resolver
	logger   log15.Logger
}

// NewEngine creates an Engine reading records from s and resolving delivery
// files via r.
func NewEngine(s store.Store, r *Resolver, logger log15.Logger) *Engine {
	return &Engine{
		store:    s,
		qc:       qc.NewController(s),
		resolver: r,
		logger:   logger,
	}
}

// DeliverTicket delivers every case ordered under the given ticket. An
// unknown ticket is a no-op, logged as a warning. One case's failure does not
// stop delivery of its siblings; all failures are collected and returned
// together.
func (e *Engine) DeliverTicket(ticket string, w workflow.Workflow, opts Options) (*Report, error) {
	cases, err := e.store.CasesByTicket(ticket)
	if err != nil {
		return nil, err
	}

	report := newReport()

	if len(cases) == 0 {
		e.logger.Warn("no cases found for ticket, nothing to deliver", "ticket", ticket)

		return report, nil
	}

	var failures *multierror.Error

	for _, c := range cases {
		if err := e.deliverFiles(c, w, opts, report); err != nil {
			e.logger.Error("case delivery failed", "case", c.InternalID, "err", err)
			failures = multierror.Append(failures, err)
		}
	}

	return report, failures.ErrorOrNil()
}

// DeliverCase delivers the single case with the given internal id. An unknown
// case id is a no-op, logged as a warning.
func (e *Engine) DeliverCase(caseID string, w workflow.Workflow, opts Options) (*Report, error) {
	report := newReport()

	c, err := e.store.CaseByInternalID(caseID)
	if errors.Is(err, store.ErrCaseNotFound) {
		e.logger.Warn("case not found, nothing to deliver", "case", caseID)

		return report, nil
	} else if err != nil {
		return nil, err
	}

	return report, e.deliverFiles(c, w, opts, report)
}

// DeliverFiles delivers the given case's files under the given workflow.
func (e *Engine) DeliverFiles(c *store.Case, w workflow.Workflow, opts Options) (*Report, error) {
	report := newReport()

	return report, e.deliverFiles(c, w, opts, report)
}

func newReport() *Report {
	return &Report{RunID: uuid.New()}
}

func (e *Engine) deliverFiles(c *store.Case, w workflow.Workflow, opts Options, report *Report) error {
	links, err := e.store.CaseSamples(c.InternalID)
	if err != nil {
		return err
	}

	files, err := e.resolver.Files(c, links, w, e.deliverable(opts), opts)
	if err != nil {
		return err
	}

	e.logger.Info("delivering case", "run", report.RunID, "case", c.InternalID,
		"workflow", w, "files", len(files), "dryRun", opts.DryRun)

	madeDirs := make(map[string]bool)

	for _, file := range files {
		if err := e.linkFile(file, opts, madeDirs, report); err != nil {
			return err
		}
	}

	return nil
}

// deliverable returns the per-sample delivery gate: a sample is delivered if
// it passed sequencing QC, delivery is forced, or the customer sequenced it
// themselves.
func (e *Engine) deliverable(opts Options) func(*store.Sample) bool {
	return func(s *store.Sample) bool {
		return opts.ForceAll || s.Application.External || e.qc.SamplePasses(s)
	}
}

// linkFile creates the destination directory if this run hasn't already, then
// hard-links the file, updating the report.
func (e *Engine) linkFile(file DeliveryFile, opts Options, madeDirs map[string]bool, report *Report) error {
	dir := filepath.Dir(file.Destination)

	if !madeDirs[dir] {
		if !opts.DryRun {
			if err := os.MkdirAll(dir, deliveryDirPerms); err != nil {
				return err
			}
		}

		madeDirs[dir] = true
	}

	result, err := e.Link(file.Source, file.Destination, opts.DryRun)
	if err != nil {
		return err
	}

	switch result {
	case Linked:
		report.Linked++
		report.Bytes += sourceSize(file.Source)
	case AlreadyExists:
		report.Existing++
	case Failed:
	}

	return nil
}

// Link hard-links source to destination. An already existing destination
// means the file was delivered previously: it is logged and reported, never
// an error. In a dry run nothing is touched and the result is Linked, so
// dry-run counts match what a real run would do.
func (e *Engine) Link(source, destination string, dryRun bool) (LinkResult, error) {
	if dryRun {
		e.logger.Info("dry run: would hard-link file", "source", source, "destination", destination)

		return Linked, nil
	}

	err := os.Link(source, destination)
	if err == nil {
		return Linked, nil
	}

	if errors.Is(err, fs.ErrExist) {
		e.logger.Info("path exists, skipping", "destination", destination)

		return AlreadyExists, nil
	}

	return Failed, err
}

func sourceSize(path string) uint64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}

	return uint64(info.Size())
}
