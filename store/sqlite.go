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
	"database/sql"
	"errors"

	_ "github.com/mattn/go-sqlite3" // register the sqlite3 driver
	"github.com/wtsi-hgi/seqdeliver/workflow"
)

const caseColumns = "[internal_id], [name], [customer_id], [workflow], [data_delivery], [ticket], [priority]"

const sampleColumns = "s.[sample_id], s.[name], s.[customer_id], s.[reads], s.[priority], s.[prep_category], " +
	"s.[tumour], s.[application_tag], s.[target_reads], s.[percent_reads_guaranteed], " +
	"s.[min_sequencing_depth], s.[external], cs.[status], cs.[mother_id], cs.[father_id]"

// SQLDB is a read-only Store backed by the LIMS status database, exported as
// sqlite.
type SQLDB struct {
	db *sql.DB

	caseStmt    *sql.Stmt
	ticketStmt  *sql.Stmt
	samplesStmt *sql.Stmt
}

// OpenSQLDB opens the sqlite status database at the given path.
func OpenSQLDB(dbPath string) (*SQLDB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	sdb := &SQLDB{db: db}

	for stmt, query := range map[**sql.Stmt]string{
		&sdb.caseStmt:   "SELECT " + caseColumns + " FROM [cases] WHERE [internal_id] = ?;",
		&sdb.ticketStmt: "SELECT " + caseColumns + " FROM [cases] WHERE [ticket] = ? ORDER BY [internal_id];",
		&sdb.samplesStmt: "SELECT " + sampleColumns + " FROM [case_samples] cs " +
			"JOIN [samples] s ON s.[sample_id] = cs.[sample_id] " +
			"WHERE cs.[case_id] = ? ORDER BY cs.[rowid];",
	} {
		if *stmt, err = db.Prepare(query); err != nil {
			return nil, err
		}
	}

	return sdb, nil
}

// Close closes the database.
func (s *SQLDB) Close() error {
	return s.db.Close()
}

// CaseByInternalID implements Store.
func (s *SQLDB) CaseByInternalID(id string) (*Case, error) {
	c, err := scanCase(s.caseStmt.QueryRow(id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCaseNotFound
	}

	return c, err
}

// CasesByTicket implements Store.
func (s *SQLDB) CasesByTicket(ticket string) ([]*Case, error) {
	rows, err := s.ticketStmt.Query(ticket)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var cases []*Case

	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, err
		}

		cases = append(cases, c)
	}

	return cases, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCase(row scanner) (*Case, error) {
	var (
		c                      Case
		workflowName, priority string
	)

	err := row.Scan(&c.InternalID, &c.Name, &c.CustomerID, &workflowName,
		&c.DataDelivery, &c.Ticket, &priority)
	if err != nil {
		return nil, err
	}

	if c.Workflow, err = workflow.Parse(workflowName); err != nil {
		return nil, err
	}

	if c.Priority, err = workflow.ParsePriority(priority); err != nil {
		return nil, err
	}

	return &c, nil
}

// CaseSamples implements Store.
func (s *SQLDB) CaseSamples(caseID string) ([]*CaseSample, error) {
	rows, err := s.samplesStmt.Query(caseID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var links []*CaseSample

	for rows.Next() {
		cs, err := scanCaseSample(rows, caseID)
		if err != nil {
			return nil, err
		}

		links = append(links, cs)
	}

	return links, rows.Err()
}

func scanCaseSample(row scanner, caseID string) (*CaseSample, error) {
	var (
		sample                 Sample
		priority, prep, status string
		motherID, fatherID     sql.NullString
	)

	cs := CaseSample{CaseID: caseID}

	err := row.Scan(&sample.InternalID, &sample.Name, &sample.CustomerID, &sample.Reads,
		&priority, &prep, &sample.Tumour, &sample.Application.Tag,
		&sample.Application.TargetReads, &sample.Application.PercentReadsGuaranteed,
		&sample.Application.MinSequencingDepth, &sample.Application.External,
		&status, &motherID, &fatherID)
	if err != nil {
		return nil, err
	}

	if sample.Priority, err = workflow.ParsePriority(priority); err != nil {
		return nil, err
	}

	if sample.PrepCategory, err = workflow.ParsePrepCategory(prep); err != nil {
		return nil, err
	}

	cs.SampleID = sample.InternalID
	cs.Sample = &sample
	cs.Status = parseStatus(status)
	cs.MotherID = motherID.String
	cs.FatherID = fatherID.String

	return &cs, nil
}

func parseStatus(status string) CaseSampleStatus {
	switch status {
	case "affected":
		return StatusAffected
	case "unaffected":
		return StatusUnaffected
	default:
		return StatusUnknown
	}
}
