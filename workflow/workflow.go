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

// Package workflow defines the analysis workflows the facility runs, the
// priority tiers and prep categories samples are ordered with, and the static
// per-workflow policy tables that drive file delivery and sequencing QC.
package workflow

import "strings"

// Workflow is one of the bioinformatics analysis pipelines a case can be
// assigned to.
type Workflow uint8

const (
	WorkflowUnknown Workflow = iota
	MIPDNA
	MIPRNA
	Balsamic
	BalsamicUMI
	RNAFusion
	Microsalt
	Mutant
	Nallo
	Raw
)

var workflowNames = map[Workflow]string{ //nolint:gochecknoglobals
	MIPDNA:      "mip-dna",
	MIPRNA:      "mip-rna",
	Balsamic:    "balsamic",
	BalsamicUMI: "balsamic-umi",
	RNAFusion:   "rnafusion",
	Microsalt:   "microsalt",
	Mutant:      "mutant",
	Nallo:       "nallo",
	Raw:         "raw-data",
}

// String returns the facility name for the workflow, eg. "mip-dna".
func (w Workflow) String() string {
	name, ok := workflowNames[w]
	if !ok {
		return "unknown"
	}

	return name
}

// Parse converts a facility workflow name, eg. "mip-dna", back in to a
// Workflow. Errors if an invalid name is supplied.
func Parse(name string) (Workflow, error) {
	for w, n := range workflowNames {
		if n == name {
			return w, nil
		}
	}

	return WorkflowUnknown, ErrInvalidWorkflow
}

// Priority is the turnaround tier a case or sample was ordered with.
type Priority uint8

const (
	PriorityResearch Priority = iota
	PriorityStandard
	PriorityPriority
	PriorityExpress
)

var priorityNames = map[Priority]string{ //nolint:gochecknoglobals
	PriorityResearch: "research",
	PriorityStandard: "standard",
	PriorityPriority: "priority",
	PriorityExpress:  "express",
}

// String returns the facility name for the priority, eg. "express".
func (p Priority) String() string {
	name, ok := priorityNames[p]
	if !ok {
		return "unknown"
	}

	return name
}

// ParsePriority converts a priority name back in to a Priority. Errors if an
// invalid name is supplied.
func ParsePriority(name string) (Priority, error) {
	for p, n := range priorityNames {
		if n == name {
			return p, nil
		}
	}

	return PriorityResearch, ErrInvalidPriority
}

// PrepCategory is the library preparation category a sample was ordered with.
type PrepCategory uint8

const (
	PrepWGS PrepCategory = iota
	PrepWES
	PrepTGS
	PrepWTS
	PrepReadyMadeLibrary
)

var prepNames = map[PrepCategory]string{ //nolint:gochecknoglobals
	PrepWGS:              "wgs",
	PrepWES:              "wes",
	PrepTGS:              "tgs",
	PrepWTS:              "wts",
	PrepReadyMadeLibrary: "rml",
}

// String returns the facility name for the prep category, eg. "wgs".
func (p PrepCategory) String() string {
	name, ok := prepNames[p]
	if !ok {
		return "unknown"
	}

	return name
}

// ParsePrepCategory converts a prep category name back in to a PrepCategory.
// Errors if an invalid name is supplied.
func ParsePrepCategory(name string) (PrepCategory, error) {
	for p, n := range prepNames {
		if n == name {
			return p, nil
		}
	}

	return PrepWGS, ErrInvalidPrepCategory
}

// Scopes is the set of delivery scope tokens parsed from a case's ordered
// data delivery, eg. "fastq-analysis" parses to {"fastq", "analysis"}.
type Scopes map[string]bool

const (
	// ScopeFastq delivers the raw sequencing reads of each sample.
	ScopeFastq = "fastq"

	// ScopeAnalysis delivers the analysis output files of the case.
	ScopeAnalysis = "analysis"
)

// ParseScopes splits a data delivery value on `-` and `_` in to its scope
// tokens. An empty value parses to no scopes.
func ParseScopes(dataDelivery string) Scopes {
	scopes := make(Scopes)

	for _, token := range strings.FieldsFunc(dataDelivery, func(r rune) bool {
		return r == '-' || r == '_'
	}) {
		scopes[token] = true
	}

	return scopes
}

// Has returns true if the given scope token was ordered.
func (s Scopes) Has(token string) bool {
	return s[token]
}
