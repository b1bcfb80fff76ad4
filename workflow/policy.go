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

// TagRule is one set of tags that together qualify a bundle file for
// delivery: every tag in the rule must be present on the file.
type TagRule []string

// caseTagRules maps each workflow to the tag rules that select its case-level
// delivery files. A workflow absent from this table delivers no case files;
// that is not an error.
var caseTagRules = map[Workflow][]TagRule{ //nolint:gochecknoglobals
	MIPDNA: {
		{"vcf-snv-clinical"},
		{"vcf-sv-clinical"},
		{"vcf", "scout"},
		{"multiqc-html"},
	},
	MIPRNA: {
		{"vcf", "scout"},
		{"fusion", "clinical"},
		{"multiqc-html"},
	},
	Balsamic: {
		{"vcf-snv-clinical"},
		{"vcf-sv-clinical"},
		{"cnv-report"},
		{"multiqc-html"},
	},
	BalsamicUMI: {
		{"vcf-snv-clinical"},
		{"multiqc-html"},
	},
	RNAFusion: {
		{"fusion", "clinical"},
		{"fusion", "report"},
		{"multiqc-html"},
	},
	Mutant: {
		{"pangolin"},
		{"ks-results"},
		{"multiqc-html"},
	},
	Nallo: {
		{"vcf-snv-clinical"},
		{"vcf-sv-clinical"},
		{"multiqc-html"},
	},
}

// sampleTagRules maps each workflow to the tag rules that select its
// sample-level delivery files. The matcher additionally requires the sample's
// internal id as a tag on every matched file.
var sampleTagRules = map[Workflow][]TagRule{ //nolint:gochecknoglobals
	MIPDNA: {
		{"bam"},
		{"cram"},
	},
	MIPRNA: {
		{"cram"},
		{"salmon-quant"},
	},
	Balsamic: {
		{"cram"},
	},
	BalsamicUMI: {
		{"cram"},
	},
	RNAFusion: {
		{"cram"},
	},
	Microsalt: {
		{"microsalt-qc"},
		{"typing-report"},
	},
	Nallo: {
		{"bam"},
	},
	Raw: {
		{"fastq"},
	},
}

// oneCasePerTicket lists the workflows whose tickets only ever hold one case,
// so their delivery folders are ticket-named with no case subdirectory.
var oneCasePerTicket = map[Workflow]bool{ //nolint:gochecknoglobals
	Microsalt: true,
	Mutant:    true,
}

// skipMissingBundle lists the workflows for which a case without a stored
// file bundle is quietly skipped rather than treated as a data error.
var skipMissingBundle = map[Workflow]bool{ //nolint:gochecknoglobals
	Raw:       true,
	Microsalt: true,
}

// CaseTagRules returns the tag rules selecting case-level delivery files for
// the given workflow. An empty result means the workflow delivers no
// case-level files.
func CaseTagRules(w Workflow) []TagRule {
	return caseTagRules[w]
}

// SampleTagRules returns the tag rules selecting sample-level delivery files
// for the given workflow. An empty result means the workflow delivers no
// sample-level files.
func SampleTagRules(w Workflow) []TagRule {
	return sampleTagRules[w]
}

// OneCasePerTicket returns true if the given workflow's delivery folders are
// ticket-named with no per-case subdirectory.
func OneCasePerTicket(w Workflow) bool {
	return oneCasePerTicket[w]
}

// TolerateMissingBundle returns true if a case on the given workflow may lack
// a stored file bundle without that being a data error.
func TolerateMissingBundle(w Workflow) bool {
	return skipMissingBundle[w]
}

// QCRule identifies one of the case-level sequencing QC rules implemented in
// the qc package.
type QCRule uint8

const (
	// QCStandardCaseReads passes a non-express case when every sample meets
	// its application's expected read count.
	QCStandardCaseReads QCRule = iota
	// QCExpressCaseReads passes an express case when every sample meets half
	// its application's target read count.
	QCExpressCaseReads
	// QCAnySampleReads passes a case when any of its samples has reads.
	QCAnySampleReads
)

// qcRules maps each workflow to the ordered case-level QC rules tried for it.
// Unlike the delivery tag tables, every supported workflow must appear here.
var qcRules = map[Workflow][]QCRule{ //nolint:gochecknoglobals
	MIPDNA:      {QCStandardCaseReads, QCExpressCaseReads},
	MIPRNA:      {QCStandardCaseReads, QCExpressCaseReads},
	Balsamic:    {QCStandardCaseReads, QCExpressCaseReads},
	BalsamicUMI: {QCStandardCaseReads, QCExpressCaseReads},
	RNAFusion:   {QCStandardCaseReads, QCExpressCaseReads},
	Nallo:       {QCStandardCaseReads, QCExpressCaseReads},
	Microsalt:   {QCAnySampleReads},
	Mutant:      {QCAnySampleReads},
	Raw:         {QCAnySampleReads},
}

// QCRules returns the ordered case-level QC rules for the given workflow.
// Errors for a workflow with no configured rules: QC must be explicit for
// every workflow it is asked about.
func QCRules(w Workflow) ([]QCRule, error) {
	rules, ok := qcRules[w]
	if !ok {
		return nil, ErrQCNotImplemented
	}

	return rules, nil
}
