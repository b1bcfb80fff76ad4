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

// Package delivery maps a case's stored file bundles to a customer-facing
// delivery directory tree and hard-links the files in to it.
package delivery

import "github.com/wtsi-hgi/seqdeliver/workflow"

// ruleMatches returns true if every tag of the rule is present in fileTags.
func ruleMatches(fileTags map[string]bool, rule workflow.TagRule) bool {
	for _, tag := range rule {
		if !fileTags[tag] {
			return false
		}
	}

	return true
}

// MatchesCaseScope decides whether a file with the given tags belongs in the
// case-level bundle. A file carrying any of the case's sample internal ids is
// never a case file, even if it also satisfies a case rule. With no rules
// configured, nothing matches.
func MatchesCaseScope(fileTags map[string]bool, rules []workflow.TagRule, sampleIDs []string) bool {
	if len(rules) == 0 {
		return false
	}

	for _, id := range sampleIDs {
		if fileTags[id] {
			return false
		}
	}

	for _, rule := range rules {
		if ruleMatches(fileTags, rule) {
			return true
		}
	}

	return false
}

// MatchesSampleScope decides whether a file with the given tags belongs in
// the given sample's bundle: some rule, together with the sample's internal
// id, must be a subset of the file's tags. With no rules configured, nothing
// matches.
func MatchesSampleScope(fileTags map[string]bool, rules []workflow.TagRule, sampleID string) bool {
	if len(rules) == 0 || !fileTags[sampleID] {
		return false
	}

	for _, rule := range rules {
		if ruleMatches(fileTags, rule) {
			return true
		}
	}

	return false
}
