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

// Package bundle gives access to the versioned, tagged file bundles the
// analysis workflows store for each case and sample.
package bundle

import "time"

// File is one file of a bundle version: a full path plus the string tags
// describing its content. A file may carry both case-identifying and
// sample-identifying tags.
type File struct {
	Path string
	Tags []string
}

// TagSet returns the file's tags as a set.
func (f File) TagSet() map[string]bool {
	tags := make(map[string]bool, len(f.Tags))

	for _, tag := range f.Tags {
		tags[tag] = true
	}

	return tags
}

// HasTag returns true if the file carries the given tag.
func (f File) HasTag(tag string) bool {
	for _, t := range f.Tags {
		if t == tag {
			return true
		}
	}

	return false
}

// Version is one stored version of a named bundle.
type Version struct {
	Bundle  string
	Created time.Time
	Files   []File
}

// Housekeeper provides read access to stored bundles. Bundle names are case
// internal ids or sample internal ids, depending on workflow.
type Housekeeper interface {
	// LatestVersion returns the most recent version of the named bundle, or
	// nil if the bundle does not exist.
	LatestVersion(name string) (*Version, error)
}

// MemHousekeeper is an in-memory Housekeeper for tests.
type MemHousekeeper map[string]*Version

// LatestVersion implements Housekeeper.
func (m MemHousekeeper) LatestVersion(name string) (*Version, error) {
	return m[name], nil
}
