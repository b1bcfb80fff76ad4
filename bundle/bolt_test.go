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

package bundle

import (
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFileTags(t *testing.T) {
	Convey("File tags convert to a set and answer HasTag", t, func() {
		f := File{Path: "/store/fam42.vcf.gz", Tags: []string{"vcf", "scout"}}

		So(f.TagSet(), ShouldResemble, map[string]bool{"vcf": true, "scout": true})
		So(f.HasTag("vcf"), ShouldBeTrue)
		So(f.HasTag("cram"), ShouldBeFalse)
	})
}

func TestBoltStore(t *testing.T) {
	Convey("Given a bolt bundle store", t, func() {
		s, err := OpenBolt(filepath.Join(t.TempDir(), "bundles.db"))
		So(err, ShouldBeNil)

		defer s.Close()

		Convey("an unknown bundle has no latest version", func() {
			v, errl := s.LatestVersion("fam42")
			So(errl, ShouldBeNil)
			So(v, ShouldBeNil)
		})

		Convey("stored versions round-trip and the latest wins", func() {
			first := []File{{Path: "/store/fam42/fam42.vcf.gz", Tags: []string{"vcf", "scout"}}}
			second := []File{
				{Path: "/store/fam42/fam42.vcf.gz", Tags: []string{"vcf", "scout"}},
				{Path: "/store/fam42/multiqc.html", Tags: []string{"multiqc-html"}},
			}

			So(s.Add("fam42", time.Unix(1000, 0), first), ShouldBeNil)
			So(s.Add("fam42", time.Unix(2000, 0), second), ShouldBeNil)
			So(s.Add("fam43", time.Unix(3000, 0), first), ShouldBeNil)

			v, errl := s.LatestVersion("fam42")
			So(errl, ShouldBeNil)
			So(v, ShouldNotBeNil)
			So(v.Bundle, ShouldEqual, "fam42")
			So(v.Created.Unix(), ShouldEqual, 2000)
			So(v.Files, ShouldResemble, second)

			v, errl = s.LatestVersion("fam43")
			So(errl, ShouldBeNil)
			So(v.Files, ShouldResemble, first)
		})
	})
}
