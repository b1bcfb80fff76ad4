package delivery

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDeliveryDir(t *testing.T) {
	Convey("DeliveryDir builds the customer inbox path", t, func() {
		So(DeliveryDir("/deliver", "cust000", "123456", "FamilyX", "PatientX"),
			ShouldEqual, filepath.Join("/deliver", "cust000", "inbox", "123456", "FamilyX", "PatientX"))

		Convey("omitting the case level for ticket-named deliveries", func() {
			So(DeliveryDir("/deliver", "cust000", "123456", "", "PatientX"),
				ShouldEqual, filepath.Join("/deliver", "cust000", "inbox", "123456", "PatientX"))
		})

		Convey("and the sample level for case files", func() {
			So(DeliveryDir("/deliver", "cust000", "123456", "FamilyX", ""),
				ShouldEqual, filepath.Join("/deliver", "cust000", "inbox", "123456", "FamilyX"))
		})
	})
}

func TestRenameForDelivery(t *testing.T) {
	Convey("RenameForDelivery swaps internal ids for external names", t, func() {
		So(RenameForDelivery("fam42.vcf.gz", "fam42", "FamilyX"), ShouldEqual, "FamilyX.vcf.gz")

		Convey("leaving names without the id unchanged", func() {
			So(RenameForDelivery("multiqc.html", "fam42", "FamilyX"), ShouldEqual, "multiqc.html")
		})

		Convey("so applying both substitutions leaks neither internal id", func() {
			name := RenameForDelivery("fam42_ACC001.bam", "ACC001", "PatientX")
			name = RenameForDelivery(name, "fam42", "FamilyX")

			So(name, ShouldEqual, "FamilyX_PatientX.bam")
			So(name, ShouldNotContainSubstring, "fam42")
			So(name, ShouldNotContainSubstring, "ACC001")
		})
	})
}
