package delivery

import (
	"path/filepath"
	"strings"
)

const inboxDirName = "inbox"

// DeliveryDir computes the customer-facing directory files are delivered to:
//
//	base/customer/inbox/ticket[/caseName][/sampleName]
//
// caseName is empty for workflows whose tickets only hold one case;
// sampleName is empty for case-level files.
func DeliveryDir(base, customer, ticket, caseName, sampleName string) string {
	dir := filepath.Join(base, customer, inboxDirName, ticket)

	if caseName != "" {
		dir = filepath.Join(dir, caseName)
	}

	if sampleName != "" {
		dir = filepath.Join(dir, sampleName)
	}

	return dir
}

// RenameForDelivery replaces the internal id with the externally visible name
// inside a file name. A name not containing the internal id is returned
// unchanged.
func RenameForDelivery(fileName, internalID, externalName string) string {
	return strings.ReplaceAll(fileName, internalID, externalName)
}
