// Package shared groups helpers used across the campaignclean packages that
// don't belong to any single layer.
//
// # Test Utilities
//
// The testutil subpackage provides:
//
//	- Archive fixtures: zip files holding CSV or XLSX members built in-test
//	- The two-row reference campaign dataset used across package tests
//	- A recording slog handler for asserting on log output
//
// Example usage:
//
//	func TestLoad(t *testing.T) {
//	    dir := t.TempDir()
//	    testutil.WriteZip(t, filepath.Join(dir, "bank.zip"),
//	        testutil.CSVMember("bank.csv", testutil.SampleCSV))
//	}
package shared
