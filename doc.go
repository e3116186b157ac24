// Package testfiles provides on-demand, integrity-checked retrieval of DICOM
// sample files for parser tests.
//
// Assets are downloaded the first time they are requested and cached on the
// local filesystem, so repeated test runs reuse the same bytes. Every
// download is verified against a SHA-256 digest from the built-in registry
// before it becomes visible at its cache path; a path returned by this
// package always points at complete, verified content.
//
//	liver, err := testfiles.Path("pydicom/liver.dcm")
//	if err != nil {
//	    t.Fatal(err)
//	}
//	// open liver with your DICOM parser
//
// # Source of data
//
// By default assets are fetched from the dicom-test-files repository's data
// directory. Set DICOM_TEST_FILES_URL to the base URL of a raw data tree to
// override the source:
//
//	DICOM_TEST_FILES_URL=https://raw.githubusercontent.com/me/dicom-test-files/branch/data go test ./...
//
// On GitHub Actions pull requests against a dicom-test-files repository, the
// contributing branch's raw contents are used automatically.
//
// Construct a [Client] to control the registry, cache location, base URL,
// HTTP client, logging, or decompression support.
package testfiles
