// Package newsletter implements the read path for stored newsletters.
//
// The service layer owns the lookup-and-mark-read flow and the resolution of
// storage-backed image references into fetchable URLs. It depends on the
// Repository and ImageResolver interfaces defined in this package and should
// never import from api/.
//
// The Repository implementation lives in repository/postgres/.
package newsletter
