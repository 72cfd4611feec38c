// Package quotation builds itemized price quotations.
//
// A quotation is a Ledger of line items. Each item is created from a Draft
// (the values typed by the user) and carries a total computed once at
// creation: the area times the rate when an area is given, the number of
// boxes times the rate otherwise. The grand total is the sum of the item
// totals.
//
// The core functionalities include:
//   - Ledger Management: appending validated items, removing them by id, and
//     folding the grand total. Items are never edited in place.
//   - Snapshots: a Quotation is an immutable copy of a ledger, with the client
//     details and seller profile, handed to a renderer.
//   - Data Persistence: encoding a Session to JSONL so a quotation in progress
//     can be saved and opened again.
//
// This package serves as the foundational logic for the `quote` command-line
// tool.
package quotation
