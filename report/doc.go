// Package report turns the group sizes produced by a clustering run into the
// figures the CLI prints: sizes ranked largest first, the product of the top
// k sizes (k = 3 for the classic answer), and summary statistics.
//
// The engine never sorts or ranks groups; ranking is presentation and lives
// here.
package report
