// Package report writes computed reports to results files and echoes them
// to the console, the shared output path for every tool in the repo.
package report
