// Package sales computes the total monetary value of a JSON sales file
// priced against a JSON product catalogue. Records referencing unknown
// products are excluded and tallied rather than aborting the run.
package sales
