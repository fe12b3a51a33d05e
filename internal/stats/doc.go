// Package stats computes descriptive statistics (count, mean, median,
// mode set, population variance, standard deviation) over numeric samples
// parsed from a text file, one token per line. Malformed tokens are
// tallied and skipped rather than aborting the run.
package stats
