// Command polysweep is a small front-end over package poly, for running
// boolean polygon operations, validating closedness, and producing debug
// PostScript dumps from the command line.
package main
