// 12 Mar 2021

/*
Entropy calculates per-column Shannon entropy from a protein multiple
sequence alignment and writes it as a two column table,

	pos	entropy
	1	0.0000
	2	0.7565
	...

which is exactly what the entplot command wants to read. Positions are
1-based. Gaps are normally left out of the calculation; the -g flag
makes them count as a 21st symbol. Logarithms are base 20, or 21 with
-g, so a column with every residue different in 20 sequences scores 1.

Usage:

	entropy [flags] [infile [outfile]]
*/
package main
