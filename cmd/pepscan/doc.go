// 10 Mar 2021

/*
Pepscan slides a window over a protein multiple sequence alignment and
ranks every possible stretch by how conserved it is. The idea is to
find peptides worth synthesising, so the default width is 15 residues.

For each window we take each column, count the residues that are not
gaps and not ambiguity codes (X, B, J, Z), and ask what fraction
belongs to the most common residue. The window's score is the mean of
its column fractions. All windows are written out, best first, as a
tab separated table with 1-based inclusive coordinates:

	start	end	mean_conservation
	6	20	1.000
	...

and as a fasta file of consensus peptides. The consensus takes a
column's majority residue when it holds at least 70 % of the
informative residues, otherwise X. A column with nothing informative
in it gets a gap, or an X with the -x flag. The fasta identifiers
look like Pos6-20_cons1.000.

Usage:

	pepscan [flags] [infile]

The flags are:

	-w width
		Window width in residues. Default 15.
	-tsv file
		Where the ranked table goes. Missing directories are created.
	-fasta file
		Where the consensus fasta goes.
	-x
		Use X rather than a gap for all-gap consensus columns.
	-t
		Print timing information.

A window wider than the alignment is not an error. You just get an
empty table. A width of zero or less is an error.
*/
package main
