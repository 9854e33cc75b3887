// 25 Mar 2024

/*
Choufas predicts protein secondary structure with the Chou-Fasman
propensity method. It reads a table of per-residue propensities and a
protein sequence, slides a window along the sequence for helix, sheet
and turn, grows windows that get over the nucleation threshold, and
settles overlapping claims by comparing region scores. The result is
one of helix (H), sheet (S) or coil (_) for every residue.

The propensity table is csv with a header line naming at least a
residue code column and helix, sheet and turn propensity columns.
Column order does not matter and extra columns are ignored.

The sequence file is plain text in one letter code. One leading header
line starting with ">" or "#" is skipped. Case and white space do not
matter.

Output is the sequence in blocks of fifty residues, each block with
its residue index range and the predicted labels lined up underneath.

Usage:
	choufas [flags] [table [sequence]]

The flags are:
	-o Outfilename
		Output file name, instead of standard output
	-t
		Print out timing information

With no arguments the tool looks for ChouFas.csv and Protein_seq.txt
in the current directory. The environment variables CHOUFAS_TABLE and
CHOUFAS_SEQ override those defaults.

On any problem with the inputs (missing file, malformed table, symbol
that is not a canonical residue or has no table entry) the tool prints
a diagnostic naming the file and exits non-zero before printing any
prediction.
*/
package main
