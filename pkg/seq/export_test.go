package seq

// Only for testing, so the fasta reader can be forced to use silly
// little buffers.
var SetFastaRdSize = setFastaRdSize
