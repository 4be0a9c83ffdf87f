package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sudharsg/packed-dna/nuc"
	"github.com/sudharsg/packed-dna/packed"
)

var dna = flag.String("dna", "", "DNA sequence to count (case insensitive, bases ACGT)")
var sum = flag.Bool("sum", false, "also print the CRC-64 fingerprint of the packed sequence")

func main() {
	flag.Parse()

	seq, err := packed.FromString(*dna)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cnt, err := seq.Counts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v: expecting at least one of A, C, G, T\n", err)
		os.Exit(1)
	}

	fmt.Printf("Input: %s\n\n", *dna)
	for _, nt := range nuc.All {
		fmt.Printf("%v: %d\n", nt, cnt[nt])
	}

	if *sum {
		fmt.Printf("\nCRC64: %016x\n", seq.Checksum())
	}
}
