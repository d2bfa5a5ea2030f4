// Command seqtree builds an order preserving merkle tree over lines read
// from stdin, prints the root digest, and optionally emits a verified
// inclusion proof for one leaf as CBOR.
//
// Example:
//
//	printf 'a\nb\nc\n' | seqtree -prove 2
package main

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"flag"
	"hash"
	"log"
	"os"

	"github.com/forestrie/go-merklelog/seqtree"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(0)

	hashName := flag.String("hash", "sha256", "hash adapter: sha256 or blake3")
	proveIndex := flag.Int64("prove", -1, "leaf index to prove, -1 for none")
	flag.Parse()

	var factory seqtree.HasherFactory
	switch *hashName {
	case "sha256":
		factory = func() hash.Hash { return sha256.New() }
	case "blake3":
		factory = seqtree.NewBlake3Factory()
	default:
		log.Fatalf("unknown hash adapter %q", *hashName)
	}

	tree := seqtree.New(factory)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		tree.Append(scanner.Bytes())
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("read stdin: %v", err)
	}

	root, err := tree.Root()
	if err != nil {
		log.Fatalf("root: %v", err)
	}
	log.Printf("leaves: %d height: %d", tree.LeafCount(), tree.Height())
	log.Printf("root: %s", hex.EncodeToString(root))

	if *proveIndex < 0 {
		return
	}

	proof, err := tree.ProofForIndex(uint64(*proveIndex))
	if err != nil {
		log.Fatalf("prove %d: %v", *proveIndex, err)
	}
	if !proof.Verify(factory(), root) {
		log.Fatalf("prove %d: proof did not verify against the root", *proveIndex)
	}

	encoded, err := proof.MarshalCBOR()
	if err != nil {
		log.Fatalf("prove %d: encode: %v", *proveIndex, err)
	}
	log.Printf("proof[%d]: %d path entries, verified", proof.LeafIndex, len(proof.Path))
	log.Printf("proof[%d] cbor: %s", proof.LeafIndex, hex.EncodeToString(encoded))
}
