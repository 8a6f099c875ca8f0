package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// reverseBytes reverses b in place and returns it, the classic ZX0
// "backwards compression" trick: a self-extracting BASIC loader runs the
// decompressor forward from a fixed address while the compressed data
// grows downward from the end of memory, so both the input and the
// compressed output are reversed around the CLI boundary.
func reverseBytes(b []byte) []byte {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

// confirmOverwrite prompts on stdin unless force is set or path doesn't
// exist yet.
func confirmOverwrite(path string, force bool) (bool, error) {
	if force {
		return true, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return true, nil
	} else if err != nil {
		return false, errors.Wrapf(err, "stat %s", path)
	}

	fmt.Printf("%s already exists, overwrite? (y/N) ", path)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

func defaultCompressedOutput(input string) string {
	return input + ".zx0"
}

func defaultDecompressedOutput(input string) string {
	if strings.HasSuffix(input, ".zx0") {
		return strings.TrimSuffix(input, ".zx0")
	}
	return input + ".out"
}
