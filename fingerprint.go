package assetforge

import (
	"crypto/sha1"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func checksum(b []byte) string {
	return fmt.Sprintf("%X", sha1.Sum(b))
}

func readFile(file string) ([]byte, string, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, "", err
	}
	return b, checksum(b), nil
}

// Fingerprint identifies the settings of j that affect the produced asset.
// Paths and worker counts are excluded.
func (j *Job) Fingerprint() (string, error) {
	dup := *j
	dup.Input, dup.Output, dup.Workers = "", "", 0

	b, err := yaml.Marshal(&dup)
	if err != nil {
		return "", err
	}
	return checksum(b), nil
}
