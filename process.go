package assetforge

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bodgit/assetforge/codec"
	"github.com/bodgit/assetforge/pipeline"
)

// Result describes one processed image.
type Result struct {
	Source   string
	Output   string
	Class    string
	Checksum string
	Width    int
	Height   int
	// Skipped is set when the cache showed the output to be up to date.
	Skipped bool
}

func exists(file string) bool {
	info, err := os.Stat(file)
	return err == nil && info.Mode().IsRegular()
}

// Process converts the image at src into an asset written to dst. Nothing
// is written unless every stage succeeds.
func (a *AssetForge) Process(src, dst string, job *Job) (*Result, error) {
	b, sum, err := readFile(src)
	if err != nil {
		return nil, err
	}

	fingerprint, err := job.Fingerprint()
	if err != nil {
		return nil, err
	}

	result := &Result{
		Source:   src,
		Output:   dst,
		Class:    job.Class,
		Checksum: sum,
	}

	if a.cache != nil && exists(dst) {
		ok, err := a.cache.Lookup(dst, sum, fingerprint)
		if err != nil {
			return nil, err
		}
		if ok {
			f, err := os.Open(dst)
			if err != nil {
				return nil, err
			}
			defer f.Close()

			cfg, _, err := codec.DecodeConfig(f)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", dst, err)
			}
			result.Width, result.Height, result.Skipped = cfg.Width, cfg.Height, true

			a.logger.Printf("Skipping \"%s\", \"%s\" is up to date\n", src, dst)

			return result, nil
		}
	}

	m, _, err := codec.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}

	cfg, err := job.Config(m.Width(), m.Height())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}

	out, err := pipeline.Run(m, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}

	var buf bytes.Buffer
	if err := codec.Encode(&buf, out, &codec.Options{Colors: job.Colors}); err != nil {
		return nil, fmt.Errorf("%s: %w", dst, err)
	}

	if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
		return nil, err
	}

	result.Width, result.Height = out.Width(), out.Height()

	if a.cache != nil {
		if err := a.cache.Record(dst, sum, fingerprint, result.Width, result.Height); err != nil {
			return nil, err
		}
	}

	a.logger.Printf("Wrote \"%s\" (%dx%d) from \"%s\"\n", dst, result.Width, result.Height, src)

	return result, nil
}
