package sink

import (
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// compressFile streams path to path+".gz" and removes the uncompressed
// original. Streaming keeps memory flat regardless of file size.
func compressFile(path string) error {
	gzPath := path + ".gz"

	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(gzPath)
	if err != nil {
		return err
	}
	defer out.Close()

	encoder, err := gzip.NewWriterLevel(out, gzip.DefaultCompression)
	if err != nil {
		return err
	}

	if _, err := io.Copy(encoder, in); err != nil {
		encoder.Close()
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}

	return os.Remove(path)
}
