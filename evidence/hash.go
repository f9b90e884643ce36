package evidence

import (
	"crypto/sha256"
	"encoding/hex"

	"exc-aggregator/fsys"
)

func SHA256File(f fsys.FS, path string) (string, int64, error) {
	b, err := f.ReadFile(path)
	if err != nil {
		return "", 0, err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), int64(len(b)), nil
}
