package generator

import (
	"github.com/erraggy/oastsgen/internal/fileutil"
)

// WriteFile writes the generated client to path atomically with mode 0644,
// creating parent directories as needed.
//
// An unsuccessful result is never written; WriteFile returns its
// *oaserrors.ExtractionError instead.
func (r *GenerateResult) WriteFile(path string) error {
	if err := r.Err(); err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(path, []byte(r.Content), fileutil.ReadableByAll)
}
