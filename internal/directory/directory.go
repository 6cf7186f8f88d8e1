package directory

import (
	"context"
	"errors"
)

// ErrSubjectNotFound berarti subject id tidak dikenal baik sebagai dokter
// maupun karyawan.
var ErrSubjectNotFound = errors.New("subject not found in directory")

// Lookup me-resolve subject id (dokter atau karyawan) menjadi nama tampil.
// Kontraknya best-effort: pemakai WAJIB memperlakukan error sebagai
// "nama tidak diketahui", bukan alasan menggagalkan operasi utama.
type Lookup interface {
	ResolveName(ctx context.Context, subjectID string) (string, error)
}
