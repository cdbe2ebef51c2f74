package importer

import (
	"io"

	"github.com/hmdang/bluemoon/internal/resident"
)

// Format identifies the roster file layout being imported.
type Format string

const (
	FormatCSV Format = "csv"
)

type Importer interface {
	Parse(r io.Reader) ([]resident.CreateParams, error)
}
