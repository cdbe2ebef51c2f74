package importer

import (
	"fmt"
	"io"

	"github.com/hmdang/bluemoon/internal/importer/residentcsv"
	"github.com/hmdang/bluemoon/internal/resident"
)

type Service struct {
	csvImporter Importer
}

func NewService() *Service {
	return &Service{
		csvImporter: residentcsv.NewParser(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]resident.CreateParams, error) {
	var importer Importer

	switch format {
	case FormatCSV:
		importer = s.csvImporter
	default:
		return nil, fmt.Errorf("unknown import format: %s", format)
	}

	return importer.Parse(r)
}
