package domains

import "source.hodakov.me/hdkv/animetree/internal/domains/scanner/dto"

const ScannerName = "scanner"

type Scanner interface {
	Scan(root string) (*dto.Report, error)
}
