package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/haluvia/leadharvest/internal/storage"
)

// Headers is the exact CSV column layout, in output order
var Headers = []string{"site_url", "business_name", "industry", "company_name", "city"}

// WriteCSV serializes the accepted records to path, header row first. The
// file is written in one pass after the harvest completes; an empty record
// set still produces a header-only file.
func WriteCSV(path string, records []storage.BusinessRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	writer := csv.NewWriter(file)

	if err := writer.Write(Headers); err != nil {
		file.Close()
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range records {
		row := []string{rec.SiteURL, rec.BusinessName, rec.Industry, rec.CompanyName, rec.City}
		if err := writer.Write(row); err != nil {
			file.Close()
			return fmt.Errorf("failed to write CSV row for %q: %w", rec.BusinessName, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	return nil
}
