package ui

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/LESLIE-RG/ProjetTestParam-trique/adapters/tabular"
)

// uploadResult is the payload of the import fragment
type uploadResult struct {
	Error    string
	Filename string
	Headers  []string
	Preview  [][]string
	RowCount int
	ColCount int
}

// handleDatasetUpload parses an uploaded CSV/Excel file into the session's
// dataset slot. On parse failure the session is left unchanged and the error
// is surfaced; on success the slot is replaced wholesale and a preview of
// the first rows is returned.
func (a *App) handleDatasetUpload(w http.ResponseWriter, r *http.Request) {
	log.Printf("[handleDatasetUpload] Starting file upload process")
	sess := sessionFrom(r)

	r.Body = http.MaxBytesReader(w, r.Body, a.config.Upload.MaxBytes)
	file, header, err := r.FormFile("dataset")
	if err != nil {
		log.Printf("[handleDatasetUpload] FAILED - No file uploaded: %v", err)
		a.renderTemplate(w, "upload_result.html", uploadResult{Error: "No file uploaded"})
		return
	}
	defer file.Close()

	if header.Size > a.config.Upload.MaxBytes {
		log.Printf("[handleDatasetUpload] FAILED - File too large: %d bytes", header.Size)
		a.renderTemplate(w, "upload_result.html", uploadResult{
			Error: fmt.Sprintf("File size (%.1f MB) exceeds the %d MB limit",
				float64(header.Size)/(1024*1024), a.config.Upload.MaxBytes/(1024*1024)),
		})
		return
	}

	filename := header.Filename
	if !tabular.SupportedExtension(filename) {
		log.Printf("[handleDatasetUpload] FAILED - Invalid file extension: %s", filename)
		a.renderTemplate(w, "upload_result.html", uploadResult{
			Error: "Only Excel (.xlsx, .xls) and CSV (.csv) files are allowed",
		})
		return
	}

	// Some systems misreport tabular MIME types; log, don't reject.
	contentType := header.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "csv") &&
		!strings.Contains(contentType, "excel") && !strings.Contains(contentType, "spreadsheet") &&
		contentType != "text/plain" {
		log.Printf("[handleDatasetUpload] WARNING - Unexpected MIME type: %s for file: %s", contentType, filename)
	}

	reader := tabular.NewDataReader(filename)
	table, err := reader.ReadData(file)
	if err != nil {
		log.Printf("[handleDatasetUpload] FAILED - Parse error: %v", err)
		a.renderTemplate(w, "upload_result.html", uploadResult{
			Error: fmt.Sprintf("Failed to parse file: %v", err),
		})
		return
	}

	sess.SetDataset(table)
	log.Printf("[handleDatasetUpload] Import successful: %s (%d columns, %d rows)",
		filename, len(table.Headers), table.RowCount())

	a.renderTemplate(w, "upload_result.html", uploadResult{
		Filename: filename,
		Headers:  table.Headers,
		Preview:  table.Preview(a.config.Upload.PreviewRows),
		RowCount: table.RowCount(),
		ColCount: len(table.Headers),
	})
}
