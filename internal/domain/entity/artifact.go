package entity

// Export artifact defaults.
const (
	ExportFileName = "formatted.json"
	ExportMIMEType = "application/json"
)

// Artifact is a downloadable file produced by the export action.
type Artifact struct {
	Name     string
	MIMEType string
	Data     []byte
}

// NewExportArtifact packages formatted output for download.
func NewExportArtifact(output string) Artifact {
	return Artifact{
		Name:     ExportFileName,
		MIMEType: ExportMIMEType,
		Data:     []byte(output),
	}
}
