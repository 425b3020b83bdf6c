package entity

// PermissionType names a capability the host may or may not grant.
type PermissionType string

const (
	// PermissionTypeStorage gates the persisted history and options.
	PermissionTypeStorage PermissionType = "storage"

	// PermissionTypeClipboard gates reading and writing the system clipboard.
	PermissionTypeClipboard PermissionType = "clipboard"
)

// PermissionTypesToStrings converts permission types to strings for logging.
func PermissionTypesToStrings(types []PermissionType) []string {
	result := make([]string, len(types))
	for i, t := range types {
		result[i] = string(t)
	}
	return result
}
