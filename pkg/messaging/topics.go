package messaging

type ChangeTopic string

const (
	CatalogChanged ChangeTopic = "catalog_changed"
	Tracking       ChangeTopic = "tracking"
)

// CatalogChange is published when a new catalog file has been written.
type CatalogChange struct {
	File string `json:"file"`
}
