package realtime

// Event names carried over the hub. Payloads are the affected record, the
// fresh tenant-scoped list (catalog events), or just the id (deletions).
const (
	EventOrderCreated         = "order_created"
	EventOrderUpdated         = "order_updated"
	EventOrderDeleted         = "order_deleted"
	EventCategoriesUpdate     = "categories_update"
	EventProductsUpdate       = "products_update"
	EventToppingGroupsUpdate  = "topping_groups_update"
	EventBusinessStatusUpdate = "business_status_update"
)

// Event is the wire envelope every subscriber receives.
type Event struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}
