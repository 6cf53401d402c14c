package model

// WarehouseEntryItem is one unit of physical intake inspected by QA.
type WarehouseEntryItem struct {
	ID                   uint64 `db:"id"`
	WarehouseEntryID     uint64 `db:"warehouse_entry_id"`
	OrderItemPrintableID uint64 `db:"order_item_printable_id"`
	QAPassed             int64  `db:"qa_passed"`
}

// OrderItemPrintable tracks how many printed units are ready to process.
type OrderItemPrintable struct {
	ID             uint64 `db:"id"`
	ReadyToProcess int64  `db:"ready_to_process"`
}

type RecordQAPassedRequest struct {
	QAPassed int64 `json:"qa_passed" validate:"gte=0"`
}

type WarehouseEntryItemDetail struct {
	ID                   uint64 `json:"id"`
	OrderItemPrintableID uint64 `json:"order_item_printable_id"`
	QAPassed             int64  `json:"qa_passed"`
}
