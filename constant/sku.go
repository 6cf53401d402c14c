package constant

type SKUKind string

const (
	SKUKindMerchandise  SKUKind = "merchandise_sku"
	SKUKindTshirt       SKUKind = "tshirt_merchandise_sku"
	SKUKindSticker      SKUKind = "sticker_merchandise_sku"
	SKUKindStickerSheet SKUKind = "sticker_sheet_merchandise_sku"
	SKUKindPoster       SKUKind = "poster_merchandise_sku"
	SKUKindPostcard     SKUKind = "postcard_merchandise_sku"
	SKUKindOther        SKUKind = "other_sku"
)

// SKUKinds is every SKU variant whose counters the inventory ledger watches.
var SKUKinds = []SKUKind{
	SKUKindMerchandise,
	SKUKindTshirt,
	SKUKindSticker,
	SKUKindStickerSheet,
	SKUKindPoster,
	SKUKindPostcard,
	SKUKindOther,
}

func (k SKUKind) IsKnown() bool {
	for _, kind := range SKUKinds {
		if k == kind {
			return true
		}
	}
	return false
}
