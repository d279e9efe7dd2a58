package schema

import (
	"time"

	"gorm.io/datatypes"
)

// ItemStatus represents the lifecycle status of an item row
type ItemStatus string

const (
	// ItemStatusPending is set while an issued item waits for its mint
	ItemStatusPending ItemStatus = "pending"
	// ItemStatusListed marks an item available for purchase
	ItemStatusListed ItemStatus = "listed"
	// ItemStatusMinted marks an item that has been minted
	ItemStatusMinted ItemStatus = "minted"
	// ItemStatusError marks an item whose mint failed
	ItemStatusError ItemStatus = "error"
)

// Item represents the items table - purchasable collectibles and their per-purchase clones.
// JSON tags follow column names since the public REST tier returns rows verbatim.
type Item struct {
	ID     int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title  string  `gorm:"column:title;not null;type:text" json:"title"`
	Artist string  `gorm:"column:artist;not null;type:text;default:''" json:"artist"`
	Album  *string `gorm:"column:album;type:text" json:"album"`
	// CoverArtURL and MediaURL point at the item's artwork and media file
	CoverArtURL *string    `gorm:"column:cover_art_url;type:text" json:"cover_art_url"`
	MediaURL    *string    `gorm:"column:media_url;type:text" json:"media_url"`
	ReleaseDate *time.Time `gorm:"column:release_date;type:date" json:"release_date"`
	// PriceMinorUnits is the price in cents; nil or zero means not for sale
	PriceMinorUnits *int64     `gorm:"column:price_minor_units" json:"price_minor_units"`
	Status          ItemStatus `gorm:"column:status;not null;type:text;default:'listed';index" json:"status"`
	MetadataURL     *string    `gorm:"column:metadata_url;type:text" json:"metadata_url"`
	// Metadata is the metadata document served for items issued by this service
	Metadata           datatypes.JSON `gorm:"column:metadata;type:jsonb" json:"metadata,omitempty"`
	OwnerWalletAddress *string        `gorm:"column:owner_wallet_address;type:text" json:"owner_wallet_address"`
	TransactionID      *string        `gorm:"column:transaction_id;type:text" json:"transaction_id"`
	MintedCount        int            `gorm:"column:minted_count;not null;default:0" json:"minted_count"`
	// ParentItemID links a purchase clone back to the listed item
	ParentItemID *int64    `gorm:"column:parent_item_id;index" json:"parent_item_id"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null;default:now()" json:"updated_at"`
}

// TableName specifies the table name for the Item model
func (Item) TableName() string {
	return "items"
}
