package schema

import (
	"time"

	"gorm.io/datatypes"
)

// AuthIdentity represents the auth_identities table - the directory record a user authenticates as
type AuthIdentity struct {
	// ID is the external identity identifier issued by the wallet provider
	ID string `gorm:"column:id;primaryKey;type:text" json:"id"`
	// Email is the address the identity was registered with
	Email string `gorm:"column:email;not null;type:text" json:"email"`
	// EmailVerified is true for identities created by the sync flow
	EmailVerified bool `gorm:"column:email_verified;not null;default:false" json:"email_verified"`
	// Metadata carries provider attributes such as {"provider":"crossmint"}
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb" json:"metadata,omitempty"`
	// CreatedAt is the timestamp when this identity was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()" json:"created_at"`
}

// TableName specifies the table name for the AuthIdentity model
func (AuthIdentity) TableName() string {
	return "auth_identities"
}

// UserProfile represents the user_profiles table - one row per auth identity
type UserProfile struct {
	// ID matches AuthIdentity.ID
	ID    string `gorm:"column:id;primaryKey;type:text" json:"id"`
	Email string `gorm:"column:email;not null;type:text" json:"email"`
	// WalletAddress is the currently bound wallet (nil until bound)
	WalletAddress *string `gorm:"column:wallet_address;type:text;index" json:"wallet_address"`
	// WalletProviderID is the wallet provider's identifier for the bound wallet
	WalletProviderID *string   `gorm:"column:wallet_provider_id;type:text" json:"wallet_provider_id"`
	CreatedAt        time.Time `gorm:"column:created_at;not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;not null;default:now()" json:"updated_at"`
}

// TableName specifies the table name for the UserProfile model
func (UserProfile) TableName() string {
	return "user_profiles"
}
