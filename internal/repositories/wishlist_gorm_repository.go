package repositories

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"glamgirl/internal/models"
)

// wishlistStorageKey is the fixed key the wishlist set is stored under.
// It matches the key the web storefront used, so the format stays the same:
// one JSON array of product snapshots, no versioning.
const wishlistStorageKey = "glamgirl_wishlist"

// wishlistRecord is the single storage row holding the serialized set.
type wishlistRecord struct {
	Key       string `gorm:"primaryKey;type:varchar(64)"`
	Payload   string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (wishlistRecord) TableName() string {
	return "wishlist_snapshots"
}

// GORMWishlistRepository is a GORM implementation of WishlistRepository.
type GORMWishlistRepository struct {
	db *gorm.DB
}

// NewGORMWishlistRepository creates the repository and migrates its table.
func NewGORMWishlistRepository(db *gorm.DB) (*GORMWishlistRepository, error) {
	if err := db.AutoMigrate(&wishlistRecord{}); err != nil {
		return nil, fmt.Errorf("migrating wishlist storage: %w", err)
	}
	return &GORMWishlistRepository{db: db}, nil
}

// Load reads the stored set. A missing row means an empty wishlist, not an
// error; that is the state of every fresh installation.
func (r *GORMWishlistRepository) Load() ([]models.Product, error) {
	var record wishlistRecord
	if err := r.db.First(&record, "key = ?", wishlistStorageKey).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("loading wishlist: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(record.Payload), &products); err != nil {
		return nil, fmt.Errorf("decoding stored wishlist: %w", err)
	}
	return products, nil
}

// Save writes the full set as one value under the fixed key.
func (r *GORMWishlistRepository) Save(products []models.Product) error {
	if products == nil {
		products = []models.Product{}
	}
	payload, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encoding wishlist: %w", err)
	}

	record := wishlistRecord{
		Key:       wishlistStorageKey,
		Payload:   string(payload),
		UpdatedAt: time.Now(),
	}
	err = r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("saving wishlist: %w", err)
	}
	return nil
}
