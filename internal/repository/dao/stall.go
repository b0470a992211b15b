package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrStallNotFound = errors.New("stall not found")
)

type Stall struct {
	ID uint `gorm:"primaryKey"`

	NameBn string `gorm:"not null"`
	NameEn string `gorm:"not null"`

	OwnerName string
	Phone     string

	Division string `gorm:"not null;index"`
	District string `gorm:"not null"`
	Upazila  string

	Lat float64 `gorm:"not null"`
	Lng float64 `gorm:"not null"`

	OpenTime  string
	CloseTime string

	DescriptionBn string
	DescriptionEn string

	TeaPriceMin int
	TeaPriceMax int

	// Stored as a JSON array so the column works on both the postgres
	// deployment and the sqlite test driver.
	Facilities []string `gorm:"serializer:json"`

	Status string `gorm:"not null;default:pending;index"`

	UserID uint `gorm:"index"`

	Images []StallImage `gorm:"foreignKey:StallID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

type StallImage struct {
	ID        uint      `gorm:"primaryKey"`
	StallID   uint      `gorm:"not null;index"`
	ImageURL  string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

type StallDAO struct {
	db *gorm.DB
}

func NewStallDAO(db *gorm.DB) *StallDAO {
	return &StallDAO{
		db: db,
	}
}

func (d *StallDAO) Insert(ctx context.Context, stall Stall) (Stall, error) {
	result := d.db.WithContext(ctx).Create(&stall)
	if result.Error != nil {
		return Stall{}, result.Error
	}

	return stall, nil
}

func (d *StallDAO) FindByID(ctx context.Context, id uint) (Stall, error) {
	var stall Stall

	result := d.db.WithContext(ctx).Preload("Images").First(&stall, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Stall{}, ErrStallNotFound
		}

		return Stall{}, result.Error
	}

	return stall, nil
}

// FindVisible returns stalls a given viewer may see: approved listings
// plus the viewer's own submissions. viewerID == 0 means anonymous.
// An empty division (or "all") leaves the division unfiltered.
func (d *StallDAO) FindVisible(ctx context.Context, division string, viewerID uint) ([]Stall, error) {
	var stalls []Stall

	query := d.db.WithContext(ctx)
	if viewerID > 0 {
		query = query.Where("status = ? OR user_id = ?", "approved", viewerID)
	} else {
		query = query.Where("status = ?", "approved")
	}
	if division != "" && division != "all" {
		query = query.Where("division = ?", division)
	}

	result := query.Order("created_at DESC").Find(&stalls)
	if result.Error != nil {
		return nil, result.Error
	}

	return stalls, nil
}

func (d *StallDAO) FindByUserID(ctx context.Context, userID uint) ([]Stall, error) {
	var stalls []Stall

	result := d.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&stalls)
	if result.Error != nil {
		return nil, result.Error
	}

	return stalls, nil
}

func (d *StallDAO) UpdateStatus(ctx context.Context, id uint, status string) (Stall, error) {
	stall, err := d.FindByID(ctx, id)
	if err != nil {
		return Stall{}, err
	}

	stall.Status = status

	result := d.db.WithContext(ctx).Model(&Stall{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return Stall{}, result.Error
	}

	return stall, nil
}

func (d *StallDAO) InsertImage(ctx context.Context, image StallImage) (StallImage, error) {
	result := d.db.WithContext(ctx).Create(&image)
	if result.Error != nil {
		return StallImage{}, result.Error
	}

	return image, nil
}

// FirstImageURLs maps each stall ID to its oldest image URL. Stalls
// without images are absent from the map.
func (d *StallDAO) FirstImageURLs(ctx context.Context, stallIDs []uint) (map[uint]string, error) {
	if len(stallIDs) == 0 {
		return map[uint]string{}, nil
	}

	var images []StallImage
	result := d.db.WithContext(ctx).
		Where("stall_id IN ?", stallIDs).
		Order("created_at ASC, id ASC").
		Find(&images)
	if result.Error != nil {
		return nil, result.Error
	}

	urls := make(map[uint]string, len(images))
	for _, img := range images {
		if _, ok := urls[img.StallID]; !ok {
			urls[img.StallID] = img.ImageURL
		}
	}

	return urls, nil
}
