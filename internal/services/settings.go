package services

import (
	"bytes"
	"errors"

	"github.com/bactien/YCBG/internal/models"
	"github.com/disintegration/imaging"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaxLogoBytes caps the decoded logo size before anything is written.
const MaxLogoBytes = 2 * 1024 * 1024

var (
	ErrLogoTooLarge = errors.New("Kích thước file quá lớn. Vui lòng chọn ảnh nhỏ hơn 2MB.")
	ErrInvalidImage = errors.New("invalid image data")
)

// SettingsService owns the single-row settings record (company logo).
type SettingsService struct{ DB *gorm.DB }

func NewSettingsService(db *gorm.DB) *SettingsService { return &SettingsService{DB: db} }

// Get returns the settings row if present, otherwise nil.
func (s *SettingsService) Get() (*models.Settings, error) {
	var st models.Settings
	err := s.DB.First(&st, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// SaveLogo validates and stores the logo data URL, deriving a 200px-wide
// thumbnail for raster formats. SVG logos are kept as-is without a thumbnail
// since they have no fixed raster form.
func (s *SettingsService) SaveLogo(dataURL string) (*models.Settings, error) {
	mime, raw, err := ParseDataURL(dataURL)
	if err != nil {
		return nil, ErrInvalidImage
	}
	if len(raw) > MaxLogoBytes {
		return nil, ErrLogoTooLarge
	}
	thumb := ""
	if img, decErr := imaging.Decode(bytes.NewReader(raw)); decErr == nil {
		resized := imaging.Resize(img, 200, 0, imaging.Lanczos)
		var buf bytes.Buffer
		if encErr := imaging.Encode(&buf, resized, imaging.PNG); encErr == nil {
			thumb = BuildDataURL("image/png", buf.Bytes())
		}
	} else if mime != "image/svg+xml" {
		return nil, ErrInvalidImage
	}
	st := models.Settings{ID: 1, Logo: dataURL, LogoThumbnail: thumb}
	if err := s.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&st).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

// RemoveLogo clears the settings row. Removing an absent logo is a no-op.
func (s *SettingsService) RemoveLogo() error {
	return s.DB.Delete(&models.Settings{}, "id = ?", 1).Error
}
