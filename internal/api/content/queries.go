package contentapi

import (
	"shambala-backend/internal/domain/content"

	"gorm.io/gorm"
)

func livePagesQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&content.Page{}).Where("status = ?", "live")
}

// pageWithContent loads one page with everything a single read needs, so the
// serializer never has to fetch anything itself.
func pageWithContent(db *gorm.DB, slug string) (*content.Page, error) {
	var page content.Page
	err := db.
		Preload("Blocks", func(db *gorm.DB) *gorm.DB { return db.Order("sort_index ASC") }).
		Preload("Hero").
		Preload("Hero.HeroImage").
		Preload("Hero.NewsSlider").
		Preload("Hero.BlogSlider").
		First(&page, "slug = ? AND status = ?", slug, "live").Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}
