package contentapi

import (
	"shambala-backend/config"
	"shambala-backend/database"
	"shambala-backend/internal/domain/content"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/pages
func ListPages(c *gin.Context) {
	var pages []content.Page
	if err := livePagesQuery(database.DB).
		Order("slug ASC").
		Find(&pages).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to load pages"})
		return
	}

	out := make([]PageSummaryDTO, 0, len(pages))
	for _, p := range pages {
		out = append(out, PageSummaryDTO{
			ID:     p.ID,
			Slug:   p.Slug,
			Title:  p.Title,
			Type:   p.Type,
			Status: p.Status,
		})
	}
	c.JSON(200, gin.H{"pages": out})
}

// GET /api/pages/:slug
func GetPage(c *gin.Context) {
	slug := c.Param("slug")

	page, err := pageWithContent(database.DB, slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(404, gin.H{"error": "Page not found"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to load page"})
		return
	}

	s := NewSerializer(config.MEDIA_BASE_URL)

	c.JSON(200, PageDetailDTO{
		ID:                page.ID,
		Slug:              page.Slug,
		Title:             page.Title,
		Type:              page.Type,
		SEOTitle:          page.SEOTitle,
		SearchDescription: page.SearchDescription,
		HeroSectionData:   s.ProjectHero(page.Hero),
		Body:              s.Blocks(page.Blocks),
	})
}
