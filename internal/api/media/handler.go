package mediaapi

import (
	"shambala-backend/config"
	"shambala-backend/database"
	"shambala-backend/internal/domain/media"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ImageDTO struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func toImageDTO(img *media.Image) ImageDTO {
	return ImageDTO{
		ID:     img.ID,
		Title:  img.Title,
		URL:    img.URL(config.MEDIA_BASE_URL),
		Width:  img.Width,
		Height: img.Height,
	}
}

// GET /api/images
func ListImages(c *gin.Context) {
	var images []media.Image
	if err := database.DB.Order("created_at DESC").Find(&images).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to load images"})
		return
	}

	out := make([]ImageDTO, 0, len(images))
	for i := range images {
		out = append(out, toImageDTO(&images[i]))
	}
	c.JSON(200, gin.H{"images": out})
}

// GET /api/images/:id
func GetImage(c *gin.Context) {
	id := c.Param("id")

	var img media.Image
	if err := database.DB.First(&img, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(404, gin.H{"error": "Image not found"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to load image"})
		return
	}

	c.JSON(200, toImageDTO(&img))
}
