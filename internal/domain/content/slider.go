package content

import (
	"time"

	"gorm.io/datatypes"
)

// Slider is either a news or blog slider; both project to the same JSON
// shape, differing only in which optional slide fields are populated.
type Slider interface {
	SliderID() uint
	SliderTitle() string
	RawSlides() datatypes.JSON
	AutoplayMillis() int
	Kind() string
}

type NewsSlider struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Title         string         `gorm:"not null;default:'Latest News'" json:"title"`
	Slides        datatypes.JSON `gorm:"not null;default:'[]'" json:"slides"`
	AutoplayDelay int            `gorm:"not null;default:4200" json:"autoplay_delay"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *NewsSlider) SliderID() uint            { return s.ID }
func (s *NewsSlider) SliderTitle() string       { return s.Title }
func (s *NewsSlider) RawSlides() datatypes.JSON { return s.Slides }
func (s *NewsSlider) AutoplayMillis() int       { return s.AutoplayDelay }
func (s *NewsSlider) Kind() string              { return SliderNews }

type BlogSlider struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Title         string         `gorm:"not null;default:'Latest Blog Posts'" json:"title"`
	Slides        datatypes.JSON `gorm:"not null;default:'[]'" json:"slides"`
	AutoplayDelay int            `gorm:"not null;default:4200" json:"autoplay_delay"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *BlogSlider) SliderID() uint            { return s.ID }
func (s *BlogSlider) SliderTitle() string       { return s.Title }
func (s *BlogSlider) RawSlides() datatypes.JSON { return s.Slides }
func (s *BlogSlider) AutoplayMillis() int       { return s.AutoplayDelay }
func (s *BlogSlider) Kind() string              { return SliderBlog }
