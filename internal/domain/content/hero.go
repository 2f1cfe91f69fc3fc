package content

import (
	"strings"
	"time"

	"shambala-backend/internal/domain/media"
)

const (
	SliderNone = "none"
	SliderNews = "news"
	SliderBlog = "blog"
)

// MainHero is the editable top-of-homepage banner. SliderType is a stored
// discriminator over the two nullable slider references; the admin surface
// does not keep them in sync, so every reader goes through ActiveSlider,
// which tolerates a discriminator pointing at a missing reference.
type MainHero struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"not null;default:'CREATE'" json:"title"`

	HeroImageID *string      `gorm:"type:uuid" json:"-"`
	HeroImage   *media.Image `gorm:"foreignKey:HeroImageID" json:"-"`

	HeroVideo    string `json:"hero_video_file"`
	HeroVideoURL string `json:"hero_video_url"`

	HeroTextStatic    string `gorm:"not null;default:'Something'" json:"hero_text_static"`
	ChangingTextWords string `gorm:"not null;default:'ELEGANT,STUNNING,PREMIUM,CLASSIC'" json:"changing_text_words"`
	Description       string `json:"description"`

	PrimaryCTAText   string `gorm:"column:primary_cta_text;not null;default:'Start a Project'" json:"primary_cta_text"`
	PrimaryCTALink   string `gorm:"column:primary_cta_link;not null;default:'/projects'" json:"primary_cta_link"`
	SecondaryCTAText string `gorm:"column:secondary_cta_text" json:"secondary_cta_text"`
	SecondaryCTALink string `gorm:"column:secondary_cta_link" json:"secondary_cta_link"`

	SliderType string `gorm:"not null;default:'none'" json:"slider_type"`

	NewsSliderID *uint       `json:"-"`
	NewsSlider   *NewsSlider `gorm:"foreignKey:NewsSliderID" json:"-"`
	BlogSliderID *uint       `json:"-"`
	BlogSlider   *BlogSlider `gorm:"foreignKey:BlogSliderID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChangingWordsList splits the comma-separated animation words, falling back
// to the stock set when the field is empty.
func (h *MainHero) ChangingWordsList() []string {
	words := make([]string, 0, 4)
	for _, w := range strings.Split(h.ChangingTextWords, ",") {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return []string{"ELEGANT", "STUNNING", "PREMIUM", "CLASSIC"}
	}
	return words
}

// VideoURL returns the hero video source, preferring the URL field over an
// uploaded file. Empty when the hero has no video.
func (h *MainHero) VideoURL(mediaBase string) string {
	if h.HeroVideoURL != "" {
		return h.HeroVideoURL
	}
	if h.HeroVideo != "" {
		return strings.TrimRight(mediaBase, "/") + "/" + strings.TrimLeft(h.HeroVideo, "/")
	}
	return ""
}

// ActiveSlider resolves the discriminator to the populated reference.
// A discriminator naming a missing slider yields nil, not an error.
func (h *MainHero) ActiveSlider() Slider {
	switch h.SliderType {
	case SliderNews:
		if h.NewsSlider != nil {
			return h.NewsSlider
		}
	case SliderBlog:
		if h.BlogSlider != nil {
			return h.BlogSlider
		}
	}
	return nil
}

// ActiveSliderTitle is "" whenever ActiveSlider is nil, including the
// inconsistent discriminator case.
func (h *MainHero) ActiveSliderTitle() string {
	if s := h.ActiveSlider(); s != nil {
		return s.SliderTitle()
	}
	return ""
}

func (h *MainHero) ShowSlider() bool {
	return h.SliderType != SliderNone
}
