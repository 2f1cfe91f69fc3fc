package contentapi

import (
	"encoding/json"

	"shambala-backend/internal/domain/content"
)

// Hero projection consumed by the homepage. The shape is always renderable:
// a nil hero projects to nil, and any internal failure while building the
// projection is replaced by a fixed fallback payload so the front-end never
// sees a broken hero. The builder itself reports the failure, so callers and
// tests can still tell "no hero configured" from "hero malformed".

type HeroData struct {
	Title             string         `json:"title"`
	HeroTextStatic    string         `json:"hero_text_static"`
	ChangingTextWords []string       `json:"changing_text_words"`
	Description       string         `json:"description"`
	HeroImage         *HeroImageData `json:"hero_image"`
	HeroVideo         *HeroVideoData `json:"hero_video"`
	PrimaryCTA        CTAData        `json:"primary_cta"`
	SecondaryCTA      *CTAData       `json:"secondary_cta,omitempty"`
	ShowBlogSlider    bool           `json:"show_blog_slider"`
	SliderTitle       string         `json:"slider_title"`
	SliderType        string         `json:"slider_type"`
	ActiveSlider      *SliderData    `json:"active_slider"`
}

type HeroImageData struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type HeroVideoData struct {
	URL string `json:"url"`
}

type CTAData struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

type SliderData struct {
	ID       uint               `json:"id"`
	Title    string             `json:"title"`
	Slides   []SlideData        `json:"slides"`
	Settings SliderSettingsData `json:"settings"`
}

type SliderSettingsData struct {
	Autoplay       bool `json:"autoplay"`
	AutoplayDelay  int  `json:"autoplay_delay"`
	ShowNavigation bool `json:"show_navigation"`
	ShowPagination bool `json:"show_pagination"`
}

type SlideData struct {
	ID       int            `json:"id"`
	Title    string         `json:"title"`
	Excerpt  string         `json:"excerpt"`
	Author   string         `json:"author,omitempty"`
	Tags     string         `json:"tags,omitempty"`
	ReadTime int            `json:"read_time,omitempty"`
	Image    *HeroImageData `json:"image,omitempty"`
	Link     *LinkDTO       `json:"link"`
	Date     *string        `json:"date"`
	Category string         `json:"category"`
	Featured bool           `json:"featured"`
}

// ProjectHero is the public projection: nil for no hero, fallback payload
// when the configured hero cannot be built.
func (s *Serializer) ProjectHero(h *content.MainHero) *HeroData {
	if h == nil {
		return nil
	}
	data, err := s.buildHero(h)
	if err != nil {
		fb := fallbackHero()
		return &fb
	}
	return data
}

func (s *Serializer) buildHero(h *content.MainHero) (*HeroData, error) {
	data := &HeroData{
		Title:             h.Title,
		HeroTextStatic:    h.HeroTextStatic,
		ChangingTextWords: h.ChangingWordsList(),
		Description:       h.Description,
		PrimaryCTA: CTAData{
			Text: h.PrimaryCTAText,
			Link: h.PrimaryCTALink,
		},
		ShowBlogSlider: h.ShowSlider(),
		SliderTitle:    h.ActiveSliderTitle(),
		SliderType:     h.SliderType,
	}

	// One media slot: a video (URL wins over uploaded file) or an image.
	if videoURL := h.VideoURL(s.MediaBase); videoURL != "" {
		data.HeroVideo = &HeroVideoData{URL: videoURL}
	} else if h.HeroImage != nil {
		data.HeroImage = &HeroImageData{
			URL: h.HeroImage.URL(s.MediaBase),
			Alt: h.HeroImage.Title,
		}
	}

	// Secondary CTA is omitted entirely when its text is empty.
	if h.SecondaryCTAText != "" {
		data.SecondaryCTA = &CTAData{
			Text: h.SecondaryCTAText,
			Link: h.SecondaryCTALink,
		}
	}

	if slider := h.ActiveSlider(); slider != nil {
		sliderData, err := buildSlider(slider)
		if err != nil {
			return nil, err
		}
		data.ActiveSlider = sliderData
	}

	return data, nil
}

type rawSlide struct {
	Title    string    `json:"title"`
	Excerpt  string    `json:"excerpt"`
	Author   string    `json:"author"`
	Tags     string    `json:"tags"`
	ReadTime int       `json:"read_time"`
	Image    *rawImage `json:"image"`
	Link     *rawLink  `json:"link"`
	Date     string    `json:"date"`
	Category string    `json:"category"`
	Featured bool      `json:"featured"`
}

func buildSlider(s content.Slider) (*SliderData, error) {
	var rawSlides []rawSlide
	if raw := s.RawSlides(); len(raw) > 0 {
		if err := json.Unmarshal(raw, &rawSlides); err != nil {
			return nil, err
		}
	}

	slides := make([]SlideData, 0, len(rawSlides))
	for i, rs := range rawSlides {
		slide := SlideData{
			ID:       i,
			Title:    rs.Title,
			Excerpt:  rs.Excerpt,
			Author:   rs.Author,
			Tags:     rs.Tags,
			ReadTime: rs.ReadTime,
			Category: rs.Category,
			Featured: rs.Featured,
		}
		if rs.Image != nil && rs.Image.URL != "" {
			alt := rs.Image.Alt
			if alt == "" {
				alt = rs.Image.Title
			}
			slide.Image = &HeroImageData{URL: rs.Image.URL, Alt: alt}
		}
		if rs.Link != nil {
			link := resolveLink(rs.Link)
			slide.Link = &link
		}
		if rs.Date != "" {
			date := rs.Date
			slide.Date = &date
		}
		slides = append(slides, slide)
	}

	return &SliderData{
		ID:     s.SliderID(),
		Title:  s.SliderTitle(),
		Slides: slides,
		Settings: SliderSettingsData{
			Autoplay:       true,
			AutoplayDelay:  s.AutoplayMillis(),
			ShowNavigation: false,
			ShowPagination: true,
		},
	}, nil
}

// fallbackHero is the fixed payload served when a configured hero cannot be
// projected. It masks the underlying failure as "default hero" on purpose;
// the builder's error return exists so that choice stays observable.
func fallbackHero() HeroData {
	return HeroData{
		Title:             "CREATE",
		HeroTextStatic:    "Something",
		ChangingTextWords: []string{"ELEGANT", "STUNNING", "PREMIUM", "CLASSIC"},
		Description:       "",
		PrimaryCTA: CTAData{
			Text: "Start a Project",
			Link: "/projects",
		},
		ShowBlogSlider: true,
		SliderTitle:    "Latest News",
		SliderType:     content.SliderNone,
	}
}
