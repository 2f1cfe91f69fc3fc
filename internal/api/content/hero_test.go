package contentapi

import (
	"testing"

	"shambala-backend/internal/domain/content"
	"shambala-backend/internal/domain/media"

	"gorm.io/datatypes"
)

func newsSlider(slides string) *content.NewsSlider {
	return &content.NewsSlider{
		ID:            7,
		Title:         "Latest News",
		Slides:        datatypes.JSON(slides),
		AutoplayDelay: 4200,
	}
}

func TestProjectHeroNilHero(t *testing.T) {
	s := NewSerializer("http://cdn.test/media")
	if got := s.ProjectHero(nil); got != nil {
		t.Errorf("nil hero projected to %+v", got)
	}
}

func TestProjectHeroBasicFields(t *testing.T) {
	s := NewSerializer("http://cdn.test/media")
	h := &content.MainHero{
		Title:             "SHAMBALA",
		HeroTextStatic:    "Build",
		ChangingTextWords: "BOLD, QUIET ,  WARM",
		Description:       "desc",
		PrimaryCTAText:    "Start",
		PrimaryCTALink:    "/start",
		SliderType:        content.SliderNone,
	}

	data := s.ProjectHero(h)
	if data == nil {
		t.Fatal("nil projection")
	}
	if data.Title != "SHAMBALA" || data.HeroTextStatic != "Build" {
		t.Errorf("headline fields = %q / %q", data.Title, data.HeroTextStatic)
	}
	want := []string{"BOLD", "QUIET", "WARM"}
	if len(data.ChangingTextWords) != 3 {
		t.Fatalf("words = %v", data.ChangingTextWords)
	}
	for i, w := range want {
		if data.ChangingTextWords[i] != w {
			t.Errorf("word %d = %q, want %q", i, data.ChangingTextWords[i], w)
		}
	}
	if data.PrimaryCTA.Text != "Start" || data.PrimaryCTA.Link != "/start" {
		t.Errorf("primary cta = %+v", data.PrimaryCTA)
	}
	if data.SecondaryCTA != nil {
		t.Errorf("secondary cta should be omitted when text is empty, got %+v", data.SecondaryCTA)
	}
	if data.ShowBlogSlider {
		t.Error("show_blog_slider should be false for slider_type none")
	}
	if data.ActiveSlider != nil {
		t.Errorf("active_slider should be nil, got %+v", data.ActiveSlider)
	}
}

func TestProjectHeroVideoWinsOverImage(t *testing.T) {
	s := NewSerializer("http://cdn.test/media")
	imgID := "img-1"
	h := &content.MainHero{
		HeroImageID:  &imgID,
		HeroImage:    &media.Image{ID: imgID, Title: "Fallback image", File: "heroes/h.jpg"},
		HeroVideo:    "heroes/loop.mp4",
		HeroVideoURL: "https://cdn.other/hero.mp4",
		SliderType:   content.SliderNone,
	}

	data := s.ProjectHero(h)
	if data.HeroVideo == nil || data.HeroVideo.URL != "https://cdn.other/hero.mp4" {
		t.Fatalf("hero video = %+v, URL field should win over uploaded file", data.HeroVideo)
	}
	if data.HeroImage != nil {
		t.Errorf("image should be dropped when a video is set, got %+v", data.HeroImage)
	}

	// Uploaded file is used when no URL is set, prefixed with the media base.
	h.HeroVideoURL = ""
	data = s.ProjectHero(h)
	if data.HeroVideo == nil || data.HeroVideo.URL != "http://cdn.test/media/heroes/loop.mp4" {
		t.Errorf("hero video = %+v", data.HeroVideo)
	}

	// No video at all falls back to the image.
	h.HeroVideo = ""
	data = s.ProjectHero(h)
	if data.HeroVideo != nil {
		t.Errorf("hero video = %+v, want nil", data.HeroVideo)
	}
	if data.HeroImage == nil || data.HeroImage.URL != "http://cdn.test/media/heroes/h.jpg" {
		t.Errorf("hero image = %+v", data.HeroImage)
	}
	if data.HeroImage.Alt != "Fallback image" {
		t.Errorf("hero image alt = %q", data.HeroImage.Alt)
	}
}

func TestProjectHeroInconsistentSliderReference(t *testing.T) {
	s := NewSerializer("http://cdn.test/media")
	h := &content.MainHero{
		SliderType: content.SliderNews,
		// NewsSlider reference missing; BlogSlider set but not selected.
		BlogSlider: &content.BlogSlider{ID: 3, Title: "Blog", Slides: datatypes.JSON(`[]`)},
	}

	data := s.ProjectHero(h)
	if data.ActiveSlider != nil {
		t.Errorf("active_slider = %+v, want nil for dangling discriminator", data.ActiveSlider)
	}
	if data.SliderTitle != "" {
		t.Errorf("slider_title = %q, want empty", data.SliderTitle)
	}
	if !data.ShowBlogSlider {
		t.Error("show_blog_slider should still reflect the discriminator")
	}
	if data.SliderType != content.SliderNews {
		t.Errorf("slider_type = %q", data.SliderType)
	}
}

func TestProjectHeroSliderSlides(t *testing.T) {
	s := NewSerializer("http://cdn.test/media")
	h := &content.MainHero{
		SliderType: content.SliderNews,
		NewsSlider: newsSlider(`[
			{"title":"First","excerpt":"e1","date":"2025-08-01","category":"news","featured":true,
			 "image":{"url":"http://cdn.test/media/n1.jpg","title":"N1"},
			 "link":{"external_link":"https://news.test/1"}},
			{"title":"Second","excerpt":"e2"}
		]`),
	}

	data := s.ProjectHero(h)
	slider := data.ActiveSlider
	if slider == nil {
		t.Fatal("active_slider is nil")
	}
	if slider.ID != 7 || slider.Title != "Latest News" {
		t.Errorf("slider header = %d %q", slider.ID, slider.Title)
	}
	if !slider.Settings.Autoplay || slider.Settings.AutoplayDelay != 4200 {
		t.Errorf("settings = %+v", slider.Settings)
	}
	if slider.Settings.ShowNavigation || !slider.Settings.ShowPagination {
		t.Errorf("settings = %+v", slider.Settings)
	}
	if len(slider.Slides) != 2 {
		t.Fatalf("got %d slides", len(slider.Slides))
	}

	first := slider.Slides[0]
	if first.ID != 0 || first.Title != "First" || !first.Featured {
		t.Errorf("first slide = %+v", first)
	}
	if first.Image == nil || first.Image.Alt != "N1" {
		t.Errorf("first slide image = %+v", first.Image)
	}
	if first.Link == nil || first.Link.URL != "https://news.test/1" || !first.Link.IsExternal {
		t.Errorf("first slide link = %+v", first.Link)
	}
	if first.Date == nil || *first.Date != "2025-08-01" {
		t.Errorf("first slide date = %v", first.Date)
	}

	second := slider.Slides[1]
	if second.ID != 1 || second.Image != nil || second.Link != nil || second.Date != nil {
		t.Errorf("second slide = %+v", second)
	}
}

func TestProjectHeroMalformedSlidesFallsBack(t *testing.T) {
	s := NewSerializer("http://cdn.test/media")
	h := &content.MainHero{
		Title:      "Custom title that must not survive",
		SliderType: content.SliderNews,
		NewsSlider: newsSlider(`{"oops": "not an array"}`),
	}

	data := s.ProjectHero(h)
	if data == nil {
		t.Fatal("projection must never be nil for a configured hero")
	}
	if data.Title != "CREATE" || data.HeroTextStatic != "Something" {
		t.Errorf("expected fallback payload, got title=%q static=%q", data.Title, data.HeroTextStatic)
	}
	want := []string{"ELEGANT", "STUNNING", "PREMIUM", "CLASSIC"}
	if len(data.ChangingTextWords) != len(want) {
		t.Fatalf("fallback words = %v", data.ChangingTextWords)
	}
	for i, w := range want {
		if data.ChangingTextWords[i] != w {
			t.Errorf("fallback word %d = %q", i, data.ChangingTextWords[i])
		}
	}
	if data.PrimaryCTA.Text != "Start a Project" || data.PrimaryCTA.Link != "/projects" {
		t.Errorf("fallback cta = %+v", data.PrimaryCTA)
	}
	if !data.ShowBlogSlider || data.SliderTitle != "Latest News" || data.SliderType != content.SliderNone {
		t.Errorf("fallback slider fields = %v %q %q", data.ShowBlogSlider, data.SliderTitle, data.SliderType)
	}
	if data.ActiveSlider != nil {
		t.Errorf("fallback active_slider = %+v", data.ActiveSlider)
	}
}
